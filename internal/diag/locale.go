package diag

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// The localization table is a process-wide slot: installed once at startup
// (nil means catalog defaults), replaceable as a whole by a harness, read by
// every message resolution. There is no per-call locking; install before
// diagnostics are constructed.
var localeTable map[string]string

// SetLocaleTable replaces the localization table and returns the previous
// one so tests can restore it on teardown.
func SetLocaleTable(table map[string]string) map[string]string {
	prev := localeTable
	localeTable = table
	return prev
}

func localizedText(msg *Message) string {
	if localeTable != nil {
		if text, ok := localeTable[msg.Key]; ok {
			return text
		}
	}
	return msg.Text
}

type localeFile struct {
	Locale   string            `toml:"locale"`
	Messages map[string]string `toml:"messages"`
}

// LoadLocaleFile installs the message table from a TOML locale file. The
// declared locale tag must parse as a BCP 47 tag.
func LoadLocaleFile(path string) error {
	var lf localeFile
	if _, err := toml.DecodeFile(path, &lf); err != nil {
		return fmt.Errorf("%s: failed to parse locale file: %w", path, err)
	}
	if lf.Locale != "" {
		if _, err := language.Parse(lf.Locale); err != nil {
			return fmt.Errorf("%s: bad locale tag %q: %w", path, lf.Locale, err)
		}
	}
	if lf.Messages == nil {
		lf.Messages = map[string]string{}
	}
	SetLocaleTable(lf.Messages)
	return nil
}

// MatchLocale picks the best supported locale for a requested tag. An empty
// request or no match selects the first supported entry.
func MatchLocale(requested string, supported []string) (string, error) {
	if len(supported) == 0 {
		return "", fmt.Errorf("no supported locales")
	}
	if requested == "" {
		return supported[0], nil
	}
	want, err := language.Parse(requested)
	if err != nil {
		return "", fmt.Errorf("bad locale tag %q: %w", requested, err)
	}
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			return "", fmt.Errorf("bad supported locale tag %q: %w", s, err)
		}
		tags = append(tags, tag)
	}
	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No {
		return supported[0], fmt.Errorf("locale %q not supported", requested)
	}
	return supported[idx], nil
}
