package diag

import "fmt"

// Code is the stable numeric identifier of a diagnostic message.
type Code uint32

// String returns the code in its reported LM-prefixed form.
func (c Code) String() string {
	return fmt.Sprintf("LM%04d", uint32(c))
}

// Message is a catalog entry: a stable key and code plus the default text.
// Text may contain positional placeholders {0}, {1}, ... substituted in
// argument order at construction time.
type Message struct {
	Key      string
	Category Category
	Code     Code
	Text     string
}

// Catalog blocks: 1xxx path resolution, 5xxx options/configuration,
// 6xxx driver/file identity. New messages append within their block; codes
// are never reused.
var (
	MsgCouldNotResolvePath = &Message{
		Key: "could_not_resolve_path", Category: CatError, Code: 1010,
		Text: "Cannot resolve '{0}' relative to '{1}'.",
	}
	MsgCannotReadFile = &Message{
		Key: "cannot_read_file", Category: CatError, Code: 5012,
		Text: "Cannot read file '{0}': {1}.",
	}
	MsgUnknownTarget = &Message{
		Key: "unknown_target", Category: CatError, Code: 5024,
		Text: "Unknown language target '{0}'.",
	}
	MsgUnknownLocale = &Message{
		Key: "unknown_locale", Category: CatError, Code: 5025,
		Text: "Locale '{0}' is not available; falling back to '{1}'.",
	}
	MsgBadProjectFile = &Message{
		Key: "bad_project_file", Category: CatError, Code: 5026,
		Text: "Cannot parse project file '{0}': {1}.",
	}
	MsgFileNotFound = &Message{
		Key: "file_not_found", Category: CatError, Code: 6053,
		Text: "File '{0}' not found.",
	}
	MsgDuplicateFile = &Message{
		Key: "duplicate_file", Category: CatWarning, Code: 6054,
		Text: "File '{0}' is named more than once; the last entry wins.",
	}
	MsgEmptyFile = &Message{
		Key: "empty_file", Category: CatSuggestion, Code: 6055,
		Text: "File '{0}' is empty.",
	}
)
