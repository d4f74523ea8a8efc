package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lumen/internal/diag"
	"lumen/internal/pathutil"
)

var (
	errorColor      = color.New(color.FgRed, color.Bold)
	warningColor    = color.New(color.FgYellow, color.Bold)
	suggestionColor = color.New(color.FgCyan)
	messageColor    = color.New(color.FgWhite)
)

func categoryColor(c diag.Category) *color.Color {
	switch c {
	case diag.CatError:
		return errorColor
	case diag.CatWarning:
		return warningColor
	case diag.CatSuggestion:
		return suggestionColor
	}
	return messageColor
}

// Pretty writes diagnostics in the form
//
//	<path>:<line>:<col> - <category> <code>: <message>
//
// followed, per chain layer, by two-space-deeper indented explanation lines,
// and optionally the offending source line with a caret underline. The bag
// is expected to be sorted already.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, d, opts)
	}
}

func writePretty(w io.Writer, d *diag.Diagnostic, opts PrettyOpts) {
	cat := d.Category.String()
	code := d.Code.String()
	if opts.Color {
		cat = categoryColor(d.Category).Sprint(cat)
	}

	if d.File == nil {
		fmt.Fprintf(w, "%s %s: %s\n", cat, code, d.FlattenedMessage())
		return
	}

	pos := d.File.LineCol(d.Start)
	fmt.Fprintf(w, "%s:%d:%d - %s %s: %s\n",
		displayPath(d.File.Path, opts), pos.Line, pos.Col, cat, code, d.FlattenedMessage())

	if opts.Context {
		writeContext(w, d, pos.Line, int(pos.Col))
	}
}

func displayPath(path string, opts PrettyOpts) string {
	switch opts.PathMode {
	case PathModeRelative:
		if opts.BaseDir == "" {
			return path
		}
		return pathutil.RelativeTo(opts.BaseDir, path, "", pathutil.Identity, false)
	case PathModeBasename:
		if idx := strings.LastIndex(path, pathutil.Separator); idx >= 0 {
			return path[idx+1:]
		}
		return path
	}
	return path
}

// writeContext prints the source line and underlines the diagnostic's span
// within it. Widths are measured in display cells so wide runes line up.
func writeContext(w io.Writer, d *diag.Diagnostic, line uint32, col int) {
	text := d.File.LineText(line)
	if text == "" && d.File.TextLength() == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", text)

	if col < 1 {
		col = 1
	}
	prefix := text
	if col-1 <= len(text) {
		prefix = text[:col-1]
	}
	pad := runewidth.StringWidth(prefix)

	span := d.Length
	remain := len(text) - (col - 1)
	if span > remain {
		span = remain
	}
	underline := "^"
	if span > 1 {
		spanned := text[col-1 : col-1+span]
		if width := runewidth.StringWidth(spanned); width > 1 {
			underline += strings.Repeat("~", width-1)
		}
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), underline)
}
