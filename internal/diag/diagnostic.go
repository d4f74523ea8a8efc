package diag

import (
	"fmt"
	"strconv"
	"strings"

	"lumen/internal/assert"
	"lumen/internal/source"
)

// Diagnostic is the record surfaced to reporting layers. The five-field
// shape (File, Start, Length, Category, Code) plus Message/Chain is a stable
// contract; consumers serialize it as-is. Diagnostics are read-only after
// construction.
type Diagnostic struct {
	// File is nil for diagnostics not tied to a source location
	// (configuration errors, driver-level faults).
	File     *source.File
	Start    int
	Length   int
	Category Category
	Code     Code

	// Message is the outermost message text. When Chain is non-nil it
	// mirrors Chain.Message and the full explanation is the chain walk.
	Message string
	Chain   *MessageChain
}

// MessageChain is a linked sequence of explanations, outermost first, used
// for nested "error X caused by Y" reports.
type MessageChain struct {
	Message  string
	Category Category
	Code     Code
	Next     *MessageChain
}

// formatText substitutes {0}, {1}, ... placeholders with args in order.
func formatText(text string, args []any) string {
	if len(args) == 0 {
		return text
	}
	for i, a := range args {
		text = strings.ReplaceAll(text, "{"+strconv.Itoa(i)+"}", fmt.Sprint(a))
	}
	return text
}

func resolveText(msg *Message, args []any) string {
	return formatText(localizedText(msg), args)
}

// New builds a diagnostic with no file attachment.
func New(msg *Message, args ...any) *Diagnostic {
	return &Diagnostic{
		Category: msg.Category,
		Code:     msg.Code,
		Message:  resolveText(msg, args),
	}
}

// NewFile builds a diagnostic anchored to a span within file. A negative or
// out-of-bounds span is an internal compiler bug and fails fast.
func NewFile(file *source.File, start, length int, msg *Message, args ...any) *Diagnostic {
	checkSpan(file, start, length)
	return &Diagnostic{
		File:     file,
		Start:    start,
		Length:   length,
		Category: msg.Category,
		Code:     msg.Code,
		Message:  resolveText(msg, args),
	}
}

// NewFileFromChain builds a file diagnostic whose explanation is an already
// assembled message chain; category and code come from the chain head.
func NewFileFromChain(file *source.File, start, length int, chain *MessageChain) *Diagnostic {
	checkSpan(file, start, length)
	return &Diagnostic{
		File:     file,
		Start:    start,
		Length:   length,
		Category: chain.Category,
		Code:     chain.Code,
		Message:  chain.Message,
		Chain:    chain,
	}
}

func checkSpan(file *source.File, start, length int) {
	assert.That(start >= 0, "diagnostic start %d is negative", start)
	assert.That(length >= 0, "diagnostic length %d is negative", length)
	if file != nil {
		assert.That(start+length <= file.TextLength(),
			"diagnostic span %d+%d exceeds %q length %d", start, length, file.Path, file.TextLength())
	}
}

// NewChain prepends a new outer explanation layer in front of next. Passing
// nil starts a chain.
func NewChain(next *MessageChain, msg *Message, args ...any) *MessageChain {
	return &MessageChain{
		Message:  resolveText(msg, args),
		Category: msg.Category,
		Code:     msg.Code,
		Next:     next,
	}
}

// ConcatChains attaches tail behind head and returns head. Head must not
// already have a continuation; violating that is an internal bug, not a
// recoverable condition.
func ConcatChains(head, tail *MessageChain) *MessageChain {
	assert.That(head.Next == nil, "chain tail already occupied")
	head.Next = tail
	return head
}

// chainHead views the diagnostic's message as a chain regardless of how it
// was built, so comparison walks one representation.
func (d *Diagnostic) chainHead() *MessageChain {
	if d.Chain != nil {
		return d.Chain
	}
	return &MessageChain{Message: d.Message, Category: d.Category, Code: d.Code}
}

// FlattenedMessage renders the full explanation, one chain layer per line,
// each nested layer indented two spaces deeper.
func (d *Diagnostic) FlattenedMessage() string {
	if d.Chain == nil {
		return d.Message
	}
	var sb strings.Builder
	indent := 0
	for link := d.Chain; link != nil; link = link.Next {
		if indent > 0 {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat("  ", indent))
		}
		sb.WriteString(link.Message)
		indent++
	}
	return sb.String()
}
