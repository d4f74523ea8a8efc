package diag

import (
	"strings"
	"testing"

	"lumen/internal/assert"
	"lumen/internal/source"
)

func expectFailure(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected an assertion failure")
		} else if _, ok := r.(assert.Failure); !ok {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	fn()
}

func TestFormatText(t *testing.T) {
	tests := []struct {
		text string
		args []any
		want string
	}{
		{"plain", nil, "plain"},
		{"File '{0}' not found.", []any{"a.lm"}, "File 'a.lm' not found."},
		{"{1} then {0}", []any{"first", "second"}, "second then first"},
		{"{0} and {0}", []any{"x"}, "x and x"},
		{"no placeholders", []any{"unused"}, "no placeholders"},
	}
	for _, tt := range tests {
		if got := formatText(tt.text, tt.args); got != tt.want {
			t.Errorf("formatText(%q, %v) = %q, want %q", tt.text, tt.args, got, tt.want)
		}
	}
}

func TestNewResolvesCatalogText(t *testing.T) {
	d := New(MsgFileNotFound, "main.lm")
	if d.Message != "File 'main.lm' not found." {
		t.Fatalf("unexpected message %q", d.Message)
	}
	if d.File != nil {
		t.Fatal("compiler diagnostic must not carry a file")
	}
	if d.Category != CatError || d.Code != MsgFileNotFound.Code {
		t.Fatalf("category/code not taken from catalog: %v %v", d.Category, d.Code)
	}
}

func TestLocalizationFallback(t *testing.T) {
	prev := SetLocaleTable(map[string]string{
		"file_not_found": "Datei '{0}' nicht gefunden.",
	})
	defer SetLocaleTable(prev)

	d := New(MsgFileNotFound, "a.lm")
	if d.Message != "Datei 'a.lm' nicht gefunden." {
		t.Fatalf("localized text not used: %q", d.Message)
	}
	// keys absent from the table fall back to catalog text
	d = New(MsgEmptyFile, "a.lm")
	if d.Message != "File 'a.lm' is empty." {
		t.Fatalf("fallback text not used: %q", d.Message)
	}
}

func TestNewFileValidatesSpan(t *testing.T) {
	f := source.NewFile("/a.lm", "let x = 1")

	d := NewFile(f, 4, 1, MsgEmptyFile, "a.lm")
	if d.File != f || d.Start != 4 || d.Length != 1 {
		t.Fatalf("diagnostic fields wrong: %+v", d)
	}

	expectFailure(t, func() { NewFile(f, -1, 0, MsgEmptyFile, "a.lm") })
	expectFailure(t, func() { NewFile(f, 0, -2, MsgEmptyFile, "a.lm") })
	expectFailure(t, func() { NewFile(f, 5, 100, MsgEmptyFile, "a.lm") })
	// end exactly at text length is fine
	NewFile(f, 0, f.TextLength(), MsgEmptyFile, "a.lm")
}

func TestChainPrepends(t *testing.T) {
	inner := NewChain(nil, MsgFileNotFound, "dep.lm")
	outer := NewChain(inner, MsgCouldNotResolvePath, "dep", "/src")

	if outer.Next != inner {
		t.Fatal("NewChain must link the previous head as next")
	}
	if !strings.Contains(outer.Message, "Cannot resolve") {
		t.Fatalf("outer layer text wrong: %q", outer.Message)
	}

	f := source.NewFile("/src/main.lm", "import dep")
	d := NewFileFromChain(f, 7, 3, outer)
	if d.Code != MsgCouldNotResolvePath.Code || d.Category != CatError {
		t.Fatal("diagnostic must take code/category from the chain head")
	}
	flat := d.FlattenedMessage()
	lines := strings.Split(flat, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 layers, got %q", flat)
	}
	if !strings.HasPrefix(lines[1], "  ") {
		t.Fatalf("nested layer must be indented: %q", lines[1])
	}
}

func TestConcatChains(t *testing.T) {
	head := NewChain(nil, MsgCouldNotResolvePath, "a", "b")
	tail := NewChain(nil, MsgFileNotFound, "a.lm")

	got := ConcatChains(head, tail)
	if got != head || head.Next != tail {
		t.Fatal("ConcatChains must link tail behind head and return head")
	}

	// concatenating onto an occupied head is a programming error
	expectFailure(t, func() { ConcatChains(head, tail) })
}
