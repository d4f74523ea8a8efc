// Package source holds source file records and the canonical-name-keyed
// registry the rest of the front end uses to identify files.
package source

import (
	"crypto/sha256"
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/pathutil"
)

// File captures the identity and content of a single source file. Path is
// stored in normalized form and serves as the file's identity string in
// diagnostic ordering.
type File struct {
	Path    string
	Text    string
	LineIdx []uint32
	Hash    [32]byte
}

// LineCol is a 1-based human-readable position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// NewFile builds a file record: the path is slash-normalized and the line
// index is computed once up front.
func NewFile(path, text string) *File {
	return &File{
		Path:    pathutil.Normalize(path),
		Text:    text,
		LineIdx: buildLineIndex(text),
		Hash:    sha256.Sum256([]byte(text)),
	}
}

// TextLength returns the content length in bytes.
func (f *File) TextLength() int {
	return len(f.Text)
}

func buildLineIndex(text string) []uint32 {
	var idx []uint32
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("line offset overflow: %w", err))
			}
			idx = append(idx, off)
		}
	}
	return idx
}

// LineText returns the content of a 1-based line without its newline, or ""
// for a line that does not exist.
func (f *File) LineText(line uint32) string {
	if line == 0 {
		return ""
	}
	start := 0
	if line >= 2 {
		if int(line-2) >= len(f.LineIdx) {
			return ""
		}
		start = int(f.LineIdx[line-2]) + 1
	}
	end := len(f.Text)
	if int(line-1) < len(f.LineIdx) {
		end = int(f.LineIdx[line-1])
	}
	return f.Text[start:end]
}

// LineCol resolves a byte offset into a 1-based line and column by binary
// search over the newline index.
func (f *File) LineCol(offset int) LineCol {
	off, err := safecast.Conv[uint32](offset)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	if len(f.LineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	lo, hi := 0, len(f.LineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if f.LineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	// hi is the last newline strictly before off
	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	lineStart := f.LineIdx[hi] + 1
	return LineCol{Line: uint32(hi) + 2, Col: off - lineStart + 1}
}
