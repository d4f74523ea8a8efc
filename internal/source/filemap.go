package source

import (
	"lumen/internal/pathutil"
)

// Canonicalizer folds a normalized path into its canonical spelling. Hosts
// with case-insensitive file systems fold case; others use the identity.
type Canonicalizer func(string) string

// CaseSensitive keys paths exactly as spelled.
var CaseSensitive Canonicalizer = pathutil.Identity

// CaseInsensitive folds paths to lower case before keying.
var CaseInsensitive Canonicalizer = pathutil.Fold

// FileMap is a registry keyed by canonical file name. Every operation runs
// the raw key through canonicalize(NormalizeSlashes(key)), so two spellings
// of the same file address the same entry. Last write wins.
type FileMap[T any] struct {
	canon   Canonicalizer
	entries map[string]T
}

// NewFileMap constructs an empty registry with the given canonicalizer.
func NewFileMap[T any](canon Canonicalizer) *FileMap[T] {
	if canon == nil {
		canon = CaseSensitive
	}
	return &FileMap[T]{
		canon:   canon,
		entries: make(map[string]T),
	}
}

func (m *FileMap[T]) key(raw string) string {
	return m.canon(pathutil.NormalizeSlashes(raw))
}

// Set stores value under the key's canonical form, replacing any previous
// entry.
func (m *FileMap[T]) Set(key string, value T) {
	m.entries[m.key(key)] = value
}

// Get returns the entry for key, reporting whether it exists.
func (m *FileMap[T]) Get(key string) (T, bool) {
	v, ok := m.entries[m.key(key)]
	return v, ok
}

// Contains reports whether an entry exists for key.
func (m *FileMap[T]) Contains(key string) bool {
	_, ok := m.entries[m.key(key)]
	return ok
}

// Remove drops the entry for key, if any.
func (m *FileMap[T]) Remove(key string) {
	delete(m.entries, m.key(key))
}

// Len returns the number of entries.
func (m *FileMap[T]) Len() int {
	return len(m.entries)
}

// ForEachValue visits every payload once, in no particular order.
func (m *FileMap[T]) ForEachValue(fn func(value T)) {
	for _, v := range m.entries {
		fn(v)
	}
}
