package diag

import (
	"cmp"
	"sort"

	"lumen/internal/source"
)

// Compare defines the total order diagnostics are reported in: file identity
// (diagnostics without a file sort before any with one), then start, length,
// code, and finally message text with a chain-aware walk. The order is the
// determinism contract for output and for deduplication.
func Compare(a, b *Diagnostic) int {
	if c := compareFiles(a.File, b.File); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Length, b.Length); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Code, b.Code); c != 0 {
		return c
	}
	return compareMessageText(a, b)
}

// compareFiles orders by identity string; an absent file sorts first.
func compareFiles(a, b *source.File) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(a.Path, b.Path)
}

// compareMessageText walks both chains link by link. The first differing
// link decides; when one chain is a prefix of the other the shorter sorts
// first.
func compareMessageText(a, b *Diagnostic) int {
	ca, cb := a.chainHead(), b.chainHead()
	for ca != nil && cb != nil {
		if c := cmp.Compare(ca.Message, cb.Message); c != 0 {
			return c
		}
		ca, cb = ca.Next, cb.Next
	}
	switch {
	case ca == nil && cb == nil:
		return 0
	case ca == nil:
		return -1
	default:
		return 1
	}
}

// SortAndDedup stable-sorts the list by Compare, then drops every element
// comparing equal to the previously kept one, so the first occurrence of an
// equal run survives. The input slice's ordering is consumed.
func SortAndDedup(list []*Diagnostic) []*Diagnostic {
	sort.SliceStable(list, func(i, j int) bool {
		return Compare(list[i], list[j]) < 0
	})
	out := list[:0]
	var prev *Diagnostic
	for _, d := range list {
		if prev != nil && Compare(d, prev) == 0 {
			continue
		}
		out = append(out, d)
		prev = d
	}
	return out
}
