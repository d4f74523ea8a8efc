package diag

import "math"

// Bag accumulates diagnostics from producers up to a cap.
type Bag struct {
	items []*Diagnostic
	max   uint16
}

// clampCap squeezes a requested cap into the representable range. The cap is
// user-facing configuration, so out-of-range values saturate rather than fault.
func clampCap(n int) uint16 {
	if n < 0 {
		return 0
	}
	if n > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(n)
}

// NewBag creates a bag holding at most max diagnostics. Caps outside the
// uint16 range are clamped.
func NewBag(max int) *Bag {
	capped := clampCap(max)
	return &Bag{
		items: make([]*Diagnostic, 0, capped),
		max:   capped,
	}
}

// Add appends a diagnostic, returning false once the cap is reached.
func (b *Bag) Add(d *Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap returns the bag's capacity limit.
func (b *Bag) Cap() uint16 {
	return b.max
}

// Len returns the number of stored diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether any stored diagnostic is an error.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Category == CatError {
			return true
		}
	}
	return false
}

// Items returns a read-only view of the stored diagnostics. Callers must not
// modify the returned slice.
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Merge appends all diagnostics from other, growing the cap when needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := clampCap(len(b.items) + len(other.items))
	if newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
}

// SortAndDedup orders the stored diagnostics by Compare and drops adjacent
// duplicates in place.
func (b *Bag) SortAndDedup() {
	b.items = SortAndDedup(b.items)
}
