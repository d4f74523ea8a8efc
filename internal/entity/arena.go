package entity

import (
	"fmt"

	"fortio.org/safecast"
)

// NodeID indexes a node inside a Nodes arena. IDs are 1-based; zero is the
// "no node" sentinel, which is what an unset Parent holds.
type NodeID uint32

// NoNodeID is the absent-node sentinel.
const NoNodeID NodeID = 0

// IsValid reports whether the ID refers to an allocated node.
func (id NodeID) IsValid() bool { return id != NoNodeID }

// Arena is append-only storage with 1-based indices.
type Arena[T any] struct {
	data []T
}

// NewArena creates an arena with capacity capHint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	idx, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}
	return idx
}

// Get returns a pointer to the element at index, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

// Len returns the number of allocated elements.
func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data))
}

// Nodes stores node records and hands out NodeIDs. All construction goes
// through the current allocator registry; Nodes never caches a constructor.
type Nodes struct {
	arena *Arena[Node]
}

// NewNodes creates node storage with capacity capHint.
func NewNodes(capHint uint) *Nodes {
	return &Nodes{arena: NewArena[Node](capHint)}
}

// New allocates a node of the given kind through the current registry and
// stamps its span.
func (n *Nodes) New(kind NodeKind, pos, end int) NodeID {
	node := NewNode(kind)
	node.Pos = pos
	node.End = end
	return NodeID(n.arena.Allocate(node))
}

// Get resolves an ID to its record.
func (n *Nodes) Get(id NodeID) *Node {
	return n.arena.Get(uint32(id))
}

// SetParent records the non-owning back-reference from child to parent.
func (n *Nodes) SetParent(child, parent NodeID) {
	if node := n.Get(child); node != nil {
		node.Parent = parent
	}
}

// Len returns the number of allocated nodes.
func (n *Nodes) Len() uint32 {
	return n.arena.Len()
}
