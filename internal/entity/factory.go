package entity

import "sync/atomic"

// Allocator is the registry of entity constructors. It is replaced as a
// whole unit: a harness installs its own Allocator before any allocation
// happens and every subsequent allocation sees the new constructors.
// Records already allocated are unaffected by a swap.
type Allocator struct {
	MakeNode      func(kind NodeKind) Node
	MakeSymbol    func(flags SymbolFlags, name string) Symbol
	MakeType      func(r Resolver, flags TypeFlags) Type
	MakeSignature func(r Resolver) Signature
}

// registry is the process-wide slot. Install it once at startup (done below
// with the defaults), optionally swap it wholesale before allocation begins,
// and treat it as read-only afterwards.
var registry atomic.Pointer[Allocator]

func init() {
	registry.Store(DefaultAllocator())
}

// DefaultAllocator returns the stock constructors: nodes come out with their
// kind set, unset position markers, zero flags and no parent.
func DefaultAllocator() *Allocator {
	return &Allocator{
		MakeNode: func(kind NodeKind) Node {
			return Node{Kind: kind, Pos: -1, End: -1, Parent: NoNodeID}
		},
		MakeSymbol: func(flags SymbolFlags, name string) Symbol {
			return Symbol{Flags: flags, Name: name}
		},
		MakeType: func(r Resolver, flags TypeFlags) Type {
			return Type{Flags: flags, Resolver: r}
		},
		MakeSignature: func(r Resolver) Signature {
			return Signature{Resolver: r}
		},
	}
}

// Current returns the installed allocator. Call sites must re-read it for
// every allocation instead of capturing constructor values.
func Current() *Allocator {
	return registry.Load()
}

// Install replaces the registry and returns the previous allocator so a
// harness can restore it on teardown.
func Install(a *Allocator) *Allocator {
	return registry.Swap(a)
}

// NewNode allocates a node record through the current registry.
func NewNode(kind NodeKind) Node {
	return Current().MakeNode(kind)
}

// NewSymbol allocates a symbol record through the current registry.
func NewSymbol(flags SymbolFlags, name string) Symbol {
	return Current().MakeSymbol(flags, name)
}

// NewType allocates a type record through the current registry.
func NewType(r Resolver, flags TypeFlags) Type {
	return Current().MakeType(r, flags)
}

// NewSignature allocates a signature record through the current registry.
func NewSignature(r Resolver) Signature {
	return Current().MakeSignature(r)
}
