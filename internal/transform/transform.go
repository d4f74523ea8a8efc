// Package transform composes lowering passes into a single callable pass.
// The passes themselves belong to the emit layer; this package only decides
// which ones run for a configured language target and threads the statement
// sequence through them.
package transform

import (
	"lumen/internal/entity"
	"lumen/internal/project"
)

// Context is the capability object handed to every pass: the node storage
// statements live in and the opaque resolver of the owning compilation.
// Passes allocate replacement nodes through Context.Nodes, which in turn
// dereferences the entity registry on every allocation.
type Context struct {
	Nodes    *entity.Nodes
	Resolver entity.Resolver
}

// Transformation rewrites an ordered statement sequence. Implementations
// must be pure with respect to the input slice: return it unchanged or
// return a new slice.
type Transformation func(*Context, []entity.NodeID) []entity.NodeID

// Chain composes passes left to right into one Transformation. Nil slots
// are skipped. Chaining nothing yields the identity: the input sequence
// comes back untouched, same backing array.
func Chain(passes ...Transformation) Transformation {
	present := make([]Transformation, 0, len(passes))
	for _, p := range passes {
		if p != nil {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return func(_ *Context, stmts []entity.NodeID) []entity.NodeID {
			return stmts
		}
	}
	return func(ctx *Context, stmts []entity.NodeID) []entity.NodeID {
		for _, p := range present {
			stmts = p(ctx, stmts)
		}
		return stmts
	}
}

// ForTarget selects the pass list for a language target. Passes are ordered
// newest-semantics-first and always run in that order; the trailing legacy
// pass is only included when the target predates TargetV6.
func ForTarget(target project.Target, latest, modern, legacy Transformation) []Transformation {
	if target < project.TargetV6 {
		return []Transformation{latest, modern, legacy}
	}
	return []Transformation{latest, modern}
}

// Pipeline is the one-call form: compose the target-selected passes into a
// single Transformation.
func Pipeline(target project.Target, latest, modern, legacy Transformation) Transformation {
	return Chain(ForTarget(target, latest, modern, legacy)...)
}
