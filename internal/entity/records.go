package entity

// Resolver is the opaque handle to the checker context that owns a type or
// signature record. The core allocates records on the checker's behalf and
// never looks inside.
type Resolver any

// Node is the shared shape of every syntax node. Pos and End are byte
// offsets, -1 until set. Parent is a non-owning back-reference resolved
// through the arena, never by pointer ownership.
type Node struct {
	Kind   NodeKind
	Pos    int
	End    int
	Flags  NodeFlags
	Parent NodeID
}

// Symbol is the shared shape of a declaration-space entry.
type Symbol struct {
	Flags SymbolFlags
	Name  string
}

// Type is the shared shape of a type record, owned by a checker context.
type Type struct {
	Flags    TypeFlags
	Resolver Resolver
}

// Signature is the shared shape of a call/construct signature record.
type Signature struct {
	Resolver Resolver
}
