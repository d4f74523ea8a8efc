// Package entity defines the compiler's core entity records (nodes, symbols,
// types, signatures), arena storage for them, and the process-wide allocator
// registry through which every record is constructed.
package entity

// NodeKind is the discriminant for polymorphic dispatch over node records.
type NodeKind uint16

const (
	KindUnknown NodeKind = iota
	KindIdentifier
	KindLiteral
	KindBinaryExpr
	KindCallExpr
	KindSpreadExpr
	KindTemplateExpr
	KindVarStatement
	KindExprStatement
	KindBlock
	KindFuncDecl
	KindClassDecl
	KindSourceFile
)

func (k NodeKind) String() string {
	switch k {
	case KindIdentifier:
		return "Identifier"
	case KindLiteral:
		return "Literal"
	case KindBinaryExpr:
		return "BinaryExpr"
	case KindCallExpr:
		return "CallExpr"
	case KindSpreadExpr:
		return "SpreadExpr"
	case KindTemplateExpr:
		return "TemplateExpr"
	case KindVarStatement:
		return "VarStatement"
	case KindExprStatement:
		return "ExprStatement"
	case KindBlock:
		return "Block"
	case KindFuncDecl:
		return "FuncDecl"
	case KindClassDecl:
		return "ClassDecl"
	case KindSourceFile:
		return "SourceFile"
	}
	return "Unknown"
}

// NodeFlags carry parse- and bind-time markers on a node.
type NodeFlags uint32

const (
	// FlagSynthesized marks nodes produced by lowering passes rather than
	// the parser.
	FlagSynthesized NodeFlags = 1 << iota
	FlagHoisted
)

// SymbolFlags classify a symbol's declaration space.
type SymbolFlags uint32

const (
	SymVariable SymbolFlags = 1 << iota
	SymFunction
	SymClass
	SymAlias
)

// TypeFlags classify a type record.
type TypeFlags uint32

const (
	TypeAny TypeFlags = 1 << iota
	TypeString
	TypeNumber
	TypeObject
	TypeUnion
)
