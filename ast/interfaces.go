package ast

// Node is implemented by every AST node: a Kind tag and its source
// Location (nil when parsed with NoLocation).
type Node interface {
	Kind() Kind
	GetLoc() *Location
}

// Definition is a top-level member of a Document: an executable definition
// (operation or fragment), a type-system definition, or a type extension.
// The unexported isDefinition marker keeps this a closed family — only
// types in this package may satisfy it.
type Definition interface {
	Node
	isDefinition()
}

// ExecutableDefinition narrows Definition to OperationDefinition and
// FragmentDefinition.
type ExecutableDefinition interface {
	Definition
	isExecutableDefinition()
}

// TypeSystemDefinition narrows Definition to schema/type/directive
// definitions.
type TypeSystemDefinition interface {
	Definition
	isTypeSystemDefinition()
}

// TypeExtension narrows Definition to `extend ...` forms. Only
// ObjectTypeExtension is implemented; see the design notes on the partial
// extension grammar.
type TypeExtension interface {
	Definition
	isTypeExtension()
}

// Selection is a member of a SelectionSet: a field, a fragment spread, or
// an inline fragment.
type Selection interface {
	Node
	isSelection()
}

// Value is a GraphQL value literal or variable reference.
type Value interface {
	Node
	isValue()
}

// Type is a type reference: a named type, a list type, or a non-null
// wrapper around either.
type Type interface {
	Node
	isType()
}
