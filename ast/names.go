package ast

// Name is an identifier: a field name, type name, argument name, directive
// name, and so on. It is the leaf-most node in the grammar.
type Name struct {
	Located
	Value string
}

// Kind implements Node.
func (*Name) Kind() Kind { return KindName }

// Variable is a `$name` reference, valid only in non-const value contexts.
type Variable struct {
	Located
	Name *Name
}

// Kind implements Node.
func (*Variable) Kind() Kind { return KindVariable }
func (*Variable) isValue()   {}
