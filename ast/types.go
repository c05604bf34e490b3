package ast

// NamedType is a bare type reference such as `String` or `User`.
type NamedType struct {
	Located
	Name *Name
}

func (*NamedType) Kind() Kind { return KindNamedType }
func (*NamedType) isType()    {}

// ListType is `[Type]`.
type ListType struct {
	Located
	Type Type
}

func (*ListType) Kind() Kind { return KindListType }
func (*ListType) isType()    {}

// NonNullType is `Type!`. By construction (the parser never wraps a
// NonNullType directly around another NonNullType) its Type is always a
// *NamedType or *ListType.
type NonNullType struct {
	Located
	Type Type
}

func (*NonNullType) Kind() Kind { return KindNonNullType }
func (*NonNullType) isType()    {}
