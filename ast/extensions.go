package ast

// ObjectTypeExtension is `extend type Name implements? directives?
// fields?`. It is the only type extension this parser recognizes; see the
// design notes on the partial extension grammar. At least one of
// Interfaces, Directives, or Fields is non-empty — the parser rejects an
// extension with none of the three.
type ObjectTypeExtension struct {
	Located
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

func (*ObjectTypeExtension) Kind() Kind         { return KindObjectTypeExtension }
func (*ObjectTypeExtension) isDefinition()      {}
func (*ObjectTypeExtension) isTypeExtension()   {}
