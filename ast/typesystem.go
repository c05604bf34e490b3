package ast

// SchemaDefinition is a `schema { query: Q, mutation: M, subscription: S }`
// block.
type SchemaDefinition struct {
	Located
	Description    *StringValue
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

func (*SchemaDefinition) Kind() Kind             { return KindSchemaDefinition }
func (*SchemaDefinition) isDefinition()           {}
func (*SchemaDefinition) isTypeSystemDefinition() {}

// OperationTypeDefinition binds one operation kind to its root type inside
// a SchemaDefinition.
type OperationTypeDefinition struct {
	Located
	Operation OperationType
	Type      *NamedType
}

func (*OperationTypeDefinition) Kind() Kind { return KindOperationTypeDefinition }

// ScalarTypeDefinition declares a custom scalar.
type ScalarTypeDefinition struct {
	Located
	Description *StringValue
	Name        *Name
	Directives  []*Directive
}

func (*ScalarTypeDefinition) Kind() Kind             { return KindScalarTypeDefinition }
func (*ScalarTypeDefinition) isDefinition()           {}
func (*ScalarTypeDefinition) isTypeSystemDefinition() {}

// ObjectTypeDefinition declares an object type: its interfaces, directives
// and field set.
type ObjectTypeDefinition struct {
	Located
	Description *StringValue
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

func (*ObjectTypeDefinition) Kind() Kind             { return KindObjectTypeDefinition }
func (*ObjectTypeDefinition) isDefinition()           {}
func (*ObjectTypeDefinition) isTypeSystemDefinition() {}

// FieldDefinition declares one field of an object or interface type.
type FieldDefinition struct {
	Located
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  []*Directive
}

func (*FieldDefinition) Kind() Kind { return KindFieldDefinition }

// InputValueDefinition declares one argument (of a field or directive) or
// one field of an input object type.
type InputValueDefinition struct {
	Located
	Description  *StringValue
	Name         *Name
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

func (*InputValueDefinition) Kind() Kind { return KindInputValueDefinition }

// InterfaceTypeDefinition declares an interface type, including interfaces
// it itself implements (interfaces-implementing-interfaces).
type InterfaceTypeDefinition struct {
	Located
	Description *StringValue
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

func (*InterfaceTypeDefinition) Kind() Kind             { return KindInterfaceTypeDefinition }
func (*InterfaceTypeDefinition) isDefinition()           {}
func (*InterfaceTypeDefinition) isTypeSystemDefinition() {}

// UnionTypeDefinition declares a union of object types.
type UnionTypeDefinition struct {
	Located
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Types       []*NamedType
}

func (*UnionTypeDefinition) Kind() Kind             { return KindUnionTypeDefinition }
func (*UnionTypeDefinition) isDefinition()           {}
func (*UnionTypeDefinition) isTypeSystemDefinition() {}

// EnumTypeDefinition declares an enum and its values.
type EnumTypeDefinition struct {
	Located
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Values      []*EnumValueDefinition
}

func (*EnumTypeDefinition) Kind() Kind             { return KindEnumTypeDefinition }
func (*EnumTypeDefinition) isDefinition()           {}
func (*EnumTypeDefinition) isTypeSystemDefinition() {}

// EnumValueDefinition declares one member of an EnumTypeDefinition.
type EnumValueDefinition struct {
	Located
	Description *StringValue
	Name        *Name
	Directives  []*Directive
}

func (*EnumValueDefinition) Kind() Kind { return KindEnumValueDefinition }

// InputObjectTypeDefinition declares an input object type and its fields.
type InputObjectTypeDefinition struct {
	Located
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Fields      []*InputValueDefinition
}

func (*InputObjectTypeDefinition) Kind() Kind             { return KindInputObjectTypeDefinition }
func (*InputObjectTypeDefinition) isDefinition()           {}
func (*InputObjectTypeDefinition) isTypeSystemDefinition() {}

// DirectiveDefinition declares a directive: its arguments, whether it may
// be applied repeatedly at one location, and the locations it is valid at
// (the locations themselves are validated against a closed set by the
// parser; whether a given use satisfies them is a semantic rule, out of
// scope here).
type DirectiveDefinition struct {
	Located
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []*Name
}

func (*DirectiveDefinition) Kind() Kind             { return KindDirectiveDefinition }
func (*DirectiveDefinition) isDefinition()           {}
func (*DirectiveDefinition) isTypeSystemDefinition() {}
