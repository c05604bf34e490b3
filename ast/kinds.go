package ast

// Kind discriminates the closed family of AST node types. It is the
// "tag" of the tagged-variant representation: rather than a class
// hierarchy, every node is a fixed-shape struct whose Kind() method
// returns one of these constants.
type Kind string

const (
	KindName      Kind = "Name"
	KindVariable  Kind = "Variable"
	KindDocument  Kind = "Document"

	KindOperationDefinition Kind = "OperationDefinition"
	KindFragmentDefinition  Kind = "FragmentDefinition"

	KindVariableDefinition Kind = "VariableDefinition"
	KindSelectionSet       Kind = "SelectionSet"
	KindField              Kind = "Field"
	KindArgument           Kind = "Argument"
	KindFragmentSpread     Kind = "FragmentSpread"
	KindInlineFragment     Kind = "InlineFragment"
	KindDirective          Kind = "Directive"

	KindIntValue     Kind = "IntValue"
	KindFloatValue   Kind = "FloatValue"
	KindStringValue  Kind = "StringValue"
	KindBooleanValue Kind = "BooleanValue"
	KindNullValue    Kind = "NullValue"
	KindEnumValue    Kind = "EnumValue"
	KindListValue    Kind = "ListValue"
	KindObjectValue  Kind = "ObjectValue"
	KindObjectField  Kind = "ObjectField"

	KindNamedType   Kind = "NamedType"
	KindListType    Kind = "ListType"
	KindNonNullType Kind = "NonNullType"

	KindSchemaDefinition           Kind = "SchemaDefinition"
	KindOperationTypeDefinition    Kind = "OperationTypeDefinition"
	KindScalarTypeDefinition       Kind = "ScalarTypeDefinition"
	KindObjectTypeDefinition       Kind = "ObjectTypeDefinition"
	KindFieldDefinition            Kind = "FieldDefinition"
	KindInputValueDefinition       Kind = "InputValueDefinition"
	KindInterfaceTypeDefinition    Kind = "InterfaceTypeDefinition"
	KindUnionTypeDefinition        Kind = "UnionTypeDefinition"
	KindEnumTypeDefinition         Kind = "EnumTypeDefinition"
	KindEnumValueDefinition        Kind = "EnumValueDefinition"
	KindInputObjectTypeDefinition  Kind = "InputObjectTypeDefinition"
	KindDirectiveDefinition        Kind = "DirectiveDefinition"

	KindObjectTypeExtension Kind = "ObjectTypeExtension"
)

// OperationType enumerates the three executable operation kinds.
type OperationType string

const (
	OperationQuery        OperationType = "query"
	OperationMutation     OperationType = "mutation"
	OperationSubscription OperationType = "subscription"
)
