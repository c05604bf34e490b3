package parser

import (
	"strings"
	"testing"

	"github.com/Protocol-Lattice/graphql-core/ast"
)

func TestParse_ShorthandQuery(t *testing.T) {
	doc, err := Parse("{ field }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Definitions) != 1 {
		t.Fatalf("got %d definitions, want 1", len(doc.Definitions))
	}
	op, ok := doc.Definitions[0].(*ast.OperationDefinition)
	if !ok {
		t.Fatalf("definition is %T, want *ast.OperationDefinition", doc.Definitions[0])
	}
	if op.Operation != ast.OperationQuery {
		t.Errorf("Operation = %q, want query", op.Operation)
	}
	if op.Name != nil {
		t.Errorf("Name = %+v, want nil", op.Name)
	}
	if len(op.SelectionSet.Selections) != 1 {
		t.Fatalf("got %d selections, want 1", len(op.SelectionSet.Selections))
	}
	field, ok := op.SelectionSet.Selections[0].(*ast.Field)
	if !ok || field.Name.Value != "field" {
		t.Fatalf("selection = %+v, want Field named field", op.SelectionSet.Selections[0])
	}
}

func TestParse_AliasAndArguments(t *testing.T) {
	doc, err := Parse(`{ total: count(limit: 10, active: true) }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	if field.Alias == nil || field.Alias.Value != "total" {
		t.Fatalf("Alias = %+v, want total", field.Alias)
	}
	if field.Name.Value != "count" {
		t.Fatalf("Name = %q, want count", field.Name.Value)
	}
	if len(field.Arguments) != 2 {
		t.Fatalf("got %d arguments, want 2", len(field.Arguments))
	}
	limit := field.Arguments[0]
	if limit.Name.Value != "limit" {
		t.Fatalf("Arguments[0].Name = %q, want limit", limit.Name.Value)
	}
	if iv, ok := limit.Value.(*ast.IntValue); !ok || iv.Value != "10" {
		t.Fatalf("Arguments[0].Value = %+v, want IntValue 10", limit.Value)
	}
	active := field.Arguments[1]
	if bv, ok := active.Value.(*ast.BooleanValue); !ok || !bv.Value {
		t.Fatalf("Arguments[1].Value = %+v, want BooleanValue true", active.Value)
	}
}

func TestParse_EmptyArgumentParensFails(t *testing.T) {
	_, err := Parse(`{ f() }`)
	if err == nil {
		t.Fatal("expected an error for empty argument parentheses")
	}
}

func TestParse_EmptyVariableDefinitionParensFails(t *testing.T) {
	_, err := Parse(`query Q() { f }`)
	if err == nil {
		t.Fatal("expected an error for empty variable-definition parentheses")
	}
}

func TestParse_FragmentSpreadVsInlineFragment(t *testing.T) {
	doc, err := Parse(`{
		...namedFragment
		... on User { id }
		... @include(if: true) { name }
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op := doc.Definitions[0].(*ast.OperationDefinition)
	selections := op.SelectionSet.Selections
	if len(selections) != 3 {
		t.Fatalf("got %d selections, want 3", len(selections))
	}

	spread, ok := selections[0].(*ast.FragmentSpread)
	if !ok || spread.Name.Value != "namedFragment" {
		t.Fatalf("selections[0] = %+v, want FragmentSpread namedFragment", selections[0])
	}

	typed, ok := selections[1].(*ast.InlineFragment)
	if !ok || typed.TypeCondition == nil || typed.TypeCondition.Name.Value != "User" {
		t.Fatalf("selections[1] = %+v, want InlineFragment on User", selections[1])
	}

	untyped, ok := selections[2].(*ast.InlineFragment)
	if !ok || untyped.TypeCondition != nil {
		t.Fatalf("selections[2] = %+v, want InlineFragment with no type condition", selections[2])
	}
	if len(untyped.Directives) != 1 || untyped.Directives[0].Name.Value != "include" {
		t.Fatalf("selections[2].Directives = %+v, want one @include", untyped.Directives)
	}
}

func TestParse_FragmentSpreadRejectsOn(t *testing.T) {
	_, err := Parse(`{ ...on }`)
	if err == nil {
		t.Fatal("expected an error for a fragment spread named \"on\"")
	}
}

func TestParseValue_NonConstList(t *testing.T) {
	val, err := ParseValue(`[1, $var, "s", null]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := val.(*ast.ListValue)
	if !ok {
		t.Fatalf("got %T, want *ast.ListValue", val)
	}
	if len(list.Values) != 4 {
		t.Fatalf("got %d values, want 4", len(list.Values))
	}
	if _, ok := list.Values[0].(*ast.IntValue); !ok {
		t.Errorf("Values[0] = %T, want *ast.IntValue", list.Values[0])
	}
	variable, ok := list.Values[1].(*ast.Variable)
	if !ok || variable.Name.Value != "var" {
		t.Fatalf("Values[1] = %+v, want Variable var", list.Values[1])
	}
	if _, ok := list.Values[2].(*ast.StringValue); !ok {
		t.Errorf("Values[2] = %T, want *ast.StringValue", list.Values[2])
	}
	if _, ok := list.Values[3].(*ast.NullValue); !ok {
		t.Errorf("Values[3] = %T, want *ast.NullValue", list.Values[3])
	}
}

func TestParse_ConstContextRejectsVariable(t *testing.T) {
	_, err := Parse(`scalar Foo @deprecated(reason: $why)`)
	if err == nil {
		t.Fatal("expected an error for a variable in a const context")
	}
}

func TestParseType_NestedTypeReference(t *testing.T) {
	typ, err := ParseType(`[[String!]!]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := typ.(*ast.ListType)
	if !ok {
		t.Fatalf("got %T, want *ast.ListType", typ)
	}
	middle, ok := outer.Type.(*ast.NonNullType)
	if !ok {
		t.Fatalf("outer.Type = %T, want *ast.NonNullType", outer.Type)
	}
	inner, ok := middle.Type.(*ast.ListType)
	if !ok {
		t.Fatalf("middle.Type = %T, want *ast.ListType", middle.Type)
	}
	innermost, ok := inner.Type.(*ast.NonNullType)
	if !ok {
		t.Fatalf("inner.Type = %T, want *ast.NonNullType", inner.Type)
	}
	named, ok := innermost.Type.(*ast.NamedType)
	if !ok || named.Name.Value != "String" {
		t.Fatalf("innermost.Type = %+v, want NamedType String", innermost.Type)
	}
}

func TestParse_EmptyDocumentFails(t *testing.T) {
	_, err := Parse("")
	if err == nil {
		t.Fatal("expected an error for an empty document")
	}
}

func TestParse_DescriptionPrefixedDefinition(t *testing.T) {
	doc, err := Parse(`"A scalar describing a timestamp." scalar DateTime`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def, ok := doc.Definitions[0].(*ast.ScalarTypeDefinition)
	if !ok {
		t.Fatalf("got %T, want *ast.ScalarTypeDefinition", doc.Definitions[0])
	}
	if def.Description == nil || def.Description.Value != "A scalar describing a timestamp." {
		t.Fatalf("Description = %+v, want the leading string", def.Description)
	}
	if def.Name.Value != "DateTime" {
		t.Fatalf("Name = %q, want DateTime", def.Name.Value)
	}
}

func TestParse_ObjectTypeDefinitionWithImplementsAndFields(t *testing.T) {
	doc, err := Parse(`type User implements Node Timestamped {
		id: ID!
		name: String
		friends(limit: Int = 10): [User!]
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def, ok := doc.Definitions[0].(*ast.ObjectTypeDefinition)
	if !ok {
		t.Fatalf("got %T, want *ast.ObjectTypeDefinition", doc.Definitions[0])
	}
	if def.Name.Value != "User" {
		t.Fatalf("Name = %q, want User", def.Name.Value)
	}
	if len(def.Interfaces) != 2 || def.Interfaces[0].Name.Value != "Node" || def.Interfaces[1].Name.Value != "Timestamped" {
		t.Fatalf("Interfaces = %+v, want [Node Timestamped]", def.Interfaces)
	}
	if len(def.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(def.Fields))
	}
	friends := def.Fields[2]
	if friends.Name.Value != "friends" {
		t.Fatalf("Fields[2].Name = %q, want friends", friends.Name.Value)
	}
	if len(friends.Arguments) != 1 || friends.Arguments[0].Name.Value != "limit" {
		t.Fatalf("Fields[2].Arguments = %+v, want one limit arg", friends.Arguments)
	}
	if iv, ok := friends.Arguments[0].DefaultValue.(*ast.IntValue); !ok || iv.Value != "10" {
		t.Fatalf("Fields[2].Arguments[0].DefaultValue = %+v, want IntValue 10", friends.Arguments[0].DefaultValue)
	}
	if _, ok := friends.Type.(*ast.ListType); !ok {
		t.Fatalf("Fields[2].Type = %T, want *ast.ListType", friends.Type)
	}
}

func TestParse_SchemaDefinition(t *testing.T) {
	doc, err := Parse(`schema {
		query: Query
		mutation: Mutation
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def, ok := doc.Definitions[0].(*ast.SchemaDefinition)
	if !ok {
		t.Fatalf("got %T, want *ast.SchemaDefinition", doc.Definitions[0])
	}
	if len(def.OperationTypes) != 2 {
		t.Fatalf("got %d operation types, want 2", len(def.OperationTypes))
	}
	if def.OperationTypes[0].Operation != ast.OperationQuery || def.OperationTypes[0].Type.Name.Value != "Query" {
		t.Fatalf("OperationTypes[0] = %+v, want query:Query", def.OperationTypes[0])
	}
}

func TestParse_UnionTypeDefinition(t *testing.T) {
	doc, err := Parse(`union SearchResult = Human | Droid | Starship`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := doc.Definitions[0].(*ast.UnionTypeDefinition)
	if len(def.Types) != 3 || def.Types[2].Name.Value != "Starship" {
		t.Fatalf("Types = %+v, want [Human Droid Starship]", def.Types)
	}
}

func TestParse_EnumTypeDefinitionRejectsReservedNames(t *testing.T) {
	if _, err := Parse(`enum Status { ACTIVE INACTIVE }`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Parse(`enum Bad { true }`); err == nil {
		t.Fatal("expected an error for an enum value named true")
	}
}

func TestParse_InputObjectTypeDefinition(t *testing.T) {
	doc, err := Parse(`input UserFilter {
		name: String
		minAge: Int = 0
	}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := doc.Definitions[0].(*ast.InputObjectTypeDefinition)
	if len(def.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(def.Fields))
	}
}

func TestParse_DirectiveDefinitionAndClosedLocationSet(t *testing.T) {
	doc, err := Parse(`directive @auth(role: String!) repeatable on FIELD_DEFINITION | OBJECT`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := doc.Definitions[0].(*ast.DirectiveDefinition)
	if !def.Repeatable {
		t.Error("Repeatable = false, want true")
	}
	if len(def.Locations) != 2 || def.Locations[0].Value != "FIELD_DEFINITION" || def.Locations[1].Value != "OBJECT" {
		t.Fatalf("Locations = %+v, want [FIELD_DEFINITION OBJECT]", def.Locations)
	}

	_, err = Parse(`directive @bad on NOT_A_REAL_LOCATION`)
	if err == nil {
		t.Fatal("expected an error for a directive location outside the closed set")
	}
}

func TestParse_ObjectTypeExtension(t *testing.T) {
	doc, err := Parse(`extend type User { nickname: String }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ext, ok := doc.Definitions[0].(*ast.ObjectTypeExtension)
	if !ok {
		t.Fatalf("got %T, want *ast.ObjectTypeExtension", doc.Definitions[0])
	}
	if ext.Name.Value != "User" || len(ext.Fields) != 1 {
		t.Fatalf("ext = %+v, want one field on User", ext)
	}
}

func TestParse_ObjectTypeExtensionRequiresContent(t *testing.T) {
	_, err := Parse(`extend type User`)
	if err == nil {
		t.Fatal("expected an error for an extension with no interfaces, directives, or fields")
	}
}

func TestParse_UnsupportedExtensionKindFails(t *testing.T) {
	_, err := Parse(`extend scalar DateTime @deprecated`)
	if err == nil {
		t.Fatal("expected an error for a non-object type-system extension")
	}
}

func TestParse_WithNoLocationOmitsLocations(t *testing.T) {
	doc, err := Parse("{ field }", WithNoLocation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.GetLoc() != nil {
		t.Errorf("Document.Loc = %+v, want nil", doc.GetLoc())
	}
	op := doc.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	if field.GetLoc() != nil {
		t.Errorf("Field.Loc = %+v, want nil", field.GetLoc())
	}
}

func TestParse_WithLocationsPresentByDefault(t *testing.T) {
	doc, err := Parse("{ field }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.GetLoc() == nil {
		t.Fatal("Document.Loc = nil, want a populated Location")
	}
}

func TestParse_UnexpectedTokenReportsSyntaxError(t *testing.T) {
	_, err := Parse(`{ field(arg: ) }`)
	if err == nil {
		t.Fatal("expected a syntax error for a missing argument value")
	}
	if !strings.Contains(err.Error(), "Syntax Error") {
		t.Errorf("Error() = %q, want it to mention Syntax Error", err.Error())
	}
}

func TestParse_DeeplyNestedSelectionSetHitsRecursionGuard(t *testing.T) {
	var b strings.Builder
	b.WriteString("{ ")
	depth := maxParserDepth + 10
	for i := 0; i < depth; i++ {
		b.WriteString("a { ")
	}
	b.WriteString("x")
	for i := 0; i < depth; i++ {
		b.WriteString(" }")
	}
	b.WriteString(" }")

	_, err := Parse(b.String())
	if err == nil {
		t.Fatal("expected an error for a selection set nested past the recursion guard")
	}
}
