package ast

// Document is the top-level parse product: a non-empty ordered list of
// definitions.
type Document struct {
	Located
	Definitions []Definition
}

// Kind implements Node.
func (*Document) Kind() Kind { return KindDocument }

// OperationDefinition is a query, mutation, or subscription — either the
// shorthand form (selection set only) or the full form with an operation
// keyword, optional name, variable definitions and directives.
type OperationDefinition struct {
	Located
	Operation           OperationType
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

// Kind implements Node.
func (*OperationDefinition) Kind() Kind            { return KindOperationDefinition }
func (*OperationDefinition) isDefinition()         {}
func (*OperationDefinition) isExecutableDefinition() {}

// VariableDefinition declares one `$name: Type = default` entry in an
// operation's variable list.
type VariableDefinition struct {
	Located
	Variable     *Variable
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

// Kind implements Node.
func (*VariableDefinition) Kind() Kind { return KindVariableDefinition }

// SelectionSet is a brace-delimited, non-empty list of selections.
type SelectionSet struct {
	Located
	Selections []Selection
}

// Kind implements Node.
func (*SelectionSet) Kind() Kind { return KindSelectionSet }

// Field is a single field selection, with an optional alias, arguments,
// directives, and a nested selection set.
type Field struct {
	Located
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
}

// Kind implements Node.
func (*Field) Kind() Kind   { return KindField }
func (*Field) isSelection() {}

// Argument is a `name: value` pair attached to a field or directive.
type Argument struct {
	Located
	Name  *Name
	Value Value
}

// Kind implements Node.
func (*Argument) Kind() Kind { return KindArgument }

// FragmentSpread is a `...Name directives?` selection. Name is never the
// identifier "on".
type FragmentSpread struct {
	Located
	Name       *Name
	Directives []*Directive
}

// Kind implements Node.
func (*FragmentSpread) Kind() Kind   { return KindFragmentSpread }
func (*FragmentSpread) isSelection() {}

// InlineFragment is a `... (on TypeCondition)? directives? SelectionSet`
// selection. TypeCondition is nil when omitted.
type InlineFragment struct {
	Located
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

// Kind implements Node.
func (*InlineFragment) Kind() Kind   { return KindInlineFragment }
func (*InlineFragment) isSelection() {}

// FragmentDefinition declares a named, reusable selection set scoped to a
// type condition. Name is never the identifier "on".
type FragmentDefinition struct {
	Located
	Name          *Name
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

// Kind implements Node.
func (*FragmentDefinition) Kind() Kind            { return KindFragmentDefinition }
func (*FragmentDefinition) isDefinition()         {}
func (*FragmentDefinition) isExecutableDefinition() {}

// Directive is an `@name(args?)` annotation attached to a syntactic
// position permitted by the grammar (validity of the position itself is a
// semantic rule, out of scope for this parser).
type Directive struct {
	Located
	Name      *Name
	Arguments []*Argument
}

// Kind implements Node.
func (*Directive) Kind() Kind { return KindDirective }
