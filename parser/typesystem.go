package parser

import (
	"github.com/Protocol-Lattice/graphql-core/ast"
	"github.com/Protocol-Lattice/graphql-core/token"
)

// parseTypeSystemDefinition dispatches on the keyword following an
// optional leading description to one of the schema/scalar/type/
// interface/union/enum/input/directive definitions, or a type-system
// extension.
func (p *parser) parseTypeSystemDefinition() (ast.Definition, error) {
	tok := p.lexer.Token()

	keywordTok := tok
	if tok.Kind == token.STRING || tok.Kind == token.BLOCK_STRING {
		la, err := p.lexer.Lookahead()
		if err != nil {
			return nil, err
		}
		keywordTok = la
	}

	if keywordTok.Kind != token.NAME {
		return nil, p.unexpected(keywordTok)
	}

	switch keywordTok.Value {
	case "schema":
		return p.parseSchemaDefinition()
	case "scalar":
		return p.parseScalarTypeDefinition()
	case "type":
		return p.parseObjectTypeDefinition()
	case "interface":
		return p.parseInterfaceTypeDefinition()
	case "union":
		return p.parseUnionTypeDefinition()
	case "enum":
		return p.parseEnumTypeDefinition()
	case "input":
		return p.parseInputObjectTypeDefinition()
	case "directive":
		return p.parseDirectiveDefinition()
	case "extend":
		return p.parseTypeSystemExtension()
	}
	return nil, p.unexpected(keywordTok)
}

func (p *parser) parseSchemaDefinition() (*ast.SchemaDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("schema"); err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	operationTypes, err := many(p, token.BRACE_L, p.parseOperationTypeDefinition, token.BRACE_R)
	if err != nil {
		return nil, err
	}
	return &ast.SchemaDefinition{
		Located:        ast.Located{Loc: p.loc(start)},
		Description:    description,
		Directives:     directives,
		OperationTypes: operationTypes,
	}, nil
}

func (p *parser) parseOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	start := p.lexer.Token()
	operation, err := p.parseOperationType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	return &ast.OperationTypeDefinition{Located: ast.Located{Loc: p.loc(start)}, Operation: operation, Type: typ}, nil
}

func (p *parser) parseScalarTypeDefinition() (*ast.ScalarTypeDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("scalar"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.ScalarTypeDefinition{
		Located:     ast.Located{Loc: p.loc(start)},
		Description: description,
		Name:        name,
		Directives:  directives,
	}, nil
}

func (p *parser) parseObjectTypeDefinition() (*ast.ObjectTypeDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("type"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.ObjectTypeDefinition{
		Located:     ast.Located{Loc: p.loc(start)},
		Description: description,
		Name:        name,
		Interfaces:  interfaces,
		Directives:  directives,
		Fields:      fields,
	}, nil
}

// parseImplementsInterfaces parses an optional `implements A B C` clause.
// This parser follows the pre-`&`-separator grammar: interface names
// simply run back to back for as long as the next token is a NAME.
func (p *parser) parseImplementsInterfaces() ([]*ast.NamedType, error) {
	if !p.peekKeyword("implements") {
		return nil, nil
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}
	first, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	interfaces := []*ast.NamedType{first}
	for p.peek(token.NAME) {
		nt, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, nt)
	}
	return interfaces, nil
}

func (p *parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if !p.peek(token.BRACE_L) {
		return nil, nil
	}
	return many(p, token.BRACE_L, p.parseFieldDefinition, token.BRACE_R)
}

func (p *parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.FieldDefinition{
		Located:     ast.Located{Loc: p.loc(start)},
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Type:        typ,
		Directives:  directives,
	}, nil
}

func (p *parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	if !p.peek(token.PAREN_L) {
		return nil, nil
	}
	return many(p, token.PAREN_L, p.parseInputValueDefinition, token.PAREN_R)
}

func (p *parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}
	var defaultValue ast.Value
	if ok, err := p.skip(token.EQUALS); err != nil {
		return nil, err
	} else if ok {
		defaultValue, err = p.parseValueLiteral(true)
		if err != nil {
			return nil, err
		}
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.InputValueDefinition{
		Located:      ast.Located{Loc: p.loc(start)},
		Description:  description,
		Name:         name,
		Type:         typ,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

func (p *parser) parseInterfaceTypeDefinition() (*ast.InterfaceTypeDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.InterfaceTypeDefinition{
		Located:     ast.Located{Loc: p.loc(start)},
		Description: description,
		Name:        name,
		Interfaces:  interfaces,
		Directives:  directives,
		Fields:      fields,
	}, nil
}

func (p *parser) parseUnionTypeDefinition() (*ast.UnionTypeDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("union"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	types, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}
	return &ast.UnionTypeDefinition{
		Located:     ast.Located{Loc: p.loc(start)},
		Description: description,
		Name:        name,
		Directives:  directives,
		Types:       types,
	}, nil
}

func (p *parser) parseUnionMemberTypes() ([]*ast.NamedType, error) {
	ok, err := p.skip(token.EQUALS)
	if err != nil || !ok {
		return nil, err
	}
	if _, err := p.skip(token.PIPE); err != nil {
		return nil, err
	}
	first, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	types := []*ast.NamedType{first}
	for {
		ok, err := p.skip(token.PIPE)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		nt, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, nt)
	}
	return types, nil
}

func (p *parser) parseEnumTypeDefinition() (*ast.EnumTypeDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("enum"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	values, err := p.parseEnumValuesDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.EnumTypeDefinition{
		Located:     ast.Located{Loc: p.loc(start)},
		Description: description,
		Name:        name,
		Directives:  directives,
		Values:      values,
	}, nil
}

func (p *parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, error) {
	if !p.peek(token.BRACE_L) {
		return nil, nil
	}
	return many(p, token.BRACE_L, p.parseEnumValueDefinition, token.BRACE_R)
}

func (p *parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	name, err := p.parseEnumValueName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	return &ast.EnumValueDefinition{
		Located:     ast.Located{Loc: p.loc(start)},
		Description: description,
		Name:        name,
		Directives:  directives,
	}, nil
}

// parseEnumValueName parses a Name that is not one of the literals
// `true`, `false`, or `null`, which the grammar reserves so an enum value
// can never collide with a boolean or null value literal.
func (p *parser) parseEnumValueName() (*ast.Name, error) {
	tok := p.lexer.Token()
	if tok.Kind == token.NAME && (tok.Value == "true" || tok.Value == "false" || tok.Value == "null") {
		return nil, p.unexpected(tok)
	}
	return p.parseName()
}

func (p *parser) parseInputObjectTypeDefinition() (*ast.InputObjectTypeDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("input"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseInputFieldsDefinition()
	if err != nil {
		return nil, err
	}
	return &ast.InputObjectTypeDefinition{
		Located:     ast.Located{Loc: p.loc(start)},
		Description: description,
		Name:        name,
		Directives:  directives,
		Fields:      fields,
	}, nil
}

func (p *parser) parseInputFieldsDefinition() ([]*ast.InputValueDefinition, error) {
	if !p.peek(token.BRACE_L) {
		return nil, nil
	}
	return many(p, token.BRACE_L, p.parseInputValueDefinition, token.BRACE_R)
}

func (p *parser) parseDirectiveDefinition() (*ast.DirectiveDefinition, error) {
	start := p.lexer.Token()
	description, err := p.parseDescription()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("directive"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AT); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return nil, err
	}
	repeatable := false
	if p.peekKeyword("repeatable") {
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		repeatable = true
	}
	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}
	return &ast.DirectiveDefinition{
		Located:     ast.Located{Loc: p.loc(start)},
		Description: description,
		Name:        name,
		Arguments:   arguments,
		Repeatable:  repeatable,
		Locations:   locations,
	}, nil
}

func (p *parser) parseDirectiveLocations() ([]*ast.Name, error) {
	if _, err := p.skip(token.PIPE); err != nil {
		return nil, err
	}
	first, err := p.parseDirectiveLocation()
	if err != nil {
		return nil, err
	}
	locations := []*ast.Name{first}
	for {
		ok, err := p.skip(token.PIPE)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		nt, err := p.parseDirectiveLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, nt)
	}
	return locations, nil
}

// directiveLocations is the closed set of names valid after `on` (and
// between `|`s) in a directive definition, split into executable and
// type-system locations by the GraphQL directive-locations grammar.
var directiveLocations = map[string]bool{
	"QUERY":                  true,
	"MUTATION":               true,
	"SUBSCRIPTION":           true,
	"FIELD":                  true,
	"FRAGMENT_DEFINITION":    true,
	"FRAGMENT_SPREAD":        true,
	"INLINE_FRAGMENT":        true,
	"VARIABLE_DEFINITION":    true,
	"SCHEMA":                 true,
	"SCALAR":                 true,
	"OBJECT":                 true,
	"FIELD_DEFINITION":       true,
	"ARGUMENT_DEFINITION":    true,
	"INTERFACE":              true,
	"UNION":                  true,
	"ENUM":                   true,
	"ENUM_VALUE":             true,
	"INPUT_OBJECT":           true,
	"INPUT_FIELD_DEFINITION": true,
}

func (p *parser) parseDirectiveLocation() (*ast.Name, error) {
	start := p.lexer.Token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if !directiveLocations[name.Value] {
		return nil, p.syntaxError(start, "Unexpected "+start.Description())
	}
	return name, nil
}

// parseTypeSystemExtension consumes `extend` and dispatches on the
// following keyword. Only ObjectTypeExtension is implemented; every other
// extension form (scalar/interface/union/enum/input/schema) is rejected
// as unexpected, matching the partial extension grammar this parser
// supports.
func (p *parser) parseTypeSystemExtension() (ast.Definition, error) {
	start := p.lexer.Token()
	if _, err := p.expectKeyword("extend"); err != nil {
		return nil, err
	}
	next := p.lexer.Token()
	if next.Kind == token.NAME && next.Value == "type" {
		return p.parseObjectTypeExtension(start)
	}
	return nil, p.unexpected(next)
}

func (p *parser) parseObjectTypeExtension(start *token.Token) (*ast.ObjectTypeExtension, error) {
	if _, err := p.expectKeyword("type"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return nil, err
	}
	if len(interfaces) == 0 && len(directives) == 0 && len(fields) == 0 {
		return nil, p.unexpected(p.lexer.Token())
	}
	return &ast.ObjectTypeExtension{
		Located:    ast.Located{Loc: p.loc(start)},
		Name:       name,
		Interfaces: interfaces,
		Directives: directives,
		Fields:     fields,
	}, nil
}
