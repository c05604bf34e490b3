package parser

import (
	"github.com/Protocol-Lattice/graphql-core/ast"
	"github.com/Protocol-Lattice/graphql-core/token"
)

// parseDocument parses <SOF> Definition+ <EOF>.
func (p *parser) parseDocument() (*ast.Document, error) {
	start := p.lexer.Token()
	if _, err := p.expect(token.SOF); err != nil {
		return nil, err
	}
	first, err := p.parseDefinition()
	if err != nil {
		return nil, err
	}
	definitions := []ast.Definition{first}
	for !p.peek(token.EOF) {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, def)
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return &ast.Document{Located: ast.Located{Loc: p.loc(start)}, Definitions: definitions}, nil
}

// parseDefinition dispatches on the current token to one of: an
// OperationDefinition (shorthand `{` or an operation keyword), a
// FragmentDefinition, a type-system definition (optionally preceded by a
// description string), or a type-system extension (`extend ...`).
func (p *parser) parseDefinition() (ast.Definition, error) {
	tok := p.lexer.Token()

	if tok.Kind == token.BRACE_L {
		return p.parseOperationDefinition()
	}

	if tok.Kind == token.NAME {
		switch tok.Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
			return p.parseTypeSystemDefinition()
		case "extend":
			return p.parseTypeSystemExtension()
		}
	}

	if tok.Kind == token.STRING || tok.Kind == token.BLOCK_STRING {
		return p.parseTypeSystemDefinition()
	}

	return nil, p.unexpected(tok)
}

// parseOperationDefinition parses either the shorthand form (a bare
// SelectionSet, implicitly a query with no name) or the full form:
// OperationType Name? VariableDefinitions? Directives? SelectionSet.
func (p *parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	start := p.lexer.Token()

	if p.peek(token.BRACE_L) {
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			Located:      ast.Located{Loc: p.loc(start)},
			Operation:    ast.OperationQuery,
			SelectionSet: selectionSet,
		}, nil
	}

	operation, err := p.parseOperationType()
	if err != nil {
		return nil, err
	}

	var name *ast.Name
	if p.peek(token.NAME) {
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}

	varDefs, err := p.parseVariableDefinitions()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		Located:             ast.Located{Loc: p.loc(start)},
		Operation:           operation,
		Name:                name,
		VariableDefinitions: varDefs,
		Directives:          directives,
		SelectionSet:        selectionSet,
	}, nil
}

func (p *parser) parseOperationType() (ast.OperationType, error) {
	tok, err := p.expect(token.NAME)
	if err != nil {
		return "", err
	}
	switch tok.Value {
	case "query":
		return ast.OperationQuery, nil
	case "mutation":
		return ast.OperationMutation, nil
	case "subscription":
		return ast.OperationSubscription, nil
	}
	return "", p.unexpected(tok)
}

func (p *parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if !p.peek(token.PAREN_L) {
		return nil, nil
	}
	return many(p, token.PAREN_L, p.parseVariableDefinition, token.PAREN_R)
}

func (p *parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.lexer.Token()
	variable, err := p.parseVariable()
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

	return &ast.VariableDefinition{
		Located:      ast.Located{Loc: p.loc(start)},
		Variable:     variable,
		Type:         typ,
		DefaultValue: defaultValue,
		Directives:   directives,
	}, nil
}

func (p *parser) parseVariable() (*ast.Variable, error) {
	start := p.lexer.Token()
	if _, err := p.expect(token.DOLLAR); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Located: ast.Located{Loc: p.loc(start)}, Name: name}, nil
}

// parseSelectionSet parses a non-empty `{ Selection+ }` block.
func (p *parser) parseSelectionSet() (*ast.SelectionSet, error) {
	start := p.lexer.Token()
	if err := p.enterRecursion(start); err != nil {
		return nil, err
	}
	defer p.exitRecursion()

	selections, err := many(p, token.BRACE_L, p.parseSelection, token.BRACE_R)
	if err != nil {
		return nil, err
	}
	return &ast.SelectionSet{Located: ast.Located{Loc: p.loc(start)}, Selections: selections}, nil
}

// parseSelection dispatches between a Field and a fragment (spread or
// inline), which share the leading `...` token.
func (p *parser) parseSelection() (ast.Selection, error) {
	if p.peek(token.SPREAD) {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *parser) parseField() (*ast.Field, error) {
	start := p.lexer.Token()
	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias, name *ast.Name
	if ok, err := p.skip(token.COLON); err != nil {
		return nil, err
	} else if ok {
		alias = nameOrAlias
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	} else {
		name = nameOrAlias
	}

	arguments, err := p.parseArguments(false)
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	var selectionSet *ast.SelectionSet
	if p.peek(token.BRACE_L) {
		selectionSet, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}

	return &ast.Field{
		Located:      ast.Located{Loc: p.loc(start)},
		Alias:        alias,
		Name:         name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: selectionSet,
	}, nil
}

func (p *parser) parseArguments(isConst bool) ([]*ast.Argument, error) {
	if !p.peek(token.PAREN_L) {
		return nil, nil
	}
	item := func() (*ast.Argument, error) { return p.parseArgument(isConst) }
	return many(p, token.PAREN_L, item, token.PAREN_R)
}

func (p *parser) parseArgument(isConst bool) (*ast.Argument, error) {
	start := p.lexer.Token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	value, err := p.parseValueLiteral(isConst)
	if err != nil {
		return nil, err
	}
	return &ast.Argument{Located: ast.Located{Loc: p.loc(start)}, Name: name, Value: value}, nil
}

// parseFragment parses the `...` case of parseSelection: a FragmentSpread
// (`...Name Directives?`, where Name is never "on") or an InlineFragment
// (`... (on NamedType)? Directives? SelectionSet`).
func (p *parser) parseFragment() (ast.Selection, error) {
	start := p.lexer.Token()
	if _, err := p.expect(token.SPREAD); err != nil {
		return nil, err
	}

	hasTypeCondition := p.peekKeyword("on")
	if !hasTypeCondition && p.peek(token.NAME) {
		name, err := p.parseFragmentName()
		if err != nil {
			return nil, err
		}
		directives, err := p.parseDirectives(false)
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{Located: ast.Located{Loc: p.loc(start)}, Name: name, Directives: directives}, nil
	}

	var typeCondition *ast.NamedType
	if hasTypeCondition {
		if _, err := p.expectKeyword("on"); err != nil {
			return nil, err
		}
		var err error
		typeCondition, err = p.parseNamedType()
		if err != nil {
			return nil, err
		}
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.InlineFragment{
		Located:       ast.Located{Loc: p.loc(start)},
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
	}, nil
}

func (p *parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.lexer.Token()
	if _, err := p.expectKeyword("fragment"); err != nil {
		return nil, err
	}
	name, err := p.parseFragmentName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("on"); err != nil {
		return nil, err
	}
	typeCondition, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(false)
	if err != nil {
		return nil, err
	}
	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.FragmentDefinition{
		Located:       ast.Located{Loc: p.loc(start)},
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
	}, nil
}

// parseFragmentName parses a Name that is not the reserved word "on"
// (reserved only in this one position, to keep `...on Type` unambiguous).
func (p *parser) parseFragmentName() (*ast.Name, error) {
	if p.peekKeyword("on") {
		return nil, p.unexpected(p.lexer.Token())
	}
	return p.parseName()
}

func (p *parser) parseName() (*ast.Name, error) {
	tok, err := p.expect(token.NAME)
	if err != nil {
		return nil, err
	}
	return &ast.Name{Located: ast.Located{Loc: p.loc(tok)}, Value: tok.Value}, nil
}

func (p *parser) parseDirectives(isConst bool) ([]*ast.Directive, error) {
	var directives []*ast.Directive
	for p.peek(token.AT) {
		d, err := p.parseDirective(isConst)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}
	return directives, nil
}

func (p *parser) parseDirective(isConst bool) (*ast.Directive, error) {
	start := p.lexer.Token()
	if _, err := p.expect(token.AT); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	arguments, err := p.parseArguments(isConst)
	if err != nil {
		return nil, err
	}
	return &ast.Directive{Located: ast.Located{Loc: p.loc(start)}, Name: name, Arguments: arguments}, nil
}
