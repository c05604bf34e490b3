package parser

import (
	"github.com/Protocol-Lattice/graphql-core/ast"
	"github.com/Protocol-Lattice/graphql-core/token"
)

// parseValueLiteral parses any GraphQL value. In const mode (used for
// default values and directive arguments in a type-system definition) a
// `$variable` reference is rejected; everywhere else it is accepted and
// parsed as an ast.Variable.
func (p *parser) parseValueLiteral(isConst bool) (ast.Value, error) {
	tok := p.lexer.Token()
	if err := p.enterRecursion(tok); err != nil {
		return nil, err
	}
	defer p.exitRecursion()

	switch tok.Kind {
	case token.BRACKET_L:
		return p.parseList(isConst)
	case token.BRACE_L:
		return p.parseObject(isConst)
	case token.INT:
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		return &ast.IntValue{Located: ast.Located{Loc: p.loc(tok)}, Value: tok.Value}, nil
	case token.FLOAT:
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		return &ast.FloatValue{Located: ast.Located{Loc: p.loc(tok)}, Value: tok.Value}, nil
	case token.STRING, token.BLOCK_STRING:
		return p.parseStringLiteral()
	case token.NAME:
		if _, err := p.lexer.Advance(); err != nil {
			return nil, err
		}
		switch tok.Value {
		case "true":
			return &ast.BooleanValue{Located: ast.Located{Loc: p.loc(tok)}, Value: true}, nil
		case "false":
			return &ast.BooleanValue{Located: ast.Located{Loc: p.loc(tok)}, Value: false}, nil
		case "null":
			return &ast.NullValue{Located: ast.Located{Loc: p.loc(tok)}}, nil
		default:
			return &ast.EnumValue{Located: ast.Located{Loc: p.loc(tok)}, Value: tok.Value}, nil
		}
	case token.DOLLAR:
		if isConst {
			return nil, p.unexpected(tok)
		}
		return p.parseVariable()
	}
	return nil, p.unexpected(tok)
}

func (p *parser) parseStringLiteral() (*ast.StringValue, error) {
	tok := p.lexer.Token()
	block := tok.Kind == token.BLOCK_STRING
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}
	return &ast.StringValue{Located: ast.Located{Loc: p.loc(tok)}, Value: tok.Value, Block: block}, nil
}

// parseDescription parses the optional leading description string on a
// type-system definition; it returns (nil, nil) when no STRING or
// BLOCK_STRING is present.
func (p *parser) parseDescription() (*ast.StringValue, error) {
	if p.peek(token.STRING) || p.peek(token.BLOCK_STRING) {
		return p.parseStringLiteral()
	}
	return nil, nil
}

func (p *parser) parseList(isConst bool) (*ast.ListValue, error) {
	start := p.lexer.Token()
	item := func() (ast.Value, error) { return p.parseValueLiteral(isConst) }
	values, err := anyList(p, token.BRACKET_L, item, token.BRACKET_R)
	if err != nil {
		return nil, err
	}
	return &ast.ListValue{Located: ast.Located{Loc: p.loc(start)}, Values: values}, nil
}

func (p *parser) parseObject(isConst bool) (*ast.ObjectValue, error) {
	start := p.lexer.Token()
	item := func() (*ast.ObjectField, error) { return p.parseObjectField(isConst) }
	fields, err := anyList(p, token.BRACE_L, item, token.BRACE_R)
	if err != nil {
		return nil, err
	}
	return &ast.ObjectValue{Located: ast.Located{Loc: p.loc(start)}, Fields: fields}, nil
}

func (p *parser) parseObjectField(isConst bool) (*ast.ObjectField, error) {
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
	return &ast.ObjectField{Located: ast.Located{Loc: p.loc(start)}, Name: name, Value: value}, nil
}
