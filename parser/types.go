package parser

import (
	"github.com/Protocol-Lattice/graphql-core/ast"
	"github.com/Protocol-Lattice/graphql-core/token"
)

// parseTypeReference parses a NamedType, a ListType (`[Type]`), or either
// wrapped in a NonNullType (`Type!`). The parser never wraps a NonNullType
// directly around another NonNullType — `Type!!` is rejected because `!`
// is only ever consumed once per call.
func (p *parser) parseTypeReference() (ast.Type, error) {
	start := p.lexer.Token()
	if err := p.enterRecursion(start); err != nil {
		return nil, err
	}
	defer p.exitRecursion()

	var typ ast.Type
	if ok, err := p.skip(token.BRACKET_L); err != nil {
		return nil, err
	} else if ok {
		inner, err := p.parseTypeReference()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.BRACKET_R); err != nil {
			return nil, err
		}
		typ = &ast.ListType{Located: ast.Located{Loc: p.loc(start)}, Type: inner}
	} else {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		typ = named
	}

	if ok, err := p.skip(token.BANG); err != nil {
		return nil, err
	} else if ok {
		typ = &ast.NonNullType{Located: ast.Located{Loc: p.loc(start)}, Type: typ}
	}
	return typ, nil
}

func (p *parser) parseNamedType() (*ast.NamedType, error) {
	start := p.lexer.Token()
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.NamedType{Located: ast.Located{Loc: p.loc(start)}, Name: name}, nil
}
