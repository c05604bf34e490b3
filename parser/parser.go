// Package parser turns GraphQL source text into an ast.Document (or a
// standalone ast.Value / ast.Type) by recursive descent over the token
// stream produced by package lexer. There is no error recovery: the first
// malformed construct returns a *gqlerrors.SyntaxError and parsing stops.
package parser

import (
	"fmt"

	"github.com/Protocol-Lattice/graphql-core/ast"
	"github.com/Protocol-Lattice/graphql-core/gqlerrors"
	"github.com/Protocol-Lattice/graphql-core/lexer"
	"github.com/Protocol-Lattice/graphql-core/source"
	"github.com/Protocol-Lattice/graphql-core/token"
)

// maxParserDepth bounds recursion through the three self-recursive
// productions (selection sets, value literals, type references) so a
// pathologically nested document fails with a SyntaxError instead of
// exhausting the goroutine stack.
const maxParserDepth = 250

// Options configures a parse.
type Options struct {
	noLocation bool
}

// Option mutates an Options record.
type Option func(*Options)

// WithNoLocation omits Location information from every produced AST node,
// trading debuggability for a smaller result when the caller only needs
// the parsed structure.
func WithNoLocation() Option {
	return func(o *Options) { o.noLocation = true }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// parser holds the mutable state of one parse: the lexer it reads tokens
// from, the resolved options, and a recursion depth counter.
type parser struct {
	lexer   *lexer.Lexer
	options Options
	depth   int
}

func newParser(src *source.Source, options Options) *parser {
	return &parser{
		lexer:   lexer.New(src, lexer.Options{NoLocation: options.noLocation}),
		options: options,
	}
}

// toSource accepts either a string or an *source.Source, matching the
// convenience overload GraphQL parsers conventionally offer: most callers
// have plain text, some already have a Source built with WithName or
// WithLocationOffset for embedding in a larger file.
func toSource(input interface{}) (*source.Source, error) {
	switch v := input.(type) {
	case string:
		return source.New(v), nil
	case *source.Source:
		return v, nil
	default:
		return nil, fmt.Errorf("parser: input must be a string or *source.Source, got %T", input)
	}
}

// Parse parses a complete GraphQL document: a non-empty sequence of
// operation definitions, fragment definitions, and (for schema documents)
// type-system definitions and extensions.
func Parse(input interface{}, opts ...Option) (*ast.Document, error) {
	src, err := toSource(input)
	if err != nil {
		return nil, err
	}
	p := newParser(src, buildOptions(opts))
	return p.parseDocument()
}

// ParseValue parses a standalone value literal, the grammar used for
// default values and argument values (in non-const form — Variable is
// accepted).
func ParseValue(input interface{}, opts ...Option) (ast.Value, error) {
	src, err := toSource(input)
	if err != nil {
		return nil, err
	}
	p := newParser(src, buildOptions(opts))
	if _, err := p.expect(token.SOF); err != nil {
		return nil, err
	}
	val, err := p.parseValueLiteral(false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return val, nil
}

// ParseType parses a standalone type reference: a named type, a list type,
// or a non-null wrapper around either.
func ParseType(input interface{}, opts ...Option) (ast.Type, error) {
	src, err := toSource(input)
	if err != nil {
		return nil, err
	}
	p := newParser(src, buildOptions(opts))
	if _, err := p.expect(token.SOF); err != nil {
		return nil, err
	}
	typ, err := p.parseTypeReference()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return typ, nil
}

// --- token-stream combinators ---

// peek reports whether the current token has the given kind, without
// consuming it.
func (p *parser) peek(kind token.Kind) bool {
	return p.lexer.Token().Kind == kind
}

// peekKeyword reports whether the current token is the NAME "value",
// without consuming it. GraphQL keywords (query, fragment, type, on, ...)
// are not reserved words at the lexical level; they are ordinary NAME
// tokens the parser recognizes contextually.
func (p *parser) peekKeyword(value string) bool {
	tok := p.lexer.Token()
	return tok.Kind == token.NAME && tok.Value == value
}

// skip consumes the current token and reports true if it has the given
// kind; otherwise it reports false and leaves the token stream untouched.
func (p *parser) skip(kind token.Kind) (bool, error) {
	if p.lexer.Token().Kind != kind {
		return false, nil
	}
	if _, err := p.lexer.Advance(); err != nil {
		return false, err
	}
	return true, nil
}

// expect consumes the current token if it has the given kind, returning
// it; otherwise it fails with a SyntaxError.
func (p *parser) expect(kind token.Kind) (*token.Token, error) {
	tok := p.lexer.Token()
	if tok.Kind != kind {
		return nil, p.syntaxError(tok, fmt.Sprintf("Expected %s, found %s", kind, tok.Description()))
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

// expectKeyword consumes the current token if it is the NAME "value";
// otherwise it fails with a SyntaxError.
func (p *parser) expectKeyword(value string) (*token.Token, error) {
	tok := p.lexer.Token()
	if tok.Kind != token.NAME || tok.Value != value {
		return nil, p.syntaxError(tok, fmt.Sprintf("Expected %q, found %s", value, tok.Description()))
	}
	if _, err := p.lexer.Advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

// unexpected fails with a SyntaxError describing tok (or the current
// token, if tok is nil) as unexpected.
func (p *parser) unexpected(tok *token.Token) error {
	if tok == nil {
		tok = p.lexer.Token()
	}
	return p.syntaxError(tok, fmt.Sprintf("Unexpected %s", tok.Description()))
}

func (p *parser) syntaxError(tok *token.Token, message string) error {
	return gqlerrors.New(p.lexer.Source(), tok.Start, message)
}

// loc builds the Location spanning from start to the most recently
// consumed token, or returns nil when the parser was built with
// WithNoLocation.
func (p *parser) loc(start *token.Token) *ast.Location {
	if p.options.noLocation {
		return nil
	}
	return &ast.Location{
		Start:      start.Start,
		End:        p.lexer.LastToken().End,
		StartToken: start,
		EndToken:   p.lexer.LastToken(),
		Source:     p.lexer.Source(),
	}
}

func (p *parser) enterRecursion(tok *token.Token) error {
	p.depth++
	if p.depth > maxParserDepth {
		return p.syntaxError(tok, "Document contains too many nested structures.")
	}
	return nil
}

func (p *parser) exitRecursion() {
	p.depth--
}

// anyList parses a bracketed, possibly-empty list: open, then item()
// repeated until close is seen, then close.
func anyList[T any](p *parser, open token.Kind, item func() (T, error), close token.Kind) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	items := []T{}
	for {
		ok, err := p.skip(close)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		v, err := item()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// many parses a bracketed, non-empty list: open, then item() one or more
// times until close is seen, then close.
func many[T any](p *parser, open token.Kind, item func() (T, error), close token.Kind) ([]T, error) {
	if _, err := p.expect(open); err != nil {
		return nil, err
	}
	first, err := item()
	if err != nil {
		return nil, err
	}
	items := []T{first}
	for {
		ok, err := p.skip(close)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		v, err := item()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}
