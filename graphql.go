// Package graphql re-exports the public surface of this module's
// sub-packages (source, token, lexer, ast, parser, executor, registry,
// handler) under a single import, for callers who don't need to name the
// sub-packages individually.
package graphql

import (
	"github.com/Protocol-Lattice/graphql-core/ast"
	"github.com/Protocol-Lattice/graphql-core/executor"
	"github.com/Protocol-Lattice/graphql-core/gqlerrors"
	"github.com/Protocol-Lattice/graphql-core/handler"
	"github.com/Protocol-Lattice/graphql-core/lexer"
	"github.com/Protocol-Lattice/graphql-core/parser"
	"github.com/Protocol-Lattice/graphql-core/registry"
	"github.com/Protocol-Lattice/graphql-core/source"
	"github.com/Protocol-Lattice/graphql-core/token"
)

// ===========================
// Re-exported Types
// ===========================

// Source and token types.
type (
	Source     = source.Source
	SourceOpt  = source.Option
	Location   = source.Location
	TokenKind  = token.Kind
	Token      = token.Token
)

// Token kind constants.
const (
	SOF          = token.SOF
	EOF          = token.EOF
	NAME         = token.NAME
	INT          = token.INT
	FLOAT        = token.FLOAT
	STRING       = token.STRING
	BLOCK_STRING = token.BLOCK_STRING
	COMMENT      = token.COMMENT
)

// Lexer type.
type Lexer = lexer.Lexer

// AST types.
type (
	Node                = ast.Node
	Document            = ast.Document
	Definition          = ast.Definition
	OperationDefinition = ast.OperationDefinition
	VariableDefinition  = ast.VariableDefinition
	FragmentDefinition  = ast.FragmentDefinition
	Type                = ast.Type
	SelectionSet        = ast.SelectionSet
	Selection           = ast.Selection
	Field               = ast.Field
	Argument            = ast.Argument
	Value               = ast.Value
	ObjectTypeDefinition = ast.ObjectTypeDefinition
)

// Parser configuration.
type (
	ParseOption = parser.Option
	SyntaxError = gqlerrors.SyntaxError
)

// Executor types.
type (
	ResolverFunc = executor.ResolverFunc
	Executor     = executor.Executor
)

// ===========================
// Convenience Functions
// ===========================

// NewSource builds a Source from body text and options.
func NewSource(body string, opts ...SourceOpt) *Source {
	return source.New(body, opts...)
}

// NewLexer creates a new lexer over src.
func NewLexer(src *Source) *Lexer {
	return lexer.New(src, lexer.Options{})
}

// Parse parses a complete GraphQL document from text or a *Source.
func Parse(input interface{}, opts ...ParseOption) (*Document, error) {
	return parser.Parse(input, opts...)
}

// ParseValue parses a standalone value literal.
func ParseValue(input interface{}, opts ...ParseOption) (Value, error) {
	return parser.ParseValue(input, opts...)
}

// ParseType parses a standalone type reference.
func ParseType(input interface{}, opts ...ParseOption) (Type, error) {
	return parser.ParseType(input, opts...)
}

// WithNoLocation disables Location tracking on parsed AST nodes.
func WithNoLocation() ParseOption {
	return parser.WithNoLocation()
}

// NewExecutor creates a new executor instance.
func NewExecutor() *Executor {
	return executor.New()
}

// ===========================
// Global Registry Functions
// ===========================

// RegisterQueryResolver registers a query resolver in the global registry.
func RegisterQueryResolver(field string, resolver ResolverFunc) {
	registry.RegisterQueryResolver(field, resolver)
}

// RegisterMutationResolver registers a mutation resolver in the global registry.
func RegisterMutationResolver(field string, resolver ResolverFunc) {
	registry.RegisterMutationResolver(field, resolver)
}

// RegisterSubscriptionResolver registers a subscription resolver in the global registry.
func RegisterSubscriptionResolver(field string, resolver ResolverFunc) {
	registry.RegisterSubscriptionResolver(field, resolver)
}

// ===========================
// HTTP Handlers
// ===========================

// GraphqlHandler handles standard GraphQL HTTP requests.
var GraphqlHandler = handler.GraphQL

// GraphqlUploadHandler handles GraphQL requests with file upload support.
var GraphqlUploadHandler = handler.Upload

// SubscriptionHandler handles GraphQL subscriptions over WebSocket.
var SubscriptionHandler = handler.Subscription
