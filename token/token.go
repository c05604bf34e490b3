// Package token defines the lexical units produced by the lexer: a closed
// set of token kinds and the Token value carrying a kind, byte range,
// line/column, and (for value-bearing kinds) the decoded literal.
package token

import "fmt"

// Kind is a closed enumeration of lexical token kinds.
type Kind string

const (
	SOF          Kind = "<SOF>"
	EOF          Kind = "<EOF>"
	BANG         Kind = "!"
	DOLLAR       Kind = "$"
	PAREN_L      Kind = "("
	PAREN_R      Kind = ")"
	SPREAD       Kind = "..."
	COLON        Kind = ":"
	EQUALS       Kind = "="
	AT           Kind = "@"
	BRACKET_L    Kind = "["
	BRACKET_R    Kind = "]"
	BRACE_L      Kind = "{"
	PIPE         Kind = "|"
	BRACE_R      Kind = "}"
	NAME         Kind = "Name"
	INT          Kind = "Int"
	FLOAT        Kind = "Float"
	STRING       Kind = "String"
	BLOCK_STRING Kind = "BlockString"
	COMMENT      Kind = "Comment"
)

// Token is a single lexical unit read from a Source. Start/End are
// half-open byte offsets: [Start, End) in the source body (SOF
// and EOF carry Start == End). Value holds the decoded literal for NAME,
// INT, FLOAT, STRING, BLOCK_STRING and COMMENT tokens; it is empty for
// punctuators and SOF/EOF.
type Token struct {
	Kind   Kind
	Start  int
	End    int
	Line   int
	Column int
	Value  string
	Prev   *Token
}

// Description renders a token for use in "Expected X, found <description>"
// style error messages.
func (t *Token) Description() string {
	if t == nil {
		return string(EOF)
	}
	body := t.descriptionBody()
	if body == "" {
		return string(t.Kind)
	}
	return fmt.Sprintf("%s %q", t.Kind, body)
}

func (t *Token) descriptionBody() string {
	switch t.Kind {
	case NAME, INT, FLOAT, STRING, BLOCK_STRING, COMMENT:
		return t.Value
	default:
		return ""
	}
}

// String implements fmt.Stringer for debugging and test failure output.
func (t *Token) String() string {
	if t == nil {
		return "<nil token>"
	}
	return fmt.Sprintf("%s[%d:%d]@%d:%d", t.Kind, t.Start, t.End, t.Line, t.Column)
}
