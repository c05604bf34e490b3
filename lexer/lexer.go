// Package lexer tokenizes GraphQL source text into the token stream the
// parser consumes. It implements the token-stream contract: one-token
// lookahead (skipping interleaved comments), single-step advance, and a
// handle back to the originating Source for error reporting.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Protocol-Lattice/graphql-core/gqlerrors"
	"github.com/Protocol-Lattice/graphql-core/source"
	"github.com/Protocol-Lattice/graphql-core/token"
)

// Options configures a Lexer. NoLocation is carried here only because the
// token-stream contract requires Lexer.Options() to expose it; the lexer
// itself always computes line/column (cheap relative to tokenizing), and it
// is the parser that decides whether to attach a Location to AST nodes.
type Options struct {
	NoLocation bool
}

// Lexer tokenizes a Source on demand, one token at a time.
type Lexer struct {
	src       *source.Source
	body      string
	options   Options
	token     *token.Token
	lastToken *token.Token
	line      int
	lineStart int
}

// New creates a Lexer positioned before the first token of src. Token()
// initially returns the synthetic SOF marker.
func New(src *source.Source, options Options) *Lexer {
	sof := &token.Token{
		Kind:   token.SOF,
		Start:  0,
		End:    0,
		Line:   src.LocationOffset.Line,
		Column: src.LocationOffset.Column,
	}
	return &Lexer{
		src:       src,
		body:      src.Body,
		options:   options,
		token:     sof,
		lastToken: sof,
		line:      src.LocationOffset.Line,
		lineStart: 0,
	}
}

// Token returns the current token.
func (l *Lexer) Token() *token.Token { return l.token }

// LastToken returns the most recently consumed token (used to bound
// Locations).
func (l *Lexer) LastToken() *token.Token { return l.lastToken }

// Source returns the originating Source.
func (l *Lexer) Source() *source.Source { return l.src }

// Options returns the lexer's configuration.
func (l *Lexer) Options() Options { return l.options }

// Advance consumes the current token, moves the lexer forward to the next
// non-comment token, and returns it.
func (l *Lexer) Advance() (*token.Token, error) {
	l.lastToken = l.token
	if l.token.Kind != token.EOF {
		next, line, lineStart, err := l.lexSignificant(l.token)
		if err != nil {
			return nil, err
		}
		l.token = next
		l.line = line
		l.lineStart = lineStart
	}
	return l.token, nil
}

// Lookahead returns the token one step past the current token, without
// advancing lexer state. Interleaved COMMENT tokens are skipped, exactly as
// Advance skips them.
func (l *Lexer) Lookahead() (*token.Token, error) {
	if l.token.Kind == token.EOF {
		return l.token, nil
	}
	next, _, _, err := l.lexSignificant(l.token)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// lexSignificant reads raw tokens starting after prev until it finds one
// that is not a COMMENT, chaining Prev pointers through any comments along
// the way. It returns the resolved line/lineStart so Advance can persist
// them; Lookahead simply discards them.
func (l *Lexer) lexSignificant(prev *token.Token) (*token.Token, int, int, error) {
	pos, line, lineStart := l.skipIgnored(prev.End, l.line, l.lineStart)
	for {
		if pos >= len(l.body) {
			eof := &token.Token{
				Kind:   token.EOF,
				Start:  pos,
				End:    pos,
				Line:   line,
				Column: pos - lineStart + 1,
				Prev:   prev,
			}
			return eof, line, lineStart, nil
		}

		tok, newPos, newLine, newLineStart, err := l.readOneToken(pos, line, lineStart)
		if err != nil {
			return nil, 0, 0, err
		}
		tok.Prev = prev

		if tok.Kind == token.COMMENT {
			prev = tok
			pos, line, lineStart = l.skipIgnored(newPos, newLine, newLineStart)
			continue
		}
		return tok, newLine, newLineStart, nil
	}
}

// skipIgnored advances past whitespace, commas, the UTF-8 BOM, and line
// terminators, which the GraphQL lexical grammar treats as insignificant
// and never materializes as tokens.
func (l *Lexer) skipIgnored(pos, line, lineStart int) (int, int, int) {
	body := l.body
	const bom = "\xEF\xBB\xBF"
	for pos < len(body) {
		switch body[pos] {
		case ' ', '\t', ',':
			pos++
		case '\n':
			pos++
			line++
			lineStart = pos
		case '\r':
			pos++
			if pos < len(body) && body[pos] == '\n' {
				pos++
			}
			line++
			lineStart = pos
		default:
			if strings.HasPrefix(body[pos:], bom) {
				pos += len(bom)
				continue
			}
			return pos, line, lineStart
		}
	}
	return pos, line, lineStart
}

// readOneToken reads exactly one raw token (possibly a COMMENT) starting at
// pos, which must point at a non-ignored byte.
func (l *Lexer) readOneToken(pos, line, lineStart int) (*token.Token, int, int, int, error) {
	body := l.body
	start := pos
	column := start - lineStart + 1

	mk := func(kind token.Kind, end int, value string) *token.Token {
		return &token.Token{Kind: kind, Start: start, End: end, Line: line, Column: column, Value: value}
	}

	c := body[pos]
	switch c {
	case '!':
		return mk(token.BANG, pos+1, ""), pos + 1, line, lineStart, nil
	case '$':
		return mk(token.DOLLAR, pos+1, ""), pos + 1, line, lineStart, nil
	case '(':
		return mk(token.PAREN_L, pos+1, ""), pos + 1, line, lineStart, nil
	case ')':
		return mk(token.PAREN_R, pos+1, ""), pos + 1, line, lineStart, nil
	case ':':
		return mk(token.COLON, pos+1, ""), pos + 1, line, lineStart, nil
	case '=':
		return mk(token.EQUALS, pos+1, ""), pos + 1, line, lineStart, nil
	case '@':
		return mk(token.AT, pos+1, ""), pos + 1, line, lineStart, nil
	case '[':
		return mk(token.BRACKET_L, pos+1, ""), pos + 1, line, lineStart, nil
	case ']':
		return mk(token.BRACKET_R, pos+1, ""), pos + 1, line, lineStart, nil
	case '{':
		return mk(token.BRACE_L, pos+1, ""), pos + 1, line, lineStart, nil
	case '|':
		return mk(token.PIPE, pos+1, ""), pos + 1, line, lineStart, nil
	case '}':
		return mk(token.BRACE_R, pos+1, ""), pos + 1, line, lineStart, nil
	case '#':
		end := pos + 1
		for end < len(body) && body[end] != '\n' && body[end] != '\r' {
			end++
		}
		return mk(token.COMMENT, end, body[pos+1:end]), end, line, lineStart, nil
	case '.':
		if strings.HasPrefix(body[pos:], "...") {
			return mk(token.SPREAD, pos+3, ""), pos + 3, line, lineStart, nil
		}
		return nil, 0, 0, 0, l.syntaxErr(pos, "Unexpected character: \".\"")
	case '"':
		if strings.HasPrefix(body[pos:], `"""`) {
			return l.readBlockString(pos, line, lineStart, mk)
		}
		return l.readString(pos, line, lineStart, mk)
	}

	if isNameStart(c) {
		end := pos + 1
		for end < len(body) && isNameContinue(body[end]) {
			end++
		}
		return mk(token.NAME, end, body[pos:end]), end, line, lineStart, nil
	}

	if c == '-' || isDigit(c) {
		return l.readNumber(pos, line, lineStart, mk)
	}

	return nil, 0, 0, 0, l.syntaxErr(pos, fmt.Sprintf("Unexpected character: %s", describeByte(c)))
}

func (l *Lexer) readNumber(pos, line, lineStart int, mk func(token.Kind, int, string) *token.Token) (*token.Token, int, int, int, error) {
	body := l.body
	start := pos
	if body[pos] == '-' {
		pos++
	}
	if pos >= len(body) || !isDigit(body[pos]) {
		return nil, 0, 0, 0, l.syntaxErr(pos, "Invalid number, expected digit but got: "+describeAt(body, pos))
	}
	if body[pos] == '0' {
		pos++
		if pos < len(body) && isDigit(body[pos]) {
			return nil, 0, 0, 0, l.syntaxErr(pos, "Invalid number, unexpected digit after 0: "+describeAt(body, pos))
		}
	} else {
		for pos < len(body) && isDigit(body[pos]) {
			pos++
		}
	}

	isFloat := false
	if pos < len(body) && body[pos] == '.' {
		isFloat = true
		pos++
		if pos >= len(body) || !isDigit(body[pos]) {
			return nil, 0, 0, 0, l.syntaxErr(pos, "Invalid number, expected digit but got: "+describeAt(body, pos))
		}
		for pos < len(body) && isDigit(body[pos]) {
			pos++
		}
	}
	if pos < len(body) && (body[pos] == 'e' || body[pos] == 'E') {
		isFloat = true
		pos++
		if pos < len(body) && (body[pos] == '+' || body[pos] == '-') {
			pos++
		}
		if pos >= len(body) || !isDigit(body[pos]) {
			return nil, 0, 0, 0, l.syntaxErr(pos, "Invalid number, expected digit but got: "+describeAt(body, pos))
		}
		for pos < len(body) && isDigit(body[pos]) {
			pos++
		}
	}
	if pos < len(body) && (isNameStart(body[pos])) {
		return nil, 0, 0, 0, l.syntaxErr(pos, "Invalid number, expected digit but got: "+describeAt(body, pos))
	}

	kind := token.INT
	if isFloat {
		kind = token.FLOAT
	}
	return mk(kind, pos, body[start:pos]), pos, line, lineStart, nil
}

func (l *Lexer) readString(pos, line, lineStart int, mk func(token.Kind, int, string) *token.Token) (*token.Token, int, int, int, error) {
	body := l.body
	start := pos
	pos++ // opening quote
	var b strings.Builder
	for pos < len(body) {
		c := body[pos]
		if c == '"' {
			return mk(token.STRING, pos+1, b.String()), pos + 1, line, lineStart, nil
		}
		if c == '\n' || c == '\r' {
			break
		}
		if c == '\\' {
			pos++
			if pos >= len(body) {
				break
			}
			switch body[pos] {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case '/':
				b.WriteByte('/')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'u':
				if pos+4 >= len(body) {
					return nil, 0, 0, 0, l.syntaxErr(pos-1, "Invalid character escape sequence: \\u"+body[pos+1:])
				}
				hex := body[pos+1 : pos+5]
				code, err := strconv.ParseUint(hex, 16, 32)
				if err != nil {
					return nil, 0, 0, 0, l.syntaxErr(pos-1, "Invalid character escape sequence: \\u"+hex)
				}
				b.WriteRune(rune(code))
				pos += 4
			default:
				return nil, 0, 0, 0, l.syntaxErr(pos-1, "Invalid character escape sequence: \\"+string(body[pos]))
			}
			pos++
			continue
		}
		b.WriteByte(c)
		pos++
	}
	return nil, 0, 0, 0, l.syntaxErr(start, "Unterminated string.")
}

func (l *Lexer) readBlockString(pos, line, lineStart int, mk func(token.Kind, int, string) *token.Token) (*token.Token, int, int, int, error) {
	body := l.body
	start := pos
	pos += 3 // opening """
	var raw strings.Builder
	curLine, curLineStart := line, lineStart
	for pos < len(body) {
		if strings.HasPrefix(body[pos:], `"""`) {
			value := dedentBlockString(raw.String())
			return mk(token.BLOCK_STRING, pos+3, value), pos + 3, curLine, curLineStart, nil
		}
		if strings.HasPrefix(body[pos:], `\"""`) {
			raw.WriteString(`"""`)
			pos += 4
			continue
		}
		c := body[pos]
		if c == '\n' {
			raw.WriteByte('\n')
			pos++
			curLine++
			curLineStart = pos
			continue
		}
		if c == '\r' {
			raw.WriteByte('\n')
			pos++
			if pos < len(body) && body[pos] == '\n' {
				pos++
			}
			curLine++
			curLineStart = pos
			continue
		}
		raw.WriteByte(c)
		pos++
	}
	return nil, 0, 0, 0, l.syntaxErr(start, "Unterminated string.")
}

// dedentBlockString applies the GraphQL block string value algorithm:
// strip the common leading indentation from every line but the first, then
// drop leading/trailing blank lines.
func dedentBlockString(raw string) string {
	lines := strings.Split(raw, "\n")

	commonIndent := -1
	for i := 1; i < len(lines); i++ {
		indent := leadingWhitespace(lines[i])
		if indent < len(lines[i]) && (commonIndent == -1 || indent < commonIndent) {
			commonIndent = indent
		}
	}
	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= commonIndent {
				lines[i] = lines[i][commonIndent:]
			} else {
				lines[i] = ""
			}
		}
	}

	start := 0
	for start < len(lines) && isBlankLine(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlankLine(lines[end-1]) {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

func leadingWhitespace(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func isBlankLine(s string) bool {
	return leadingWhitespace(s) == len(s)
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func describeAt(body string, pos int) string {
	if pos >= len(body) {
		return string(token.EOF)
	}
	return describeByte(body[pos])
}

func describeByte(c byte) string {
	return fmt.Sprintf("%q", string(rune(c)))
}

func (l *Lexer) syntaxErr(offset int, message string) error {
	return gqlerrors.New(l.src, offset, message)
}
