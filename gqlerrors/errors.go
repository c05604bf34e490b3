// Package gqlerrors defines the single error kind the parser emits: a
// SyntaxError pinned to a byte offset in a Source, with a line/column and a
// caret-annotated source excerpt ready to print.
package gqlerrors

import (
	"fmt"
	"strings"

	"github.com/Protocol-Lattice/graphql-core/source"
)

// SyntaxError describes a syntax error encountered while lexing or
// parsing. It is the sole error kind the parser emits; there is no
// recovery and no error list — the first SyntaxError aborts the parse.
type SyntaxError struct {
	Source  *source.Source
	Offset  int
	Line    int
	Column  int
	Message string
}

// New builds a SyntaxError for the given byte offset in src.
func New(src *source.Source, offset int, message string) *SyntaxError {
	loc := src.LocationInfo(offset)
	return &SyntaxError{
		Source:  src,
		Offset:  offset,
		Line:    loc.Line,
		Column:  loc.Column,
		Message: message,
	}
}

// Error implements the error interface with a multi-line message: the
// description, a "Name (line:column)" locator, and a two-line excerpt of
// the offending source with a caret under the byte offset.
func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Syntax Error: %s", e.Message)
	if e.Source != nil {
		fmt.Fprintf(&b, "\n\n%s (%d:%d)\n%s", e.Source.Name, e.Line, e.Column, e.excerpt())
	}
	return b.String()
}

// excerpt renders the source line containing the error, followed by a
// caret line pointing at the offending column.
func (e *SyntaxError) excerpt() string {
	lines := strings.Split(e.Source.Body, "\n")
	idx := e.Line - e.Source.LocationOffset.Line
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	line := lines[idx]
	col := e.Column
	if e.Line == e.Source.LocationOffset.Line {
		col -= e.Source.LocationOffset.Column - 1
	}
	if col < 1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + "^"
	return fmt.Sprintf("%s\n%s", line, caret)
}
