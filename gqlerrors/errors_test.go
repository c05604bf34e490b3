package gqlerrors

import (
	"strings"
	"testing"

	"github.com/Protocol-Lattice/graphql-core/source"
)

func TestSyntaxError_LineAndColumn(t *testing.T) {
	src := source.New("{\n  field\n}")
	err := New(src, 4, "Expected Name, found }")
	if err.Line != 2 {
		t.Errorf("Line = %d, want 2", err.Line)
	}
	if err.Column != 3 {
		t.Errorf("Column = %d, want 3", err.Column)
	}
}

func TestSyntaxError_Error(t *testing.T) {
	src := source.New("{ @ }", source.WithName("bad.graphql"))
	err := New(src, 2, `Unexpected "@"`)
	msg := err.Error()
	if !strings.Contains(msg, "Syntax Error: Unexpected \"@\"") {
		t.Errorf("Error() missing message, got %q", msg)
	}
	if !strings.Contains(msg, "bad.graphql (1:3)") {
		t.Errorf("Error() missing locator, got %q", msg)
	}
	if !strings.Contains(msg, "^") {
		t.Errorf("Error() missing caret excerpt, got %q", msg)
	}
}
