package ast

import (
	"encoding/json"

	"github.com/Protocol-Lattice/graphql-core/source"
	"github.com/Protocol-Lattice/graphql-core/token"
)

// Location binds an AST node back to the token range it was built from. It
// is attached to every node unless parsing runs with NoLocation set. The
// Source and token pointers are non-owning references: they borrow the
// structures the parser was given, they do not copy them.
type Location struct {
	Start      int
	End        int
	StartToken *token.Token
	EndToken   *token.Token
	Source     *source.Source
}

// locationJSON mirrors the wire/serialized form of a Location: only the
// byte range is meaningful to a consumer that doesn't share this process's
// token stream or source buffer.
type locationJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// MarshalJSON serializes a Location to its public {start, end} form.
func (l *Location) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	return json.Marshal(locationJSON{Start: l.Start, End: l.End})
}

// Located is embedded by every concrete AST node to provide its Loc field
// and GetLoc accessor. This is composition, not a class hierarchy: each
// node type is still a distinct, fixed-shape struct; Located just factors
// out the one field every node shares.
type Located struct {
	Loc *Location
}

// GetLoc returns the node's Location, or nil when parsed with NoLocation.
func (l Located) GetLoc() *Location {
	return l.Loc
}
