// Package source provides the position and location types shared by all
// interpreter phases. Tokens and AST nodes carry Locations so diagnostics
// can point back into the original text.
package source

import "fmt"

// Position is a single point in a source buffer.
// Offset is the byte index; Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is a half-open span [Start, End) within one source buffer.
type Location struct {
	Start *Position
	End   *Position
}

// NewLocation copies both positions so the location stays valid after the
// scanner has moved on.
func NewLocation(start, end *Position) *Location {
	s := *start
	e := *end
	return &Location{Start: &s, End: &e}
}

func (l *Location) String() string {
	if l == nil || l.Start == nil {
		return "?:?"
	}
	return l.Start.String()
}
