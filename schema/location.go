package schema

import "fmt"

// SourceLocation identifies a single position in a source buffer. Lines and
// columns are both 1-indexed; column counts the position at which the
// identifying token starts.
type SourceLocation struct {
	Filename string
	Line     int
	Column   int
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
}

// DefinitionName is an identifier together with the location of the
// identifier itself, not the keyword that introduced it.
type DefinitionName struct {
	Value    string
	Location SourceLocation
}
