package schema

import "fmt"

// ParseErrorKind discriminates the fixed set of errors a parse or resolve
// may surface.
type ParseErrorKind int

const (
	// ErrExpect: a token did not match the kind (or one of the kinds)
	// expected at that point in the grammar.
	ErrExpect ParseErrorKind = iota
	// ErrUnknownModule: an import alias, or the import's own target, did
	// not match any provided module.
	ErrUnknownModule
	// ErrUnknownReference: a name did not resolve under any of the
	// resolution-order rules (builtin, open parameter, self-reference,
	// local definition, imported definition).
	ErrUnknownReference
	// ErrDuplicateDefinition: a definition name (or module name) was
	// introduced twice.
	ErrDuplicateDefinition
	// ErrInvalidPayload: an embedded-union constructor's parameter did not
	// resolve to a plain record.
	ErrInvalidPayload
	// ErrAppliedNameCount: an AppliedName's argument count did not match
	// the target's open-name arity.
	ErrAppliedNameCount
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrExpect:
		return "Expect"
	case ErrUnknownModule:
		return "UnknownModule"
	case ErrUnknownReference:
		return "UnknownReference"
	case ErrDuplicateDefinition:
		return "DuplicateDefinition"
	case ErrInvalidPayload:
		return "InvalidPayload"
	case ErrAppliedNameCount:
		return "AppliedNameCount"
	default:
		return "ParseError(?)"
	}
}

// ParseError is the single error type surfaced by the tokenizer, parser,
// and resolver. Which of the optional fields below are populated depends on
// Kind; see the ParseErrorKind constants for which fields each kind uses.
type ParseError struct {
	Kind     ParseErrorKind
	Location SourceLocation
	Message  string

	// ErrExpect
	Expected []string
	Actual   string

	// ErrUnknownModule, ErrUnknownReference
	Name string

	// ErrDuplicateDefinition. Existing/New are nil when the collision is
	// between two module names rather than two definitions.
	Existing Definition
	New      Definition

	// ErrAppliedNameCount
	ExpectedArity int
	ActualArity   int
}

func (e *ParseError) Error() string {
	loc := e.Location.String()
	switch e.Kind {
	case ErrExpect:
		return fmt.Sprintf("%s: expected %v, found %s", loc, e.Expected, e.Actual)
	case ErrUnknownModule:
		return fmt.Sprintf("%s: unknown module %q", loc, e.Name)
	case ErrUnknownReference:
		return fmt.Sprintf("%s: unknown reference %q", loc, e.Name)
	case ErrDuplicateDefinition:
		if e.Message != "" {
			return fmt.Sprintf("%s: %s", loc, e.Message)
		}
		return fmt.Sprintf("%s: duplicate definition %q", loc, e.Name)
	case ErrInvalidPayload:
		return fmt.Sprintf("%s: invalid embedded-union payload", loc)
	case ErrAppliedNameCount:
		return fmt.Sprintf("%s: expected %d type argument(s), got %d", loc, e.ExpectedArity, e.ActualArity)
	default:
		return fmt.Sprintf("%s: %s", loc, e.Message)
	}
}
