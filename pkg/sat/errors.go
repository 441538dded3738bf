package sat

import "fmt"

// ValidationKind classifies malformed clause input.
type ValidationKind byte

const (
	// ShapeMismatch means the input is not a sequence of clause sequences.
	ShapeMismatch ValidationKind = iota
	// TypeMismatch means a clause element is not an integer.
	TypeMismatch
	// ZeroLiteral means a caller supplied the reserved terminator value 0 as
	// a literal.
	ZeroLiteral
)

func (k ValidationKind) String() string {
	switch k {
	case ShapeMismatch:
		return "shape mismatch"
	case TypeMismatch:
		return "type mismatch"
	case ZeroLiteral:
		return "zero literal"
	default:
		return "invalid"
	}
}

// A ValidationError reports malformed clause data. It is detected before any
// solving happens and aborts the whole session. Clause and Index locate the
// offending element when known; -1 means not applicable.
type ValidationError struct {
	Kind   ValidationKind
	Clause int
	Index  int
}

func (e *ValidationError) Error() string {
	switch {
	case e.Clause < 0:
		return fmt.Sprintf("invalid clause set: %v", e.Kind)
	case e.Index < 0:
		return fmt.Sprintf("invalid clause %d: %v", e.Clause, e.Kind)
	default:
		return fmt.Sprintf("invalid clause %d: %v at literal %d", e.Clause, e.Kind, e.Index)
	}
}

// A MemoryError reports that the allocator returned nil. The session it
// occurred in is torn down before the error is surfaced.
type MemoryError struct {
	Op string
}

func (e *MemoryError) Error() string { return "out of memory: " + e.Op }

// An InternalError reports an engine outcome code outside the three defined
// ones. It indicates a defect in the engine or its adapter, not a usage
// error, and is kept distinct from ordinary unsatisfiability.
type InternalError struct {
	Code int
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("unexpected engine outcome code %d", e.Code)
}
