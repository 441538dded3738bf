// Package sat binds incremental SAT engines behind a single solving API with
// two operating modes: one-shot solving and lazy enumeration of every
// satisfying assignment via blocking clauses.
//
// Clauses are slices of signed, non-zero integers: the magnitude names a
// 1-indexed variable and the sign its polarity. A clause set is their
// conjunction. Zero is reserved as the clause terminator on the engine wire
// and must never appear inside caller clauses.
package sat

// A Solution is a total assignment: entry i holds i+1 when variable i+1 is
// true and -(i+1) when it is false.
type Solution []int

// Status is the verdict of one solver invocation.
type Status byte

const (
	// Unknown means the search was cut off (by a propagation limit) before a
	// verdict was reached. It is a valid terminal outcome, not an error, and
	// must never be read as Unsatisfiable.
	Unknown Status = iota
	Satisfiable
	Unsatisfiable
)

func (s Status) String() string {
	switch s {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	case Unknown:
		return "UNKNOWN"
	default:
		return "INVALID"
	}
}

// Options configures a single Solve or Enumerate call. The zero value asks
// for the default engine with unbounded search and no verbosity.
type Options struct {
	// Vars pre-sizes the engine's variable table when positive. Solutions are
	// then total over 1..Vars even if some variables appear in no clause.
	Vars int
	// Verbosity is forwarded to the engine; 0 is silent.
	Verbosity int
	// PropLimit caps the propagation work of each invocation when non-zero.
	// An invocation that hits the cap reports Unknown.
	PropLimit uint64
	// Engine selects the backend; nil means NewDPLLEngine.
	Engine EngineFactory
	// Allocator serves the binding's and the engine's memory; nil means the
	// Go runtime.
	Allocator Allocator
}

func abs(lit int) int {
	if lit < 0 {
		return -lit
	}
	return lit
}
