package sat

// Outcome codes returned by Engine.Solve, following the classic SAT solver
// exit-code convention. Any other code is an internal-consistency defect and
// is surfaced as *InternalError, never as an ordinary verdict.
const (
	OutcomeUnknown       = 0
	OutcomeSatisfiable   = 10
	OutcomeUnsatisfiable = 20
)

// An EngineFactory creates a fresh engine instance. Every allocation the
// engine makes on the binding's behalf must go through alloc so the caller
// can account for and cap solver memory.
type EngineFactory func(alloc Allocator) (Engine, error)

// Engine is the contract consumed from a wrapped solving engine. A session
// owns exactly one Engine: it is configured, fed clauses, invoked zero or
// more times and finally released, never shared between sessions.
type Engine interface {
	// SetVerbosity sets the engine's reporting level; 0 is silent.
	SetVerbosity(level int)
	// ReserveVariables pre-sizes the variable table so that VariableCount
	// reports at least n even before any clause mentions variable n.
	ReserveVariables(n int)
	// SetPropagationLimit installs a hard cap on the propagation work of each
	// Solve call; 0 means unbounded. Engines that cannot meter their work may
	// ignore the limit, in which case they never return OutcomeUnknown.
	SetPropagationLimit(limit uint64)
	// AddLiteral pushes one literal of the clause under construction; 0
	// terminates the clause. This is the only way clauses enter an engine.
	AddLiteral(lit int)
	// Solve searches for a satisfying assignment. A non-negative budget caps
	// the number of decisions; -1 means unbounded. Solve may block for
	// arbitrary wall-clock time.
	Solve(budget int64) (int, error)
	// VariableCount reports how many variables the engine tracks.
	VariableCount() int
	// ValueOf reports the truth value of variable v (1-indexed). Valid only
	// immediately after a Solve that returned OutcomeSatisfiable.
	ValueOf(v int) bool
	// Release frees the engine. It is called exactly once per instance; no
	// other method may be called afterwards.
	Release()
}
