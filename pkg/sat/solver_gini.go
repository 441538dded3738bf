package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// NewGiniEngine creates an engine backed by the gini CDCL solver. Gini has
// no verbosity or propagation-limit knobs, so both are ignored: this engine
// is silent and never reports Unknown.
func NewGiniEngine(Allocator) (Engine, error) {
	return &giniEngine{g: gini.New()}, nil
}

type giniEngine struct {
	g     *gini.Gini
	nvars int
}

func (e *giniEngine) SetVerbosity(int) {}

func (e *giniEngine) SetPropagationLimit(uint64) {}

func (e *giniEngine) ReserveVariables(n int) {
	if n > e.nvars {
		e.nvars = n
	}
}

func (e *giniEngine) VariableCount() int { return e.nvars }

func (e *giniEngine) AddLiteral(lit int) {
	switch {
	case lit == 0:
		e.g.Add(z.LitNull)
	case lit > 0:
		if lit > e.nvars {
			e.nvars = lit
		}
		e.g.Add(z.Var(lit).Pos())
	default:
		if -lit > e.nvars {
			e.nvars = -lit
		}
		e.g.Add(z.Var(-lit).Neg())
	}
}

func (e *giniEngine) Solve(int64) (int, error) {
	// Pin reserved variables gini has not seen yet with tautologies; after
	// the first solve this loop is a no-op.
	for v := int(e.g.MaxVar()) + 1; v <= e.nvars; v++ {
		e.g.Add(z.Var(v).Pos())
		e.g.Add(z.Var(v).Neg())
		e.g.Add(z.LitNull)
	}
	switch code := e.g.Solve(); code {
	case 1:
		return OutcomeSatisfiable, nil
	case -1:
		return OutcomeUnsatisfiable, nil
	case 0:
		return OutcomeUnknown, nil
	default:
		// Let the session flag the defect.
		return code, nil
	}
}

func (e *giniEngine) ValueOf(v int) bool {
	if v > int(e.g.MaxVar()) {
		return false
	}
	return e.g.Value(z.Var(v).Pos())
}

func (e *giniEngine) Release() { e.g = nil }
