package sat

import (
	"github.com/crillab/gophersat/solver"
	"github.com/samber/lo"
)

// NewGophersatEngine creates an engine backed by the gophersat CDCL solver.
// Gophersat manages its own memory and does not expose a propagation
// counter, so the allocator only serves binding-side buffers and the
// propagation limit is ignored: this engine never reports Unknown.
func NewGophersatEngine(Allocator) (Engine, error) {
	return &gophersatEngine{}, nil
}

type gophersatEngine struct {
	verbose bool
	reserve int
	nvars   int
	pending [][]int // clauses buffered until the first solve builds the solver
	current []int
	s       *solver.Solver
	model   []bool
}

func (e *gophersatEngine) SetVerbosity(level int) { e.verbose = level > 0 }

func (e *gophersatEngine) SetPropagationLimit(uint64) {}

func (e *gophersatEngine) ReserveVariables(n int) {
	if n > e.reserve {
		e.reserve = n
	}
}

func (e *gophersatEngine) VariableCount() int { return e.nvars }

func (e *gophersatEngine) AddLiteral(lit int) {
	if lit != 0 {
		if v := abs(lit); v > e.nvars {
			e.nvars = v
		}
		e.current = append(e.current, lit)
		return
	}
	clause := e.current
	e.current = nil
	if e.s == nil {
		e.pending = append(e.pending, clause)
		return
	}
	// The solver is already built: this is a blocking clause, fed through
	// gophersat's incremental interface.
	lits := lo.Map(clause, func(l int, _ int) solver.Lit { return solver.IntToLit(int32(l)) })
	e.s.AppendClause(solver.NewClause(lits))
}

func (e *gophersatEngine) Solve(int64) (int, error) {
	if e.s == nil {
		cnf := e.pending
		// Tautologies pin the reserved variable range so models stay total
		// over it.
		for v := e.nvars + 1; v <= e.reserve; v++ {
			cnf = append(cnf, []int{v, -v})
		}
		if e.reserve > e.nvars {
			e.nvars = e.reserve
		}
		if e.nvars == 0 && len(cnf) == 0 {
			e.model = nil
			return OutcomeSatisfiable, nil
		}
		e.pending = nil
		e.s = solver.New(solver.ParseSlice(cnf))
		e.s.Verbose = e.verbose
	}
	switch e.s.Solve() {
	case solver.Sat:
		e.model = e.s.Model()
		return OutcomeSatisfiable, nil
	case solver.Unsat:
		return OutcomeUnsatisfiable, nil
	default:
		return OutcomeUnknown, nil
	}
}

func (e *gophersatEngine) ValueOf(v int) bool {
	return v <= len(e.model) && e.model[v-1]
}

func (e *gophersatEngine) Release() {
	e.s = nil
	e.pending = nil
	e.model = nil
}
