// Package dpll implements a small trail-based DPLL engine with metered unit
// propagation. It is the reference backend of the sat binding: unlike the
// CDCL engines it wraps elsewhere, it can count its own propagation work and
// therefore honor a hard propagation limit by reporting an unknown outcome.
package dpll

import (
	"errors"
	"log"
)

// Allocator mirrors the binding's allocator contract; the engine's
// per-variable assignment array is served through it.
type Allocator interface {
	Alloc(n int) []byte
	Realloc(buf []byte, n int) []byte
	Free(buf []byte)
}

// ErrOutOfMemory is returned by Solve when the allocator cannot serve the
// assignment array.
var ErrOutOfMemory = errors.New("dpll: out of memory")

// Outcome codes, matching the binding's engine contract.
const (
	unknown       = 0
	satisfiable   = 10
	unsatisfiable = 20
)

// Assignment states, one byte per variable.
const (
	unset byte = iota
	isTrue
	isFalse
)

// Propagation results.
const (
	quiet = iota
	conflict
	limited
)

type Engine struct {
	alloc     Allocator
	verbosity int
	propLimit uint64

	nvars   int
	clauses [][]int
	current []int
	empty   bool // an empty clause was ingested: trivially unsatisfiable

	assign []byte // 1-indexed, allocator-owned
	trail  []int  // literals in assignment order
	marks  []int  // trail indices where decisions were made
	props  uint64
}

func New(alloc Allocator) *Engine {
	return &Engine{alloc: alloc}
}

func (e *Engine) SetVerbosity(level int) { e.verbosity = level }

func (e *Engine) SetPropagationLimit(limit uint64) { e.propLimit = limit }

func (e *Engine) ReserveVariables(n int) {
	if n > e.nvars {
		e.nvars = n
	}
}

func (e *Engine) VariableCount() int { return e.nvars }

// AddLiteral pushes one literal of the clause under construction; 0
// terminates the clause.
func (e *Engine) AddLiteral(lit int) {
	if lit == 0 {
		if len(e.current) == 0 {
			e.empty = true
		}
		e.clauses = append(e.clauses, e.current)
		e.current = nil
		return
	}
	v := lit
	if v < 0 {
		v = -v
	}
	if v > e.nvars {
		e.nvars = v
	}
	e.current = append(e.current, lit)
}

// ValueOf is valid only after Solve returned a satisfiable outcome; every
// variable is assigned in that state.
func (e *Engine) ValueOf(v int) bool { return e.assign[v] == isTrue }

// Release frees the allocator-owned state. Called exactly once.
func (e *Engine) Release() {
	if e.assign != nil {
		e.alloc.Free(e.assign)
		e.assign = nil
	}
	e.clauses = nil
	e.trail = nil
	e.marks = nil
}

// Solve restarts the search over the current clause set. A non-negative
// budget caps decisions; the propagation limit, when set, caps unit
// propagations. Either cap makes the outcome unknown.
func (e *Engine) Solve(budget int64) (int, error) {
	if e.empty {
		return unsatisfiable, nil
	}
	if err := e.reset(); err != nil {
		return 0, err
	}
	if e.verbosity > 0 {
		log.Printf("c dpll: %d vars, %d clauses", e.nvars, len(e.clauses))
	}
	var decisions int64
	for {
		switch e.propagate() {
		case limited:
			return unknown, nil
		case conflict:
			if !e.backtrack() {
				return unsatisfiable, nil
			}
		case quiet:
			v := e.firstUnset()
			if v == 0 {
				return satisfiable, nil
			}
			if budget >= 0 && decisions >= budget {
				return unknown, nil
			}
			decisions++
			e.decide(v)
		}
	}
}

func (e *Engine) reset() error {
	n := e.nvars + 1
	switch {
	case e.assign == nil:
		e.assign = e.alloc.Alloc(n)
	case len(e.assign) < n:
		e.assign = e.alloc.Realloc(e.assign, n)
	}
	if e.assign == nil {
		return ErrOutOfMemory
	}
	clear(e.assign)
	e.trail = e.trail[:0]
	e.marks = e.marks[:0]
	e.props = 0
	return nil
}

// propagate scans for unit clauses until a fixpoint, a conflict, or the
// propagation limit is reached.
func (e *Engine) propagate() int {
	for changed := true; changed; {
		changed = false
		for _, clause := range e.clauses {
			satisfied := false
			unassigned := 0
			unit := 0
			for _, lit := range clause {
				switch e.assign[abs(lit)] {
				case unset:
					unassigned++
					unit = lit
				case truth(lit):
					satisfied = true
				}
				if satisfied || unassigned > 1 {
					break
				}
			}
			switch {
			case satisfied || unassigned > 1:
			case unassigned == 0:
				return conflict
			default:
				if e.propLimit > 0 && e.props >= e.propLimit {
					return limited
				}
				e.props++
				e.push(unit)
				changed = true
			}
		}
	}
	return quiet
}

// decide assigns the positive branch of v and marks the trail so backtrack
// can unwind to this point.
func (e *Engine) decide(v int) {
	e.marks = append(e.marks, len(e.trail))
	e.push(v)
}

// backtrack unwinds to the most recent decision whose negative branch is
// untried and takes it as forced. It reports false when no decision is left,
// i.e. the formula is unsatisfiable.
func (e *Engine) backtrack() bool {
	for len(e.marks) > 0 {
		last := len(e.marks) - 1
		idx := e.marks[last]
		lit := e.trail[idx]
		for i := len(e.trail) - 1; i >= idx; i-- {
			e.assign[abs(e.trail[i])] = unset
		}
		e.trail = e.trail[:idx]
		e.marks = e.marks[:last]
		if lit > 0 {
			// Decisions always try the positive branch first, so a positive
			// literal here means the negative branch remains.
			e.push(-lit)
			return true
		}
	}
	return false
}

func (e *Engine) push(lit int) {
	e.assign[abs(lit)] = truth(lit)
	e.trail = append(e.trail, lit)
}

// firstUnset returns the lowest unassigned variable, or 0 when the
// assignment is total. Picking the lowest keeps the search deterministic.
func (e *Engine) firstUnset() int {
	for v := 1; v <= e.nvars; v++ {
		if e.assign[v] == unset {
			return v
		}
	}
	return 0
}

func truth(lit int) byte {
	if lit > 0 {
		return isTrue
	}
	return isFalse
}

func abs(lit int) int {
	if lit < 0 {
		return -lit
	}
	return lit
}
