package dpll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testAllocator is a minimal runtime-backed allocator with a failure switch.
type testAllocator struct {
	fail bool
}

func (a *testAllocator) Alloc(n int) []byte {
	if a.fail {
		return nil
	}
	return make([]byte, n)
}

func (a *testAllocator) Realloc(buf []byte, n int) []byte {
	if a.fail {
		return nil
	}
	next := make([]byte, n)
	copy(next, buf)
	return next
}

func (a *testAllocator) Free([]byte) {}

func ingest(e *Engine, clauses [][]int) {
	for _, clause := range clauses {
		for _, lit := range clause {
			e.AddLiteral(lit)
		}
		e.AddLiteral(0)
	}
}

func TestSolveSatisfiable(t *testing.T) {
	e := New(&testAllocator{})
	defer e.Release()
	ingest(e, [][]int{{-1, -2}, {-2, 3}, {1, -3, 2}, {2}})

	code, err := e.Solve(-1)
	assert.NoError(t, err)
	assert.Equal(t, satisfiable, code)

	// Every variable carries a value once the engine reports satisfiable.
	assert.Equal(t, 3, e.VariableCount())
	assert.False(t, e.ValueOf(1))
	assert.True(t, e.ValueOf(2))
	assert.True(t, e.ValueOf(3))
}

func TestSolveUnsatisfiable(t *testing.T) {
	e := New(&testAllocator{})
	defer e.Release()
	ingest(e, [][]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}})

	code, err := e.Solve(-1)
	assert.NoError(t, err)
	assert.Equal(t, unsatisfiable, code)
}

func TestEmptyClause(t *testing.T) {
	e := New(&testAllocator{})
	defer e.Release()
	ingest(e, [][]int{{1}, {}})

	code, err := e.Solve(-1)
	assert.NoError(t, err)
	assert.Equal(t, unsatisfiable, code)
}

func TestReservedVariables(t *testing.T) {
	e := New(&testAllocator{})
	defer e.Release()
	e.ReserveVariables(4)
	ingest(e, [][]int{{1}})

	code, err := e.Solve(-1)
	assert.NoError(t, err)
	assert.Equal(t, satisfiable, code)
	assert.Equal(t, 4, e.VariableCount())
	assert.True(t, e.ValueOf(1))
}

func TestDecisionBudget(t *testing.T) {
	e := New(&testAllocator{})
	defer e.Release()
	ingest(e, [][]int{{1, 2}})

	code, err := e.Solve(0)
	assert.NoError(t, err)
	assert.Equal(t, unknown, code, "a search needing decisions must report unknown under a zero budget")

	code, err = e.Solve(-1)
	assert.NoError(t, err)
	assert.Equal(t, satisfiable, code)
}

func TestPropagationLimit(t *testing.T) {
	e := New(&testAllocator{})
	defer e.Release()
	// A chain of implications: deciding 1 forces every other variable.
	ingest(e, [][]int{{1}, {-1, 2}, {-2, 3}, {-3, 4}})

	e.SetPropagationLimit(2)
	code, err := e.Solve(-1)
	assert.NoError(t, err)
	assert.Equal(t, unknown, code)

	e.SetPropagationLimit(0)
	code, err = e.Solve(-1)
	assert.NoError(t, err)
	assert.Equal(t, satisfiable, code)
}

func TestIncrementalBlocking(t *testing.T) {
	e := New(&testAllocator{})
	defer e.Release()
	ingest(e, [][]int{{1, 2}})

	models := 0
	for {
		code, err := e.Solve(-1)
		assert.NoError(t, err)
		if code != satisfiable {
			assert.Equal(t, unsatisfiable, code)
			break
		}
		models++
		// Block the current model by hand, the way the binding does.
		for v := 1; v <= e.VariableCount(); v++ {
			if e.ValueOf(v) {
				e.AddLiteral(-v)
			} else {
				e.AddLiteral(v)
			}
		}
		e.AddLiteral(0)
	}
	assert.Equal(t, 3, models)
}

func TestOutOfMemory(t *testing.T) {
	alloc := &testAllocator{fail: true}
	e := New(alloc)
	defer e.Release()
	ingest(e, [][]int{{1}})

	_, err := e.Solve(-1)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	// The engine stays usable once the allocator recovers.
	alloc.fail = false
	code, err := e.Solve(-1)
	assert.NoError(t, err)
	assert.Equal(t, satisfiable, code)
}
