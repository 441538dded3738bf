package sat

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveDPLL(t *testing.T) {
	solveScenarios(t, NewDPLLEngine)
	solveRandomized(t, NewDPLLEngine)
}

func TestSolveGophersat(t *testing.T) {
	solveScenarios(t, NewGophersatEngine)
	solveRandomized(t, NewGophersatEngine)
}

func TestSolveGini(t *testing.T) {
	solveScenarios(t, NewGiniEngine)
	solveRandomized(t, NewGiniEngine)
}

func solveScenarios(t *testing.T, factory EngineFactory) {
	opts := func() *Options { return &Options{Engine: factory} }

	t.Run("unit clause", func(t *testing.T) {
		solution, status, err := Solve([][]int{{1}}, opts())
		assert.NoError(t, err)
		assert.Equal(t, Satisfiable, status)
		assert.Equal(t, Solution{1}, solution)
	})

	t.Run("contradiction", func(t *testing.T) {
		solution, status, err := Solve([][]int{{1}, {-1}}, opts())
		assert.NoError(t, err)
		assert.Equal(t, Unsatisfiable, status)
		assert.Nil(t, solution)
	})

	t.Run("empty clause", func(t *testing.T) {
		_, status, err := Solve([][]int{{}}, opts())
		assert.NoError(t, err)
		assert.Equal(t, Unsatisfiable, status)
	})

	t.Run("no clauses with reserved variables", func(t *testing.T) {
		o := opts()
		o.Vars = 3
		solution, status, err := Solve(nil, o)
		assert.NoError(t, err)
		assert.Equal(t, Satisfiable, status)
		assert.Len(t, solution, 3)
		assert.True(t, ValidSolution(nil, solution))
	})

	t.Run("small formula", func(t *testing.T) {
		instance := [][]int{{-1, -2}, {-2, 3}, {1, -3, 2}, {2}}
		solution, status, err := Solve(instance, opts())
		assert.NoError(t, err)
		assert.Equal(t, Satisfiable, status)
		assert.Len(t, solution, 3)
		assert.True(t, ValidSolution(instance, solution))
	})
}

func solveRandomized(t *testing.T, factory EngineFactory) {
	t.Run("random instances", func(t *testing.T) {
		unsatisfiable := 0
		for i := 0; i < 25; i++ {
			instance := GenerateInstance(10, 25)
			solution, status, err := Solve(instance, &Options{Engine: factory})
			assert.NoError(t, err)
			switch status {
			case Satisfiable:
				if !ValidSolution(instance, solution) {
					t.Fatalf("unsound solution %v for instance %v", solution, instance)
				}
			case Unsatisfiable:
				unsatisfiable++
			default:
				t.Fatalf("unexpected status %v without a propagation limit", status)
			}
		}
		t.Logf("unsatisfiable instances: %v", unsatisfiable)
	})
}

// pigeonhole encodes p pigeons into h holes; unsatisfiable whenever p > h
// and expensive enough to need real propagation work.
func pigeonhole(p, h int) [][]int {
	hole := func(i, j int) int { return (i-1)*h + j }
	var clauses [][]int
	for i := 1; i <= p; i++ {
		clause := make([]int, h)
		for j := 1; j <= h; j++ {
			clause[j-1] = hole(i, j)
		}
		clauses = append(clauses, clause)
	}
	for j := 1; j <= h; j++ {
		for i := 1; i <= p; i++ {
			for k := i + 1; k <= p; k++ {
				clauses = append(clauses, []int{-hole(i, j), -hole(k, j)})
			}
		}
	}
	return clauses
}

func TestSolvePropagationLimit(t *testing.T) {
	instance := pigeonhole(5, 4)

	_, status, err := Solve(instance, &Options{PropLimit: 1})
	assert.NoError(t, err)
	assert.Equal(t, Unknown, status, "a starved search must report Unknown, never Unsatisfiable")

	_, status, err = Solve(instance, nil)
	assert.NoError(t, err)
	assert.Equal(t, Unsatisfiable, status)
}

// recordingFactory counts engine invocations so tests can assert that
// validation failures abort before any solving.
type recordingEngine struct {
	Engine
	solves *int
}

func (e recordingEngine) Solve(budget int64) (int, error) {
	*e.solves++
	return e.Engine.Solve(budget)
}

func TestSolveZeroLiteral(t *testing.T) {
	solves := 0
	factory := func(alloc Allocator) (Engine, error) {
		eng, err := NewDPLLEngine(alloc)
		return recordingEngine{Engine: eng, solves: &solves}, err
	}

	_, _, err := Solve([][]int{{1}, {2, 0, 3}}, &Options{Engine: factory})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, ZeroLiteral, verr.Kind)
	assert.Equal(t, 1, verr.Clause)
	assert.Equal(t, 1, verr.Index)
	assert.Zero(t, solves, "validation failures must surface before any solving")
}

// stubEngine returns a fixed outcome code.
type stubEngine struct {
	code int
}

func (stubEngine) SetVerbosity(int)           {}
func (stubEngine) ReserveVariables(int)       {}
func (stubEngine) SetPropagationLimit(uint64) {}
func (stubEngine) AddLiteral(int)             {}
func (e stubEngine) Solve(int64) (int, error) { return e.code, nil }
func (stubEngine) VariableCount() int         { return 0 }
func (stubEngine) ValueOf(int) bool           { return false }
func (stubEngine) Release()                   {}

func TestSolveUnexpectedOutcome(t *testing.T) {
	factory := func(Allocator) (Engine, error) { return stubEngine{code: 42}, nil }
	_, _, err := Solve([][]int{{1}}, &Options{Engine: factory})
	var ierr *InternalError
	assert.ErrorAs(t, err, &ierr)
	assert.Equal(t, 42, ierr.Code)
}

func TestSolveFactoryError(t *testing.T) {
	boom := errors.New("no engine for you")
	factory := func(Allocator) (Engine, error) { return nil, boom }
	_, _, err := Solve([][]int{{1}}, &Options{Engine: factory})
	assert.ErrorIs(t, err, boom)
}

func TestSolveOutOfMemory(t *testing.T) {
	alloc := NewTrackingAllocator(nil, 1)
	_, _, err := Solve([][]int{{1, 2}}, &Options{Allocator: alloc})
	var merr *MemoryError
	assert.ErrorAs(t, err, &merr)
	assert.Zero(t, alloc.Live(), "session teardown must free everything on the OOM path")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "SATISFIABLE", Satisfiable.String())
	assert.Equal(t, "UNSATISFIABLE", Unsatisfiable.String())
	assert.Equal(t, "UNKNOWN", Unknown.String())
	assert.Equal(t, "UNKNOWN", fmt.Sprint(Unknown))
}
