package sat

import (
	"errors"

	"github.com/limaJavier/gosat/internal/dpll"
)

// NewDPLLEngine creates the default, reference engine. It is the only
// backend that meters its propagation work, so it is the one to use when a
// propagation limit must actually produce Unknown outcomes.
func NewDPLLEngine(alloc Allocator) (Engine, error) {
	return dpllEngine{dpll.New(alloc)}, nil
}

type dpllEngine struct {
	*dpll.Engine
}

func (e dpllEngine) Solve(budget int64) (int, error) {
	code, err := e.Engine.Solve(budget)
	if err != nil {
		if errors.Is(err, dpll.ErrOutOfMemory) {
			return 0, &MemoryError{Op: "engine assignment array"}
		}
		return 0, err
	}
	return code, nil
}
