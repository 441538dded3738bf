package sat

import "math/rand"

// GenerateInstance builds a random clause set over the given number of
// variables. Clauses that would come out empty get one random literal so the
// instance is never trivially unsatisfiable.
func GenerateInstance(vars, clauses int) [][]int {
	instance := make([][]int, clauses)
	for i := 0; i < clauses; i++ {
		instance[i] = make([]int, 0, vars)
		for v := 1; v <= vars; v++ {
			if rand.Float32() < 0.5 {
				continue
			}
			lit := v
			if rand.Float32() < 0.5 {
				lit = -v
			}
			instance[i] = append(instance[i], lit)
		}
		if len(instance[i]) == 0 {
			lit := 1 + rand.Intn(vars)
			if rand.Float32() < 0.5 {
				lit = -lit
			}
			instance[i] = append(instance[i], lit)
		}
	}
	return instance
}

// ValidSolution reports whether solution is consistent (no duplicates, no
// contradictions) and satisfies every clause of the instance.
func ValidSolution(clauses [][]int, solution Solution) bool {
	literals := make(map[int]bool, len(solution))
	for _, lit := range solution {
		if lit == 0 || literals[lit] || literals[-lit] {
			return false
		}
		literals[lit] = true
	}

	for _, clause := range clauses {
		satisfied := false
		for _, lit := range clause {
			if literals[lit] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
