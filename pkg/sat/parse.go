package sat

import "math"

// ParseClauses validates loosely typed clause data, as produced by decoding
// JSON or similar dynamic input, and returns it as a clause set. The input
// must be a sequence of sequences of non-zero integers; anything else yields
// a *ValidationError identifying the first offending element.
func ParseClauses(v any) ([][]int, error) {
	switch outer := v.(type) {
	case [][]int:
		for i, clause := range outer {
			for j, lit := range clause {
				if lit == 0 {
					return nil, &ValidationError{Kind: ZeroLiteral, Clause: i, Index: j}
				}
			}
		}
		return outer, nil
	case []any:
		clauses := make([][]int, len(outer))
		for i, cv := range outer {
			clause, err := parseClause(cv, i)
			if err != nil {
				return nil, err
			}
			clauses[i] = clause
		}
		return clauses, nil
	default:
		return nil, &ValidationError{Kind: ShapeMismatch, Clause: -1, Index: -1}
	}
}

func parseClause(v any, i int) ([]int, error) {
	switch inner := v.(type) {
	case []int:
		for j, lit := range inner {
			if lit == 0 {
				return nil, &ValidationError{Kind: ZeroLiteral, Clause: i, Index: j}
			}
		}
		return inner, nil
	case []any:
		clause := make([]int, len(inner))
		for j, lv := range inner {
			lit, ok := toLiteral(lv)
			if !ok {
				return nil, &ValidationError{Kind: TypeMismatch, Clause: i, Index: j}
			}
			if lit == 0 {
				return nil, &ValidationError{Kind: ZeroLiteral, Clause: i, Index: j}
			}
			clause[j] = lit
		}
		return clause, nil
	default:
		return nil, &ValidationError{Kind: ShapeMismatch, Clause: i, Index: -1}
	}
}

func toLiteral(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		// encoding/json decodes every number this way; reject fractions.
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
