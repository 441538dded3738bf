// Package dimacs reads and writes problems in the DIMACS CNF format.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a DIMACS CNF problem. Comment lines and the "p cnf" header are
// tolerated but not required; vars is the larger of the header's variable
// count and the largest variable index actually referenced.
func Parse(r io.Reader) (clauses [][]int, vars int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var clause []int
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' || line[0] == '%' {
			continue
		}
		if line[0] == 'p' {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, 0, fmt.Errorf("line %d: malformed problem header %q", lineno, line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, 0, fmt.Errorf("line %d: invalid variable count %q", lineno, fields[2])
			}
			if n > vars {
				vars = n
			}
			continue
		}
		for _, field := range strings.Fields(line) {
			lit, err := strconv.Atoi(field)
			if err != nil {
				return nil, 0, fmt.Errorf("line %d: invalid literal %q", lineno, field)
			}
			if lit == 0 {
				clauses = append(clauses, clause)
				clause = nil
				continue
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v > vars {
				vars = v
			}
			clause = append(clause, lit)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	if len(clause) > 0 {
		// Final clause without its terminator.
		clauses = append(clauses, clause)
	}
	return clauses, vars, nil
}

// Write renders a clause set in DIMACS CNF format.
func Write(w io.Writer, clauses [][]int, vars int) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", vars, len(clauses)); err != nil {
		return err
	}
	for _, clause := range clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(w, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "0"); err != nil {
			return err
		}
	}
	return nil
}
