package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/gosat/internal/dimacs"
	"github.com/limaJavier/gosat/pkg/sat"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var engines = map[string]sat.EngineFactory{
	"dpll":      sat.NewDPLLEngine,
	"gophersat": sat.NewGophersatEngine,
	"gini":      sat.NewGiniEngine,
}

// jsonProblem is the shape of a problem document supplied with -json.
// Clauses stays loosely typed so the binding's own validation reports the
// exact malformed element.
type jsonProblem struct {
	Clauses   any    `mapstructure:"clauses"`
	Vars      int    `mapstructure:"vars"`
	PropLimit uint64 `mapstructure:"prop_limit"`
}

func main() {
	solverPtr := flag.String("solver", "dpll", fmt.Sprintf("SAT engine to use. Allowed values are: %v, where \"dpll\" is the default", engineNames()))
	allPtr := flag.Bool("all", false, "Enumerate every satisfying assignment instead of stopping at the first")
	limitPtr := flag.Int("n", 0, "With -all, stop after this many assignments (0 means no cap)")
	verbosePtr := flag.Int("verbose", 0, "Engine verbosity level, 0 is silent")
	propLimitPtr := flag.Uint64("prop-limit", 0, "Cap on propagation work per invocation, 0 is unbounded (an invocation that hits the cap reports UNKNOWN)")
	varsPtr := flag.Int("vars", 0, "Pre-size the variable table so assignments are total over 1..vars")
	jsonPtr := flag.Bool("json", false, `Read a JSON problem document {"clauses": [[...]], "vars": n, "prop_limit": k} instead of DIMACS CNF`)
	flag.Parse()

	factory, ok := engines[*solverPtr]
	if !ok {
		log.Fatalf("unknown solver %q, allowed values are %v", *solverPtr, engineNames())
	}

	input, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatalf("cannot read input: %v", err)
	}

	opts := &sat.Options{
		Vars:      *varsPtr,
		Verbosity: *verbosePtr,
		PropLimit: *propLimitPtr,
		Engine:    factory,
	}

	var clauses [][]int
	if *jsonPtr {
		clauses, err = decodeProblem(input, opts)
	} else {
		var vars int
		clauses, vars, err = dimacs.Parse(bytes.NewReader(input))
		if vars > opts.Vars {
			opts.Vars = vars
		}
	}
	if err != nil {
		log.Fatalf("cannot parse problem: %v", err)
	}

	if *allPtr {
		enumerate(clauses, opts, *limitPtr)
		return
	}
	solve(clauses, opts)
}

func solve(clauses [][]int, opts *sat.Options) {
	solution, status, err := sat.Solve(clauses, opts)
	if err != nil {
		log.Fatalf("solving failed: %v", err)
	}
	fmt.Printf("s %v\n", status)
	if status == sat.Satisfiable {
		printModel(solution)
	}
}

func enumerate(clauses [][]int, opts *sat.Options, limit int) {
	it, err := sat.Enumerate(clauses, opts)
	if err != nil {
		log.Fatalf("solving failed: %v", err)
	}
	defer it.Close()

	count := 0
	for it.Next() {
		printModel(it.Solution())
		count++
		if limit > 0 && count >= limit {
			break
		}
	}
	if err := it.Err(); err != nil {
		log.Fatalf("enumeration failed: %v", err)
	}
	fmt.Printf("c %d solutions\n", count)
}

func printModel(solution sat.Solution) {
	for _, chunk := range lo.Chunk(solution, 10) {
		fmt.Printf("v %s\n", strings.Join(lo.Map(chunk, func(lit int, _ int) string { return fmt.Sprint(lit) }), " "))
	}
	fmt.Println("v 0")
}

func decodeProblem(input []byte, opts *sat.Options) ([][]int, error) {
	var doc map[string]any
	if err := json.Unmarshal(input, &doc); err != nil {
		return nil, err
	}
	var problem jsonProblem
	if err := mapstructure.Decode(doc, &problem); err != nil {
		return nil, err
	}
	if problem.Vars > opts.Vars {
		opts.Vars = problem.Vars
	}
	if problem.PropLimit > 0 && opts.PropLimit == 0 {
		opts.PropLimit = problem.PropLimit
	}
	return sat.ParseClauses(problem.Clauses)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func engineNames() []string {
	names := lo.Keys(engines)
	slices.Sort(names)
	return names
}
