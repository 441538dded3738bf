package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/gosat/pkg/sat"
	"github.com/samber/lo"
)

var engines = map[string]sat.EngineFactory{
	"dpll":      sat.NewDPLLEngine,
	"gophersat": sat.NewGophersatEngine,
	"gini":      sat.NewGiniEngine,
}

func main() {
	specPtr := flag.String("instances", "20:90:10", "Random instances to solve, as vars:clauses:count")
	allPtr := flag.Bool("all", false, "Enumerate every model of each instance instead of solving once")
	flag.Parse()

	vars, clauses, count := parseInstanceSpec(*specPtr)
	instances := make([][][]int, count)
	for i := range instances {
		instances[i] = sat.GenerateInstance(vars, clauses)
	}

	names := lo.Keys(engines)
	slices.Sort(names)
	for _, name := range names {
		factory := engines[name]
		satisfiable := 0
		models := 0
		start := time.Now()
		for _, instance := range instances {
			if *allPtr {
				models += enumerate(instance, factory)
				continue
			}
			solution, status, err := sat.Solve(instance, &sat.Options{Engine: factory})
			if err != nil {
				log.Fatalf("%v failed: %v", name, err)
			}
			if status == sat.Satisfiable {
				satisfiable++
				if !sat.ValidSolution(instance, solution) {
					log.Fatalf("%v produced an unsound solution", name)
				}
			}
		}
		elapsed := time.Since(start)
		if *allPtr {
			fmt.Printf("%-10s %8v  %d models\n", name, elapsed, models)
		} else {
			fmt.Printf("%-10s %8v  %d/%d satisfiable\n", name, elapsed, satisfiable, count)
		}
	}
}

func enumerate(instance [][]int, factory sat.EngineFactory) int {
	it, err := sat.Enumerate(instance, &sat.Options{Engine: factory})
	if err != nil {
		log.Fatalf("enumeration failed: %v", err)
	}
	defer it.Close()
	models := 0
	for it.Next() {
		models++
	}
	if err := it.Err(); err != nil {
		log.Fatalf("enumeration failed: %v", err)
	}
	return models
}

// parseInstanceSpec parses a vars:clauses:count triple.
func parseInstanceSpec(spec string) (vars, clauses, count int) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		log.Panicf("invalid instance spec %q, expected vars:clauses:count", spec)
	}
	values := lo.Map(parts, func(part string, _ int) int {
		value, err := strconv.Atoi(part)
		if err != nil || value <= 0 {
			log.Panicf("invalid instance spec %q: %q is not a positive integer", spec, part)
		}
		return value
	})
	return values[0], values[1], values[2]
}
