// Package bnbtsp is an anytime solver for the asymmetric Travelling
// Salesperson Problem: a best-first branch-and-bound search over partial
// tours, bounded by reduced cost matrices and seeded with a random tour.
//
// Under the hood, everything is organized under a few subpackages:
//
//	matrix/       — dense float64 storage with row/column kernels (fill, min, subtract)
//	tsp/          — cost matrix builder, reducer, child states, search engine, baseline
//	scenario/     — City/Scenario collaborators: generated instances and YAML files
//	cmd/tspsolve/ — command line front end (solve, generate)
//	examples/     — a runnable drone routing program
//
// Quick start:
//
//	sc, _ := scenario.Generate(15, scenario.Hard, 7)
//	res, _ := tsp.TSPBranchAndBound(ctx, sc, tsp.WithTimeAllowance(10*time.Second))
//	fmt.Println(res)
//
// "No tour exists" is reported as Cost=+Inf, never as an error; an expired
// time allowance returns the best tour found so far.
//
//	go install github.com/katalvlaran/bnbtsp/cmd/tspsolve@latest
package bnbtsp
