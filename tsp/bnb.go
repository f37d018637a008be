// Package tsp — Branch-and-Bound (best-first search with reduced-matrix bounds).
//
// TSPBranchAndBound explores partial tours best-first. Each node carries a
// reduced cost matrix and the admissible bound accumulated while reducing
// it; nodes are ordered by the normalized bound (bound/depth, favouring
// nodes that are both cheap and deep) with the insertion sequence as a
// deterministic tie-break.
//
// Life cycle of one invocation:
//  1. Seed the BSSF (best solution so far) with the random baseline.
//  2. Reduce the full cost matrix from bound 0 with city 0 as the only visited
//     city (depth 1) and push it.
//  3. Loop while the time allowance holds, the context is live and the queue
//     is non-empty:
//     - pop the best node;
//     - prune it when BSSF.Cost <= bound (no completion can be strictly cheaper);
//     - otherwise expand every finite edge out of its last city; a child that
//     visits every city is priced as a complete tour and replaces the BSSF
//     when strictly cheaper, every other child is pushed.
//  4. Report the BSSF. If the search never improved on the baseline, the
//     baseline tour is the answer; this is not an error.
//
// Time is polled once per loop iteration; a single expansion is never
// interrupted, so the call may overrun its allowance by one expansion.
//
// Complexity:
//   - Worst case exponential in n (exact search). Practical speed comes from pruning.
//   - Per expansion: O(n) children × O(n²) copy + reduction.
//   - Memory: O(queue · n²); the queue is unbounded.
package tsp

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// startCity is the fixed first city of every partial tour.
const startCity = 0

// stop reasons reported in the termination log entry.
const (
	stopExhausted = "exhausted"
	stopTimeout   = "timeout"
	stopCancelled = "cancelled"
)

// bbEngine holds all search data for a single invocation.
// It is never shared between goroutines.
type bbEngine struct {
	n     int
	start int
	w     *matrix.Dense // original costs, read-only

	// Time budget / cancellation
	ctx      context.Context
	deadline time.Time

	// Priority queue of open nodes
	pq nodePQ

	// Current incumbent (BSSF)
	bssf  *Solution
	count int // BSSF replacements found by the search (seed excluded)

	stats SearchStats

	log       logrus.FieldLogger
	onImprove func(Solution)
}

// TSPBranchAndBound solves the asymmetric TSP for sc within the configured time
// allowance and returns the best tour found.
//
// Results.Cost is the final BSSF cost (+Inf when no valid tour exists at all),
// Results.Count the number of improvements over the baseline, and
// Results.Search holds the queue/state/prune counters.
//
// Degenerate inputs: no cities ⇒ Cost=+Inf and nil Solution; one city ⇒
// Route [0] with Cost 0.
//
// Errors: ErrNilScenario, ErrCityIndex, ErrInvalidCost, ErrNegativeAllowance,
// or the collaborator's own error, unchanged. Expiry of the allowance is
// not an error.
func TSPBranchAndBound(ctx context.Context, sc Scenario, opts ...Option) (Results, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Results{}, err
	}
	var started = time.Now()

	cities, err := scenarioCities(sc)
	if err != nil {
		return Results{}, err
	}
	w, err := BuildCostMatrix(cities)
	if err != nil {
		return Results{}, err
	}

	e := &bbEngine{
		n:         len(cities),
		start:     startCity,
		w:         w,
		ctx:       ctx,
		deadline:  started.Add(cfg.TimeAllowance),
		log:       cfg.Logger,
		onImprove: cfg.OnImprove,
	}
	if e.n > 0 {
		e.seed(cfg, started)
		if err = e.run(); err != nil {
			return Results{}, err
		}
	}

	res := Results{
		Algorithm: BranchAndBound,
		Cost:      math.Inf(1),
		Count:     e.count,
		Search:    &e.stats,
		Elapsed:   time.Since(started),
	}
	if e.bssf != nil {
		res.Cost = e.bssf.Cost
		res.Solution = e.bssf
	}

	e.log.WithFields(resultFields(res)).Info("branch-and-bound finished")

	return res, nil
}

// seed initializes the BSSF from the random baseline. The baseline gets
// min(BaselineAllowance, TimeAllowance) and shares the invocation's context.
func (e *bbEngine) seed(cfg Options, started time.Time) {
	var allowance = cfg.BaselineAllowance
	if cfg.TimeAllowance < allowance {
		allowance = cfg.TimeAllowance
	}
	sol, draws := drawBaseline(e.ctx, e.w, rngFromSeed(cfg.Seed), started.Add(allowance), e.start)
	if sol == nil {
		e.log.WithField("draws", draws).Debug("baseline found no valid tour")
		return
	}
	e.bssf = sol
	e.log.WithFields(logrus.Fields{"cost": sol.Cost, "draws": draws}).Debug("BSSF seeded from random tour")
	e.notify()
}

// run executes the best-first loop until time expiry, cancellation or exhaustion.
func (e *bbEngine) run() error {
	if e.n == 1 {
		// The seed already holds the only tour; there is nothing to branch on.
		e.stats.Exhausted = true
		return nil
	}

	root := e.w.Clone()
	bound := Reduce(root, 0, 0)
	e.pq = make(nodePQ, 0, e.n)
	initHeap(&e.pq)
	e.push(newSearchNode(0, bound, []int{e.start}, root))

	var (
		reason = stopExhausted
		nd     *searchNode
	)
	for e.pq.Len() > 0 {
		if !time.Now().Before(e.deadline) {
			reason = stopTimeout
			break
		}
		if e.ctx.Err() != nil {
			reason = stopCancelled
			break
		}

		nd = popNode(&e.pq)
		if e.bssf != nil && e.bssf.Cost <= nd.bound {
			e.stats.Pruned++
			continue
		}
		if err := e.expand(nd); err != nil {
			return err
		}
	}
	e.stats.Exhausted = reason == stopExhausted

	e.log.WithFields(logrus.Fields{"reason": reason, "open": e.pq.Len()}).Debug("search loop stopped")

	return nil
}

// expand generates every child of nd reachable through a finite edge out of
// its last city. Complete children are offered to the BSSF; the others are
// queued.
func (e *bbEngine) expand(nd *searchNode) error {
	var (
		row   = nd.last()
		depth = nd.depth() + 1
		final = depth == e.n
		col   int
		c     float64
		m     *matrix.Dense
		bound float64
		route []int
		err   error
	)
	for col = 0; col < e.n; col++ {
		if c, err = nd.m.At(row, col); err != nil {
			return err
		}
		if math.IsInf(c, 1) {
			continue // blocked or already visited
		}

		route = make([]int, depth)
		copy(route, nd.route)
		route[depth-1] = col
		e.stats.Total++

		if final {
			e.offer(route)
			continue
		}

		if m, bound, err = makeChild(nd.m, nd.bound, row, col, e.start); err != nil {
			return err
		}
		e.push(newSearchNode(e.stats.Total, bound, route, m))
	}

	return nil
}

// offer prices a complete route and replaces the BSSF if strictly cheaper.
func (e *bbEngine) offer(route []int) {
	sol := solutionFromMatrix(e.w, route)
	if math.IsInf(sol.Cost, 1) {
		return // closing edge is missing
	}
	if e.bssf != nil && sol.Cost >= e.bssf.Cost {
		return
	}
	e.bssf = sol
	e.count++
	e.log.WithFields(logrus.Fields{
		"cost":  sol.Cost,
		"total": e.stats.Total,
		"queue": e.pq.Len(),
	}).Debug("BSSF improved")
	e.notify()
}

// push queues nd and tracks the peak queue size.
func (e *bbEngine) push(nd *searchNode) {
	pushNode(&e.pq, nd)
	if e.pq.Len() > e.stats.MaxQueue {
		e.stats.MaxQueue = e.pq.Len()
	}
}

// notify hands a copy of the current BSSF to the improvement hook.
func (e *bbEngine) notify() {
	if e.onImprove != nil {
		e.onImprove(e.bssf.clone())
	}
}

// resultFields renders Results as structured log fields.
func resultFields(r Results) logrus.Fields {
	f := logrus.Fields{
		"algorithm": r.Algorithm.String(),
		"cost":      formatCost(r.Cost),
		"elapsed":   r.Elapsed,
		"count":     r.Count,
	}
	if r.Search != nil {
		f["max"] = r.Search.MaxQueue
		f["total"] = r.Search.Total
		f["pruned"] = r.Search.Pruned
		f["exhausted"] = r.Search.Exhausted
	}

	return f
}
