// Package schedule — exact two-phase Branch-and-Bound over selection vectors.
//
// The engine enumerates boolean assignments depth-first in catalog index
// order with deterministic branching and admissible bounds.
//
// Rationale (succinct):
//  1. The pairwise relation is prefetched into dense buffers so the hot
//     loops perform no interface calls and no allocations.
//  2. Branch order is attend-before-skip at every index. Incumbents are
//     replaced only on strict improvement, so the first optimum reached in
//     this order — the one selecting the earliest catalog indices — is the
//     one returned. Runs are reproducible across machines.
//  3. Attendance pass bound: selected-so-far plus all undecided indices is
//     an upper bound on any completion; prune when it cannot beat the
//     incumbent. Transit pass bound: accumulated transit never decreases,
//     so prune once it reaches the incumbent; attendance must also remain
//     able to reach the fixed target.
//  4. The transit pass is seeded with the attendance pass's assignment and
//     its evaluated transit — a valid upper bound that prunes immediately.
//  5. Soft budgets: node counting is exact; the wall-clock deadline is
//     tested every 4096 nodes to keep overhead negligible.
//
// Complexity:
//   - Worst case exponential in n (exact search); pruning does the practical work.
//   - Per node: O(depth) feasibility checks + O(1) state updates.
//   - Memory: O(n²) shared prefetch + O(n) per-engine state.

package schedule

import (
	"sync/atomic"
	"time"
)

// deadlineMask spaces out time.Now calls in the hot path.
const deadlineMask = 4095

// searchBudget is the node/time budget shared by both passes and, in a
// parallel run, by every branch engine. Once expired it stays expired.
type searchBudget struct {
	useDeadline bool
	deadline    time.Time
	maxNodes    int64
	nodes       atomic.Int64
	expired     atomic.Bool
}

func newBudget(opts Options) *searchBudget {
	b := &searchBudget{maxNodes: opts.MaxNodes}
	if opts.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(opts.TimeLimit)
	}

	return b
}

// spend charges one node and reports whether the budget is exhausted.
func (b *searchBudget) spend() bool {
	if b.expired.Load() {
		return true
	}
	n := b.nodes.Add(1)
	if b.maxNodes > 0 && n > b.maxNodes {
		b.expired.Store(true)

		return true
	}
	if b.useDeadline && n&deadlineMask == 0 && time.Now().After(b.deadline) {
		b.expired.Store(true)

		return true
	}

	return false
}

// prefetched holds the dense pair buffers every engine of one run reads.
// Entries below the diagonal are never consulted.
type prefetched struct {
	n    int
	feas []bool
	cost []int
	day  []bool
}

// prefetchRelation copies the relation into dense buffers and applies strict
// sentinels: negative costs are rejected up front because transit pruning
// relies on monotone non-negative accumulation.
func prefetchRelation(rel Pairwise) (*prefetched, error) {
	n := rel.Len()
	p := &prefetched{
		n:    n,
		feas: make([]bool, n*n),
		cost: make([]int, n*n),
		day:  make([]bool, n*n),
	}
	var (
		i, j int
		c    int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			c = rel.TransitMinutes(i, j)
			if c < 0 {
				return nil, ErrNegativeTransit
			}
			p.cost[i*n+j] = c
			p.feas[i*n+j] = rel.Feasible(i, j)
			p.day[i*n+j] = rel.SameDay(i, j)
		}
	}

	return p, nil
}

// incumbent is one feasible assignment with its evaluated objectives.
type incumbent struct {
	selected []bool
	count    int
	transit  int
}

// clone deep-copies an incumbent so engines never alias each other's state.
func (s incumbent) clone() incumbent {
	return incumbent{
		selected: append([]bool(nil), s.selected...),
		count:    s.count,
		transit:  s.transit,
	}
}

// passConfig parameterizes one engine run.
type passConfig struct {
	phase  Phase
	target int       // PhaseTransit: required attendance
	seed   incumbent // initial incumbent (all-false, or the pass-1 result)
}

// bbEngine holds the search state of one depth-first pass. A fresh engine is
// built per pass and, in parallel mode, per root branch; the prefetched
// relation and the budget are shared, everything else is private.
type bbEngine struct {
	// Configuration / policy
	n      int
	phase  Phase
	target int

	// Shared read-only relation and shared budget
	pre    *prefetched
	budget *searchBudget

	// Current search state
	selected []bool
	chosen   []int // selected indices in ascending order; last = predecessor
	count    int
	transit  int
	stopped  bool // budget expired mid-search

	// Current best incumbent
	best incumbent

	// Bound sharing across parallel root branches (nil in serial runs)
	shared         *sharedBound
	branch         int
	foreignCount   int // best attendance published by earlier branches
	foreignTransit int // best transit published by earlier branches

	// Observability
	onImprove func(Improvement)
	started   time.Time
}

// newEngine prepares a pass engine over the shared prefetch.
// The seed incumbent is deep-copied; foreign bounds start at the seed's own
// objective values so serial runs prune exactly on their incumbent.
func newEngine(pre *prefetched, cfg passConfig, budget *searchBudget, opts Options, started time.Time) *bbEngine {
	return &bbEngine{
		n:              pre.n,
		phase:          cfg.phase,
		target:         cfg.target,
		pre:            pre,
		budget:         budget,
		selected:       make([]bool, pre.n),
		chosen:         make([]int, 0, pre.n),
		best:           cfg.seed.clone(),
		foreignCount:   cfg.seed.count,
		foreignTransit: cfg.seed.transit,
		onImprove:      opts.OnImprove,
		started:        started,
	}
}

// feasibleWithChosen reports whether index j is compatible with every index
// selected so far. All pairs are checked, not only the latest: the relation
// is a general conflict graph.
func (e *bbEngine) feasibleWithChosen(j int) bool {
	for _, i := range e.chosen {
		if !e.pre.feas[i*e.n+j] {
			return false
		}
	}

	return true
}

// legTransit is the cost attributed to selecting j directly after the latest
// chosen index: the pair cost when both start on the same calendar date,
// zero for a cross-day transition or a day's first selection.
func (e *bbEngine) legTransit(j int) int {
	if len(e.chosen) == 0 {
		return 0
	}
	i := e.chosen[len(e.chosen)-1]
	if !e.pre.day[i*e.n+j] {
		return 0
	}

	return e.pre.cost[i*e.n+j]
}

// record commits the current assignment as the new incumbent, publishes its
// objective to the shared bound, and fires the progress hook.
func (e *bbEngine) record() {
	copy(e.best.selected, e.selected)
	e.best.count = e.count
	e.best.transit = e.transit
	if e.shared != nil {
		if e.phase == PhaseAttendance {
			e.shared.publish(e.branch, e.count)
		} else {
			e.shared.publish(e.branch, e.transit)
		}
	}
	if e.onImprove != nil {
		e.onImprove(Improvement{
			Phase:          e.phase,
			Selected:       append([]bool(nil), e.selected...),
			Attendance:     e.count,
			TransitMinutes: e.transit,
			Elapsed:        time.Since(e.started),
		})
	}
}

// refreshForeign pulls the bounds earlier branches have published. Sparse:
// the snapshot mutex is touched once per 1024 nodes, and a stale bound is
// merely looser, never wrong.
func (e *bbEngine) refreshForeign() {
	if e.shared == nil {
		return
	}
	if e.budget.nodes.Load()&1023 != 0 {
		return
	}
	v, ok := e.shared.before(e.branch)
	if !ok {
		return
	}
	if e.phase == PhaseAttendance {
		if v > e.foreignCount {
			e.foreignCount = v
		}
	} else if v < e.foreignTransit {
		e.foreignTransit = v
	}
}

// pruned applies the pass's admissible bound at index idx.
//
// Attendance: the ceiling count+(n−idx) bounds any completion; values that
// cannot strictly beat the incumbent — or merely tie a bound already proven
// by an earlier branch — are cut.
//
// Transit: accumulated cost is monotone, so reaching the incumbent (or an
// earlier branch's bound) cuts the subtree; the fixed attendance target must
// also stay reachable with the undecided indices left.
func (e *bbEngine) pruned(idx int) bool {
	if e.phase == PhaseAttendance {
		ceiling := e.count + (e.n - idx)

		return ceiling <= e.best.count || ceiling <= e.foreignCount
	}
	if e.count+(e.n-idx) < e.target {
		return true
	}

	return e.transit >= e.best.transit || e.transit >= e.foreignTransit
}

// leaf evaluates a complete assignment against the incumbent.
// Strict improvement only: ties keep the earlier assignment in branch order.
func (e *bbEngine) leaf() {
	switch e.phase {
	case PhaseAttendance:
		if e.count > e.best.count {
			e.record()
		}
	default:
		if e.count == e.target && e.transit < e.best.transit {
			e.record()
		}
	}
}

// dfs performs the core search from index idx: prune, then attend, then skip.
func (e *bbEngine) dfs(idx int) {
	if e.stopped || e.budget.spend() {
		e.stopped = true

		return
	}
	e.refreshForeign()

	if e.pruned(idx) {
		return
	}
	if idx == e.n {
		e.leaf()

		return
	}

	// Attend branch first: on objective ties, the assignment selecting the
	// earliest catalog indices wins.
	if (e.phase == PhaseAttendance || e.count < e.target) && e.feasibleWithChosen(idx) {
		leg := e.legTransit(idx)
		e.selected[idx] = true
		e.chosen = append(e.chosen, idx)
		e.count++
		e.transit += leg

		e.dfs(idx + 1)

		e.transit -= leg
		e.count--
		e.chosen = e.chosen[:len(e.chosen)-1]
		e.selected[idx] = false
		if e.stopped {
			return
		}
	}

	// Skip branch.
	e.dfs(idx + 1)
}

// run executes the pass and returns the final incumbent.
func (e *bbEngine) run() incumbent {
	e.dfs(0)

	return e.best
}
