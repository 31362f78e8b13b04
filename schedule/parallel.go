// Package schedule — deterministic parallel driver for the two-phase search.
//
// Parallel mode partitions the assignment space at the root: the first k
// selection decisions are fixed per branch, and the 2^k branches run the
// ordinary serial engine below their prefix. Determinism is preserved by
// construction:
//
//  1. Branch b encodes its prefix in binary, most significant bit first,
//     0 = attend and 1 = skip. Ascending branch order is therefore exactly
//     the serial engine's depth-first preorder over the prefixes.
//  2. Bounds flow one way. A branch consumes only bounds published by
//     lower-numbered branches, which explore lexicographically earlier
//     assignments; equal-value pruning can thus never cut the earliest
//     optimum, only later ties.
//  3. Branch results are folded in ascending order with strict improvement,
//     so the surviving incumbent is the one the serial engine would have
//     kept.
//
// A complete parallel run returns bit-identical results to a serial run.
// Under an expired budget the explored frontier depends on scheduling, so
// only the non-optimal flagging is stable.

package schedule

import (
	"sync"
	"time"
)

// maxSplitDepth caps root splitting at 2^8 = 256 branches.
const maxSplitDepth = 8

// splitDepth picks the number of root decisions to fix per branch: the
// smallest k giving at least four branches per worker, for stealing slack.
func splitDepth(n, workers int) int {
	k := 0
	for 1<<k < 4*workers && k < maxSplitDepth {
		k++
	}
	if k > n {
		k = n
	}

	return k
}

// sharedBound is the mutex-protected incumbent board for one pass. Slot b
// holds the best objective value branch b has published; readers fold only
// slots below their own branch.
type sharedBound struct {
	mu       sync.Mutex
	maximize bool
	set      []bool
	vals     []int
}

func newSharedBound(branches int, maximize bool) *sharedBound {
	return &sharedBound{
		maximize: maximize,
		set:      make([]bool, branches),
		vals:     make([]int, branches),
	}
}

// publish records v in slot branch, keeping the better of the two values.
// The board is monotone: a published bound never loosens.
func (s *sharedBound) publish(branch, v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set[branch] {
		s.set[branch] = true
		s.vals[branch] = v

		return
	}
	if s.maximize == (v > s.vals[branch]) && v != s.vals[branch] {
		s.vals[branch] = v
	}
}

// before returns the best value any branch below b has published.
func (s *sharedBound) before(b int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	best, ok := 0, false
	for j := 0; j < b; j++ {
		if !s.set[j] {
			continue
		}
		if !ok || s.maximize == (s.vals[j] > best) {
			best, ok = s.vals[j], true
		}
	}

	return best, ok
}

// applyPrefix replays branch's fixed decisions for depths 0..k-1 on a fresh
// engine. It reports false when the prefix is unreachable — an attend
// decision conflicts with the chosen set, or overshoots a transit-pass
// target — in which case the branch explores nothing, exactly as the serial
// engine never enters that subtree.
func (e *bbEngine) applyPrefix(branch, k int) bool {
	for d := 0; d < k; d++ {
		if branch&(1<<(k-1-d)) != 0 {
			continue // skip decision
		}
		if e.phase == PhaseTransit && e.count >= e.target {
			return false
		}
		if !e.feasibleWithChosen(d) {
			return false
		}
		leg := e.legTransit(d)
		e.selected[d] = true
		e.chosen = append(e.chosen, d)
		e.count++
		e.transit += leg
	}

	return true
}

// runPass executes one pass serially or across a worker pool.
func runPass(pre *prefetched, cfg passConfig, budget *searchBudget, opts Options, started time.Time) incumbent {
	if opts.Workers <= 1 || pre.n == 0 {
		return newEngine(pre, cfg, budget, opts, started).run()
	}

	k := splitDepth(pre.n, opts.Workers)
	branches := 1 << k
	shared := newSharedBound(branches, cfg.phase == PhaseAttendance)

	results := make([]incumbent, branches)
	ran := make([]bool, branches)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				e := newEngine(pre, cfg, budget, opts, started)
				e.shared = shared
				e.branch = b
				if !e.applyPrefix(b, k) {
					continue
				}
				e.dfs(k)
				results[b] = e.best
				ran[b] = true
			}
		}()
	}
	for b := 0; b < branches; b++ {
		jobs <- b
	}
	close(jobs)
	wg.Wait()

	// Ordered reduction: ascending branches, strict improvement only.
	final := cfg.seed.clone()
	for b := 0; b < branches; b++ {
		if !ran[b] {
			continue
		}
		if improves(results[b], final, cfg.phase) {
			final = results[b]
		}
	}

	return final
}

// improves reports whether candidate strictly beats cur on the pass objective.
func improves(candidate, cur incumbent, phase Phase) bool {
	if phase == PhaseAttendance {
		return candidate.count > cur.count
	}

	return candidate.transit < cur.transit
}
