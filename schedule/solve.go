package schedule

import (
	"time"

	"github.com/festlab/matinee/catalog"
	"github.com/festlab/matinee/transit"
)

// Search runs the exact two-phase optimization over a pairwise relation and
// returns the raw selection. The first pass maximizes attendance; the second
// pins attendance at that maximum and minimizes attributed transit, seeded
// with the first pass's assignment. Results are deterministic for complete
// runs, including under Options.Workers > 1.
//
// Errors: ErrNilRelation, ErrInvalidOptions, ErrNegativeTransit. An expired
// budget is not an error: the best-known selection comes back, Optimal=false.
//
// Complexity: worst case exponential in rel.Len(); O(n²) memory.
func Search(rel Pairwise, opts Options) (Selection, error) {
	// Stage 1 - validation.
	if rel == nil {
		return Selection{}, ErrNilRelation
	}
	if err := validateOptions(opts); err != nil {
		return Selection{}, err
	}

	// Stage 2 - trivial catalog.
	n := rel.Len()
	if n == 0 {
		return Selection{Selected: []bool{}, Optimal: true}, nil
	}

	// Stage 3 - prefetch the relation into dense buffers.
	pre, err := prefetchRelation(rel)
	if err != nil {
		return Selection{}, err
	}

	// Stage 4 - attendance pass, seeded with the always-feasible empty set.
	started := time.Now()
	budget := newBudget(opts)
	empty := incumbent{selected: make([]bool, n)}
	first := runPass(pre, passConfig{phase: PhaseAttendance, seed: empty}, budget, opts, started)

	// Stage 5 - transit pass, attendance pinned at the pass-1 optimum and the
	// incumbent seeded with the pass-1 assignment and its accumulated transit.
	best := first
	if !budget.expired.Load() {
		best = runPass(pre, passConfig{phase: PhaseTransit, target: first.count, seed: first}, budget, opts, started)
	}

	return Selection{
		Selected:       best.selected,
		Attendance:     best.count,
		TransitMinutes: best.transit,
		Optimal:        !budget.expired.Load(),
		Nodes:          budget.nodes.Load(),
	}, nil
}

// Solve optimizes a full catalog/table pair: it precomputes the pairwise
// oracle, runs Search, and derives the render-ready schedule entries.
//
// Errors: ErrNilCatalog, ErrNilTable, plus everything Search reports.
func Solve(c *catalog.Catalog, tbl *transit.Table, opts Options) (Result, error) {
	// Stage 1 - oracle construction (validates inputs).
	rel, err := NewOracle(c, tbl)
	if err != nil {
		return Result{}, err
	}

	// Stage 2 - exact two-phase search.
	sel, err := Search(rel, opts)
	if err != nil {
		return Result{}, err
	}

	// Stage 3 - derive per-entry transit and downtime.
	return Result{Selection: sel, Entries: buildEntries(c, rel, sel.Selected)}, nil
}

// buildEntries walks the selected indices in catalog order, attributing
// transit and downtime to each entry from its predecessor. Cross-day
// transitions and a day's first selection charge nothing.
func buildEntries(c *catalog.Catalog, rel Pairwise, selected []bool) []Entry {
	entries := make([]Entry, 0, len(selected))
	prev := -1
	for i, on := range selected {
		if !on {
			continue
		}
		e := Entry{Index: i, Occurrence: c.At(i)}
		if prev >= 0 && rel.SameDay(prev, i) {
			e.SameDay = true
			e.TransitMinutes = rel.TransitMinutes(prev, i)
			gap := int(e.Occurrence.Start.Sub(c.At(prev).End()) / time.Minute)
			e.DowntimeMinutes = gap - e.TransitMinutes
		}
		prev = i
		entries = append(entries, e)
	}

	return entries
}
