// Package schedule_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files.
package schedule_test

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/festlab/matinee/catalog"
	"github.com/festlab/matinee/schedule"
	"github.com/festlab/matinee/transit"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// festYear/festMonth anchor every fixture in one festival fortnight.
	festYear  = 2022
	festMonth = time.August

	// seedDet is the deterministic seed for randomized cross-checks.
	seedDet = int64(7)

	// repeatN is the repetition count for determinism checks.
	repeatN = 3

	// bruteMax caps exhaustive reference runs at 2^bruteMax assignments.
	bruteMax = 16

	// timeTiny is a wall-clock budget that is already expired at the first
	// sparse deadline check; used to exercise budget behavior.
	timeTiny = 1 * time.Nanosecond
)

// -----------------------------------------------------------------------------
// Fixture builders (times, occurrences, venues)
// -----------------------------------------------------------------------------

// at returns a UTC instant on the given festival day.
func at(day, hh, mm int) time.Time {
	return time.Date(festYear, festMonth, day, hh, mm, 0, 0, time.UTC)
}

// occ builds one occurrence with a whole-minute duration.
func occ(title, venue string, day, hh, mm, durMin int) catalog.Occurrence {
	return catalog.Occurrence{
		Title:    title,
		Venue:    venue,
		Start:    at(day, hh, mm),
		Duration: time.Duration(durMin) * time.Minute,
	}
}

// festTable builds the canonical four-venue table used across tests.
// Pairwise minutes are deliberately non-metric: FMH→EVR direct (25) exceeds
// FMH→VUE→EVR (18+8), which the all-pairs feasibility rule must not exploit.
func festTable(t *testing.T) *transit.Table {
	t.Helper()
	tbl, err := transit.New(map[string]map[string]int{
		"FMH": {"CAM": 12, "EVR": 25, "VUE": 18},
		"CAM": {"EVR": 20, "VUE": 15},
		"EVR": {"VUE": 8},
	})
	if err != nil {
		t.Fatalf("festTable: %v", err)
	}

	return tbl
}

// mustCatalog builds a catalog over the given venue set, failing the test on
// any validation error.
func mustCatalog(t *testing.T, occs []catalog.Occurrence, venues catalog.VenueSet) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(occs, venues)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	return c
}

// mustSolve runs the full pipeline and fails the test on any error.
func mustSolve(t *testing.T, c *catalog.Catalog, tbl *transit.Table, opts schedule.Options) schedule.Result {
	t.Helper()
	res, err := schedule.Solve(c, tbl, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	return res
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustEqualBools asserts exact equality of two selection vectors.
func mustEqualBools(t *testing.T, got, want []bool) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("selection mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// selectionOf converts a list of selected catalog indices into a vector.
func selectionOf(n int, indices ...int) []bool {
	v := make([]bool, n)
	for _, i := range indices {
		v[i] = true
	}

	return v
}

// indicesOf converts a selection vector back into its selected indices.
func indicesOf(selected []bool) []int {
	out := make([]int, 0, len(selected))
	for i, on := range selected {
		if on {
			out = append(out, i)
		}
	}

	return out
}

// -----------------------------------------------------------------------------
// Exhaustive reference solver (cross-checks the engine on small instances)
// -----------------------------------------------------------------------------

// bruteReference enumerates every assignment of a small catalog in the
// engine's branch order (attend-before-skip, index-major) and keeps the first
// one that strictly maximizes attendance and then strictly minimizes transit.
// Evaluation goes through EvaluateAssignment, which shares no state with the
// search, so an agreement between the two is meaningful.
func bruteReference(t *testing.T, c *catalog.Catalog, tbl *transit.Table) ([]bool, int, int) {
	t.Helper()
	n := c.Len()
	if n > bruteMax {
		t.Fatalf("bruteReference: %d occurrences exceed the 2^%d cap", n, bruteMax)
	}

	var (
		best        []bool
		bestCount   = -1
		bestTransit = 0
	)
	for k := 0; k < 1<<n; k++ {
		// Bit n-1-i of k is the decision at index i, 0 = attend, so ascending
		// k walks assignments in the engine's depth-first preorder.
		selected := make([]bool, n)
		for i := 0; i < n; i++ {
			selected[i] = (k>>(n-1-i))&1 == 0
		}
		count, tr, err := schedule.EvaluateAssignment(c, tbl, selected)
		if errors.Is(err, schedule.ErrInfeasibleAssignment) {
			continue
		}
		if err != nil {
			t.Fatalf("bruteReference: EvaluateAssignment: %v", err)
		}
		if count > bestCount || (count == bestCount && tr < bestTransit) {
			best, bestCount, bestTransit = selected, count, tr
		}
	}

	return best, bestCount, bestTransit
}

// -----------------------------------------------------------------------------
// Randomized instance generator (deterministic under a fixed seed)
// -----------------------------------------------------------------------------

// titlePool mixes distinct works with deliberate repeats, so duplicate-title
// exclusion participates in every random instance.
var titlePool = []string{
	"Aftersun", "Decision to Leave", "Triangle of Sadness", "Corsage",
	"Holy Spider", "Aftersun", "Decision to Leave", "EO",
}

// venuePool matches festTable.
var venuePool = []string{"FMH", "CAM", "EVR", "VUE"}

// newRng returns a deterministic generator for one test run.
func newRng(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// randomOccs draws n occurrences over two festival days with 45-150 minute
// runtimes and plenty of overlap, so conflicts, duplicates and cross-day
// transitions all occur.
func randomOccs(rng *rand.Rand, n int) []catalog.Occurrence {
	occs := make([]catalog.Occurrence, 0, n)
	for i := 0; i < n; i++ {
		day := 12 + rng.Intn(2)
		hh := 10 + rng.Intn(10)
		mm := 15 * rng.Intn(4)
		dur := 45 + 15*rng.Intn(8)
		occs = append(occs, occ(
			titlePool[rng.Intn(len(titlePool))],
			venuePool[rng.Intn(len(venuePool))],
			day, hh, mm, dur,
		))
	}

	return occs
}

// slotsInstance builds k independent two-choice slots: per slot, two
// simultaneous hour-long films at FMH and CAM, slots two hours apart, six per
// day. Exactly one film per slot is attendable and every cross-slot pair is
// compatible, so the maximum attendance is k while the search frontier still
// grows as 2^k — ideal for exercising budget expiry without flakiness.
func slotsInstance(t *testing.T, tbl *transit.Table, k int) *catalog.Catalog {
	t.Helper()
	occs := make([]catalog.Occurrence, 0, 2*k)
	for i := 0; i < k; i++ {
		day := 12 + i/6
		hh := 9 + 2*(i%6)
		occs = append(occs,
			occ(fmt.Sprintf("Retrospective %02dA", i), "FMH", day, hh, 0, 60),
			occ(fmt.Sprintf("Retrospective %02dB", i), "CAM", day, hh, 0, 60),
		)
	}

	return mustCatalog(t, occs, tbl)
}
