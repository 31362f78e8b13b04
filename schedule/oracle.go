package schedule

import (
	"fmt"
	"time"

	"github.com/festlab/matinee/catalog"
	"github.com/festlab/matinee/transit"
)

// Oracle is the precomputed Pairwise relation over a catalog and a transit
// table. Every ordered pair (i, j), i < j, is evaluated once at construction;
// lookups afterwards are O(1) reads from dense buffers, safe for concurrent
// readers.
type Oracle struct {
	n    int
	feas []bool // feas[i*n+j]: both attendable
	cost []int  // cost[i*n+j]: whole-minute travel i→j
	day  []bool // day[i*n+j]: same calendar date
}

// NewOracle evaluates the pairwise rule for every index pair of the catalog.
// The catalog's stable start-order guarantees occ(i) starts no later than
// occ(j) for i < j, so the ordered-pair rule applies directly.
//
// Errors: ErrNilCatalog, ErrNilTable; transit lookup failures are wrapped
// (possible when the catalog was validated against a different table).
//
// Complexity: O(n²) time and space.
func NewOracle(c *catalog.Catalog, tbl *transit.Table) (*Oracle, error) {
	if c == nil {
		return nil, ErrNilCatalog
	}
	if tbl == nil {
		return nil, ErrNilTable
	}

	n := c.Len()
	o := &Oracle{
		n:    n,
		feas: make([]bool, n*n),
		cost: make([]int, n*n),
		day:  make([]bool, n*n),
	}

	var (
		i, j int
		p, q catalog.Occurrence
		m    int
		err  error
	)
	for i = 0; i < n; i++ {
		p = c.At(i)
		for j = i + 1; j < n; j++ {
			q = c.At(j)
			m, err = tbl.Minutes(p.Venue, q.Venue)
			if err != nil {
				return nil, fmt.Errorf("schedule: pair (%d,%d): %w", i, j, err)
			}
			o.cost[i*n+j] = m
			o.feas[i*n+j] = pairFeasible(p, q, m)
			o.day[i*n+j] = sameCalendarDay(p.Start, q.Start)
		}
	}

	return o, nil
}

// pairFeasible applies the ordered-pair rule for p starting no later than q:
// q may start only at or after p's end plus travel, and the titles must
// differ (equal titles are alternative showings of one work).
func pairFeasible(p, q catalog.Occurrence, transitMinutes int) bool {
	if p.Title == q.Title {
		return false
	}
	earliest := p.End().Add(time.Duration(transitMinutes) * time.Minute)

	return !q.Start.Before(earliest)
}

// sameCalendarDay compares wall-clock dates, each instant in its own location.
func sameCalendarDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()

	return ya == yb && ma == mb && da == db
}

// Len reports the number of occurrences the oracle covers.
func (o *Oracle) Len() int { return o.n }

// Feasible reports whether occurrences i and j may both be attended.
// Requires 0 ≤ i < j < Len(), as for every Pairwise implementation.
func (o *Oracle) Feasible(i, j int) bool { return o.feas[i*o.n+j] }

// TransitMinutes is the travel cost charged when j directly follows i.
func (o *Oracle) TransitMinutes(i, j int) int { return o.cost[i*o.n+j] }

// SameDay reports whether i and j start on the same calendar date.
func (o *Oracle) SameDay(i, j int) bool { return o.day[i*o.n+j] }
