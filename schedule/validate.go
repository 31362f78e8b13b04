// Package schedule — independent assignment auditing.
//
// EvaluateAssignment re-derives everything from the catalog and the transit
// table directly, sharing no precomputed state with the search. Auditing a
// solver result through it therefore cross-checks the oracle and the engine
// rather than echoing them.

package schedule

import (
	"fmt"

	"github.com/festlab/matinee/catalog"
	"github.com/festlab/matinee/transit"
)

// EvaluateAssignment audits a selection vector against a catalog and table
// from first principles and returns its attendance and attributed transit.
//
// Errors: ErrNilCatalog, ErrNilTable, ErrAssignmentShape on a length
// mismatch, ErrInfeasibleAssignment naming the first violating pair, and
// wrapped transit lookup failures for venues the table does not cover.
//
// Complexity: O(k²) pair checks for k selected occurrences.
func EvaluateAssignment(c *catalog.Catalog, tbl *transit.Table, selected []bool) (attendance, transitMinutes int, err error) {
	// Stage 1 - input validation.
	if c == nil {
		return 0, 0, ErrNilCatalog
	}
	if tbl == nil {
		return 0, 0, ErrNilTable
	}
	if len(selected) != c.Len() {
		return 0, 0, fmt.Errorf("%w: %d decisions for %d occurrences",
			ErrAssignmentShape, len(selected), c.Len())
	}

	// Stage 2 - gather the selected indices in catalog order.
	chosen := make([]int, 0, len(selected))
	for i, on := range selected {
		if on {
			chosen = append(chosen, i)
		}
	}

	// Stage 3 - re-derive feasibility for every selected pair, not only
	// consecutive ones.
	for a := 0; a < len(chosen); a++ {
		p := c.At(chosen[a])
		for b := a + 1; b < len(chosen); b++ {
			q := c.At(chosen[b])
			m, lerr := tbl.Minutes(p.Venue, q.Venue)
			if lerr != nil {
				return 0, 0, fmt.Errorf("schedule: pair (%d,%d): %w", chosen[a], chosen[b], lerr)
			}
			if !pairFeasible(p, q, m) {
				return 0, 0, fmt.Errorf("%w: occurrences %d and %d", ErrInfeasibleAssignment, chosen[a], chosen[b])
			}
		}
	}

	// Stage 4 - accumulate attributed transit over same-day consecutive pairs.
	total := 0
	for a := 1; a < len(chosen); a++ {
		p, q := c.At(chosen[a-1]), c.At(chosen[a])
		if !sameCalendarDay(p.Start, q.Start) {
			continue
		}
		m, _ := tbl.Minutes(p.Venue, q.Venue) // covered by Stage 3
		total += m
	}

	return len(chosen), total, nil
}

// ValidateAssignment reports whether the selection vector is feasible,
// discarding the evaluated totals.
func ValidateAssignment(c *catalog.Catalog, tbl *transit.Table, selected []bool) error {
	_, _, err := EvaluateAssignment(c, tbl, selected)

	return err
}
