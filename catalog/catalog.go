package catalog

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Sentinel errors for catalog construction.
var (
	// ErrMalformedEvent indicates an occurrence with a non-positive duration,
	// an empty title, or a venue the supplied VenueSet does not cover.
	ErrMalformedEvent = errors.New("catalog: malformed event")

	// ErrNilVenueSet indicates New was called without a venue set.
	ErrNilVenueSet = errors.New("catalog: nil venue set")
)

// VenueSet answers whether a venue identifier is known. *transit.Table
// satisfies it; tests may supply lighter fakes.
type VenueSet interface {
	Has(venue string) bool
}

// Occurrence is one scheduled showing of a titled work at a venue.
// The end instant is derived: End() == Start.Add(Duration).
type Occurrence struct {
	// Title identifies the work; equal titles denote the same work.
	Title string

	// Venue identifies where the showing happens; must be covered by the
	// transit table the schedule run uses.
	Venue string

	// Start is the absolute start instant.
	Start time.Time

	// Duration is the running time; strictly positive.
	Duration time.Duration
}

// End returns the derived end instant, Start + Duration.
func (o Occurrence) End() time.Time { return o.Start.Add(o.Duration) }

// Catalog is an immutable occurrence collection ordered ascending by Start.
// Indices into the sorted order are the occurrence identity used by the
// optimizer, its assignments, and its reports.
type Catalog struct {
	occs []Occurrence
}

// New copies, validates, and stably sorts occurrences by start time.
// Occurrences sharing a start instant keep their relative input order.
//
// Errors: ErrNilVenueSet; ErrMalformedEvent wrapped with the offending
// occurrence's title and start.
//
// Complexity: O(n log n).
func New(occs []Occurrence, venues VenueSet) (*Catalog, error) {
	if venues == nil {
		return nil, ErrNilVenueSet
	}

	// Validate in input order so the first defect reported is stable.
	for _, o := range occs {
		if o.Title == "" {
			return nil, fmt.Errorf("%w: empty title at %s", ErrMalformedEvent, o.Start.Format(timeLayout))
		}
		if o.Duration <= 0 {
			return nil, fmt.Errorf("%w: %q at %s: non-positive duration %s",
				ErrMalformedEvent, o.Title, o.Start.Format(timeLayout), o.Duration)
		}
		if !venues.Has(o.Venue) {
			return nil, fmt.Errorf("%w: %q at %s: unknown venue %q",
				ErrMalformedEvent, o.Title, o.Start.Format(timeLayout), o.Venue)
		}
	}

	sorted := append([]Occurrence(nil), occs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	return &Catalog{occs: sorted}, nil
}

// timeLayout renders occurrence instants in error messages.
const timeLayout = "2006-01-02 15:04"

// Len reports the number of occurrences.
func (c *Catalog) Len() int { return len(c.occs) }

// At returns the occurrence at sorted index i. The valid range is
// 0 ≤ i < Len(); out-of-range indices panic like any slice access.
func (c *Catalog) At(i int) Occurrence { return c.occs[i] }

// All returns a copy of the sorted occurrence list.
func (c *Catalog) All() []Occurrence { return append([]Occurrence(nil), c.occs...) }
