package transit

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DefaultSameVenueMinutes is the repositioning cost charged between two
// events at the same venue when no override is configured.
const DefaultSameVenueMinutes = 5

// Sentinel errors for transit table construction and lookups.
var (
	// ErrInfeasibleTable indicates the supplied cost data cannot form a valid
	// table: a missing venue pair, asymmetric mirror entries, negative minutes,
	// a self-pair entry, or an empty venue name.
	ErrInfeasibleTable = errors.New("transit: infeasible transit table")

	// ErrUnknownVenue indicates a lookup referenced a venue absent from the table.
	ErrUnknownVenue = errors.New("transit: unknown venue")
)

// Option configures table construction.
type Option func(*Options)

// Options stores the effective construction configuration.
type Options struct {
	// SameVenueMinutes is the fixed cost for consecutive events at one venue.
	SameVenueMinutes int

	// Venues lists venue names that must be covered even if they never appear
	// as a map key (useful for single-venue programmes with no pair entries).
	Venues []string
}

// WithSameVenueMinutes overrides the same-venue repositioning cost.
// The value is validated in New; negative minutes yield ErrInfeasibleTable.
func WithSameVenueMinutes(minutes int) Option {
	return func(o *Options) { o.SameVenueMinutes = minutes }
}

// WithVenues declares additional venue names the table must cover.
// Names already present in the cost map may be repeated harmlessly.
func WithVenues(names ...string) Option {
	return func(o *Options) { o.Venues = append(o.Venues, names...) }
}

// DefaultOptions returns the documented construction defaults.
func DefaultOptions() Options {
	return Options{SameVenueMinutes: DefaultSameVenueMinutes}
}

// Table is an immutable symmetric lookup of whole-minute travel costs between
// venues. The zero value is unusable; construct via New.
type Table struct {
	names []string       // venue names, ascending
	index map[string]int // name → dense index
	w     []int          // dense minutes buffer: w[i*n+j]
	same  int            // same-venue repositioning minutes
}

// New builds a Table from nested minute costs, minutes[a][b] being the travel
// time from venue a to venue b. Each unordered pair may be listed in either
// orientation (or both, if the values agree). The venue set is the union of
// all map keys and any WithVenues declarations; every unordered pair of that
// set must be covered.
//
// Errors: ErrInfeasibleTable (wrapped with pair context) on any defect.
//
// Complexity: O(n² log n) for n venues (sorted scan over all pairs).
func New(minutes map[string]map[string]int, opts ...Option) (*Table, error) {
	// Stage 1: resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.SameVenueMinutes < 0 {
		return nil, fmt.Errorf("%w: same-venue minutes %d is negative", ErrInfeasibleTable, o.SameVenueMinutes)
	}

	// Stage 2: collect the venue set (map keys, nested keys, declared names).
	set := make(map[string]struct{}, len(minutes)+len(o.Venues))
	for a, row := range minutes {
		set[a] = struct{}{}
		for b := range row {
			set[b] = struct{}{}
		}
	}
	for _, v := range o.Venues {
		set[v] = struct{}{}
	}
	if _, ok := set[""]; ok {
		return nil, fmt.Errorf("%w: empty venue name", ErrInfeasibleTable)
	}

	// Stable name order makes both lookups and error reporting deterministic.
	names := make([]string, 0, len(set))
	for v := range set {
		names = append(names, v)
	}
	sort.Strings(names)

	n := len(names)
	index := make(map[string]int, n)
	for i, v := range names {
		index[v] = i
	}

	// Stage 3: reject self pairs (the constant is configured, not tabulated).
	for _, v := range names {
		if _, ok := minutes[v][v]; ok {
			return nil, fmt.Errorf("%w: self pair %s–%s (use WithSameVenueMinutes)", ErrInfeasibleTable, v, v)
		}
	}

	// Stage 4: fill the dense buffer pair by pair with symmetry enforcement.
	t := &Table{names: names, index: index, w: make([]int, n*n), same: o.SameVenueMinutes}
	var (
		i, j     int
		va, vb   string
		ab, ba   int
		okA, okB bool
		cost     int
	)
	for i = 0; i < n; i++ {
		t.w[i*n+i] = o.SameVenueMinutes
		for j = i + 1; j < n; j++ {
			va, vb = names[i], names[j]
			ab, okA = lookup(minutes, va, vb)
			ba, okB = lookup(minutes, vb, va)
			switch {
			case !okA && !okB:
				return nil, fmt.Errorf("%w: missing pair %s–%s", ErrInfeasibleTable, va, vb)
			case okA && okB && ab != ba:
				return nil, fmt.Errorf("%w: asymmetric pair %s–%s (%d vs %d)", ErrInfeasibleTable, va, vb, ab, ba)
			case okA:
				cost = ab
			default:
				cost = ba
			}
			if cost < 0 {
				return nil, fmt.Errorf("%w: negative minutes %d for pair %s–%s", ErrInfeasibleTable, cost, va, vb)
			}
			t.w[i*n+j] = cost
			t.w[j*n+i] = cost
		}
	}

	return t, nil
}

// lookup reads minutes[a][b] tolerating missing rows.
func lookup(minutes map[string]map[string]int, a, b string) (int, bool) {
	row, ok := minutes[a]
	if !ok {
		return 0, false
	}
	m, ok := row[b]

	return m, ok
}

// Len reports the number of venues the table covers.
func (t *Table) Len() int { return len(t.names) }

// Venues returns the covered venue names in ascending order.
// The returned slice is a copy; mutating it does not affect the table.
func (t *Table) Venues() []string { return append([]string(nil), t.names...) }

// Has reports whether the table covers the named venue.
func (t *Table) Has(venue string) bool {
	_, ok := t.index[venue]

	return ok
}

// SameVenueMinutes reports the fixed same-venue repositioning cost.
func (t *Table) SameVenueMinutes() int { return t.same }

// Minutes returns the travel cost between two venues. Equal venue names yield
// the same-venue constant. Lookups are symmetric: Minutes(a,b) == Minutes(b,a).
//
// Errors: ErrUnknownVenue (wrapped with the offending name).
func (t *Table) Minutes(a, b string) (int, error) {
	i, ok := t.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVenue, a)
	}
	j, ok := t.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVenue, b)
	}

	return t.w[i*len(t.names)+j], nil
}

// Duration returns Minutes(a, b) as a time.Duration, convenient for clock
// arithmetic against event timestamps.
func (t *Table) Duration(a, b string) (time.Duration, error) {
	m, err := t.Minutes(a, b)
	if err != nil {
		return 0, err
	}

	return time.Duration(m) * time.Minute, nil
}
