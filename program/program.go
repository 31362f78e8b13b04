package program

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/festlab/matinee/catalog"
	"github.com/festlab/matinee/transit"
)

// Sentinel errors for program ingestion.
var (
	// ErrBadProgram indicates an unreadable or structurally invalid document.
	ErrBadProgram = errors.New("program: invalid program document")

	// ErrBadTimezone indicates an unknown IANA timezone name.
	ErrBadTimezone = errors.New("program: unknown timezone")

	// ErrBadTimestamp indicates an event start that fits no accepted layout.
	ErrBadTimestamp = errors.New("program: unparseable start time")

	// ErrBadWindow indicates a window whose bounds cannot be parsed or are
	// reversed.
	ErrBadWindow = errors.New("program: invalid window")

	// ErrBadFeed indicates an ICS feed that cannot be read or parsed.
	ErrBadFeed = errors.New("program: invalid ics feed")

	// ErrUnboundedRecurrence indicates a recurring feed event encountered
	// without a program window to expand it into.
	ErrUnboundedRecurrence = errors.New("program: recurring event needs a window")
)

// Accepted start layouts: festival-local wall clock, then RFC 3339.
const (
	startLayout = "2006-01-02 15:04"
	dateLayout  = "2006-01-02"
)

// File is the raw YAML document shape.
type File struct {
	// Timezone is the IANA zone all wall-clock times belong to; empty = UTC.
	Timezone string `yaml:"timezone"`

	// SameVenueMinutes overrides the back-to-back turnaround at one venue.
	// Unset keeps the transit package default.
	SameVenueMinutes *int `yaml:"same_venue_minutes"`

	// Transit holds pairwise minutes; one orientation per pair suffices.
	Transit map[string]map[string]int `yaml:"transit"`

	// VenueAliases translates ICS LOCATION strings into venue codes.
	VenueAliases map[string]string `yaml:"venue_aliases"`

	// Window bounds recurrence expansion and feed filtering (inclusive dates).
	Window *WindowSpec `yaml:"window"`

	// Events lists explicit occurrences.
	Events []EventSpec `yaml:"events"`

	// ICS lists feeds to merge.
	ICS []SourceSpec `yaml:"ics"`
}

// EventSpec is one explicit occurrence in the document.
type EventSpec struct {
	Title   string `yaml:"title"`
	Venue   string `yaml:"venue"`
	Start   string `yaml:"start"`
	Minutes int    `yaml:"minutes"`
}

// SourceSpec names one ICS feed; relative paths resolve against the
// program document's directory.
type SourceSpec struct {
	Path string `yaml:"path"`
}

// WindowSpec bounds the festival fortnight with inclusive dates.
type WindowSpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Program is a resolved document, ready for the solver.
type Program struct {
	// Location is the festival's display timezone.
	Location *time.Location

	// Table holds the validated venue transit costs.
	Table *transit.Table

	// Catalog holds all occurrences, start-ordered.
	Catalog *catalog.Catalog
}

// timeWindow is a resolved half-open expansion range [from, to).
type timeWindow struct {
	from, to time.Time
}

// Load reads and resolves a program document from disk. Relative ICS feed
// paths resolve against the document's directory.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadProgram, err)
	}

	return Parse(data, filepath.Dir(path))
}

// Parse resolves a program document given the directory its feed paths are
// relative to.
//
// Complexity: O(n log n) over merged occurrences (catalog sort), plus feed
// expansion.
func Parse(data []byte, dir string) (*Program, error) {
	// Stage 1 - decode the document.
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadProgram, err)
	}

	// Stage 2 - resolve the timezone.
	loc := time.UTC
	if f.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(f.Timezone); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadTimezone, f.Timezone)
		}
	}

	// Stage 3 - build the transit table.
	var topts []transit.Option
	if f.SameVenueMinutes != nil {
		topts = append(topts, transit.WithSameVenueMinutes(*f.SameVenueMinutes))
	}
	tbl, err := transit.New(f.Transit, topts...)
	if err != nil {
		return nil, err
	}

	// Stage 4 - resolve the window, if declared.
	window, err := resolveWindow(f.Window, loc)
	if err != nil {
		return nil, err
	}

	// Stage 5 - collect explicit occurrences.
	occs := make([]catalog.Occurrence, 0, len(f.Events))
	for i, ev := range f.Events {
		start, perr := parseStart(ev.Start, loc)
		if perr != nil {
			return nil, fmt.Errorf("%w: event %d (%q): %q", ErrBadTimestamp, i, ev.Title, ev.Start)
		}
		occs = append(occs, catalog.Occurrence{
			Title:    ev.Title,
			Venue:    ev.Venue,
			Start:    start,
			Duration: time.Duration(ev.Minutes) * time.Minute,
		})
	}

	// Stage 6 - merge ICS feeds.
	for _, src := range f.ICS {
		merged, ferr := mergeFeed(src, dir, f.VenueAliases, loc, window)
		if ferr != nil {
			return nil, ferr
		}
		occs = append(occs, merged...)
	}

	// Stage 7 - validate and order the catalog.
	cat, err := catalog.New(occs, tbl)
	if err != nil {
		return nil, err
	}

	return &Program{Location: loc, Table: tbl, Catalog: cat}, nil
}

// parseStart accepts festival wall-clock or RFC 3339 timestamps.
func parseStart(v string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(startLayout, v, loc); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, v)
}

// resolveWindow turns inclusive document dates into a half-open range
// [from 00:00, day after to 00:00) in the program timezone.
func resolveWindow(w *WindowSpec, loc *time.Location) (*timeWindow, error) {
	if w == nil {
		return nil, nil
	}
	from, err := time.ParseInLocation(dateLayout, w.From, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: from %q", ErrBadWindow, w.From)
	}
	to, err := time.ParseInLocation(dateLayout, w.To, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: to %q", ErrBadWindow, w.To)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %q after %q", ErrBadWindow, w.From, w.To)
	}

	return &timeWindow{from: from, to: to.AddDate(0, 0, 1)}, nil
}

// contains reports whether an instant falls inside the window.
func (w *timeWindow) contains(t time.Time) bool {
	return !t.Before(w.from) && t.Before(w.to)
}
