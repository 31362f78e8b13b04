// Package program — ICS feed merging.
//
// Each VEVENT contributes occurrences: SUMMARY becomes the title, LOCATION
// (via venue_aliases) the venue, DTSTART/DTEND the start and duration.
// RRULE events expand inside the program window with EXDATE exceptions
// removed; non-recurring events are window-filtered only when a window is
// declared.

package program

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/festlab/matinee/catalog"
)

// mergeFeed reads one feed and converts its events into occurrences.
func mergeFeed(src SourceSpec, dir string, aliases map[string]string, loc *time.Location, window *timeWindow) ([]catalog.Occurrence, error) {
	path := src.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadFeed, src.Path, err)
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadFeed, src.Path, err)
	}

	occs := make([]catalog.Occurrence, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		merged, verr := feedOccurrences(ve, aliases, loc, window)
		if verr != nil {
			return nil, fmt.Errorf("program: feed %s: %w", src.Path, verr)
		}
		occs = append(occs, merged...)
	}

	return occs, nil
}

// feedOccurrences converts one VEVENT into zero or more occurrences.
func feedOccurrences(ve *ical.VEvent, aliases map[string]string, loc *time.Location, window *timeWindow) ([]catalog.Occurrence, error) {
	title := propValue(ve, ical.ComponentPropertySummary)
	venue := propValue(ve, ical.ComponentPropertyLocation)
	if alias, ok := aliases[venue]; ok {
		venue = alias
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("event %q: missing DTSTART", title)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return nil, fmt.Errorf("event %q: missing DTEND", title)
	}
	dur := end.Sub(start)
	start = start.In(loc)

	raw := propValue(ve, ical.ComponentPropertyRrule)
	if raw == "" {
		if window != nil && !window.contains(start) {
			return nil, nil
		}

		return []catalog.Occurrence{{Title: title, Venue: venue, Start: start, Duration: dur}}, nil
	}

	// Recurring: expansion needs explicit bounds.
	if window == nil {
		return nil, fmt.Errorf("%w: event %q", ErrUnboundedRecurrence, title)
	}
	r, err := rrule.StrToRRule(raw)
	if err != nil {
		return nil, fmt.Errorf("event %q: bad RRULE %q: %v", title, raw, err)
	}
	r.DTStart(start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range exDates(ve, loc) {
		set.ExDate(ex)
	}

	out := make([]catalog.Occurrence, 0, 8)
	for _, s := range set.Between(window.from, window.to, true) {
		if s = s.In(loc); !window.contains(s) {
			continue
		}
		out = append(out, catalog.Occurrence{Title: title, Venue: venue, Start: s, Duration: dur})
	}

	return out, nil
}

// propValue reads a component property, empty when absent.
func propValue(ve *ical.VEvent, name ical.ComponentProperty) string {
	if p := ve.GetProperty(name); p != nil {
		return p.Value
	}

	return ""
}

// exDates collects EXDATE values in the basic UTC/date-time/date forms.
func exDates(ve *ical.VEvent, loc *time.Location) []time.Time {
	var out []time.Time
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, perr := parseICSStamp(part, loc); perr == nil {
				out = append(out, t)
			}
		}
	}

	return out
}

// parseICSStamp handles the 20060102T150405Z, 20060102T150405 and 20060102
// stamp forms.
func parseICSStamp(v string, loc *time.Location) (time.Time, error) {
	switch {
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, loc)
	default:
		return time.ParseInLocation("20060102", v, loc)
	}
}
