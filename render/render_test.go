package render_test

// Focus:
//  1. Text layout: totals header, blank separator, one line per screening.
//  2. Same-day transition annotations on the departing line.
//  3. "none" rendering for same-venue hops and short gaps.
//  4. The non-optimal note.
//  5. JSON shape stability, including the empty report.
//  6. End-to-end agreement with a real solve.

import (
	"strings"
	"testing"
	"time"

	"github.com/festlab/matinee/catalog"
	"github.com/festlab/matinee/render"
	"github.com/festlab/matinee/schedule"
	"github.com/festlab/matinee/transit"
)

func ts(day, hh, mm int) time.Time {
	return time.Date(2022, time.August, day, hh, mm, 0, 0, time.UTC)
}

func entry(idx int, title, venue string, start time.Time, minutes int, sameDay bool, transitMin, downMin int) schedule.Entry {
	return schedule.Entry{
		Index: idx,
		Occurrence: catalog.Occurrence{
			Title:    title,
			Venue:    venue,
			Start:    start,
			Duration: time.Duration(minutes) * time.Minute,
		},
		SameDay:         sameDay,
		TransitMinutes:  transitMin,
		DowntimeMinutes: downMin,
	}
}

func renderText(t *testing.T, res schedule.Result) string {
	t.Helper()
	var b strings.Builder
	if err := render.Text(&b, res); err != nil {
		t.Fatalf("Text: unexpected error: %v", err)
	}

	return b.String()
}

func renderJSON(t *testing.T, res schedule.Result) string {
	t.Helper()
	var b strings.Builder
	if err := render.JSON(&b, res); err != nil {
		t.Fatalf("JSON: unexpected error: %v", err)
	}

	return b.String()
}

// ---------------------------------------------------------------- text ----

func TestText_AnnotatesSameDayTransitions(t *testing.T) {
	res := schedule.Result{
		Selection: schedule.Selection{
			Selected:       []bool{true, true, false, true, false},
			Attendance:     3,
			TransitMinutes: 30,
			Optimal:        true,
			Nodes:          42,
		},
		Entries: []schedule.Entry{
			entry(0, "The Territory", "VUE", ts(13, 14, 0), 85, false, 0, 0),
			entry(1, "The Plains", "FLH", ts(13, 18, 30), 180, true, 30, 155),
			entry(3, "Axiom", "VUE", ts(14, 17, 30), 112, false, 0, 0),
		},
	}

	want := `attendance: 3 of 5
transit: 30m

2022-08-13 14:00 @ VUE: "The Territory" ... (transit: 30m to FLH, downtime: 155m)
2022-08-13 18:30 @ FLH: "The Plains"
2022-08-14 17:30 @ VUE: "Axiom"
`
	if got := renderText(t, res); got != want {
		t.Fatalf("Text mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestText_SameVenueAndShortGapsRenderNone(t *testing.T) {
	// Same venue, gap of 10 minutes: transit charges the turnaround constant,
	// downtime lands exactly on the quiet threshold. Both render as "none".
	res := schedule.Result{
		Selection: schedule.Selection{
			Selected:       []bool{true, true},
			Attendance:     2,
			TransitMinutes: 5,
			Optimal:        true,
		},
		Entries: []schedule.Entry{
			entry(0, "Shadow", "VUE", ts(16, 18, 30), 56, false, 0, 0),
			entry(1, "The Forgiven", "VUE", ts(16, 19, 36), 117, true, 5, 5),
		},
	}

	want := `attendance: 2 of 2
transit: 5m

2022-08-16 18:30 @ VUE: "Shadow" ... (transit: none, downtime: none)
2022-08-16 19:36 @ VUE: "The Forgiven"
`
	if got := renderText(t, res); got != want {
		t.Fatalf("Text mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestText_NonOptimalNote(t *testing.T) {
	res := schedule.Result{
		Selection: schedule.Selection{
			Selected:   make([]bool, 20),
			Attendance: 1,
			Optimal:    false,
			Nodes:      100,
		},
		Entries: []schedule.Entry{
			entry(0, "The Territory", "VUE", ts(13, 14, 0), 85, false, 0, 0),
		},
	}
	res.Selected[0] = true

	want := `attendance: 1 of 20
transit: 0m
note: search budget expired; schedule is best-known, not proven optimal

2022-08-13 14:00 @ VUE: "The Territory"
`
	if got := renderText(t, res); got != want {
		t.Fatalf("Text mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestText_EmptyResult(t *testing.T) {
	res := schedule.Result{
		Selection: schedule.Selection{Selected: []bool{}, Optimal: true},
	}

	want := "attendance: 0 of 0\ntransit: 0m\n"
	if got := renderText(t, res); got != want {
		t.Fatalf("Text mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

// ---------------------------------------------------------------- json ----

func TestJSON_StableShape(t *testing.T) {
	res := schedule.Result{
		Selection: schedule.Selection{
			Selected:       []bool{false, true, false},
			Attendance:     1,
			TransitMinutes: 0,
			Optimal:        true,
			Nodes:          7,
		},
		Entries: []schedule.Entry{
			entry(1, "Axiom", "VUE", ts(14, 17, 30), 112, false, 0, 0),
		},
	}

	want := `{
  "attendance": 1,
  "events": 3,
  "transit_minutes": 0,
  "optimal": true,
  "nodes": 7,
  "entries": [
    {
      "index": 1,
      "title": "Axiom",
      "venue": "VUE",
      "start": "2022-08-14T17:30:00Z",
      "minutes": 112,
      "same_day": false,
      "transit_minutes": 0,
      "downtime_minutes": 0
    }
  ]
}
`
	if got := renderJSON(t, res); got != want {
		t.Fatalf("JSON mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSON_EmptyEntries(t *testing.T) {
	res := schedule.Result{
		Selection: schedule.Selection{Selected: []bool{}, Optimal: true},
	}

	want := `{
  "attendance": 0,
  "events": 0,
  "transit_minutes": 0,
  "optimal": true,
  "nodes": 0,
  "entries": []
}
`
	if got := renderJSON(t, res); got != want {
		t.Fatalf("JSON mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// ---------------------------------------------------------- end to end ----

func TestText_RendersSolvedSchedule(t *testing.T) {
	tbl, err := transit.New(map[string]map[string]int{"FLH": {"CAM": 12}})
	if err != nil {
		t.Fatalf("transit.New: %v", err)
	}
	c, err := catalog.New([]catalog.Occurrence{
		{Title: "Aftersun", Venue: "FLH", Start: ts(15, 18, 0), Duration: 101 * time.Minute},
		{Title: "Decision to Leave", Venue: "CAM", Start: ts(15, 20, 0), Duration: 138 * time.Minute},
	}, tbl)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	res, err := schedule.Solve(c, tbl, schedule.DefaultOptions())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := `attendance: 2 of 2
transit: 12m

2022-08-15 18:00 @ FLH: "Aftersun" ... (transit: 12m to CAM, downtime: 7m)
2022-08-15 20:00 @ CAM: "Decision to Leave"
`
	if got := renderText(t, res); got != want {
		t.Fatalf("Text mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
