package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/festlab/matinee/schedule"
)

// startLayout renders event starts in the text report.
const startLayout = "2006-01-02 15:04"

// quietDowntimeMinutes is the longest arrival gap still rendered as "none";
// anything shorter reads as an immediate turnaround.
const quietDowntimeMinutes = 5

// Text writes the human-readable schedule report.
//
// Layout: totals first, then one line per attended screening in start order.
// A same-day transition is annotated at the end of the line it departs from,
// naming the transit to the next venue and the downtime after arriving.
func Text(w io.Writer, res schedule.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "attendance: %d of %d\n", res.Attendance, len(res.Selected))
	fmt.Fprintf(&b, "transit: %dm\n", res.TransitMinutes)
	if !res.Optimal {
		b.WriteString("note: search budget expired; schedule is best-known, not proven optimal\n")
	}

	if len(res.Entries) > 0 {
		b.WriteByte('\n')
	}
	lines := make([]string, 0, len(res.Entries))
	for i, e := range res.Entries {
		if i > 0 && e.SameDay {
			lines[i-1] += transitionNote(res.Entries[i-1], e)
		}
		lines = append(lines, eventLine(e))
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// eventLine renders one attended screening.
func eventLine(e schedule.Entry) string {
	o := e.Occurrence

	return fmt.Sprintf("%s @ %s: %q", o.Start.Format(startLayout), o.Venue, o.Title)
}

// transitionNote renders the hop from prev to cur, in the source's terms:
// staying put is "none", and short gaps are "none" too.
func transitionNote(prev, cur schedule.Entry) string {
	transit := "none"
	if cur.Occurrence.Venue != prev.Occurrence.Venue {
		transit = fmt.Sprintf("%dm to %s", cur.TransitMinutes, cur.Occurrence.Venue)
	}
	downtime := "none"
	if cur.DowntimeMinutes > quietDowntimeMinutes {
		downtime = fmt.Sprintf("%dm", cur.DowntimeMinutes)
	}

	return fmt.Sprintf(" ... (transit: %s, downtime: %s)", transit, downtime)
}

// jsonReport is the stable wire shape of a solved schedule.
type jsonReport struct {
	Attendance     int         `json:"attendance"`
	Events         int         `json:"events"`
	TransitMinutes int         `json:"transit_minutes"`
	Optimal        bool        `json:"optimal"`
	Nodes          int64       `json:"nodes"`
	Entries        []jsonEntry `json:"entries"`
}

// jsonEntry is one attended screening on the wire.
type jsonEntry struct {
	Index           int    `json:"index"`
	Title           string `json:"title"`
	Venue           string `json:"venue"`
	Start           string `json:"start"`
	Minutes         int    `json:"minutes"`
	SameDay         bool   `json:"same_day"`
	TransitMinutes  int    `json:"transit_minutes"`
	DowntimeMinutes int    `json:"downtime_minutes"`
}

// JSON writes the machine-readable schedule report, indented for diffing.
// Starts are RFC 3339 in the occurrence's own timezone.
func JSON(w io.Writer, res schedule.Result) error {
	rep := jsonReport{
		Attendance:     res.Attendance,
		Events:         len(res.Selected),
		TransitMinutes: res.TransitMinutes,
		Optimal:        res.Optimal,
		Nodes:          res.Nodes,
		Entries:        make([]jsonEntry, 0, len(res.Entries)),
	}
	for _, e := range res.Entries {
		rep.Entries = append(rep.Entries, jsonEntry{
			Index:           e.Index,
			Title:           e.Occurrence.Title,
			Venue:           e.Occurrence.Venue,
			Start:           e.Occurrence.Start.Format(time.RFC3339),
			Minutes:         int(e.Occurrence.Duration / time.Minute),
			SameDay:         e.SameDay,
			TransitMinutes:  e.TransitMinutes,
			DowntimeMinutes: e.DowntimeMinutes,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(&rep)
}
