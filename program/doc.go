// Package program loads a festival program - venues, transit minutes and
// event occurrences - from a YAML document, optionally merging ICS feeds,
// and resolves it into the catalog and transit table the solver consumes.
//
// # Overview
//
// A program file names a timezone, the pairwise venue transit minutes (one
// orientation per pair suffices), explicit event occurrences, and zero or
// more ICS feeds to merge:
//
//	timezone: Europe/London
//	transit:
//	  FLH: {CAM: 10, EVR: 20, STA: 15, VUE: 30}
//	  CAM: {EVR: 20, STA: 20, VUE: 30}
//	  EVR: {STA: 15, VUE: 10}
//	  STA: {VUE: 15}
//	events:
//	  - title: After Yang
//	    venue: VUE
//	    start: 2022-08-20 19:00
//	    minutes: 96
//	ics:
//	  - path: feeds/retrospective.ics
//
// Event starts use "2006-01-02 15:04" in the program timezone, or RFC 3339
// with an explicit offset. ICS feeds contribute one occurrence per VEVENT;
// recurring events (RRULE, with EXDATE exceptions) are expanded inside the
// program window, which must be declared whenever a feed recurs:
//
//	window: {from: 2022-08-12, to: 2022-08-21}
//
// The optional venue_aliases map translates feed LOCATION strings into
// venue codes known to the transit table.
//
// # Errors (sentinel)
//
//   - ErrBadProgram: unreadable or structurally invalid YAML.
//   - ErrBadTimezone, ErrBadTimestamp, ErrBadWindow: unparseable fields.
//   - ErrBadFeed: an ICS feed that cannot be read or parsed.
//   - ErrUnboundedRecurrence: a recurring feed event without a window.
//
// Venue and occurrence semantics are validated downstream: transit.New
// rejects malformed tables, catalog.New rejects malformed occurrences.
//
// # Example usage
//
//	prog, err := program.Load("eiff2022.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := schedule.Solve(prog.Catalog, prog.Table, schedule.DefaultOptions())
package program
