// Package render turns solved schedules into reports.
//
// # Overview
//
// Two writers cover the common consumers:
//
//   - Text — a compact human-readable listing: header totals, then one line
//     per attended screening with same-day transition annotations (transit
//     to the next venue, downtime on arrival) appended to the preceding
//     line. Same-venue hops and gaps of five minutes or less render as
//     "none".
//   - JSON — a machine-readable report with stable snake_case keys, suitable
//     for piping into other tooling.
//
// Both writers are pure functions of schedule.Result; neither mutates it.
//
// # Example usage
//
//	res, err := schedule.Solve(cat, tbl, schedule.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := render.Text(os.Stdout, res); err != nil {
//	    log.Fatal(err)
//	}
package render
