// Package matinee plans festival attendance: from a programme of time-bound
// screenings at fixed venues it selects the largest conflict-free subset an
// attendee can physically reach, and among all subsets of that size, the one
// spending the least time in transit between venues.
//
// The module is organized as focused subpackages:
//
//	catalog/  — immutable start-ordered occurrence collection; catalog indices
//	            are the identity every other package speaks in
//	transit/  — symmetric venue-pair travel minutes with a configurable
//	            same-venue turnaround constant
//	schedule/ — pairwise feasibility oracle and the exact two-phase
//	            branch-and-bound search (maximize attendance, then minimize
//	            transit), with budgets, progress streaming and optional
//	            parallel root splitting
//	program/  — YAML programme documents, ICS feed merging and recurrence
//	            expansion
//	render/   — text and JSON schedule reports
//	cmd/      — the matinee command-line planner
//
// Quick start:
//
//	p, err := program.Load("programme.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := schedule.Solve(p.Catalog, p.Table, schedule.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := render.Text(os.Stdout, res); err != nil {
//	    log.Fatal(err)
//	}
//
// Each package's doc.go states its contracts, sentinel errors and complexity
// notes; start with schedule/doc.go for the search semantics.
package matinee
