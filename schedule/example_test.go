// Package schedule_test provides runnable examples for the two-phase solver.
// Each example is runnable via "go test -run Example", showing both code and
// expected output.
package schedule_test

import (
	"fmt"
	"time"

	"github.com/festlab/matinee/catalog"
	"github.com/festlab/matinee/schedule"
	"github.com/festlab/matinee/transit"
)

// ExampleSolve demonstrates planning one festival day: an overlapping pair
// forces a choice, and the afternoon show is reachable from only one of them.
func ExampleSolve() {
	// 1) Pairwise venue minutes; one orientation per pair is enough.
	tbl, err := transit.New(map[string]map[string]int{
		"Filmhouse": {"Cameo": 12},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Three showings: the first two overlap, the third starts 12:30 at
	//    Cameo - reachable after the 10:00 film (ends 12:00, +12 transit),
	//    not after the 11:00 film (ends 12:30).
	day := func(hh, mm int) time.Time {
		return time.Date(2022, time.August, 12, hh, mm, 0, 0, time.UTC)
	}
	cat, err := catalog.New([]catalog.Occurrence{
		{Title: "Aftersun", Venue: "Filmhouse", Start: day(10, 0), Duration: 2 * time.Hour},
		{Title: "Triangle of Sadness", Venue: "Filmhouse", Start: day(11, 0), Duration: 90 * time.Minute},
		{Title: "Decision to Leave", Venue: "Cameo", Start: day(12, 30), Duration: 2 * time.Hour},
	}, tbl)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Solve exactly: maximize attendance, then minimize transit.
	res, err := schedule.Solve(cat, tbl, schedule.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Print the plan.
	fmt.Printf("attended %d of %d\n", res.Attendance, len(res.Selected))
	for _, e := range res.Entries {
		fmt.Printf("%s @ %s\n", e.Occurrence.Title, e.Occurrence.Venue)
	}
	fmt.Printf("total transit %dm\n", res.TransitMinutes)
	// Output:
	// attended 2 of 3
	// Aftersun @ Filmhouse
	// Decision to Leave @ Cameo
	// total transit 12m
}

// ExampleValidateAssignment demonstrates auditing a hand-made plan against
// the same rules the solver enforces.
func ExampleValidateAssignment() {
	tbl, err := transit.New(map[string]map[string]int{
		"Filmhouse": {"Cameo": 12},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start := time.Date(2022, time.August, 12, 18, 0, 0, 0, time.UTC)
	cat, err := catalog.New([]catalog.Occurrence{
		{Title: "Corsage", Venue: "Filmhouse", Start: start, Duration: 100 * time.Minute},
		{Title: "Holy Spider", Venue: "Cameo", Start: start, Duration: 100 * time.Minute},
	}, tbl)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Attending two simultaneous showings is impossible.
	err = schedule.ValidateAssignment(cat, tbl, []bool{true, true})
	fmt.Println(err)
	// Output:
	// schedule: infeasible assignment: occurrences 0 and 1
}
