package schedule

import (
	"errors"
	"time"

	"github.com/festlab/matinee/catalog"
)

// Sentinel errors for solver inputs and assignment auditing.
var (
	// ErrNilCatalog indicates Solve was called without a catalog.
	ErrNilCatalog = errors.New("schedule: nil catalog")

	// ErrNilTable indicates Solve was called without a transit table.
	ErrNilTable = errors.New("schedule: nil transit table")

	// ErrNilRelation indicates Search was called without a pairwise relation.
	ErrNilRelation = errors.New("schedule: nil pairwise relation")

	// ErrInvalidOptions indicates a negative budget or worker count.
	ErrInvalidOptions = errors.New("schedule: invalid options")

	// ErrNegativeTransit indicates a pairwise relation reported a negative
	// cost; transit pruning relies on monotone non-negative accumulation.
	ErrNegativeTransit = errors.New("schedule: negative transit cost")

	// ErrAssignmentShape indicates an assignment whose length does not match
	// the catalog it is audited against.
	ErrAssignmentShape = errors.New("schedule: assignment does not match catalog")

	// ErrInfeasibleAssignment indicates an audited assignment selects a pair
	// that violates the feasibility rule.
	ErrInfeasibleAssignment = errors.New("schedule: infeasible assignment")
)

// Pairwise is the read-only conflict/cost relation the search operates on.
// Index pairs refer to positions in a start-ordered catalog and must satisfy
// 0 ≤ i < j < Len(); implementations need not defend other inputs.
// Implementations must be safe for concurrent readers: parallel passes share
// one relation across goroutines.
type Pairwise interface {
	// Len reports the number of occurrences the relation covers.
	Len() int

	// Feasible reports whether occurrences i and j may both be attended.
	Feasible(i, j int) bool

	// TransitMinutes is the travel cost charged when j is attended directly
	// after i (no selected occurrence between them). Must be non-negative.
	TransitMinutes(i, j int) int

	// SameDay reports whether i and j start on the same calendar date; only
	// same-day consecutive selections contribute transit to the objective.
	SameDay(i, j int) bool
}

// Phase identifies which optimization pass produced a value.
type Phase int

const (
	// PhaseAttendance is the first pass: maximize the number of selections.
	PhaseAttendance Phase = iota + 1

	// PhaseTransit is the second pass: minimize total transit with the
	// attendance pinned at the pass-1 optimum.
	PhaseTransit
)

// String names the phase for logs and progress reports.
func (p Phase) String() string {
	switch p {
	case PhaseAttendance:
		return "attendance"
	case PhaseTransit:
		return "transit"
	default:
		return "unknown"
	}
}

// Improvement describes a freshly recorded incumbent. Carried by the
// Options.OnImprove hook; all fields are safe to retain (Selected is a copy).
type Improvement struct {
	// Phase is the pass that found the incumbent.
	Phase Phase

	// Selected is the incumbent assignment in catalog index order.
	Selected []bool

	// Attendance is the incumbent's selection count.
	Attendance int

	// TransitMinutes is the incumbent's attributed transit total.
	TransitMinutes int

	// Elapsed is the wall-clock time since the search started.
	Elapsed time.Duration
}

// Selection is the raw outcome of a Search run over a Pairwise relation.
type Selection struct {
	// Selected holds one decision per catalog index.
	Selected []bool

	// Attendance is the number of selected occurrences.
	Attendance int

	// TransitMinutes is the total transit attributed along same-day
	// consecutive selections.
	TransitMinutes int

	// Optimal is false when a time or node budget expired before both passes
	// completed; Selected is then the best feasible assignment found so far.
	Optimal bool

	// Nodes counts the search-tree nodes explored across both passes.
	Nodes int64
}

// Entry is one selected occurrence in the derived schedule.
type Entry struct {
	// Index is the occurrence's catalog index.
	Index int

	// Occurrence is the catalog entry itself.
	Occurrence catalog.Occurrence

	// SameDay reports whether the previous selected occurrence starts on the
	// same calendar date. TransitMinutes and DowntimeMinutes are meaningful
	// only when SameDay is true.
	SameDay bool

	// TransitMinutes is the travel cost from the previous selected occurrence.
	TransitMinutes int

	// DowntimeMinutes is the idle time after arriving: this occurrence's
	// start minus the previous end minus transit. Never negative for a
	// feasible assignment.
	DowntimeMinutes int
}

// Result is the outcome of a full Solve run: the raw selection plus the
// derived, render-ready schedule.
type Result struct {
	Selection

	// Entries lists the selected occurrences ascending by start time.
	Entries []Entry
}
