// Package schedule selects, from a start-ordered catalog of event
// occurrences, the largest subset one attendee can physically attend and,
// among all subsets of that size, the one with the least total travel.
//
// Model. One boolean decision per catalog index. For every index pair i < j
// with both occurrences selected, the earlier one must end, travel must
// complete, and only then may the later one start - and the two titles must
// differ (a repeated title is an alternative showing, never a second visit).
// Feasibility is checked for every selected pair, not only adjacent ones:
// transit costs are arbitrary symmetric minutes with no triangle-inequality
// guarantee, so the induced conflict relation is a general graph and skipping
// non-adjacent checks would change the feasible set. The all-pairs rule can
// reject schedules that detour via a third venue; that over-approximation is
// part of the model's contract, not a defect.
//
// Objectives, lexicographic. First maximize attendance. Then, with attendance
// pinned at that maximum, minimize the total transit attributed along
// same-day consecutive selections (a day's first event and any cross-day
// transition charge nothing).
//
// Search. Two sequential exact branch-and-bound passes over the same
// constraint set, depth-first in catalog index order:
//
//  1. Attendance pass - bound: selected so far plus all undecided; prune when
//     that ceiling cannot beat the incumbent.
//  2. Transit pass - attendance fixed to the pass-1 optimum; accumulated
//     transit only grows, so prune once it reaches the incumbent. The pass-1
//     assignment seeds the initial upper bound.
//
// Both passes branch attend-before-skip and replace incumbents only on strict
// improvement, so ties resolve to the assignment that selects the earliest
// catalog indices - byte-identical output on identical input, including under
// Workers > 1 (root branches share bounds one-way and reduce in branch order).
//
// Budgets. An optional TimeLimit or MaxNodes cap spans both passes; on expiry
// the best-known feasible selection is returned with Optimal set to false.
// The empty selection is always feasible, so exhaustion is never an error.
//
// Complexity:
//
//	– Time:  worst case exponential in the catalog size (exact search);
//	  pruning does the practical work. Per node O(depth) feasibility checks.
//	– Space: O(n²) for the prefetched pair relation, O(n) search state.
//
// Errors (sentinel):
//
//	– ErrNilCatalog, ErrNilTable, ErrNilRelation on missing inputs.
//	– ErrInvalidOptions on negative budgets or worker counts.
//	– ErrNegativeTransit if a pairwise relation reports a negative cost.
//	– ErrAssignmentShape, ErrInfeasibleAssignment from assignment auditing.
//
// Example usage:
//
//	res, err := schedule.Solve(cat, tbl, schedule.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("attend %d, %d transit minutes\n", res.Attendance, res.TransitMinutes)
package schedule
