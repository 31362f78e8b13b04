// Package transit models the static venue-to-venue travel times consumed by
// schedule feasibility checks.
//
// A Table maps every unordered pair of distinct venues to a non-negative
// whole-minute cost and charges a fixed repositioning constant for staying at
// the same venue (seat change, queueing - not necessarily zero). The table is
// deliberately NOT required to satisfy the triangle inequality: costs are
// arbitrary symmetric minutes, so downstream feasibility must treat them as an
// opaque pairwise relation rather than a metric.
//
// Construction validates the table eagerly and fails fast:
//   - every unordered pair of known venues must be covered,
//   - mirrored entries must agree (symmetry),
//   - minutes must be non-negative,
//   - a venue paired with itself is rejected (the same-venue constant is
//     configured separately, see WithSameVenueMinutes).
//
// After New returns, the Table is immutable and safe for concurrent readers.
//
// Errors (sentinel):
//
//	– ErrInfeasibleTable if the table is incomplete, asymmetric, or carries
//	  negative or self-pair entries.
//	– ErrUnknownVenue    if a lookup names a venue the table does not know.
//
// Example usage:
//
//	tbl, err := transit.New(map[string]map[string]int{
//	    "STA": {"CAM": 25, "VUE": 12},
//	    "CAM": {"VUE": 20},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, _ := tbl.Minutes("STA", "VUE") // 12
package transit
