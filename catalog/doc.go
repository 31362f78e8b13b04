// Package catalog holds the immutable, time-ordered collection of event
// occurrences a schedule is optimized over.
//
// An Occurrence is one scheduled showing of a titled work at a venue: title,
// venue, absolute start, positive duration. Duplicate titles across
// occurrences denote the same work shown again (alternatives, never both
// attendable). A Catalog sorts its occurrences ascending by start with a
// stable sort, so occurrences sharing a start keep their input order; the
// resulting index is the identity every downstream component uses.
//
// Construction validates eagerly and fails fast:
//   - duration must be strictly positive (end = start + duration must follow start),
//   - the venue must be known to the supplied VenueSet (normally a transit.Table),
//   - the title must be non-empty (an empty title would alias unrelated works
//     under the duplicate-title exclusion).
//
// After New returns, the Catalog never mutates and is safe for concurrent readers.
//
// Errors (sentinel):
//
//	– ErrMalformedEvent if an occurrence violates the rules above.
//	– ErrNilVenueSet    if no venue set is supplied.
package catalog
