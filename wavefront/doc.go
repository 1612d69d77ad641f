// Package wavefront simulates simultaneous Manhattan-distance growth from every
// seed of a seedset.SeedSet and settles ownership of each reached cell.
//
// What:
//
//   - Simulator keeps a sparse grid (map keyed by coordinate) of settled cells.
//   - Each Step grows every region by one ring: the cells settled in the
//     previous round emit their four axis neighbors, the candidates are sorted
//     by (y, x), adjacent runs sharing a coordinate are scanned for ties, and
//     the survivors are merged into the settled set. First arrival is final.
//   - A cell reached in the same round by two or more signs is contested: it
//     belongs to no region and propagates contest to its own neighbors, which
//     are equidistant to the same seeds.
//
// Termination:
//
//   - UntilSettled (default) stops at round Span+2, where Span is the
//     Manhattan size of the seed bounding box. Any region owning a cell outside
//     the box is unbounded and owns a cell of the one-cell ring around the box;
//     by that round every box and ring cell is settled, so bounded regions are
//     final and unbounded ones grow on every further round.
//   - FixedRounds runs a fixed number of rounds (DefaultRounds = 160).
//   - MaxRounds, when set, caps either rule; Run then reports
//     ErrRoundCapReached instead of growing the grid further.
//
// Complexity:
//
//   - Step: O(F log F), F = frontier size (4 × cells settled last round).
//   - Run:  O(R² log R) for R rounds, Memory: O(R²) settled cells.
//
// Errors:
//
//   - ErrNilSeedSet: New called without seeds.
//   - ErrOptionViolation: invalid option, e.g. negative round count.
//   - ErrInvariantViolation: Verify found a seed cell missing or reassigned.
//   - ErrRoundCapReached: MaxRounds stopped Run before its termination rule.
package wavefront
