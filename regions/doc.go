// Package regions classifies the regions grown by a wavefront.Simulator as
// bounded or unbounded and reports the largest bounded area.
//
// A region is unbounded when its owned-cell count still grows between the
// simulator's stopping round and one extra round; it would keep absorbing
// cells forever on the infinite plane. Every other region is bounded.
//
// Errors:
//
//   - ErrNilSimulator: Analyze called without a simulator.
//   - ErrNoBoundedRegion: every region was still growing when the
//     simulation stopped, or the simulator's round cap stopped it first, so
//     no finite answer exists for that stopping round.
//   - wavefront.ErrInvariantViolation: a seed cell was lost or a bounded
//     region is not one 4-connected component.
package regions
