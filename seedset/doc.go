// Package seedset stores the labeled seed points that drive a Manhattan
// partition of the integer plane.
//
// What:
//
//   - Point is an integer (x, y) coordinate with Manhattan distance.
//   - SeedSet is an immutable, ordered list of seeds, each carrying a unique
//     display sign drawn from the 52-letter alphabet A..Z a..z.
//   - BoundingBox is the tightest rectangle containing every seed.
//   - Parse reads "<x>, <y>" lines into points.
//
// Complexity:
//
//   - New:         O(n) time, O(n) memory.
//   - BoundingBox: O(n), independent min/max folds over x and y.
//   - Parse:       O(total input size).
//
// Errors:
//
//   - ErrNoSeeds: no points supplied.
//   - ErrAlphabetExhausted: more seeds than signs (52).
//   - ErrCoincidentSeeds: two seeds share a coordinate.
//   - ErrMalformedInput: a line is not "<int>, <int>".
package seedset
