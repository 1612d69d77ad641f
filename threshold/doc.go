// Package threshold counts the cells whose summed Manhattan distance to every
// seed lies strictly below a threshold.
//
// The scan is a brute-force counting fold over the seed bounding box, both
// extremes included. For well-spread seeds and moderate thresholds the region
// lies inside that box; WithPadding widens the scan when it may not.
//
// Complexity: O(W·H·n) time, O(1) extra memory.
package threshold
