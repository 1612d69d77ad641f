// Package seedgrid partitions the integer plane around labeled seed points
// under Manhattan distance.
//
// 🚀 What is seedgrid?
//
//	A small, pure-Go engine that answers two questions about a seed layout:
//		• which cells each seed owns, which regions stay finite, and how large
//		  the largest finite region is
//		• how many cells lie within a total-distance budget of all seeds
//
// Under the hood, everything is organized under four subpackages:
//
//	seedset/   — Point, Seed, SeedSet, BoundingBox and the "<x>, <y>" parser
//	wavefront/ — round-by-round multi-source growth with tie detection
//	regions/   — bounded/unbounded verdicts, largest area, contiguity, stats
//	threshold/ — brute-force distance-sum region count
//
// Quick ASCII example (seeds A and B two cells apart, after one round):
//
//	_A_B_
//	AA.BB
//	_A_B_
//
// '.' marks a contested cell, equidistant from both seeds and owned by none.
//
// The seedgrid command under cmd/seedgrid wires the packages into a CLI:
//
//	go run ./cmd/seedgrid -i input.txt --threshold 10000
package seedgrid
