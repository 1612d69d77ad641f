package threshold

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seedgrid/seedset"
)

var (
	// ErrNilSeedSet is returned when no seed set is supplied.
	ErrNilSeedSet = errors.New("threshold: seed set is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("threshold: invalid option supplied")
)

// Option configures the scan.
type Option func(*Options)

// Options holds scan parameters.
type Options struct {
	// Padding widens the bounding box by this many cells on every side.
	Padding int

	err error
}

// DefaultOptions scans the bounding box exactly (Padding 0).
func DefaultOptions() Options {
	return Options{}
}

// WithPadding widens the scanned box by n cells per side; n < 0 is rejected.
func WithPadding(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: padding cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Padding = n
	}
}

// FindRegionWithAllLocations counts the cells of set's bounding box whose
// total Manhattan distance to all seeds is strictly less than limit.
// It is deterministic and has no side effects.
func FindRegionWithAllLocations(set *seedset.SeedSet, limit int, opts ...Option) (int, error) {
	if set == nil {
		return 0, ErrNilSeedSet
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	points := set.Points()
	box := set.BoundingBox().Expand(o.Padding)
	count := 0
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			if DistanceSum(points, seedset.Point{X: x, Y: y}) < limit {
				count++
			}
		}
	}

	return count, nil
}

// DistanceSum returns the sum of Manhattan distances from p to every point.
func DistanceSum(points []seedset.Point, p seedset.Point) int {
	sum := 0
	for _, q := range points {
		sum += p.Manhattan(q)
	}
	return sum
}
