package regions

import (
	"errors"

	"github.com/katalvlaran/seedgrid/seedset"
)

// Sentinel errors for region analysis.
var (
	// ErrNilSimulator is returned when Analyze receives a nil simulator.
	ErrNilSimulator = errors.New("regions: simulator is nil")

	// ErrNoBoundedRegion is returned when all regions are still growing at the
	// stopping round; the round cap was insufficient or the input has no
	// enclosed seed.
	ErrNoBoundedRegion = errors.New("regions: no bounded region at stopping round")
)

// Region is the verdict for one seed.
type Region struct {
	Sign    rune
	Seed    seedset.Point
	Area    int  // owned cells at the stopping round
	Bounded bool // area did not grow over one extra round
}

// Report is the outcome of Analyze.
type Report struct {
	// Round is the simulator's stopping round, before the extra comparison round.
	Round int
	// Regions lists one verdict per seed, in seed order.
	Regions []Region
	// Largest is the bounded region with the greatest area; on ties the first
	// in seed order.
	Largest Region
}

// Stats summarizes bounded region areas.
type Stats struct {
	Bounded   int
	Unbounded int
	Mean      float64 // mean bounded area
	StdDev    float64 // population standard deviation of bounded areas
}
