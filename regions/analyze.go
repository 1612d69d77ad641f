package regions

import (
	"fmt"

	"github.com/katalvlaran/seedgrid/internal/logging"
	"github.com/katalvlaran/seedgrid/seedset"
	"github.com/katalvlaran/seedgrid/wavefront"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Analyze runs sim to its stopping round, tallies owned cells per sign, runs
// exactly one more round and tallies again. Signs whose count strictly grew
// are unbounded. Every bounded region must form a single 4-connected
// component. The simulator is left one round past its target.
//
// Returns ErrNilSimulator, ErrNoBoundedRegion if every region grows or the
// simulator's round cap stopped it early, or wavefront.ErrInvariantViolation
// if the settled grid breaks its contract.
func Analyze(sim *wavefront.Simulator) (*Report, error) {
	if sim == nil {
		return nil, ErrNilSimulator
	}
	round, err := sim.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoBoundedRegion, err)
	}
	if err := sim.Verify(); err != nil {
		return nil, err
	}
	before := sim.Tally()
	sim.Step()
	after := sim.Tally()
	growing := Compare(before, after)

	rep := &Report{Round: round}
	found := false
	for _, sd := range sim.Seeds().Seeds() {
		r := Region{
			Sign:    sd.Sign,
			Seed:    sd.Point,
			Area:    before[sd.Sign],
			Bounded: !growing[sd.Sign],
		}
		rep.Regions = append(rep.Regions, r)
		logging.Log.WithFields(logrus.Fields{
			"sign":    string(r.Sign),
			"area":    r.Area,
			"bounded": r.Bounded,
		}).Debug("region verdict")

		if r.Bounded && (!found || r.Area > rep.Largest.Area) {
			rep.Largest = r
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %d regions growing after round %d", ErrNoBoundedRegion, len(rep.Regions), round)
	}
	if err := verifyContiguous(sim, rep.Bounded()); err != nil {
		return nil, err
	}

	return rep, nil
}

// LargestBoundedRegion builds a simulator over set and returns the area of
// its largest bounded region.
func LargestBoundedRegion(set *seedset.SeedSet, opts ...wavefront.Option) (int, error) {
	sim, err := wavefront.New(set, opts...)
	if err != nil {
		return 0, err
	}
	rep, err := Analyze(sim)
	if err != nil {
		return 0, err
	}
	return rep.Largest.Area, nil
}

// Compare reports, per sign present in either tally, whether its count
// strictly increased from before to after.
func Compare(before, after map[rune]int) map[rune]bool {
	growing := make(map[rune]bool, len(after))
	for sign, n := range after {
		growing[sign] = n > before[sign]
	}
	for sign := range before {
		if _, ok := growing[sign]; !ok {
			growing[sign] = false
		}
	}
	return growing
}

// Bounded returns the bounded regions in seed order.
func (r *Report) Bounded() []Region {
	var out []Region
	for _, reg := range r.Regions {
		if reg.Bounded {
			out = append(out, reg)
		}
	}
	return out
}

// Stats computes the count, mean and population standard deviation of the
// bounded areas.
func (r *Report) Stats() Stats {
	bounded := r.Bounded()
	s := Stats{Bounded: len(bounded), Unbounded: len(r.Regions) - len(bounded)}
	if len(bounded) == 0 {
		return s
	}
	areas := make([]float64, len(bounded))
	for i, reg := range bounded {
		areas[i] = float64(reg.Area)
	}
	s.Mean, s.StdDev = stat.PopMeanStdDev(areas, nil)
	return s
}
