package regions_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/seedgrid/regions"
	"github.com/katalvlaran/seedgrid/seedset"
	"github.com/katalvlaran/seedgrid/wavefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenario = []seedset.Point{{X: 1, Y: 1}, {X: 1, Y: 6}, {X: 8, Y: 3}, {X: 3, Y: 4}, {X: 5, Y: 5}, {X: 8, Y: 9}}

func mustSet(t *testing.T, points []seedset.Point) *seedset.SeedSet {
	t.Helper()
	set, err := seedset.New(points)
	require.NoError(t, err)
	return set
}

// TestAnalyze_Scenario: D and E are enclosed, E is the largest with 17 cells.
func TestAnalyze_Scenario(t *testing.T) {
	sim, err := wavefront.New(mustSet(t, scenario))
	require.NoError(t, err)

	rep, err := regions.Analyze(sim)
	require.NoError(t, err)
	assert.Equal(t, 17, rep.Round)
	assert.Equal(t, 18, sim.Round(), "one comparison round past the target")

	want := regions.Region{Sign: 'E', Seed: seedset.Point{X: 5, Y: 5}, Area: 17, Bounded: true}
	assert.Equal(t, want, rep.Largest)

	verdicts := map[rune]bool{}
	for _, r := range rep.Regions {
		verdicts[r.Sign] = r.Bounded
	}
	wantVerdicts := map[rune]bool{'A': false, 'B': false, 'C': false, 'D': true, 'E': true, 'F': false}
	if diff := cmp.Diff(wantVerdicts, verdicts); diff != "" {
		t.Errorf("verdicts mismatch (-want +got):\n%s", diff)
	}

	bounded := rep.Bounded()
	require.Len(t, bounded, 2)
	assert.Equal(t, 9, bounded[0].Area, "D area")
}

// TestAnalyze_FixedRoundsAgrees: the reference 160-round cap yields the same
// largest area as the analytic stopping round.
func TestAnalyze_FixedRoundsAgrees(t *testing.T) {
	set := mustSet(t, scenario)
	settled, err := regions.LargestBoundedRegion(set)
	require.NoError(t, err)
	fixed, err := regions.LargestBoundedRegion(set, wavefront.WithFixedRounds(wavefront.DefaultRounds))
	require.NoError(t, err)
	assert.Equal(t, 17, settled)
	assert.Equal(t, settled, fixed)
}

// TestAnalyze_Deterministic repeats the analysis on fresh simulators.
func TestAnalyze_Deterministic(t *testing.T) {
	set := mustSet(t, scenario)
	for i := 0; i < 5; i++ {
		got, err := regions.LargestBoundedRegion(set)
		require.NoError(t, err)
		require.Equal(t, 17, got, "run %d", i)
	}
}

// TestAnalyze_SingleSeed: one seed grows forever, no bounded region exists.
func TestAnalyze_SingleSeed(t *testing.T) {
	_, err := regions.LargestBoundedRegion(mustSet(t, []seedset.Point{{X: 4, Y: 4}}))
	assert.ErrorIs(t, err, regions.ErrNoBoundedRegion)

	// Same verdict at every fixed cap.
	for _, n := range []int{0, 1, 10} {
		_, err := regions.LargestBoundedRegion(mustSet(t, []seedset.Point{{X: 4, Y: 4}}), wavefront.WithFixedRounds(n))
		assert.ErrorIs(t, err, regions.ErrNoBoundedRegion, "rounds=%d", n)
	}
}

// TestAnalyze_LineOfSeeds: collinear seeds all touch the outside.
func TestAnalyze_LineOfSeeds(t *testing.T) {
	_, err := regions.LargestBoundedRegion(mustSet(t, []seedset.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 6, Y: 0}}))
	assert.ErrorIs(t, err, regions.ErrNoBoundedRegion)
}

// TestAnalyze_EnclosedSeed: a centre seed ringed by four far seeds is bounded.
//
//	    B
//	A   E   C
//	    D
func TestAnalyze_EnclosedSeed(t *testing.T) {
	points := []seedset.Point{{X: 0, Y: 4}, {X: 4, Y: 0}, {X: 8, Y: 4}, {X: 4, Y: 8}, {X: 4, Y: 4}}
	rep, err := regions.Analyze(mustNewSim(t, points))
	require.NoError(t, err)
	assert.Equal(t, 'E', rep.Largest.Sign)
	// Cells strictly closer to (4,4) than to any ring seed: |dx| <= 1 and |dy| <= 1.
	assert.Equal(t, 9, rep.Largest.Area)
	assert.Len(t, rep.Bounded(), 1)
}

// TestAnalyze_TooFewRounds: a cap below the settle round misclassifies the
// enclosed region as growing, which surfaces as ErrNoBoundedRegion.
func TestAnalyze_TooFewRounds(t *testing.T) {
	sim, err := wavefront.New(mustSet(t, scenario), wavefront.WithFixedRounds(1))
	require.NoError(t, err)
	_, err = regions.Analyze(sim)
	assert.ErrorIs(t, err, regions.ErrNoBoundedRegion)
}

// TestAnalyze_RoundCap: far-flung seeds hit the round cap long before their
// regions settle; the analysis stops there instead of growing the grid.
func TestAnalyze_RoundCap(t *testing.T) {
	k := 800
	diamond := []seedset.Point{{X: 0, Y: k}, {X: k, Y: 0}, {X: 2 * k, Y: k}, {X: k, Y: 2 * k}, {X: k, Y: k}}
	sim, err := wavefront.New(mustSet(t, diamond), wavefront.WithMaxRounds(50))
	require.NoError(t, err)

	_, err = regions.Analyze(sim)
	assert.ErrorIs(t, err, regions.ErrNoBoundedRegion)
	assert.ErrorIs(t, err, wavefront.ErrRoundCapReached)
	assert.Equal(t, 50, sim.Round(), "no comparison round after the cap")

	got, err := regions.LargestBoundedRegion(mustSet(t, scenario), wavefront.WithMaxRounds(17))
	require.NoError(t, err)
	assert.Equal(t, 17, got, "a cap at the settle round is enough")
}

// TestAnalyze_Nil rejects a nil simulator.
func TestAnalyze_Nil(t *testing.T) {
	_, err := regions.Analyze(nil)
	assert.ErrorIs(t, err, regions.ErrNilSimulator)

	_, err = regions.LargestBoundedRegion(nil)
	assert.ErrorIs(t, err, wavefront.ErrNilSeedSet)
}

func mustNewSim(t *testing.T, points []seedset.Point) *wavefront.Simulator {
	t.Helper()
	sim, err := wavefront.New(mustSet(t, points))
	require.NoError(t, err)
	return sim
}

// TestCompare flags strict growth only, including signs new in after.
func TestCompare(t *testing.T) {
	before := map[rune]int{'A': 3, 'B': 7, 'C': 2}
	after := map[rune]int{'A': 5, 'B': 7, 'D': 1}
	want := map[rune]bool{'A': true, 'B': false, 'C': false, 'D': true}
	assert.Equal(t, want, regions.Compare(before, after))
}

// TestReport_Stats summarizes the two enclosed scenario regions (9 and 17).
func TestReport_Stats(t *testing.T) {
	rep, err := regions.Analyze(mustNewSim(t, scenario))
	require.NoError(t, err)

	s := rep.Stats()
	assert.Equal(t, 2, s.Bounded)
	assert.Equal(t, 4, s.Unbounded)
	assert.InDelta(t, 13.0, s.Mean, 1e-9)
	assert.InDelta(t, 4.0, s.StdDev, 1e-9)

	empty := (&regions.Report{}).Stats()
	assert.Equal(t, regions.Stats{}, empty)
}
