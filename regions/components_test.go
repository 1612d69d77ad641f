package regions_test

import (
	"testing"

	"github.com/katalvlaran/seedgrid/regions"
	"github.com/katalvlaran/seedgrid/seedset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComponents_RegionsAreContiguous: every scenario region, bounded or not,
// forms one 4-connected component whose size matches its area.
func TestComponents_RegionsAreContiguous(t *testing.T) {
	sim := mustNewSim(t, scenario)
	rep, err := regions.Analyze(sim)
	require.NoError(t, err)

	snap := sim.Snapshot()
	tally := snap.Tally()
	for _, r := range rep.Regions {
		comps := regions.Components(snap, r.Sign)
		require.Len(t, comps, 1, "region %c", r.Sign)
		assert.Len(t, comps[0], tally[r.Sign], "region %c size", r.Sign)
	}
}

// TestComponents_SmallRegion lists E's 3×3 block around the enclosed seed.
func TestComponents_SmallRegion(t *testing.T) {
	sim := mustNewSim(t, []seedset.Point{{X: 0, Y: 4}, {X: 4, Y: 0}, {X: 8, Y: 4}, {X: 4, Y: 8}, {X: 4, Y: 4}})
	_, err := sim.Run()
	require.NoError(t, err)

	comps := regions.Components(sim.Snapshot(), 'E')
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)
	assert.Equal(t, seedset.Point{X: 3, Y: 3}, comps[0][0], "first cell in (y, x) order")
	for _, p := range comps[0] {
		assert.LessOrEqual(t, p.Manhattan(seedset.Point{X: 4, Y: 4}), 2)
	}

	assert.Empty(t, regions.Components(sim.Snapshot(), 'z'), "unused sign")
}

// TestComponent_FromSeed grows E's block from its seed on the live grid and
// returns nothing for contested or unsettled starts.
func TestComponent_FromSeed(t *testing.T) {
	sim := mustNewSim(t, []seedset.Point{{X: 0, Y: 0}, {X: 2, Y: 0}})
	sim.Step()

	got := regions.Component(sim, seedset.Point{X: 0, Y: 0})
	require.Len(t, got, 4)
	assert.Equal(t, seedset.Point{X: 0, Y: 0}, got[0], "BFS starts at the seed")

	assert.Empty(t, regions.Component(sim, seedset.Point{X: 1, Y: 0}), "contested midpoint")
	assert.Empty(t, regions.Component(sim, seedset.Point{X: 9, Y: 9}), "not reached")
}
