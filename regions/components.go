package regions

import (
	"fmt"

	"github.com/katalvlaran/seedgrid/seedset"
	"github.com/katalvlaran/seedgrid/wavefront"
)

// Lookup resolves settled cells. *wavefront.Simulator reads its live grid,
// *wavefront.Snapshot a frozen copy.
type Lookup interface {
	Cell(p seedset.Point) (wavefront.Cell, bool)
}

// Component collects the cells 4-connected to start that share its owner,
// in BFS order from start. It is empty when start is unsettled or contested.
//
// Time:   O(A) for A cells in the component.
// Memory: O(A) for visited flags and output.
func Component(grid Lookup, start seedset.Point) []seedset.Point {
	c, ok := grid.Cell(start)
	if !ok || !c.Owned() {
		return nil
	}
	sign := c.Owner
	seen := map[seedset.Point]bool{start: true}
	queue := []seedset.Point{start}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range queue[qi].Neighbors() {
			if seen[n] {
				continue
			}
			if nc, ok := grid.Cell(n); ok && nc.Owned() && nc.Owner == sign {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return queue
}

// Components splits the cells owned by sign in snap into 4-connected groups.
// Each group starts from its first cell in (y, x) order. A region grown by the
// wavefront is always a single component.
func Components(snap *wavefront.Snapshot, sign rune) [][]seedset.Point {
	seen := make(map[seedset.Point]bool)
	var comps [][]seedset.Point
	for _, c := range snap.Cells() {
		if !c.Owned() || c.Owner != sign || seen[c.Point] {
			continue
		}
		comp := Component(snap, c.Point)
		for _, p := range comp {
			seen[p] = true
		}
		comps = append(comps, comp)
	}
	return comps
}

// verifyContiguous checks that every bounded region is exactly the component
// grown from its seed.
func verifyContiguous(grid Lookup, bounded []Region) error {
	for _, r := range bounded {
		if n := len(Component(grid, r.Seed)); n != r.Area {
			return fmt.Errorf("%w: region %c reaches %d of %d cells from its seed",
				wavefront.ErrInvariantViolation, r.Sign, n, r.Area)
		}
	}
	return nil
}
