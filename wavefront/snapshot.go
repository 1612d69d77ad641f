package wavefront

import (
	"slices"
	"strings"

	"github.com/katalvlaran/seedgrid/seedset"
)

// Snapshot is an immutable view of the settled grid after a given round.
type Snapshot struct {
	round int
	cells map[seedset.Point]Cell
}

// Round is the number of rounds completed when the snapshot was taken.
func (sn *Snapshot) Round() int { return sn.round }

// Len is the number of settled cells, contested included.
func (sn *Snapshot) Len() int { return len(sn.cells) }

// Cell looks up the settled cell at p.
func (sn *Snapshot) Cell(p seedset.Point) (Cell, bool) {
	c, ok := sn.cells[p]
	return c, ok
}

// Cells returns every settled cell ordered by y, then x.
func (sn *Snapshot) Cells() []Cell {
	out := make([]Cell, 0, len(sn.cells))
	for _, c := range sn.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Cell) int { return a.Point.Compare(b.Point) })
	return out
}

// Tally counts owned cells per sign. Contested cells are not counted.
func (sn *Snapshot) Tally() map[rune]int {
	return tally(sn.cells)
}

func tally(cells map[seedset.Point]Cell) map[rune]int {
	t := make(map[rune]int)
	for _, c := range cells {
		if c.Owned() {
			t[c.Owner]++
		}
	}
	return t
}

// Render draws the cells inside box, one row per line: the owner's sign,
// '.' for contested and '_' for cells not reached yet. Debugging aid only.
func (sn *Snapshot) Render(box seedset.BoundingBox) string {
	var sb strings.Builder
	sb.Grow((box.Width() + 1) * box.Height())
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			c, ok := sn.cells[seedset.Point{X: x, Y: y}]
			switch {
			case !ok:
				sb.WriteByte('_')
			case c.Contested:
				sb.WriteByte('.')
			default:
				sb.WriteRune(c.Owner)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
