package seedset

import (
	"errors"
	"fmt"
)

// Sentinel errors for seed set construction and parsing.
var (
	// ErrNoSeeds indicates an empty point list.
	ErrNoSeeds = errors.New("seedset: at least one seed is required")
	// ErrAlphabetExhausted indicates more seeds than available signs.
	ErrAlphabetExhausted = errors.New("seedset: seed count exceeds sign alphabet")
	// ErrCoincidentSeeds indicates two seeds placed on the same coordinate.
	ErrCoincidentSeeds = errors.New("seedset: coincident seed positions")
	// ErrMalformedInput indicates a coordinate line that could not be parsed.
	ErrMalformedInput = errors.New("seedset: malformed coordinate line")
)

// Alphabet lists the signs assigned to seeds, in input order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// MaxSeeds is the number of distinct signs, and thus the largest seed set.
const MaxSeeds = len(Alphabet)

// Point is a cell coordinate on the integer plane.
type Point struct {
	X, Y int
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Neighbors returns the four axis neighbors in the order N, W, S, E.
func (p Point) Neighbors() [4]Point {
	return [4]Point{
		{p.X, p.Y - 1},
		{p.X - 1, p.Y},
		{p.X, p.Y + 1},
		{p.X + 1, p.Y},
	}
}

// Compare orders points by y, then x. It returns -1, 0 or +1.
func (p Point) Compare(q Point) int {
	switch {
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	}
	return 0
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Seed is a labeled reference point. Sign is unique within its SeedSet.
type Seed struct {
	Sign rune
	Point
}

// BoundingBox is an inclusive rectangle: Min and Max both lie inside it.
type BoundingBox struct {
	Min, Max Point
}

// Width is the number of columns covered, inclusive.
func (b BoundingBox) Width() int { return b.Max.X - b.Min.X + 1 }

// Height is the number of rows covered, inclusive.
func (b BoundingBox) Height() int { return b.Max.Y - b.Min.Y + 1 }

// Span is the Manhattan distance between the two corners.
func (b BoundingBox) Span() int { return b.Min.Manhattan(b.Max) }

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Expand grows the box by n cells on every side.
func (b BoundingBox) Expand(n int) BoundingBox {
	return BoundingBox{
		Min: Point{b.Min.X - n, b.Min.Y - n},
		Max: Point{b.Max.X + n, b.Max.Y + n},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
