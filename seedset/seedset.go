package seedset

import "fmt"

// SeedSet is an immutable, ordered collection of seeds.
type SeedSet struct {
	seeds  []Seed
	bySign map[rune]int
	box    BoundingBox
}

// New assigns each point a sign from Alphabet, in input order.
// Returns ErrNoSeeds for an empty list, ErrAlphabetExhausted when len(points)
// exceeds MaxSeeds, and ErrCoincidentSeeds when two points are equal.
// Complexity: O(n) time and memory.
func New(points []Point) (*SeedSet, error) {
	if len(points) == 0 {
		return nil, ErrNoSeeds
	}
	if len(points) > MaxSeeds {
		return nil, fmt.Errorf("%w: %d seeds, %d signs available", ErrAlphabetExhausted, len(points), MaxSeeds)
	}

	signs := []rune(Alphabet)
	s := &SeedSet{
		seeds:  make([]Seed, len(points)),
		bySign: make(map[rune]int, len(points)),
	}
	at := make(map[Point]rune, len(points))
	for i, p := range points {
		sign := signs[i]
		if prev, dup := at[p]; dup {
			return nil, fmt.Errorf("%w: %c and %c both at %v", ErrCoincidentSeeds, prev, sign, p)
		}
		at[p] = sign
		s.seeds[i] = Seed{Sign: sign, Point: p}
		s.bySign[sign] = i
	}
	s.box = boundingBox(points)

	return s, nil
}

// Seeds returns a copy of the seeds in input order.
func (s *SeedSet) Seeds() []Seed {
	out := make([]Seed, len(s.seeds))
	copy(out, s.seeds)
	return out
}

// Points returns the seed coordinates in input order.
func (s *SeedSet) Points() []Point {
	out := make([]Point, len(s.seeds))
	for i, sd := range s.seeds {
		out[i] = sd.Point
	}
	return out
}

// Len returns the number of seeds.
func (s *SeedSet) Len() int { return len(s.seeds) }

// Seed looks up a seed by its sign.
func (s *SeedSet) Seed(sign rune) (Seed, bool) {
	i, ok := s.bySign[sign]
	if !ok {
		return Seed{}, false
	}
	return s.seeds[i], true
}

// BoundingBox returns the tightest rectangle containing every seed.
func (s *SeedSet) BoundingBox() BoundingBox { return s.box }

// boundingBox folds min and max over x and y independently.
func boundingBox(points []Point) BoundingBox {
	b := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}
