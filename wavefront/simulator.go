package wavefront

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/seedgrid/internal/logging"
	"github.com/katalvlaran/seedgrid/seedset"
	"github.com/sirupsen/logrus"
)

// Simulator owns the sparse settled grid and advances it one ring per Step.
// It is not safe for concurrent use.
type Simulator struct {
	set     *seedset.SeedSet
	opts    Options
	settled map[seedset.Point]Cell
	active  []Cell // cells settled in the previous round
	round   int
}

// New settles every seed on its own cell at round 0.
// Returns ErrNilSeedSet or ErrOptionViolation for invalid input.
func New(set *seedset.SeedSet, opts ...Option) (*Simulator, error) {
	if set == nil {
		return nil, ErrNilSeedSet
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Simulator{
		set:     set,
		opts:    o,
		settled: make(map[seedset.Point]Cell, set.Len()),
		active:  make([]Cell, 0, set.Len()),
	}
	for _, sd := range set.Seeds() {
		c := Cell{Point: sd.Point, Owner: sd.Sign}
		s.settled[c.Point] = c
		s.active = append(s.active, c)
	}

	return s, nil
}

// Seeds returns the seed set the simulation grows from.
func (s *Simulator) Seeds() *seedset.SeedSet { return s.set }

// Round returns the number of completed rounds.
func (s *Simulator) Round() int { return s.round }

// Target returns the round at which Run stops: the termination rule's round,
// clamped to MaxRounds when a cap is set.
func (s *Simulator) Target() int {
	t := s.want()
	if s.opts.MaxRounds > 0 && t > s.opts.MaxRounds {
		return s.opts.MaxRounds
	}
	return t
}

// want is the round the termination rule asks for, ignoring MaxRounds.
func (s *Simulator) want() int {
	if s.opts.Termination == FixedRounds {
		return s.opts.Rounds
	}
	return s.set.BoundingBox().Span() + 2
}

// Run steps until Target is reached and returns the current round.
// Calling Run again past the target is a no-op. When MaxRounds cut the run
// short of the termination rule, Run returns ErrRoundCapReached.
func (s *Simulator) Run() (int, error) {
	for target := s.Target(); s.round < target; {
		s.Step()
	}
	if want := s.want(); s.round < want {
		return s.round, fmt.Errorf("%w: stopped at round %d, %d needed", ErrRoundCapReached, s.round, want)
	}
	return s.round, nil
}

// Step performs one round: expand, sort, resolve contests, merge.
func (s *Simulator) Step() StepResult {
	next := s.round + 1

	frontier := s.expand(next)
	slices.SortStableFunc(frontier, func(a, b Cell) int { return a.Point.Compare(b.Point) })
	resolved := resolveContests(frontier)

	res := StepResult{Round: next}
	fresh := make([]Cell, 0, len(resolved))
	for _, c := range resolved {
		if _, done := s.settled[c.Point]; done {
			continue
		}
		s.settled[c.Point] = c
		fresh = append(fresh, c)
		res.Settled++
		if c.Contested {
			res.Contested++
		}
	}
	s.active = fresh
	s.round = next

	if logging.Log.IsLevelEnabled(logrus.DebugLevel) {
		logging.Log.WithFields(logrus.Fields{
			"round":     res.Round,
			"settled":   res.Settled,
			"contested": res.Contested,
		}).Debug("wavefront round")
	}
	s.opts.OnRound(res)

	return res
}

// expand emits the four axis neighbors of every active cell, tagged with the
// parent's outcome and the given round.
func (s *Simulator) expand(round int) []Cell {
	out := make([]Cell, 0, 4*len(s.active))
	for _, parent := range s.active {
		for _, p := range parent.Neighbors() {
			out = append(out, Cell{
				Point:     p,
				Owner:     parent.Owner,
				Contested: parent.Contested,
				Round:     round,
			})
		}
	}
	return out
}

// resolveContests collapses each run of equal coordinates in a sorted
// frontier into one outcome. A run carrying two distinct signs, or any
// contested candidate, yields a contested cell.
func resolveContests(sorted []Cell) []Cell {
	out := make([]Cell, 0, len(sorted))
	for i := 0; i < len(sorted); {
		head := sorted[i]
		j := i + 1
		for ; j < len(sorted) && sorted[j].Point == head.Point; j++ {
			if sorted[j].Contested || sorted[j].Owner != head.Owner {
				head.Owner, head.Contested = 0, true
			}
		}
		out = append(out, head)
		i = j
	}
	return out
}

// Cell looks up the settled cell at p in the live grid.
func (s *Simulator) Cell(p seedset.Point) (Cell, bool) {
	c, ok := s.settled[p]
	return c, ok
}

// Tally counts owned cells per sign in the live grid, without copying it.
func (s *Simulator) Tally() map[rune]int {
	return tally(s.settled)
}

// Snapshot returns a read-only copy of the settled grid.
func (s *Simulator) Snapshot() *Snapshot {
	return &Snapshot{round: s.round, cells: maps.Clone(s.settled)}
}

// Verify checks that every seed still owns its own round-0 cell.
// A failure is reported as ErrInvariantViolation.
func (s *Simulator) Verify() error {
	for _, sd := range s.set.Seeds() {
		c, ok := s.settled[sd.Point]
		if !ok {
			return fmt.Errorf("%w: seed %c cell %v missing", ErrInvariantViolation, sd.Sign, sd.Point)
		}
		if c.Contested || c.Owner != sd.Sign || c.Round != 0 {
			return fmt.Errorf("%w: seed %c cell %v holds %s", ErrInvariantViolation, sd.Sign, sd.Point, c)
		}
	}
	return nil
}
