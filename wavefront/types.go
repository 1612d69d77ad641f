package wavefront

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seedgrid/seedset"
)

// Sentinel errors for wavefront simulation.
var (
	// ErrNilSeedSet is returned when New receives a nil seed set.
	ErrNilSeedSet = errors.New("wavefront: seed set is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wavefront: invalid option supplied")

	// ErrInvariantViolation signals a broken settlement contract, such as a
	// seed cell absent from the settled grid. It is a programming error.
	ErrInvariantViolation = errors.New("wavefront: settled grid invariant violated")

	// ErrRoundCapReached is returned by Run when MaxRounds stopped the
	// simulation before its termination rule was met.
	ErrRoundCapReached = errors.New("wavefront: round cap reached")
)

// DefaultRounds is the round count used by FixedRounds when none is given.
const DefaultRounds = 160

// Termination selects how Run decides when to stop.
type Termination int

const (
	// UntilSettled stops once every bounded region is provably final.
	UntilSettled Termination = iota
	// FixedRounds stops after Options.Rounds rounds.
	FixedRounds
)

// Cell is a settled grid cell. Owner is 0 exactly when Contested is true.
// Round equals the Manhattan distance to the nearest seed(s).
type Cell struct {
	seedset.Point
	Owner     rune
	Contested bool
	Round     int
}

// Owned reports whether the cell belongs to a single seed.
func (c Cell) Owned() bool { return !c.Contested }

func (c Cell) String() string {
	if c.Contested {
		return fmt.Sprintf("contested%v@%d", c.Point, c.Round)
	}
	return fmt.Sprintf("%c%v@%d", c.Owner, c.Point, c.Round)
}

// StepResult summarizes one simulation round.
type StepResult struct {
	Round     int // round just completed
	Settled   int // cells newly settled this round, contested included
	Contested int // newly settled contested cells
}

// Option configures a Simulator via functional arguments.
type Option func(*Options)

// Options holds simulation parameters.
type Options struct {
	// Termination picks the stopping rule used by Run.
	Termination Termination

	// Rounds is the round count for FixedRounds.
	Rounds int

	// MaxRounds, if > 0, caps the round Run stops at in either mode.
	// 0 disables the cap.
	MaxRounds int

	// OnRound is called after every completed Step.
	OnRound func(StepResult)

	err error
}

// DefaultOptions returns UntilSettled termination, DefaultRounds for the
// fixed mode, no round cap and a no-op OnRound hook.
func DefaultOptions() Options {
	return Options{
		Termination: UntilSettled,
		Rounds:      DefaultRounds,
		OnRound:     func(StepResult) {},
	}
}

// WithTermination selects the stopping rule.
func WithTermination(t Termination) Option {
	return func(o *Options) {
		switch t {
		case UntilSettled, FixedRounds:
			o.Termination = t
		default:
			o.err = fmt.Errorf("%w: unknown termination %d", ErrOptionViolation, t)
		}
	}
}

// WithFixedRounds switches to FixedRounds and runs exactly n rounds.
//
//	n >= 0: run n rounds (0 leaves only the seeds settled)
//	n < 0:  invalid option → ErrOptionViolation
func WithFixedRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: rounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Termination = FixedRounds
		o.Rounds = n
	}
}

// WithMaxRounds caps the round Run may reach.
//
//	n > 0:  stop at round n at the latest
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithOnRound registers a hook run after every Step.
func WithOnRound(fn func(StepResult)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}
