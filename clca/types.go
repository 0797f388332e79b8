package clca

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Sentinel errors returned by Match. Precondition failures on the inputs
// surface as the molecule package's own sentinels (molecule.ErrAsymmetric, …).
var (
	// ErrNilMolecule indicates a nil *molecule.Molecule was passed to Match.
	ErrNilMolecule = errors.New("clca: molecule is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("clca: invalid option supplied")

	// ErrFrozenTransition indicates an attempt to change a frozen label.
	ErrFrozenTransition = errors.New("clca: frozen label cannot change")

	// ErrColorReissue indicates a second color was requested for the same label text.
	ErrColorReissue = errors.New("clca: color already issued for label")

	// ErrColorOrder indicates a ColorSource produced a color that is not
	// strictly greater than every color issued before it.
	ErrColorOrder = errors.New("clca: color source is not strictly increasing")

	// ErrColorMismatch indicates a matched color not shared by exactly one atom per molecule.
	ErrColorMismatch = errors.New("clca: matched color is not one-to-one")

	// ErrNoConvergence indicates refinement ran past its round bound.
	ErrNoConvergence = errors.New("clca: refinement did not converge")
)

// State is the refinement state of one atom.
type State uint8

const (
	// Unresolved atoms are still subject to refinement.
	Unresolved State = iota
	// FrozenMatched atoms are paired with exactly one atom of the other molecule.
	FrozenMatched
	// FrozenUnmatched atoms carry a label no atom of the other molecule can share.
	FrozenUnmatched
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case FrozenMatched:
		return "matched"
	case FrozenUnmatched:
		return "unmatched"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Frozen reports whether s is terminal.
func (s State) Frozen() bool {
	return s == FrozenMatched || s == FrozenUnmatched
}

// Label is the per-atom refinement state.
//
// Text is meaningful only while Unresolved; Color only when FrozenMatched.
type Label struct {
	State State
	Text  string
	Color uint64
}

// AtomColor is the final outcome for one atom.
// Color is zero unless the atom is FrozenMatched.
type AtomColor struct {
	Color   uint64 `json:"color"`
	State   State  `json:"state"`
	Matched bool   `json:"matched"`
}

// Pair is one entry of the atom mapping.
type Pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Result is the outcome of one Match run.
//
// A and B run parallel to the atom lists of the two molecules. Mapping and
// Pairs hold the same partial injective correspondence; Pairs is sorted by A.
// RunID is unique per run and is the only field that differs between two runs
// on identical input.
type Result struct {
	RunID   uuid.UUID   `json:"run_id"`
	A       []AtomColor `json:"a"`
	B       []AtomColor `json:"b"`
	Mapping map[int]int `json:"mapping"`
	Pairs   []Pair      `json:"pairs"`
	Rounds  int         `json:"rounds"`
}

// RoundInfo describes one completed refinement round.
// A and B are snapshots taken after the round's labels were extended.
type RoundInfo struct {
	Round     int     // one-based round index
	Matched   int     // exact-match pairs frozen this round
	Singular  int     // atoms frozen unmatched this round
	Ambiguous int     // label classes left unresolved this round
	MaxExact  uint64  // highest exact-match color issued so far
	A, B      []Label // label snapshots
}

// Options configures a Match run.
type Options struct {
	// Workers is the number of goroutines extending labels; ≤1 runs inline.
	Workers int

	// MaxRounds caps the number of rounds; 0 means the natural bound.
	MaxRounds int

	// NewSource builds a fresh ColorSource for each run.
	NewSource func() ColorSource

	// Exhaustive keeps refining while the partition still splits, not only
	// while new exact matches appear.
	Exhaustive bool

	// OnRound, if set, is called after every round on the calling goroutine.
	OnRound func(RoundInfo)

	err error
}

// Option configures Match via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Match is invoked.
type Option func(*Options)

// DefaultOptions returns sequential extension, the natural round bound,
// a SequentialSource and no round hook.
func DefaultOptions() Options {
	return Options{
		Workers:   1,
		MaxRounds: 0,
		NewSource: func() ColorSource { return NewSequentialSource() },
	}
}

// WithWorkers sets the extension parallelism.
//
//	n > 1:  extend labels on up to n goroutines
//	n ≤ 1:  extend inline (n < 0 is invalid)
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "workers cannot be negative (%d)", n)
			return
		}
		o.Workers = n
	}
}

// WithMaxRounds caps the number of refinement rounds. Reaching the cap ends
// the run normally with whatever has been frozen so far.
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "max rounds cannot be negative (%d)", n)
			return
		}
		o.MaxRounds = n
	}
}

// WithColorSource sets the factory for the per-run ColorSource.
// Match calls the factory once per run; sources are never shared between runs.
func WithColorSource(newSource func() ColorSource) Option {
	return func(o *Options) {
		if newSource == nil {
			o.err = errors.Wrap(ErrOptionViolation, "nil color source factory")
			return
		}
		o.NewSource = newSource
	}
}

// WithExhaustiveRefinement keeps running rounds that split label classes
// even when they freeze no new pair, so that a split can yield a match one
// round later. The round bound grows to max(|A|,|B|) + |A| + |B|.
func WithExhaustiveRefinement() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

// WithOnRound registers a hook invoked after every round.
func WithOnRound(fn func(RoundInfo)) Option {
	return func(o *Options) {
		o.OnRound = fn
	}
}
