package molecule

import (
	"github.com/pkg/errors"
)

// Sentinel errors for molecule construction and element lookups.
var (
	// ErrIndexOutOfRange indicates a bond endpoint outside the atom list.
	ErrIndexOutOfRange = errors.New("molecule: atom index out of range")

	// ErrSelfLoop indicates a bond from an atom to itself.
	ErrSelfLoop = errors.New("molecule: self-bond not allowed")

	// ErrAsymmetric indicates an adjacency relation that is not symmetric.
	ErrAsymmetric = errors.New("molecule: adjacency is not symmetric")

	// ErrDuplicateBond indicates the same atom pair was bonded twice.
	ErrDuplicateBond = errors.New("molecule: duplicate bond")

	// ErrEmptyCode indicates an atom without an identity code.
	ErrEmptyCode = errors.New("molecule: atom identity code is empty")

	// ErrBadCode indicates an identity code containing a reserved character.
	ErrBadCode = errors.New("molecule: atom identity code contains a reserved character")

	// ErrUnknownElement indicates an element symbol outside the periodic table.
	ErrUnknownElement = errors.New("molecule: unknown element")

	// ErrNoRadius indicates an element with no tabulated covalent radius.
	ErrNoRadius = errors.New("molecule: no covalent radius for element")

	// ErrBadBondOption indicates a non-positive tolerance or a negative minimum distance.
	ErrBadBondOption = errors.New("molecule: invalid bond option")
)

// Atom is a single atom of a Molecule.
//
// Code is the identity code seeding the structural labels; atoms of the same
// element must carry the same Code. Coordinates are only used by bond
// derivation and rendering.
type Atom struct {
	Element string  // element symbol, e.g. "C"
	Code    string  // identity code, e.g. "06"
	X, Y, Z float64 // cartesian coordinates in Å
}

// Molecule is an immutable molecular graph.
//
// adj[i] holds the sorted, duplicate-free neighbor indices of atom i.
// The zero value is a valid empty molecule.
type Molecule struct {
	atoms []Atom
	adj   [][]int
}

// BondOptions tunes geometric bond derivation.
type BondOptions struct {
	// Tolerance scales the sum of covalent radii. Must be > 0.
	Tolerance float64
	// MinDistance rejects near-coincident atoms. Must be ≥ 0.
	MinDistance float64

	err error
}

// BondOption configures DeriveBonds and FromGeometry.
type BondOption func(*BondOptions)

// DefaultBondOptions returns Tolerance=1.3 and MinDistance=0.1 Å.
func DefaultBondOptions() BondOptions {
	return BondOptions{
		Tolerance:   1.3,
		MinDistance: 0.1,
	}
}

// WithTolerance sets the covalent-radius scale factor.
func WithTolerance(t float64) BondOption {
	return func(o *BondOptions) {
		if t <= 0 {
			o.err = errors.Wrapf(ErrBadBondOption, "tolerance must be positive (%g)", t)
			return
		}
		o.Tolerance = t
	}
}

// WithMinDistance sets the distance below which two atoms are never bonded.
func WithMinDistance(d float64) BondOption {
	return func(o *BondOptions) {
		if d < 0 {
			o.err = errors.Wrapf(ErrBadBondOption, "min distance must be non-negative (%g)", d)
			return
		}
		o.MinDistance = d
	}
}
