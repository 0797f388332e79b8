package molecule

import (
	"math"

	"github.com/pkg/errors"
)

// DeriveBonds infers bonds from atom coordinates. Atoms i < j are bonded when
//
//	MinDistance < d(i, j) < (r_i + r_j) · Tolerance
//
// where r is the covalent radius of each element. The result is sorted by
// (i, j) and ready for New.
//
// Returns ErrBadBondOption for invalid options and ErrUnknownElement or
// ErrNoRadius when an atom's element has no tabulated radius.
// Complexity: O(N²) time, O(B) memory.
func DeriveBonds(atoms []Atom, opts ...BondOption) ([][2]int, error) {
	cfg := DefaultBondOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	radii := make([]float64, len(atoms))
	for i, a := range atoms {
		r, err := CovalentRadius(a.Element)
		if err != nil {
			return nil, errors.Wrapf(err, "atom %d", i)
		}
		radii[i] = r
	}

	var bonds [][2]int
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			d := distance(atoms[i], atoms[j])
			if d > cfg.MinDistance && d < (radii[i]+radii[j])*cfg.Tolerance {
				bonds = append(bonds, [2]int{i, j})
			}
		}
	}

	return bonds, nil
}

// FromGeometry derives bonds with DeriveBonds and builds the Molecule.
func FromGeometry(atoms []Atom, opts ...BondOption) (*Molecule, error) {
	bonds, err := DeriveBonds(atoms, opts...)
	if err != nil {
		return nil, err
	}
	return New(atoms, bonds)
}

// distance returns the euclidean distance between a and b.
func distance(a, b Atom) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
