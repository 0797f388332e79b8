// Package molecule provides the read-only molecular graph consumed by the
// atom-mapping core: an ordered list of atoms plus a symmetric, irreflexive
// adjacency relation without parallel bonds.
//
// What:
//
//   - Atom carries an element symbol, its identity code (the zero-padded
//     atomic number, e.g. "C" → "06") and cartesian coordinates in Å.
//   - Molecule is built once by New (edge list) or FromAdjacency (explicit
//     neighbor lists) and never mutated afterwards.
//   - DeriveBonds/FromGeometry infer bonds from interatomic distances using
//     covalent radii: i–j are bonded when minDist < d(i,j) < (rᵢ+rⱼ)·tolerance.
//   - Components splits a molecule into its connected fragments.
//
// Determinism:
//
//	Neighbors(i) and Bonds() always return sorted copies, so every consumer
//	sees the same order regardless of how the molecule was assembled.
//
// Complexity (N = atoms, B = bonds):
//
//   - New / FromAdjacency: O(N + B·log B)
//   - Validate:            O(N + B)
//   - DeriveBonds:         O(N²)
//
// Errors:
//
//   - ErrIndexOutOfRange: a bond references an atom index outside [0, N).
//   - ErrSelfLoop:        a bond connects an atom to itself.
//   - ErrAsymmetric:      j ∈ adj(i) but i ∉ adj(j).
//   - ErrDuplicateBond:   the same pair appears twice.
//   - ErrEmptyCode:       an atom has no identity code.
//   - ErrBadCode:         a code contains one of ReservedCodeChars.
//   - ErrUnknownElement:  an element symbol is not in the periodic table.
//   - ErrNoRadius:        no covalent radius is tabulated for the element.
package molecule
