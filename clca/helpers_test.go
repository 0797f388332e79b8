package clca_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atommap/clca"
	"github.com/katalvlaran/atommap/molecule"
)

// build constructs a molecule from element symbols and bonds.
func build(t testing.TB, symbols []string, bonds [][2]int) *molecule.Molecule {
	t.Helper()
	atoms := make([]molecule.Atom, len(symbols))
	for i, s := range symbols {
		a, err := molecule.NewAtom(s, float64(i), 0, 0)
		require.NoError(t, err)
		atoms[i] = a
	}
	m, err := molecule.New(atoms, bonds)
	require.NoError(t, err)
	return m
}

// permute returns a copy of (symbols, bonds) where new atom k is old atom
// order[k]. The returned map sends old indices to new ones.
func permute(symbols []string, bonds [][2]int, order []int) ([]string, [][2]int, map[int]int) {
	oldToNew := make(map[int]int, len(order))
	out := make([]string, len(order))
	for k, old := range order {
		out[k] = symbols[old]
		oldToNew[old] = k
	}
	nb := make([][2]int, len(bonds))
	for i, b := range bonds {
		nb[i] = [2]int{oldToNew[b[0]], oldToNew[b[1]]}
	}
	return out, nb, oldToNew
}

// Common fixtures (heavy atoms only).
var (
	// C0–C1–C2–C3–O4: two inner carbons need a second round.
	butanolSymbols = []string{"C", "C", "C", "C", "O"}
	butanolBonds   = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}

	// C0–C1–C2–C3–N4: same skeleton, different heteroatom.
	butylamineSymbols = []string{"C", "C", "C", "C", "N"}
	butylamineBonds   = butanolBonds

	// Toluene ring C0..C5 with methyl C6 on C0.
	tolueneSymbols = []string{"C", "C", "C", "C", "C", "C", "C"}
	tolueneBonds   = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 6}}
)

// mustMatch runs Match and fails the test on error.
func mustMatch(t testing.TB, a, b *molecule.Molecule, opts ...clca.Option) *clca.Result {
	t.Helper()
	res, err := clca.Match(a, b, opts...)
	require.NoError(t, err)
	return res
}

// stripRunID zeroes the only run-dependent field so results compare by value.
func stripRunID(r *clca.Result) *clca.Result {
	cp := *r
	cp.RunID = uuid.Nil
	return &cp
}
