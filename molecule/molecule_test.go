package molecule_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atommap/molecule"
)

// mustAtoms builds atoms at the origin for the given element symbols.
func mustAtoms(t *testing.T, symbols ...string) []molecule.Atom {
	t.Helper()
	atoms := make([]molecule.Atom, len(symbols))
	for i, s := range symbols {
		a, err := molecule.NewAtom(s, 0, 0, 0)
		require.NoError(t, err)
		atoms[i] = a
	}
	return atoms
}

func TestNew_BuildsSymmetricSortedAdjacency(t *testing.T) {
	// Ethanol heavy-atom skeleton C–C–O with bonds given out of order.
	m, err := molecule.New(mustAtoms(t, "C", "C", "O"), [][2]int{{2, 1}, {0, 1}})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 2, m.BondCount())
	assert.Equal(t, []int{0, 2}, m.Neighbors(1))
	assert.Equal(t, []int{1}, m.Neighbors(0))
	assert.Equal(t, []int{1}, m.Neighbors(2))
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, m.Bonds())
	assert.Equal(t, []string{"06", "06", "08"}, m.Codes())
	assert.NoError(t, m.Validate())
}

func TestNew_RejectsInvalidBonds(t *testing.T) {
	atoms := mustAtoms(t, "C", "O")
	cases := []struct {
		name  string
		bonds [][2]int
		want  error
	}{
		{"out of range", [][2]int{{0, 2}}, molecule.ErrIndexOutOfRange},
		{"negative index", [][2]int{{-1, 0}}, molecule.ErrIndexOutOfRange},
		{"self loop", [][2]int{{1, 1}}, molecule.ErrSelfLoop},
		{"duplicate", [][2]int{{0, 1}, {1, 0}}, molecule.ErrDuplicateBond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := molecule.New(atoms, tc.bonds)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestNew_RejectsEmptyCode(t *testing.T) {
	_, err := molecule.New([]molecule.Atom{{Element: "C"}}, nil)
	assert.True(t, errors.Is(err, molecule.ErrEmptyCode), "got %v", err)
}

func TestNew_RejectsReservedCodeChars(t *testing.T) {
	for _, code := range []string{"B,C", "06|08", "06#2", "06;0-1", "0 6", "06\n"} {
		t.Run(code, func(t *testing.T) {
			atoms := []molecule.Atom{{Element: "X", Code: "X"}, {Element: "B", Code: code}}

			_, err := molecule.New(atoms, [][2]int{{0, 1}})
			assert.True(t, errors.Is(err, molecule.ErrBadCode), "New: got %v", err)

			_, err = molecule.FromAdjacency(atoms, [][]int{{1}, {0}})
			assert.True(t, errors.Is(err, molecule.ErrBadCode), "FromAdjacency: got %v", err)
		})
	}

	// An X bonded to one "B,C" atom would read like an X bonded to "B" and "C".
	atoms := []molecule.Atom{{Element: "X", Code: "X"}, {Element: "B", Code: "B"}, {Element: "C", Code: "C"}}
	_, err := molecule.New(atoms, [][2]int{{0, 1}, {0, 2}})
	assert.NoError(t, err, "codes without reserved characters are accepted")
}

func TestFromAdjacency(t *testing.T) {
	atoms := mustAtoms(t, "N", "H", "H")

	m, err := molecule.FromAdjacency(atoms, [][]int{{2, 1}, {0}, {0}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, m.Neighbors(0))

	_, err = molecule.FromAdjacency(atoms, [][]int{{1, 2}, {0}, {}})
	assert.True(t, errors.Is(err, molecule.ErrAsymmetric), "got %v", err)

	_, err = molecule.FromAdjacency(atoms, [][]int{{1, 1}, {0}, {}})
	assert.True(t, errors.Is(err, molecule.ErrDuplicateBond), "got %v", err)

	_, err = molecule.FromAdjacency(atoms, [][]int{{0}, {}, {}})
	assert.True(t, errors.Is(err, molecule.ErrSelfLoop), "got %v", err)

	_, err = molecule.FromAdjacency(atoms, [][]int{{5}, {}, {}})
	assert.True(t, errors.Is(err, molecule.ErrIndexOutOfRange), "got %v", err)

	_, err = molecule.FromAdjacency(atoms, [][]int{{}})
	assert.True(t, errors.Is(err, molecule.ErrIndexOutOfRange), "got %v", err)

	isolated, err := molecule.FromAdjacency(atoms, nil)
	require.NoError(t, err)
	assert.Zero(t, isolated.BondCount())
}

func TestMolecule_ZeroValueIsEmpty(t *testing.T) {
	var m molecule.Molecule
	assert.Zero(t, m.Len())
	assert.Nil(t, m.Neighbors(0))
	assert.Empty(t, m.Bonds())
	assert.NoError(t, m.Validate())
}

func TestMolecule_AccessorsReturnCopies(t *testing.T) {
	m, err := molecule.New(mustAtoms(t, "C", "O"), [][2]int{{0, 1}})
	require.NoError(t, err)

	nbrs := m.Neighbors(0)
	nbrs[0] = 99
	assert.Equal(t, []int{1}, m.Neighbors(0))

	atoms := m.Atoms()
	atoms[0].Code = "xx"
	assert.Equal(t, "06", m.Atom(0).Code)
}

func TestElements(t *testing.T) {
	code, err := molecule.IdentityCode("C")
	require.NoError(t, err)
	assert.Equal(t, "06", code)

	code, err = molecule.IdentityCode("cl")
	require.NoError(t, err)
	assert.Equal(t, "17", code)

	code, err = molecule.IdentityCode("Md")
	require.NoError(t, err)
	assert.Equal(t, "101", code)

	d, err := molecule.IdentityCode("D")
	require.NoError(t, err)
	assert.Equal(t, "01", d)

	_, err = molecule.IdentityCode("Xx")
	assert.True(t, errors.Is(err, molecule.ErrUnknownElement), "got %v", err)

	r, err := molecule.CovalentRadius("O")
	require.NoError(t, err)
	assert.InDelta(t, 0.68, r, 1e-9)

	_, err = molecule.CovalentRadius("He")
	assert.True(t, errors.Is(err, molecule.ErrNoRadius), "got %v", err)

	assert.Equal(t, "Br", molecule.NormalizeSymbol(" BR "))
}

func TestMolecule_Components(t *testing.T) {
	// 0–1–2 chain, isolated 3, 4–5 pair.
	m, err := molecule.New(mustAtoms(t, "C", "C", "O", "Na", "H", "Cl"), [][2]int{{2, 1}, {0, 1}, {4, 5}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}, {4, 5}}, m.Components())

	var empty molecule.Molecule
	assert.Empty(t, empty.Components())
}
