package xyz_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atommap/molecule"
	"github.com/katalvlaran/atommap/xyz"
)

const waterXYZ = `3
water, r(OH) = 0.96 A
O   0.000000   0.000000   0.117300
H   0.000000   0.757200  -0.469200
H   0.000000  -0.757200  -0.469200
`

func TestParse_StandardLayout(t *testing.T) {
	atoms, err := xyz.ParseString(waterXYZ)
	require.NoError(t, err)
	require.Len(t, atoms, 3)

	assert.Equal(t, "O", atoms[0].Element)
	assert.Equal(t, "08", atoms[0].Code)
	assert.InDelta(t, 0.1173, atoms[0].Z, 1e-9)
	assert.Equal(t, "H", atoms[2].Element)
	assert.InDelta(t, -0.7572, atoms[2].Y, 1e-9)
}

func TestParse_BareRecords(t *testing.T) {
	atoms, err := xyz.ParseString("C 0 0 0\n\ncl 1.76 0 0")
	require.NoError(t, err)
	require.Len(t, atoms, 2)
	assert.Equal(t, "Cl", atoms[1].Element)
	assert.Equal(t, "17", atoms[1].Code)
}

func TestParse_ExtraColumnsAndExponents(t *testing.T) {
	atoms, err := xyz.ParseString("2\n\nN 1e-1 -.5 +2 0.33 charge\nN 0.1 -0.5 3.1\r\n")
	require.NoError(t, err)
	require.Len(t, atoms, 2)
	assert.InDelta(t, 0.1, atoms[0].X, 1e-12)
	assert.InDelta(t, -0.5, atoms[0].Y, 1e-12)
	assert.InDelta(t, 2.0, atoms[0].Z, 1e-12)
}

func TestParse_Errors(t *testing.T) {
	_, err := xyz.ParseString("4\ncomment\nO 0 0 0\n")
	assert.True(t, errors.Is(err, xyz.ErrCountMismatch), "got %v", err)

	_, err = xyz.ParseString("O 0 0\n")
	assert.True(t, errors.Is(err, xyz.ErrSyntax), "got %v", err)

	_, err = xyz.ParseString("Xx 0 0 0\n")
	assert.True(t, errors.Is(err, molecule.ErrUnknownElement), "got %v", err)
}

func TestParse_Empty(t *testing.T) {
	atoms, err := xyz.ParseString("")
	require.NoError(t, err)
	assert.Empty(t, atoms)

	atoms, err = xyz.ParseString("0\nnothing here\n")
	require.NoError(t, err)
	assert.Empty(t, atoms)
}

func TestReadFile_DerivesBonds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "water.xyz")
	require.NoError(t, os.WriteFile(path, []byte(waterXYZ), 0o644))

	m, err := xyz.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}}, m.Bonds())

	_, err = xyz.ReadFile(filepath.Join(t.TempDir(), "missing.xyz"))
	assert.Error(t, err)
}
