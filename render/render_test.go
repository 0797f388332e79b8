package render_test

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atommap/clca"
	"github.com/katalvlaran/atommap/molecule"
	"github.com/katalvlaran/atommap/render"
)

func water(t *testing.T) *molecule.Molecule {
	t.Helper()
	var atoms []molecule.Atom
	for _, r := range []struct {
		el      string
		x, y, z float64
	}{
		{"O", 0, 0.1173, 0},
		{"H", 0.7572, -0.4692, 0},
		{"H", -0.7572, -0.4692, 0},
	} {
		a, err := molecule.NewAtom(r.el, r.x, r.y, r.z)
		require.NoError(t, err)
		atoms = append(atoms, a)
	}
	m, err := molecule.FromGeometry(atoms)
	require.NoError(t, err)
	return m
}

func single(t *testing.T, el string) *molecule.Molecule {
	t.Helper()
	a, err := molecule.NewAtom(el, 3, 4, 5)
	require.NoError(t, err)
	m, err := molecule.New([]molecule.Atom{a}, nil)
	require.NoError(t, err)
	return m
}

func TestRender_CanvasAndEncoding(t *testing.T) {
	m := water(t)
	res, err := clca.Match(m, m)
	require.NoError(t, err)

	img, err := render.Render(m, m, res, render.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	path := filepath.Join(t.TempDir(), "water.png")
	require.NoError(t, render.SavePNG(path, img))
}

func TestRender_SingleAtomIsCenteredInItsPanel(t *testing.T) {
	o, n := single(t, "O"), single(t, "N")
	res, err := clca.Match(o, n)
	require.NoError(t, err)

	opts := render.Options{Width: 400, Height: 200, Margin: 20, AtomRadius: 10}
	img, err := render.Render(o, n, res, opts)
	require.NoError(t, err)

	r, g, b, _ := img.At(100, 100).RGBA()
	assert.Equal(t, [3]uint32{0xff, 0, 0}, [3]uint32{r >> 8, g >> 8, b >> 8}, "oxygen is red")
	r, g, b, _ = img.At(300, 100).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0xff}, [3]uint32{r >> 8, g >> 8, b >> 8}, "nitrogen is blue")
}

func TestRender_Errors(t *testing.T) {
	m := water(t)
	res, err := clca.Match(m, m)
	require.NoError(t, err)
	empty := &molecule.Molecule{}

	_, err = render.Render(empty, m, res, render.DefaultOptions())
	assert.True(t, errors.Is(err, render.ErrNoAtoms))

	_, err = render.Render(m, nil, res, render.DefaultOptions())
	assert.True(t, errors.Is(err, render.ErrNoAtoms))

	_, err = render.Render(m, single(t, "C"), res, render.DefaultOptions())
	assert.True(t, errors.Is(err, render.ErrResultMismatch))

	_, err = render.Render(m, m, nil, render.DefaultOptions())
	assert.True(t, errors.Is(err, render.ErrResultMismatch))

	for _, bad := range []render.Options{
		{Width: 0, Height: 100, AtomRadius: 5},
		{Width: 100, Height: 100, AtomRadius: 0},
		{Width: 100, Height: 100, Margin: 30, AtomRadius: 5},
	} {
		_, err = render.Render(m, m, res, bad)
		assert.True(t, errors.Is(err, render.ErrBadOptions), "%+v", bad)
	}
}
