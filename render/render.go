// Package render draws a Match result as a two-panel PNG: molecule A on the
// left, molecule B on the right, each as an orthographic x/y projection.
//
// Atoms are filled with their CPK color and labelled "El (k)" in red when
// matched, where k is the normalized color shared with the partner atom.
// Unmatched atoms read "El (s)" and unresolved ones "El (-)", both in black.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/katalvlaran/atommap/clca"
	"github.com/katalvlaran/atommap/molecule"
)

var (
	// ErrNoAtoms indicates a molecule with nothing to draw.
	ErrNoAtoms = errors.New("render: molecule has no atoms")

	// ErrBadOptions indicates a non-positive canvas size or a margin that
	// leaves no room for the panels.
	ErrBadOptions = errors.New("render: invalid options")

	// ErrResultMismatch indicates a result computed for different molecules.
	ErrResultMismatch = errors.New("render: result does not fit molecules")
)

// Options controls the canvas.
type Options struct {
	Width, Height int     // canvas size in pixels, both panels
	Margin        float64 // inner padding of each panel
	AtomRadius    float64 // disc radius in pixels
}

// DefaultOptions returns a 1200×600 canvas with 40px margins and 8px atoms.
func DefaultOptions() Options {
	return Options{Width: 1200, Height: 600, Margin: 40, AtomRadius: 8}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Wrapf(ErrBadOptions, "canvas %dx%d", o.Width, o.Height)
	}
	if o.AtomRadius <= 0 {
		return errors.Wrapf(ErrBadOptions, "atom radius %g", o.AtomRadius)
	}
	if o.Margin < 0 || 2*o.Margin >= float64(o.Width)/2 || 2*o.Margin >= float64(o.Height) {
		return errors.Wrapf(ErrBadOptions, "margin %g on %dx%d", o.Margin, o.Width, o.Height)
	}
	return nil
}

// Render draws a and b side by side, annotated with res.
func Render(a, b *molecule.Molecule, res *clca.Result, opts Options) (image.Image, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if a == nil || a.Len() == 0 {
		return nil, errors.Wrap(ErrNoAtoms, "molecule A")
	}
	if b == nil || b.Len() == 0 {
		return nil, errors.Wrap(ErrNoAtoms, "molecule B")
	}
	if res == nil || len(res.A) != a.Len() || len(res.B) != b.Len() {
		return nil, ErrResultMismatch
	}
	norm := res.Normalized()

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	pw := float64(opts.Width) / 2
	ph := float64(opts.Height)
	drawPanel(dc, a, norm.A, panel{x0: 0, w: pw, h: ph}, opts, "A")
	drawPanel(dc, b, norm.B, panel{x0: pw, w: pw, h: ph}, opts, "B")

	dc.SetHexColor("#C0C0C0")
	dc.SetLineWidth(1)
	dc.DrawLine(pw, 0, pw, ph)
	dc.Stroke()

	return dc.Image(), nil
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "render: encode png")
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	return errors.Wrap(gg.SavePNG(path, img), "render: save png")
}

// panel is one half of the canvas.
type panel struct {
	x0, w, h float64
}

// projection maps molecule x/y onto a panel, preserving aspect ratio.
type projection struct {
	cx, cy float64 // molecule bounding-box center
	px, py float64 // panel center
	scale  float64
}

func newProjection(m *molecule.Molecule, p panel, margin float64) projection {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, at := range m.Atoms() {
		minX, maxX = math.Min(minX, at.X), math.Max(maxX, at.X)
		minY, maxY = math.Min(minY, at.Y), math.Max(maxY, at.Y)
	}

	scale := math.Inf(1)
	if rx := maxX - minX; rx > 0 {
		scale = (p.w - 2*margin) / rx
	}
	if ry := maxY - minY; ry > 0 {
		scale = math.Min(scale, (p.h-2*margin)/ry)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	return projection{
		cx: (minX + maxX) / 2, cy: (minY + maxY) / 2,
		px: p.x0 + p.w/2, py: p.h / 2,
		scale: scale,
	}
}

// at returns the canvas position of an atom. Canvas y grows downwards.
func (pr projection) at(a molecule.Atom) (float64, float64) {
	return pr.px + (a.X-pr.cx)*pr.scale, pr.py - (a.Y-pr.cy)*pr.scale
}

func drawPanel(dc *gg.Context, m *molecule.Molecule, colors []clca.AtomColor, p panel, opts Options, title string) {
	pr := newProjection(m, p, opts.Margin)
	atoms := m.Atoms()

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%s: %d atoms, %d bonds, %d fragments", title, m.Len(), m.BondCount(), len(m.Components())), p.x0+8, 8, 0, 1)

	dc.SetHexColor("#808080")
	dc.SetLineWidth(opts.AtomRadius / 3)
	for _, bd := range m.Bonds() {
		x1, y1 := pr.at(atoms[bd[0]])
		x2, y2 := pr.at(atoms[bd[1]])
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	for i, at := range atoms {
		x, y := pr.at(at)
		dc.DrawCircle(x, y, opts.AtomRadius)
		dc.SetHexColor(cpkColor(at.Element))
		dc.FillPreserve()
		dc.SetHexColor("#D3D3D3")
		dc.SetLineWidth(1.5)
		dc.Stroke()

		text, matched := atomLabel(at.Element, colors[i])
		if matched {
			dc.SetRGB(1, 0, 0)
		} else {
			dc.SetRGB(0, 0, 0)
		}
		dc.DrawStringAnchored(text, x, y-opts.AtomRadius-2, 0.5, 0)
	}
}

// atomLabel returns the annotation for one atom and whether it is matched.
func atomLabel(element string, ac clca.AtomColor) (string, bool) {
	switch ac.State {
	case clca.FrozenMatched:
		return fmt.Sprintf("%s (%d)", element, ac.Color), true
	case clca.FrozenUnmatched:
		return element + " (s)", false
	default:
		return element + " (-)", false
	}
}
