// Package xyz reads molecules from XYZ coordinate files.
//
// Two layouts are accepted:
//
//	3                       ← atom count (optional)
//	water, from a DFT run   ← free comment, present iff the count is
//	O  0.000  0.000  0.117
//	H  0.000  0.757 -0.470
//	H  0.000 -0.757 -0.470
//
// and the bare form with element records only. Tokens after the third
// coordinate of a record (charges, forces) are ignored. Blank lines between
// records are skipped.
package xyz

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/atommap/molecule"
)

var (
	// ErrSyntax indicates input that is not an XYZ file.
	ErrSyntax = errors.New("xyz: malformed input")

	// ErrCountMismatch indicates a count line that disagrees with the records.
	ErrCountMismatch = errors.New("xyz: atom count does not match records")
)

// xyzFile is the grammar root.
type xyzFile struct {
	Count   *int      `parser:"( @Number EOL (~EOL)* EOL )?"`
	Records []*record `parser:"( @@ | EOL )*"`
}

// record is one "Symbol x y z" line.
type record struct {
	Symbol string  `parser:"@Ident"`
	X      float64 `parser:"@Number"`
	Y      float64 `parser:"@Number"`
	Z      float64 `parser:"@Number (~EOL)*"`
}

var xyzLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[^\s]`},
})

var xyzParser = participle.MustBuild[xyzFile](
	participle.Lexer(xyzLexer),
	participle.Elide("Whitespace"),
)

// Parse reads atoms from r. Element symbols are normalized ("CL" → "Cl").
//
// Returns ErrSyntax for unparsable input, ErrCountMismatch when the count
// line disagrees with the records and molecule.ErrUnknownElement for an
// unrecognized symbol.
func Parse(r io.Reader) ([]molecule.Atom, error) {
	f, err := xyzParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	return f.atoms()
}

// ParseString is Parse over a string.
func ParseString(s string) ([]molecule.Atom, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile parses the file at path and derives its bonds from geometry.
func ReadFile(path string, opts ...molecule.BondOption) (*molecule.Molecule, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "xyz: open")
	}
	defer fh.Close()

	atoms, err := Parse(fh)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	m, err := molecule.FromGeometry(atoms, opts...)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return m, nil
}

func (f *xyzFile) atoms() ([]molecule.Atom, error) {
	if f.Count != nil && *f.Count != len(f.Records) {
		return nil, errors.Wrapf(ErrCountMismatch, "count line says %d, found %d", *f.Count, len(f.Records))
	}
	atoms := make([]molecule.Atom, len(f.Records))
	for i, rec := range f.Records {
		a, err := molecule.NewAtom(rec.Symbol, rec.X, rec.Y, rec.Z)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i+1)
		}
		atoms[i] = a
	}
	return atoms, nil
}
