package molecule

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// atomicNumbers maps element symbols to atomic numbers.
var atomicNumbers = map[string]int{
	"D": 1,
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9, "Ne": 10, "Na": 11,
	"Mg": 12, "Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17, "Ar": 18, "K": 19, "Ca": 20, "Sc": 21,
	"Ti": 22, "V": 23, "Cr": 24, "Mn": 25, "Fe": 26, "Co": 27, "Ni": 28, "Cu": 29, "Zn": 30, "Ga": 31,
	"Ge": 32, "As": 33, "Se": 34, "Br": 35, "Kr": 36, "Rb": 37, "Sr": 38, "Y": 39, "Zr": 40, "Nb": 41,
	"Mo": 42, "Tc": 43, "Ru": 44, "Rh": 45, "Pd": 46, "Ag": 47, "Cd": 48, "In": 49, "Sn": 50,
	"Sb": 51, "Te": 52, "I": 53, "Xe": 54, "Cs": 55, "Ba": 56, "La": 57, "Ce": 58, "Pr": 59, "Nd": 60,
	"Pm": 61, "Sm": 62, "Eu": 63, "Gd": 64, "Tb": 65, "Dy": 66, "Ho": 67, "Er": 68, "Tm": 69,
	"Yb": 70, "Lu": 71, "Hf": 72, "Ta": 73, "W": 74, "Re": 75, "Os": 76, "Ir": 77, "Pt": 78, "Au": 79,
	"Hg": 80, "Tl": 81, "Pb": 82, "Bi": 83, "Po": 84, "At": 85, "Rn": 86, "Fr": 87, "Ra": 88,
	"Ac": 89, "Th": 90, "Pa": 91, "U": 92, "Np": 93, "Pu": 94, "Am": 95, "Cm": 96, "Bk": 97, "Cf": 98,
	"Es": 99, "Fm": 100, "Md": 101, "No": 102, "Lr": 103, "Rf": 104, "Db": 105, "Sg": 106, "Bh": 107,
	"Hs": 108, "Mt": 109, "Ds": 110, "Rg": 111, "Cn": 112, "Nh": 113, "Fl": 114, "Mc": 115, "Lv": 116,
	"Ts": 117, "Og": 118,
}

// covalentRadii holds covalent radii in Å used for bond derivation.
// Deuterium is listed separately from hydrogen.
var covalentRadii = map[string]float64{
	"Ac": 1.88, "Ag": 1.59, "Al": 1.35, "Am": 1.51, "As": 1.21, "Au": 1.50, "B": 0.83, "Ba": 1.34,
	"Be": 0.35, "Bi": 1.54, "Br": 1.21, "C": 0.68, "Ca": 0.99, "Cd": 1.69, "Ce": 1.83, "Cl": 0.99,
	"Co": 1.33, "Cr": 1.35, "Cs": 1.67, "Cu": 1.52, "D": 0.23, "Dy": 1.75, "Er": 1.73, "Eu": 1.99,
	"F": 0.64, "Fe": 1.34, "Ga": 1.22, "Gd": 1.79, "Ge": 1.17, "H": 0.23, "Hf": 1.57, "Hg": 1.70,
	"Ho": 1.74, "I": 1.40, "In": 1.63, "Ir": 1.32, "K": 1.33, "La": 1.87, "Li": 0.68, "Lu": 1.72,
	"Mg": 1.10, "Mn": 1.35, "Mo": 1.47, "N": 0.68, "Na": 0.97, "Nb": 1.48, "Nd": 1.81, "Ni": 1.50,
	"Np": 1.55, "O": 0.68, "Os": 1.37, "P": 1.05, "Pa": 1.61, "Pb": 1.54, "Pd": 1.50, "Pm": 1.80,
	"Po": 1.68, "Pr": 1.82, "Pt": 1.50, "Pu": 1.53, "Ra": 1.90, "Rb": 1.47, "Re": 1.35, "Rh": 1.45,
	"Ru": 1.40, "S": 1.02, "Sb": 1.46, "Sc": 1.44, "Se": 1.22, "Si": 1.20, "Sm": 1.80, "Sn": 1.46,
	"Sr": 1.12, "Ta": 1.43, "Tb": 1.76, "Tc": 1.35, "Te": 1.47, "Th": 1.79, "Ti": 1.47, "Tl": 1.55,
	"Tm": 1.72, "U": 1.58, "V": 1.33, "W": 1.37, "Y": 1.78, "Yb": 1.94, "Zn": 1.45, "Zr": 1.56,
}

// NormalizeSymbol canonicalizes an element symbol's case: "CL" and "cl" become "Cl".
func NormalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return ""
	}
	return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
}

// AtomicNumber returns the atomic number of symbol.
func AtomicNumber(symbol string) (int, error) {
	z, ok := atomicNumbers[NormalizeSymbol(symbol)]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownElement, "%q", symbol)
	}
	return z, nil
}

// IdentityCode returns the identity code for symbol: its atomic number,
// zero-padded to two digits ("H" → "01", "C" → "06", "Md" → "101").
// Isotopes share the code of their element.
func IdentityCode(symbol string) (string, error) {
	z, err := AtomicNumber(symbol)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d", z), nil
}

// CovalentRadius returns the covalent radius of symbol in Å.
func CovalentRadius(symbol string) (float64, error) {
	norm := NormalizeSymbol(symbol)
	if _, ok := atomicNumbers[norm]; !ok {
		return 0, errors.Wrapf(ErrUnknownElement, "%q", symbol)
	}
	r, ok := covalentRadii[norm]
	if !ok {
		return 0, errors.Wrapf(ErrNoRadius, "%q", symbol)
	}
	return r, nil
}

// NewAtom returns an Atom for symbol at (x, y, z) with its identity code filled in.
func NewAtom(symbol string, x, y, z float64) (Atom, error) {
	code, err := IdentityCode(symbol)
	if err != nil {
		return Atom{}, err
	}
	return Atom{Element: NormalizeSymbol(symbol), Code: code, X: x, Y: y, Z: z}, nil
}
