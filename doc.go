// Package atommap maps atoms between two molecules by cross-graph color
// refinement (CLCA): every atom receives a structural color, computed jointly
// for both molecules, until enough atoms are uniquely identifiable to pair
// them one-to-one.
//
// What is in the box?
//
//	molecule/     Atom, Molecule, element tables, bond derivation from geometry
//	xyz/          XYZ coordinate file parser
//	clca/         the refinement core: labels, partition, colors, mapping
//	render/       two-panel PNG of a matched pair
//	cache/        persistent result store keyed by structure
//	cmd/atommap/  command-line front end
//
// Quick example:
//
//	    A: C0─C1─C2─C3─O4        B: O0─C3─C1─C4─C2
//
//	clca.Match(A, B) pairs 0→2, 1→4, 2→1, 3→3, 4→0 after two rounds.
//	Atoms in symmetric positions (the two H of water, ortho carbons of a
//	ring) are left unmapped rather than paired arbitrarily.
//
//	go install github.com/katalvlaran/atommap/cmd/atommap@latest
package atommap
