package clca

import (
	"sort"
	"strings"

	"github.com/katalvlaran/atommap/molecule"
)

// Separators of the label text grammar:
//
//	round 0:  code ( "|" nbrCode ("," nbrCode)* )?
//	round r:  round0 "#" selfColor "#" nbrColor ("," nbrColor)*
//
// molecule.Validate rejects codes containing a separator, so a text splits
// back into its parts in exactly one way.
const (
	codeSep     = "|"
	neighborSep = ","
	colorSep    = "#"
)

// initialLabels returns the round-0 text of every atom of m: the atom's own
// identity code followed by its neighbors' codes in lexicographic order.
// An isolated atom's text is its code alone.
// Complexity: O(N + B·log B).
func initialLabels(m *molecule.Molecule) []string {
	texts := make([]string, m.Len())
	var nbrCodes []string
	for i := range texts {
		nbrCodes = nbrCodes[:0]
		for _, j := range m.Neighbors(i) {
			nbrCodes = append(nbrCodes, m.Atom(j).Code)
		}
		if len(nbrCodes) == 0 {
			texts[i] = m.Atom(i).Code
			continue
		}
		sort.Strings(nbrCodes)
		texts[i] = m.Atom(i).Code + codeSep + strings.Join(nbrCodes, neighborSep)
	}
	return texts
}
