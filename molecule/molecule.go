package molecule

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// New builds a Molecule from atoms and an undirected bond list.
// Each bond {i, j} is stored in both directions.
//
// Returns ErrEmptyCode, ErrBadCode, ErrIndexOutOfRange, ErrSelfLoop or ErrDuplicateBond
// (wrapped with the offending indices) on invalid input.
// Complexity: O(N + B·log B).
func New(atoms []Atom, bonds [][2]int) (*Molecule, error) {
	if err := checkCodes(atoms); err != nil {
		return nil, err
	}

	n := len(atoms)
	adj := make([][]int, n)
	seen := make(map[[2]int]struct{}, len(bonds))
	for k, b := range bonds {
		i, j := b[0], b[1]
		if i < 0 || i >= n || j < 0 || j >= n {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "bond %d: {%d, %d} with %d atoms", k, i, j, n)
		}
		if i == j {
			return nil, errors.Wrapf(ErrSelfLoop, "bond %d: atom %d", k, i)
		}
		key := [2]int{i, j}
		if i > j {
			key = [2]int{j, i}
		}
		if _, dup := seen[key]; dup {
			return nil, errors.Wrapf(ErrDuplicateBond, "bond %d: {%d, %d}", k, i, j)
		}
		seen[key] = struct{}{}
		adj[i] = append(adj[i], j)
		adj[j] = append(adj[j], i)
	}
	for i := range adj {
		sort.Ints(adj[i])
	}

	return &Molecule{atoms: cloneAtoms(atoms), adj: adj}, nil
}

// FromAdjacency builds a Molecule from explicit neighbor lists.
// adj must have one entry per atom and describe a symmetric, irreflexive
// relation without repeated neighbors; a nil adj means no bonds.
func FromAdjacency(atoms []Atom, adj [][]int) (*Molecule, error) {
	if err := checkCodes(atoms); err != nil {
		return nil, err
	}
	if adj != nil && len(adj) != len(atoms) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "adjacency has %d rows for %d atoms", len(adj), len(atoms))
	}

	m := &Molecule{atoms: cloneAtoms(atoms), adj: make([][]int, len(atoms))}
	for i := range adj {
		m.adj[i] = append([]int(nil), adj[i]...)
		sort.Ints(m.adj[i])
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate re-checks the adjacency contract: in-range, irreflexive,
// duplicate-free and symmetric. Molecules from New/FromAdjacency always pass;
// the check exists so consumers can fail fast on hand-built values.
// Complexity: O(N + B).
func (m *Molecule) Validate() error {
	if err := checkCodes(m.atoms); err != nil {
		return err
	}
	n := len(m.atoms)
	if len(m.adj) > n {
		return errors.Wrapf(ErrIndexOutOfRange, "adjacency has %d rows for %d atoms", len(m.adj), n)
	}

	for i, nbrs := range m.adj {
		for k, j := range nbrs {
			if j < 0 || j >= n {
				return errors.Wrapf(ErrIndexOutOfRange, "atom %d: neighbor %d with %d atoms", i, j, n)
			}
			if j == i {
				return errors.Wrapf(ErrSelfLoop, "atom %d", i)
			}
			if k > 0 && nbrs[k-1] == j {
				return errors.Wrapf(ErrDuplicateBond, "atom %d: neighbor %d repeated", i, j)
			}
			if !m.bonded(j, i) {
				return errors.Wrapf(ErrAsymmetric, "%d lists %d but not vice versa", i, j)
			}
		}
	}

	return nil
}

// bonded reports whether j is in the sorted neighbor list of i.
func (m *Molecule) bonded(i, j int) bool {
	if i >= len(m.adj) {
		return false
	}
	nbrs := m.adj[i]
	k := sort.SearchInts(nbrs, j)
	return k < len(nbrs) && nbrs[k] == j
}

// Len returns the number of atoms.
func (m *Molecule) Len() int {
	return len(m.atoms)
}

// Atom returns atom i. It panics if i is out of range, like a slice index.
func (m *Molecule) Atom(i int) Atom {
	return m.atoms[i]
}

// Atoms returns a copy of the atom list.
func (m *Molecule) Atoms() []Atom {
	return cloneAtoms(m.atoms)
}

// Codes returns the identity code of every atom, in atom order.
func (m *Molecule) Codes() []string {
	codes := make([]string, len(m.atoms))
	for i, a := range m.atoms {
		codes[i] = a.Code
	}
	return codes
}

// Neighbors returns a sorted copy of the neighbor indices of atom i.
func (m *Molecule) Neighbors(i int) []int {
	if i < 0 || i >= len(m.adj) {
		return nil
	}
	return append([]int(nil), m.adj[i]...)
}

// Degree returns the number of bonds of atom i.
func (m *Molecule) Degree(i int) int {
	if i < 0 || i >= len(m.adj) {
		return 0
	}
	return len(m.adj[i])
}

// Bonds returns every bond once as {i, j} with i < j, sorted.
func (m *Molecule) Bonds() [][2]int {
	var out [][2]int
	for i, nbrs := range m.adj {
		for _, j := range nbrs {
			if i < j {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// BondCount returns the number of undirected bonds.
func (m *Molecule) BondCount() int {
	total := 0
	for _, nbrs := range m.adj {
		total += len(nbrs)
	}
	return total / 2
}

// ReservedCodeChars may not appear in an identity code. Label texts and
// cache keys join codes with them.
const ReservedCodeChars = "|,#; \t\r\n"

func checkCodes(atoms []Atom) error {
	for i, a := range atoms {
		if a.Code == "" {
			return errors.Wrapf(ErrEmptyCode, "atom %d (%q)", i, a.Element)
		}
		if strings.ContainsAny(a.Code, ReservedCodeChars) {
			return errors.Wrapf(ErrBadCode, "atom %d (%q): %q", i, a.Element, a.Code)
		}
	}
	return nil
}

func cloneAtoms(atoms []Atom) []Atom {
	if atoms == nil {
		return nil
	}
	return append([]Atom(nil), atoms...)
}
