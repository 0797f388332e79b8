package clca

import (
	"sort"

	"github.com/pkg/errors"
)

// extractMapping pairs every FrozenMatched atom of a with the FrozenMatched
// atom of b carrying the same color. FrozenUnmatched and Unresolved atoms
// never appear, even when several of them share a state across molecules.
// Returns ErrColorMismatch if a matched color is not held by exactly one
// atom on each side. The pairs are sorted by A index.
// Complexity: O(N log N).
func extractMapping(a, b []Label) ([]Pair, error) {
	byColor := make(map[uint64]int)
	for j, l := range b {
		if l.State != FrozenMatched {
			continue
		}
		if prev, dup := byColor[l.Color]; dup {
			return nil, errors.Wrapf(ErrColorMismatch, "color %d on B atoms %d and %d", l.Color, prev, j)
		}
		byColor[l.Color] = j
	}

	pairs := make([]Pair, 0, len(byColor))
	for i, l := range a {
		if l.State != FrozenMatched {
			continue
		}
		j, ok := byColor[l.Color]
		if !ok {
			return nil, errors.Wrapf(ErrColorMismatch, "color %d of A atom %d has no partner", l.Color, i)
		}
		delete(byColor, l.Color)
		pairs = append(pairs, Pair{A: i, B: j})
	}
	if len(byColor) > 0 {
		return nil, errors.Wrapf(ErrColorMismatch, "%d matched B atoms without an A partner", len(byColor))
	}

	return pairs, nil
}

// atomColors converts final labels to their public form.
func atomColors(labels []Label) []AtomColor {
	out := make([]AtomColor, len(labels))
	for i, l := range labels {
		out[i] = AtomColor{State: l.State}
		if l.State == FrozenMatched {
			out[i].Color = l.Color
			out[i].Matched = true
		}
	}
	return out
}

// Inverse returns the result seen from molecule B: A and B swapped and the
// mapping inverted. The receiver is not modified.
func (r *Result) Inverse() *Result {
	inv := &Result{
		RunID:   r.RunID,
		A:       append([]AtomColor(nil), r.B...),
		B:       append([]AtomColor(nil), r.A...),
		Mapping: make(map[int]int, len(r.Pairs)),
		Pairs:   make([]Pair, len(r.Pairs)),
		Rounds:  r.Rounds,
	}
	for k, p := range r.Pairs {
		inv.Pairs[k] = Pair{A: p.B, B: p.A}
		inv.Mapping[p.B] = p.A
	}
	sort.Slice(inv.Pairs, func(i, j int) bool { return inv.Pairs[i].A < inv.Pairs[j].A })
	return inv
}

// Normalized returns a copy whose matched colors are renumbered 1..k in
// issuance order, the numbering shown to users. Unmatched and unresolved
// atoms keep color 0.
func (r *Result) Normalized() *Result {
	var issued []uint64
	for _, ac := range r.A {
		if ac.Matched {
			issued = append(issued, ac.Color)
		}
	}
	sort.Slice(issued, func(i, j int) bool { return issued[i] < issued[j] })
	rank := make(map[uint64]uint64, len(issued))
	for k, c := range issued {
		rank[c] = uint64(k + 1)
	}

	renumber := func(in []AtomColor) []AtomColor {
		out := append([]AtomColor(nil), in...)
		for i := range out {
			if out[i].Matched {
				out[i].Color = rank[out[i].Color]
			}
		}
		return out
	}

	norm := &Result{
		RunID:   r.RunID,
		A:       renumber(r.A),
		B:       renumber(r.B),
		Mapping: make(map[int]int, len(r.Mapping)),
		Pairs:   append([]Pair(nil), r.Pairs...),
		Rounds:  r.Rounds,
	}
	for k, v := range r.Mapping {
		norm.Mapping[k] = v
	}
	return norm
}

// Matched returns the number of mapped atom pairs.
func (r *Result) Matched() int {
	return len(r.Pairs)
}
