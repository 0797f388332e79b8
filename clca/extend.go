package clca

import (
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest atom range handed to one extension goroutine.
const minChunk = 64

// extendAll rewrites the text of every Unresolved label of both molecules
// for the next round. With Workers > 1 the atoms are split into ranges and
// extended on an errgroup; Wait is the barrier before the next partition.
func (r *runner) extendAll() error {
	if r.opts.Workers <= 1 {
		for _, s := range r.sides {
			if err := s.extendRange(0, len(s.labels)); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(r.opts.Workers)
	for _, s := range r.sides {
		n := len(s.labels)
		chunk := (n + r.opts.Workers - 1) / r.opts.Workers
		if chunk < minChunk {
			chunk = minChunk
		}
		for lo := 0; lo < n; lo += chunk {
			hi := min(lo+chunk, n)
			g.Go(func() error { return s.extendRange(lo, hi) })
		}
	}
	return g.Wait()
}

// extendRange extends labels[lo:hi].
//
// colors holds this round's color per atom: the permanent color for
// FrozenMatched, the class color for ambiguous and 1 for FrozenUnmatched.
// The new text of atom i is
//
//	round0[i] "#" colors[i] "#" c1 "," c2 "," ...
//
// where c1 <= c2 <= ... are the colors of its neighbors. The sorted list is
// independent of neighbor order and names the multiset exactly, so two atoms
// share a text only if their neighborhoods fall in the same classes.
//
// Atoms write only their own label and colors is read-only during the pass,
// so disjoint ranges may run concurrently.
func (s *side) extendRange(lo, hi int) error {
	var (
		nbr []uint64
		buf []byte
	)
	for i := lo; i < hi; i++ {
		if s.labels[i].State != Unresolved {
			continue
		}
		nbr = nbr[:0]
		for _, j := range s.mol.Neighbors(i) {
			nbr = append(nbr, s.colors[j])
		}
		sort.Slice(nbr, func(x, y int) bool { return nbr[x] < nbr[y] })

		buf = append(buf[:0], s.round0[i]...)
		buf = append(buf, colorSep...)
		buf = strconv.AppendUint(buf, s.colors[i], 10)
		buf = append(buf, colorSep...)
		for k, c := range nbr {
			if k > 0 {
				buf = append(buf, neighborSep...)
			}
			buf = strconv.AppendUint(buf, c, 10)
		}
		if err := s.labels[i].refine(string(buf)); err != nil {
			return err
		}
	}
	return nil
}
