package clca

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/atommap/molecule"
)

// side holds the per-molecule state of one run.
type side struct {
	mol    *molecule.Molecule
	round0 []string // initial label text per atom
	labels []Label  // current label per atom
	colors []uint64 // this round's color per atom
}

func newSide(m *molecule.Molecule) *side {
	s := &side{
		mol:    m,
		round0: initialLabels(m),
		labels: make([]Label, m.Len()),
		colors: make([]uint64, m.Len()),
	}
	for i, text := range s.round0 {
		s.labels[i] = Label{State: Unresolved, Text: text}
	}
	return s
}

// unresolved counts the atoms still subject to refinement.
func (s *side) unresolved() int {
	n := 0
	for _, l := range s.labels {
		if l.State == Unresolved {
			n++
		}
	}
	return n
}

// runner holds the mutable state of a single Match run.
type runner struct {
	opts     Options
	reg      *Registry
	sides    [2]*side
	maxExact uint64 // highest exact-match color issued so far
	classes  int    // partition size after the last extension (exhaustive mode)
	rounds   int
}

// roundStats summarizes one assign pass.
type roundStats struct {
	matched, singular, ambiguous int
	maxExact                     uint64
}

// Match computes a partial one-to-one atom correspondence between a and b by
// cross-graph color refinement.
//
// Each round partitions the Unresolved labels of both molecules, freezes
// singular and exact-match classes, colors the ambiguous ones and extends
// every remaining label by one hop of neighborhood. Rounds repeat until one
// finds no new exact match or no Unresolved atom is left in either molecule.
// Once one molecule is fully frozen, the next round still classifies the
// other: its single-occurrence labels end FrozenUnmatched, not Unresolved.
//
// Preconditions (in order):
//  1. a and b are non-nil (ErrNilMolecule).
//  2. Options are valid (ErrOptionViolation).
//  3. Both molecules pass molecule.Validate.
//
// The run is deterministic: identical input yields identical A, B, Mapping,
// Pairs and Rounds. Swapping a and b yields the inverse mapping.
//
// Complexity: at most N = max(|a|, |b|) rounds, each O(U·log U + B·c) where
// U is the number of Unresolved atoms and c the cost of sorting one
// neighbor list.
func Match(a, b *molecule.Molecule, opts ...Option) (*Result, error) {
	if a == nil || b == nil {
		return nil, ErrNilMolecule
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "clca: molecule A")
	}
	if err := b.Validate(); err != nil {
		return nil, errors.Wrap(err, "clca: molecule B")
	}

	r := &runner{
		opts:  cfg,
		reg:   NewRegistry(cfg.NewSource()),
		sides: [2]*side{newSide(a), newSide(b)},
	}
	if err := r.run(); err != nil {
		return nil, err
	}

	return r.result()
}

// run drives rounds until convergence.
func (r *runner) run() error {
	bound := r.bound()
	limit := bound
	if r.opts.MaxRounds > 0 && r.opts.MaxRounds < limit {
		limit = r.opts.MaxRounds
	}
	if r.opts.Exhaustive {
		r.classes = r.classCount()
	}

	for !r.settled() {
		if r.rounds >= bound {
			return errors.Wrapf(ErrNoConvergence, "%d rounds, bound %d", r.rounds, bound)
		}
		if r.rounds >= limit {
			klog.V(2).Infof("clca: stopping at round cap %d", limit)
			return nil
		}
		r.rounds++

		stats, err := r.assign(partition(r.sides[0].labels, r.sides[1].labels))
		if err != nil {
			return err
		}
		if err := r.extendAll(); err != nil {
			return err
		}
		r.report(stats)

		if !r.progressed(stats) {
			return nil
		}
	}

	return nil
}

// bound is the most rounds a run can take. Every continuing round freezes
// at least one pair, so a run of k pairs stops by round k+1. A run still
// going after k = N pairs would need an Unresolved atom on a side whose N
// atoms are all matched, so N = max(|A|, |B|) rounds suffice. Exhaustive
// mode may also continue on a round that only grew the partition, which
// happens at most |A|+|B| times.
func (r *runner) bound() int {
	na, nb := r.sides[0].mol.Len(), r.sides[1].mol.Len()
	if r.opts.Exhaustive {
		return max(na, nb) + na + nb
	}
	return max(na, nb)
}

// progressed is the convergence check: it reports whether the round issued
// an exact-match color above the previous maximum or, in exhaustive mode,
// whether the partition grew.
func (r *runner) progressed(stats roundStats) bool {
	progress := stats.maxExact > r.maxExact
	r.maxExact = max(r.maxExact, stats.maxExact)
	if r.opts.Exhaustive {
		k := r.classCount()
		if k > r.classes {
			progress = true
		}
		r.classes = k
	}
	return progress
}

// classCount is the size of the cross-graph partition: distinct Unresolved
// texts, plus one per matched pair, plus one per unmatched atom. Refinement
// never merges classes, so it never decreases.
func (r *runner) classCount() int {
	texts := make(map[string]struct{})
	k := 0
	for si, s := range r.sides {
		for _, l := range s.labels {
			switch l.State {
			case Unresolved:
				texts[l.Text] = struct{}{}
			case FrozenUnmatched:
				k++
			case FrozenMatched:
				if si == 0 {
					k++
				}
			}
		}
	}
	return k + len(texts)
}

// settled reports whether every atom of both molecules is frozen.
func (r *runner) settled() bool {
	return r.sides[0].unresolved() == 0 && r.sides[1].unresolved() == 0
}

// assign freezes singular and exact-match classes and colors the rest.
//
// Colors are issued to exact-match classes first, then to ambiguous classes,
// each group in the plan's lexicographic order. After assign, colors holds
// every atom's color for this round.
func (r *runner) assign(plan partitionPlan) (roundStats, error) {
	a, b := r.sides[0], r.sides[1]
	stats := roundStats{
		matched:   len(plan.exact),
		ambiguous: len(plan.ambiguous),
		maxExact:  r.maxExact,
	}

	for _, c := range plan.singular {
		for _, i := range c.a {
			if err := a.labels[i].freezeUnmatched(); err != nil {
				return stats, err
			}
		}
		for _, i := range c.b {
			if err := b.labels[i].freezeUnmatched(); err != nil {
				return stats, err
			}
		}
		stats.singular++
	}

	for _, c := range plan.exact {
		color, err := r.reg.Issue(c.text)
		if err != nil {
			return stats, err
		}
		if err := a.labels[c.a[0]].freezeMatched(color); err != nil {
			return stats, err
		}
		if err := b.labels[c.b[0]].freezeMatched(color); err != nil {
			return stats, err
		}
		stats.maxExact = max(stats.maxExact, color)
	}

	for _, c := range plan.ambiguous {
		color, err := r.reg.Issue(c.text)
		if err != nil {
			return stats, err
		}
		for _, i := range c.a {
			a.colors[i] = color
		}
		for _, i := range c.b {
			b.colors[i] = color
		}
	}

	for _, s := range r.sides {
		for i, l := range s.labels {
			switch l.State {
			case FrozenMatched:
				s.colors[i] = l.Color
			case FrozenUnmatched:
				s.colors[i] = 1
			}
		}
	}

	return stats, nil
}

// report traces the round and feeds the OnRound hook.
func (r *runner) report(stats roundStats) {
	klog.V(2).Infof("clca: round %d: %d matched, %d singular, %d ambiguous, max exact %d",
		r.rounds, stats.matched, stats.singular, stats.ambiguous, stats.maxExact)
	if r.opts.OnRound == nil {
		return
	}
	r.opts.OnRound(RoundInfo{
		Round:     r.rounds,
		Matched:   stats.matched,
		Singular:  stats.singular,
		Ambiguous: stats.ambiguous,
		MaxExact:  stats.maxExact,
		A:         snapshot(r.sides[0].labels),
		B:         snapshot(r.sides[1].labels),
	})
}

// result assembles the Result from the final labels.
func (r *runner) result() (*Result, error) {
	a, b := r.sides[0].labels, r.sides[1].labels
	pairs, err := extractMapping(a, b)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:   uuid.New(),
		A:       atomColors(a),
		B:       atomColors(b),
		Mapping: make(map[int]int, len(pairs)),
		Pairs:   pairs,
		Rounds:  r.rounds,
	}
	for _, p := range pairs {
		res.Mapping[p.A] = p.B
	}
	klog.V(2).Infof("clca: run %s: %d rounds, %d of %d×%d atoms matched",
		res.RunID, res.Rounds, len(pairs), len(a), len(b))

	return res, nil
}
