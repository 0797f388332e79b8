// Package clca matches atoms between two molecules by cross-graph color
// refinement, a restricted Weisfeiler–Leman coloring whose colors are issued
// jointly for both molecules and are therefore comparable between them.
//
// What
//
//   - Every atom starts Unresolved with a text built from its own identity
//     code and the sorted codes of its neighbors.
//   - Each round classifies the Unresolved texts of both molecules together:
//   - singular  (one occurrence overall)        → FrozenUnmatched
//   - exact     (exactly once in A and in B)    → FrozenMatched, shared color
//   - ambiguous (anything else)                 → one color for this round
//   - Every atom still Unresolved is then extended by one hop: its text
//     becomes its round-0 text, its own color and the sorted colors of its
//     neighbors.
//   - Rounds stop when one finds no new exact match, or, under
//     WithExhaustiveRefinement, when one also leaves the partition unsplit.
//     The FrozenMatched atoms sharing a color form the returned mapping.
//
// Why
//
//   - Atoms in equivalent positions of two conformers or two copies of a
//     structure receive identical colors without any 3D reasoning.
//   - Symmetric atoms are never forced into an arbitrary pairing: they stay
//     unmapped.
//
// Determinism
//
//	Classes are kept in a lexicographically ordered tree map and colors are
//	issued in that order: exact matches first, then ambiguous classes. The
//	Registry is created per run and threaded through the rounds. No global
//	counter exists, so identical input always gives identical colors.
//
// State machine (per atom)
//
//	Unresolved ──extend──▶ Unresolved
//	Unresolved ──exact───▶ FrozenMatched(color)   (terminal)
//	Unresolved ──single──▶ FrozenUnmatched        (terminal)
//
// A frozen label refuses every further transition with ErrFrozenTransition.
//
// Colors
//
//	Colors come from a ColorSource: SequentialSource (2, 3, 4, …, the default)
//	or PrimeSource (2, 3, 5, 7, …). Any strictly increasing source works:
//	extended texts spell out the neighbor colors instead of combining them
//	arithmetically, so the partition of every round depends only on structure
//	and both sources yield the same mapping, states and round count.
//
// Concurrency
//
//	Rounds are sequential. Within a round the extension pass reads only that
//	round's color table and writes only each atom's own label. WithWorkers
//	spreads it over an errgroup whose Wait is the barrier before the next
//	partition.
//
// Complexity (N = max(|A|, |B|))
//
//   - Rounds: ≤ N. Every round but the last freezes at least one pair.
//     Rounds continue while either molecule has Unresolved atoms, so a
//     fully frozen side does not cut the other short. Exhaustive runs add at most
//     |A|+|B| rounds that only split classes.
//   - Per round: O(U·log U) partition, O(B·log d) neighbor sorting
//     (d = largest degree).
//
// Usage
//
//	res, err := clca.Match(a, b, clca.WithWorkers(4))
//	if err != nil {
//		// ErrNilMolecule, ErrOptionViolation, molecule.Err* precondition
//		// failures, or an internal invariant error
//	}
//	for _, p := range res.Pairs {
//		fmt.Printf("%d -> %d\n", p.A, p.B)
//	}
package clca
