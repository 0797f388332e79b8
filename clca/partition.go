package clca

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// class gathers the Unresolved atoms of both molecules sharing one label text.
type class struct {
	text string
	a, b []int // atom indices per molecule
}

// classKind is the partition outcome for one class.
type classKind uint8

const (
	kindAmbiguous classKind = iota
	kindExact
	kindSingular
)

func (c *class) kind() classKind {
	switch {
	case len(c.a)+len(c.b) == 1:
		return kindSingular
	case len(c.a) == 1 && len(c.b) == 1:
		return kindExact
	default:
		return kindAmbiguous
	}
}

// partitionPlan lists the classes of one round by kind, each slice in
// lexicographic text order.
type partitionPlan struct {
	exact     []*class
	singular  []*class
	ambiguous []*class
}

// partition classifies every Unresolved label of a and b by its combined
// occurrence count. Frozen labels are skipped. The class table is a
// string-keyed tree map, so iteration is lexicographic and never depends on
// hash order.
// Complexity: O(U·log U), U = Unresolved atoms of both molecules.
func partition(a, b []Label) partitionPlan {
	table := treemap.NewWithStringComparator()
	collect := func(labels []Label, pick func(*class) *[]int) {
		for i, l := range labels {
			if l.State != Unresolved {
				continue
			}
			var c *class
			if v, found := table.Get(l.Text); found {
				c = v.(*class)
			} else {
				c = &class{text: l.Text}
				table.Put(l.Text, c)
			}
			idx := pick(c)
			*idx = append(*idx, i)
		}
	}
	collect(a, func(c *class) *[]int { return &c.a })
	collect(b, func(c *class) *[]int { return &c.b })

	var plan partitionPlan
	it := table.Iterator()
	for it.Next() {
		c := it.Value().(*class)
		switch c.kind() {
		case kindExact:
			plan.exact = append(plan.exact, c)
		case kindSingular:
			plan.singular = append(plan.singular, c)
		default:
			plan.ambiguous = append(plan.ambiguous, c)
		}
	}
	return plan
}
