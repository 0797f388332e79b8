package molecule

import "sort"

// Components returns the connected fragments of m, each as a sorted list of
// atom indices, ordered by their lowest index. Isolated atoms form their own
// fragment. Traversal is breadth-first from the lowest unvisited atom.
// Complexity: O(N·log N + B).
func (m *Molecule) Components() [][]int {
	n := len(m.atoms)
	visited := make([]bool, n)
	queue := make([]int, 0, n)
	var out [][]int

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		var frag []int
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			frag = append(frag, i)
			for _, j := range m.Neighbors(i) {
				if !visited[j] {
					visited[j] = true
					queue = append(queue, j)
				}
			}
		}
		sort.Ints(frag)
		out = append(out, frag)
	}

	return out
}
