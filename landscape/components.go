package landscape

// Components returns the connected components of the graph, treating every
// pair with at least one cycle as an edge. Each component lists its node
// IDs in ascending order and components are sorted by their smallest
// member, so the result is deterministic for a given graph.
//
// Isolated minima form singleton components.
//
// Complexity: O(V + P) with V minima and P connected pairs.
func (g *Graph) Components() [][]int {
	// Adjacency over connected pairs only.
	adj := make(map[int][]int, len(g.minima))
	for p := range g.cycles {
		adj[p.A] = append(adj[p.A], p.B)
		adj[p.B] = append(adj[p.B], p.A)
	}

	visited := make(map[int]bool, len(g.minima))
	var components [][]int

	// MinimumIDs is ascending, which fixes both the component order and
	// the in-component order without an extra sort.
	for _, start := range g.MinimumIDs() {
		if visited[start] {
			continue
		}
		var comp []int
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, w := range adj[v] {
				if !visited[w] {
					visited[w] = true
					queue = append(queue, w)
				}
			}
		}
		insertionSort(comp)
		components = append(components, comp)
	}

	return components
}

// insertionSort keeps small component slices ordered without pulling in
// sort for the common 1-3 element case.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
