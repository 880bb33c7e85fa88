// SPDX-License-Identifier: MIT

package dyntree

import (
	"github.com/bits-and-blooms/bitset"
)

// SpanningForest links every candidate pair whose endpoints are in different
// trees at the time it is considered, in input order, and returns the
// handles of the edges it added. Pairs that would close a cycle (including
// self-loops) are skipped.
//
// Feeding pairs sorted by weight yields a minimum spanning forest, exactly as
// Kruskal's algorithm does with a union-find; unlike a union-find the result
// can later be edited with Cut.
//
// Complexity: len(pairs) calls to Link.
func SpanningForest[E any](f Forest[E], pairs []Pair) []E {
	added := make([]E, 0, min(len(pairs), f.Len()))
	for _, p := range pairs {
		// Link reports ok == false for pairs already in one tree.
		if e, ok := f.Link(p.U, p.V); ok {
			added = append(added, e)
		}
	}

	return added
}

// Components labels every vertex with the smallest vertex of its tree.
//
// When f implements Rooter the labelling costs n FindRoot calls plus O(n);
// otherwise it falls back to pairwise IsConnected queries, O(n²) in the worst
// case.
func Components[E any](f Forest[E]) []int {
	n := f.Len()
	labels := make([]int, n)
	if r, ok := f.(Rooter); ok {
		// smallest[root] is the first vertex seen for that root; vertices are
		// scanned in ascending order so it is also the minimum.
		smallest := make([]int, n)
		for i := range smallest {
			smallest[i] = -1
		}
		for v := 0; v < n; v++ {
			root := r.FindRoot(v)
			if smallest[root] < 0 {
				smallest[root] = v
			}
			labels[v] = smallest[root]
		}

		return labels
	}

	seen := bitset.New(uint(n))
	for v := 0; v < n; v++ {
		if seen.Test(uint(v)) {
			continue
		}
		labels[v] = v
		seen.Set(uint(v))
		for w := v + 1; w < n; w++ {
			if !seen.Test(uint(w)) && f.IsConnected(v, w) {
				labels[w] = v
				seen.Set(uint(w))
			}
		}
	}

	return labels
}

// CountComponents returns the number of trees in f, isolated vertices
// included.
func CountComponents[E any](f Forest[E]) int {
	count := 0
	for v, label := range Components(f) {
		if v == label {
			count++
		}
	}

	return count
}
