// SPDX-License-Identifier: MIT

package modi

import (
	"fmt"
	"sort"
)

// BuildBasis marks the basic cells of alloc as a spanning tree over the m
// supplier rows and n consumer columns (m+n−1 cells).
//
// Steps:
//  1. Every positive cell is basic. Cells are joined in a disjoint-set over
//     the m+n nodes; a positive cell whose endpoints are already connected
//     closes a cycle and yields ErrCyclicBasis.
//  2. A degenerate plan (fewer than m+n−1 positive cells) is completed with
//     zero-valued cells in Kruskal order: ascending cost, row-major on ties,
//     each accepted only when it joins two components.
//
// Errors:
//   - ErrNegativeAllocation for a cell below zero.
//   - ErrCyclicBasis as described above.
//
// Complexity: O(m·n·log(m·n)) for the completion sort, O(m·n) memory.
func BuildBasis(costs, alloc [][]int64) ([][]bool, error) {
	if len(costs) == 0 {
		return [][]bool{}, nil
	}
	var (
		m, n  = len(costs), len(costs[0])
		want  = m + n - 1
		size  int
		dsu   = newDisjointSet(m + n)
		basis = make([][]bool, m)
		i, j  int
	)
	for i = range basis {
		basis[i] = make([]bool, n)
	}

	// 1. Positive cells.
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			switch {
			case alloc[i][j] < 0:
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrNegativeAllocation, i, j, alloc[i][j])
			case alloc[i][j] == 0:
				continue
			}
			if !dsu.union(i, m+j) {
				return nil, fmt.Errorf("%w: cell (%d,%d)", ErrCyclicBasis, i, j)
			}
			basis[i][j] = true
			size++
		}
	}
	if size == want {
		return basis, nil
	}

	// 2. Cheapest zero cells that join two components.
	candidates := make([]Cell, 0, m*n-size)
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			if !basis[i][j] {
				candidates = append(candidates, Cell{Row: i, Col: j})
			}
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return costs[candidates[a].Row][candidates[a].Col] < costs[candidates[b].Row][candidates[b].Col]
	})
	for _, c := range candidates {
		if size == want {
			break
		}
		if dsu.union(c.Row, m+c.Col) {
			basis[c.Row][c.Col] = true
			size++
		}
	}

	return basis, nil
}

// disjointSet is a union-find over dense int ids with path compression and
// union by rank.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns the root of x, compressing the path iteratively.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets of a and b. It reports false when they were already joined.
func (d *disjointSet) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}

	return true
}
