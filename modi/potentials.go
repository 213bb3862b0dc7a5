// SPDX-License-Identifier: MIT

package modi

import "fmt"

// ComputePotentials derives supplier and consumer potentials with a single
// row-major scan over every cell of the plan.
//
// Rules (u = suppliers, v = consumers):
//   - u[0] = 0 anchors the system.
//   - For each cell (i, j): if v[j] still holds its zero default it becomes
//     costs[i][j] − u[i]; otherwise u[i] becomes costs[i][j] − v[j].
//
// The pass is exact for a fresh northwest-corner plan, whose basic cells are
// met in an order that always touches a resolved potential. It is not a tree
// walk: after arbitrary pivots use ComputeTreePotentials.
//
// Errors:
//   - ErrNegativeAllocation if a cell below zero is met; no potentials are returned.
//
// Complexity: O(m·n) time, O(m + n) memory.
func ComputePotentials(costs, alloc [][]int64) (suppliers, consumers []int64, err error) {
	if len(costs) == 0 {
		return []int64{}, []int64{}, nil
	}
	var (
		m, n = len(costs), len(costs[0])
		i, j int
	)
	suppliers = make([]int64, m)
	consumers = make([]int64, n)

	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			if alloc[i][j] < 0 {
				return nil, nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrNegativeAllocation, i, j, alloc[i][j])
			}
			if consumers[j] == 0 {
				consumers[j] = costs[i][j] - suppliers[i]
			} else {
				suppliers[i] = costs[i][j] - consumers[j]
			}
		}
	}

	return suppliers, consumers, nil
}

// treeNode is a vertex of the bipartite basis graph: a supplier row or a consumer column.
type treeNode struct {
	row bool
	idx int
}

// ComputeTreePotentials derives potentials by walking the spanning tree
// formed by the basic cells, breadth-first from supplier 0 (u[0] = 0).
// Along a basic cell (i, j): v[j] = costs[i][j] − u[i] when row i is resolved
// first, u[i] = costs[i][j] − v[j] otherwise. Every basic cell therefore ends
// with a reduced cost of exactly zero.
//
// basis marks the basic cells (see BuildBasis); it may include zero-valued cells.
//
// Errors:
//   - ErrNegativeAllocation if any plan cell is below zero.
//   - ErrDisconnectedBasis if some row or column is unreachable from row 0.
//
// Complexity: O(m·n) time, O(m + n) memory.
func ComputeTreePotentials(costs, alloc [][]int64, basis [][]bool) (suppliers, consumers []int64, err error) {
	if len(costs) == 0 {
		return []int64{}, []int64{}, nil
	}
	var (
		m, n    = len(costs), len(costs[0])
		i, j    int
		rowSeen = make([]bool, m)
		colSeen = make([]bool, n)
		queue   = make([]treeNode, 0, m+n)
	)
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			if alloc[i][j] < 0 {
				return nil, nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrNegativeAllocation, i, j, alloc[i][j])
			}
		}
	}
	suppliers = make([]int64, m)
	consumers = make([]int64, n)

	rowSeen[0] = true
	queue = append(queue, treeNode{row: true, idx: 0})
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.row {
			i = cur.idx
			for j = 0; j < n; j++ {
				if !basis[i][j] || colSeen[j] {
					continue
				}
				consumers[j] = costs[i][j] - suppliers[i]
				colSeen[j] = true
				queue = append(queue, treeNode{idx: j})
			}

			continue
		}
		j = cur.idx
		for i = 0; i < m; i++ {
			if !basis[i][j] || rowSeen[i] {
				continue
			}
			suppliers[i] = costs[i][j] - consumers[j]
			rowSeen[i] = true
			queue = append(queue, treeNode{row: true, idx: i})
		}
	}

	if len(queue) != m+n {
		return nil, nil, fmt.Errorf("%w: reached %d of %d rows and columns", ErrDisconnectedBasis, len(queue), m+n)
	}

	return suppliers, consumers, nil
}
