// SPDX-License-Identifier: MIT

package modi

import (
	"fmt"
	"slices"
)

// basisPath returns the basic cells on the unique tree path from supplier
// row to consumer col, ordered from the row end. Node ids are rows 0..m-1
// followed by columns m..m+n-1. ok is false when col is unreachable.
//
// Complexity: O(m·n) breadth-first walk.
func basisPath(basis [][]bool, row, col int) (path []Cell, ok bool) {
	var (
		m, n   = len(basis), len(basis[0])
		target = m + col
		prev   = make([]int, m+n)
		via    = make([]Cell, m+n)
		seen   = make([]bool, m+n)
		queue  = make([]int, 0, m+n)
		i, j   int
	)
	seen[row] = true
	queue = append(queue, row)
	for head := 0; head < len(queue) && !seen[target]; head++ {
		cur := queue[head]
		if cur < m {
			for j = 0; j < n; j++ {
				next := m + j
				if !basis[cur][j] || seen[next] {
					continue
				}
				seen[next], prev[next], via[next] = true, cur, Cell{Row: cur, Col: j}
				queue = append(queue, next)
			}

			continue
		}
		j = cur - m
		for i = 0; i < m; i++ {
			if !basis[i][j] || seen[i] {
				continue
			}
			seen[i], prev[i], via[i] = true, cur, Cell{Row: i, Col: j}
			queue = append(queue, i)
		}
	}
	if !seen[target] {
		return nil, false
	}

	for node := target; node != row; node = prev[node] {
		path = append(path, via[node])
	}
	slices.Reverse(path)

	return path, true
}

// steppingStone pivots enter into the basis along its closed loop.
//
// The loop is enter followed by the tree path from enter.Row to enter.Col.
// Signs alternate starting with − on the first path cell (it shares the row
// with enter), so every row and column on the loop keeps its total.
// θ is the smallest allocation on a − cell; the first such cell in row-major
// order leaves the basis. θ may be zero on a degenerate basis; the basis
// still changes, so the step is not wasted.
func (s *state) steppingStone(enter Cell) (amount int64, leave Cell, err error) {
	path, ok := basisPath(s.basis, enter.Row, enter.Col)
	if !ok {
		return 0, NoCell, fmt.Errorf("%w: no loop through %s", ErrDisconnectedBasis, enter)
	}

	leave = NoCell
	var (
		theta int64
		v     int64
		k     int
	)
	for k = 0; k < len(path); k += 2 {
		c := path[k]
		v = s.alloc[c.Row][c.Col]
		if leave == NoCell || v < theta || (v == theta && c.less(leave)) {
			theta, leave = v, c
		}
	}

	for k = range path {
		c := path[k]
		if k%2 == 0 {
			s.alloc[c.Row][c.Col] -= theta
		} else {
			s.alloc[c.Row][c.Col] += theta
		}
	}
	s.alloc[enter.Row][enter.Col] += theta
	s.basis[enter.Row][enter.Col] = true
	s.basis[leave.Row][leave.Col] = false

	return theta, leave, nil
}

// residualFill assigns min(remaining supply, remaining demand) to enter and
// consumes it from both trackers. It returns the amount placed; zero means
// the plan did not change.
func (s *state) residualFill(enter Cell) int64 {
	i, j := enter.Row, enter.Col
	amount := min(s.supply[i], s.demand[j])
	if amount <= 0 {
		return 0
	}
	s.alloc[i][j] = amount
	s.supply[i] -= amount
	s.demand[j] -= amount

	return amount
}
