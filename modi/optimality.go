// SPDX-License-Identifier: MIT

package modi

// ReducedCost returns costs[i][j] − suppliers[i] − consumers[j].
// A negative value means shipping along (i, j) would lower the plan cost.
func ReducedCost(costs [][]int64, suppliers, consumers []int64, i, j int) int64 {
	return costs[i][j] - suppliers[i] - consumers[j]
}

// IsOptimal reports whether every non-basic cell (alloc == 0) has a
// non-negative reduced cost under the given potentials. The scan stops at
// the first negative reduced cost.
//
// Complexity: O(m·n).
func IsOptimal(costs, alloc [][]int64, suppliers, consumers []int64) bool {
	for i := range costs {
		for j := range costs[i] {
			if alloc[i][j] == 0 && ReducedCost(costs, suppliers, consumers, i, j) < 0 {
				return false
			}
		}
	}

	return true
}

// SelectPivot returns the non-basic cell with the most negative reduced cost.
// Ties go to the first cell met in row-major order. When no reduced cost is
// negative it returns (NoCell, false); after a failed IsOptimal that cannot happen.
//
// Complexity: O(m·n).
func SelectPivot(costs, alloc [][]int64, suppliers, consumers []int64) (Cell, bool) {
	c, _ := mostNegativeCell(costs, alloc, suppliers, consumers)

	return c, c != NoCell
}

// mostNegativeCell is SelectPivot that also returns the winning reduced cost.
func mostNegativeCell(costs, alloc [][]int64, suppliers, consumers []int64) (Cell, int64) {
	var (
		best   = NoCell
		bestRC int64
		rc     int64
	)
	for i := range costs {
		for j := range costs[i] {
			if alloc[i][j] != 0 {
				continue
			}
			rc = ReducedCost(costs, suppliers, consumers, i, j)
			// strict < keeps the first occurrence on ties
			if rc < 0 && (best == NoCell || rc < bestRC) {
				best, bestRC = Cell{Row: i, Col: j}, rc
			}
		}
	}

	return best, bestRC
}
