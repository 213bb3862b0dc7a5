// SPDX-License-Identifier: MIT

package modi

// NorthwestCorner builds an initial feasible plan with the northwest-corner rule.
//
// A cursor starts at (0,0). While both supply[row] and demand[col] are
// positive, the cell receives min(supply[row], demand[col]) and both entries
// are reduced by that amount. The row advances once its supply is exhausted,
// the column once its demand is exhausted; both move in the same step when the
// amount empties them together. The walk ends when either cursor runs off.
//
// Side effect: supply and demand are consumed in place (to zero on a balanced
// instance). costs only fixes the contract; the shape comes from the vectors.
//
// For a balanced, non-degenerate instance the plan has exactly m+n−1 positive
// cells. No validation is performed; see Validate.
//
// Complexity: O(m + n) steps, O(m·n) memory.
func NorthwestCorner(costs [][]int64, supply, demand []int64) [][]int64 {
	var (
		m, n   = len(supply), len(demand)
		alloc  = newTable(m, n)
		i, j   int   // cursor
		amount int64 // units placed at the cursor
	)
	for i < m && j < n {
		if supply[i] > 0 && demand[j] > 0 {
			amount = min(supply[i], demand[j])
			alloc[i][j] = amount
			supply[i] -= amount
			demand[j] -= amount
		}
		// Non-positive entries count as exhausted, so the cursor always moves.
		if supply[i] <= 0 {
			i++
		}
		if demand[j] <= 0 {
			j++
		}
	}

	return alloc
}

// newTable allocates a zeroed rows×cols table over one row-major buffer.
func newTable(rows, cols int) [][]int64 {
	buf := make([]int64, rows*cols)
	t := make([][]int64, rows)
	for i := range t {
		t[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return t
}

// cloneTable deep-copies src into a fresh row-major table.
func cloneTable(src [][]int64) [][]int64 {
	if len(src) == 0 {
		return [][]int64{}
	}
	dst := newTable(len(src), len(src[0]))
	for i := range src {
		copy(dst[i], src[i])
	}

	return dst
}
