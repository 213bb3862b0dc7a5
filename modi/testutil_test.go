// SPDX-License-Identifier: MIT

package modi_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// instance bundles one balanced transportation problem for table tests.
type instance struct {
	costs  [][]int64
	supply []int64
	demand []int64
}

// textbook is the 3×4 instance used across the package tests.
// Northwest corner: cost 1015. Optimum: cost 743 after two pivots.
func textbook() instance {
	return instance{
		costs: [][]int64{
			{19, 30, 50, 10},
			{70, 30, 40, 60},
			{40, 8, 70, 20},
		},
		supply: []int64{7, 9, 18},
		demand: []int64{5, 8, 7, 14},
	}
}

// twoByTwo is already optimal after the northwest corner.
func twoByTwo() instance {
	return instance{
		costs:  [][]int64{{4, 6}, {8, 4}},
		supply: []int64{20, 30},
		demand: []int64{25, 25},
	}
}

// randomInstance builds a balanced m×n instance with costs in [0,9],
// supplies in [1,10] and every demand at least 1.
func randomInstance(rng *rand.Rand, m, n int) instance {
	costs := make([][]int64, m)
	for i := range costs {
		costs[i] = make([]int64, n)
		for j := range costs[i] {
			costs[i][j] = int64(rng.Intn(10))
		}
	}
	var total int64
	supply := make([]int64, m)
	for i := range supply {
		supply[i] = int64(1 + rng.Intn(10))
		total += supply[i]
	}
	// keep total ≥ n so each consumer receives at least one unit
	for total < int64(n) {
		supply[rng.Intn(m)]++
		total++
	}
	demand := make([]int64, n)
	for j := range demand {
		demand[j] = 1
	}
	for k := int64(n); k < total; k++ {
		demand[rng.Intn(n)]++
	}

	return instance{costs: costs, supply: supply, demand: demand}
}

// rowSums returns the per-supplier totals of a plan.
func rowSums(plan [][]int64) []int64 {
	out := make([]int64, len(plan))
	for i, row := range plan {
		for _, x := range row {
			out[i] += x
		}
	}

	return out
}

// colSums returns the per-consumer totals of a plan.
func colSums(plan [][]int64, n int) []int64 {
	out := make([]int64, n)
	for _, row := range plan {
		for j, x := range row {
			out[j] += x
		}
	}

	return out
}

// positiveCells counts the cells carrying units.
func positiveCells(plan [][]int64) int {
	var k int
	for _, row := range plan {
		for _, x := range row {
			if x > 0 {
				k++
			}
		}
	}

	return k
}

// requireFeasible asserts that plan ships every unit of supply and demand.
func requireFeasible(t *testing.T, in instance, plan [][]int64) {
	t.Helper()
	require.Len(t, plan, len(in.supply))
	for _, row := range plan {
		for _, x := range row {
			require.GreaterOrEqual(t, x, int64(0), "plan cell must be non-negative")
		}
	}
	require.Equal(t, in.supply, rowSums(plan), "row totals must equal supply")
	require.Equal(t, in.demand, colSums(plan, len(in.demand)), "column totals must equal demand")
}
