// SPDX-License-Identifier: MIT

package modi

import (
	"fmt"
	"math"
	"math/bits"
)

// Validate checks that (costs, supply, demand) is a balanced, well-formed
// instance. Solve runs it first; the four building blocks (NorthwestCorner,
// ComputePotentials, IsOptimal, SelectPivot) do not.
//
// Stages, first failure wins:
//  1. ErrEmptyInstance     – no cost rows, empty first row, or empty vectors.
//  2. ErrNonRectangular    – a cost row differs in length from row 0.
//  3. ErrDimensionMismatch – rows ≠ len(supply) or columns ≠ len(demand).
//  4. ErrNegativeValue     – any negative cost, supply or demand.
//  5. ErrOverflow          – sum(supply) or sum(demand) exceeds math.MaxInt64.
//  6. ErrUnbalanced        – sum(supply) ≠ sum(demand).
//  7. ErrOverflow          – max(cost)·(2·m·n+1) or max(cost)·sum(supply)
//     exceeds math.MaxInt64.
//
// A potential is built from at most m·n cost steps, so every potential,
// reduced cost and plan cost stays within int64 once stage 7 passes.
//
// Complexity: O(m·n).
func Validate(costs [][]int64, supply, demand []int64) error {
	// Stage 1: emptiness.
	if len(costs) == 0 || len(costs[0]) == 0 || len(supply) == 0 || len(demand) == 0 {
		return ErrEmptyInstance
	}

	// Stage 2: rectangular shape.
	n := len(costs[0])
	for i, row := range costs {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(row), n)
		}
	}

	// Stage 3: shape against vectors.
	if len(costs) != len(supply) {
		return fmt.Errorf("%w: %d cost rows for %d suppliers", ErrDimensionMismatch, len(costs), len(supply))
	}
	if n != len(demand) {
		return fmt.Errorf("%w: %d cost columns for %d consumers", ErrDimensionMismatch, n, len(demand))
	}

	// Stage 4: signs.
	var maxCost int64
	for i, row := range costs {
		for j, c := range row {
			if c < 0 {
				return fmt.Errorf("%w: cost (%d,%d) = %d", ErrNegativeValue, i, j, c)
			}
			maxCost = max(maxCost, c)
		}
	}
	for i, q := range supply {
		if q < 0 {
			return fmt.Errorf("%w: supply[%d] = %d", ErrNegativeValue, i, q)
		}
	}
	for j, q := range demand {
		if q < 0 {
			return fmt.Errorf("%w: demand[%d] = %d", ErrNegativeValue, j, q)
		}
	}

	// Stage 5: totals.
	totalSupply, ok := checkedSum(supply)
	if !ok {
		return fmt.Errorf("%w: total supply", ErrOverflow)
	}
	totalDemand, ok := checkedSum(demand)
	if !ok {
		return fmt.Errorf("%w: total demand", ErrOverflow)
	}

	// Stage 6: balance.
	if totalSupply != totalDemand {
		return fmt.Errorf("%w: supply %d, demand %d", ErrUnbalanced, totalSupply, totalDemand)
	}

	// Stage 7: cost magnitudes.
	steps := uint64(2*len(costs)*n + 1)
	if !fitsInt64(uint64(maxCost), steps) {
		return fmt.Errorf("%w: cost %d with %dx%d routes", ErrOverflow, maxCost, len(costs), n)
	}
	if !fitsInt64(uint64(maxCost), uint64(totalSupply)) {
		return fmt.Errorf("%w: cost %d times supply %d", ErrOverflow, maxCost, totalSupply)
	}

	return nil
}

// checkedSum adds non-negative values and reports false once the total
// passes math.MaxInt64.
func checkedSum(xs []int64) (int64, bool) {
	var total int64
	for _, x := range xs {
		if x > math.MaxInt64-total {
			return 0, false
		}
		total += x
	}

	return total, true
}

// fitsInt64 reports whether a·b ≤ math.MaxInt64.
func fitsInt64(a, b uint64) bool {
	hi, lo := bits.Mul64(a, b)

	return hi == 0 && lo <= math.MaxInt64
}

// TotalCost returns Σ costs[i][j]·alloc[i][j].
//
// Complexity: O(m·n).
func TotalCost(costs, alloc [][]int64) int64 {
	var total int64
	for i := range alloc {
		for j := range alloc[i] {
			total += costs[i][j] * alloc[i][j]
		}
	}

	return total
}
