// SPDX-License-Identifier: MIT

package modi_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/MEGORD/t-methods-calculator/modi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsOptimal_Textbook finds improving cells under both potential methods.
func TestIsOptimal_Textbook(t *testing.T) {
	costs := textbook().costs

	u, v, err := modi.ComputePotentials(costs, textbookPlan)
	require.NoError(t, err)
	assert.False(t, modi.IsOptimal(costs, textbookPlan, u, v))
	cell, ok := modi.SelectPivot(costs, textbookPlan, u, v)
	require.True(t, ok)
	assert.Equal(t, modi.Cell{Row: 2, Col: 1}, cell)
	assert.Equal(t, int64(-32), modi.ReducedCost(costs, u, v, 2, 1))

	basis, err := modi.BuildBasis(costs, textbookPlan)
	require.NoError(t, err)
	u, v, err = modi.ComputeTreePotentials(costs, textbookPlan, basis)
	require.NoError(t, err)
	assert.False(t, modi.IsOptimal(costs, textbookPlan, u, v))
	cell, ok = modi.SelectPivot(costs, textbookPlan, u, v)
	require.True(t, ok)
	assert.Equal(t, modi.Cell{Row: 2, Col: 1}, cell)
	assert.Equal(t, int64(-52), modi.ReducedCost(costs, u, v, 2, 1))
}

// TestIsOptimal_TwoByTwo accepts the northwest plan, which is already optimal.
func TestIsOptimal_TwoByTwo(t *testing.T) {
	in := twoByTwo()
	plan := [][]int64{{20, 0}, {5, 25}}
	u, v, err := modi.ComputePotentials(in.costs, plan)
	require.NoError(t, err)

	assert.True(t, modi.IsOptimal(in.costs, plan, u, v))
	cell, ok := modi.SelectPivot(in.costs, plan, u, v)
	assert.False(t, ok)
	assert.Equal(t, modi.NoCell, cell)
}

// TestSelectPivot_TieBreak keeps the first cell met in row-major order and
// skips cells that carry units.
func TestSelectPivot_TieBreak(t *testing.T) {
	costs := [][]int64{{5, 5}, {5, 5}}
	u := []int64{0, 0}
	v := []int64{6, 6}

	cell, ok := modi.SelectPivot(costs, [][]int64{{0, 0}, {0, 0}}, u, v)
	require.True(t, ok)
	assert.Equal(t, modi.Cell{Row: 0, Col: 0}, cell)

	cell, ok = modi.SelectPivot(costs, [][]int64{{1, 0}, {0, 0}}, u, v)
	require.True(t, ok)
	assert.Equal(t, modi.Cell{Row: 0, Col: 1}, cell)
}

// TestSelectPivot_MostNegative prefers the strictly smallest reduced cost.
func TestSelectPivot_MostNegative(t *testing.T) {
	costs := [][]int64{{4, 1}, {2, 3}}
	u := []int64{0, 0}
	v := []int64{5, 5}

	cell, ok := modi.SelectPivot(costs, [][]int64{{0, 0}, {0, 0}}, u, v)
	require.True(t, ok)
	assert.Equal(t, modi.Cell{Row: 0, Col: 1}, cell)
}

// TestIsOptimal_AgreesWithSelectPivot checks that the two views never disagree.
func TestIsOptimal_AgreesWithSelectPivot(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for k := 0; k < 200; k++ {
		in := randomInstance(rng, 1+rng.Intn(5), 1+rng.Intn(5))
		plan := modi.NorthwestCorner(in.costs, slices.Clone(in.supply), slices.Clone(in.demand))
		u, v, err := modi.ComputePotentials(in.costs, plan)
		require.NoError(t, err)

		cell, ok := modi.SelectPivot(in.costs, plan, u, v)
		require.Equal(t, !modi.IsOptimal(in.costs, plan, u, v), ok)
		if ok {
			require.Zero(t, plan[cell.Row][cell.Col], "pivot must be a non-basic cell")
			best := modi.ReducedCost(in.costs, u, v, cell.Row, cell.Col)
			require.Negative(t, best)
			for i := range plan {
				for j := range plan[i] {
					if plan[i][j] == 0 {
						require.LessOrEqual(t, best, modi.ReducedCost(in.costs, u, v, i, j))
					}
				}
			}
		}
	}
}
