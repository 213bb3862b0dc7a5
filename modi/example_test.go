// SPDX-License-Identifier: MIT

package modi_test

import (
	"fmt"

	"github.com/MEGORD/t-methods-calculator/modi"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three plants ship to four warehouses.
//	  supply = [7, 9, 18]
//	  demand = [5, 8, 7, 14]
//
// The northwest corner costs 1015; two stepping-stone pivots reach 743.
func ExampleSolve() {
	costs := [][]int64{
		{19, 30, 50, 10},
		{70, 30, 40, 60},
		{40, 8, 70, 20},
	}
	res, err := modi.Solve(costs, []int64{7, 9, 18}, []int64{5, 8, 7, 14})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("initial=%d final=%d iterations=%d status=%s\n",
		res.InitialCost, res.Cost, res.Iterations, res.Status)
	for _, row := range res.Plan {
		fmt.Println(row)
	}
	// Output:
	// initial=1015 final=743 iterations=2 status=optimal
	// [5 0 0 2]
	// [0 2 7 0]
	// [0 6 0 12]
}

// ExampleNorthwestCorner shows the four building blocks on a plan that is
// already optimal.
func ExampleNorthwestCorner() {
	costs := [][]int64{{4, 6}, {8, 4}}
	supply, demand := []int64{20, 30}, []int64{25, 25}

	plan := modi.NorthwestCorner(costs, supply, demand)
	u, v, _ := modi.ComputePotentials(costs, plan)
	cell, found := modi.SelectPivot(costs, plan, u, v)

	fmt.Println(plan, modi.TotalCost(costs, plan))
	fmt.Println(u, v)
	fmt.Println(modi.IsOptimal(costs, plan, u, v), cell, found)
	// Output:
	// [[20 0] [5 25]] 220
	// [0 -2] [4 6]
	// true (-1,-1) false
}

// ExampleSolve_residualFill shows the compatibility method stopping at a
// fixed point with the northwest-corner plan.
func ExampleSolve_residualFill() {
	costs := [][]int64{
		{19, 30, 50, 10},
		{70, 30, 40, 60},
		{40, 8, 70, 20},
	}
	res, err := modi.Solve(costs, []int64{7, 9, 18}, []int64{5, 8, 7, 14},
		modi.WithMethod(modi.ResidualFill))
	fmt.Println(err)
	fmt.Println(res.Status, res.Cost)
	// Output:
	// modi: residual fill made no progress: cell (2,1) after 0 iterations
	// stalled 1015
}
