// SPDX-License-Identifier: MIT

// Package modi solves the balanced transportation problem with the
// method of potentials (MODI / stepping-stone family).
//
// 🚀 What is the transportation problem?
//
//	Ship goods from m suppliers to n consumers at minimum total cost.
//	Supplier i offers supply[i] units, consumer j requires demand[j] units,
//	and every unit moved along route (i, j) costs costs[i][j].
//
// ✨ Key features:
//   - NorthwestCorner: initial feasible plan filled from the top-left cell
//   - ComputePotentials / ComputeTreePotentials: dual variables u (suppliers) and v (consumers)
//   - IsOptimal / SelectPivot: reduced-cost test and entering-cell choice
//   - BuildBasis: completes degenerate plans to a spanning tree of m+n−1 cells
//   - Solve: bounded improvement loop with two update methods
//
// ⚙️ Usage:
//
//	import "github.com/MEGORD/t-methods-calculator/modi"
//
//	res, err := modi.Solve(costs, supply, demand,
//	    modi.WithMethod(modi.SteppingStone),
//	    modi.WithMaxIterations(500),
//	)
//	if err != nil {
//	    // ErrUnbalanced, ErrIterationLimit, ErrStalled, ...
//	}
//	fmt.Println(res.Plan, res.Cost)
//
// Methods:
//
//   - SteppingStone: classical pivot: the entering cell closes a loop with
//     the basic cells, θ units move around the loop with alternating signs,
//     row and column totals are preserved. Converges to a cost-minimal plan.
//   - ResidualFill: compatibility pivot: the entering cell receives
//     min(remaining supply, remaining demand). After a northwest-corner start
//     on a balanced instance the residuals are zero, so this method either
//     confirms optimality at once or reports ErrStalled.
//
// Determinism:
//
//	Every scan is row-major. Ties between equally negative reduced costs go to
//	the first cell met; ties between leaving candidates go to the smallest
//	(row, col). Identical inputs always yield identical plans.
//
// Complexity (m suppliers, n consumers):
//
//   - NorthwestCorner: O(m + n) steps, O(m·n) memory for the plan
//   - potentials, optimality, pivot selection: O(m·n) per iteration
//   - stepping-stone loop search: O(m·n) breadth-first walk over the basis
package modi
