// SPDX-License-Identifier: MIT

package modi

import (
	"fmt"
	"slices"
	"time"
)

// state owns every mutable piece of one solve: the plan, its basis and the
// residual supply/demand trackers. Caller slices are never written.
type state struct {
	costs  [][]int64
	alloc  [][]int64
	basis  [][]bool
	supply []int64
	demand []int64
	opts   Options
}

// Solve validates the instance, builds the northwest-corner plan and improves
// it with the method of potentials until no reduced cost is negative.
//
// Loop (ITERATING → DONE):
//  1. derive potentials (tree walk for SteppingStone, row-major scan for ResidualFill);
//  2. IsOptimal → StatusOptimal, stop;
//  3. check context, TimeLimit and MaxIterations;
//  4. SelectPivot, apply the method's update, count the iteration, run hooks.
//
// Errors:
//   - Validate sentinels (ErrUnbalanced, ErrDimensionMismatch, …) and
//     ErrOptionViolation, with an empty Result.
//   - ErrIterationLimit, ErrTimeLimit, ErrStalled, a context error or a hook
//     error, with the partial Result reached so far.
//   - ErrNegativeAllocation / ErrDisconnectedBasis on invariant violations.
//
// Complexity: O(m·n) per iteration plus O(m·n·log(m·n)) once for BuildBasis.
func Solve(costs [][]int64, supply, demand []int64, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if err := Validate(costs, supply, demand); err != nil {
		return Result{}, err
	}

	s := &state{
		costs:  costs,
		supply: slices.Clone(supply),
		demand: slices.Clone(demand),
		opts:   o,
	}
	s.alloc = NorthwestCorner(costs, s.supply, s.demand)

	res := Result{
		Initial:     cloneTable(s.alloc),
		InitialCost: TotalCost(costs, s.alloc),
	}
	o.Logger.V(1).Info("initial plan built",
		"method", o.Method.String(),
		"suppliers", len(supply),
		"consumers", len(demand),
		"cost", res.InitialCost)

	if o.Method == SteppingStone {
		basis, err := BuildBasis(costs, s.alloc)
		if err != nil {
			return s.finish(res, StatusFailed), err
		}
		s.basis = basis
	}

	status, err := s.run(&res)

	return s.finish(res, status), err
}

// finish copies the final plan and trackers into res.
func (s *state) finish(res Result, status Status) Result {
	res.Plan = s.alloc
	res.Cost = TotalCost(s.costs, s.alloc)
	res.Status = status
	res.RemainingSupply = s.supply
	res.RemainingDemand = s.demand

	return res
}

// run is the improvement loop. It records potentials and the iteration
// count into res and returns the terminal status.
func (s *state) run(res *Result) (Status, error) {
	var (
		ctx      = s.opts.Ctx
		log      = s.opts.Logger
		deadline time.Time
		u, v     []int64
		err      error
	)
	if s.opts.TimeLimit > 0 {
		deadline = time.Now().Add(s.opts.TimeLimit)
	}

	for {
		u, v, err = s.potentials()
		if err != nil {
			return StatusFailed, err
		}
		res.SupplierPotentials, res.ConsumerPotentials = u, v

		if IsOptimal(s.costs, s.alloc, u, v) {
			log.V(1).Info("plan is optimal", "iterations", res.Iterations)

			return StatusOptimal, nil
		}

		// Budgets are checked after the optimality test so the last allowed
		// pivot can still be confirmed optimal.
		if err = ctx.Err(); err != nil {
			return StatusCancelled, fmt.Errorf("modi: solve cancelled after %d iterations: %w", res.Iterations, err)
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			return StatusTimeLimit, fmt.Errorf("%w: %s after %d iterations", ErrTimeLimit, s.opts.TimeLimit, res.Iterations)
		}
		if res.Iterations >= s.opts.MaxIterations {
			return StatusIterationLimit, fmt.Errorf("%w: %d iterations", ErrIterationLimit, res.Iterations)
		}

		enter, rc := mostNegativeCell(s.costs, s.alloc, u, v)
		step := Iteration{
			Index:       res.Iterations + 1,
			Enter:       enter,
			ReducedCost: rc,
			Leave:       NoCell,
		}

		switch s.opts.Method {
		case ResidualFill:
			step.Amount = s.residualFill(enter)
			if step.Amount == 0 {
				log.V(1).Info("residual fill stalled", "cell", enter.String(), "supply", s.supply, "demand", s.demand)

				return StatusStalled, fmt.Errorf("%w: cell %s after %d iterations", ErrStalled, enter, res.Iterations)
			}
		default:
			step.Amount, step.Leave, err = s.steppingStone(enter)
			if err != nil {
				return StatusFailed, err
			}
		}

		res.Iterations++
		step.Cost = TotalCost(s.costs, s.alloc)
		log.V(1).Info("pivot applied",
			"iteration", step.Index,
			"enter", step.Enter.String(),
			"reducedCost", step.ReducedCost,
			"amount", step.Amount,
			"leave", step.Leave.String(),
			"cost", step.Cost,
			"supply", s.supply,
			"demand", s.demand)

		if err = s.opts.OnIteration(step); err != nil {
			return StatusCancelled, err
		}
	}
}

// potentials dispatches on the configured method.
func (s *state) potentials() ([]int64, []int64, error) {
	if s.opts.Method == ResidualFill {
		return ComputePotentials(s.costs, s.alloc)
	}

	return ComputeTreePotentials(s.costs, s.alloc, s.basis)
}
