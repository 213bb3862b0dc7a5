// SPDX-License-Identifier: MIT

package modi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
)

// Sentinel errors returned by the solver. Callers match them with errors.Is;
// most are wrapped with the offending cell, row or totals.
var (
	// ErrNegativeAllocation signals a structural invariant violation: a plan
	// cell below zero was met while deriving potentials.
	ErrNegativeAllocation = errors.New("modi: negative allocation cell")

	// ErrEmptyInstance indicates that there are no suppliers or no consumers.
	ErrEmptyInstance = errors.New("modi: instance has no suppliers or no consumers")

	// ErrNonRectangular indicates cost rows of different lengths.
	ErrNonRectangular = errors.New("modi: cost matrix rows differ in length")

	// ErrDimensionMismatch indicates that the cost matrix shape does not match
	// the supply and demand vector lengths.
	ErrDimensionMismatch = errors.New("modi: cost matrix shape does not match supply/demand")

	// ErrNegativeValue indicates a negative cost, supply or demand entry.
	ErrNegativeValue = errors.New("modi: negative cost, supply or demand")

	// ErrUnbalanced indicates that total supply differs from total demand.
	ErrUnbalanced = errors.New("modi: total supply differs from total demand")

	// ErrCyclicBasis indicates that the positive cells of a plan already form a cycle,
	// so they cannot be the basis of a spanning tree.
	ErrCyclicBasis = errors.New("modi: basic cells contain a cycle")

	// ErrDisconnectedBasis indicates that the basic cells do not connect every
	// supplier and consumer to the anchor row.
	ErrDisconnectedBasis = errors.New("modi: basic cells do not span all suppliers and consumers")

	// ErrIterationLimit is returned with the partial result when MaxIterations
	// pivots did not reach an optimal plan.
	ErrIterationLimit = errors.New("modi: iteration limit reached before optimality")

	// ErrTimeLimit is returned with the partial result when TimeLimit elapsed.
	ErrTimeLimit = errors.New("modi: time limit reached before optimality")

	// ErrStalled is returned by the ResidualFill method when the entering cell
	// can receive nothing, which leaves the plan at a fixed point.
	ErrStalled = errors.New("modi: residual fill made no progress")

	// ErrOverflow is returned by Validate when potentials, reduced costs or
	// plan costs of the instance could exceed the int64 range.
	ErrOverflow = errors.New("modi: instance values overflow int64 arithmetic")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("modi: invalid option supplied")
)

// DefaultMaxIterations bounds the improvement loop when no explicit limit is set.
const DefaultMaxIterations = 10000

// Cell addresses one route of the plan: supplier Row, consumer Col.
type Cell struct {
	Row, Col int
}

// NoCell is the sentinel returned when no cell qualifies.
var NoCell = Cell{Row: -1, Col: -1}

// less orders cells row-major.
func (c Cell) less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Method selects how the loop derives potentials and updates the plan.
type Method int

const (
	// SteppingStone derives potentials over the spanning tree of basic cells
	// and pivots along the closed loop through the entering cell.
	SteppingStone Method = iota

	// ResidualFill derives potentials with a single row-major scan and assigns
	// min(remaining supply, remaining demand) to the entering cell.
	ResidualFill
)

// String returns the flag spelling of the method.
func (m Method) String() string {
	switch m {
	case SteppingStone:
		return "stepping-stone"
	case ResidualFill:
		return "residual-fill"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps "stepping-stone" or "residual-fill" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "stepping-stone", "modi", "":
		return SteppingStone, nil
	case "residual-fill", "legacy":
		return ResidualFill, nil
	default:
		return 0, fmt.Errorf("%w: unknown method %q", ErrOptionViolation, s)
	}
}

// Status is the terminal state of a Solve call.
type Status int

const (
	// StatusOptimal: no non-basic cell has a negative reduced cost.
	StatusOptimal Status = iota
	// StatusIterationLimit: MaxIterations pivots were spent.
	StatusIterationLimit
	// StatusTimeLimit: TimeLimit elapsed.
	StatusTimeLimit
	// StatusCancelled: the context ended or the OnIteration hook failed.
	StatusCancelled
	// StatusStalled: ResidualFill reached a fixed point.
	StatusStalled
	// StatusFailed: an invariant violation stopped the loop.
	StatusFailed
)

// String returns a lower-case label suitable for logs and metrics.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusIterationLimit:
		return "iteration_limit"
	case StatusTimeLimit:
		return "time_limit"
	case StatusCancelled:
		return "cancelled"
	case StatusStalled:
		return "stalled"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Iteration describes one applied pivot. It is passed to the OnIteration hook.
type Iteration struct {
	Index       int   // 1-based pivot counter
	Enter       Cell  // cell that received units
	ReducedCost int64 // reduced cost of Enter before the pivot (< 0)
	Amount      int64 // units moved into Enter
	Leave       Cell  // cell that left the basis; NoCell for ResidualFill
	Cost        int64 // plan cost after the pivot
}

// Options configures Solve.
//
//	Method        – SteppingStone (default) or ResidualFill.
//	MaxIterations – pivot budget, must be > 0. Default DefaultMaxIterations.
//	TimeLimit     – wall-clock budget; 0 means unlimited.
//	Ctx           – cancellation; checked once per iteration.
//	Logger        – V(1) receives one record per pivot. Default logr.Discard().
//	OnIteration   – called after each pivot; a non-nil error aborts the loop.
type Options struct {
	Method        Method
	MaxIterations int
	TimeLimit     time.Duration
	Ctx           context.Context
	Logger        logr.Logger
	OnIteration   func(Iteration) error

	// first invalid option seen while applying Option funcs
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Method:        SteppingStone,
		MaxIterations: DefaultMaxIterations,
		TimeLimit:     0,
		Ctx:           context.Background(),
		Logger:        logr.Discard(),
		OnIteration:   func(Iteration) error { return nil },
	}
}

// WithMethod selects the pivot method. Unknown values cause ErrOptionViolation.
func WithMethod(m Method) Option {
	return func(o *Options) {
		switch m {
		case SteppingStone, ResidualFill:
			o.Method = m
		default:
			o.setErr(fmt.Errorf("%w: unknown method %d", ErrOptionViolation, int(m)))
		}
	}
}

// WithMaxIterations bounds the number of pivots. n must be positive.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.setErr(fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n))

			return
		}
		o.MaxIterations = n
	}
}

// WithTimeLimit bounds the wall-clock time of the loop. 0 disables the bound.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.setErr(fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d))

			return
		}
		o.TimeLimit = d
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes per-iteration traces to l.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnIteration registers a hook run after every pivot.
func WithOnIteration(fn func(Iteration) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}

// Result holds the outcome of Solve. On ErrIterationLimit, ErrTimeLimit,
// ErrStalled or cancellation it still carries the last plan reached.
type Result struct {
	// Initial is the northwest-corner plan and InitialCost its cost.
	Initial     [][]int64
	InitialCost int64

	// Plan is the final allocation and Cost its total shipping cost.
	Plan [][]int64
	Cost int64

	// Iterations counts applied pivots.
	Iterations int
	Status     Status

	// Potentials of the last optimality test.
	SupplierPotentials []int64
	ConsumerPotentials []int64

	// Residual supply and demand trackers after the run.
	RemainingSupply []int64
	RemainingDemand []int64
}

// Optimal reports whether the run ended with an optimal plan.
func (r Result) Optimal() bool {
	return r.Status == StatusOptimal
}
