// SPDX-License-Identifier: MIT

package instance

import (
	"errors"
	"slices"

	"github.com/MEGORD/t-methods-calculator/modi"
)

// ErrSyntax is returned when a file cannot be decoded into an Instance.
var ErrSyntax = errors.New("instance: syntax error")

// Instance is one balanced transportation problem.
type Instance struct {
	Costs  [][]int64 `yaml:"costs" json:"costs"`
	Supply []int64   `yaml:"supply" json:"supply"`
	Demand []int64   `yaml:"demand" json:"demand"`
}

// Suppliers returns the number of supplier rows.
func (in *Instance) Suppliers() int { return len(in.Supply) }

// Consumers returns the number of consumer columns.
func (in *Instance) Consumers() int { return len(in.Demand) }

// Validate runs modi.Validate on the instance.
func (in *Instance) Validate() error {
	return modi.Validate(in.Costs, in.Supply, in.Demand)
}

// Clone returns a deep copy.
func (in *Instance) Clone() *Instance {
	out := &Instance{
		Costs:  make([][]int64, len(in.Costs)),
		Supply: slices.Clone(in.Supply),
		Demand: slices.Clone(in.Demand),
	}
	for i, row := range in.Costs {
		out.Costs[i] = slices.Clone(row)
	}

	return out
}

// Solve runs modi.Solve on the instance. The instance is not modified.
func (in *Instance) Solve(opts ...modi.Option) (modi.Result, error) {
	return modi.Solve(in.Costs, in.Supply, in.Demand, opts...)
}

// NorthwestCorner returns the initial plan without touching the instance.
func (in *Instance) NorthwestCorner() [][]int64 {
	return modi.NorthwestCorner(in.Costs, slices.Clone(in.Supply), slices.Clone(in.Demand))
}
