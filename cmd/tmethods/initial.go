// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/MEGORD/t-methods-calculator/instance"
	"github.com/MEGORD/t-methods-calculator/modi"
)

// InitialOptions prints the northwest-corner plan of one instance.
type InitialOptions struct {
	*rootOptions
	File string
}

// NewCommandInitial builds "tmethods initial".
func NewCommandInitial(root *rootOptions) *cobra.Command {
	o := &InitialOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "initial -f FILE",
		Short: "Print the northwest-corner plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.Run()
		},
	}
	cmd.Flags().StringVarP(&o.File, flagFile, "f", "data_file.txt", "instance file (text, yaml or json)")

	return cmd
}

// Run loads, validates and prints.
func (o *InitialOptions) Run() error {
	in, err := instance.Load(o.File)
	if err != nil {
		return err
	}
	if err = in.Validate(); err != nil {
		return err
	}

	plan := in.NorthwestCorner()
	o.log.Info("initial plan built",
		"file", o.File,
		"suppliers", in.Suppliers(),
		"consumers", in.Consumers())

	if err = renderPlan(o.out, "Initial plan (northwest corner)", in, plan); err != nil {
		return err
	}

	return renderSummary(o.out, modi.TotalCost(in.Costs, plan), -1, "")
}
