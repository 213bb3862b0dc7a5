// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/MEGORD/t-methods-calculator/instance"
	"github.com/MEGORD/t-methods-calculator/internal/metrics"
	"github.com/MEGORD/t-methods-calculator/modi"
)

// OptimalOptions solves one instance and prints the final plan.
type OptimalOptions struct {
	*rootOptions
	File string
}

// NewCommandOptimal builds "tmethods optimal".
func NewCommandOptimal(root *rootOptions) *cobra.Command {
	o := &OptimalOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "optimal -f FILE",
		Short: "Improve the northwest-corner plan with the method of potentials",
		Long: heredoc.Doc(`
			Improve the northwest-corner plan with the method of potentials.

			Methods:
			  stepping-stone  pivot along the closed loop of basic cells (default)
			  residual-fill   assign min(remaining supply, remaining demand) to the
			                  entering cell; stops with a stall error once nothing is left

			Per-iteration progress is logged at debug level.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.Run(cmd)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.File, flagFile, "f", "data_file.txt", "instance file (text, yaml or json)")
	f.String(flagMethod, modi.SteppingStone.String(), "pivot method: stepping-stone or residual-fill")
	f.Int(flagMaxIter, modi.DefaultMaxIterations, "maximum number of pivots")
	f.Duration(flagTimeLimit, 0, "wall-clock budget for the improvement loop (0 = unlimited)")
	root.bind("solver.method", f.Lookup(flagMethod))
	root.bind("solver.max_iterations", f.Lookup(flagMaxIter))
	root.bind("solver.time_limit", f.Lookup(flagTimeLimit))

	return cmd
}

// Run solves and prints. A partial plan is printed before a budget or stall
// error is returned.
func (o *OptimalOptions) Run(cmd *cobra.Command) error {
	in, err := instance.Load(o.File)
	if err != nil {
		return err
	}
	method, opts, err := o.conf.SolveOptions()
	if err != nil {
		return err
	}
	opts = append(opts,
		modi.WithContext(cmd.Context()),
		modi.WithLogger(o.log.Logr.WithName("modi")),
	)

	start := time.Now()
	res, solveErr := in.Solve(opts...)
	elapsed := time.Since(start)

	o.log.Info("solve finished",
		"file", o.File,
		"method", method.String(),
		"status", res.Status.String(),
		"iterations", res.Iterations,
		"cost", res.Cost,
		"elapsed", elapsed)

	if o.conf.Metrics.File != "" {
		rec := metrics.New()
		rec.Observe(method, res, elapsed)
		if err = rec.WriteTextfile(o.conf.Metrics.File); err != nil {
			o.log.Error("write metrics", "file", o.conf.Metrics.File, "error", err)
		}
	}

	if res.Plan != nil {
		title := "Optimal plan (method of potentials)"
		if !res.Optimal() {
			title = "Last plan reached"
		}
		if err = renderPlan(o.out, title, in, res.Plan); err != nil {
			return err
		}
		if err = renderSummary(o.out, res.Cost, res.Iterations, res.Status.String()); err != nil {
			return err
		}
	}

	return solveErr
}
