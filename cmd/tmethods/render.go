// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/MEGORD/t-methods-calculator/instance"
)

// renderPlan writes plan as an aligned table: one row per supplier with its
// total, then a footer with the column totals.
//
//	           C1  C2  C3  C4  Supply
//	S1         5   0   0   2   7
//	...
//	Demand     5   8   7   14  34
func renderPlan(w io.Writer, title string, in *instance.Instance, plan [][]int64) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	n := in.Consumers()
	fmt.Fprint(tw, "\t")
	for j := 0; j < n; j++ {
		fmt.Fprintf(tw, "C%d\t", j+1)
	}
	fmt.Fprint(tw, "Supply\t\n")

	colTotals := make([]int64, n)
	var grand int64
	for i, row := range plan {
		fmt.Fprintf(tw, "S%d\t", i+1)
		var rowTotal int64
		for j, x := range row {
			fmt.Fprintf(tw, "%s\t", strconv.FormatInt(x, 10))
			rowTotal += x
			colTotals[j] += x
		}
		fmt.Fprintf(tw, "%d\t\n", rowTotal)
		grand += rowTotal
	}

	fmt.Fprint(tw, "Demand\t")
	for _, x := range colTotals {
		fmt.Fprintf(tw, "%d\t", x)
	}
	fmt.Fprintf(tw, "%d\t\n", grand)

	return tw.Flush()
}

// renderSummary prints the cost line; iterations < 0 omits the solver fields.
func renderSummary(w io.Writer, cost int64, iterations int, status string) error {
	if iterations < 0 {
		_, err := fmt.Fprintf(w, "Total cost: %d\n", cost)

		return err
	}
	_, err := fmt.Fprintf(w, "Total cost: %d\nStatus: %s\nIterations: %d\n", cost, status, iterations)

	return err
}
