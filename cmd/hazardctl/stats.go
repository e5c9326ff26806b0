package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xyz-asif/hazardwatch/internal/features/reports"
)

func newStatsCmd(now func() time.Time) *cobra.Command {
	data := &datasetFlags{now: now}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard summary of a generated dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := reports.BuildDashboard(data.generate(), data.now())
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, d)
			}

			fmt.Fprintf(out, "Total %d  Active %d  Verified %d  Archived %d  Townships %d\n",
				d.Total, d.Active, d.Verified, d.Archived, d.Townships)

			fmt.Fprintln(out, "\nBy category:")
			for _, c := range d.Categories {
				fmt.Fprintf(out, "  %-15s %3d  %5.1f%%\n", c.Label, c.Count, c.Percent)
			}

			fmt.Fprintln(out, "\nTop townships:")
			for _, t := range d.TopTownships {
				fmt.Fprintf(out, "  %-15s %3d\n", t.Township, t.Count)
			}

			fmt.Fprintln(out, "\nMonthly:")
			for _, m := range d.Monthly {
				fmt.Fprintf(out, "  %s %d  reports %3d  verified %3d\n", m.Name, m.Year, m.Reports, m.Verified)
			}
			return nil
		},
	}
	data.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
