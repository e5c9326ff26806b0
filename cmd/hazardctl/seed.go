package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newSeedCmd(now func() time.Time) *cobra.Command {
	data := &datasetFlags{now: now}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print a generated report dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := data.generate()
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, list)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tSTATUS\tCATEGORY\tTOWNSHIP\tTITLE")
			for _, r := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.CreatedAt.Format("2006-01-02"), r.Status, r.Category.Label(), r.Township, r.Title)
			}
			return tw.Flush()
		},
	}
	data.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
