package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xyz-asif/hazardwatch/internal/features/reports"
)

func newFilterCmd(now func() time.Time) *cobra.Command {
	data := &datasetFlags{now: now}
	var (
		f         reports.Filter
		timeRange string
		markers   bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter a generated dataset the way the public list does",
		RunE: func(cmd *cobra.Command, _ []string) error {
			days, err := reports.ParseTimeRange(timeRange)
			if err != nil {
				return err
			}
			f.TimeRangeDays = days

			matched := reports.Apply(data.generate(), f, data.now())
			out := cmd.OutOrStdout()
			if markers {
				return writeJSON(out, reports.MapMarkers(matched))
			}

			for _, r := range matched {
				fmt.Fprintf(out, "%s  %-8s  %-14s  %s (%s)\n",
					r.ID, r.Status, r.Category.Label(), r.Title, r.Township)
			}
			fmt.Fprintf(out, "%d of %d reports\n", len(matched), data.count)
			return nil
		},
	}
	data.register(cmd)
	cmd.Flags().StringVar(&f.Search, "search", "", "text matched against title, township and description")
	cmd.Flags().StringVar(&f.Status, "status", reports.All, "active, verified, archived or all")
	cmd.Flags().StringVar(&f.Category, "category", reports.All, "category value or all")
	cmd.Flags().StringVar(&timeRange, "time-range", reports.All, "7days, 30days, 90days or all")
	cmd.Flags().BoolVar(&markers, "markers", false, "print map markers as JSON")
	return cmd
}
