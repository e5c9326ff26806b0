package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/xyz-asif/hazardwatch/internal/features/reports"
)

type datasetFlags struct {
	count int
	seed  uint64
	now   func() time.Time
}

func (d *datasetFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&d.count, "count", reports.DefaultSeedCount, "number of reports to generate")
	cmd.Flags().Uint64Var(&d.seed, "seed", 1, "random seed (0 uses the clock)")
}

func (d *datasetFlags) generate() []reports.Report {
	return reports.GenerateSeed(d.count, d.now(), reports.NewRand(d.seed))
}

func newRootCmd(now func() time.Time) *cobra.Command {
	root := &cobra.Command{
		Use:           "hazardctl",
		Short:         "Operator tools for the HazardWatch API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSeedCmd(now),
		newStatsCmd(now),
		newFilterCmd(now),
		newCheckCmd(),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
