package main

import (
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Simulate a seeded random sample of boards",
		Long: `Draw N boards with A·B below the ceiling under a fixed seed and
simulate each. The draw is deterministic: the same seed and ceiling
always produce the same batch.

Examples:
  snakewalk sample --samples 5000
  snakewalk sample --samples 200 --seed 7 --ceiling 100000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cfg, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			opts := baseOptions(cmd, cfg)
			if cmd.Flags().Changed("samples") {
				opts.Samples, _ = cmd.Flags().GetInt("samples")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if cmd.Flags().Changed("ceiling") {
				opts.Ceiling, _ = cmd.Flags().GetInt64("ceiling")
			}
			opts.Probe, _ = cmd.Flags().GetBool("probe")
			opts.ProbeBlocks = probeBlocks(cmd, cfg)

			_, err = d.RunSample(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().Int("samples", 0, "Number of boards to draw (default from config)")
	cmd.Flags().Int64("seed", 0, "Random seed for the board draw (default from config)")
	cmd.Flags().Int64("ceiling", 0, "Exclusive upper bound on A·B (default from config)")
	cmd.Flags().Bool("probe", false, "Print the per-channel token probe before running")
	cmd.Flags().Int("probe-blocks", 0, "Blocks inspected by the probe (default from config)")

	return cmd
}
