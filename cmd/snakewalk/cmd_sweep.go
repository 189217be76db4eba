package main

import (
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Exhaustively simulate every board under a cell ceiling",
		Long: `Enumerate every board with A·B below the ceiling and simulate all of
them, optionally distributing the independent jobs across a worker pool.
Failures are tallied and reported; the sweep always completes the full
enumeration.

Examples:
  snakewalk sweep --workers 8
  snakewalk sweep --ceiling 100000 --record`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cfg, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			opts := baseOptions(cmd, cfg)
			if cmd.Flags().Changed("workers") {
				opts.Workers, _ = cmd.Flags().GetInt("workers")
			}
			if cmd.Flags().Changed("ceiling") {
				opts.Ceiling, _ = cmd.Flags().GetInt64("ceiling")
			}
			opts.Probe, _ = cmd.Flags().GetBool("probe")
			opts.ProbeBlocks = probeBlocks(cmd, cfg)

			_, err = d.RunSweep(cmd.Context(), opts)
			return err
		},
	}

	cmd.Flags().Int("workers", 0, "Worker pool size (default from config)")
	cmd.Flags().Int64("ceiling", 0, "Exclusive upper bound on A·B (default from config)")
	cmd.Flags().Bool("probe", false, "Print the per-channel token probe before running")
	cmd.Flags().Int("probe-blocks", 0, "Blocks inspected by the probe (default from config)")

	return cmd
}
