package main

import (
	"github.com/spf13/cobra"
)

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print per-channel token statistics",
		Long: `Advance a fresh channel set for N blocks and print, per channel, its
step constant, threshold ratio, observed 1/2 token counts and a short
prefix of the emitted tokens. Purely diagnostic.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cfg, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			d.PrintProbe(probeBlocks(cmd, cfg))
			return nil
		},
	}

	cmd.Flags().Int("probe-blocks", 0, "Blocks to inspect (default from config)")

	return cmd
}
