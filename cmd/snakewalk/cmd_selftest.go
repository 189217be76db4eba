package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/snakewalk/internal/board"
)

func newSelftestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest <AxB> [<AxB>...]",
		Short: "Cross-validate the simulator against an inlined walk",
		Long: `Run each board through both the real simulator and an independently
written, inlined re-implementation of the walk, and compare the results.
A divergence means one of the two paths has an implementation bug.

Example:
  snakewalk selftest 18x26226 6x31245`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, cfg, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			boards := board.ParseList(args)
			if len(boards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No valid boards provided.")
				return nil
			}

			opts := baseOptions(cmd, cfg)
			opts.Probe, _ = cmd.Flags().GetBool("probe")
			opts.ProbeBlocks = probeBlocks(cmd, cfg)

			return d.SelfCheck(cmd.Context(), boards, opts)
		},
	}

	cmd.Flags().Bool("probe", false, "Print the per-channel token probe before running")
	cmd.Flags().Int("probe-blocks", 0, "Blocks inspected by the probe (default from config)")

	return cmd
}
