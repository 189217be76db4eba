package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/snakewalk/internal/board"
	"github.com/nvandessel/snakewalk/internal/config"
)

func newBoardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards <AxB> [<AxB>...]",
		Short: "Simulate an explicit list of boards",
		Long: `Run the coverage simulation on a literal list of board specs.

Each spec has the form "<A>x<B>", e.g. 18x26226. Malformed specs are
skipped silently; an individual board failing to cover within the cap is
reported but never aborts the batch.

Examples:
  snakewalk boards 18x26226 6x31245 --probe --no-cap
  snakewalk boards 1000x1000 --cap-factor 40`,
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

			_, err = d.RunBoards(cmd.Context(), boards, opts)
			return err
		},
	}

	cmd.Flags().Bool("probe", false, "Print the per-channel token probe before running")
	cmd.Flags().Int("probe-blocks", 0, "Blocks inspected by the probe (default from config)")

	return cmd
}

// probeBlocks resolves the probe-blocks flag against the config default.
func probeBlocks(cmd *cobra.Command, cfg *config.Config) int {
	if n, _ := cmd.Flags().GetInt("probe-blocks"); n > 0 {
		return n
	}
	return cfg.Run.ProbeBlocks
}
