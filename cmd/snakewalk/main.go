package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "snakewalk",
		Short: "Torus-coverage test bench for the blind snake conjecture",
		Long: `snakewalk empirically tests whether a deterministic multi-channel
integer-rotation move sequence covers every cell of an A×B torus within
a bounded number of steps.

The generator is fixed: every board sees the identical, freshly seeded
channel set, so runs are bit-exact across invocations and platforms.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().Float64("cap-factor", 0, "Step cap = cap-factor × cell count (default from config)")
	rootCmd.PersistentFlags().Bool("no-cap", false, "Disable the step cap (stop only after full coverage)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace")
	rootCmd.PersistentFlags().Bool("record", false, "Record the run into the SQLite run store")
	rootCmd.PersistentFlags().String("store-dir", "", "Run store directory (default .snakewalk)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newBoardsCmd(),
		newSampleCmd(),
		newSweepCmd(),
		newTheoremCmd(),
		newSelftestCmd(),
		newProbeCmd(),
		newRunsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("snakewalk version %s\n", version)
			}
		},
	}
}
