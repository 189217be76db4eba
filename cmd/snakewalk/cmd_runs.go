package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvandessel/snakewalk/internal/config"
	"github.com/nvandessel/snakewalk/internal/store"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded experiment runs",
		Long: `List the runs recorded into the SQLite run store with their aggregate
checked/failed counts. Use --failed to show the failing boards of one run.

Examples:
  snakewalk runs
  snakewalk runs --failed 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if v, _ := cmd.Flags().GetString("store-dir"); v != "" {
				cfg.Store.Dir = v
			}
			jsonOut, _ := cmd.Flags().GetBool("json")

			st, err := store.Open(cfg.Store.Dir)
			if err != nil {
				return fmt.Errorf("opening run store: %w", err)
			}
			defer st.Close()

			ctx := cmd.Context()

			if runID, _ := cmd.Flags().GetInt64("failed"); runID > 0 {
				failed, err := st.FailedResults(ctx, runID)
				if err != nil {
					return err
				}
				if jsonOut {
					return json.NewEncoder(os.Stdout).Encode(failed)
				}
				if len(failed) == 0 {
					fmt.Printf("Run %d has no failed boards.\n", runID)
					return nil
				}
				for _, r := range failed {
					fmt.Printf("[FAIL] %dx%d steps=%d (%.3f·S) cap=%d\n",
						r.A, r.B, r.Steps, r.Ratio(), r.Cap)
				}
				return nil
			}

			runs, err := st.ListRuns(ctx)
			if err != nil {
				return err
			}
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No recorded runs. Re-run with --record to persist results.")
				return nil
			}
			for _, r := range runs {
				state := "running"
				if r.FinishedAt != nil {
					state = r.FinishedAt.Format(time.RFC3339)
				}
				fmt.Printf("%d. %s cap_factor=%.1f ceiling=%d checked=%d fails=%d finished=%s\n",
					r.ID, r.Mode, r.CapFactor, r.Ceiling, r.Checked, r.Fails, state)
			}
			return nil
		},
	}

	cmd.Flags().Int64("failed", 0, "Show the failing boards of the given run ID")

	return cmd
}
