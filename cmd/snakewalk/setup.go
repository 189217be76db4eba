package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvandessel/snakewalk/internal/config"
	"github.com/nvandessel/snakewalk/internal/driver"
	"github.com/nvandessel/snakewalk/internal/logging"
	"github.com/nvandessel/snakewalk/internal/rotation"
	"github.com/nvandessel/snakewalk/internal/store"
)

// setup materializes config, logging, optional persistence and the
// driver for one command invocation. The returned cleanup closes the
// failure log and run store and must always be called.
func setup(cmd *cobra.Command) (*driver.Driver, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v, _ := cmd.Flags().GetString("store-dir"); v != "" {
		cfg.Store.Dir = v
	}
	if v, _ := cmd.Flags().GetBool("record"); v {
		cfg.Store.Record = true
	}
	if cmd.Flags().Changed("cap-factor") {
		cfg.Run.CapFactor, _ = cmd.Flags().GetFloat64("cap-factor")
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logging.NewLogger(cfg.Logging.Level, os.Stderr)
	failures := logging.NewFailureLogger(cfg.Store.Dir, cfg.Logging.Level)

	d := driver.New(rotation.DefaultParams(), os.Stdout, log)
	d.Failures = failures
	d.JSON, _ = cmd.Flags().GetBool("json")

	var st *store.RunStore
	if cfg.Store.Record {
		st, err = store.Open(cfg.Store.Dir)
		if err != nil {
			failures.Close()
			return nil, nil, nil, fmt.Errorf("opening run store: %w", err)
		}
		d.Store = st
	}

	cleanup := func() {
		failures.Close()
		if st != nil {
			st.Close()
		}
	}
	return d, cfg, cleanup, nil
}

// baseOptions builds driver options from the config defaults plus the
// persistent cap flags. Mode-specific flags are layered on by callers.
func baseOptions(cmd *cobra.Command, cfg *config.Config) driver.Options {
	noCap, _ := cmd.Flags().GetBool("no-cap")
	return driver.Options{
		CapFactor:   cfg.Run.CapFactor,
		UseCap:      !noCap,
		Workers:     cfg.Run.Workers,
		Samples:     cfg.Run.Samples,
		Seed:        cfg.Run.Seed,
		Ceiling:     cfg.Run.Ceiling,
		ProbeBlocks: cfg.Run.ProbeBlocks,
	}
}
