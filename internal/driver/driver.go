// Package driver orchestrates batches of coverage simulations: explicit
// board lists, seeded random samples, and exhaustive parallel sweeps.
// Every mode consumes the simulator as a black box and treats individual
// coverage failures as data points, never as batch-fatal errors.
package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/nvandessel/snakewalk/internal/board"
	"github.com/nvandessel/snakewalk/internal/logging"
	"github.com/nvandessel/snakewalk/internal/rotation"
	"github.com/nvandessel/snakewalk/internal/store"
	"github.com/nvandessel/snakewalk/internal/walk"
)

// progressInterval is the board cadence of sweep progress lines.
const progressInterval = 10_000

// Options are the per-batch experiment parameters. Zero values are not
// defaulted here; the caller (CLI or config) supplies validated values.
type Options struct {
	CapFactor   float64
	UseCap      bool
	Workers     int
	Samples     int
	Seed        int64
	Ceiling     int64
	Probe       bool
	ProbeBlocks int
}

// Summary aggregates a completed batch.
type Summary struct {
	Checked int64 `json:"checked"`
	Fails   int64 `json:"fails"`
}

// Driver runs experiment batches. Out receives the human- or
// JSON-readable report; Store and Failures are optional sinks and may be
// nil.
type Driver struct {
	params rotation.Params
	out    io.Writer
	log    *slog.Logger

	// JSON switches the report from tagged text lines to JSONL.
	JSON bool

	// Store, when non-nil, records the run and every result row.
	Store *store.RunStore

	// Failures, when non-nil, receives a JSONL record per failed board.
	Failures *logging.FailureLogger
}

// New creates a driver over the given generator parameters.
func New(params rotation.Params, out io.Writer, log *slog.Logger) *Driver {
	return &Driver{params: params, out: out, log: log}
}

// simulate runs one board with this driver's generator configuration.
func (d *Driver) simulate(b board.Board, opts Options) (walk.Result, error) {
	return walk.Simulate(d.params, b.A, b.B, opts.CapFactor, opts.UseCap)
}

// beginRun opens a store run row when recording is enabled. The returned
// id is 0 when the store is nil.
func (d *Driver) beginRun(ctx context.Context, mode string, opts Options) (int64, error) {
	if d.Store == nil {
		return 0, nil
	}
	return d.Store.BeginRun(ctx, store.RunMeta{
		Mode:      mode,
		CapFactor: opts.CapFactor,
		CapUsed:   opts.UseCap,
		Ceiling:   opts.Ceiling,
		Seed:      opts.Seed,
	})
}

// record persists one result and routes failures to the failure log.
func (d *Driver) record(ctx context.Context, runID int64, res walk.Result) {
	if d.Store != nil {
		if err := d.Store.RecordResult(ctx, runID, res); err != nil {
			d.log.Warn("record result", "board", fmt.Sprintf("%dx%d", res.A, res.B), "error", err)
		}
	}
	if !res.OK {
		d.Failures.Log(map[string]any{
			"a": res.A, "b": res.B, "cells": res.Cells,
			"steps": res.Steps, "cap": res.Cap,
		})
	}
	d.log.Log(ctx, logging.LevelTrace, "board simulated",
		"board", fmt.Sprintf("%dx%d", res.A, res.B), "steps", res.Steps, "ok", res.OK)
}

// finishRun closes the store run row when recording is enabled.
func (d *Driver) finishRun(ctx context.Context, runID int64, sum Summary) {
	if d.Store == nil {
		return
	}
	if err := d.Store.FinishRun(ctx, runID, sum.Checked, sum.Fails); err != nil {
		d.log.Warn("finish run", "run_id", runID, "error", err)
	}
}

// reportFail prints the failure line for a board that missed coverage.
func (d *Driver) reportFail(res walk.Result) {
	if d.JSON {
		json.NewEncoder(d.out).Encode(res)
		return
	}
	fmt.Fprintf(d.out, "[FAIL] %dx%d steps=%d (%.3f·S) cap=%d\n",
		res.A, res.B, res.Steps, res.Ratio(), res.Cap)
}

// reportDone prints the batch aggregate.
func (d *Driver) reportDone(sum Summary) {
	if d.JSON {
		json.NewEncoder(d.out).Encode(sum)
		return
	}
	fmt.Fprintf(d.out, "[DONE] checked=%d fails=%d\n", sum.Checked, sum.Fails)
}

// maybeProbe prints the channel probe before a batch when requested.
func (d *Driver) maybeProbe(opts Options) {
	if !opts.Probe {
		return
	}
	d.PrintProbe(opts.ProbeBlocks)
}

// capLabel renders the cap for board report lines.
func capLabel(res walk.Result) string {
	if !res.CapUsed {
		return "off"
	}
	return fmt.Sprintf("%d", res.Cap)
}
