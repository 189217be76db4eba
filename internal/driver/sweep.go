package driver

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nvandessel/snakewalk/internal/board"
	"github.com/nvandessel/snakewalk/internal/walk"
)

// RunSweep simulates every board with A·B below the ceiling. With one
// worker the sweep runs serially; otherwise the boards are distributed
// over a fixed-size worker pool. Each simulation is self-contained, so
// completion order across workers is unspecified. Aggregation, printing
// and persistence all happen on the single consuming goroutine.
func (d *Driver) RunSweep(ctx context.Context, opts Options) (Summary, error) {
	if opts.Workers < 1 {
		return Summary{}, fmt.Errorf("workers must be at least 1, got %d", opts.Workers)
	}
	if opts.Ceiling < 2 {
		return Summary{}, fmt.Errorf("ceiling must be at least 2, got %d", opts.Ceiling)
	}

	total := board.Count(opts.Ceiling)
	if d.JSON {
		d.log.Info("enumerating all boards", "ceiling", opts.Ceiling, "boards", total)
	} else {
		fmt.Fprintf(d.out, "[INFO] Enumerating ALL boards with S<%d (%d boards). VERY slow.\n",
			opts.Ceiling, total)
	}
	d.maybeProbe(opts)

	runID, err := d.beginRun(ctx, "sweep", opts)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	if opts.Workers == 1 {
		err = d.sweepSerial(ctx, runID, opts, &sum)
	} else {
		err = d.sweepParallel(ctx, runID, opts, &sum)
	}
	if err != nil {
		return sum, err
	}

	d.finishRun(ctx, runID, sum)
	d.reportDone(sum)
	return sum, nil
}

// sweepSerial runs the enumeration on the calling goroutine.
func (d *Driver) sweepSerial(ctx context.Context, runID int64, opts Options, sum *Summary) error {
	var simErr error
	board.ForEach(opts.Ceiling, func(b board.Board) bool {
		if err := ctx.Err(); err != nil {
			simErr = err
			return false
		}
		res, err := d.simulate(b, opts)
		if err != nil {
			simErr = err
			return false
		}
		d.consume(ctx, runID, res, sum)
		return true
	})
	return simErr
}

// sweepParallel distributes the enumeration over an errgroup worker
// pool. The feeder closes the job queue when the enumeration is done;
// the calling goroutine is the sole consumer of results.
func (d *Driver) sweepParallel(ctx context.Context, runID int64, opts Options, sum *Summary) error {
	jobs := make(chan board.Board)
	results := make(chan walk.Result)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		var feedErr error
		board.ForEach(opts.Ceiling, func(b board.Board) bool {
			select {
			case jobs <- b:
				return true
			case <-gctx.Done():
				feedErr = gctx.Err()
				return false
			}
		})
		return feedErr
	})

	for i := 0; i < opts.Workers; i++ {
		g.Go(func() error {
			for b := range jobs {
				res, err := d.simulate(b, opts)
				if err != nil {
					return err
				}
				select {
				case results <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(results)
	}()

	for res := range results {
		d.consume(ctx, runID, res, sum)
	}
	return <-done
}

// consume aggregates one result on the single consuming goroutine.
func (d *Driver) consume(ctx context.Context, runID int64, res walk.Result, sum *Summary) {
	sum.Checked++
	if !res.OK {
		sum.Fails++
		d.reportFail(res)
	}
	d.record(ctx, runID, res)
	if sum.Checked%progressInterval == 0 {
		if d.JSON {
			d.log.Info("progress", "checked", sum.Checked, "fails", sum.Fails)
		} else {
			fmt.Fprintf(d.out, "[PROGRESS] checked=%d fails=%d\n", sum.Checked, sum.Fails)
		}
	}
}
