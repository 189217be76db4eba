package driver

import (
	"context"
	"fmt"

	"github.com/nvandessel/snakewalk/internal/board"
)

// RunSample draws opts.Samples boards under the fixed seed and simulates
// each. The draw is deterministic: the same seed and ceiling always
// produce the same batch.
func (d *Driver) RunSample(ctx context.Context, opts Options) (Summary, error) {
	if opts.Samples < 1 {
		return Summary{}, fmt.Errorf("samples must be at least 1, got %d", opts.Samples)
	}
	if opts.Ceiling < 2 {
		return Summary{}, fmt.Errorf("ceiling must be at least 2, got %d", opts.Ceiling)
	}

	d.maybeProbe(opts)

	runID, err := d.beginRun(ctx, "sample", opts)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, b := range board.Sample(opts.Samples, opts.Ceiling, opts.Seed) {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		res, err := d.simulate(b, opts)
		if err != nil {
			return sum, err
		}
		sum.Checked++
		if !res.OK {
			sum.Fails++
			d.reportFail(res)
		}
		d.record(ctx, runID, res)
	}

	d.finishRun(ctx, runID, sum)
	d.reportDone(sum)
	return sum, nil
}
