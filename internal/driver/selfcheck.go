package driver

import (
	"context"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/nvandessel/snakewalk/internal/board"
	"github.com/nvandessel/snakewalk/internal/walk"
)

// SelfCheck cross-validates the simulator: for each board it runs both
// the real simulator and an independently written, inlined walk and
// compares the two results field by field. Any divergence is an
// implementation bug in one of the two paths and fails the check.
func (d *Driver) SelfCheck(ctx context.Context, boards []board.Board, opts Options) error {
	if opts.ProbeBlocks > 0 && opts.Probe {
		d.PrintProbe(opts.ProbeBlocks)
	}

	for _, b := range boards {
		if err := ctx.Err(); err != nil {
			return err
		}
		got, err := d.simulate(b, opts)
		if err != nil {
			return err
		}
		want, err := d.inlineWalk(b, opts)
		if err != nil {
			return err
		}
		if diff := cmp.Diff(want, got); diff != "" {
			return fmt.Errorf("self-check divergence on %s (-inline +simulator):\n%s", b, diff)
		}

		status := "OK"
		if !got.OK {
			status = "FAIL"
		}
		fmt.Fprintf(d.out, "[%s] %s: steps=%d (%.3f·S) cap=%s\n",
			status, b, got.Steps, got.Ratio(), capLabel(got))
	}
	return nil
}

// inlineWalk re-implements the whole walk with nothing shared with the
// sequencer or simulator beyond the channel constants. It is kept
// flat so the two code paths cannot fail the same way.
func (d *Driver) inlineWalk(b board.Board, opts Options) (walk.Result, error) {
	if b.A <= 0 || b.B <= 0 {
		return walk.Result{}, fmt.Errorf("%w: %s", walk.ErrBadDimensions, b)
	}

	cells := b.A * b.B
	res := walk.Result{A: b.A, B: b.B, Cells: cells, CapUsed: opts.UseCap}
	if opts.UseCap {
		res.Cap = int64(opts.CapFactor * float64(cells))
	}

	visited := map[[2]int64]bool{{0, 0}: true}
	if int64(len(visited)) == cells {
		res.OK = true
		return res, nil
	}

	k := len(d.params.Channels)
	xs := make([]uint64, k)
	var x, y, steps int64
	var n uint64

	step := func(right bool) (doneOK, doneFail bool) {
		if right {
			x = (x + 1) % b.A
		} else {
			y = (y + 1) % b.B
		}
		steps++
		visited[[2]int64{x, y}] = true
		if int64(len(visited)) == cells {
			return true, false
		}
		if opts.UseCap && steps > res.Cap {
			return false, true
		}
		return false, false
	}

	for {
		i := int(n % uint64(k))
		ch := d.params.Channels[i]
		xs[i] = (xs[i] + ch.Step) % d.params.Modulus
		t := 1
		if xs[i] >= ch.Threshold {
			t = 2
		}

		for j := 0; j < t; j++ {
			if ok, fail := step(true); ok || fail {
				res.Steps = steps
				res.OK = ok
				return res, nil
			}
		}
		if ok, fail := step(false); ok || fail {
			res.Steps = steps
			res.OK = ok
			return res, nil
		}
		n++
	}
}
