package driver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nvandessel/snakewalk/internal/board"
)

// RunBoards simulates an explicit board list and reports one line per
// board. Coverage failures are tallied, never fatal.
func (d *Driver) RunBoards(ctx context.Context, boards []board.Board, opts Options) (Summary, error) {
	d.maybeProbe(opts)

	runID, err := d.beginRun(ctx, "boards", opts)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, b := range boards {
		res, err := d.simulate(b, opts)
		if err != nil {
			return sum, err
		}
		sum.Checked++
		if !res.OK {
			sum.Fails++
		}
		d.record(ctx, runID, res)

		if d.JSON {
			json.NewEncoder(d.out).Encode(res)
			continue
		}
		status := "OK"
		if !res.OK {
			status = "FAIL"
		}
		fmt.Fprintf(d.out, "[%s] %dx%d: steps=%d (%.3f·S), S=%d cap=%s\n",
			status, res.A, res.B, res.Steps, res.Ratio(), res.Cells, capLabel(res))
	}

	d.finishRun(ctx, runID, sum)
	return sum, nil
}
