package walk

import (
	"errors"
	"fmt"

	"github.com/nvandessel/snakewalk/internal/rotation"
)

// ErrBadDimensions is returned when a board dimension is not positive.
var ErrBadDimensions = errors.New("board dimensions must be positive")

// Result is the immutable record of one coverage simulation.
type Result struct {
	A     int64 `json:"a"`
	B     int64 `json:"b"`
	Cells int64 `json:"cells"` // A·B
	Steps int64 `json:"steps"`
	OK    bool  `json:"ok"`

	// CapUsed reports whether a step cap was in force; Cap is its value
	// (floor(capFactor · Cells)) and is meaningless when CapUsed is false.
	CapUsed bool  `json:"cap_used"`
	Cap     int64 `json:"cap,omitempty"`
}

// Ratio returns steps divided by cell count.
func (r Result) Ratio() float64 {
	return float64(r.Steps) / float64(r.Cells)
}

// Simulate walks the A×B torus from (0, 0) under a fresh sequencer until
// every cell has been visited, or, when useCap is set, until the step
// count exceeds floor(capFactor · A·B).
//
// The coverage check runs strictly before the cap check on every step: a
// board that covers exactly on the step that also exceeds the cap is
// reported OK. With useCap false the loop is unbounded and returns
// only on full coverage.
func Simulate(params rotation.Params, a, b int64, capFactor float64, useCap bool) (Result, error) {
	if a <= 0 || b <= 0 {
		return Result{}, fmt.Errorf("%w: %dx%d", ErrBadDimensions, a, b)
	}

	cells := a * b
	res := Result{A: a, B: b, Cells: cells, CapUsed: useCap}
	if useCap {
		res.Cap = int64(capFactor * float64(cells))
	}

	// Visited cells indexed y·A + x. The start cell counts as visited
	// before any move, so a 1×1 board covers in zero steps.
	visited := make([]bool, cells)
	visited[0] = true
	covered := int64(1)
	if covered == cells {
		res.OK = true
		return res, nil
	}

	seq := NewSequencer(params)
	var x, y, steps int64
	for {
		switch seq.Next() {
		case MoveRight:
			x = (x + 1) % a
		case MoveUp:
			y = (y + 1) % b
		}
		steps++

		if idx := y*a + x; !visited[idx] {
			visited[idx] = true
			covered++
		}

		if covered == cells {
			res.Steps = steps
			res.OK = true
			return res, nil
		}
		if useCap && steps > res.Cap {
			res.Steps = steps
			res.OK = false
			return res, nil
		}
	}
}
