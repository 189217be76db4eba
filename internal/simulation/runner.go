package simulation

import (
	"testing"

	"github.com/nvandessel/snakewalk/internal/board"
	"github.com/nvandessel/snakewalk/internal/rotation"
	"github.com/nvandessel/snakewalk/internal/walk"
)

// Runner orchestrates coverage experiments against the real simulator and
// rotation schedule.
type Runner struct {
	t      *testing.T
	params rotation.Params
}

// NewRunner creates a simulation runner using the default rotation schedule.
func NewRunner(t *testing.T) *Runner {
	t.Helper()
	return &Runner{t: t, params: rotation.DefaultParams()}
}

// Run executes the scenario and returns the collected per-board results.
func (r *Runner) Run(scenario Scenario) ScenarioResult {
	r.t.Helper()

	params := r.params
	if scenario.Params != nil {
		params = *scenario.Params
	}

	result := ScenarioResult{Scenario: scenario}
	for _, b := range scenario.Boards {
		res, err := walk.Simulate(params, b.A, b.B, scenario.CapFactor, scenario.UseCap)
		if err != nil {
			r.t.Fatalf("Run: scenario %q: board %s: %v", scenario.Name, b, err)
		}
		result.Boards = append(result.Boards, BoardResult{
			Board:   b,
			Steps:   res.Steps,
			OK:      res.OK,
			CapUsed: res.CapUsed,
			Cap:     res.Cap,
		})
	}
	return result
}

// StepTrace records the visited-cell count after every move of a single
// board walk, for property assertions over the walk's progression.
type StepTrace struct {
	Board   board.Board
	Counts  []int64
	Covered bool
}

// Trace replays a walk move by move, recording the distinct-cell count
// after each step. It stops when the board is covered or maxSteps moves
// have been made.
func (r *Runner) Trace(b board.Board, maxSteps int64) StepTrace {
	r.t.Helper()

	seq := walk.NewSequencer(r.params)
	cells := b.A * b.B
	visited := make([]bool, cells)
	trace := StepTrace{Board: b}

	var x, y, covered int64
	visited[0] = true
	covered = 1
	for steps := int64(0); covered < cells && steps < maxSteps; steps++ {
		if seq.Next() == walk.MoveRight {
			x = (x + 1) % b.A
		} else {
			y = (y + 1) % b.B
		}
		if idx := y*b.A + x; !visited[idx] {
			visited[idx] = true
			covered++
		}
		trace.Counts = append(trace.Counts, covered)
	}
	trace.Covered = covered == cells
	return trace
}
