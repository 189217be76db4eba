package simulation

import (
	"github.com/nvandessel/snakewalk/internal/board"
	"github.com/nvandessel/snakewalk/internal/rotation"
)

// Scenario defines a complete coverage experiment: a set of boards walked
// under a shared rotation schedule and cap policy.
type Scenario struct {
	Name      string
	Boards    []board.Board
	CapFactor float64
	UseCap    bool

	// Params, when non-nil, overrides the default rotation schedule. Use
	// this for scenarios that need synthetic channel constants.
	Params *rotation.Params
}

// BoardResult pairs a board with its walk outcome.
type BoardResult struct {
	Board   board.Board
	Steps   int64
	OK      bool
	CapUsed bool
	Cap     int64
}

// ScenarioResult collects the per-board outcomes of one scenario run.
type ScenarioResult struct {
	Scenario Scenario
	Boards   []BoardResult
}

// Fails returns the boards that were not fully covered.
func (r ScenarioResult) Fails() []BoardResult {
	var out []BoardResult
	for _, br := range r.Boards {
		if !br.OK {
			out = append(out, br)
		}
	}
	return out
}
