// Package simulation provides a test harness for validating coverage
// properties of the snake walk.
//
// Scenarios run the real Sequencer and Simulator against sets of boards
// under a shared cap policy, capturing per-board outcomes for
// property-based assertions. Traces replay a single walk move by move to
// assert properties of the progression itself, such as monotonic growth
// of the visited set.
//
// Usage:
//
//	func TestSmallBoardsCovered(t *testing.T) {
//	    r := simulation.NewRunner(t)
//	    result := r.Run(simulation.Scenario{
//	        Name:      "small-boards",
//	        Boards:    []board.Board{{A: 3, B: 3}, {A: 10, B: 10}},
//	        CapFactor: 35,
//	        UseCap:    true,
//	    })
//	    simulation.AssertAllCovered(t, result)
//	}
package simulation
