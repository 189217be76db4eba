package walk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nvandessel/snakewalk/internal/rotation"
)

func collect(s *Sequencer, n int) []Move {
	out := make([]Move, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

// TestFirstBlocksPinned pins the opening of the production move stream.
// Block n draws channel n mod 4 and emits t RIGHTs then one UP.
func TestFirstBlocksPinned(t *testing.T) {
	s := NewSequencer(rotation.DefaultParams())

	R, U := MoveRight, MoveUp
	want := []Move{
		R, U, // block 0: channel 0, t=1
		R, R, U, // block 1: channel 1, t=2
		R, U, // block 2: channel 2, t=1
		R, U, // block 3: channel 3, t=1
		R, U, // block 4: channel 0, t=1
		R, U, // block 5: channel 1, t=1
		R, R, U, // block 6: channel 2, t=2
		R, U, // block 7: channel 3, t=1
	}
	if diff := cmp.Diff(want, collect(s, len(want))); diff != "" {
		t.Fatalf("opening stream mismatch (-want +got):\n%s", diff)
	}
}

// TestBlockStructure checks that the stream parses as repeated RIGHT-run
// blocks with run length 1 or 2, each closed by a single UP.
func TestBlockStructure(t *testing.T) {
	s := NewSequencer(rotation.DefaultParams())

	moves := collect(s, 10_000)
	run := 0
	for i, m := range moves {
		switch m {
		case MoveRight:
			run++
			if run > 2 {
				t.Fatalf("move %d: RIGHT run of length %d", i, run)
			}
		case MoveUp:
			if run == 0 {
				t.Fatalf("move %d: UP with no preceding RIGHT", i)
			}
			run = 0
		}
	}
}

func TestSequencersAreIndependent(t *testing.T) {
	p := rotation.DefaultParams()
	a := NewSequencer(p)
	b := NewSequencer(p)

	// Drain one sequencer far ahead; a fresh one must still start over.
	collect(a, 5000)
	first := collect(NewSequencer(p), 100)
	if diff := cmp.Diff(first, collect(b, 100)); diff != "" {
		t.Errorf("fresh sequencers diverged (-a +b):\n%s", diff)
	}
}

func TestStreamDeterminism(t *testing.T) {
	p := rotation.DefaultParams()
	first := collect(NewSequencer(p), 50_000)
	second := collect(NewSequencer(p), 50_000)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("streams diverged at move %d", i)
		}
	}
}

func TestUpFractionWithinBlockBounds(t *testing.T) {
	s := NewSequencer(rotation.DefaultParams())

	moves := collect(s, 100_000)
	ups := 0
	for _, m := range moves {
		if m == MoveUp {
			ups++
		}
	}
	// Every block is 2 or 3 moves with exactly one UP, so UP frequency
	// must land in [1/3, 1/2].
	frac := float64(ups) / float64(len(moves))
	if frac < 1.0/3 || frac > 0.5 {
		t.Errorf("UP fraction %.4f outside [0.333, 0.5]", frac)
	}
}
