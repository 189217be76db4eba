package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		tok  string
		want Board
		ok   bool
	}{
		{"3x5", Board{A: 3, B: 5}, true},
		{"10X10", Board{A: 10, B: 10}, true},
		{"1x1", Board{A: 1, B: 1}, true},
		{"0x5", Board{}, false},
		{"5x0", Board{}, false},
		{"-2x3", Board{}, false},
		{"3x", Board{}, false},
		{"x3", Board{}, false},
		{"35", Board{}, false},
		{"axb", Board{}, false},
		{"3x4x5", Board{}, false},
		{"", Board{}, false},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.tok)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Parse(%q) = %v, %v; want %v, %v", tc.tok, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseListSkipsMalformed(t *testing.T) {
	got := ParseList([]string{"2x3", "bogus", "10x10", "0x1", "7x1"})
	want := []Board{{A: 2, B: 3}, {A: 10, B: 10}, {A: 7, B: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseList mismatch (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	if got := (Board{A: 12, B: 34}).String(); got != "12x34" {
		t.Errorf("String() = %q, want \"12x34\"", got)
	}
}

func TestForEachOrderAndBounds(t *testing.T) {
	var got []Board
	ForEach(7, func(b Board) bool {
		got = append(got, b)
		return true
	})
	want := []Board{
		{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1},
		{1, 2}, {2, 2}, {3, 2},
		{1, 3}, {2, 3},
		{1, 4},
		{1, 5},
		{1, 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ForEach(7) mismatch (-want +got):\n%s", diff)
	}
	for _, b := range got {
		if b.Cells() >= 7 {
			t.Errorf("board %s has %d cells, ceiling 7", b, b.Cells())
		}
	}
}

func TestForEachStopsEarly(t *testing.T) {
	calls := 0
	ForEach(1000, func(Board) bool {
		calls++
		return calls < 5
	})
	if calls != 5 {
		t.Errorf("enumeration continued after stop: %d calls", calls)
	}
}

func TestCountMatchesForEach(t *testing.T) {
	for _, ceiling := range []int64{2, 7, 50, 200, 1000} {
		var visited int64
		ForEach(ceiling, func(Board) bool {
			visited++
			return true
		})
		if got := Count(ceiling); got != visited {
			t.Errorf("Count(%d) = %d, ForEach visited %d", ceiling, got, visited)
		}
	}
}

// The driver prints these totals before long sweeps, so they are pinned.
func TestCountPinned(t *testing.T) {
	if got := Count(200); got != 1086 {
		t.Errorf("Count(200) = %d, want 1086", got)
	}
	if got := Count(1000); got != 7053 {
		t.Errorf("Count(1000) = %d, want 7053", got)
	}
}

func TestSampleDeterministicAndBounded(t *testing.T) {
	first := Sample(500, 10_000, 42)
	second := Sample(500, 10_000, 42)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same seed produced different samples:\n%s", diff)
	}
	if len(first) != 500 {
		t.Fatalf("got %d samples, want 500", len(first))
	}
	for _, b := range first {
		if b.A < 1 || b.B < 1 || b.Cells() >= 10_000 {
			t.Errorf("sample %s out of range", b)
		}
	}
}

func TestSampleSeedsDiffer(t *testing.T) {
	a := Sample(100, 10_000, 1)
	b := Sample(100, 10_000, 2)
	if cmp.Equal(a, b) {
		t.Error("different seeds produced identical samples")
	}
}
