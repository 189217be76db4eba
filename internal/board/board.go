// Package board provides the torus board type plus the three ways the
// experiment driver obtains boards: literal "AxB" lists, exhaustive
// enumeration under a cell ceiling, and seeded uniform sampling.
package board

import (
	"math/rand"
	"strconv"
	"strings"
)

// Board is an A×B torus grid. Dimensions are validated by the simulator,
// not here; parsing and enumeration only ever produce positive values.
type Board struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
}

// Cells returns A·B.
func (b Board) Cells() int64 { return b.A * b.B }

// String renders the canonical "AxB" form.
func (b Board) String() string {
	return strconv.FormatInt(b.A, 10) + "x" + strconv.FormatInt(b.B, 10)
}

// Parse reads one "AxB" token (case-insensitive separator). ok is false
// for tokens missing the separator or with non-numeric or non-positive
// dimensions.
func Parse(tok string) (Board, bool) {
	a, b, found := strings.Cut(strings.ToLower(tok), "x")
	if !found {
		return Board{}, false
	}
	width, err := strconv.ParseInt(a, 10, 64)
	if err != nil || width < 1 {
		return Board{}, false
	}
	height, err := strconv.ParseInt(b, 10, 64)
	if err != nil || height < 1 {
		return Board{}, false
	}
	return Board{A: width, B: height}, true
}

// ParseList parses a list of board tokens, silently skipping malformed
// entries. A bad token never fails the batch.
func ParseList(tokens []string) []Board {
	out := make([]Board, 0, len(tokens))
	for _, tok := range tokens {
		if b, ok := Parse(tok); ok {
			out = append(out, b)
		}
	}
	return out
}

// ForEach enumerates every board with A·B < ceiling in (B, A) order and
// calls fn for each. Enumeration stops early when fn returns false.
func ForEach(ceiling int64, fn func(Board) bool) {
	for b := int64(1); b < ceiling; b++ {
		maxA := (ceiling - 1) / b
		if maxA == 0 {
			return
		}
		for a := int64(1); a <= maxA; a++ {
			if !fn(Board{A: a, B: b}) {
				return
			}
		}
	}
}

// Count returns the number of boards ForEach would visit.
func Count(ceiling int64) int64 {
	var total int64
	for b := int64(1); b < ceiling; b++ {
		maxA := (ceiling - 1) / b
		if maxA == 0 {
			break
		}
		total += maxA
	}
	return total
}

// Sample draws n boards with A·B < ceiling under a fixed seed: B uniform
// in [1, ceiling), then A uniform in [1, (ceiling−1)/B]. Every height
// admits at least A = 1, so exactly n boards are returned. The same seed
// always yields the same boards.
func Sample(n int, ceiling int64, seed int64) []Board {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Board, 0, n)
	for i := 0; i < n; i++ {
		b := 1 + rng.Int63n(ceiling-1)
		a := 1 + rng.Int63n((ceiling-1)/b)
		out = append(out, Board{A: a, B: b})
	}
	return out
}
