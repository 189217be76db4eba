// Package conjecture implements the analytic necessary-condition scan
// over the rotation constants. It is a quick degenerate-case screen, not
// a proof: passing it means no grid height makes every channel resonant
// at once, which the coverage conjecture's safety margin relies on.
package conjecture

import (
	"math/bits"

	"github.com/nvandessel/snakewalk/internal/rotation"
)

// Empirically observed coverage-step-to-cell-count ratio range for the
// default channel set on typical boards. Documented constants, not
// derived analytically.
const (
	ObservedRatioLow  = 2.3
	ObservedRatioHigh = 2.7
)

// Report is the outcome of one resonance scan.
type Report struct {
	Bound uint64 // heights scanned: 1 ≤ B < Bound

	// Degenerate is true when some height B makes (B·P_i) mod M zero for
	// every channel simultaneously; ResonantB is the first such height.
	Degenerate bool
	ResonantB  uint64

	// Observed ratio range reproduced in the report for the OK case.
	RatioLow  float64
	RatioHigh float64
}

// Scan tests every grid height B in [1, bound) for simultaneous channel
// resonance. The scan reads only the immutable channel constants and
// stops at the first degenerate height found.
func Scan(p rotation.Params, bound uint64) Report {
	report := Report{Bound: bound, RatioLow: ObservedRatioLow, RatioHigh: ObservedRatioHigh}
	for b := uint64(1); b < bound; b++ {
		allZero := true
		for _, ch := range p.Channels {
			if mulmod(b, ch.Step, p.Modulus) != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			report.Degenerate = true
			report.ResonantB = b
			return report
		}
	}
	return report
}

// mulmod computes (a·b) mod m without overflow. The 128-bit product's
// high word is reduced mod m first, which preserves the remainder and
// satisfies the hi < m precondition of bits.Div64.
func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}
