// Package rotation implements the fixed-point integer rotation channels
// that drive the snake's move sequence. Each channel iterates
// x ← (x + P) mod M and classifies the new state against a threshold T,
// approximating an irrational circle rotation with exact integer
// arithmetic so runs are bit-identical across platforms.
package rotation

import "fmt"

// Modulus is the shared rotation modulus 2^61 − 1, a Mersenne prime.
// A prime modulus guarantees that every nonzero step generates the full
// residue ring, so no channel can collapse onto a short cycle.
const Modulus uint64 = 1<<61 - 1

// Default step constants, integer approximations of Modulus divided by
// four irrational scales (φ, √2, e, √3). The scales were chosen far
// apart so that no single channel's effective rotation lands
// pathologically close to 0 or Modulus.
const (
	stepPhi   uint64 = 1425089352415399680 // ≈ Modulus / φ
	stepSqrt2 uint64 = 1630477228166597632 // ≈ Modulus / √2
	stepE     uint64 = 848272237658610688  // ≈ Modulus / e
	stepSqrt3 uint64 = 1331279082078543104 // ≈ Modulus / √3
)

// Default threshold constants, floor(alpha · Modulus) for four mutually
// distinct irrational ratios (φ−1, √2−1, 2−φ, 1/√2). Each channel's
// long-run frequency of emitting a 1-token converges to its alpha.
const (
	thresholdPhi      uint64 = 1425089352415399936 // floor((φ−1)·Modulus)
	thresholdSqrt2    uint64 = 955111447119501696  // floor((√2−1)·Modulus)
	thresholdTwoPhi   uint64 = 880753656798294016  // floor((2−φ)·Modulus)
	thresholdInvSqrt2 uint64 = 1630477228166597888 // floor(Modulus/√2)
)

// ChannelParams holds the fixed per-channel constants.
type ChannelParams struct {
	// Step is the rotation increment P, in [1, Modulus).
	Step uint64

	// Threshold is the classification cutoff T, in [0, Modulus).
	// States below the threshold classify as 1, the rest as 2.
	Threshold uint64
}

// Params is the immutable generator configuration shared by all channels
// of one sequencer. It is a plain value: construct it once and pass it
// explicitly into constructors, never mutate it afterwards.
type Params struct {
	Modulus  uint64
	Channels []ChannelParams
}

// DefaultParams returns the production four-channel configuration.
// Channels with duplicate steps are removed at construction; with the
// default constants all four survive.
func DefaultParams() Params {
	return NewParams(Modulus, []ChannelParams{
		{Step: stepPhi, Threshold: thresholdPhi},
		{Step: stepSqrt2, Threshold: thresholdSqrt2},
		{Step: stepE, Threshold: thresholdTwoPhi},
		{Step: stepSqrt3, Threshold: thresholdInvSqrt2},
	})
}

// NewParams builds a Params value, clamping each step into [1, modulus−1]
// and dropping channels whose clamped step duplicates an earlier one.
// Order is preserved.
func NewParams(modulus uint64, channels []ChannelParams) Params {
	seen := make(map[uint64]bool, len(channels))
	deduped := make([]ChannelParams, 0, len(channels))
	for _, ch := range channels {
		if ch.Step < 1 {
			ch.Step = 1
		}
		if ch.Step > modulus-1 {
			ch.Step = modulus - 1
		}
		if seen[ch.Step] {
			continue
		}
		seen[ch.Step] = true
		deduped = append(deduped, ch)
	}
	return Params{Modulus: modulus, Channels: deduped}
}

// Validate checks the structural invariants of a Params value.
func (p Params) Validate() error {
	if p.Modulus < 2 {
		return fmt.Errorf("modulus must be at least 2, got %d", p.Modulus)
	}
	if len(p.Channels) == 0 {
		return fmt.Errorf("at least one rotation channel is required")
	}
	for i, ch := range p.Channels {
		if ch.Step < 1 || ch.Step >= p.Modulus {
			return fmt.Errorf("channel %d: step %d outside [1, %d)", i, ch.Step, p.Modulus)
		}
		if ch.Threshold >= p.Modulus {
			return fmt.Errorf("channel %d: threshold %d outside [0, %d)", i, ch.Threshold, p.Modulus)
		}
	}
	return nil
}

// AlphaRatio returns the channel's threshold as a fraction of the
// modulus. Display only; the simulation itself never touches floats.
func (p Params) AlphaRatio(i int) float64 {
	return float64(p.Channels[i].Threshold) / float64(p.Modulus)
}
