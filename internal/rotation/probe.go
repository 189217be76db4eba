package rotation

// headLen bounds the recorded token prefix per channel.
const headLen = 50

// ChannelStats summarizes one channel's output over a probe run.
type ChannelStats struct {
	Step      uint64
	Threshold uint64
	Alpha     float64 // threshold / modulus, display only
	Ones      int     // tokens classified 1
	Twos      int     // tokens classified 2
	Head      []int   // first tokens emitted by this channel, up to 50
}

// Ratio returns the observed fraction of 1-tokens. Over a long probe it
// converges to Alpha.
func (s ChannelStats) Ratio() float64 {
	total := s.Ones + s.Twos
	if total == 0 {
		return 0
	}
	return float64(s.Ones) / float64(total)
}

// Probe advances a fresh channel set round-robin for the given number of
// blocks and returns per-channel token statistics. It is a diagnostic
// aid: the simulation never depends on its output.
func Probe(p Params, blocks int) []ChannelStats {
	channels := NewChannels(p)
	stats := make([]ChannelStats, len(channels))
	for i, cp := range p.Channels {
		stats[i] = ChannelStats{Step: cp.Step, Threshold: cp.Threshold, Alpha: p.AlphaRatio(i)}
	}

	k := len(channels)
	for n := 0; n < blocks; n++ {
		i := n % k
		t := channels[i].Classify(channels[i].Advance())
		if len(stats[i].Head) < headLen {
			stats[i].Head = append(stats[i].Head, t)
		}
		if t == 1 {
			stats[i].Ones++
		} else {
			stats[i].Twos++
		}
	}
	return stats
}
