package rotation

// Channel is one stateful fixed-point rotation generator. A fresh
// channel starts at x = 0; the zero value is not usable, construct via
// NewChannel.
type Channel struct {
	step      uint64
	threshold uint64
	modulus   uint64
	x         uint64
}

// NewChannel creates a channel with state 0 under the given constants.
func NewChannel(modulus uint64, p ChannelParams) *Channel {
	return &Channel{step: p.Step, threshold: p.Threshold, modulus: modulus}
}

// Advance computes x ← (x + step) mod modulus and returns the new x.
// Both operands are below 2^61, so the sum cannot overflow uint64.
func (c *Channel) Advance() uint64 {
	c.x = (c.x + c.step) % c.modulus
	return c.x
}

// Classify maps a rotation state to a run-length token: 1 if the state
// is below the channel threshold, 2 otherwise.
func (c *Channel) Classify(x uint64) int {
	if x < c.threshold {
		return 1
	}
	return 2
}

// NewChannels constructs one fresh channel per configured ChannelParams.
func NewChannels(p Params) []*Channel {
	channels := make([]*Channel, len(p.Channels))
	for i, cp := range p.Channels {
		channels[i] = NewChannel(p.Modulus, cp)
	}
	return channels
}
