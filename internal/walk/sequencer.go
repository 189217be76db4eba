// Package walk implements the snake's move stream and the toroidal
// coverage simulation it drives.
package walk

import "github.com/nvandessel/snakewalk/internal/rotation"

// Move is a single snake step on the torus.
type Move uint8

const (
	// MoveRight advances x by one, wrapping modulo the board width.
	MoveRight Move = iota
	// MoveUp advances y by one, wrapping modulo the board height.
	MoveUp
)

// Sequencer round-robins a set of rotation channels into a move-token
// stream. Block n advances channel n mod K and emits t copies of RIGHT
// followed by one UP, where t ∈ {1, 2} is the channel's classification
// of its new state. The stream is logically infinite; there is no
// end-of-stream signal, and the caller alone bounds consumption.
//
// Two sequencers built from the same Params with no prior advancement
// emit identical streams; the output is a pure function of block index.
type Sequencer struct {
	channels []*rotation.Channel
	n        uint64 // block counter
	pending  [3]Move
	head     int // next unread index into pending
	avail    int // tokens buffered in pending
}

// NewSequencer creates a sequencer with a fresh channel set. Channel
// state is owned by the sequencer and must not be shared between
// simulations.
func NewSequencer(p rotation.Params) *Sequencer {
	return &Sequencer{channels: rotation.NewChannels(p)}
}

// Next returns the next move token, producing a new block when the
// current one is exhausted.
func (s *Sequencer) Next() Move {
	if s.head == s.avail {
		s.produceBlock()
	}
	m := s.pending[s.head]
	s.head++
	return m
}

// produceBlock advances the round-robin channel for the current block
// index and buffers RIGHT^t followed by UP.
func (s *Sequencer) produceBlock() {
	i := int(s.n % uint64(len(s.channels)))
	ch := s.channels[i]
	t := ch.Classify(ch.Advance())

	s.head = 0
	s.avail = 0
	for j := 0; j < t; j++ {
		s.pending[s.avail] = MoveRight
		s.avail++
	}
	s.pending[s.avail] = MoveUp
	s.avail++
	s.n++
}
