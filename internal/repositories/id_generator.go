package repositories

import "sync/atomic"

// SequenceGenerator is a lock-free IDGenerator starting at 1
type SequenceGenerator struct {
	last atomic.Int64
}

// NewSequenceGenerator creates a new sequence generator
func NewSequenceGenerator() IDGenerator {
	return &SequenceGenerator{}
}

// NextID returns the next identifier in the sequence
func (g *SequenceGenerator) NextID() int64 {
	return g.last.Add(1)
}

// Reset restarts the sequence at 1
func (g *SequenceGenerator) Reset() {
	g.last.Store(0)
}
