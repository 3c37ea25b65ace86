package handler

import (
	"sync/atomic"

	"github.com/philipp01105/applog/core"
)

// Stats tracks dispatch statistics
type Stats struct {
	processed [core.FaultLevel + 1]atomic.Uint64
	unknown   atomic.Uint64
	failed    atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	if !level.Valid() {
		s.unknown.Add(1)
		return
	}
	s.processed[level].Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if !level.Valid() {
		return s.unknown.Load()
	}
	return s.processed[level].Load()
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return s.failed.Load()
}

// GetTotalProcessed returns the total processed across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	total := s.unknown.Load()
	for i := range s.processed {
		total += s.processed[i].Load()
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
	}
	s.unknown.Store(0)
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed:      make(map[core.Level]uint64, len(s.processed)),
		ProcessedTotal: s.GetTotalProcessed(),
		FailedTotal:    s.GetFailed(),
	}
	for l := core.DebugLevel; l <= core.FaultLevel; l++ {
		snap.Processed[l] = s.GetProcessed(l)
	}
	return snap
}
