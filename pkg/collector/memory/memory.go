// Package memory samples system memory counters and derives the used percentage.
package memory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/srodi/procwatch/pkg/types"
)

// CounterSource yields meminfo-style counters (MemTotal, MemAvailable, ...) in kB.
type CounterSource interface {
	Counters(ctx context.Context) (map[string]uint64, error)
}

// Reader turns raw counters into a MemorySnapshot.
type Reader struct {
	source CounterSource
	logger zerolog.Logger
}

// NewReader returns a Reader backed by the platform counter source.
func NewReader(logger zerolog.Logger) *Reader {
	return NewReaderWithSource(defaultSource(), logger)
}

// NewReaderWithSource returns a Reader backed by src.
func NewReaderWithSource(src CounterSource, logger zerolog.Logger) *Reader {
	return &Reader{
		source: src,
		logger: logger.With().Str("component", "memory").Logger(),
	}
}

// ReadMemory never fails: unreadable counters produce a zero snapshot.
func (r *Reader) ReadMemory(ctx context.Context) types.MemorySnapshot {
	counters, err := r.source.Counters(ctx)
	if err != nil {
		r.logger.Debug().Err(err).Msg("memory counters unavailable")
		return types.MemorySnapshot{}
	}
	snap := Snapshot(counters)
	if snap.TotalKB == 0 {
		r.logger.Debug().Msg("MemTotal missing or zero")
	}
	return snap
}

// Snapshot derives usage from counters already read.
func Snapshot(counters map[string]uint64) types.MemorySnapshot {
	total := counters["MemTotal"]
	avail := availableKB(counters)
	var used uint64
	if total > avail {
		used = total - avail
	}
	return types.MemorySnapshot{
		TotalKB:     total,
		AvailableKB: avail,
		UsedPercent: types.UsedPercent(used, total),
	}
}

// availableKB prefers MemAvailable and falls back to MemFree+Buffers+Cached.
func availableKB(counters map[string]uint64) uint64 {
	if v, ok := counters["MemAvailable"]; ok {
		return v
	}
	return counters["MemFree"] + counters["Buffers"] + counters["Cached"]
}
