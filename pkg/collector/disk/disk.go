// Package disk samples filesystem usage for a mount path.
package disk

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/srodi/procwatch/pkg/types"
)

// Usage is the raw filesystem capacity in bytes.
type Usage struct {
	TotalBytes uint64
	UsedBytes  uint64
}

// UsageSource queries filesystem usage for a path.
type UsageSource interface {
	Usage(ctx context.Context, path string) (Usage, error)
}

// Reader converts raw usage into a DiskSnapshot.
type Reader struct {
	source UsageSource
	logger zerolog.Logger
}

// NewReader returns a Reader backed by the platform source.
func NewReader(logger zerolog.Logger) *Reader {
	return NewReaderWithSource(defaultSource(), logger)
}

// NewReaderWithSource returns a Reader backed by src.
func NewReaderWithSource(src UsageSource, logger zerolog.Logger) *Reader {
	return &Reader{source: src, logger: logger.With().Str("component", "disk").Logger()}
}

// ReadDisk never fails: errors produce a snapshot with UsedPercent 0.
func (r *Reader) ReadDisk(ctx context.Context, path string) types.DiskSnapshot {
	usage, err := r.source.Usage(ctx, path)
	if err != nil {
		r.logger.Debug().Err(err).Str("path", path).Msg("disk usage unavailable")
		return types.DiskSnapshot{Path: path}
	}
	return types.DiskSnapshot{
		Path:        path,
		TotalBytes:  usage.TotalBytes,
		UsedBytes:   usage.UsedBytes,
		UsedPercent: types.UsedPercent(usage.UsedBytes, usage.TotalBytes),
	}
}
