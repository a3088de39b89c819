package disk

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	usage Usage
	err   error
	paths []string
}

func (f *fakeSource) Usage(_ context.Context, path string) (Usage, error) {
	f.paths = append(f.paths, path)
	return f.usage, f.err
}

func TestReadDisk(t *testing.T) {
	src := &fakeSource{usage: Usage{TotalBytes: 1000, UsedBytes: 935}}
	snap := NewReaderWithSource(src, zerolog.Nop()).ReadDisk(context.Background(), "/srv")

	assert.Equal(t, []string{"/srv"}, src.paths)
	assert.Equal(t, "/srv", snap.Path)
	assert.Equal(t, uint64(1000), snap.TotalBytes)
	assert.Equal(t, uint64(935), snap.UsedBytes)
	assert.Equal(t, 93.5, snap.UsedPercent)
}

func TestReadDiskZeroTotal(t *testing.T) {
	src := &fakeSource{}
	snap := NewReaderWithSource(src, zerolog.Nop()).ReadDisk(context.Background(), "/")
	assert.Zero(t, snap.UsedPercent)
}

func TestReadDiskErrorDegrades(t *testing.T) {
	src := &fakeSource{usage: Usage{TotalBytes: 10, UsedBytes: 10}, err: errors.New("no such file")}
	snap := NewReaderWithSource(src, zerolog.Nop()).ReadDisk(context.Background(), "/missing")
	assert.Zero(t, snap.UsedPercent)
	assert.Equal(t, "/missing", snap.Path)
}

func TestDefaultSourceRootIsReadable(t *testing.T) {
	snap := NewReader(zerolog.Nop()).ReadDisk(context.Background(), "/")
	assert.GreaterOrEqual(t, snap.UsedPercent, 0.0)
	assert.LessOrEqual(t, snap.UsedPercent, 100.0)
	assert.Positive(t, snap.TotalBytes)
}
