//go:build !linux
// +build !linux

package memory

import (
	"context"

	"github.com/shirou/gopsutil/v3/mem"
)

// gopsutilSource maps gopsutil's virtual memory stats onto meminfo keys.
type gopsutilSource struct{}

func defaultSource() CounterSource {
	return gopsutilSource{}
}

func (gopsutilSource) Counters(ctx context.Context) (map[string]uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]uint64{
		"MemTotal":     vm.Total / 1024,
		"MemAvailable": vm.Available / 1024,
		"MemFree":      vm.Free / 1024,
		"Buffers":      vm.Buffers / 1024,
		"Cached":       vm.Cached / 1024,
	}, nil
}
