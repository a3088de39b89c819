//go:build linux
// +build linux

package memory

import (
	"context"
	"fmt"
	"os"
)

// MeminfoSource reads counters from a meminfo file.
type MeminfoSource struct {
	Path string
}

func defaultSource() CounterSource {
	return MeminfoSource{Path: "/proc/meminfo"}
}

// Counters parses the meminfo file; the handle is closed on every path.
func (s MeminfoSource) Counters(_ context.Context) (map[string]uint64, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	counters, err := parseMeminfo(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path, err)
	}
	return counters, nil
}
