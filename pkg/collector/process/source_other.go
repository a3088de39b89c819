//go:build !linux

package process

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// gopsutilSource reads per-process data through gopsutil.
type gopsutilSource struct{}

func defaultSource() Source {
	return gopsutilSource{}
}

func (gopsutilSource) MatchPIDs(ctx context.Context, pattern string) ([]int, error) {
	return matchPIDs(ctx, pattern)
}

func (gopsutilSource) ResidentKB(ctx context.Context, pid int) (uint64, error) {
	p, err := lookup(ctx, pid)
	if err != nil {
		return 0, err
	}
	info, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return info.RSS / 1024, nil
}

func (gopsutilSource) RawCmdline(ctx context.Context, pid int) ([]byte, error) {
	p, err := lookup(ctx, pid)
	if err != nil {
		return nil, err
	}
	args, err := p.CmdlineSliceWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return []byte(strings.Join(args, "\x00")), nil
}

func lookup(ctx context.Context, pid int) (*process.Process, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("invalid pid %d", pid)
	}
	return process.NewProcessWithContext(ctx, int32(pid))
}
