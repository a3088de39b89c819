package monitor

import (
	"context"
	"sync"

	"github.com/srodi/procwatch/pkg/types"
)

type fakeMemory struct{ snap types.MemorySnapshot }

func (f fakeMemory) ReadMemory(context.Context) types.MemorySnapshot { return f.snap }

type fakeDisk struct {
	pct   float64
	paths []string
}

func (f *fakeDisk) ReadDisk(_ context.Context, path string) types.DiskSnapshot {
	f.paths = append(f.paths, path)
	return types.DiskSnapshot{Path: path, UsedPercent: f.pct}
}

type fakeScanner struct {
	pids     []int
	infos    map[int]types.ProcessInfo
	patterns []string
	onFind   func(call int)
}

func (f *fakeScanner) FindCandidatePIDs(_ context.Context, pattern string) []int {
	f.patterns = append(f.patterns, pattern)
	if f.onFind != nil {
		f.onFind(len(f.patterns))
	}
	return f.pids
}

func (f *fakeScanner) Inspect(_ context.Context, pids []int) []types.ProcessInfo {
	out := make([]types.ProcessInfo, 0, len(pids))
	for _, pid := range pids {
		info, ok := f.infos[pid]
		if !ok {
			info = types.ProcessInfo{PID: pid}
		}
		out = append(out, info)
	}
	return out
}

type memJournal struct {
	mu    sync.Mutex
	lines []string
}

func (j *memJournal) Log(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lines = append(j.lines, msg)
}
