package monitor

import (
	"context"
	"fmt"

	"github.com/srodi/procwatch/pkg/report"
	"github.com/srodi/procwatch/pkg/types"
)

// SnapshotOptions configures a one-shot run.
type SnapshotOptions struct {
	Thresholds types.Thresholds
	Pattern    string
	DiskPath   string
}

// Snapshot measures once and logs a summary, alerts and the process list.
type Snapshot struct {
	mem     MemoryReader
	disk    DiskReader
	procs   ProcessScanner
	journal Journal
	opts    SnapshotOptions
}

// NewSnapshot wires a snapshot run.
func NewSnapshot(mem MemoryReader, disk DiskReader, procs ProcessScanner, journal Journal, opts SnapshotOptions) *Snapshot {
	if opts.Pattern == "" {
		opts.Pattern = types.DefaultPattern
	}
	if opts.DiskPath == "" {
		opts.DiskPath = types.DefaultDiskPath
	}
	return &Snapshot{mem: mem, disk: disk, procs: procs, journal: journal, opts: opts}
}

// Run executes the snapshot. Processes are listed by memory only; keyword scores
// play no part here.
func (s *Snapshot) Run(ctx context.Context) {
	mem := s.mem.ReadMemory(ctx)
	disk := s.disk.ReadDisk(ctx, s.opts.DiskPath)
	s.logf(msgSummary, mem.UsedPercent, s.opts.DiskPath, disk.UsedPercent)

	if mem.UsedPercent >= s.opts.Thresholds.RAMAlertPercent {
		s.logf(msgRAMAlert, formatNumber(s.opts.Thresholds.RAMAlertPercent), mem.UsedPercent)
	}
	if disk.UsedPercent >= s.opts.Thresholds.DiskAlertPercent {
		s.logf(msgDiskAlert, formatNumber(s.opts.Thresholds.DiskAlertPercent), disk.UsedPercent)
	}

	pids := s.procs.FindCandidatePIDs(ctx, s.opts.Pattern)
	if len(pids) == 0 {
		s.logf(msgNoProcesses, s.opts.Pattern)
		return
	}

	rows := report.ByMemory(s.procs.Inspect(ctx, pids))
	s.logf(msgProcessHeader, s.opts.Pattern)
	for _, row := range rows {
		s.journal.Log(report.SnapshotLine(row))
	}
}

func (s *Snapshot) logf(format string, args ...any) {
	s.journal.Log(fmt.Sprintf(format, args...))
}
