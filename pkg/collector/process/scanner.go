// Package process discovers candidate processes and reads their RSS and command line.
//
// Every lookup degrades instead of failing: a process can exit between discovery and
// inspection, so a missing PID yields zero RSS and an empty command line.
package process

import (
	"bytes"
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/srodi/procwatch/pkg/types"
)

// Source is the OS process table.
type Source interface {
	MatchPIDs(ctx context.Context, pattern string) ([]int, error)
	ResidentKB(ctx context.Context, pid int) (uint64, error)
	RawCmdline(ctx context.Context, pid int) ([]byte, error)
}

// Scanner wraps a Source and absorbs its errors.
type Scanner struct {
	source Source
	logger zerolog.Logger
}

// NewScanner returns a Scanner backed by the platform process table.
func NewScanner(logger zerolog.Logger) *Scanner {
	return NewScannerWithSource(defaultSource(), logger)
}

// NewScannerWithSource returns a Scanner backed by src.
func NewScannerWithSource(src Source, logger zerolog.Logger) *Scanner {
	return &Scanner{source: src, logger: logger.With().Str("component", "process").Logger()}
}

// FindCandidatePIDs returns matching PIDs, or an empty slice when none match or the
// process table cannot be queried.
func (s *Scanner) FindCandidatePIDs(ctx context.Context, pattern string) []int {
	pids, err := s.source.MatchPIDs(ctx, pattern)
	if err != nil {
		s.logger.Debug().Err(err).Str("pattern", pattern).Msg("process query failed")
		return []int{}
	}
	if pids == nil {
		return []int{}
	}
	return pids
}

// ResidentKB returns the RSS of pid in kB, 0 when it cannot be read.
func (s *Scanner) ResidentKB(ctx context.Context, pid int) uint64 {
	kb, err := s.source.ResidentKB(ctx, pid)
	if err != nil {
		s.logger.Debug().Err(err).Int("pid", pid).Msg("rss unavailable")
		return 0
	}
	return kb
}

// CommandLine returns the decoded command line of pid, "" when it cannot be read.
func (s *Scanner) CommandLine(ctx context.Context, pid int) string {
	raw, err := s.source.RawCmdline(ctx, pid)
	if err != nil {
		s.logger.Debug().Err(err).Int("pid", pid).Msg("cmdline unavailable")
		return ""
	}
	return DecodeCmdline(raw)
}

// Inspect gathers RSS and command line for each pid in discovery order. Vanished
// processes are kept with zero values.
func (s *Scanner) Inspect(ctx context.Context, pids []int) []types.ProcessInfo {
	infos := make([]types.ProcessInfo, 0, len(pids))
	for _, pid := range pids {
		infos = append(infos, types.ProcessInfo{
			PID:         pid,
			ResidentKB:  s.ResidentKB(ctx, pid),
			CommandLine: s.CommandLine(ctx, pid),
		})
	}
	return infos
}

// DecodeCmdline turns NUL-separated argv bytes into one line. Invalid UTF-8 is
// replaced rather than rejected.
func DecodeCmdline(raw []byte) string {
	line := bytes.TrimSpace(bytes.ReplaceAll(raw, []byte{0}, []byte{' '}))
	return strings.ToValidUTF8(string(line), "�")
}
