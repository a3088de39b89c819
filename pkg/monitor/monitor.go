// Package monitor runs the snapshot and live reporting modes.
package monitor

import (
	"context"
	"strconv"
	"time"

	"github.com/srodi/procwatch/pkg/types"
)

// MemoryReader samples system memory.
type MemoryReader interface {
	ReadMemory(ctx context.Context) types.MemorySnapshot
}

// DiskReader samples filesystem usage.
type DiskReader interface {
	ReadDisk(ctx context.Context, path string) types.DiskSnapshot
}

// ProcessScanner discovers and inspects candidate processes.
type ProcessScanner interface {
	FindCandidatePIDs(ctx context.Context, pattern string) []int
	Inspect(ctx context.Context, pids []int) []types.ProcessInfo
}

// Journal records snapshot lines.
type Journal interface {
	Log(msg string)
}

// Operator-facing messages.
const (
	msgSummary       = "RAM usada: %.1f%% | Disco (%s) usado: %.1f%%"
	msgRAMAlert      = "ALERTA: RAM usada >= %s%% -> %.1f%%"
	msgDiskAlert     = "ALERTA: Disco usado >= %s%% -> %.1f%%"
	msgNoProcesses   = "No se han encontrado procesos %s activos."
	msgProcessHeader = "Procesos %s (PID, RSS_MB, cmdline):"
	msgLiveNone      = "No se encontraron procesos %s."
	msgLiveFooter    = "Presiona Ctrl+C para salir. Actualizando en %ss..."
	msgFarewell      = "Saliendo del modo watch..."
)

// formatNumber prints whole numbers without decimals and others in shortest form.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatSeconds always keeps one decimal for whole values (2.0, 0.5, 1.25).
func formatSeconds(d time.Duration) string {
	s := d.Seconds()
	if s == float64(int64(s)) {
		return strconv.FormatFloat(s, 'f', 1, 64)
	}
	return strconv.FormatFloat(s, 'f', -1, 64)
}
