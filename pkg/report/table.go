package report

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/srodi/procwatch/pkg/types"
)

// MaxCommandWidth is the widest command line shown in the live table.
const MaxCommandWidth = 120

const ellipsis = "..."

// Truncate shortens s to at most max runes, ending with "..." when cut.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return string([]rune(s)[:max])
	}
	return string([]rune(s)[:max-len(ellipsis)]) + ellipsis
}

// Marker flags processes that matched at least one keyword.
func Marker(info types.ProcessInfo) string {
	if info.MatchScore > 0 {
		return "*"
	}
	return " "
}

// HeaderLine is the column header of the live table.
func HeaderLine() string {
	return fmt.Sprintf("%6s %7s  CMD", "PID", "MB")
}

// Row formats one live-table line.
func Row(info types.ProcessInfo) string {
	return fmt.Sprintf("%s%6d %7.1f  %s", Marker(info), info.PID, info.ResidentMB(), Truncate(info.CommandLine, MaxCommandWidth))
}

// WriteTable renders rows under a header; style, when non-nil, decorates the header.
func WriteTable(w io.Writer, rows types.RankedProcessList, style func(string) string) error {
	header := HeaderLine()
	if style != nil {
		header = style(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, Row(row)); err != nil {
			return err
		}
	}
	return nil
}

// SnapshotLine formats one process for the persistent log.
func SnapshotLine(info types.ProcessInfo) string {
	return fmt.Sprintf("  %d - %.1f MB - %s", info.PID, info.ResidentMB(), info.CommandLine)
}
