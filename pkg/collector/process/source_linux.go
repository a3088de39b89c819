//go:build linux

package process

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// procReadFile allows tests to stub reads under /proc.
var procReadFile = os.ReadFile

// ProcFS reads per-process data from a procfs mount.
type ProcFS struct {
	Root string
}

func defaultSource() Source {
	return ProcFS{Root: "/proc"}
}

// MatchPIDs enumerates the live process table.
func (fs ProcFS) MatchPIDs(ctx context.Context, pattern string) ([]int, error) {
	return matchPIDs(ctx, pattern)
}

// ResidentKB reads VmRSS from /proc/<pid>/status.
func (fs ProcFS) ResidentKB(_ context.Context, pid int) (uint64, error) {
	if pid <= 0 {
		return 0, fmt.Errorf("invalid pid %d", pid)
	}
	data, err := procReadFile(fs.path(pid, "status"))
	if err != nil {
		return 0, err
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "VmRSS:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, fmt.Errorf("unexpected VmRSS format for pid %d", pid)
		}
		return strconv.ParseUint(fields[1], 10, 64)
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("VmRSS not found for pid %d", pid)
}

// RawCmdline returns the NUL-separated argv of pid.
func (fs ProcFS) RawCmdline(_ context.Context, pid int) ([]byte, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("invalid pid %d", pid)
	}
	return procReadFile(fs.path(pid, "cmdline"))
}

func (fs ProcFS) path(pid int, name string) string {
	return filepath.Join(fs.Root, strconv.Itoa(pid), name)
}
