//go:build linux

package process

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProcFile(t *testing.T, root string, pid int, name, content string) {
	t.Helper()
	dir := filepath.Join(root, strconv.Itoa(pid))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestProcFSResidentKB(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, 42, "status", "Name:\tjava\nVmPeak:\t  900000 kB\nVmRSS:\t    2048 kB\nThreads:\t42\n")
	writeProcFile(t, root, 43, "status", "Name:\tkthreadd\nThreads:\t1\n")
	fs := ProcFS{Root: root}

	kb, err := fs.ResidentKB(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(2048), kb)

	_, err = fs.ResidentKB(context.Background(), 43)
	assert.Error(t, err, "kernel threads have no VmRSS")

	_, err = fs.ResidentKB(context.Background(), 44)
	assert.Error(t, err, "exited process")

	_, err = fs.ResidentKB(context.Background(), 0)
	assert.Error(t, err)
}

func TestProcFSRawCmdline(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, 7, "cmdline", "java\x00-jar\x00paper.jar\x00")
	fs := ProcFS{Root: root}

	raw, err := fs.RawCmdline(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "java -jar paper.jar", DecodeCmdline(raw))

	_, err = fs.RawCmdline(context.Background(), 8)
	assert.Error(t, err)
}

func TestProcFSStubbedReads(t *testing.T) {
	t.Cleanup(func() { procReadFile = os.ReadFile })
	reads := 0
	procReadFile = func(path string) ([]byte, error) {
		reads++
		if strings.HasSuffix(path, "/99/status") {
			return []byte("VmRSS:\t 1536 kB\n"), nil
		}
		return nil, errors.New("permission denied")
	}

	fs := ProcFS{Root: "/proc"}
	kb, err := fs.ResidentKB(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, uint64(1536), kb)

	_, err = fs.RawCmdline(context.Background(), 99)
	assert.Error(t, err)
	assert.Equal(t, 2, reads)
}

func TestMatchPIDsFindsChild(t *testing.T) {
	marker := "procwatch-match-" + strconv.Itoa(os.Getpid())
	cmd := exec.Command("sh", "-c", "sleep 30; true", marker)
	if err := cmd.Start(); err != nil {
		t.Skipf("cannot start child: %v", err)
	}
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	pids, err := matchPIDs(context.Background(), marker)
	require.NoError(t, err)
	assert.Contains(t, pids, cmd.Process.Pid)
	assert.NotContains(t, pids, os.Getpid())
}

func TestMatchPIDsNoMatch(t *testing.T) {
	pids, err := matchPIDs(context.Background(), "procwatch-no-such-process-\x01")
	require.NoError(t, err)
	assert.Empty(t, pids)
}
