package process

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// matchPIDs lists processes whose name or command line contains pattern, like
// `pgrep -f`. The calling process is never reported.
func matchPIDs(ctx context.Context, pattern string) ([]int, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	self := os.Getpid()
	pids := make([]int, 0)
	for _, p := range procs {
		pid := int(p.Pid)
		if pid == self || pid <= 0 {
			continue
		}
		name, _ := p.NameWithContext(ctx)
		cmdline, _ := p.CmdlineWithContext(ctx)
		if strings.Contains(name, pattern) || strings.Contains(cmdline, pattern) {
			pids = append(pids, pid)
		}
	}
	sort.Ints(pids)
	return pids, nil
}
