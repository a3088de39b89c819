//go:build !linux

package disk

import (
	"context"

	psdisk "github.com/shirou/gopsutil/v3/disk"
)

type gopsutilSource struct{}

func defaultSource() UsageSource {
	return gopsutilSource{}
}

func (gopsutilSource) Usage(ctx context.Context, path string) (Usage, error) {
	st, err := psdisk.UsageWithContext(ctx, path)
	if err != nil {
		return Usage{}, err
	}
	return Usage{TotalBytes: st.Total, UsedBytes: st.Total - st.Free}, nil
}
