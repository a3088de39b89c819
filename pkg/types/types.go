package types

import "math"

// DefaultPattern is the substring used to discover candidate processes.
const DefaultPattern = "java"

// DefaultDiskPath is the mount point sampled for disk usage.
const DefaultDiskPath = "/"

// DefaultKeywords are matched against command lines to spot game-server processes.
var DefaultKeywords = []string{"forge", "minecraft", "kubejs", "server", "paper", "spigot"}

// Thresholds holds the alert levels used by snapshot mode.
type Thresholds struct {
	RAMAlertPercent  float64 `yaml:"ram_alert_percent" validate:"gte=0,lte=100"`
	DiskAlertPercent float64 `yaml:"disk_alert_percent" validate:"gte=0,lte=100"`
}

// DefaultThresholds returns the stock alert levels (80% RAM, 90% disk).
func DefaultThresholds() Thresholds {
	return Thresholds{RAMAlertPercent: 80, DiskAlertPercent: 90}
}

// MemorySnapshot is a point-in-time view of system memory, in kB.
type MemorySnapshot struct {
	TotalKB     uint64
	AvailableKB uint64
	UsedPercent float64
}

// DiskSnapshot is a point-in-time view of a filesystem.
type DiskSnapshot struct {
	Path        string
	TotalBytes  uint64
	UsedBytes   uint64
	UsedPercent float64
}

// ProcessInfo describes one discovered process for a single sampling cycle.
type ProcessInfo struct {
	PID         int
	ResidentKB  uint64
	CommandLine string
	MatchScore  int
}

// ResidentMB returns the RSS in MB rounded to one decimal, as displayed.
func (p ProcessInfo) ResidentMB() float64 {
	return Round1(float64(p.ResidentKB) / 1024)
}

// RankedProcessList is an ordered set of processes ready for display.
type RankedProcessList []ProcessInfo

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// UsedPercent computes round1(used/total*100) clamped to [0,100]; a zero total yields 0.
func UsedPercent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	pct := Round1(float64(used) / float64(total) * 100)
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}
