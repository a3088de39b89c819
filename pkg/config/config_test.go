package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srodi/procwatch/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "procwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 80.0, cfg.Thresholds.RAMAlertPercent)
	assert.Equal(t, 90.0, cfg.Thresholds.DiskAlertPercent)
	assert.Equal(t, types.DefaultKeywords, cfg.Keywords)
	assert.Equal(t, "java", cfg.Pattern)
	assert.Equal(t, "/", cfg.DiskPath)
	assert.Equal(t, 2*time.Second, cfg.Interval())
	require.NoError(t, Validate(cfg))
}

func TestDefaultKeywordsAreCopied(t *testing.T) {
	cfg := Default()
	cfg.Keywords[0] = "changed"
	assert.Equal(t, "forge", types.DefaultKeywords[0])
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
thresholds:
  ram_alert_percent: 70
keywords: [" paper ", "", "velocity"]
disk_path: /srv
interval_seconds: 0.5
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 70.0, cfg.Thresholds.RAMAlertPercent)
	assert.Equal(t, 90.0, cfg.Thresholds.DiskAlertPercent, "unset nested field keeps default")
	assert.Equal(t, []string{"paper", "velocity"}, cfg.Keywords)
	assert.Equal(t, "/srv", cfg.DiskPath)
	assert.Equal(t, "java", cfg.Pattern)
	assert.Equal(t, 500*time.Millisecond, cfg.Interval())
}

func TestLoadEmptyKeywordsFallBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, "keywords: []\n"))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultKeywords, cfg.Keywords)
}

func TestLoadErrorsReturnDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"threshold above 100", "thresholds:\n  disk_alert_percent: 150\n"},
		{"negative interval", "interval_seconds: -1\n"},
		{"blank pattern", "pattern: \"\"\n"},
		{"bad log level", "log_level: loud\n"},
		{"malformed yaml", "thresholds: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseKeywords(t *testing.T) {
	assert.Equal(t, []string{"forge", "minecraft"}, ParseKeywords(" forge, ,minecraft ,"))
	assert.Nil(t, ParseKeywords(""))
	assert.Nil(t, ParseKeywords(" , "))
}
