// Package config holds run settings loaded from an optional YAML file and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/srodi/procwatch/pkg/types"
)

// DefaultInterval is the live-mode refresh period.
const DefaultInterval = 2 * time.Second

// Config is immutable once built; reporters receive it by value.
type Config struct {
	Thresholds      types.Thresholds `yaml:"thresholds"`
	Keywords        []string         `yaml:"keywords"`
	Pattern         string           `yaml:"pattern" validate:"required"`
	DiskPath        string           `yaml:"disk_path" validate:"required"`
	IntervalSeconds float64          `yaml:"interval_seconds" validate:"gt=0"`
	LogFile         string           `yaml:"log_file"`
	LogLevel        string           `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Thresholds:      types.DefaultThresholds(),
		Keywords:        append([]string(nil), types.DefaultKeywords...),
		Pattern:         types.DefaultPattern,
		DiskPath:        types.DefaultDiskPath,
		IntervalSeconds: DefaultInterval.Seconds(),
		LogLevel:        "warn",
	}
}

// Interval returns the refresh period as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds * float64(time.Second))
}

// Load reads a YAML file over the defaults. Fields absent from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Keywords = normalizeKeywords(cfg.Keywords)
	if cfg.Keywords == nil {
		cfg.Keywords = append([]string(nil), types.DefaultKeywords...)
	}
	if err := Validate(cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks ranges and required fields.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ParseKeywords splits a comma-separated list, dropping blanks. An empty result
// means "use the defaults" and is returned as nil.
func ParseKeywords(csv string) []string {
	return normalizeKeywords(strings.Split(csv, ","))
}

func normalizeKeywords(in []string) []string {
	var out []string
	for _, kw := range in {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
