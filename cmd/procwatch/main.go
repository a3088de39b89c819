package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/srodi/procwatch/pkg/collector/disk"
	"github.com/srodi/procwatch/pkg/collector/memory"
	"github.com/srodi/procwatch/pkg/collector/process"
	"github.com/srodi/procwatch/pkg/config"
	"github.com/srodi/procwatch/pkg/journal"
	"github.com/srodi/procwatch/pkg/logging"
	"github.com/srodi/procwatch/pkg/monitor"
	"github.com/srodi/procwatch/pkg/ui"
)

type runConfig struct {
	watch      bool
	interval   float64
	filter     string
	configPath string
	logFile    string
	logLevel   string
	set        map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (runConfig, error) {
	var rc runConfig
	fs.BoolVar(&rc.watch, "watch", false, "live mode: redraw Java process memory until interrupted")
	fs.Float64Var(&rc.interval, "interval", config.DefaultInterval.Seconds(), "refresh interval in seconds for --watch")
	fs.StringVar(&rc.filter, "filter", "", "comma-separated keywords used to prioritise processes in --watch (e.g. forge,minecraft)")
	fs.StringVar(&rc.configPath, "config", "", "optional YAML config file")
	fs.StringVar(&rc.logFile, "log-file", "", "monitor log path (default: <install root>/monitor.log)")
	fs.StringVar(&rc.logLevel, "log-level", "", "diagnostics level on stderr (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return rc, err
	}
	rc.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { rc.set[f.Name] = true })
	return rc, nil
}

// resolve merges defaults, the config file and explicit flags, in that order.
func resolve(rc runConfig, logger zerolog.Logger) config.Config {
	cfg := config.Default()
	if rc.configPath != "" {
		loaded, err := config.Load(rc.configPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", rc.configPath).Msg("using default configuration")
		}
		cfg = loaded
	}
	if rc.set["interval"] {
		if rc.interval > 0 {
			cfg.IntervalSeconds = rc.interval
		} else {
			logger.Warn().Float64("interval", rc.interval).Msg("interval must be positive, keeping default")
		}
	}
	if rc.set["filter"] {
		if kws := config.ParseKeywords(rc.filter); kws != nil {
			cfg.Keywords = kws
		}
	}
	if rc.logFile != "" {
		cfg.LogFile = rc.logFile
	}
	if rc.logLevel != "" {
		cfg.LogLevel = rc.logLevel
	}
	if cfg.LogFile == "" {
		cfg.LogFile = journal.DefaultPath()
	}
	return cfg
}

func main() {
	rc, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	bootstrap := logging.New(os.Stderr, rc.logLevel)
	cfg := resolve(rc, bootstrap)
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scanner := process.NewScanner(logger)

	if rc.watch {
		runLive(ctx, scanner, cfg, logger)
		return
	}

	snap := monitor.NewSnapshot(
		memory.NewReader(logger),
		disk.NewReader(logger),
		scanner,
		journal.New(cfg.LogFile, os.Stdout, logger),
		monitor.SnapshotOptions{
			Thresholds: cfg.Thresholds,
			Pattern:    cfg.Pattern,
			DiskPath:   cfg.DiskPath,
		},
	)
	snap.Run(ctx)
}

func runLive(ctx context.Context, scanner *process.Scanner, cfg config.Config, logger zerolog.Logger) {
	color := ui.IsTerminal(os.Stdout)
	cleanupTerminal := ui.EnableSingleView(os.Stdout, os.Stdin)

	live := monitor.NewLive(scanner, os.Stdout, monitor.LiveOptions{
		Keywords:   cfg.Keywords,
		Pattern:    cfg.Pattern,
		Interval:   cfg.Interval(),
		Styles:     ui.NewStyles(color),
		BeforeExit: cleanupTerminal,
	}, logger)
	live.Run(ctx)
}
