package monitor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/srodi/procwatch/pkg/journal"
	"github.com/srodi/procwatch/pkg/report"
	"github.com/srodi/procwatch/pkg/types"
	"github.com/srodi/procwatch/pkg/ui"
)

// LiveOptions configures the refreshing view.
type LiveOptions struct {
	Keywords []string
	Pattern  string
	Interval time.Duration
	Styles   ui.Styles
	// BeforeExit runs once the loop ends, before the farewell is printed.
	BeforeExit func()
}

// Live redraws a ranked process table until its context is cancelled.
type Live struct {
	procs  ProcessScanner
	out    io.Writer
	opts   LiveOptions
	logger zerolog.Logger
	now    func() time.Time
}

// NewLive wires a live view writing to out.
func NewLive(procs ProcessScanner, out io.Writer, opts LiveOptions, logger zerolog.Logger) *Live {
	if opts.Pattern == "" {
		opts.Pattern = types.DefaultPattern
	}
	if len(opts.Keywords) == 0 {
		opts.Keywords = types.DefaultKeywords
	}
	if opts.Interval <= 0 {
		opts.Interval = 2 * time.Second
	}
	return &Live{
		procs:  procs,
		out:    out,
		opts:   opts,
		logger: logger.With().Str("component", "live").Logger(),
		now:    time.Now,
	}
}

// Run loops until ctx is cancelled, then prints a farewell.
func (l *Live) Run(ctx context.Context) {
	for ctx.Err() == nil {
		l.Cycle(ctx)
		if !sleep(ctx, l.opts.Interval) {
			break
		}
	}
	if l.opts.BeforeExit != nil {
		l.opts.BeforeExit()
	}
	fmt.Fprintf(l.out, "\n%s\n", msgFarewell)
}

// Cycle samples, ranks and redraws once.
func (l *Live) Cycle(ctx context.Context) types.RankedProcessList {
	pids := l.procs.FindCandidatePIDs(ctx, l.opts.Pattern)
	rows := report.Rank(report.Classify(l.procs.Inspect(ctx, pids), l.opts.Keywords))

	var buf bytes.Buffer
	fmt.Fprintln(&buf, l.now().Format(journal.TimeLayout))
	if len(rows) == 0 {
		fmt.Fprintln(&buf, l.opts.Styles.RenderNotice(fmt.Sprintf(msgLiveNone, l.opts.Pattern)))
	} else if err := report.WriteTable(&buf, rows, l.opts.Styles.HeaderFunc()); err != nil {
		l.logger.Debug().Err(err).Msg("rendering table")
	}
	fmt.Fprintf(&buf, "\n%s\n", l.opts.Styles.RenderFooter(fmt.Sprintf(msgLiveFooter, formatSeconds(l.opts.Interval))))

	ui.ClearScreen(l.out)
	if _, err := l.out.Write(buf.Bytes()); err != nil {
		l.logger.Debug().Err(err).Msg("writing live view")
	}
	l.logger.Debug().Int("processes", len(rows)).Msg("live cycle rendered")
	return rows
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
