// Package journal appends timestamped lines to the monitor log and echoes them.
package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// TimeLayout is the local-time prefix of every line.
const TimeLayout = "2006-01-02 15:04:05"

// FileName is the log file created under the install root.
const FileName = "monitor.log"

// Journal writes "<timestamp> - <message>" lines. The log file is opened for each
// line and closed before returning.
type Journal struct {
	path    string
	console io.Writer
	logger  zerolog.Logger
	now     func() time.Time
}

// New returns a Journal appending to path and echoing to console.
func New(path string, console io.Writer, logger zerolog.Logger) *Journal {
	return &Journal{
		path:    path,
		console: console,
		logger:  logger.With().Str("component", "journal").Logger(),
		now:     time.Now,
	}
}

// Path returns the log file location.
func (j *Journal) Path() string {
	return j.path
}

// Log appends msg to the log file and echoes it. Failures are reported to the
// diagnostics logger only.
func (j *Journal) Log(msg string) {
	line := fmt.Sprintf("%s - %s\n", j.now().Format(TimeLayout), msg)
	if err := j.appendLine(line); err != nil {
		j.logger.Warn().Err(err).Str("path", j.path).Msg("cannot append to monitor log")
	}
	if j.console != nil {
		if _, err := io.WriteString(j.console, line); err != nil {
			j.logger.Debug().Err(err).Msg("console write failed")
		}
	}
}

// Logf formats and logs.
func (j *Journal) Logf(format string, args ...any) {
	j.Log(fmt.Sprintf(format, args...))
}

func (j *Journal) appendLine(line string) error {
	if j.path == "" {
		return nil
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	_, werr := f.WriteString(line)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// DefaultPath places the log one directory above the executable's directory.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(filepath.Dir(exe)), FileName)
}
