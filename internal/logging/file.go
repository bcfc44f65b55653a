package logging

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// FileConfig controls where a terminal session writes its log.
// The TUI owns the terminal, so logs never go to stderr while it runs.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	WriteToStderr bool
}

// NewWithFile creates a logger that writes to a per-run file under LogDir.
// The returned cleanup closes the file. When file logging is disabled and
// stderr is not requested, the logger discards everything.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	const logDirPerm = 0o750
	noop := func() {}

	var writers []io.Writer
	if fileCfg.WriteToStderr {
		writers = append(writers, os.Stderr)
	}

	var file *os.File
	if fileCfg.Enabled && fileCfg.LogDir != "" {
		if err := os.MkdirAll(fileCfg.LogDir, logDirPerm); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to create log directory: %w", err)
		}
		path := filepath.Join(fileCfg.LogDir, RunFilename(GenerateRunID()))
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	if len(writers) == 0 {
		return zerolog.Nop(), noop, nil
	}

	logger := NewWithWriter(cfg, io.MultiWriter(writers...))
	cleanup := func() {
		if file != nil {
			_ = file.Close()
		}
	}
	return logger, cleanup, nil
}

// GenerateRunID creates a unique identifier for one process run.
// Format: YYYYMMDD_HHMMSS_xxxx
func GenerateRunID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// RunFilename returns the log filename for a run id.
func RunFilename(runID string) string {
	return "workbench_" + runID + ".log"
}
