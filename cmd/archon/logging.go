package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	logFileName = "archon.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the session log under dir and returns a logger writing to it
// Disabled logging yields a Nop logger and a nil closer; the terminal is never a log sink
func setupLogging(enabled bool, dir, level string) (zerolog.Logger, io.Closer, error) {
	if !enabled {
		return zerolog.Nop(), nil, nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, errors.Wrapf(err, "log level %q", level)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nil, errors.Wrap(err, "failed to create log directory")
	}

	logPath := filepath.Join(dir, logFileName)
	if err := rotateIfLarge(logPath, dir); err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, errors.Wrap(err, "failed to open log file")
	}

	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f, nil
}

// rotateIfLarge moves an oversized log aside with a timestamped name
func rotateIfLarge(logPath, dir string) error {
	info, err := os.Stat(logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to stat log file")
	}
	if info.Size() <= maxLogSize {
		return nil
	}

	rotated := filepath.Join(dir, fmt.Sprintf("archon-%s.log", time.Now().Format("20060102-150405")))
	return errors.Wrap(os.Rename(logPath, rotated), "failed to rotate log file")
}
