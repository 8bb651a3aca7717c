// Package log builds the file-backed zap logger; the terminal owns stdout so nothing is written there
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FileName   = "verb-runner.log"
	MaxLogSize = 10 * 1024 * 1024 // Rotate to .old above this size at startup
)

// Options selects where and how to log
type Options struct {
	Enabled bool
	Dir     string
	Level   string // zap level name
	Format  string // console or json
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup returns a no-op logger when disabled, otherwise a logger appending to Dir/FileName
// The closer releases the file and must be called after Sync
func Setup(opts Options) (*zap.Logger, io.Closer, error) {
	if !opts.Enabled {
		return zap.NewNop(), nopCloser{}, nil
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch opts.Format {
	case "", "console":
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, nil, fmt.Errorf("log format %q: want console or json", opts.Format)
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(opts.Dir, FileName)
	if err := rotate(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(f), level)
	return zap.New(core, zap.AddCaller()), f, nil
}

// rotate moves an oversized log aside, replacing any previous .old file
func rotate(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= MaxLogSize {
		return nil
	}
	if err := os.Rename(path, path+".old"); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
