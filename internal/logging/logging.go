// Package logging builds the zap logger used by tria. The terminal belongs
// to the UI, so log output only ever goes to a file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smileynet/tria/internal/config"
)

// New returns a JSON logger writing to cfg.File at cfg.Level, and a func
// that flushes and closes the file. With no file configured it returns a
// no-op logger.
func New(cfg config.Log) (*zap.Logger, func(), error) {
	if cfg.File == "" {
		return zap.NewNop(), func() {}, nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: creating directory: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: opening %s: %w", cfg.File, err)
	}

	logger := zap.New(zapcore.NewCore(encoder(), zapcore.AddSync(f), level))
	closeFn := func() {
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closeFn, nil
}

func encoder() zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.MessageKey = "message"
	ec.LevelKey = "severity"
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	ec.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	return zapcore.NewJSONEncoder(ec)
}
