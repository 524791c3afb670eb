package logging

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "nextword.log"

// ParseLevel maps a --log-level value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// InitForTUI logs to a rotating file under dir so the terminal screen stays clean.
// The returned closer flushes and closes the file.
func InitForTUI(dir string, level slog.Level) (*slog.Logger, io.Closer) {
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	logger := newLogger(rotator, level)
	slog.SetDefault(logger)
	return logger, rotator
}

// InitForCLI logs to output, usually os.Stderr.
func InitForCLI(output io.Writer, level slog.Level) *slog.Logger {
	logger := newLogger(output, level)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
