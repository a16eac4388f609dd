// Package logging builds the zap logger used by the CLI.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// New returns a console logger on stderr. verbose enables debug output;
// LOG_LEVEL overrides both.
func New(verbose bool) *zap.Logger {
	return NewWithWriter(os.Stderr, verbose, useColor(os.Stderr))
}

// NewWithWriter returns a console logger writing to w.
func NewWithWriter(w io.Writer, verbose, color bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = parseLogLevel(env)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}

func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "TRACE", "DEBUG", "trace", "debug":
		return zapcore.DebugLevel
	case "WARN", "warn":
		return zapcore.WarnLevel
	case "ERROR", "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func useColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
