// Package logger wraps zap with the console and file outputs the backend uses.
//
// Initialize the global logger once at startup and fetch it anywhere else:
//
//	if err := logger.Init(logger.DefaultOptions()); err != nil {
//		// handle error
//	}
//	defer logger.Sync()
//	logger.Get().Infof("listening on %s", addr)
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options holds configuration for the logger.
type Options struct {
	// Level is the minimum level, one of debug, info, warn, error.
	Level string
	// Console enables human readable output on Writer (os.Stderr when nil).
	Console bool
	// Color enables ANSI colored levels on the console.
	Color bool
	// Writer overrides the console destination.
	Writer io.Writer
	// File, when set, adds a JSON output rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// DefaultOptions logs info and above to stderr with colors and no file output.
func DefaultOptions() Options {
	return Options{
		Level:      "info",
		Console:    true,
		Color:      true,
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// Logger is a zap.SugaredLogger that knows how to flush its file output.
type Logger struct {
	*zap.SugaredLogger
	closer io.Closer
}

var (
	mu           sync.RWMutex
	globalLogger *Logger
)

// NewLogger builds a logger from opts. With neither console nor file output
// the returned logger discards everything.
func NewLogger(opts Options) (*Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var cores []zapcore.Core
	if opts.Console {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		if opts.Color {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		var w io.Writer = os.Stderr
		if opts.Writer != nil {
			w = opts.Writer
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), level))
	}

	var closer io.Closer
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level))
		closer = rotator
	}

	if len(cores) == 0 {
		return &Logger{SugaredLogger: zap.NewNop().Sugar()}, nil
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return &Logger{SugaredLogger: zl.Sugar(), closer: closer}, nil
}

// Init replaces the global logger.
func Init(opts Options) error {
	l, err := NewLogger(opts)
	if err != nil {
		return err
	}
	mu.Lock()
	old := globalLogger
	globalLogger = l
	mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
	return nil
}

// Get returns the global logger, initializing it with DefaultOptions when
// Init was never called.
func Get() *Logger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		globalLogger, _ = NewLogger(DefaultOptions())
	}
	return globalLogger
}

// Sync flushes the global logger.
func Sync() {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		_ = l.Sync()
	}
}

// Close flushes the logger and releases its log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
