package logger

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the leveled logger used across the pipeline. The context is
// accepted for call-site uniformity; the zap backend does not consume it.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type implLogger struct {
	sugar *zap.SugaredLogger
}

// New creates a new Logger instance writing to stderr at the given level.
func New(level string) Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}

	return &implLogger{sugar: l.Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Errorf(msg, args...)
}
