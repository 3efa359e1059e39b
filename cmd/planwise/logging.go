package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger builds a zap logger from the --log-level and --log-format
// flags.
func initializeLogger(level, format string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var config zap.Config
	switch format {
	case "console", "":
		config = zap.NewDevelopmentConfig()
	case "json":
		config = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	return config.Build()
}

// engineLogger adapts a zap SugaredLogger to the calculation engine's logging
// interface.
type engineLogger struct {
	sugar *zap.SugaredLogger
}

func newEngineLogger(logger *zap.Logger) *engineLogger {
	return &engineLogger{sugar: logger.Sugar()}
}

func (l *engineLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l *engineLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *engineLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *engineLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }
