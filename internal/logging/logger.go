// Package logging constructs the structured loggers used across clusterctl.
// Loggers are built per invocation and passed to the code that needs them;
// there is no process-wide logger to mutate.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console logger writing to stderr. Debug mode lowers the level
// threshold so flag handling and dispatch become visible.
func New(debug bool) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := config.Build()
	return logger.Sugar()
}

// Nop returns a logger that discards everything, for callers with no sink to
// offer.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
