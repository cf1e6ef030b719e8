// Package logger builds the zap loggers used by linkalike tooling.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment names accepted by New.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// New returns a JSON info-level logger for EnvProduction and a colored
// debug-level console logger for anything else.
func New(env string) (*zap.Logger, error) {
	var config zap.Config

	if env == EnvProduction {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}

// Sync flushes l, ignoring the error some terminals return on stderr sync.
func Sync(l *zap.Logger) {
	if l != nil {
		_ = l.Sync()
	}
}
