// Package logger wraps zap construction so every binary builds its logger
// the same way.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	Development bool
	Encoding    string // "json" or "console"
}

// New creates a new zap logger
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapConfig zap.Config
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	if cfg.Encoding != "" {
		zapConfig.Encoding = cfg.Encoding
	}

	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stdout"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	return zapConfig.Build()
}

// Default creates a logger from LOG_LEVEL and APP_ENV, falling back to a
// no-frills example logger when construction fails.
func Default() *zap.Logger {
	log, err := New(Config{
		Level:       os.Getenv("LOG_LEVEL"),
		Development: os.Getenv("APP_ENV") != "production",
		Encoding:    "console",
	})
	if err != nil {
		return zap.NewExample()
	}
	return log
}
