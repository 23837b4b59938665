package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	"github.com/gelbe-umzuege/umzug-cloud-go/pkg/logger"
)

// LoggerModule provides logging dependencies
var LoggerModule = fx.Module("logger",
	fx.Provide(provideLogger),
)

func provideLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	level := "info"
	if cfg.Debug {
		level = "debug"
	}
	return logger.New(logger.Config{
		Level:       level,
		Development: cfg.Debug,
		Encoding:    "console",
	})
}
