package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/observability"
)

// ObservabilityModule provides metrics dependencies
var ObservabilityModule = fx.Module("observability",
	fx.Provide(provideMetricsProvider),
)

func provideMetricsProvider(logger *zap.Logger) *observability.MetricsProvider {
	return observability.NewMetricsProvider(logger)
}
