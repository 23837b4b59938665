package di

import (
	"go.uber.org/fx"

	httpctrl "github.com/gelbe-umzuege/umzug-cloud-go/internal/controller/http"
)

// ControllerModule provides HTTP controller dependencies
var ControllerModule = fx.Module("controller",
	fx.Provide(
		httpctrl.NewAuthController,
		httpctrl.NewSettingsController,
		httpctrl.NewCatalogController,
	),
)
