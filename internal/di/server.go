package di

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gelbe-umzuege/umzug-cloud-go/internal/bootstrap"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/config"
	httpctrl "github.com/gelbe-umzuege/umzug-cloud-go/internal/controller/http"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/middleware"
	"github.com/gelbe-umzuege/umzug-cloud-go/internal/observability"
)

// HTTPServerModule provides HTTP server dependencies
var HTTPServerModule = fx.Module("http_server",
	fx.Provide(provideGinEngine),
	fx.Provide(provideHTTPServer),
	fx.Invoke(registerHTTPRoutes),
	fx.Invoke(startHTTPServer),
)

func provideGinEngine(cfg *config.AppConfig, logger *zap.Logger, metrics *observability.MetricsProvider) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(observability.MetricsMiddleware(metrics))

	return router
}

func provideHTTPServer(cfg *config.ServerConfig, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// Controllers is a struct that holds all HTTP controllers for fx to inject
type Controllers struct {
	fx.In

	Auth     *httpctrl.AuthController
	Settings *httpctrl.SettingsController
	Catalog  *httpctrl.CatalogController
}

func registerHTTPRoutes(
	router *gin.Engine,
	controllers Controllers,
	result *bootstrap.Result,
	uploadsCfg *config.UploadsConfig,
	uploadDir *bootstrap.UploadDir,
	metrics *observability.MetricsProvider,
) {
	// Health endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"state":      string(result.State),
			"filesystem": result.FilesystemReady,
			"database":   result.DatabaseReady,
		})
	})

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Uploaded assets, served from the validated directory
	if uploadsCfg.ServeStatic {
		router.Static(uploadsCfg.PublicPath, uploadDir.Path())
	}

	// API routes
	api := router.Group("/api/v1")

	controllers.Auth.RegisterRoutes(api)
	controllers.Settings.RegisterRoutes(api)
	controllers.Catalog.RegisterRoutes(api)
}

func startHTTPServer(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting HTTP server", zap.String("address", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}
