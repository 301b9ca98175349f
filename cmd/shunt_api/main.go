// Package main Shunting Yard API
// @title Shunting Yard API
// @version 1.0
// @description Converts infix arithmetic expressions to postfix (RPN) and keeps a conversion history
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/shunting-yard/internal/api/server"
	"github.com/DjordjeVuckovic/shunting-yard/internal/router"
	"github.com/DjordjeVuckovic/shunting-yard/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/shunting-yard/pkg/server"
	"github.com/labstack/echo/v4"
)

const storeSetupTimeout = 30 * time.Second

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	// The health checker pings the store, so the store comes first.
	setupCtx, cancelSetup := context.WithTimeout(context.Background(), storeSetupTimeout)
	store, err := factory.NewStore(setupCtx, cfg.StorageConfig)
	cancelSetup()
	if err != nil {
		slog.Error("Failed to create conversion store", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, pkgserver.NewPingHealthChecker(store)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Shunting Yard API is running")
	})

	convertRouter := router.NewConvertRouter(s.Echo, store, router.WithDefaultStrict(cfg.StrictMode))
	convertRouter.Bind()
	slog.Info("Routes bound", "storage", cfg.StorageConfig.Type, "strict", cfg.StrictMode)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	store.Close()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
