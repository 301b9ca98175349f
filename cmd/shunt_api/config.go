package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/shunting-yard/internal/storage/factory"
	"github.com/DjordjeVuckovic/shunting-yard/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ShuntApiConfig struct {
	StrictMode    bool
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) Load() (*ShuntApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/shunt_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &ShuntApiConfig{
		StrictMode:    os.Getenv("STRICT_MODE") == "true",
		StorageConfig: *storageCfg,
	}, nil
}
