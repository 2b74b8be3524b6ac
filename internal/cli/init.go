// Package cli consolidates the initialization steps shared by the server and
// worker binaries.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"pocketledger/internal/config"
	"pocketledger/internal/log"
)

// Setup loads the optional .env file, installs a component-labeled default
// logger, and returns the validated configuration. It exits the process on
// configuration errors; there is nothing useful a binary can do with a
// config it cannot trust.
func Setup(component string) (*log.Logger, *config.Config) {
	// .env is a local development convenience; in production the variables
	// come from the environment.
	_ = godotenv.Load()

	cfg := log.DefaultConfig()
	cfg.Component = component
	logger := log.New(cfg)
	log.SetDefault(logger)

	appCfg := config.Load()
	if err := appCfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return logger, appCfg
}
