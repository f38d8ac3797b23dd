// Package cli holds the start-up steps shared by the prism subcommands.
package cli

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/infrastructure/config"
	"github.com/prism-finance/prism/internal/infrastructure/database"
	"github.com/prism-finance/prism/internal/shared/biztime"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// MapEnvToGinMode translates an environment name into a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}

// Bootstrap loads configuration, then initializes the logger and the
// business timezone.
func Bootstrap(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = MapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// OpenDatabase is Bootstrap followed by database.Open. The caller closes
// the handle with database.Close.
func OpenDatabase(env, configPath string) (*config.Config, *gorm.DB, logger.Interface, error) {
	cfg, log, err := Bootstrap(env, configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, db, log, nil
}
