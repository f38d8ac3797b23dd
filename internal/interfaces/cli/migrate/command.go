package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/infrastructure/database"
	"github.com/prism-finance/prism/internal/infrastructure/migration"
	"github.com/prism-finance/prism/internal/interfaces/cli"
	"github.com/prism-finance/prism/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newAutoCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE: withDatabase(func(db *gorm.DB, dialect string, log logger.Interface) error {
			log.Infow("running up migrations", "environment", env)
			if err := migration.NewGooseStrategy(dialect).Migrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Infow("migrations completed successfully")
			return nil
		}),
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE: withDatabase(func(db *gorm.DB, dialect string, log logger.Interface) error {
			log.Infow("running down migrations", "environment", env, "steps", steps)
			if err := migration.NewGooseStrategy(dialect).MigrateDown(db, steps); err != nil {
				return fmt.Errorf("down migration failed: %w", err)
			}
			log.Infow("down migration completed successfully")
			return nil
		}),
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the applied and pending migrations of the database.`,
		RunE: withDatabase(func(db *gorm.DB, dialect string, log logger.Interface) error {
			fmt.Printf("\nMigration Status (%s):\n", env)
			if err := migration.NewGooseStrategy(dialect).Status(db); err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}
			return nil
		}),
	}
}

// newAutoCommand syncs the schema from the persistence models. Handy for
// local sqlite databases; production uses the versioned scripts.
func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Sync schema from models",
		RunE: withDatabase(func(db *gorm.DB, _ string, log logger.Interface) error {
			if err := migration.NewGormAutoMigrateStrategy().Migrate(db); err != nil {
				return fmt.Errorf("auto migration failed: %w", err)
			}
			log.Infow("schema synced from models")
			return nil
		}),
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file with the specified name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := cli.Bootstrap(env, configPath)
			if err != nil {
				return err
			}

			if err := migration.NewGooseStrategy(cfg.Database.Driver).Create(migration.SourceDir, name); err != nil {
				return fmt.Errorf("failed to create migration: %w", err)
			}

			log.Infow("migration created successfully", "name", name, "dir", migration.SourceDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

type dbRunner func(db *gorm.DB, dialect string, log logger.Interface) error

func withDatabase(fn dbRunner) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, db, log, err := cli.OpenDatabase(env, configPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.Errorw("failed to close database", "error", err)
			}
		}()

		if err := fn(db, cfg.Database.Driver, log); err != nil {
			log.Errorw("migration command failed", "command", cmd.Name(), "error", err)
			return err
		}
		return nil
	}
}
