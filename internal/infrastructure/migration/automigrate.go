package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/infrastructure/persistence/models"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from the persistence models.
// It backs sqlite development databases and `migrate auto`.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.WithComponent("migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("running gorm auto migrate", "models_count", len(all))
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
