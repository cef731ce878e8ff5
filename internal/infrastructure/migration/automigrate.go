package migration

import (
	"fmt"

	"gorm.io/gorm"

	"holzwerk/internal/infrastructure/persistence/models"
	"holzwerk/internal/shared/logger"
)

// AutoMigrateModels returns every model the schema migration covers
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.EmailTemplateModel{},
		&models.SystemSettingModel{},
		&models.ProductModel{},
	}
}

// Run applies the schema via GORM AutoMigrate
func Run(db *gorm.DB) error {
	migrateModels := AutoMigrateModels()

	logger.Info("starting database migration",
		"models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		logger.Error("migration failed", "error", err)
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	logger.Info("database migration completed successfully")
	return nil
}
