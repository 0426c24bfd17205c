package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/hollow-cyber/Sarcopenia-Risk-Analytics/internal/models"
)

// RunMigrations выполняет миграции журнала предсказаний
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.PredictionRecord{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Дополнительные индексы под типовые запросы истории
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_sarc_predictions_card_created ON sarc_predictions(card_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_sarc_predictions_features_gin ON sarc_predictions USING GIN (features)",
	}
	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			slog.Warn("Failed to create index", "sql", indexSQL, "error", err)
		}
	}

	slog.Info("Database migrations applied")
	return nil
}
