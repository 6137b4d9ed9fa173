package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wavetags.link/configs/configslog"
	"wavetags.link/models"
)

func MigrateInsightsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating insights table...")
	err := db.AutoMigrate(&models.Insight{})
	if err != nil {
		configslog.Log.Error("Failed to migrate insights table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Insights table migrated successfully")
	return nil
}
