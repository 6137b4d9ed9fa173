package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wavetags.link/configs/configslog"
	"wavetags.link/models"
)

func MigrateSettingTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating feature_requests & support_messages tables...")
	err := db.AutoMigrate(&models.FeatureRequest{}, &models.SupportMessage{})
	if err != nil {
		configslog.Log.Error("Failed to migrate feature_requests & support_messages tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Feature_requests & support_messages tables migrated successfully")
	return nil
}
