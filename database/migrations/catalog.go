package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wavetags.link/configs/configslog"
	"wavetags.link/models"
)

func MigrateCatalogTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating links, user_links & blogs tables...")
	err := db.AutoMigrate(&models.Link{}, &models.UserLink{}, &models.Blog{})
	if err != nil {
		configslog.Log.Error("Failed to migrate links, user_links & blogs tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Links, user_links & blogs tables migrated successfully")
	return nil
}
