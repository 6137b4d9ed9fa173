package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wavetags.link/configs/configslog"
	"wavetags.link/models"
)

func MigrateLeadTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating lead_forms & form_data tables...")
	err := db.AutoMigrate(&models.LeadForm{}, &models.FormData{})
	if err != nil {
		configslog.Log.Error("Failed to migrate lead_forms & form_data tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Lead_forms & form_data tables migrated successfully")
	return nil
}
