package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wavetags.link/configs/configslog"
	"wavetags.link/models"
)

func MigrateSubscriptionsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating subscriptions & user_subscriptions tables...")
	err := db.AutoMigrate(&models.Subscription{}, &models.UserSubscription{})
	if err != nil {
		configslog.Log.Error("Failed to migrate subscriptions & user_subscriptions tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Subscriptions & user_subscriptions tables migrated successfully")
	return nil
}
