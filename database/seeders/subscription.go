package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"wavetags.link/configs/configslog"
	"wavetags.link/models"
)

// SeedSubscriptionPlans temel abonelik planlarını oluşturur.
// Var olan plana dokunulmaz; seed işlemi idempotent'tir.
func SeedSubscriptionPlans(db *gorm.DB) error {
	plansToSeed := []models.Subscription{
		{
			Plan:     models.SubscriptionPlanFree,
			PlanType: "monthly",
			Price:    0,
			Features: models.FeatureList{"1 card", "Basic insights"},
		},
		{
			Plan:     models.SubscriptionPlanPro,
			PlanType: "monthly",
			Price:    9.99,
			Features: models.FeatureList{"1 card", "Lead capture", "Full insights"},
		},
		{
			Plan:     models.SubscriptionPlanPremium,
			PlanType: "monthly",
			Price:    19.99,
			Features: models.FeatureList{"Unlimited cards", "Lead capture", "Full insights", "Priority support"},
		},
	}

	var createdCount int64
	configslog.SLog.Info("Abonelik planları seed işlemi başlıyor...")

	for _, plan := range plansToSeed {
		var existing models.Subscription
		err := db.Where("plan = ? AND plan_type = ?", plan.Plan, plan.PlanType).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Plan kontrolü başarısız", zap.String("plan", plan.Plan), zap.Error(err))
			return err
		}

		if err := db.Create(&plan).Error; err != nil {
			configslog.Log.Error("Plan oluşturulamadı", zap.String("plan", plan.Plan), zap.Error(err))
			return err
		}
		createdCount++
	}

	configslog.SLog.Infof("Abonelik planları seed işlemi tamamlandı. %d yeni plan oluşturuldu.", createdCount)
	return nil
}
