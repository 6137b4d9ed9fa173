package models

import (
	"database/sql/driver"

	"wavetags.link/models/helpers"
)

// Abonelik planları.
const (
	SubscriptionPlanFree    = "free"
	SubscriptionPlanPro     = "pro"
	SubscriptionPlanPremium = "premium"
)

// FeatureList plan özellikleri (JSONB kolonu).
type FeatureList []string

func (l FeatureList) Value() (driver.Value, error) { return helpers.JSONValue(l) }
func (l *FeatureList) Scan(src interface{}) error  { return helpers.JSONScan(src, l) }

// Subscription satın alınabilir bir abonelik planı.
type Subscription struct {
	BaseModel
	Plan     string      `gorm:"type:varchar(50);default:free" json:"subscription"`
	PlanType string      `gorm:"type:varchar(50);not null" json:"planType"`
	Price    float64     `gorm:"not null" json:"price"`
	Features FeatureList `gorm:"type:jsonb" json:"features"`
}

// UserSubscription kullanıcı ile plan arasındaki soft referanslı bağ.
type UserSubscription struct {
	BaseModel
	UserID         uint `gorm:"index;not null" json:"user"`
	SubscriptionID uint `gorm:"index;not null" json:"subscription"`
}
