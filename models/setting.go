package models

// FeatureRequest kullanıcıdan gelen özellik talebi.
type FeatureRequest struct {
	BaseModel
	UserID  uint   `gorm:"index;not null" json:"user"`
	Message string `gorm:"type:text;not null" json:"message"`
}

// SupportMessage kullanıcıdan gelen destek mesajı.
type SupportMessage struct {
	BaseModel
	UserID  uint   `gorm:"index;not null" json:"user"`
	Subject string `gorm:"type:varchar(255);not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
}
