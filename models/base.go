package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm entity'lerde gömülü kullanılan ortak alanlar.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
