package models

import (
	"database/sql/driver"

	"wavetags.link/models/helpers"
)

// FieldValue ziyaretçinin tek bir alana verdiği cevap.
type FieldValue struct {
	FieldID string `json:"_id"`
	Value   string `json:"value"`
}

// FieldValueList gönderim cevapları (JSONB kolonu).
type FieldValueList []FieldValue

func (l FieldValueList) Value() (driver.Value, error) { return helpers.JSONValue(l) }
func (l *FieldValueList) Scan(src interface{}) error  { return helpers.JSONScan(src, l) }

// FormData bir ziyaretçi gönderimi. Oluşturulduktan sonra değiştirilemez.
type FormData struct {
	BaseModel
	LeadFormID uint           `gorm:"index;not null" json:"leadForm"`
	Data       FieldValueList `gorm:"type:jsonb" json:"data"`
}
