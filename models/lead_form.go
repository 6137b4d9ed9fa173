package models

import (
	"database/sql/driver"

	"wavetags.link/models/helpers"
)

// Alan tipleri. Text türevleri seçenek listesi taşıyamaz.
const (
	FieldTypeText     = "text"
	FieldTypeTextarea = "textarea"
	FieldTypeChoice   = "choice"
)

// FieldOption choice tipindeki alanların seçeneklerinden biri.
type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LeadField form şemasındaki tek bir alan tanımı.
type LeadField struct {
	FieldID     string        `json:"_id"`
	FieldType   string        `json:"fieldType"`
	Label       string        `json:"label"`
	IsEnabled   bool          `json:"isEnabled"`
	IsRequired  bool          `json:"isRequired"`
	Placeholder string        `json:"placeholder"`
	Options     []FieldOption `json:"options"`
}

// LeadFieldList sıralı alan tanımları (JSONB kolonu).
type LeadFieldList []LeadField

func (l LeadFieldList) Value() (driver.Value, error) { return helpers.JSONValue(l) }
func (l *LeadFieldList) Scan(src interface{}) error  { return helpers.JSONScan(src, l) }

// LeadForm bir karta bağlı ziyaretçi iletişim formu şeması.
// Kart referansı soft'tur; store seviyesinde zorlanmaz.
type LeadForm struct {
	BaseModel
	Header string        `gorm:"type:varchar(255)" json:"header"`
	Fields LeadFieldList `gorm:"type:jsonb" json:"fields"`
}
