package models

import (
	"database/sql/driver"

	"wavetags.link/models/helpers"
)

// CardFields kart üzerinde gösterilen serbest metin alanları (JSONB).
type CardFields struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Address string `json:"address"`
	Bio     string `json:"bio"`
}

func (f CardFields) Value() (driver.Value, error) { return helpers.JSONValue(f) }
func (f *CardFields) Scan(src interface{}) error  { return helpers.JSONScan(src, f) }

// Card kullanıcının public dijital kartvizit profili.
// LeadFormID soft referanstır; kart oluşturulurken boş bir LeadForm ile birlikte yaratılır.
type Card struct {
	BaseModel
	UserID         uint       `gorm:"index;not null" json:"user"`
	CardTitle      string     `gorm:"type:varchar(150)" json:"cardTitle"`
	Hash           string     `gorm:"type:varchar(64);uniqueIndex;not null" json:"hash"`
	Fields         CardFields `gorm:"type:jsonb" json:"fields"`
	Layout         string     `gorm:"type:varchar(50)" json:"layout"`
	Theme          string     `gorm:"type:varchar(50)" json:"theme"`
	ProfilePicture string     `gorm:"type:varchar(500)" json:"profilePicture"`
	CoverPicture   string     `gorm:"type:varchar(500)" json:"coverPicture"`
	CompanyLogo    string     `gorm:"type:varchar(500)" json:"companyLogo"`
	QRCode         string     `gorm:"type:varchar(500)" json:"qrCode"`
	IsLeadEnabled  bool       `gorm:"default:false" json:"isLeadEnabled"`
	LeadFormID     *uint      `gorm:"index" json:"lead"`
}
