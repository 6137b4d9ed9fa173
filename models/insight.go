package models

import (
	"database/sql/driver"
	"time"

	"wavetags.link/models/helpers"
)

// Insight güncellemelerinde kullanılan olay tipleri.
const (
	InsightEventLinkTap  = "linkTap"
	InsightEventDownload = "download"
	InsightEventCardView = "cardView"
)

// LeadEntry üretilen bir lead'in kaydı (append-only liste elemanı).
type LeadEntry struct {
	FormDataID uint      `json:"id"`
	Time       time.Time `json:"time"`
}

// LeadEntryList lead kayıtları (JSONB kolonu).
type LeadEntryList []LeadEntry

func (l LeadEntryList) Value() (driver.Value, error) { return helpers.JSONValue(l) }
func (l *LeadEntryList) Scan(src interface{}) error  { return helpers.JSONScan(src, l) }

// Insight kart başına etkileşim sayaçları. Sayaçlar yalnızca artar.
type Insight struct {
	BaseModel
	CardID                   uint          `gorm:"uniqueIndex;not null" json:"cardId"`
	NumberOfLeadGenerated    int64         `gorm:"default:0" json:"numberOfLeadGenerated"`
	NumberOfLinkTaps         int64         `gorm:"default:0" json:"numberOfLinkTaps"`
	NumberOfCardViews        int64         `gorm:"default:0" json:"numberOfCardViews"`
	NumberOfContactsDownload int64         `gorm:"default:0" json:"numberOfContactsDownload"`
	Leads                    LeadEntryList `gorm:"type:jsonb" json:"leads"`
}
