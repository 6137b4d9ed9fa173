package models

import (
	"database/sql/driver"

	"wavetags.link/models/helpers"
)

// UserLinkEntry kullanıcının katalogtaki bir linke verdiği alt adres.
type UserLinkEntry struct {
	SubLink string `json:"subLink"`
	LinkID  uint   `json:"link"`
}

// UserLinkEntryList kullanıcı link listesi (JSONB kolonu).
type UserLinkEntryList []UserLinkEntry

func (l UserLinkEntryList) Value() (driver.Value, error) { return helpers.JSONValue(l) }
func (l *UserLinkEntryList) Scan(src interface{}) error  { return helpers.JSONScan(src, l) }

// UserLink bir kullanıcının kartında gösterilen sosyal linkler.
type UserLink struct {
	BaseModel
	UserID uint              `gorm:"index;not null" json:"user"`
	Links  UserLinkEntryList `gorm:"type:jsonb" json:"links"`
}
