package models

// Link platform genelindeki sosyal link kataloğunun bir kaydı.
// Name ve URL benzersizdir; kontrol yazma öncesi sorgu ile yapılır.
type Link struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	URL  string `gorm:"type:varchar(500);uniqueIndex;not null" json:"link"`
	Icon string `gorm:"type:varchar(500);not null" json:"icon"`
}
