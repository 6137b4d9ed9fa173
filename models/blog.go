package models

// Blog bir karta bağlı blog yazısı. (CardID, Heading) ikilisi benzersizdir;
// kontrol yazma öncesi sorgu ile yapılır.
type Blog struct {
	BaseModel
	Heading     string `gorm:"type:varchar(255);index;not null" json:"heading"`
	Content     string `gorm:"type:text;not null" json:"blogcontent"`
	CardID      uint   `gorm:"index;not null" json:"cardid"`
	Description string `gorm:"type:text;not null" json:"description"`
	CoverImage  string `gorm:"type:varchar(500);not null" json:"coverimg"`
}
