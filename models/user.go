package models

// User platform kullanıcısı. Username ve Email benzersizdir.
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	FullName     string `gorm:"type:varchar(150);not null" json:"full_name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}
