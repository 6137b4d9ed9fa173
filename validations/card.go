package validations

import "wavetags.link/models"

// CreateCardRequest kart oluşturma gövdesi. Hash ve lead formu sunucuda üretilir.
type CreateCardRequest struct {
	UserID    uint   `json:"user" validate:"required"`
	CardTitle string `json:"cardTitle"`
}

var createCardMessages = map[string]string{
	"UserID.required": "User Id is required",
}

func (r CreateCardRequest) Validate() error {
	return firstViolation(validate.Struct(r), createCardMessages)
}

// UpdateCardRequest kısmi kart güncelleme gövdesi; nil alanlar dokunulmaz.
type UpdateCardRequest struct {
	CardTitle      *string            `json:"cardTitle"`
	Fields         *models.CardFields `json:"fields"`
	Layout         *string            `json:"layout"`
	Theme          *string            `json:"theme"`
	ProfilePicture *string            `json:"profilePicture"`
	CoverPicture   *string            `json:"coverPicture"`
	CompanyLogo    *string            `json:"companyLogo"`
	QRCode         *string            `json:"qrCode"`
}

func (r UpdateCardRequest) Validate() error {
	return firstViolation(validate.Struct(r), nil)
}
