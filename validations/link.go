package validations

// CreateLinkRequest katalog linki oluşturma gövdesi.
type CreateLinkRequest struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"link" validate:"required"`
	Icon string `json:"icon" validate:"required"`
}

var createLinkMessages = map[string]string{
	"Name.required": "Name cannot be empty",
	"URL.required":  "Link cannot be empty",
	"Icon.required": "Icon cannot be empty",
}

func (r CreateLinkRequest) Validate() error {
	return firstViolation(validate.Struct(r), createLinkMessages)
}

// UpdateLinkRequest kısmi link güncelleme gövdesi.
type UpdateLinkRequest struct {
	Name string `json:"name"`
	URL  string `json:"link"`
	Icon string `json:"icon"`
}

func (r UpdateLinkRequest) Validate() error {
	return firstViolation(validate.Struct(r), nil)
}
