package validations

// CreateBlogRequest blog yazısı oluşturma gövdesi.
type CreateBlogRequest struct {
	CardID      uint   `json:"cardid" validate:"required"`
	Heading     string `json:"heading" validate:"required"`
	Content     string `json:"blogcontent" validate:"required"`
	Description string `json:"description" validate:"required"`
	CoverImage  string `json:"coverimg" validate:"required"`
}

var createBlogMessages = map[string]string{
	"CardID.required":      "Cardid cannot be empty",
	"Heading.required":     "Heading cannot be empty",
	"Content.required":     "Blogcontent cannot be empty",
	"Description.required": "Description cannot be empty",
	"CoverImage.required":  "CoverImg cannot be empty",
}

func (r CreateBlogRequest) Validate() error {
	return firstViolation(validate.Struct(r), createBlogMessages)
}

// UpdateBlogRequest kısmi blog güncelleme gövdesi.
type UpdateBlogRequest struct {
	Heading     string `json:"heading"`
	Content     string `json:"blogcontent"`
	Description string `json:"description"`
	CoverImage  string `json:"coverimg"`
}

func (r UpdateBlogRequest) Validate() error {
	return firstViolation(validate.Struct(r), nil)
}
