package validations

// CreateFeatureRequestRequest özellik talebi gövdesi.
type CreateFeatureRequestRequest struct {
	UserID  uint   `json:"user" validate:"required"`
	Message string `json:"message" validate:"required"`
}

var createFeatureRequestMessages = map[string]string{
	"UserID.required":  "User id is required",
	"Message.required": "Message is required",
}

func (r CreateFeatureRequestRequest) Validate() error {
	return firstViolation(validate.Struct(r), createFeatureRequestMessages)
}

// CreateSupportMessageRequest destek mesajı gövdesi.
type CreateSupportMessageRequest struct {
	UserID  uint   `json:"user" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

var createSupportMessageMessages = map[string]string{
	"UserID.required":  "User id is required",
	"Subject.required": "Subject is required",
	"Message.required": "Message is required",
}

func (r CreateSupportMessageRequest) Validate() error {
	return firstViolation(validate.Struct(r), createSupportMessageMessages)
}
