package validations

import (
	"github.com/gofiber/fiber/v2"

	"wavetags.link/models"
)

// UpdateLeadFormRequest form şeması güncelleme gövdesi.
// IsLeadEnabled karta yazılır; bu yüzden CardID zorunludur.
type UpdateLeadFormRequest struct {
	CardID        uint                  `json:"cardId" validate:"required"`
	Header        *string               `json:"header"`
	Fields        *models.LeadFieldList `json:"fields"`
	IsLeadEnabled *bool                 `json:"isLeadEnabled"`
}

var updateLeadFormMessages = map[string]string{
	"CardID.required": "cardId is required",
}

func (r UpdateLeadFormRequest) Validate() error {
	if err := firstViolation(validate.Struct(r), updateLeadFormMessages); err != nil {
		return err
	}
	if r.Fields != nil {
		for _, field := range *r.Fields {
			switch field.FieldType {
			case models.FieldTypeText, models.FieldTypeTextarea, models.FieldTypeChoice:
			default:
				return fiber.NewError(fiber.StatusBadRequest, "Invalid field type: "+field.FieldType)
			}
		}
	}
	return nil
}

// SubmitFormDataRequest ziyaretçi gönderimi gövdesi.
type SubmitFormDataRequest struct {
	FormData models.FieldValueList `json:"formData"`
}

func (r SubmitFormDataRequest) Validate() error {
	if r.FormData == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid formData. Expected an array.")
	}
	return nil
}
