package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/services"
	"wavetags.link/validations"
)

// FormDataHandler ziyaretçi form gönderimi uçları için handler.
type FormDataHandler struct {
	formDataService services.IFormDataService
}

// NewFormDataHandler yeni bir FormDataHandler örneği oluşturur.
func NewFormDataHandler(formDataService services.IFormDataService) *FormDataHandler {
	return &FormDataHandler{formDataService: formDataService}
}

// CreateFormData (POST /api/form-data/:leadFormId/:cardId/:userId)
// Public uç; ziyaretçi kimliği yoktur. Doğrulama hataları 400 döner,
// başarılı gönderim sayaç/bildirim hatalarından etkilenmez.
func (h *FormDataHandler) CreateFormData(c *fiber.Ctx) error {
	leadFormID, err := paramID(c, "leadFormId", "Invalid leadFormId")
	if err != nil {
		return err
	}
	cardID, err := paramID(c, "cardId", "Invalid cardId")
	if err != nil {
		return err
	}
	userID, err := paramID(c, "userId", "Invalid userId")
	if err != nil {
		return err
	}

	var req validations.SubmitFormDataRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid formData. Expected an array.")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	saved, err := h.formDataService.SubmitFormData(c.UserContext(), leadFormID, cardID, userID, req.FormData)
	if err != nil {
		var missing services.ErrRequiredFieldMissing
		switch {
		case errors.As(err, &missing),
			errors.Is(err, services.ErrSubmissionFormNotFound),
			errors.Is(err, services.ErrSubmissionCardNotFound),
			errors.Is(err, services.ErrUnknownFieldID):
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Form data saved successfully",
		"status":        "success",
		"savedFormData": saved,
	})
}

// GetFormDataByLeadFormID (GET /api/form-data/:leadFormId)
// Boş liste hata değildir.
func (h *FormDataHandler) GetFormDataByLeadFormID(c *fiber.Ctx) error {
	leadFormID, err := paramID(c, "leadFormId", "Invalid leadFormId")
	if err != nil {
		return err
	}

	records, err := h.formDataService.GetFormDataByLeadFormID(c.UserContext(), leadFormID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Form data retrieved successfully",
		"status":  "success",
		"data":    records,
	})
}
