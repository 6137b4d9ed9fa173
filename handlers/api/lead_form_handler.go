package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/services"
	"wavetags.link/validations"
)

// LeadFormHandler lead formu uçları için handler.
type LeadFormHandler struct {
	leadFormService services.ILeadFormService
}

// NewLeadFormHandler yeni bir LeadFormHandler örneği oluşturur.
func NewLeadFormHandler() *LeadFormHandler {
	return &LeadFormHandler{leadFormService: services.NewLeadFormService()}
}

// GetLeadFormByID (GET /api/leadForm/:id)
func (h *LeadFormHandler) GetLeadFormByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Invalid Lead form id. Please provide a valid id.")
	if err != nil {
		return err
	}

	form, err := h.leadFormService.GetLeadFormByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrLeadFormNotFound) {
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Lead form found",
		"status":  "success",
		"data":    form,
	})
}

// UpdateLeadFormByID (PATCH /api/leadForm/:id)
// IsLeadEnabled verildiyse bağlı kartın toplama anahtarı da değişir.
func (h *LeadFormHandler) UpdateLeadFormByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Invalid Lead form id. Please provide a valid id.")
	if err != nil {
		return err
	}

	var req validations.UpdateLeadFormRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	form, err := h.leadFormService.UpdateLeadForm(c.UserContext(), id, req.CardID, services.LeadFormUpdates{
		Header:        req.Header,
		Fields:        req.Fields,
		IsLeadEnabled: req.IsLeadEnabled,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTextFieldHasOptions):
			return httpError(fiber.StatusBadRequest, err)
		case errors.Is(err, services.ErrLeadFormNotFound),
			errors.Is(err, services.ErrLeadFormCardNotFound):
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Lead form updated",
		"status":  "success",
		"data":    form,
	})
}
