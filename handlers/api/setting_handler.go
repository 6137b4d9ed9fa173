package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/services"
	"wavetags.link/validations"
)

// SettingHandler özellik talebi ve destek mesajı uçları için handler.
type SettingHandler struct {
	settingService services.ISettingService
}

// NewSettingHandler yeni bir SettingHandler örneği oluşturur.
func NewSettingHandler() *SettingHandler {
	return &SettingHandler{settingService: services.NewSettingService()}
}

// CreateFeatureRequest (POST /api/setting/feature-request)
func (h *SettingHandler) CreateFeatureRequest(c *fiber.Ctx) error {
	var req validations.CreateFeatureRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	request, err := h.settingService.CreateFeatureRequest(c.UserContext(), req.UserID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrSettingUserNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": request})
}

// GetFeatureRequests (GET /api/setting/feature-request)
func (h *SettingHandler) GetFeatureRequests(c *fiber.Ctx) error {
	requests, err := h.settingService.GetFeatureRequests(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": requests})
}

// CreateSupportMessage (POST /api/setting/support-message)
func (h *SettingHandler) CreateSupportMessage(c *fiber.Ctx) error {
	var req validations.CreateSupportMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	message, err := h.settingService.CreateSupportMessage(c.UserContext(), req.UserID, req.Subject, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrSettingUserNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": message})
}

// GetSupportMessages (GET /api/setting/support-message)
func (h *SettingHandler) GetSupportMessages(c *fiber.Ctx) error {
	messages, err := h.settingService.GetSupportMessages(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": messages})
}
