package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/services"
	"wavetags.link/validations"
)

// UserLinkHandler kullanıcının seçtiği sosyal linkler için handler.
type UserLinkHandler struct {
	userLinkService services.IUserLinkService
}

// NewUserLinkHandler yeni bir UserLinkHandler örneği oluşturur.
func NewUserLinkHandler() *UserLinkHandler {
	return &UserLinkHandler{userLinkService: services.NewUserLinkService()}
}

// SetUserLinks (PUT /api/users/:id/links)
// Liste bütün olarak değiştirilir.
func (h *UserLinkHandler) SetUserLinks(c *fiber.Ctx) error {
	userID, err := paramID(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	var req validations.SetUserLinksRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	userLink, err := h.userLinkService.SetUserLinks(c.UserContext(), userID, req.Links)
	if err != nil {
		if errors.Is(err, services.ErrUserLinkUserMissing) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": userLink})
}

// GetUserLinks (GET /api/users/:id/links)
func (h *UserLinkHandler) GetUserLinks(c *fiber.Ctx) error {
	userID, err := paramID(c, "id", "Invalid user ID")
	if err != nil {
		return err
	}

	userLink, err := h.userLinkService.GetUserLinks(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserLinksNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": userLink})
}
