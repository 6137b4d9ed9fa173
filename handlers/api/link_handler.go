package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/pkg/queryparams"
	"wavetags.link/services"
	"wavetags.link/validations"
)

// LinkHandler sosyal link kataloğu uçları için handler.
type LinkHandler struct {
	linkService services.ILinkService
}

// NewLinkHandler yeni bir LinkHandler örneği oluşturur.
func NewLinkHandler() *LinkHandler {
	return &LinkHandler{linkService: services.NewLinkService()}
}

// CreateLink (POST /api/links)
func (h *LinkHandler) CreateLink(c *fiber.Ctx) error {
	var req validations.CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	link, err := h.linkService.CreateLink(c.UserContext(), req.Name, req.URL, req.Icon)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLinkExists),
			errors.Is(err, services.ErrLinkFieldsNeeded):
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Link Created",
		"status":  "success",
		"data":    link,
	})
}

// ReadLink (GET /api/links/:linkId)
func (h *LinkHandler) ReadLink(c *fiber.Ctx) error {
	id, err := paramID(c, "linkId", "Invalid link ID")
	if err != nil {
		return err
	}

	link, err := h.linkService.GetLinkByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Link found",
		"status":  "success",
		"data":    link,
	})
}

// ReadAllLinks (GET /api/links)
// Sayfalama parametresi verilmişse sayfalı sonuç döner.
func (h *LinkHandler) ReadAllLinks(c *fiber.Ctx) error {
	if c.Query("page") != "" || c.Query("per_page") != "" {
		var params queryparams.ListParams
		if err := c.QueryParser(&params); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
		}
		result, err := h.linkService.GetLinksPaginated(c.UserContext(), params)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "success",
			"data":   result.Data,
			"meta":   result.Meta,
		})
	}

	links, err := h.linkService.GetLinks(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrLinksNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": links})
}

// UpdateLink (PATCH /api/links/:linkId)
func (h *LinkHandler) UpdateLink(c *fiber.Ctx) error {
	id, err := paramID(c, "linkId", "Invalid link ID")
	if err != nil {
		return err
	}

	var req validations.UpdateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	link, err := h.linkService.UpdateLink(c.UserContext(), id, services.LinkUpdates{
		Name: req.Name,
		URL:  req.URL,
		Icon: req.Icon,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLinkNotFound):
			return fiber.NewError(fiber.StatusNotFound, "No information found for the provided Link")
		case errors.Is(err, services.ErrLinkNameTaken),
			errors.Is(err, services.ErrLinkURLTaken):
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Link updated",
		"status":  "success",
		"data":    link,
	})
}

// DeleteLink (DELETE /api/links/:linkId)
func (h *LinkHandler) DeleteLink(c *fiber.Ctx) error {
	id, err := paramID(c, "linkId", "Invalid link ID")
	if err != nil {
		return err
	}

	if err := h.linkService.DeleteLink(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Link deleted", "status": "success"})
}
