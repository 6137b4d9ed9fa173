package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/services"
	"wavetags.link/validations"
)

// CardHandler kartvizit uçları için handler.
type CardHandler struct {
	cardService services.ICardService
	userService services.IUserService
}

// NewCardHandler yeni bir CardHandler örneği oluşturur.
func NewCardHandler() *CardHandler {
	return &CardHandler{
		cardService: services.NewCardService(),
		userService: services.NewUserService(),
	}
}

// CreateCard (POST /api/card)
// Kart boş lead formuyla birlikte oluşturulur.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var req validations.CreateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	card, err := h.cardService.CreateCard(c.UserContext(), req.UserID, req.CardTitle)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardOwnerMissing),
			errors.Is(err, services.ErrCardInvalidInput):
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Card Created",
		"status":  "success",
		"data":    card,
	})
}

// GetCards (GET /api/card)
func (h *CardHandler) GetCards(c *fiber.Ctx) error {
	cards, err := h.cardService.GetCards(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrCardsNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": cards})
}

// GetCardByUserID (GET /api/card/:id)
// Parametre kart sahibinin kullanıcı ID'sidir, kart ID'si değil.
func (h *CardHandler) GetCardByUserID(c *fiber.Ctx) error {
	userID, err := paramID(c, "id", "Invalid card ID")
	if err != nil {
		return err
	}

	if _, err := h.userService.GetUserByID(c.UserContext(), userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}

	card, err := h.cardService.GetCardByUserID(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Card found",
		"status":  "success",
		"data":    card,
	})
}

// GetCardByHash (GET /api/card/hash/:hash)
// Public kart görüntüleme; kimlik doğrulaması gerektirmez.
func (h *CardHandler) GetCardByHash(c *fiber.Ctx) error {
	card, err := h.cardService.GetCardByHash(c.UserContext(), c.Params("hash"))
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Card found",
		"status":  "success",
		"data":    card,
	})
}

// UpdateCardByID (PATCH /api/card/:id)
func (h *CardHandler) UpdateCardByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Invalid card ID")
	if err != nil {
		return err
	}

	var req validations.UpdateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	card, err := h.cardService.UpdateCard(c.UserContext(), id, services.CardUpdates{
		CardTitle:      req.CardTitle,
		Fields:         req.Fields,
		Layout:         req.Layout,
		Theme:          req.Theme,
		ProfilePicture: req.ProfilePicture,
		CoverPicture:   req.CoverPicture,
		CompanyLogo:    req.CompanyLogo,
		QRCode:         req.QRCode,
	})
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Card updated",
		"status":  "success",
		"data":    card,
	})
}

// DeleteCardByID (DELETE /api/card/:id)
func (h *CardHandler) DeleteCardByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id", "Invalid card ID")
	if err != nil {
		return err
	}

	if err := h.cardService.DeleteCard(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Card deleted", "status": "success"})
}
