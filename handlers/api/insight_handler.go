package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/services"
)

// InsightHandler etkileşim sayaçları uçları için handler.
type InsightHandler struct {
	insightService services.IInsightService
}

// NewInsightHandler yeni bir InsightHandler örneği oluşturur.
func NewInsightHandler(insightService services.IInsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetInsightData (GET /api/insight)
func (h *InsightHandler) GetInsightData(c *fiber.Ctx) error {
	insights, err := h.insightService.GetInsights(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrInsightDataNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": insights})
}

// GetInsightByCardID (GET /api/insight/:card_id)
func (h *InsightHandler) GetInsightByCardID(c *fiber.Ctx) error {
	cardID, err := paramID(c, "card_id", "Card Id not Found")
	if err != nil {
		return err
	}

	insight, err := h.insightService.GetInsightByCardID(c.UserContext(), cardID)
	if err != nil {
		if errors.Is(err, services.ErrInsightDataNotFound) {
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": insight})
}

// UpdateInsightData (PATCH /api/insight/:card_id/:type/:userId)
// Aggregate yoksa olay sessizce düşer; yanıt yine 200'dür.
func (h *InsightHandler) UpdateInsightData(c *fiber.Ctx) error {
	cardID, err := paramID(c, "card_id", "Card Id not Found")
	if err != nil {
		return err
	}
	eventType := c.Params("type")
	if eventType == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Type not Found")
	}
	userID, err := paramID(c, "userId", "Invalid userId")
	if err != nil {
		return err
	}

	if err := h.insightService.RecordEvent(c.UserContext(), cardID, eventType, userID); err != nil {
		if errors.Is(err, services.ErrInvalidInsightEvent) {
			return httpError(fiber.StatusBadRequest, err)
		}
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "updated successfully",
		"status":  "success",
	})
}
