package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/services"
	"wavetags.link/validations"
)

// SubscriptionHandler abonelik uçları için handler.
type SubscriptionHandler struct {
	subscriptionService services.ISubscriptionService
}

// NewSubscriptionHandler yeni bir SubscriptionHandler örneği oluşturur.
func NewSubscriptionHandler() *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: services.NewSubscriptionService()}
}

// CreateSubscription (POST /api/subscription)
func (h *SubscriptionHandler) CreateSubscription(c *fiber.Ctx) error {
	var req validations.CreateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	plan, err := h.subscriptionService.CreatePlan(c.UserContext(), req.Plan, req.PlanType, req.Price, req.Features)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": plan})
}

// GetSubscription (GET /api/subscription)
func (h *SubscriptionHandler) GetSubscription(c *fiber.Ctx) error {
	plans, err := h.subscriptionService.GetPlans(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": plans})
}

// CreateUserSubscription (POST /api/subscription/user/:userId/:subscriptionId)
func (h *SubscriptionHandler) CreateUserSubscription(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId", "Invalid user ID")
	if err != nil {
		return err
	}
	subscriptionID, err := paramID(c, "subscriptionId", "Invalid subscription ID")
	if err != nil {
		return err
	}

	sub, err := h.subscriptionService.Subscribe(c.UserContext(), userID, subscriptionID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubUserNotFound),
			errors.Is(err, services.ErrSubscriptionNotExist):
			return httpError(fiber.StatusNotFound, err)
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": sub})
}

// GetUserSubscription (GET /api/subscription/user/:userId)
// Aboneliği olmayan kullanıcı için data null döner.
func (h *SubscriptionHandler) GetUserSubscription(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId", "Invalid user ID")
	if err != nil {
		return err
	}

	sub, err := h.subscriptionService.GetUserSubscription(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success", "data": sub})
}
