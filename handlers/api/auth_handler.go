package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/services"
	"wavetags.link/validations"
)

// AuthHandler login/logout/refresh uçları için handler.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler(authService services.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login (POST /api/auth/login)
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req validations.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return httpError(fiber.StatusUnauthorized, err)
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User login successfully",
		"token":   token,
		"user": fiber.Map{
			"_id":       user.ID,
			"userName":  user.Username,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}

// Logout (POST /api/auth/logout)
// Token kalan ömrü boyunca geçersiz kılınır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "You must be logged in - No authorization header")
	}

	if err := h.authService.Logout(c.UserContext(), token); err != nil {
		return httpError(fiber.StatusUnauthorized, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User logged out successfully",
	})
}

// Refresh (POST /api/auth/refresh)
// Süresi dolmuş token 201 ile yenilenir; dolmamış token aynen döner.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "You must be logged in - No authorization header")
	}

	newToken, refreshed, err := h.authService.Refresh(c.UserContext(), token)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid Token, Please Login Again")
	}

	if refreshed {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": newToken})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Token is not Expired yet",
		"token":   newToken,
	})
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
