package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"wavetags.link/services"
)

// Locals anahtarları.
const (
	LocalsUserKey  = "authUser"
	LocalsTokenKey = "authToken"
)

// AuthMiddleware Bearer token'ı doğrulayıp kullanıcıyı locals'a koyar.
// Token yoksa veya geçersizse istek 401 ile kesilir.
func AuthMiddleware(authService services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, string(services.ErrTokenMissing))
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		user, err := authService.VerifyToken(c.UserContext(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		c.Locals(LocalsUserKey, user)
		c.Locals(LocalsTokenKey, token)
		return c.Next()
	}
}
