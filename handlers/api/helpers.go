// Package api JSON API handler'larını içerir. Handler'lar isteği parse edip
// doğrular, servisi çağırır ve servis hatalarını HTTP koduna çevirir;
// iş kuralı içermezler.
package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// paramID path parametresini pozitif sayıya çevirir.
// Geçersiz değer verilen mesajla 400 döner.
func paramID(c *fiber.Ctx, name, invalidMsg string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, invalidMsg)
	}
	return uint(id), nil
}

// httpError servis hatasını verilen HTTP koduyla sarar.
func httpError(status int, err error) error {
	return fiber.NewError(status, err.Error())
}
