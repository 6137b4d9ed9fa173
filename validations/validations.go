// Package validations istek gövdelerini handler'lara ulaşmadan doğrular.
// Her istek tipi kendi kural setini ve alan bazlı hata mesajlarını taşır;
// ilk ihlal 400 ile döner.
package validations

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// firstViolation ilk kural ihlalini alan bazlı mesaj tablosundan çevirir.
// Tabloda karşılığı olmayan ihlaller validator'ın kendi metniyle döner.
func firstViolation(err error, messages map[string]string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		key := verrs[0].Field() + "." + verrs[0].Tag()
		if msg, ok := messages[key]; ok {
			return fiber.NewError(fiber.StatusBadRequest, msg)
		}
		return fiber.NewError(fiber.StatusBadRequest, verrs[0].Error())
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}
