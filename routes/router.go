package routes

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"wavetags.link/configs"
	"wavetags.link/handlers/api"
	"wavetags.link/pkg/notifier"
	"wavetags.link/services"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
// Hub uygulama başında bir kez oluşturulur ve buradan handler'lara dağıtılır.
func SetupRoutes(app *fiber.App, hub *notifier.Hub) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(cors.New())

	authService := services.NewAuthService()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Welcome to Wavetags")
	})

	// --- Rota Grupları ---
	registerAuthRoutes(app, authService)
	registerUserRoutes(app, authService)
	registerCardRoutes(app, authService)
	registerLeadRoutes(app, authService, hub)
	registerInsightRoutes(app, authService, hub)
	registerCatalogRoutes(app)
	registerSettingRoutes(app)

	// --- Websocket ---
	wsHandler := api.NewWSHandler(hub)
	app.Use("/ws/:userId", wsHandler.Upgrade)
	app.Get("/ws/:userId", wsHandler.Serve())

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// ErrorHandler servis ve handler hatalarını tek formatta döner.
// Production dışında hata zinciri stack alanında görünür.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	resp := fiber.Map{
		"message": err.Error(),
		"status":  "error",
	}
	if configs.GetEnv("APP_ENV", "development") != "production" {
		resp["stack"] = errorChain(err)
	}
	return c.Status(code).JSON(resp)
}

// errorChain sarılmış hata zincirini dıştan içe satır satır döker.
func errorChain(err error) string {
	var b strings.Builder
	for depth := 0; err != nil; err = errors.Unwrap(err) {
		if depth > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
		depth++
	}
	return b.String()
}

func notFoundHandler(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, "Not Found - "+c.OriginalURL())
}
