package routes

import (
	"github.com/gofiber/fiber/v2"

	"wavetags.link/handlers/api"
	"wavetags.link/middlewares"
	"wavetags.link/pkg/notifier"
	"wavetags.link/services"
)

func registerAuthRoutes(app *fiber.App, authService services.IAuthService) {
	authHandler := api.NewAuthHandler(authService)
	authGroup := app.Group("/api/auth")

	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middlewares.AuthMiddleware(authService), authHandler.Logout)
	authGroup.Post("/refresh", authHandler.Refresh)
}

func registerUserRoutes(app *fiber.App, authService services.IAuthService) {
	userHandler := api.NewUserHandler()
	userLinkHandler := api.NewUserLinkHandler()
	protect := middlewares.AuthMiddleware(authService)
	userGroup := app.Group("/api/users")

	// Kayıt açık, listeleme ve tekil işlemler korumalıdır.
	userGroup.Post("/", userHandler.CreateUser)
	userGroup.Get("/", protect, userHandler.GetUsers)
	userGroup.Get("/:id", protect, userHandler.GetUserByID)
	userGroup.Patch("/:id", protect, userHandler.UpdateUserByID)
	userGroup.Delete("/:id", protect, userHandler.DeleteUserByID)

	userGroup.Get("/:id/links", protect, userLinkHandler.GetUserLinks)
	userGroup.Put("/:id/links", protect, userLinkHandler.SetUserLinks)
}

func registerCardRoutes(app *fiber.App, authService services.IAuthService) {
	cardHandler := api.NewCardHandler()
	protect := middlewares.AuthMiddleware(authService)
	cardGroup := app.Group("/api/card")

	cardGroup.Get("/", cardHandler.GetCards)
	cardGroup.Post("/", cardHandler.CreateCard)
	// Public kart görüntüleme; ziyaretçiler hash üzerinden erişir.
	cardGroup.Get("/hash/:hash", cardHandler.GetCardByHash)
	// :id kart sahibinin kullanıcı ID'sidir.
	cardGroup.Get("/:id", cardHandler.GetCardByUserID)
	cardGroup.Patch("/:id", protect, cardHandler.UpdateCardByID)
	cardGroup.Delete("/:id", protect, cardHandler.DeleteCardByID)
}

func registerLeadRoutes(app *fiber.App, authService services.IAuthService, hub *notifier.Hub) {
	leadFormHandler := api.NewLeadFormHandler()
	formDataHandler := api.NewFormDataHandler(services.NewFormDataService(hub))
	protect := middlewares.AuthMiddleware(authService)

	leadFormGroup := app.Group("/api/leadForm")
	leadFormGroup.Get("/:id", protect, leadFormHandler.GetLeadFormByID)
	leadFormGroup.Patch("/:id", protect, leadFormHandler.UpdateLeadFormByID)

	formDataGroup := app.Group("/api/form-data")
	// Gönderim public'tir; ziyaretçi token taşımaz.
	formDataGroup.Post("/:leadFormId/:cardId/:userId", formDataHandler.CreateFormData)
	formDataGroup.Get("/:leadFormId", protect, formDataHandler.GetFormDataByLeadFormID)
}

func registerInsightRoutes(app *fiber.App, authService services.IAuthService, hub *notifier.Hub) {
	insightHandler := api.NewInsightHandler(services.NewInsightService(hub))
	protect := middlewares.AuthMiddleware(authService)
	insightGroup := app.Group("/api/insight")

	insightGroup.Get("/", protect, insightHandler.GetInsightData)
	insightGroup.Get("/:card_id", protect, insightHandler.GetInsightByCardID)
	insightGroup.Patch("/:card_id/:type/:userId", protect, insightHandler.UpdateInsightData)
}

func registerCatalogRoutes(app *fiber.App) {
	linkHandler := api.NewLinkHandler()
	blogHandler := api.NewBlogHandler()

	linkGroup := app.Group("/api/links")
	linkGroup.Post("/", linkHandler.CreateLink)
	linkGroup.Get("/", linkHandler.ReadAllLinks)
	linkGroup.Get("/:linkId", linkHandler.ReadLink)
	linkGroup.Patch("/:linkId", linkHandler.UpdateLink)
	linkGroup.Delete("/:linkId", linkHandler.DeleteLink)

	blogGroup := app.Group("/api/blogs")
	blogGroup.Post("/", blogHandler.CreateBlog)
	blogGroup.Get("/", blogHandler.ReadAllBlogs)
	blogGroup.Get("/:blogId", blogHandler.ReadBlog)
	blogGroup.Patch("/:blogId", blogHandler.UpdateBlog)
	blogGroup.Delete("/:blogId", blogHandler.DeleteBlog)
}

func registerSettingRoutes(app *fiber.App) {
	settingHandler := api.NewSettingHandler()
	subscriptionHandler := api.NewSubscriptionHandler()

	settingGroup := app.Group("/api/setting")
	settingGroup.Get("/feature-request", settingHandler.GetFeatureRequests)
	settingGroup.Post("/feature-request", settingHandler.CreateFeatureRequest)
	settingGroup.Get("/support-message", settingHandler.GetSupportMessages)
	settingGroup.Post("/support-message", settingHandler.CreateSupportMessage)

	subscriptionGroup := app.Group("/api/subscription")
	subscriptionGroup.Get("/", subscriptionHandler.GetSubscription)
	subscriptionGroup.Post("/", subscriptionHandler.CreateSubscription)
	subscriptionGroup.Get("/user/:userId", subscriptionHandler.GetUserSubscription)
	subscriptionGroup.Post("/user/:userId/:subscriptionId", subscriptionHandler.CreateUserSubscription)
}
