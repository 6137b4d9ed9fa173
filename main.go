package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"wavetags.link/configs"
	"wavetags.link/configs/configsdatabase"
	"wavetags.link/configs/configslog"
	"wavetags.link/pkg/notifier"
	"wavetags.link/routes"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:      "Wavetags API",
		ErrorHandler: routes.ErrorHandler,
	})

	hub := notifier.NewHub()
	routes.SetupRoutes(app, hub)

	// Graceful shutdown: açık istekler tamamlanana kadar beklenir.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Kapatma sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
		}
	}()

	port := configs.GetEnv("PORT", "5000")
	configslog.SLog.Infof("Sunucu %s portunda dinliyor", port)
	if err := app.Listen(":" + port); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
