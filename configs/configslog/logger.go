package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log uygulama genelinde kullanılan yapılandırılmış logger.
// SLog aynı logger'ın sugared versiyonu (formatlı mesajlar için).
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger logger'ları başlatır. main() içinde bir kez çağrılmalı.
func InitLogger() {
	env := os.Getenv("APP_ENV")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa devam etmenin anlamı yok.
		panic("logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger buffer'lanmış log kayıtlarını flush eder (defer ile çağrılır).
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
