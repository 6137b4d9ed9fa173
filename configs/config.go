package configs

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"wavetags.link/configs/configslog"
)

// LoadEnv .env dosyasını yükler (varsa). Ortam değişkenleri her zaman önceliklidir.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env dosyası bulunamadı, mevcut ortam değişkenleri kullanılacak.")
	}
}

// GetEnv bir ortam değişkenini okur, yoksa fallback döner.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// MustGetEnv zorunlu bir ortam değişkenini okur; yoksa uygulama başlatılmaz.
func MustGetEnv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		configslog.Log.Fatal("Zorunlu ortam değişkeni eksik: " + key)
	}
	return value
}

// GetDSN Postgres bağlantı cümlesini döndürür. DATABASE_URL öncelikli,
// yoksa tekil DB_* değişkenlerinden kurulur.
func GetDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_NAME", "wavetags"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_SSLMODE", "disable"),
	)
}

// GetJWTSecret access/refresh token imzalama anahtarını döndürür. Zorunludur.
func GetJWTSecret() []byte {
	return []byte(MustGetEnv("JWT_SECRET_KEY"))
}
