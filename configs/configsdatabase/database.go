package configsdatabase

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wavetags.link/configs"
	"wavetags.link/configs/configslog"
)

var db *gorm.DB

// InitDB veritabanı bağlantısını kurar. Bağlantı kurulamazsa uygulama başlatılmaz.
func InitDB() {
	dsn := configs.GetDSN()

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	conn, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı havuzuna erişilemedi", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		configslog.Log.Fatal("Veritabanına ulaşılamadı", zap.Error(err))
	}

	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı başarıyla kuruldu.")
}

// GetDB aktif gorm bağlantısını döndürür.
func GetDB() *gorm.DB {
	return db
}

// SetDB test ortamında bağlantıyı değiştirmek için kullanılır (sqlite in-memory).
func SetDB(conn *gorm.DB) {
	db = conn
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı kapatılırken hata", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}
