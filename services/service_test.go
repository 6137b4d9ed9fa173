package services

import (
	"fmt"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wavetags.link/configs/configsdatabase"
	"wavetags.link/configs/configslog"
	"wavetags.link/models"
	"wavetags.link/pkg/notifier"
)

var initLoggerOnce sync.Once

// setupTestDB her test için izole bir in-memory sqlite veritabanı kurar
// ve paket genelindeki bağlantıyı ona yönlendirir.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	initLoggerOnce.Do(configslog.InitLogger)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test veritabanı havuzuna erişilemedi: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.LeadForm{},
		&models.FormData{},
		&models.Card{},
		&models.Insight{},
		&models.Link{},
		&models.UserLink{},
		&models.Blog{},
		&models.Subscription{},
		&models.UserSubscription{},
		&models.FeatureRequest{},
		&models.SupportMessage{},
	)
	if err != nil {
		t.Fatalf("test tabloları oluşturulamadı: %v", err)
	}

	configsdatabase.SetDB(db)
	t.Cleanup(func() {
		configsdatabase.SetDB(nil)
		_ = sqlDB.Close()
	})
	return db
}

// stubNotifier yayınlanan bildirimleri test için biriktirir.
type stubNotifier struct {
	mu        sync.Mutex
	published []notifier.Notification
}

func (s *stubNotifier) Publish(n notifier.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, n)
}

func (s *stubNotifier) all() []notifier.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notifier.Notification, len(s.published))
	copy(out, s.published)
	return out
}

var _ notifier.INotifier = (*stubNotifier)(nil)
