package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wavetags.link/configs/configsdatabase"
	"wavetags.link/configs/configslog"
	"wavetags.link/models"
	"wavetags.link/pkg/notifier"
)

var initLoggerOnce sync.Once

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	initLoggerOnce.Do(configslog.InitLogger)
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("APP_ENV", "production")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
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
	))
	configsdatabase.SetDB(db)
	t.Cleanup(func() {
		configsdatabase.SetDB(nil)
		_ = sqlDB.Close()
	})

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	SetupRoutes(app, notifier.NewHub())
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestWelcomeAndNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Welcome to Wavetags", string(raw))

	resp, body := doJSON(t, app, http.MethodGet, "/api/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not Found - /api/nope", body["message"])
	assert.Equal(t, "error", body["status"])
}

func TestRegisterLoginFlow(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/users", map[string]interface{}{
		"fullName": "Jane Doe",
		"email":    "jane@example.com",
		"password": "sifre12345",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User Created", body["message"])

	// Kısa parola reddedilir.
	resp, body = doJSON(t, app, http.MethodPost, "/api/users", map[string]interface{}{
		"fullName": "Ali Veli",
		"email":    "ali@example.com",
		"password": "kisa",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Password must be at least 8 characters", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "sifre12345",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	// Token korumalı listeye erişim sağlar.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/users", nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Token'sız erişim 401 döner.
	resp, body = doJSON(t, app, http.MethodGet, "/api/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authorized, no token", body["message"])
}

func TestFormDataSubmissionFlow(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{Username: "jane", Email: "jane@example.com", FullName: "Jane", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	form := models.LeadForm{Fields: models.LeadFieldList{
		{FieldID: "f-name", FieldType: models.FieldTypeText, Label: "Name", IsEnabled: true, IsRequired: true},
	}}
	require.NoError(t, db.Create(&form).Error)
	card := models.Card{UserID: user.ID, Hash: "h1", LeadFormID: &form.ID}
	require.NoError(t, db.Create(&card).Error)

	path := fmt.Sprintf("/api/form-data/%d/%d/%d", form.ID, card.ID, user.ID)

	// Boşluktan ibaret zorunlu alan, alan etiketiyle reddedilir.
	resp, body := doJSON(t, app, http.MethodPost, path, map[string]interface{}{
		"formData": []map[string]string{{"_id": "f-name", "value": "   "}},
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Required fields are missing or not filled: Name", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, path, map[string]interface{}{
		"formData": []map[string]string{{"_id": "f-name", "value": "Ali"}},
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Form data saved successfully", body["message"])

	var insight models.Insight
	require.NoError(t, db.Where("card_id = ?", card.ID).First(&insight).Error)
	assert.Equal(t, int64(1), insight.NumberOfLeadGenerated)
}

func TestInsightEventBeforeAggregateIsSilent(t *testing.T) {
	app, db := setupTestApp(t)

	user := models.User{Username: "jane", Email: "jane@example.com", FullName: "Jane", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	token := loginAs(t, app, db, &user)

	// Aggregate yokken olay 200 döner ama kayıt oluşmaz.
	path := fmt.Sprintf("/api/insight/%d/cardView/%d", 42, user.ID)
	resp, body := doJSON(t, app, http.MethodPatch, path, nil, token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "updated successfully", body["message"])

	var count int64
	require.NoError(t, db.Model(&models.Insight{}).Count(&count).Error)
	assert.Zero(t, count)

	// Bilinmeyen olay tipi reddedilir.
	path = fmt.Sprintf("/api/insight/%d/pageScroll/%d", 42, user.ID)
	resp, _ = doJSON(t, app, http.MethodPatch, path, nil, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestErrorHandlerStackShowsChain(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	initLoggerOnce.Do(configslog.InitLogger)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/patla", func(c *fiber.Ctx) error {
		return fmt.Errorf("kayıt okunamadı: %w", fiber.NewError(fiber.StatusBadRequest, "Card not found"))
	})

	resp, body := doJSON(t, app, http.MethodGet, "/patla", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "kayıt okunamadı: Card not found", body["message"])

	// stack zinciri dıştan içe, mesajın ötesinde iç hatayı da gösterir.
	stack, _ := body["stack"].(string)
	assert.Equal(t, "kayıt okunamadı: Card not found\nCard not found", stack)
}

func TestErrorHandlerHidesStackInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	initLoggerOnce.Do(configslog.InitLogger)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/patla", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "Card not found")
	})

	resp, body := doJSON(t, app, http.MethodGet, "/patla", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_, hasStack := body["stack"]
	assert.False(t, hasStack)
}

func loginAs(t *testing.T, app *fiber.App, db *gorm.DB, user *models.User) string {
	t.Helper()

	// Parola hash'i login için bcrypt olmalı; test kullanıcısını güncelle.
	resp, body := doJSON(t, app, http.MethodPost, "/api/users", map[string]interface{}{
		"fullName": "Login Helper",
		"email":    "login-" + user.Email,
		"password": "sifre12345",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = body

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "login-" + user.Email,
		"password": "sifre12345",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
