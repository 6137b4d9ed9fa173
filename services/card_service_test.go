package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wavetags.link/models"
)

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Username: "u-" + email, Email: email, FullName: "Test User", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestCreateCardCreatesLeadFormToo(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "jane@example.com")

	svc := NewCardService()
	card, err := svc.CreateCard(context.Background(), user.ID, "Work")
	require.NoError(t, err)

	assert.Equal(t, user.ID, card.UserID)
	assert.NotEmpty(t, card.Hash)
	assert.False(t, card.IsLeadEnabled)
	require.NotNil(t, card.LeadFormID)

	// Kartla birlikte boş form da yaratılmış olmalı.
	var form models.LeadForm
	require.NoError(t, db.First(&form, *card.LeadFormID).Error)
	assert.Empty(t, form.Fields)
	assert.Empty(t, form.Header)
}

func TestCreateCardUnknownUserRejected(t *testing.T) {
	db := setupTestDB(t)

	svc := NewCardService()
	_, err := svc.CreateCard(context.Background(), 999, "Work")
	require.ErrorIs(t, err, ErrCardOwnerMissing)

	// Başarısız oluşturma form artığı bırakmaz.
	var count int64
	require.NoError(t, db.Model(&models.LeadForm{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCardHashesAreUnique(t *testing.T) {
	db := setupTestDB(t)
	jane := seedUser(t, db, "jane@example.com")
	ali := seedUser(t, db, "ali@example.com")

	svc := NewCardService()
	first, err := svc.CreateCard(context.Background(), jane.ID, "A")
	require.NoError(t, err)
	second, err := svc.CreateCard(context.Background(), ali.ID, "B")
	require.NoError(t, err)

	assert.NotEqual(t, first.Hash, second.Hash)

	found, err := svc.GetCardByHash(context.Background(), second.Hash)
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
}

func TestUpdateCardPartialMerge(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "jane@example.com")

	svc := NewCardService()
	card, err := svc.CreateCard(context.Background(), user.ID, "Work")
	require.NoError(t, err)

	theme := "dark"
	updated, err := svc.UpdateCard(context.Background(), card.ID, CardUpdates{Theme: &theme})
	require.NoError(t, err)
	assert.Equal(t, "dark", updated.Theme)
	// Dokunulmayan alanlar korunur.
	assert.Equal(t, "Work", updated.CardTitle)
	assert.Equal(t, card.Hash, updated.Hash)

	fields := models.CardFields{Name: "Jane", Bio: "Hello"}
	updated, err = svc.UpdateCard(context.Background(), card.ID, CardUpdates{Fields: &fields})
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.Fields.Name)
	assert.Equal(t, "dark", updated.Theme)
}

func TestGetCardByUserID(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "jane@example.com")

	svc := NewCardService()
	_, err := svc.GetCardByUserID(context.Background(), user.ID)
	require.ErrorIs(t, err, ErrCardNotFound)

	card, err := svc.CreateCard(context.Background(), user.ID, "Work")
	require.NoError(t, err)

	found, err := svc.GetCardByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, card.ID, found.ID)
}
