package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wavetags.link/models"
)

func seedLeadCapture(t *testing.T, db *gorm.DB) (*models.User, *models.Card, *models.LeadForm) {
	t.Helper()

	user := models.User{Username: "jane-doe", Email: "jane@example.com", FullName: "Jane Doe", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	form := models.LeadForm{
		Header: "Get in touch",
		Fields: models.LeadFieldList{
			{FieldID: "f-name", FieldType: models.FieldTypeText, Label: "Name", IsEnabled: true, IsRequired: true},
			{FieldID: "f-note", FieldType: models.FieldTypeTextarea, Label: "Note", IsEnabled: true, IsRequired: false},
		},
	}
	require.NoError(t, db.Create(&form).Error)

	card := models.Card{UserID: user.ID, CardTitle: "Work", Hash: "abc123", IsLeadEnabled: true, LeadFormID: &form.ID}
	require.NoError(t, db.Create(&card).Error)

	return &user, &card, &form
}

func TestSubmitFormDataSuccess(t *testing.T) {
	db := setupTestDB(t)
	user, card, form := seedLeadCapture(t, db)

	sink := &stubNotifier{}
	svc := NewFormDataService(sink)

	values := models.FieldValueList{
		{FieldID: "f-name", Value: "Ali"},
		{FieldID: "f-note", Value: "Merhaba"},
	}
	saved, err := svc.SubmitFormData(context.Background(), form.ID, card.ID, user.ID, values)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, form.ID, saved.LeadFormID)
	assert.NotZero(t, saved.ID)

	// İlk gönderim aggregate'i oluşturur ve lead sayacı 1 olur.
	var insight models.Insight
	require.NoError(t, db.Where("card_id = ?", card.ID).First(&insight).Error)
	assert.Equal(t, int64(1), insight.NumberOfLeadGenerated)
	require.Len(t, insight.Leads, 1)
	assert.Equal(t, saved.ID, insight.Leads[0].FormDataID)

	published := sink.all()
	require.Len(t, published, 1)
	assert.Equal(t, "You have a new Lead", published[0].Title)
	assert.Equal(t, "LeadForm", published[0].Type)
	assert.Equal(t, user.ID, published[0].To)
}

func TestSubmitFormDataSecondSubmissionIncrementsCounter(t *testing.T) {
	db := setupTestDB(t)
	user, card, form := seedLeadCapture(t, db)

	svc := NewFormDataService(&stubNotifier{})
	values := models.FieldValueList{
		{FieldID: "f-name", Value: "Ali"},
		{FieldID: "f-note", Value: ""},
	}

	_, err := svc.SubmitFormData(context.Background(), form.ID, card.ID, user.ID, values)
	require.NoError(t, err)
	_, err = svc.SubmitFormData(context.Background(), form.ID, card.ID, user.ID, values)
	require.NoError(t, err)

	var insight models.Insight
	require.NoError(t, db.Where("card_id = ?", card.ID).First(&insight).Error)
	assert.Equal(t, int64(2), insight.NumberOfLeadGenerated)
	assert.Len(t, insight.Leads, 2)
}

func TestSubmitFormDataWhitespaceRequiredField(t *testing.T) {
	db := setupTestDB(t)
	user, card, form := seedLeadCapture(t, db)

	svc := NewFormDataService(&stubNotifier{})
	values := models.FieldValueList{
		{FieldID: "f-name", Value: "   "},
		{FieldID: "f-note", Value: "x"},
	}

	_, err := svc.SubmitFormData(context.Background(), form.ID, card.ID, user.ID, values)
	var missing ErrRequiredFieldMissing
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Name", missing.Label)
	assert.Equal(t, "Required fields are missing or not filled: Name", err.Error())

	// Reddedilen gönderim iz bırakmaz.
	var count int64
	require.NoError(t, db.Model(&models.FormData{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitFormDataUnknownFieldRejected(t *testing.T) {
	db := setupTestDB(t)
	user, card, form := seedLeadCapture(t, db)

	svc := NewFormDataService(&stubNotifier{})
	// Şemadaki f-note alanının karşılığı yok.
	values := models.FieldValueList{
		{FieldID: "f-name", Value: "Ali"},
	}

	_, err := svc.SubmitFormData(context.Background(), form.ID, card.ID, user.ID, values)
	require.ErrorIs(t, err, ErrUnknownFieldID)
	_ = db
}

func TestSubmitFormDataMissingFormOrCard(t *testing.T) {
	db := setupTestDB(t)
	user, card, form := seedLeadCapture(t, db)

	svc := NewFormDataService(&stubNotifier{})
	values := models.FieldValueList{
		{FieldID: "f-name", Value: "Ali"},
		{FieldID: "f-note", Value: ""},
	}

	_, err := svc.SubmitFormData(context.Background(), form.ID+99, card.ID, user.ID, values)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSubmissionFormNotFound))

	_, err = svc.SubmitFormData(context.Background(), form.ID, card.ID+99, user.ID, values)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSubmissionCardNotFound))
	_ = db
}

func TestGetFormDataByLeadFormIDOrdersAndFilters(t *testing.T) {
	db := setupTestDB(t)
	user, card, form := seedLeadCapture(t, db)

	svc := NewFormDataService(&stubNotifier{})
	for _, name := range []string{"Birinci", "İkinci"} {
		_, err := svc.SubmitFormData(context.Background(), form.ID, card.ID, user.ID, models.FieldValueList{
			{FieldID: "f-name", Value: name},
			{FieldID: "f-note", Value: ""},
		})
		require.NoError(t, err)
	}

	records, err := svc.GetFormDataByLeadFormID(context.Background(), form.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Birinci", records[0].Data[0].Value)
	assert.Equal(t, "İkinci", records[1].Data[0].Value)

	// Başka forma ait kayıt dönmez.
	records, err = svc.GetFormDataByLeadFormID(context.Background(), form.ID+1)
	require.NoError(t, err)
	assert.Empty(t, records)
}
