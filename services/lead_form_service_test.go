package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavetags.link/models"
)

func TestUpdateLeadFormAssignsFieldIDs(t *testing.T) {
	db := setupTestDB(t)
	user, card, form := seedLeadCapture(t, db)
	_ = user

	svc := NewLeadFormService()
	fields := models.LeadFieldList{
		{FieldType: models.FieldTypeText, Label: "Phone", IsEnabled: true},
		{FieldID: "keep-me", FieldType: models.FieldTypeChoice, Label: "Topic", Options: []models.FieldOption{{Label: "Sales", Value: "sales"}}},
	}
	header := "Contact"
	updated, err := svc.UpdateLeadForm(context.Background(), form.ID, card.ID, LeadFormUpdates{
		Header: &header,
		Fields: &fields,
	})
	require.NoError(t, err)
	assert.Equal(t, "Contact", updated.Header)
	require.Len(t, updated.Fields, 2)
	assert.NotEmpty(t, updated.Fields[0].FieldID)
	assert.Equal(t, "keep-me", updated.Fields[1].FieldID)
}

func TestUpdateLeadFormRejectsOptionsOnTextFields(t *testing.T) {
	db := setupTestDB(t)
	_, card, form := seedLeadCapture(t, db)

	svc := NewLeadFormService()
	fields := models.LeadFieldList{
		{FieldType: models.FieldTypeTextarea, Label: "Note", Options: []models.FieldOption{{Label: "A", Value: "a"}}},
	}
	_, err := svc.UpdateLeadForm(context.Background(), form.ID, card.ID, LeadFormUpdates{Fields: &fields})
	require.ErrorIs(t, err, ErrTextFieldHasOptions)
}

func TestUpdateLeadFormTogglesCardLeadCapture(t *testing.T) {
	db := setupTestDB(t)
	_, card, form := seedLeadCapture(t, db)

	svc := NewLeadFormService()
	disabled := false
	_, err := svc.UpdateLeadForm(context.Background(), form.ID, card.ID, LeadFormUpdates{IsLeadEnabled: &disabled})
	require.NoError(t, err)

	var refreshed models.Card
	require.NoError(t, db.First(&refreshed, card.ID).Error)
	assert.False(t, refreshed.IsLeadEnabled)

	enabled := true
	_, err = svc.UpdateLeadForm(context.Background(), form.ID, card.ID, LeadFormUpdates{IsLeadEnabled: &enabled})
	require.NoError(t, err)
	require.NoError(t, db.First(&refreshed, card.ID).Error)
	assert.True(t, refreshed.IsLeadEnabled)
}

func TestUpdateLeadFormMissingTargets(t *testing.T) {
	db := setupTestDB(t)
	_, card, form := seedLeadCapture(t, db)
	_ = card

	svc := NewLeadFormService()
	_, err := svc.UpdateLeadForm(context.Background(), form.ID+99, card.ID, LeadFormUpdates{})
	require.ErrorIs(t, err, ErrLeadFormNotFound)

	enabled := true
	_, err = svc.UpdateLeadForm(context.Background(), form.ID, card.ID+99, LeadFormUpdates{IsLeadEnabled: &enabled})
	require.ErrorIs(t, err, ErrLeadFormCardNotFound)
	_ = db
}
