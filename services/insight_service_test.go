package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wavetags.link/models"
)

func TestRecordEventWithoutAggregateIsSilent(t *testing.T) {
	db := setupTestDB(t)

	sink := &stubNotifier{}
	svc := NewInsightService(sink)

	// Henüz hiç lead gelmemiş kart: olay düşer, hata dönmez.
	err := svc.RecordEvent(context.Background(), 42, models.InsightEventCardView, 7)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Insight{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, sink.all())
}

func TestRecordEventIncrementsCounterAndNotifies(t *testing.T) {
	db := setupTestDB(t)

	insight := models.Insight{CardID: 5, NumberOfLeadGenerated: 1, Leads: models.LeadEntryList{}}
	require.NoError(t, db.Create(&insight).Error)

	sink := &stubNotifier{}
	svc := NewInsightService(sink)

	require.NoError(t, svc.RecordEvent(context.Background(), 5, models.InsightEventLinkTap, 7))
	require.NoError(t, svc.RecordEvent(context.Background(), 5, models.InsightEventLinkTap, 7))
	require.NoError(t, svc.RecordEvent(context.Background(), 5, models.InsightEventDownload, 7))
	require.NoError(t, svc.RecordEvent(context.Background(), 5, models.InsightEventCardView, 7))

	var updated models.Insight
	require.NoError(t, db.Where("card_id = ?", uint(5)).First(&updated).Error)
	assert.Equal(t, int64(2), updated.NumberOfLinkTaps)
	assert.Equal(t, int64(1), updated.NumberOfContactsDownload)
	assert.Equal(t, int64(1), updated.NumberOfCardViews)
	// Lead sayacı olay güncellemesinden etkilenmez.
	assert.Equal(t, int64(1), updated.NumberOfLeadGenerated)

	published := sink.all()
	require.Len(t, published, 4)
	assert.Equal(t, "One more Link Tap", published[0].Title)
	assert.Equal(t, "LinkTap", published[0].Type)
	assert.Equal(t, "Download", published[2].Type)
	assert.Equal(t, "CardView", published[3].Type)
	for _, n := range published {
		assert.Equal(t, uint(7), n.To)
	}
}

func TestRecordEventUnknownTypeRejected(t *testing.T) {
	setupTestDB(t)

	svc := NewInsightService(&stubNotifier{})
	err := svc.RecordEvent(context.Background(), 5, "pageScroll", 7)
	require.ErrorIs(t, err, ErrInvalidInsightEvent)
}

func TestGetInsightsEmptyIsNotFound(t *testing.T) {
	db := setupTestDB(t)

	svc := NewInsightService(&stubNotifier{})
	_, err := svc.GetInsights(context.Background())
	require.ErrorIs(t, err, ErrInsightDataNotFound)

	require.NoError(t, db.Create(&models.Insight{CardID: 9}).Error)
	insights, err := svc.GetInsights(context.Background())
	require.NoError(t, err)
	assert.Len(t, insights, 1)
}

func TestGetInsightByCardID(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Insight{CardID: 3, NumberOfCardViews: 12}).Error)

	svc := NewInsightService(&stubNotifier{})
	insight, err := svc.GetInsightByCardID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(12), insight.NumberOfCardViews)

	_, err = svc.GetInsightByCardID(context.Background(), 4)
	require.ErrorIs(t, err, ErrInsightDataNotFound)
}
