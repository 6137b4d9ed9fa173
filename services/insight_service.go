package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"wavetags.link/configs/configslog"
	"wavetags.link/models"
	"wavetags.link/pkg/notifier"
	"wavetags.link/repositories"
)

// InsightServiceError özel servis hataları
type InsightServiceError string

func (e InsightServiceError) Error() string { return string(e) }

const (
	ErrInsightDataNotFound InsightServiceError = "Insight Data not Found"
	ErrInvalidInsightEvent InsightServiceError = "Invalid insight type"
)

// Olay tipi başına bildirim içeriği.
var insightNotifications = map[string]struct {
	title string
	body  string
	typ   string
}{
	models.InsightEventLinkTap:  {"One more Link Tap", "One more Link Tap from the user", "LinkTap"},
	models.InsightEventDownload: {"One more Download", "Someone downloaded your contact details", "Download"},
	models.InsightEventCardView: {"Card View", "Someone view your card.", "CardView"},
}

// IInsightService etkileşim sayaçları için arayüz.
type IInsightService interface {
	GetInsights(ctx context.Context) ([]models.Insight, error)
	GetInsightByCardID(ctx context.Context, cardID uint) (*models.Insight, error)
	// RecordEvent olay sayacını artırır ve kart sahibine bildirim yayınlar.
	// Karta ait aggregate henüz yoksa sessizce hiçbir şey yapmaz.
	RecordEvent(ctx context.Context, cardID uint, eventType string, userID uint) error
}

// InsightService IInsightService arayüzünü uygular.
type InsightService struct {
	repo     repositories.IInsightRepository
	notifier notifier.INotifier
}

// NewInsightService yeni bir InsightService örneği oluşturur.
func NewInsightService(n notifier.INotifier) IInsightService {
	return &InsightService{
		repo:     repositories.NewInsightRepository(),
		notifier: n,
	}
}

func (s *InsightService) GetInsights(ctx context.Context) ([]models.Insight, error) {
	insights, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(insights) == 0 {
		return nil, ErrInsightDataNotFound
	}
	return insights, nil
}

func (s *InsightService) GetInsightByCardID(ctx context.Context, cardID uint) (*models.Insight, error) {
	insight, err := s.repo.FindByCardID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInsightDataNotFound
		}
		return nil, err
	}
	return insight, nil
}

func (s *InsightService) RecordEvent(ctx context.Context, cardID uint, eventType string, userID uint) error {
	content, ok := insightNotifications[eventType]
	if !ok {
		return ErrInvalidInsightEvent
	}

	updated, err := s.repo.IncrementEventCounter(ctx, cardID, eventType)
	if err != nil {
		if errors.Is(err, repositories.ErrUnknownInsightEvent) {
			return ErrInvalidInsightEvent
		}
		return err
	}
	// Aggregate henüz oluşmamışsa olay düşer; ilk lead geldiğinde oluşur.
	if !updated {
		configslog.Log.Debug("Insight kaydı yok, olay atlandı",
			zap.Uint("card_id", cardID), zap.String("event", eventType))
		return nil
	}

	s.notifier.Publish(notifier.Notification{
		Title: content.title,
		Body:  content.body,
		Time:  time.Now().UTC(),
		To:    userID,
		Type:  content.typ,
	})
	return nil
}

var _ IInsightService = (*InsightService)(nil)
