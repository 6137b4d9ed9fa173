package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"wavetags.link/configs/configslog"
	"wavetags.link/models"
	"wavetags.link/pkg/notifier"
	"wavetags.link/repositories"
)

// FormDataServiceError özel servis hataları
type FormDataServiceError string

func (e FormDataServiceError) Error() string { return string(e) }

const (
	ErrSubmissionFormNotFound FormDataServiceError = "Lead Form not found"
	ErrSubmissionCardNotFound FormDataServiceError = "Card not found"
	ErrUnknownFieldID         FormDataServiceError = "Id is not Valid or All Fields are Required"
)

// ErrRequiredFieldMissing eksik ya da boş bırakılmış zorunlu alanı etiketiyle raporlar.
type ErrRequiredFieldMissing struct {
	Label string
}

func (e ErrRequiredFieldMissing) Error() string {
	return "Required fields are missing or not filled: " + e.Label
}

// IFormDataService ziyaretçi form gönderimleri için arayüz.
type IFormDataService interface {
	// SubmitFormData gönderimi şemaya karşı doğrular, kaydeder, lead sayacını
	// günceller ve kart sahibine bildirim yayınlar. Insight ve bildirim
	// adımlarındaki hatalar gönderimi geçersiz kılmaz.
	SubmitFormData(ctx context.Context, leadFormID, cardID, userID uint, values models.FieldValueList) (*models.FormData, error)
	GetFormDataByLeadFormID(ctx context.Context, leadFormID uint) ([]models.FormData, error)
}

// FormDataService IFormDataService arayüzünü uygular.
type FormDataService struct {
	formDataRepo repositories.IFormDataRepository
	leadFormRepo repositories.ILeadFormRepository
	cardRepo     repositories.ICardRepository
	insightRepo  repositories.IInsightRepository
	notifier     notifier.INotifier
}

// NewFormDataService yeni bir FormDataService örneği oluşturur.
func NewFormDataService(n notifier.INotifier) IFormDataService {
	return &FormDataService{
		formDataRepo: repositories.NewFormDataRepository(),
		leadFormRepo: repositories.NewLeadFormRepository(),
		cardRepo:     repositories.NewCardRepository(),
		insightRepo:  repositories.NewInsightRepository(),
		notifier:     n,
	}
}

// validateSubmission gönderimi iki geçişte doğrular.
// Birinci geçiş: zorunlu ve etkin her alan için boş olmayan değer aranır,
// ilk eksik alan etiketiyle raporlanır. İkinci geçiş: şemadaki her alanın
// gönderimde bir karşılığı olmalıdır.
func validateSubmission(fields models.LeadFieldList, values models.FieldValueList) error {
	filled := make(map[string]bool, len(values))
	present := make(map[string]bool, len(values))
	for _, v := range values {
		present[v.FieldID] = true
		if strings.TrimSpace(v.Value) != "" {
			filled[v.FieldID] = true
		}
	}

	for _, field := range fields {
		if field.IsRequired && !filled[field.FieldID] {
			return ErrRequiredFieldMissing{Label: field.Label}
		}
	}

	for _, field := range fields {
		if !present[field.FieldID] {
			return ErrUnknownFieldID
		}
	}
	return nil
}

func (s *FormDataService) SubmitFormData(ctx context.Context, leadFormID, cardID, userID uint, values models.FieldValueList) (*models.FormData, error) {
	var leadForm *models.LeadForm

	// Form şeması ve kart birbirinden bağımsız; eşzamanlı çekilir.
	// Kart yalnızca varlık kontrolü için okunur.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		form, err := s.leadFormRepo.FindByID(gctx, leadFormID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrSubmissionFormNotFound
			}
			return err
		}
		leadForm = form
		return nil
	})
	g.Go(func() error {
		if _, err := s.cardRepo.FindByID(gctx, cardID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrSubmissionCardNotFound
			}
			return err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := validateSubmission(leadForm.Fields, values); err != nil {
		return nil, err
	}

	formData := models.FormData{
		LeadFormID: leadFormID,
		Data:       values,
	}
	if err := s.formDataRepo.Create(ctx, &formData); err != nil {
		configslog.Log.Error("Form gönderimi kaydedilemedi",
			zap.Uint("lead_form_id", leadFormID), zap.Error(err))
		return nil, err
	}

	// Gönderim kalıcı; sayaç ve bildirim hataları yalnızca loglanır.
	entry := models.LeadEntry{FormDataID: formData.ID, Time: time.Now().UTC()}
	if err := s.insightRepo.RecordLead(ctx, cardID, entry); err != nil {
		configslog.Log.Error("Lead sayacı güncellenemedi",
			zap.Uint("card_id", cardID), zap.Error(err))
	}

	s.notifier.Publish(notifier.Notification{
		Title: "You have a new Lead",
		Body:  "You have a new lead received from the user",
		Time:  time.Now().UTC(),
		To:    userID,
		Type:  "LeadForm",
	})

	return &formData, nil
}

func (s *FormDataService) GetFormDataByLeadFormID(ctx context.Context, leadFormID uint) ([]models.FormData, error) {
	return s.formDataRepo.FindAllByLeadFormID(ctx, leadFormID)
}

var _ IFormDataService = (*FormDataService)(nil)
