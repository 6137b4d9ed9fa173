package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wavetags.link/configs/configsdatabase"
	"wavetags.link/configs/configslog"
	"wavetags.link/models"
	"wavetags.link/repositories"
)

// LeadFormServiceError özel servis hataları
type LeadFormServiceError string

func (e LeadFormServiceError) Error() string { return string(e) }

const (
	ErrLeadFormNotFound     LeadFormServiceError = "Lead form not found"
	ErrLeadFormCardNotFound LeadFormServiceError = "Card not found"
	ErrTextFieldHasOptions  LeadFormServiceError = "Text field should not have options"
)

// LeadFormUpdates form şeması güncellemesi; nil pointer'lar dokunulmaz.
// IsLeadEnabled forma değil, formun bağlı olduğu karta yazılır.
type LeadFormUpdates struct {
	Header        *string
	Fields        *models.LeadFieldList
	IsLeadEnabled *bool
}

// ILeadFormService lead formu işlemleri için arayüz.
type ILeadFormService interface {
	GetLeadFormByID(ctx context.Context, id uint) (*models.LeadForm, error)
	// UpdateLeadForm şemayı günceller; IsLeadEnabled verilmişse kartın
	// toplama anahtarını da aynı transaction'da çevirir.
	UpdateLeadForm(ctx context.Context, id uint, cardID uint, updates LeadFormUpdates) (*models.LeadForm, error)
}

// LeadFormService ILeadFormService arayüzünü uygular.
type LeadFormService struct {
	db           *gorm.DB
	leadFormRepo repositories.ILeadFormRepository
	cardRepo     repositories.ICardRepository
}

// NewLeadFormService yeni bir LeadFormService örneği oluşturur.
func NewLeadFormService() ILeadFormService {
	db := configsdatabase.GetDB()
	return &LeadFormService{
		db:           db,
		leadFormRepo: repositories.NewLeadFormRepositoryTx(db),
		cardRepo:     repositories.NewCardRepositoryTx(db),
	}
}

func (s *LeadFormService) GetLeadFormByID(ctx context.Context, id uint) (*models.LeadForm, error) {
	form, err := s.leadFormRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLeadFormNotFound
		}
		return nil, err
	}
	return form, nil
}

// normalizeFields şemayı doğrular ve ID'si olmayan alanlara yeni ID atar.
func normalizeFields(fields models.LeadFieldList) (models.LeadFieldList, error) {
	for i := range fields {
		switch fields[i].FieldType {
		case models.FieldTypeText, models.FieldTypeTextarea:
			// Serbest metin alanları seçenek taşıyamaz.
			if len(fields[i].Options) > 0 {
				return nil, ErrTextFieldHasOptions
			}
		}
		if fields[i].FieldID == "" {
			fields[i].FieldID = uuid.NewString()
		}
	}
	return fields, nil
}

func (s *LeadFormService) UpdateLeadForm(ctx context.Context, id uint, cardID uint, updates LeadFormUpdates) (*models.LeadForm, error) {
	form, err := s.leadFormRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLeadFormNotFound
		}
		return nil, err
	}

	if updates.Header != nil {
		form.Header = *updates.Header
	}
	if updates.Fields != nil {
		fields, err := normalizeFields(*updates.Fields)
		if err != nil {
			return nil, err
		}
		form.Fields = fields
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewLeadFormRepositoryTx(tx).Update(ctx, form); err != nil {
			return err
		}

		if updates.IsLeadEnabled != nil {
			cardRepo := repositories.NewCardRepositoryTx(tx)
			card, err := cardRepo.FindByID(ctx, cardID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return ErrLeadFormCardNotFound
				}
				return err
			}
			card.IsLeadEnabled = *updates.IsLeadEnabled
			return cardRepo.Update(ctx, card)
		}
		return nil
	})
	if txErr != nil {
		var svcErr LeadFormServiceError
		if !errors.As(txErr, &svcErr) {
			configslog.Log.Error("Lead formu güncellenemedi", zap.Uint("lead_form_id", id), zap.Error(txErr))
		}
		return nil, txErr
	}

	return form, nil
}

var _ ILeadFormService = (*LeadFormService)(nil)
