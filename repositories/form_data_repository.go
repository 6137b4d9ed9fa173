package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"wavetags.link/configs/configsdatabase"
	"wavetags.link/configs/configslog"
	"wavetags.link/models"
)

// IFormDataRepository gönderim kayıtları için arayüz.
// Gönderimler immutable'dır: update metodu bilinçli olarak yoktur.
type IFormDataRepository interface {
	Create(ctx context.Context, formData *models.FormData) error
	FindByID(ctx context.Context, id uint) (*models.FormData, error)
	FindAllByLeadFormID(ctx context.Context, leadFormID uint) ([]models.FormData, error)
	CountByLeadFormID(ctx context.Context, leadFormID uint) (int64, error)
}

// FormDataRepository IFormDataRepository arayüzünü uygular.
type FormDataRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.FormData]
}

// NewFormDataRepository yeni bir FormDataRepository örneği oluşturur.
func NewFormDataRepository() IFormDataRepository {
	return NewFormDataRepositoryTx(configsdatabase.GetDB())
}

// NewFormDataRepositoryTx verilen bağlantı/transaction üzerinde çalışan repo oluşturur.
func NewFormDataRepositoryTx(db *gorm.DB) IFormDataRepository {
	return &FormDataRepository{db: db, base: NewBaseRepository[models.FormData](db)}
}

func (r *FormDataRepository) Create(ctx context.Context, formData *models.FormData) error {
	if formData == nil || formData.LeadFormID == 0 {
		return errors.New("geçersiz veya formsuz gönderim oluşturulamaz")
	}
	return r.base.Create(ctx, formData)
}

func (r *FormDataRepository) FindByID(ctx context.Context, id uint) (*models.FormData, error) {
	if id == 0 {
		return nil, errors.New("geçersiz FormData ID")
	}
	return r.base.FindByID(ctx, id)
}

func (r *FormDataRepository) FindAllByLeadFormID(ctx context.Context, leadFormID uint) ([]models.FormData, error) {
	if leadFormID == 0 {
		return nil, errors.New("geçersiz LeadForm ID")
	}
	var records []models.FormData
	err := r.db.WithContext(ctx).
		Where("lead_form_id = ?", leadFormID).
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		configslog.Log.Error("FormDataRepository.FindAllByLeadFormID: DB error", zap.Uint("lead_form_id", leadFormID), zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (r *FormDataRepository) CountByLeadFormID(ctx context.Context, leadFormID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.FormData{}).Where("lead_form_id = ?", leadFormID).Count(&count).Error
	return count, err
}

var _ IFormDataRepository = (*FormDataRepository)(nil)
