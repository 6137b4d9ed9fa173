package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wavetags.link/configs/configsdatabase"
	"wavetags.link/models"
)

// ISettingRepository özellik talepleri ve destek mesajları için arayüz.
type ISettingRepository interface {
	CreateFeatureRequest(ctx context.Context, request *models.FeatureRequest) error
	FindAllFeatureRequests(ctx context.Context) ([]models.FeatureRequest, error)
	CreateSupportMessage(ctx context.Context, message *models.SupportMessage) error
	FindAllSupportMessages(ctx context.Context) ([]models.SupportMessage, error)
}

// SettingRepository ISettingRepository arayüzünü uygular.
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository yeni bir SettingRepository örneği oluşturur.
func NewSettingRepository() ISettingRepository {
	return NewSettingRepositoryTx(configsdatabase.GetDB())
}

// NewSettingRepositoryTx verilen bağlantı/transaction üzerinde çalışan repo oluşturur.
func NewSettingRepositoryTx(db *gorm.DB) ISettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) CreateFeatureRequest(ctx context.Context, request *models.FeatureRequest) error {
	if request == nil || request.UserID == 0 {
		return errors.New("geçersiz özellik talebi")
	}
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *SettingRepository) FindAllFeatureRequests(ctx context.Context) ([]models.FeatureRequest, error) {
	var requests []models.FeatureRequest
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (r *SettingRepository) CreateSupportMessage(ctx context.Context, message *models.SupportMessage) error {
	if message == nil || message.UserID == 0 {
		return errors.New("geçersiz destek mesajı")
	}
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *SettingRepository) FindAllSupportMessages(ctx context.Context) ([]models.SupportMessage, error) {
	var messages []models.SupportMessage
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&messages).Error
	return messages, err
}

var _ ISettingRepository = (*SettingRepository)(nil)
