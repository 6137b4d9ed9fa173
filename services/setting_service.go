package services

import (
	"context"
	"errors"

	"wavetags.link/models"
	"wavetags.link/repositories"
)

// SettingServiceError özel servis hataları
type SettingServiceError string

func (e SettingServiceError) Error() string { return string(e) }

const (
	ErrSettingUserNotFound SettingServiceError = "User not found"
)

// ISettingService özellik talepleri ve destek mesajları için arayüz.
type ISettingService interface {
	CreateFeatureRequest(ctx context.Context, userID uint, message string) (*models.FeatureRequest, error)
	GetFeatureRequests(ctx context.Context) ([]models.FeatureRequest, error)
	CreateSupportMessage(ctx context.Context, userID uint, subject, message string) (*models.SupportMessage, error)
	GetSupportMessages(ctx context.Context) ([]models.SupportMessage, error)
}

// SettingService ISettingService arayüzünü uygular.
type SettingService struct {
	repo     repositories.ISettingRepository
	userRepo repositories.IUserRepository
}

// NewSettingService yeni bir SettingService örneği oluşturur.
func NewSettingService() ISettingService {
	return &SettingService{
		repo:     repositories.NewSettingRepository(),
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *SettingService) verifyUser(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSettingUserNotFound
		}
		return err
	}
	return nil
}

func (s *SettingService) CreateFeatureRequest(ctx context.Context, userID uint, message string) (*models.FeatureRequest, error) {
	if err := s.verifyUser(ctx, userID); err != nil {
		return nil, err
	}
	request := models.FeatureRequest{UserID: userID, Message: message}
	if err := s.repo.CreateFeatureRequest(ctx, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *SettingService) GetFeatureRequests(ctx context.Context) ([]models.FeatureRequest, error) {
	return s.repo.FindAllFeatureRequests(ctx)
}

func (s *SettingService) CreateSupportMessage(ctx context.Context, userID uint, subject, message string) (*models.SupportMessage, error) {
	if err := s.verifyUser(ctx, userID); err != nil {
		return nil, err
	}
	msg := models.SupportMessage{UserID: userID, Subject: subject, Message: message}
	if err := s.repo.CreateSupportMessage(ctx, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *SettingService) GetSupportMessages(ctx context.Context) ([]models.SupportMessage, error) {
	return s.repo.FindAllSupportMessages(ctx)
}

var _ ISettingService = (*SettingService)(nil)
