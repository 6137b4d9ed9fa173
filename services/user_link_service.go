package services

import (
	"context"
	"errors"

	"wavetags.link/models"
	"wavetags.link/repositories"
)

// UserLinkServiceError özel servis hataları
type UserLinkServiceError string

func (e UserLinkServiceError) Error() string { return string(e) }

const (
	ErrUserLinksNotFound   UserLinkServiceError = "No links found for provided user"
	ErrUserLinkUserMissing UserLinkServiceError = "User not found"
)

// IUserLinkService kullanıcının seçtiği sosyal linkler için arayüz.
type IUserLinkService interface {
	// SetUserLinks kullanıcının link listesini bütün olarak değiştirir;
	// kayıt yoksa oluşturur (upsert).
	SetUserLinks(ctx context.Context, userID uint, links models.UserLinkEntryList) (*models.UserLink, error)
	GetUserLinks(ctx context.Context, userID uint) (*models.UserLink, error)
}

// UserLinkService IUserLinkService arayüzünü uygular.
type UserLinkService struct {
	repo     repositories.IUserLinkRepository
	userRepo repositories.IUserRepository
}

// NewUserLinkService yeni bir UserLinkService örneği oluşturur.
func NewUserLinkService() IUserLinkService {
	return &UserLinkService{
		repo:     repositories.NewUserLinkRepository(),
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *UserLinkService) SetUserLinks(ctx context.Context, userID uint, links models.UserLinkEntryList) (*models.UserLink, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserLinkUserMissing
		}
		return nil, err
	}

	existing, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		userLink := models.UserLink{UserID: userID, Links: links}
		if err := s.repo.Create(ctx, &userLink); err != nil {
			return nil, err
		}
		return &userLink, nil
	}

	existing.Links = links
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *UserLinkService) GetUserLinks(ctx context.Context, userID uint) (*models.UserLink, error) {
	userLink, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserLinksNotFound
		}
		return nil, err
	}
	return userLink, nil
}

var _ IUserLinkService = (*UserLinkService)(nil)
