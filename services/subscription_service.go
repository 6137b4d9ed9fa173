package services

import (
	"context"
	"errors"

	"wavetags.link/models"
	"wavetags.link/repositories"
)

// SubscriptionServiceError özel servis hataları
type SubscriptionServiceError string

func (e SubscriptionServiceError) Error() string { return string(e) }

const (
	ErrSubscriptionNotExist SubscriptionServiceError = "Subscription not exist"
	ErrSubUserNotFound      SubscriptionServiceError = "User not found"
)

// ISubscriptionService abonelik planları ve kullanıcı abonelikleri için arayüz.
type ISubscriptionService interface {
	CreatePlan(ctx context.Context, plan, planType string, price float64, features models.FeatureList) (*models.Subscription, error)
	GetPlans(ctx context.Context) ([]models.Subscription, error)
	// Subscribe kullanıcıyı verilen plana bağlar; ikisi de var olmalıdır.
	Subscribe(ctx context.Context, userID, subscriptionID uint) (*models.UserSubscription, error)
	GetUserSubscription(ctx context.Context, userID uint) (*models.UserSubscription, error)
}

// SubscriptionService ISubscriptionService arayüzünü uygular.
type SubscriptionService struct {
	repo     repositories.ISubscriptionRepository
	userRepo repositories.IUserRepository
}

// NewSubscriptionService yeni bir SubscriptionService örneği oluşturur.
func NewSubscriptionService() ISubscriptionService {
	return &SubscriptionService{
		repo:     repositories.NewSubscriptionRepository(),
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *SubscriptionService) CreatePlan(ctx context.Context, plan, planType string, price float64, features models.FeatureList) (*models.Subscription, error) {
	subscription := models.Subscription{
		Plan:     plan,
		PlanType: planType,
		Price:    price,
		Features: features,
	}
	if err := s.repo.CreatePlan(ctx, &subscription); err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (s *SubscriptionService) GetPlans(ctx context.Context) ([]models.Subscription, error) {
	return s.repo.FindAllPlans(ctx)
}

func (s *SubscriptionService) Subscribe(ctx context.Context, userID, subscriptionID uint) (*models.UserSubscription, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSubUserNotFound
		}
		return nil, err
	}
	if _, err := s.repo.FindPlanByID(ctx, subscriptionID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSubscriptionNotExist
		}
		return nil, err
	}

	sub := models.UserSubscription{UserID: userID, SubscriptionID: subscriptionID}
	if err := s.repo.CreateUserSubscription(ctx, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionService) GetUserSubscription(ctx context.Context, userID uint) (*models.UserSubscription, error) {
	sub, err := s.repo.FindUserSubscription(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Aboneliği olmayan kullanıcı için boş sonuç hatadır sayılmaz.
			return nil, nil
		}
		return nil, err
	}
	return sub, nil
}

var _ ISubscriptionService = (*SubscriptionService)(nil)
