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

// ISubscriptionRepository abonelik planları ve kullanıcı abonelikleri için arayüz.
type ISubscriptionRepository interface {
	CreatePlan(ctx context.Context, plan *models.Subscription) error
	FindPlanByID(ctx context.Context, id uint) (*models.Subscription, error)
	FindAllPlans(ctx context.Context) ([]models.Subscription, error)
	CreateUserSubscription(ctx context.Context, sub *models.UserSubscription) error
	FindUserSubscription(ctx context.Context, userID uint) (*models.UserSubscription, error)
}

// SubscriptionRepository ISubscriptionRepository arayüzünü uygular.
type SubscriptionRepository struct {
	db       *gorm.DB
	planBase IBaseRepository[models.Subscription]
}

// NewSubscriptionRepository yeni bir SubscriptionRepository örneği oluşturur.
func NewSubscriptionRepository() ISubscriptionRepository {
	return NewSubscriptionRepositoryTx(configsdatabase.GetDB())
}

// NewSubscriptionRepositoryTx verilen bağlantı/transaction üzerinde çalışan repo oluşturur.
func NewSubscriptionRepositoryTx(db *gorm.DB) ISubscriptionRepository {
	return &SubscriptionRepository{db: db, planBase: NewBaseRepository[models.Subscription](db)}
}

func (r *SubscriptionRepository) CreatePlan(ctx context.Context, plan *models.Subscription) error {
	return r.planBase.Create(ctx, plan)
}

func (r *SubscriptionRepository) FindPlanByID(ctx context.Context, id uint) (*models.Subscription, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Subscription ID")
	}
	return r.planBase.FindByID(ctx, id)
}

func (r *SubscriptionRepository) FindAllPlans(ctx context.Context) ([]models.Subscription, error) {
	return r.planBase.FindAll(ctx)
}

func (r *SubscriptionRepository) CreateUserSubscription(ctx context.Context, sub *models.UserSubscription) error {
	if sub == nil || sub.UserID == 0 || sub.SubscriptionID == 0 {
		return errors.New("geçersiz kullanıcı aboneliği")
	}
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubscriptionRepository) FindUserSubscription(ctx context.Context, userID uint) (*models.UserSubscription, error) {
	if userID == 0 {
		return nil, errors.New("geçersiz User ID")
	}
	var sub models.UserSubscription
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("SubscriptionRepository.FindUserSubscription: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &sub, nil
}

var _ ISubscriptionRepository = (*SubscriptionRepository)(nil)
