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

// IUserLinkRepository kullanıcı sosyal link listeleri için arayüz.
type IUserLinkRepository interface {
	Create(ctx context.Context, userLink *models.UserLink) error
	FindByUserID(ctx context.Context, userID uint) (*models.UserLink, error)
	Update(ctx context.Context, userLink *models.UserLink) error
}

// UserLinkRepository IUserLinkRepository arayüzünü uygular.
type UserLinkRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.UserLink]
}

// NewUserLinkRepository yeni bir UserLinkRepository örneği oluşturur.
func NewUserLinkRepository() IUserLinkRepository {
	return NewUserLinkRepositoryTx(configsdatabase.GetDB())
}

// NewUserLinkRepositoryTx verilen bağlantı/transaction üzerinde çalışan repo oluşturur.
func NewUserLinkRepositoryTx(db *gorm.DB) IUserLinkRepository {
	return &UserLinkRepository{db: db, base: NewBaseRepository[models.UserLink](db)}
}

func (r *UserLinkRepository) Create(ctx context.Context, userLink *models.UserLink) error {
	if userLink == nil || userLink.UserID == 0 {
		return errors.New("geçersiz kullanıcı link kaydı")
	}
	return r.base.Create(ctx, userLink)
}

func (r *UserLinkRepository) FindByUserID(ctx context.Context, userID uint) (*models.UserLink, error) {
	if userID == 0 {
		return nil, errors.New("geçersiz User ID")
	}
	var userLink models.UserLink
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&userLink).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserLinkRepository.FindByUserID: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &userLink, nil
}

func (r *UserLinkRepository) Update(ctx context.Context, userLink *models.UserLink) error {
	if userLink == nil || userLink.ID == 0 {
		return errors.New("güncellenecek kullanıcı link kaydı geçerli değil")
	}
	return r.base.Update(ctx, userLink)
}

var _ IUserLinkRepository = (*UserLinkRepository)(nil)
