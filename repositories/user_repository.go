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

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindConflicting(ctx context.Context, excludeID uint, email, username string) (*models.User, error)
	CountByUsername(ctx context.Context, username string) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

// UserRepository IUserRepository arayüzünü uygular.
type UserRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.User]
}

// NewUserRepository yeni bir UserRepository örneği oluşturur.
func NewUserRepository() IUserRepository {
	db := configsdatabase.GetDB()
	return NewUserRepositoryTx(db)
}

// NewUserRepositoryTx verilen bağlantı/transaction üzerinde çalışan repo oluşturur.
func NewUserRepositoryTx(db *gorm.DB) IUserRepository {
	base := NewBaseRepository[models.User](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "username", "email"})
	return &UserRepository{db: db, base: base}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.base.Create(ctx, user)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, errors.New("geçersiz User ID")
	}
	return r.base.FindByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: DB error", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByUsername: DB error", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.base.FindAll(ctx)
}

// FindConflicting verilen email veya username'i kullanan BAŞKA bir kullanıcıyı bulur.
// Güncelleme sırasında benzersizlik ön kontrolü için kullanılır.
func (r *UserRepository) FindConflicting(ctx context.Context, excludeID uint, email, username string) (*models.User, error) {
	var user models.User
	query := r.db.WithContext(ctx).Where("id <> ?", excludeID)

	switch {
	case email != "" && username != "":
		query = query.Where("email = ? OR username = ?", email, username)
	case email != "":
		query = query.Where("email = ?", email)
	case username != "":
		query = query.Where("username = ?", username)
	default:
		return nil, ErrNotFound
	}

	err := query.First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindConflicting: DB error", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == 0 {
		return errors.New("güncellenecek kullanıcı geçerli değil")
	}
	return r.base.Update(ctx, user)
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz User ID")
	}
	return r.base.Delete(ctx, id)
}

var _ IUserRepository = (*UserRepository)(nil)
