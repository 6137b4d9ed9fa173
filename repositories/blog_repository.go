package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"wavetags.link/configs/configsdatabase"
	"wavetags.link/configs/configslog"
	"wavetags.link/models"
	"wavetags.link/pkg/queryparams"
)

// IBlogRepository blog yazıları için arayüz.
type IBlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindByID(ctx context.Context, id uint) (*models.Blog, error)
	FindAll(ctx context.Context) ([]models.Blog, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Blog, int64, error)
	FindByCardIDAndHeading(ctx context.Context, cardID uint, heading string) (*models.Blog, error)
	FindConflicting(ctx context.Context, excludeID uint, cardID uint, heading string) (*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uint) error
}

// BlogRepository IBlogRepository arayüzünü uygular.
type BlogRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Blog]
}

// NewBlogRepository yeni bir BlogRepository örneği oluşturur.
func NewBlogRepository() IBlogRepository {
	return NewBlogRepositoryTx(configsdatabase.GetDB())
}

// NewBlogRepositoryTx verilen bağlantı/transaction üzerinde çalışan repo oluşturur.
func NewBlogRepositoryTx(db *gorm.DB) IBlogRepository {
	base := NewBaseRepository[models.Blog](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "heading"})
	return &BlogRepository{db: db, base: base}
}

func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	return r.base.Create(ctx, blog)
}

func (r *BlogRepository) FindByID(ctx context.Context, id uint) (*models.Blog, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Blog ID")
	}
	return r.base.FindByID(ctx, id)
}

func (r *BlogRepository) FindAll(ctx context.Context) ([]models.Blog, error) {
	return r.base.FindAll(ctx)
}

func (r *BlogRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Blog, int64, error) {
	return r.base.FindAllPaginated(ctx, params)
}

func (r *BlogRepository) FindByCardIDAndHeading(ctx context.Context, cardID uint, heading string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).Where("card_id = ? AND heading = ?", cardID, heading).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BlogRepository.FindByCardIDAndHeading: DB error", zap.Uint("card_id", cardID), zap.Error(err))
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) FindConflicting(ctx context.Context, excludeID uint, cardID uint, heading string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Where("id <> ? AND card_id = ? AND heading = ?", excludeID, cardID, heading).
		First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("BlogRepository.FindConflicting: DB error", zap.Error(err))
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	if blog == nil || blog.ID == 0 {
		return errors.New("güncellenecek blog geçerli değil")
	}
	return r.base.Update(ctx, blog)
}

func (r *BlogRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz Blog ID")
	}
	return r.base.Delete(ctx, id)
}

var _ IBlogRepository = (*BlogRepository)(nil)
