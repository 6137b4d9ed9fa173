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

// ILinkRepository sosyal link kataloğu için arayüz.
type ILinkRepository interface {
	Create(ctx context.Context, link *models.Link) error
	FindByID(ctx context.Context, id uint) (*models.Link, error)
	FindAll(ctx context.Context) ([]models.Link, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Link, int64, error)
	FindByNameOrURL(ctx context.Context, name, url string) (*models.Link, error)
	FindConflicting(ctx context.Context, excludeID uint, name, url string) (*models.Link, error)
	Update(ctx context.Context, link *models.Link) error
	Delete(ctx context.Context, id uint) error
}

// LinkRepository ILinkRepository arayüzünü uygular.
type LinkRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Link]
}

// NewLinkRepository yeni bir LinkRepository örneği oluşturur.
func NewLinkRepository() ILinkRepository {
	return NewLinkRepositoryTx(configsdatabase.GetDB())
}

// NewLinkRepositoryTx verilen bağlantı/transaction üzerinde çalışan repo oluşturur.
func NewLinkRepositoryTx(db *gorm.DB) ILinkRepository {
	base := NewBaseRepository[models.Link](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name"})
	return &LinkRepository{db: db, base: base}
}

func (r *LinkRepository) Create(ctx context.Context, link *models.Link) error {
	return r.base.Create(ctx, link)
}

func (r *LinkRepository) FindByID(ctx context.Context, id uint) (*models.Link, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Link ID")
	}
	return r.base.FindByID(ctx, id)
}

func (r *LinkRepository) FindAll(ctx context.Context) ([]models.Link, error) {
	return r.base.FindAll(ctx)
}

func (r *LinkRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Link, int64, error) {
	return r.base.FindAllPaginated(ctx, params)
}

// FindByNameOrURL aynı isim veya adresi kullanan mevcut linki bulur (oluşturma ön kontrolü).
func (r *LinkRepository) FindByNameOrURL(ctx context.Context, name, url string) (*models.Link, error) {
	var link models.Link
	err := r.db.WithContext(ctx).Where("name = ? OR url = ?", name, url).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("LinkRepository.FindByNameOrURL: DB error", zap.Error(err))
		return nil, err
	}
	return &link, nil
}

// FindConflicting aynı isim veya adresi kullanan BAŞKA bir linki bulur (güncelleme ön kontrolü).
func (r *LinkRepository) FindConflicting(ctx context.Context, excludeID uint, name, url string) (*models.Link, error) {
	var link models.Link
	query := r.db.WithContext(ctx).Where("id <> ?", excludeID)

	switch {
	case name != "" && url != "":
		query = query.Where("name = ? OR url = ?", name, url)
	case name != "":
		query = query.Where("name = ?", name)
	case url != "":
		query = query.Where("url = ?", url)
	default:
		return nil, ErrNotFound
	}

	err := query.First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("LinkRepository.FindConflicting: DB error", zap.Error(err))
		return nil, err
	}
	return &link, nil
}

func (r *LinkRepository) Update(ctx context.Context, link *models.Link) error {
	if link == nil || link.ID == 0 {
		return errors.New("güncellenecek link geçerli değil")
	}
	return r.base.Update(ctx, link)
}

func (r *LinkRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz Link ID")
	}
	return r.base.Delete(ctx, id)
}

var _ ILinkRepository = (*LinkRepository)(nil)
