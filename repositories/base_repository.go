package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"wavetags.link/pkg/queryparams"
)

// ErrNotFound aranan kayıt bulunamadığında tüm repository'lerin döndürdüğü sentinel.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository tüm entity repository'lerinin ortak CRUD arayüzü.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]T, int64, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
	GetCount(ctx context.Context) (int64, error)
	SetAllowedSortColumns(columns []string)
}

// BaseRepository IBaseRepository'nin gorm implementasyonu.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]struct{}
}

// NewBaseRepository verilen bağlantı (veya transaction) üzerinde çalışan base repo oluşturur.
func NewBaseRepository[T any](db *gorm.DB) IBaseRepository[T] {
	return &BaseRepository[T]{
		db:                 db,
		allowedSortColumns: map[string]struct{}{"id": {}, "created_at": {}},
	}
}

// SetAllowedSortColumns sıralamaya izin verilen kolonları belirler.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	allowed := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		allowed[col] = struct{}{}
	}
	r.allowedSortColumns = allowed
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Find(&entities).Error
	return entities, err
}

func (r *BaseRepository[T]) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]T, int64, error) {
	var entities []T
	var totalCount int64

	var model T
	query := r.db.WithContext(ctx).Model(&model)

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if totalCount == 0 {
		return entities, 0, nil
	}

	// Sıralama: yalnızca izin verilen kolonlar.
	sortBy := params.SortBy
	if _, ok := r.allowedSortColumns[sortBy]; !ok {
		sortBy = "created_at"
	}
	orderBy := strings.ToLower(params.OrderBy)
	if orderBy != "asc" && orderBy != "desc" {
		orderBy = queryparams.DefaultOrderBy
	}

	err := query.
		Order(sortBy + " " + orderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&entities).Error
	return entities, totalCount, err
}

func (r *BaseRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) GetCount(ctx context.Context) (int64, error) {
	var model T
	var count int64
	err := r.db.WithContext(ctx).Model(&model).Count(&count).Error
	return count, err
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
