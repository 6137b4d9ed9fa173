package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wavetags.link/configs/configsdatabase"
	"wavetags.link/models"
)

// ILeadFormRepository lead formu veritabanı işlemleri için arayüz.
type ILeadFormRepository interface {
	Create(ctx context.Context, form *models.LeadForm) error
	FindByID(ctx context.Context, id uint) (*models.LeadForm, error)
	Update(ctx context.Context, form *models.LeadForm) error
	Delete(ctx context.Context, id uint) error
}

// LeadFormRepository ILeadFormRepository arayüzünü uygular.
type LeadFormRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.LeadForm]
}

// NewLeadFormRepository yeni bir LeadFormRepository örneği oluşturur.
func NewLeadFormRepository() ILeadFormRepository {
	return NewLeadFormRepositoryTx(configsdatabase.GetDB())
}

// NewLeadFormRepositoryTx verilen bağlantı/transaction üzerinde çalışan repo oluşturur.
func NewLeadFormRepositoryTx(db *gorm.DB) ILeadFormRepository {
	return &LeadFormRepository{db: db, base: NewBaseRepository[models.LeadForm](db)}
}

func (r *LeadFormRepository) Create(ctx context.Context, form *models.LeadForm) error {
	if form == nil {
		return errors.New("geçersiz lead formu")
	}
	return r.base.Create(ctx, form)
}

func (r *LeadFormRepository) FindByID(ctx context.Context, id uint) (*models.LeadForm, error) {
	if id == 0 {
		return nil, errors.New("geçersiz LeadForm ID")
	}
	return r.base.FindByID(ctx, id)
}

func (r *LeadFormRepository) Update(ctx context.Context, form *models.LeadForm) error {
	if form == nil || form.ID == 0 {
		return errors.New("güncellenecek lead formu geçerli değil")
	}
	return r.base.Update(ctx, form)
}

func (r *LeadFormRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz LeadForm ID")
	}
	return r.base.Delete(ctx, id)
}

var _ ILeadFormRepository = (*LeadFormRepository)(nil)
