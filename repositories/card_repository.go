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

// ICardRepository kartvizit veritabanı işlemleri için arayüz.
type ICardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	FindByID(ctx context.Context, id uint) (*models.Card, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Card, error)
	FindByHash(ctx context.Context, hash string) (*models.Card, error)
	FindAll(ctx context.Context) ([]models.Card, error)
	Update(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id uint) error
}

// CardRepository ICardRepository arayüzünü uygular.
type CardRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Card]
}

// NewCardRepository yeni bir CardRepository örneği oluşturur.
func NewCardRepository() ICardRepository {
	return NewCardRepositoryTx(configsdatabase.GetDB())
}

// NewCardRepositoryTx verilen bağlantı/transaction üzerinde çalışan repo oluşturur.
func NewCardRepositoryTx(db *gorm.DB) ICardRepository {
	base := NewBaseRepository[models.Card](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "card_title"})
	return &CardRepository{db: db, base: base}
}

func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	if card == nil || card.UserID == 0 {
		return errors.New("geçersiz veya sahipsiz kartvizit oluşturulamaz")
	}
	return r.base.Create(ctx, card)
}

func (r *CardRepository) FindByID(ctx context.Context, id uint) (*models.Card, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Card ID")
	}
	return r.base.FindByID(ctx, id)
}

// FindByUserID kullanıcıya ait kartı bulur. Kullanıcı başına tek kart varsayılır.
func (r *CardRepository) FindByUserID(ctx context.Context, userID uint) (*models.Card, error) {
	if userID == 0 {
		return nil, errors.New("geçersiz User ID")
	}
	var card models.Card
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindByUserID: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

// FindByHash public erişim için opak hash ile kartı bulur.
func (r *CardRepository) FindByHash(ctx context.Context, hash string) (*models.Card, error) {
	if hash == "" {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.db.WithContext(ctx).Where("hash = ?", hash).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindByHash: DB error", zap.Error(err))
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) FindAll(ctx context.Context) ([]models.Card, error) {
	return r.base.FindAll(ctx)
}

func (r *CardRepository) Update(ctx context.Context, card *models.Card) error {
	if card == nil || card.ID == 0 {
		return errors.New("güncellenecek kartvizit geçerli değil")
	}
	return r.base.Update(ctx, card)
}

func (r *CardRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("geçersiz Card ID")
	}
	return r.base.Delete(ctx, id)
}

var _ ICardRepository = (*CardRepository)(nil)
