package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wavetags.link/configs/configsdatabase"
	"wavetags.link/configs/configslog"
	"wavetags.link/models"
	"wavetags.link/repositories"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound     CardServiceError = "Card not found"
	ErrCardsNotFound    CardServiceError = "Cards not found"
	ErrCardOwnerMissing CardServiceError = "User not found"
	ErrCardInvalidInput CardServiceError = "Id is not Valid or All Fields are Required"
)

// CardUpdates kısmi kart güncellemesi; nil pointer'lar dokunulmaz.
type CardUpdates struct {
	CardTitle      *string
	Fields         *models.CardFields
	Layout         *string
	Theme          *string
	ProfilePicture *string
	CoverPicture   *string
	CompanyLogo    *string
	QRCode         *string
}

// ICardService kartvizit işlemleri için arayüz.
type ICardService interface {
	// CreateCard kartı ve ona bağlı boş lead formunu tek transaction'da oluşturur.
	CreateCard(ctx context.Context, userID uint, cardTitle string) (*models.Card, error)
	GetCards(ctx context.Context) ([]models.Card, error)
	GetCardByID(ctx context.Context, id uint) (*models.Card, error)
	GetCardByUserID(ctx context.Context, userID uint) (*models.Card, error)
	GetCardByHash(ctx context.Context, hash string) (*models.Card, error)
	UpdateCard(ctx context.Context, id uint, updates CardUpdates) (*models.Card, error)
	DeleteCard(ctx context.Context, id uint) error
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	db       *gorm.DB
	cardRepo repositories.ICardRepository
	userRepo repositories.IUserRepository
}

// NewCardService yeni bir CardService örneği oluşturur.
func NewCardService() ICardService {
	db := configsdatabase.GetDB()
	return &CardService{
		db:       db,
		cardRepo: repositories.NewCardRepositoryTx(db),
		userRepo: repositories.NewUserRepositoryTx(db),
	}
}

// newCardHash paylaşılabilir opak kart adresi üretir.
func newCardHash() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *CardService) CreateCard(ctx context.Context, userID uint, cardTitle string) (*models.Card, error) {
	if userID == 0 {
		return nil, ErrCardInvalidInput
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardOwnerMissing
		}
		return nil, err
	}

	var card models.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Her kart boş bir lead formu ile doğar; form daha sonra şekillendirilir.
		leadForm := models.LeadForm{Fields: models.LeadFieldList{}}
		if err := repositories.NewLeadFormRepositoryTx(tx).Create(ctx, &leadForm); err != nil {
			return err
		}

		card = models.Card{
			UserID:     userID,
			CardTitle:  cardTitle,
			Hash:       newCardHash(),
			LeadFormID: &leadForm.ID,
		}
		return repositories.NewCardRepositoryTx(tx).Create(ctx, &card)
	})
	if err != nil {
		configslog.Log.Error("Kart oluşturulamadı", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Kart oluşturuldu: ID %d (kullanıcı %d)", card.ID, userID)
	return &card, nil
}

func (s *CardService) GetCards(ctx context.Context) ([]models.Card, error) {
	cards, err := s.cardRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, ErrCardsNotFound
	}
	return cards, nil
}

func (s *CardService) GetCardByID(ctx context.Context, id uint) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

func (s *CardService) GetCardByUserID(ctx context.Context, userID uint) (*models.Card, error) {
	card, err := s.cardRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

func (s *CardService) GetCardByHash(ctx context.Context, hash string) (*models.Card, error) {
	card, err := s.cardRepo.FindByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

func (s *CardService) UpdateCard(ctx context.Context, id uint, updates CardUpdates) (*models.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	if updates.CardTitle != nil {
		card.CardTitle = *updates.CardTitle
	}
	if updates.Fields != nil {
		card.Fields = *updates.Fields
	}
	if updates.Layout != nil {
		card.Layout = *updates.Layout
	}
	if updates.Theme != nil {
		card.Theme = *updates.Theme
	}
	if updates.ProfilePicture != nil {
		card.ProfilePicture = *updates.ProfilePicture
	}
	if updates.CoverPicture != nil {
		card.CoverPicture = *updates.CoverPicture
	}
	if updates.CompanyLogo != nil {
		card.CompanyLogo = *updates.CompanyLogo
	}
	if updates.QRCode != nil {
		card.QRCode = *updates.QRCode
	}

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *CardService) DeleteCard(ctx context.Context, id uint) error {
	err := s.cardRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrCardNotFound
	}
	return err
}

var _ ICardService = (*CardService)(nil)
