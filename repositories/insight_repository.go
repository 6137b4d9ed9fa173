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

// Olay tipi -> sayaç kolonu eşlemesi. Sayaçlar yalnızca buradaki kolonlar
// üzerinden, atomik UPDATE ile artar.
var insightCounterColumns = map[string]string{
	models.InsightEventLinkTap:  "number_of_link_taps",
	models.InsightEventDownload: "number_of_contacts_download",
	models.InsightEventCardView: "number_of_card_views",
}

// ErrUnknownInsightEvent bilinmeyen olay tipi için döner.
var ErrUnknownInsightEvent = errors.New("bilinmeyen insight olay tipi")

// IInsightRepository kart başına etkileşim sayaçları için arayüz.
type IInsightRepository interface {
	FindAll(ctx context.Context) ([]models.Insight, error)
	FindByCardID(ctx context.Context, cardID uint) (*models.Insight, error)
	// IncrementEventCounter olay sayacını atomik olarak artırır.
	// Karta ait aggregate yoksa hiçbir şey yapmaz ve false döner.
	IncrementEventCounter(ctx context.Context, cardID uint, eventType string) (bool, error)
	// RecordLead lead sayacını artırıp lead listesine kayıt ekler;
	// aggregate yoksa tek kayıtla oluşturur.
	RecordLead(ctx context.Context, cardID uint, entry models.LeadEntry) error
}

// InsightRepository IInsightRepository arayüzünü uygular.
type InsightRepository struct {
	db *gorm.DB
}

// NewInsightRepository yeni bir InsightRepository örneği oluşturur.
func NewInsightRepository() IInsightRepository {
	return NewInsightRepositoryTx(configsdatabase.GetDB())
}

// NewInsightRepositoryTx verilen bağlantı/transaction üzerinde çalışan repo oluşturur.
func NewInsightRepositoryTx(db *gorm.DB) IInsightRepository {
	return &InsightRepository{db: db}
}

func (r *InsightRepository) FindAll(ctx context.Context) ([]models.Insight, error) {
	var insights []models.Insight
	err := r.db.WithContext(ctx).Find(&insights).Error
	return insights, err
}

func (r *InsightRepository) FindByCardID(ctx context.Context, cardID uint) (*models.Insight, error) {
	if cardID == 0 {
		return nil, errors.New("geçersiz Card ID")
	}
	var insight models.Insight
	err := r.db.WithContext(ctx).Where("card_id = ?", cardID).First(&insight).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InsightRepository.FindByCardID: DB error", zap.Uint("card_id", cardID), zap.Error(err))
		return nil, err
	}
	return &insight, nil
}

func (r *InsightRepository) IncrementEventCounter(ctx context.Context, cardID uint, eventType string) (bool, error) {
	column, ok := insightCounterColumns[eventType]
	if !ok {
		return false, ErrUnknownInsightEvent
	}

	result := r.db.WithContext(ctx).
		Model(&models.Insight{}).
		Where("card_id = ?", cardID).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		configslog.Log.Error("InsightRepository.IncrementEventCounter: DB error",
			zap.Uint("card_id", cardID), zap.String("event", eventType), zap.Error(result.Error))
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *InsightRepository) RecordLead(ctx context.Context, cardID uint, entry models.LeadEntry) error {
	if cardID == 0 {
		return errors.New("geçersiz Card ID")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Sayaç artışı atomik; aggregate yoksa RowsAffected 0 olur ve oluşturulur.
		result := tx.Model(&models.Insight{}).
			Where("card_id = ?", cardID).
			UpdateColumn("number_of_lead_generated", gorm.Expr("number_of_lead_generated + 1"))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			insight := models.Insight{
				CardID:                cardID,
				NumberOfLeadGenerated: 1,
				Leads:                 models.LeadEntryList{entry},
			}
			return tx.Create(&insight).Error
		}

		var insight models.Insight
		if err := tx.Where("card_id = ?", cardID).First(&insight).Error; err != nil {
			return err
		}
		insight.Leads = append(insight.Leads, entry)
		return tx.Model(&insight).UpdateColumn("leads", insight.Leads).Error
	})
}

var _ IInsightRepository = (*InsightRepository)(nil)
