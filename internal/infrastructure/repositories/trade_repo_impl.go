package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/infrastructure/models"
)

// TradeRepository implements ledger data operations
type TradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new trade repository
func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// Create appends a new ledger entry
func (r *TradeRepository) Create(ctx context.Context, trade *entities.Trade) error {
	if trade.ID == uuid.Nil {
		trade.ID = uuid.New()
	}
	trade.CreatedAt = time.Now()

	m := &models.Trade{
		ID:        trade.ID,
		BuyerID:   trade.BuyerID,
		SellerID:  trade.SellerID,
		Resource:  string(trade.Resource),
		Quantity:  trade.Quantity,
		UnitPrice: trade.UnitPrice,
		Total:     trade.Total,
		CreatedAt: trade.CreatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a trade by ID
func (r *TradeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Trade, error) {
	var m models.Trade
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTradeEntity(&m), nil
}

// ListByAccount lists trades where the account is buyer or seller, newest first
func (r *TradeRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.Trade, error) {
	var tradeModels []models.Trade
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", accountID, accountID).
		Order("created_at DESC").
		Find(&tradeModels).Error
	if err != nil {
		return nil, err
	}

	var trades []*entities.Trade
	for _, m := range tradeModels {
		model := m
		trades = append(trades, toTradeEntity(&model))
	}
	return trades, nil
}

// Count counts all trades
func (r *TradeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Trade{}).Count(&count).Error
	return count, err
}

func toTradeEntity(m *models.Trade) *entities.Trade {
	return &entities.Trade{
		ID:        m.ID,
		BuyerID:   m.BuyerID,
		SellerID:  m.SellerID,
		Resource:  entities.Resource(m.Resource),
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Total:     m.Total,
		CreatedAt: m.CreatedAt,
	}
}
