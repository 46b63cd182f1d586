package repositories

import (
	"context"

	"github.com/google/uuid"
	"rr-exchange.backend/internal/domain/entities"
)

// TradeRepository defines ledger data operations. Trades are append-only.
type TradeRepository interface {
	Create(ctx context.Context, trade *entities.Trade) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Trade, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.Trade, error)
	Count(ctx context.Context) (int64, error)
}
