package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"rr-exchange.backend/internal/domain/entities"
)

// AccountRepository defines account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entities.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	GetByProviderKey(ctx context.Context, key string) (*entities.Account, error)
	UpdateProfile(ctx context.Context, account *entities.Account) error
	List(ctx context.Context, search string) ([]*entities.Account, error)
	Count(ctx context.Context) (int64, error)

	// Debit subtracts amount from the account balance. The update is
	// conditional on balance >= amount and fails with ErrInsufficientFunds
	// otherwise.
	Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	// Credit adds amount to the account balance.
	Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	// SetBalance overwrites the balance (admin override).
	SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	// AddHolding adds quantity units of resource to the account inventory.
	AddHolding(ctx context.Context, id uuid.UUID, resource entities.Resource, quantity int64) error
	// SetVerified updates the denormalized verification flag.
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}
