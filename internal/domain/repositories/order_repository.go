package repositories

import (
	"context"

	"github.com/google/uuid"
	"rr-exchange.backend/internal/domain/entities"
)

// OrderRepository defines order book data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	ListByResource(ctx context.Context, resource entities.Resource) ([]*entities.Order, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entities.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementQuantity atomically subtracts quantity from the order and
	// returns the remaining quantity. The update is conditional on the order
	// still holding at least that quantity and fails with ErrOrderOversold
	// otherwise.
	DecrementQuantity(ctx context.Context, id uuid.UUID, quantity int64) (int64, error)

	// OpenCounts returns the number of open orders per resource.
	OpenCounts(ctx context.Context) (map[entities.Resource]int64, error)
	Count(ctx context.Context) (int64, error)
}
