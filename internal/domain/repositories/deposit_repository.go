package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"rr-exchange.backend/internal/domain/entities"
)

// DepositRepository defines deposit request queue operations
type DepositRepository interface {
	Create(ctx context.Context, request *entities.DepositRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DepositRequest, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.DepositRequest, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.DepositRequest, error)
	CountPending(ctx context.Context) (int64, error)

	// Resolve transitions a pending request to its terminal status. The
	// update is conditional on the request still being pending and fails
	// with ErrRequestResolved otherwise.
	Resolve(ctx context.Context, id uuid.UUID, status entities.RequestStatus, moderatorID uuid.UUID, reason null.String) error
}
