package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"rr-exchange.backend/internal/domain/entities"
)

// VerificationRepository defines verification request queue operations
type VerificationRepository interface {
	Create(ctx context.Context, request *entities.VerificationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.VerificationRequest, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.VerificationRequest, error)
	// GetLatestByAccount returns the most recent submission for the account,
	// or ErrNotFound if none exists.
	GetLatestByAccount(ctx context.Context, accountID uuid.UUID) (*entities.VerificationRequest, error)
	HasPending(ctx context.Context, accountID uuid.UUID) (bool, error)
	CountPending(ctx context.Context) (int64, error)

	// Resolve transitions a pending request to its terminal status. The
	// update is conditional on the request still being pending and fails
	// with ErrRequestResolved otherwise.
	Resolve(ctx context.Context, id uuid.UUID, status entities.RequestStatus, moderatorID uuid.UUID, reason null.String) error
}
