package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/infrastructure/models"
)

// DepositRepository implements deposit request queue operations
type DepositRepository struct {
	db *gorm.DB
}

// NewDepositRepository creates a new deposit repository
func NewDepositRepository(db *gorm.DB) *DepositRepository {
	return &DepositRepository{db: db}
}

// Create creates a new pending deposit request
func (r *DepositRepository) Create(ctx context.Context, request *entities.DepositRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.Status = entities.RequestStatusPending
	request.CreatedAt = time.Now()

	m := &models.DepositRequest{
		ID:          request.ID,
		AccountID:   request.AccountID,
		Amount:      request.Amount,
		Description: request.Description,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a deposit request by ID
func (r *DepositRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DepositRequest, error) {
	var m models.DepositRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toDepositEntity(&m), nil
}

// ListByAccount lists an account's deposit requests, newest first
func (r *DepositRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.DepositRequest, error) {
	var requestModels []models.DepositRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, err
	}
	return toDepositEntities(requestModels), nil
}

// ListByStatus lists deposit requests in a given state, oldest first
func (r *DepositRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.DepositRequest, error) {
	var requestModels []models.DepositRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&requestModels).Error
	if err != nil {
		return nil, err
	}
	return toDepositEntities(requestModels), nil
}

// CountPending counts unresolved deposit requests
func (r *DepositRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.DepositRequest{}).
		Where("status = ?", entities.RequestStatusPending).
		Count(&count).Error
	return count, err
}

// Resolve transitions a pending request to a terminal status. The WHERE guard
// on the current status makes the transition one-shot: a second moderation
// attempt affects zero rows and fails with ErrRequestResolved.
func (r *DepositRepository) Resolve(ctx context.Context, id uuid.UUID, status entities.RequestStatus, moderatorID uuid.UUID, reason null.String) error {
	updates := map[string]interface{}{
		"status":       string(status),
		"moderator_id": moderatorID,
		"resolved_at":  time.Now(),
	}
	if reason.Valid {
		updates["rejection_reason"] = reason.String
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.DepositRequest{}).
		Where("id = ? AND status = ?", id, entities.RequestStatusPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.DepositRequest{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrRequestResolved
	}
	return nil
}

func toDepositEntity(m *models.DepositRequest) *entities.DepositRequest {
	e := &entities.DepositRequest{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Amount:      m.Amount,
		Description: m.Description,
		Status:      entities.RequestStatus(m.Status),
		ModeratorID: m.ModeratorID,
		ResolvedAt:  m.ResolvedAt,
		CreatedAt:   m.CreatedAt,
	}
	e.RejectionReason = null.StringFromPtr(m.RejectionReason)
	return e
}

func toDepositEntities(ms []models.DepositRequest) []*entities.DepositRequest {
	var requests []*entities.DepositRequest
	for _, m := range ms {
		model := m
		requests = append(requests, toDepositEntity(&model))
	}
	return requests
}
