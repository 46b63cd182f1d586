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

// VerificationRepository implements verification request queue operations
type VerificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create creates a new pending verification request with a profile snapshot
func (r *VerificationRepository) Create(ctx context.Context, request *entities.VerificationRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.Status = entities.RequestStatusPending
	request.CreatedAt = time.Now()

	m := &models.VerificationRequest{
		ID:             request.ID,
		AccountID:      request.AccountID,
		Name:           request.Name,
		GameProfileURL: request.GameProfileURL,
		ContactHandle:  request.ContactHandle,
		Status:         string(request.Status),
		Resubmission:   request.Resubmission,
		CreatedAt:      request.CreatedAt,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a verification request by ID
func (r *VerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VerificationRequest, error) {
	var m models.VerificationRequest
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toVerificationEntity(&m), nil
}

// ListByAccount lists an account's submission history, newest first
func (r *VerificationRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.VerificationRequest, error) {
	var requestModels []models.VerificationRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&requestModels).Error
	if err != nil {
		return nil, err
	}
	return toVerificationEntities(requestModels), nil
}

// ListByStatus lists verification requests in a given state, oldest first
func (r *VerificationRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.VerificationRequest, error) {
	var requestModels []models.VerificationRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&requestModels).Error
	if err != nil {
		return nil, err
	}
	return toVerificationEntities(requestModels), nil
}

// GetLatestByAccount returns the most recent submission for the account
func (r *VerificationRepository) GetLatestByAccount(ctx context.Context, accountID uuid.UUID) (*entities.VerificationRequest, error) {
	var m models.VerificationRequest
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toVerificationEntity(&m), nil
}

// HasPending reports whether the account has an unresolved submission
func (r *VerificationRepository) HasPending(ctx context.Context, accountID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.VerificationRequest{}).
		Where("account_id = ? AND status = ?", accountID, entities.RequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

// CountPending counts unresolved verification requests
func (r *VerificationRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.VerificationRequest{}).
		Where("status = ?", entities.RequestStatusPending).
		Count(&count).Error
	return count, err
}

// Resolve transitions a pending request to a terminal status, one-shot
func (r *VerificationRepository) Resolve(ctx context.Context, id uuid.UUID, status entities.RequestStatus, moderatorID uuid.UUID, reason null.String) error {
	updates := map[string]interface{}{
		"status":       string(status),
		"moderator_id": moderatorID,
		"resolved_at":  time.Now(),
	}
	if reason.Valid {
		updates["rejection_reason"] = reason.String
	}

	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.VerificationRequest{}).
		Where("id = ? AND status = ?", id, entities.RequestStatusPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var exists int64
		if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.VerificationRequest{}).Where("id = ?", id).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrRequestResolved
	}
	return nil
}

func toVerificationEntity(m *models.VerificationRequest) *entities.VerificationRequest {
	e := &entities.VerificationRequest{
		ID:             m.ID,
		AccountID:      m.AccountID,
		Name:           m.Name,
		GameProfileURL: m.GameProfileURL,
		ContactHandle:  m.ContactHandle,
		Status:         entities.RequestStatus(m.Status),
		Resubmission:   m.Resubmission,
		ModeratorID:    m.ModeratorID,
		ResolvedAt:     m.ResolvedAt,
		CreatedAt:      m.CreatedAt,
	}
	e.RejectionReason = null.StringFromPtr(m.RejectionReason)
	return e
}

func toVerificationEntities(ms []models.VerificationRequest) []*entities.VerificationRequest {
	var requests []*entities.VerificationRequest
	for _, m := range ms {
		model := m
		requests = append(requests, toVerificationEntity(&model))
	}
	return requests
}
