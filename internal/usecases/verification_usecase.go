package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/domain/repositories"
	"rr-exchange.backend/internal/infrastructure/notify"
)

// VerificationUsecase handles identity verification submissions and their
// moderation
type VerificationUsecase struct {
	verificationRepo repositories.VerificationRepository
	accountRepo      repositories.AccountRepository
	uow              repositories.UnitOfWork
	notifier         notify.Notifier
	now              func() time.Time
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	verificationRepo repositories.VerificationRepository,
	accountRepo repositories.AccountRepository,
	uow repositories.UnitOfWork,
	notifier notify.Notifier,
) *VerificationUsecase {
	return &VerificationUsecase{
		verificationRepo: verificationRepo,
		accountRepo:      accountRepo,
		uow:              uow,
		notifier:         notifier,
		now:              time.Now,
	}
}

// CreateRequest files a new verification submission with a snapshot of the
// current profile. The profile must be complete, no submission may be
// pending, and the 24-hour cooldown after a rejection is enforced here, at
// request creation, not in the view layer.
func (u *VerificationUsecase) CreateRequest(ctx context.Context, accountID uuid.UUID) (*entities.VerificationRequest, error) {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.ProfileComplete() {
		return nil, domainerrors.ErrProfileIncomplete
	}

	pending, err := u.verificationRepo.HasPending(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domainerrors.ErrRequestPending
	}

	resubmission := false
	latest, err := u.verificationRepo.GetLatestByAccount(ctx, accountID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if latest != nil && latest.Status == entities.RequestStatusRejected {
		resubmission = true
		if latest.ResolvedAt != nil && u.now().Sub(*latest.ResolvedAt) < entities.VerificationCooldown {
			return nil, domainerrors.ErrCooldownActive
		}
	}

	request := &entities.VerificationRequest{
		AccountID:      accountID,
		Name:           account.Name,
		GameProfileURL: account.GameProfileURL,
		ContactHandle:  account.ContactHandle,
		Resubmission:   resubmission,
	}
	if err := u.verificationRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, fmt.Sprintf("🪪 New verification request from %s", account.Name))
	return request, nil
}

// ListOwn lists the caller's submission history
func (u *VerificationUsecase) ListOwn(ctx context.Context, accountID uuid.UUID) ([]*entities.VerificationRequest, error) {
	return u.verificationRepo.ListByAccount(ctx, accountID)
}

// ListByStatus lists the moderation queue (admin)
func (u *VerificationUsecase) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.VerificationRequest, error) {
	requests, err := u.verificationRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	u.attachAccounts(ctx, requests)
	return requests, nil
}

// Approve marks the request approved and sets the account's denormalized
// verified flag in the same transaction. The append-only submission history
// remains the audit trail.
func (u *VerificationUsecase) Approve(ctx context.Context, moderatorID, requestID uuid.UUID) (*entities.VerificationRequest, error) {
	request, err := u.verificationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.verificationRepo.Resolve(txCtx, requestID, entities.RequestStatusApproved, moderatorID, null.String{}); err != nil {
			return err
		}
		return u.accountRepo.SetVerified(txCtx, request.AccountID, true)
	})
	if err != nil {
		return nil, err
	}

	resolved, err := u.verificationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, fmt.Sprintf("✅ Verification approved for %s", request.Name))
	return resolved, nil
}

// Reject marks the request rejected with the moderator's reason. The account
// may resubmit after the cooldown.
func (u *VerificationUsecase) Reject(ctx context.Context, moderatorID, requestID uuid.UUID, reason string) (*entities.VerificationRequest, error) {
	if err := u.verificationRepo.Resolve(ctx, requestID, entities.RequestStatusRejected, moderatorID, null.StringFrom(reason)); err != nil {
		return nil, err
	}

	resolved, err := u.verificationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, fmt.Sprintf("❌ Verification rejected for %s: %s", resolved.Name, reason))
	return resolved, nil
}

func (u *VerificationUsecase) attachAccounts(ctx context.Context, requests []*entities.VerificationRequest) {
	profiles := make(map[uuid.UUID]*entities.PublicProfile)
	for _, request := range requests {
		profile, ok := profiles[request.AccountID]
		if !ok {
			account, err := u.accountRepo.GetByID(ctx, request.AccountID)
			if err != nil {
				continue
			}
			profile = account.PublicProfile()
			profiles[request.AccountID] = profile
		}
		request.Account = profile
	}
}
