package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/domain/repositories"
	"rr-exchange.backend/internal/infrastructure/notify"
)

// DepositUsecase handles the deposit request queue and its moderation
type DepositUsecase struct {
	depositRepo repositories.DepositRepository
	accountRepo repositories.AccountRepository
	uow         repositories.UnitOfWork
	notifier    notify.Notifier
}

// NewDepositUsecase creates a new deposit usecase
func NewDepositUsecase(
	depositRepo repositories.DepositRepository,
	accountRepo repositories.AccountRepository,
	uow repositories.UnitOfWork,
	notifier notify.Notifier,
) *DepositUsecase {
	return &DepositUsecase{
		depositRepo: depositRepo,
		accountRepo: accountRepo,
		uow:         uow,
		notifier:    notifier,
	}
}

// CreateRequest files a new pending deposit request and notifies the channel
func (u *DepositUsecase) CreateRequest(ctx context.Context, accountID uuid.UUID, input *entities.CreateDepositInput) (*entities.DepositRequest, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerrors.ErrInvalidAmount
	}

	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	request := &entities.DepositRequest{
		AccountID:   accountID,
		Amount:      input.Amount,
		Description: input.Description,
	}
	if err := u.depositRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, fmt.Sprintf("💰 New deposit request: %s RR from %s", input.Amount.StringFixed(2), account.Name))
	return request, nil
}

// ListOwn lists the caller's deposit requests
func (u *DepositUsecase) ListOwn(ctx context.Context, accountID uuid.UUID) ([]*entities.DepositRequest, error) {
	return u.depositRepo.ListByAccount(ctx, accountID)
}

// ListByStatus lists the moderation queue (admin)
func (u *DepositUsecase) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.DepositRequest, error) {
	requests, err := u.depositRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	u.attachAccounts(ctx, requests)
	return requests, nil
}

// Approve credits the requested amount and marks the request approved in one
// transaction. The status transition is conditional on the request still
// being pending, so a second approval attempt fails with ErrRequestResolved
// and applies nothing.
func (u *DepositUsecase) Approve(ctx context.Context, moderatorID, requestID uuid.UUID) (*entities.DepositRequest, error) {
	request, err := u.depositRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.depositRepo.Resolve(txCtx, requestID, entities.RequestStatusApproved, moderatorID, null.String{}); err != nil {
			return err
		}
		return u.accountRepo.Credit(txCtx, request.AccountID, request.Amount)
	})
	if err != nil {
		return nil, err
	}

	resolved, err := u.depositRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, fmt.Sprintf("✅ Deposit approved: %s RR credited to account %s", request.Amount.StringFixed(2), request.AccountID))
	return resolved, nil
}

// Reject marks the request rejected with the moderator's reason. No balance
// change occurs.
func (u *DepositUsecase) Reject(ctx context.Context, moderatorID, requestID uuid.UUID, reason string) (*entities.DepositRequest, error) {
	if err := u.depositRepo.Resolve(ctx, requestID, entities.RequestStatusRejected, moderatorID, null.StringFrom(reason)); err != nil {
		return nil, err
	}

	resolved, err := u.depositRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, fmt.Sprintf("❌ Deposit rejected for account %s: %s", resolved.AccountID, reason))
	return resolved, nil
}

func (u *DepositUsecase) attachAccounts(ctx context.Context, requests []*entities.DepositRequest) {
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
