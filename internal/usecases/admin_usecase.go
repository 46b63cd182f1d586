package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/domain/repositories"
	"rr-exchange.backend/pkg/logger"
)

// AdminUsecase handles account administration and exchange statistics
type AdminUsecase struct {
	accountRepo      repositories.AccountRepository
	orderRepo        repositories.OrderRepository
	tradeRepo        repositories.TradeRepository
	depositRepo      repositories.DepositRepository
	verificationRepo repositories.VerificationRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	accountRepo repositories.AccountRepository,
	orderRepo repositories.OrderRepository,
	tradeRepo repositories.TradeRepository,
	depositRepo repositories.DepositRepository,
	verificationRepo repositories.VerificationRepository,
) *AdminUsecase {
	return &AdminUsecase{
		accountRepo:      accountRepo,
		orderRepo:        orderRepo,
		tradeRepo:        tradeRepo,
		depositRepo:      depositRepo,
		verificationRepo: verificationRepo,
	}
}

// ListAccounts lists accounts with an optional search filter
func (u *AdminUsecase) ListAccounts(ctx context.Context, search string) ([]*entities.Account, error) {
	return u.accountRepo.List(ctx, search)
}

// OverrideBalance sets an account's balance to an absolute value. The new
// balance must be non-negative. Every override is logged with the acting
// moderator.
func (u *AdminUsecase) OverrideBalance(ctx context.Context, moderatorID, accountID uuid.UUID, balance decimal.Decimal) (*entities.Account, error) {
	if balance.LessThan(decimal.Zero) {
		return nil, domainerrors.ErrInvalidAmount
	}

	if err := u.accountRepo.SetBalance(ctx, accountID, balance); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Balance override applied",
		zap.String("moderator_id", moderatorID.String()),
		zap.String("account_id", accountID.String()),
		zap.String("balance", balance.StringFixed(2)),
	)

	return u.accountRepo.GetByID(ctx, accountID)
}

// Stats returns the admin dashboard counters
func (u *AdminUsecase) Stats(ctx context.Context) (*entities.ExchangeStats, error) {
	accounts, err := u.accountRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := u.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	trades, err := u.tradeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	deposits, err := u.depositRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	verifications, err := u.verificationRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.ExchangeStats{
		Accounts:             accounts,
		OpenOrders:           orders,
		Trades:               trades,
		PendingDeposits:      deposits,
		PendingVerifications: verifications,
	}, nil
}
