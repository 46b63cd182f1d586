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

// SettlementUsecase executes buys against standing orders. All four
// mutations (order decrement, buyer debit, seller credit, ledger append) run
// inside one transaction so a settlement is all-or-nothing.
type SettlementUsecase struct {
	orderRepo   repositories.OrderRepository
	accountRepo repositories.AccountRepository
	tradeRepo   repositories.TradeRepository
	uow         repositories.UnitOfWork
}

// NewSettlementUsecase creates a new settlement usecase
func NewSettlementUsecase(
	orderRepo repositories.OrderRepository,
	accountRepo repositories.AccountRepository,
	tradeRepo repositories.TradeRepository,
	uow repositories.UnitOfWork,
) *SettlementUsecase {
	return &SettlementUsecase{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
		tradeRepo:   tradeRepo,
		uow:         uow,
	}
}

// Buy transfers quantity units of the order's resource from seller to buyer
// at the order's unit price.
//
// The up-front checks give the caller precise rejections, but the guards that
// actually protect the invariants are the conditional updates inside the
// transaction: the order decrement requires the quantity to still be there,
// and the debit requires the balance to still cover the total. A concurrent
// buyer who won the race makes this attempt fail cleanly with no effects.
func (u *SettlementUsecase) Buy(ctx context.Context, buyerID, orderID uuid.UUID, quantity int64) (*entities.SettlementResponse, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.SellerID == buyerID {
		return nil, domainerrors.ErrSelfTrade
	}
	if quantity > order.Quantity {
		return nil, domainerrors.ErrInvalidQuantity
	}

	total := order.UnitPrice.Mul(decimal.NewFromInt(quantity))

	buyer, err := u.accountRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if buyer.Balance.LessThan(total) {
		return nil, domainerrors.ErrInsufficientFunds
	}

	trade := &entities.Trade{
		BuyerID:   buyerID,
		SellerID:  order.SellerID,
		Resource:  order.Resource,
		Quantity:  quantity,
		UnitPrice: order.UnitPrice,
		Total:     total,
	}

	var remaining int64
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		remaining, err = u.orderRepo.DecrementQuantity(txCtx, orderID, quantity)
		if err != nil {
			return err
		}

		if err := u.accountRepo.Debit(txCtx, buyerID, total); err != nil {
			return err
		}
		if err := u.accountRepo.Credit(txCtx, order.SellerID, total); err != nil {
			return err
		}
		if err := u.accountRepo.AddHolding(txCtx, buyerID, order.Resource, quantity); err != nil {
			return err
		}
		if err := u.tradeRepo.Create(txCtx, trade); err != nil {
			return err
		}

		if remaining == 0 {
			return u.orderRepo.Delete(txCtx, orderID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Settlement completed",
		zap.String("trade_id", trade.ID.String()),
		zap.String("resource", string(trade.Resource)),
		zap.Int64("quantity", trade.Quantity),
		zap.String("total", trade.Total.String()),
	)

	balance := buyer.Balance.Sub(total)
	return &entities.SettlementResponse{
		Trade:          trade,
		Balance:        balance,
		OrderRemaining: remaining,
		OrderClosed:    remaining == 0,
	}, nil
}
