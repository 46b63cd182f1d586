package usecases

import (
	"context"

	"github.com/google/uuid"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/domain/repositories"
	"rr-exchange.backend/pkg/utils"
)

// TradeUsecase handles trade history and receipts
type TradeUsecase struct {
	tradeRepo repositories.TradeRepository
}

// NewTradeUsecase creates a new trade usecase
func NewTradeUsecase(tradeRepo repositories.TradeRepository) *TradeUsecase {
	return &TradeUsecase{tradeRepo: tradeRepo}
}

// History lists the account's trades, newest first, each annotated with the
// account's side of the trade.
func (u *TradeUsecase) History(ctx context.Context, accountID uuid.UUID, params utils.PaginationParams) ([]*entities.TradeView, utils.PaginationMeta, error) {
	trades, err := u.tradeRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	from, to := params.Slice(len(trades))
	views := make([]*entities.TradeView, 0, to-from)
	for _, trade := range trades[from:to] {
		views = append(views, &entities.TradeView{
			Trade: trade,
			Side:  trade.SideFor(accountID),
		})
	}

	meta := utils.CalculateMeta(int64(len(trades)), params.Page, params.Limit)
	return views, meta, nil
}

// Receipt returns one trade. Only the buyer or the seller may read it.
func (u *TradeUsecase) Receipt(ctx context.Context, accountID, tradeID uuid.UUID) (*entities.TradeView, error) {
	trade, err := u.tradeRepo.GetByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}
	if !trade.IsParty(accountID) {
		return nil, domainerrors.ErrForbidden
	}
	return &entities.TradeView{
		Trade: trade,
		Side:  trade.SideFor(accountID),
	}, nil
}
