package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
)

func TestTradeRepository_CreateAndListByAccount(t *testing.T) {
	db := newTestDB(t)
	createTradeTable(t, db)
	repo := NewTradeRepository(db)
	ctx := context.Background()

	buyerID := uuid.New()
	sellerID := uuid.New()
	strangerID := uuid.New()

	asBuyer := &entities.Trade{
		BuyerID:   buyerID,
		SellerID:  sellerID,
		Resource:  entities.ResourceOre,
		Quantity:  40,
		UnitPrice: decimal.RequireFromString("5.00"),
		Total:     decimal.RequireFromString("200.00"),
	}
	require.NoError(t, repo.Create(ctx, asBuyer))

	asSeller := &entities.Trade{
		BuyerID:   strangerID,
		SellerID:  buyerID,
		Resource:  entities.ResourceWood,
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("1.00"),
		Total:     decimal.RequireFromString("3.00"),
	}
	require.NoError(t, repo.Create(ctx, asSeller))

	// Both sides of the ledger are visible to the account
	trades, err := repo.ListByAccount(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, trades, 2)

	none, err := repo.ListByAccount(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, none)

	byID, err := repo.GetByID(ctx, asBuyer.ID)
	require.NoError(t, err)
	require.True(t, byID.Total.Equal(decimal.RequireFromString("200.00")))

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}
