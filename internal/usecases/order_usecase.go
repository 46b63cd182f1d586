package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/domain/repositories"
)

// OrderUsecase handles order book listing, creation and cancellation
type OrderUsecase struct {
	orderRepo   repositories.OrderRepository
	accountRepo repositories.AccountRepository
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	accountRepo repositories.AccountRepository,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
	}
}

// CreateOrder lists a sell order. The seller's inventory is not reserved at
// listing time; units move only when a buy settles.
func (u *OrderUsecase) CreateOrder(ctx context.Context, sellerID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error) {
	if !input.Resource.IsValid() {
		return nil, domainerrors.ErrInvalidResource
	}
	if input.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, domainerrors.ErrInvalidAmount
	}
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if _, err := u.accountRepo.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}

	order := &entities.Order{
		SellerID:  sellerID,
		Resource:  input.Resource,
		UnitPrice: input.UnitPrice,
		Quantity:  input.Quantity,
	}
	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// CancelOrder deletes an order. Only the owner may cancel.
func (u *OrderUsecase) CancelOrder(ctx context.Context, accountID, orderID uuid.UUID) error {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.SellerID != accountID {
		return domainerrors.ErrForbidden
	}
	return u.orderRepo.Delete(ctx, orderID)
}

// ListOrderBook lists the open orders for one resource, cheapest first, with
// the seller's public profile attached for display.
func (u *OrderUsecase) ListOrderBook(ctx context.Context, resource entities.Resource) ([]*entities.Order, error) {
	if !resource.IsValid() {
		return nil, domainerrors.ErrInvalidResource
	}

	orders, err := u.orderRepo.ListByResource(ctx, resource)
	if err != nil {
		return nil, err
	}

	sellers := make(map[uuid.UUID]*entities.PublicProfile)
	for _, order := range orders {
		profile, ok := sellers[order.SellerID]
		if !ok {
			seller, err := u.accountRepo.GetByID(ctx, order.SellerID)
			if err != nil {
				continue
			}
			profile = seller.PublicProfile()
			sellers[order.SellerID] = profile
		}
		order.Seller = profile
	}
	return orders, nil
}

// ListOwnOrders lists the caller's open orders
func (u *OrderUsecase) ListOwnOrders(ctx context.Context, accountID uuid.UUID) ([]*entities.Order, error) {
	return u.orderRepo.ListBySeller(ctx, accountID)
}
