package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents a standing offer to sell a fixed quantity of one resource
// at a fixed unit price. Quantity is strictly positive while the order exists;
// an order reaching zero quantity is deleted.
type Order struct {
	ID        uuid.UUID       `json:"id"`
	SellerID  uuid.UUID       `json:"sellerId"`
	Resource  Resource        `json:"resource"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int64           `json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`

	// Joins
	Seller *PublicProfile `json:"seller,omitempty"`
}

// Total returns the full value of the remaining quantity
func (o *Order) Total() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(o.Quantity))
}

// CreateOrderInput represents input for listing a sell order
type CreateOrderInput struct {
	Resource  Resource        `json:"resource" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required"`
}

// BuyOrderInput represents input for buying against an existing order
type BuyOrderInput struct {
	Quantity int64 `json:"quantity" binding:"required"`
}
