package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeSide is the viewpoint of one party on a trade. It is derived by
// comparing the requesting account to the buyer and seller keys, never stored.
type TradeSide string

const (
	TradeSidePurchase TradeSide = "PURCHASE"
	TradeSideSale     TradeSide = "SALE"
)

// Trade represents an immutable record of one completed settlement
type Trade struct {
	ID        uuid.UUID       `json:"id"`
	BuyerID   uuid.UUID       `json:"buyerId"`
	SellerID  uuid.UUID       `json:"sellerId"`
	Resource  Resource        `json:"resource"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SideFor returns the trade side as seen by the given account
func (t *Trade) SideFor(accountID uuid.UUID) TradeSide {
	if t.BuyerID == accountID {
		return TradeSidePurchase
	}
	return TradeSideSale
}

// IsParty reports whether the account is the buyer or the seller
func (t *Trade) IsParty(accountID uuid.UUID) bool {
	return t.BuyerID == accountID || t.SellerID == accountID
}

// TradeView is a trade annotated with the requesting account's side
type TradeView struct {
	*Trade
	Side TradeSide `json:"side"`
}

// SettlementResponse confirms a completed buy
type SettlementResponse struct {
	Trade          *Trade          `json:"trade"`
	Balance        decimal.Decimal `json:"balance"`
	OrderRemaining int64           `json:"orderRemaining"`
	OrderClosed    bool            `json:"orderClosed"`
}
