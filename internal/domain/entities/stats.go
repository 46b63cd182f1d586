package entities

// ExchangeStats is the admin dashboard summary
type ExchangeStats struct {
	Accounts             int64 `json:"accounts"`
	OpenOrders           int64 `json:"openOrders"`
	Trades               int64 `json:"trades"`
	PendingDeposits      int64 `json:"pendingDeposits"`
	PendingVerifications int64 `json:"pendingVerifications"`
}
