package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProviderKey    string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email          string          `gorm:"type:varchar(255);not null"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Role           string          `gorm:"type:varchar(50);not null;default:'USER'"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0"`
	GameProfileURL string          `gorm:"type:varchar(500)"`
	ContactHandle  string          `gorm:"type:varchar(100)"`
	Verified       bool            `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Holding is one row of an account's inventory, keyed by resource symbol.
type Holding struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_holdings_account_resource"`
	Resource  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_holdings_account_resource"`
	Quantity  int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time
}
