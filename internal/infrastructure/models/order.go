package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SellerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Resource  string          `gorm:"type:varchar(20);not null;index"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Quantity  int64           `gorm:"not null"`
	CreatedAt time.Time
}
