package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DepositRequest struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Description     string          `gorm:"type:varchar(500)"`
	Status          string          `gorm:"type:varchar(20);not null;index;default:'PENDING'"`
	ModeratorID     *uuid.UUID      `gorm:"type:uuid"`
	RejectionReason *string         `gorm:"type:varchar(500)"`
	ResolvedAt      *time.Time
	CreatedAt       time.Time
}
