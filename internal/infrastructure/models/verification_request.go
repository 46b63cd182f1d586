package models

import (
	"time"

	"github.com/google/uuid"
)

type VerificationRequest struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AccountID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(100);not null"`
	GameProfileURL  string    `gorm:"type:varchar(500);not null"`
	ContactHandle   string    `gorm:"type:varchar(100);not null"`
	Status          string    `gorm:"type:varchar(20);not null;index;default:'PENDING'"`
	Resubmission    bool      `gorm:"not null;default:false"`
	ModeratorID     *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string   `gorm:"type:varchar(500)"`
	ResolvedAt      *time.Time
	CreatedAt       time.Time
}
