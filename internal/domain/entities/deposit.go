package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// RequestStatus represents the moderation state of a queued request.
// PENDING has exactly one legal forward transition, to APPROVED or REJECTED.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// DepositRequest represents a user's request to credit their balance,
// moderated by an administrator
type DepositRequest struct {
	ID              uuid.UUID       `json:"id"`
	AccountID       uuid.UUID       `json:"accountId"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	Status          RequestStatus   `json:"status"`
	ModeratorID     *uuid.UUID      `json:"moderatorId,omitempty"`
	RejectionReason null.String     `json:"rejectionReason,omitempty"`
	ResolvedAt      *time.Time      `json:"resolvedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`

	// Joins
	Account *PublicProfile `json:"account,omitempty"`
}

// CreateDepositInput represents input for a deposit request
type CreateDepositInput struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
}

// RejectRequestInput carries the moderator's rejection reason
type RejectRequestInput struct {
	Reason string `json:"reason" binding:"required,max=500"`
}
