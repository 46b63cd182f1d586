package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationRequest represents one submission for identity verification.
// Rejected requests are never reopened; a resubmission creates a new record,
// so the full moderation history accumulates per account.
type VerificationRequest struct {
	ID              uuid.UUID     `json:"id"`
	AccountID       uuid.UUID     `json:"accountId"`
	Name            string        `json:"name"`
	GameProfileURL  string        `json:"gameProfileUrl"`
	ContactHandle   string        `json:"contactHandle"`
	Status          RequestStatus `json:"status"`
	Resubmission    bool          `json:"resubmission"`
	ModeratorID     *uuid.UUID    `json:"moderatorId,omitempty"`
	RejectionReason null.String   `json:"rejectionReason,omitempty"`
	ResolvedAt      *time.Time    `json:"resolvedAt,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`

	// Joins
	Account *PublicProfile `json:"account,omitempty"`
}

// VerificationCooldown is how long an account must wait after a rejection
// before submitting again, measured from the rejection timestamp.
const VerificationCooldown = 24 * time.Hour
