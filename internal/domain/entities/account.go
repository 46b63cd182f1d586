package entities

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRole represents account roles
type AccountRole string

const (
	AccountRoleAdmin AccountRole = "ADMIN"
	AccountRoleUser  AccountRole = "USER"
)

// Account represents a user's identity, balance and inventory record
type Account struct {
	ID             uuid.UUID           `json:"id"`
	ProviderKey    string              `json:"-"`
	Email          string              `json:"email"`
	Name           string              `json:"name"`
	Role           AccountRole         `json:"role"`
	Balance        decimal.Decimal     `json:"balance"`
	Inventory      map[Resource]int64  `json:"inventory"`
	GameProfileURL string              `json:"gameProfileUrl"`
	ContactHandle  string              `json:"contactHandle"`
	Verified       bool                `json:"verified"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

var (
	gameProfileURLPattern = regexp.MustCompile(`^(https?://)?\S+#slide/profile/\d+$`)
	nonDigitPattern       = regexp.MustCompile(`\D`)
)

// IsValidGameProfileURL reports whether the URL points at an in-game profile
// page. The scheme is optional; the path must end in #slide/profile/<digits>.
func IsValidGameProfileURL(url string) bool {
	return gameProfileURLPattern.MatchString(url)
}

// IsValidContactHandle reports whether the handle contains 10 to 15 digits
// after stripping every non-digit character.
func IsValidContactHandle(handle string) bool {
	digits := nonDigitPattern.ReplaceAllString(handle, "")
	return len(digits) >= 10 && len(digits) <= 15
}

// ProfileComplete reports whether all fields required for verification
// eligibility are filled in and valid. Derived from current state, never stored.
func (a *Account) ProfileComplete() bool {
	return a.Name != "" &&
		IsValidGameProfileURL(a.GameProfileURL) &&
		IsValidContactHandle(a.ContactHandle)
}

// LoginInput represents input for exchanging a provider token for a session
type LoginInput struct {
	ProviderToken string `json:"providerToken" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	Account      *Account `json:"account"`
}

// UpdateProfileInput represents input for editing profile fields
type UpdateProfileInput struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	GameProfileURL string `json:"gameProfileUrl"`
	ContactHandle  string `json:"contactHandle"`
}

// ProfileResponse is returned after a profile edit
type ProfileResponse struct {
	Account         *Account `json:"account"`
	ProfileComplete bool     `json:"profileComplete"`
}

// PublicProfile is the read-only profile visible to anyone
type PublicProfile struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	GameProfileURL string    `json:"gameProfileUrl"`
	Verified       bool      `json:"verified"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PublicProfile projects the account into its public view
func (a *Account) PublicProfile() *PublicProfile {
	return &PublicProfile{
		ID:             a.ID,
		Name:           a.Name,
		GameProfileURL: a.GameProfileURL,
		Verified:       a.Verified,
		CreatedAt:      a.CreatedAt,
	}
}

// OverrideBalanceInput represents an admin balance override
type OverrideBalanceInput struct {
	Balance decimal.Decimal `json:"balance" binding:"required"`
}
