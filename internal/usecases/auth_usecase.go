package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/domain/repositories"
	"rr-exchange.backend/pkg/jwt"
	"rr-exchange.backend/pkg/logger"
)

// ExternalIdentity is what the identity provider yields for a valid login
type ExternalIdentity struct {
	Key   string
	Name  string
	Email string
}

// ProviderVerifier validates a provider-issued token and resolves the
// identity behind it. The concrete provider client is injected at wiring time.
type ProviderVerifier interface {
	Verify(ctx context.Context, token string) (*ExternalIdentity, error)
}

// AuthUsecase handles sign-on and session issuance
type AuthUsecase struct {
	accountRepo repositories.AccountRepository
	verifier    ProviderVerifier
	jwtService  *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	accountRepo repositories.AccountRepository,
	verifier ProviderVerifier,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		accountRepo: accountRepo,
		verifier:    verifier,
		jwtService:  jwtService,
	}
}

// Login exchanges a provider token for an API session, creating the account
// on first successful sign-on.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	identity, err := u.verifier.Verify(ctx, input.ProviderToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("invalid provider token")
	}

	account, err := u.accountRepo.GetByProviderKey(ctx, identity.Key)
	if errors.Is(err, domainerrors.ErrNotFound) {
		account = &entities.Account{
			ProviderKey: identity.Key,
			Name:        identity.Name,
			Email:       identity.Email,
			Role:        entities.AccountRoleUser,
			Balance:     decimal.Zero,
		}
		if err := u.accountRepo.Create(ctx, account); err != nil {
			return nil, err
		}
		logger.Info(ctx, "Account created on first login", zap.String("account_id", account.ID.String()))
	} else if err != nil {
		return nil, err
	}

	tokens, err := u.jwtService.GenerateTokenPair(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Account:      account,
	}, nil
}

// GetAccount loads the current account with its full inventory
func (u *AuthUsecase) GetAccount(ctx context.Context, accountID uuid.UUID) (*entities.Account, error) {
	return u.accountRepo.GetByID(ctx, accountID)
}
