package usecases

import (
	"context"

	"github.com/google/uuid"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/domain/repositories"
)

// AccountUsecase handles profile editing and public profile reads
type AccountUsecase struct {
	accountRepo repositories.AccountRepository
}

// NewAccountUsecase creates a new account usecase
func NewAccountUsecase(accountRepo repositories.AccountRepository) *AccountUsecase {
	return &AccountUsecase{accountRepo: accountRepo}
}

// UpdateProfile updates the editable profile fields. Non-empty values must
// pass the field validators; empty values clear the field.
func (u *AccountUsecase) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *entities.UpdateProfileInput) (*entities.ProfileResponse, error) {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if input.GameProfileURL != "" && !entities.IsValidGameProfileURL(input.GameProfileURL) {
		return nil, domainerrors.BadRequest("game profile URL must point at a profile page")
	}
	if input.ContactHandle != "" && !entities.IsValidContactHandle(input.ContactHandle) {
		return nil, domainerrors.BadRequest("contact handle must contain 10 to 15 digits")
	}

	account.Name = input.Name
	account.GameProfileURL = input.GameProfileURL
	account.ContactHandle = input.ContactHandle

	if err := u.accountRepo.UpdateProfile(ctx, account); err != nil {
		return nil, err
	}

	return &entities.ProfileResponse{
		Account:         account,
		ProfileComplete: account.ProfileComplete(),
	}, nil
}

// GetPublicProfile returns the read-only profile visible to anyone
func (u *AccountUsecase) GetPublicProfile(ctx context.Context, accountID uuid.UUID) (*entities.PublicProfile, error) {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account.PublicProfile(), nil
}
