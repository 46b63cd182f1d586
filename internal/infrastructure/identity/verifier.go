package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/usecases"
)

type providerClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SharedSecretVerifier validates provider tokens signed with a shared
// HMAC secret. The subject claim carries the provider's account key.
type SharedSecretVerifier struct {
	secret string
}

// NewSharedSecretVerifier creates a verifier for provider-issued tokens
func NewSharedSecretVerifier(secret string) *SharedSecretVerifier {
	return &SharedSecretVerifier{secret: secret}
}

// Verify validates the token signature and expiry and resolves the identity
func (v *SharedSecretVerifier) Verify(ctx context.Context, tokenString string) (*usecases.ExternalIdentity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &providerClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized
	}

	claims, ok := token.Claims.(*providerClaims)
	if !ok || claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	return &usecases.ExternalIdentity{
		Key:   claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
	}, nil
}
