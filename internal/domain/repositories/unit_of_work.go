package repositories

import (
	"context"
)

// UnitOfWork executes multi-repository mutations atomically. Settlement and
// moderation flows must run entirely inside one Do scope.
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
