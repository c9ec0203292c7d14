package repositories

import (
	"context"

	"github.com/buspago/buspago_backend/internal/core/domain"
)

// WalletRepository persists the single user's balance and trip ledger
// under the two stable state keys (userBalance, tripHistory).
//
// Load must degrade gracefully: absent or unparseable stored state
// yields domain.DefaultBalance and an empty ledger, never an error.
// This is the system's sole silent-recovery path.
type WalletRepository interface {
	Load(ctx context.Context) (domain.WalletState, error)
	Persist(ctx context.Context, state domain.WalletState) error
}

// RepositoryProvider bundles the repositories the service container
// needs.
type RepositoryProvider struct {
	Fleet  FleetRepository
	Wallet WalletRepository
}
