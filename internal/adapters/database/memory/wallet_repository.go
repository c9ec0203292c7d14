// Package memory provides a map-backed wallet store for demo mode
// (no database configured) and tests. It keeps the same two text
// entries and codec as the pgsql adapter.
package memory

import (
	"context"
	"sync"

	"github.com/buspago/buspago_backend/internal/core/domain"
	portsrepo "github.com/buspago/buspago_backend/internal/core/ports/repositories"
	"github.com/buspago/buspago_backend/internal/utils/mapping"
)

// WalletRepository is exported (unlike the pgsql adapter) so tests can
// seed raw entries directly.
type WalletRepository struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewWalletRepository creates an empty in-memory wallet store; the
// first Load yields the default balance and an empty ledger.
func NewWalletRepository() *WalletRepository {
	return &WalletRepository{entries: make(map[string]string)}
}

var _ portsrepo.WalletRepository = (*WalletRepository)(nil)

func (r *WalletRepository) Load(ctx context.Context) (domain.WalletState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return mapping.DecodeWalletState(r.entries[mapping.BalanceKey], r.entries[mapping.HistoryKey]), nil
}

func (r *WalletRepository) Persist(ctx context.Context, state domain.WalletState) error {
	historyText, err := mapping.EncodeHistory(state.History)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[mapping.BalanceKey] = mapping.EncodeBalance(state.Balance)
	r.entries[mapping.HistoryKey] = historyText
	return nil
}

// Seed stores a raw entry value, bypassing the codec. Used by tests to
// simulate pre-existing or corrupt persisted state.
func (r *WalletRepository) Seed(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = value
}
