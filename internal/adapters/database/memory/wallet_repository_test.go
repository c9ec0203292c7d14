package memory_test

import (
	"context"
	"testing"

	"github.com/buspago/buspago_backend/internal/adapters/database/memory"
	"github.com/buspago/buspago_backend/internal/core/domain"
	"github.com/buspago/buspago_backend/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FreshStore(t *testing.T) {
	repo := memory.NewWalletRepository()

	state, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBalance, state.Balance)
	assert.Empty(t, state.History)
}

func TestPersistLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWalletRepository()

	in := domain.WalletState{
		Balance: 7500,
		History: []domain.TripRecord{
			{Date: "1 March 2026, 08:15", Bus: "101", Route: "Ruta 1 - Centro", Amount: 2500},
		},
	}
	require.NoError(t, repo.Persist(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoad_CorruptEntriesDegrade(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWalletRepository()
	repo.Seed(mapping.BalanceKey, "not a number")
	repo.Seed(mapping.HistoryKey, "{broken")

	state, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBalance, state.Balance)
	assert.Empty(t, state.History)
}

func TestLoad_PartialCorruption(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewWalletRepository()
	repo.Seed(mapping.BalanceKey, "4200")
	repo.Seed(mapping.HistoryKey, "not json")

	state, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4200), state.Balance)
	assert.Empty(t, state.History)
}
