package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/buspago/buspago_backend/internal/core/domain"
	portsrepo "github.com/buspago/buspago_backend/internal/core/ports/repositories"
	"github.com/buspago/buspago_backend/internal/utils/mapping"
)

// walletRepository persists the wallet as two key-value rows in the
// app_state table, mirroring the browser demo's localStorage entries.
type walletRepository struct {
	pool *pgxpool.Pool
}

// NewWalletRepository creates a new repository for the wallet state.
func NewWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepository {
	return &walletRepository{pool: pool}
}

var _ portsrepo.WalletRepository = (*walletRepository)(nil)

// Load reads both state entries. Missing rows and unparseable values
// degrade to the defaults through the shared codec; only transport
// errors surface.
func (r *walletRepository) Load(ctx context.Context) (domain.WalletState, error) {
	query := `
		SELECT key, value
		FROM app_state
		WHERE key = ANY($1);
	`
	rows, err := r.pool.Query(ctx, query, []string{mapping.BalanceKey, mapping.HistoryKey})
	if err != nil {
		return domain.WalletState{}, fmt.Errorf("failed to load wallet state: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, 2)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return domain.WalletState{}, fmt.Errorf("failed to scan wallet state row: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return domain.WalletState{}, fmt.Errorf("failed to read wallet state rows: %w", err)
	}

	return mapping.DecodeWalletState(values[mapping.BalanceKey], values[mapping.HistoryKey]), nil
}

// Persist upserts both entries inside one transaction so the
// balance+ledger pair always reflects the same logical mutation.
func (r *walletRepository) Persist(ctx context.Context, state domain.WalletState) error {
	historyText, err := mapping.EncodeHistory(state.History)
	if err != nil {
		return fmt.Errorf("failed to encode trip history: %w", err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin wallet persist: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now();
	`
	if _, err := tx.Exec(ctx, query, mapping.BalanceKey, mapping.EncodeBalance(state.Balance)); err != nil {
		return fmt.Errorf("failed to persist balance: %w", err)
	}
	if _, err := tx.Exec(ctx, query, mapping.HistoryKey, historyText); err != nil {
		return fmt.Errorf("failed to persist trip history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit wallet persist: %w", err)
	}
	return nil
}
