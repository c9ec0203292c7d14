package services

import (
	"context"

	"github.com/buspago/buspago_backend/internal/core/domain"
)

// WalletReaderSvc defines read operations over the balance and ledger.
type WalletReaderSvc interface {
	// Snapshot returns the current balance and ledger (newest first).
	Snapshot(ctx context.Context) domain.WalletState

	// Pending returns the in-flight scan-resolved trip, or an error
	// wrapping apperrors.ErrNoPendingTrip when there is none.
	Pending(ctx context.Context) (*domain.PendingTransaction, error)

	// Summary aggregates the ledger into trip count, total spent and
	// average fare.
	Summary(ctx context.Context) domain.TravelSummary
}

// WalletWriterSvc defines the mutating wallet operations. Balance and
// ledger are only ever mutated through these.
type WalletWriterSvc interface {
	// StagePending records a resolved scan as the single pending
	// transaction, superseding any previous one. Returns the staged
	// copy together with the current balance for display.
	StagePending(ctx context.Context, pending domain.PendingTransaction) (*domain.PendingTransaction, int64)

	// AbandonPending discards the pending transaction, if any. Called
	// when the user navigates away from the payment screen.
	AbandonPending(ctx context.Context)

	// Settle debits the pending trip's fare, prepends a trip record to
	// the ledger and persists both as one write. Fails with an error
	// wrapping apperrors.ErrNoPendingTrip, apperrors.ErrNotFound
	// (unknown bus or route) or apperrors.ErrInsufficientBalance; the
	// failure paths mutate nothing.
	Settle(ctx context.Context) (*domain.SettlementResult, error)

	// Recharge credits a positive amount and persists. Amounts <= 0
	// fail with an error wrapping apperrors.ErrInvalidAmount and
	// mutate nothing.
	Recharge(ctx context.Context, amount int64) (*domain.RechargeResult, error)
}

// WalletSvcFacade combines all wallet operations.
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}

// StatementSvcFacade renders the wallet into downloadable documents.
type StatementSvcFacade interface {
	// RenderStatement produces a PDF account statement and a suggested
	// file name.
	RenderStatement(ctx context.Context) ([]byte, string, error)
}
