package services

import (
	"context"

	"github.com/buspago/buspago_backend/internal/core/domain"
)

// ScannerSvcFacade resolves raw QR payloads into pending transactions.
//
// Resolve accepts any of the encodings the demo produces (JSON object
// with a busId/id field, BUS-prefixed plain string, bare number) and
// fails with an error wrapping apperrors.ErrUnrecognized when no bus
// in the catalog matches. The failure carries the raw payload and the
// derived candidate for diagnostics and must not be treated as fatal.
type ScannerSvcFacade interface {
	Resolve(ctx context.Context, rawPayload string) (*domain.PendingTransaction, error)
}
