package services

import (
	"context"

	portsrepo "github.com/buspago/buspago_backend/internal/core/ports/repositories"
	portssvc "github.com/buspago/buspago_backend/internal/core/ports/services"
	"github.com/buspago/buspago_backend/internal/metrics"
)

// NewContainer creates the service container with properly initialized
// dependencies. The wallet service loads its persisted state here, so
// construction can fail on storage errors.
func NewContainer(ctx context.Context, repos *portsrepo.RepositoryProvider, collector *metrics.Collector) (*portssvc.ServiceContainer, error) {
	wallet, err := NewWalletService(ctx, repos.Wallet, repos.Fleet, collector)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Fleet:     NewFleetService(repos.Fleet),
		Scanner:   NewScannerService(repos.Fleet, collector),
		Wallet:    wallet,
		Statement: NewStatementService(wallet),
	}, nil
}
