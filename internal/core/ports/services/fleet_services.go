package services

import (
	"context"

	"github.com/buspago/buspago_backend/internal/core/domain"
)

// FleetSvcFacade exposes the read-only fleet catalog to handlers.
type FleetSvcFacade interface {
	// GetRoute retrieves a route by id.
	GetRoute(ctx context.Context, routeID string) (*domain.Route, error)

	// GetBus retrieves a bus by canonical id.
	GetBus(ctx context.Context, busID string) (*domain.Bus, error)

	// ListRoutes returns every route in the catalog.
	ListRoutes(ctx context.Context) ([]domain.Route, error)

	// ListBuses returns every bus with its current simulated position.
	ListBuses(ctx context.Context) ([]domain.Bus, error)
}
