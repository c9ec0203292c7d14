package repositories

import (
	"context"

	"github.com/buspago/buspago_backend/internal/core/domain"
)

// FleetRepository provides read access to the static route and bus
// catalog. Lookups miss with apperrors.ErrNotFound; callers treat a
// miss as a recoverable resolution failure, never a crash.
type FleetRepository interface {
	// FindRoute retrieves a route by its exact id.
	FindRoute(ctx context.Context, routeID string) (*domain.Route, error)

	// FindBus retrieves a bus by its exact canonical id.
	FindBus(ctx context.Context, busID string) (*domain.Bus, error)

	// ListRoutes returns all routes in the catalog.
	ListRoutes(ctx context.Context) ([]domain.Route, error)

	// ListBuses returns all buses with their current positions.
	ListBuses(ctx context.Context) ([]domain.Bus, error)
}

// BusPositionWriter is the mutation surface used by the position
// simulator. Identity fields are never touched through it.
type BusPositionWriter interface {
	UpdateBusPosition(ctx context.Context, busID string, pos domain.LatLng) error
}
