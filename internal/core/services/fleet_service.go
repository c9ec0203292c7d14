package services

import (
	"context"
	"fmt"

	"github.com/buspago/buspago_backend/internal/core/domain"
	portsrepo "github.com/buspago/buspago_backend/internal/core/ports/repositories"
	portssvc "github.com/buspago/buspago_backend/internal/core/ports/services"
)

// fleetService exposes the read-only fleet catalog.
type fleetService struct {
	fleet portsrepo.FleetRepository
}

// NewFleetService creates a new fleet catalog service.
func NewFleetService(fleet portsrepo.FleetRepository) portssvc.FleetSvcFacade {
	return &fleetService{fleet: fleet}
}

var _ portssvc.FleetSvcFacade = (*fleetService)(nil)

func (s *fleetService) GetRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	route, err := s.fleet.FindRoute(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("get route %q: %w", routeID, err)
	}
	return route, nil
}

func (s *fleetService) GetBus(ctx context.Context, busID string) (*domain.Bus, error) {
	bus, err := s.fleet.FindBus(ctx, busID)
	if err != nil {
		return nil, fmt.Errorf("get bus %q: %w", busID, err)
	}
	return bus, nil
}

func (s *fleetService) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	return s.fleet.ListRoutes(ctx)
}

func (s *fleetService) ListBuses(ctx context.Context) ([]domain.Bus, error) {
	return s.fleet.ListBuses(ctx)
}
