// Package fleet holds the in-memory fleet registry. The catalog is
// static configuration loaded at process start; bus positions are the
// only mutable data and belong to the position simulator.
package fleet

import (
	"context"
	"fmt"
	"sync"

	"github.com/buspago/buspago_backend/internal/apperrors"
	"github.com/buspago/buspago_backend/internal/core/domain"
	portsrepo "github.com/buspago/buspago_backend/internal/core/ports/repositories"
)

// Catalog implements the fleet repository over fixed in-memory data.
// Lookup is a linear scan; the set is a few dozen entries at most.
type Catalog struct {
	mu     sync.RWMutex
	routes []domain.Route
	buses  []domain.Bus
}

// NewCatalog creates a catalog over the given routes and buses.
func NewCatalog(routes []domain.Route, buses []domain.Bus) *Catalog {
	return &Catalog{
		routes: append([]domain.Route(nil), routes...),
		buses:  append([]domain.Bus(nil), buses...),
	}
}

var (
	_ portsrepo.FleetRepository   = (*Catalog)(nil)
	_ portsrepo.BusPositionWriter = (*Catalog)(nil)
)

func (c *Catalog) FindRoute(ctx context.Context, routeID string) (*domain.Route, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.routes {
		if c.routes[i].RouteID == routeID {
			route := c.routes[i]
			return &route, nil
		}
	}
	return nil, fmt.Errorf("route %q: %w", routeID, apperrors.ErrNotFound)
}

func (c *Catalog) FindBus(ctx context.Context, busID string) (*domain.Bus, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.buses {
		if c.buses[i].BusID == busID {
			bus := c.buses[i]
			return &bus, nil
		}
	}
	return nil, fmt.Errorf("bus %q: %w", busID, apperrors.ErrNotFound)
}

func (c *Catalog) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Route(nil), c.routes...), nil
}

func (c *Catalog) ListBuses(ctx context.Context) ([]domain.Bus, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Bus(nil), c.buses...), nil
}

// UpdateBusPosition moves a bus on the map. Only the simulator calls
// this; settlement never reads positions.
func (c *Catalog) UpdateBusPosition(ctx context.Context, busID string, pos domain.LatLng) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.buses {
		if c.buses[i].BusID == busID {
			c.buses[i].Position = pos
			return nil
		}
	}
	return fmt.Errorf("bus %q: %w", busID, apperrors.ErrNotFound)
}
