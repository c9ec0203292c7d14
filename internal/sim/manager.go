// Package sim animates bus positions on a periodic tick. It is purely
// cosmetic collaborator work: it mutates displayed positions through
// the catalog's position writer and never touches settlement state.
package sim

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	portsrepo "github.com/buspago/buspago_backend/internal/core/ports/repositories"
	"github.com/buspago/buspago_backend/internal/metrics"
)

// maxJitter bounds the per-tick random drift in degrees, matching the
// demo's simulated GPS noise.
const maxJitter = 0.002

// PositionMessage is the per-bus payload published on every tick.
type PositionMessage struct {
	BusID     string    `json:"busId"`
	Number    string    `json:"number"`
	RouteID   string    `json:"routeId"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher delivers position messages to interested consumers. A nil
// publisher disables publishing.
type Publisher interface {
	PublishPosition(msg PositionMessage) error
}

// Manager drives the position animation loop.
type Manager struct {
	fleet     portsrepo.FleetRepository
	positions portsrepo.BusPositionWriter
	pub       Publisher
	interval  time.Duration
	metrics   *metrics.Collector
	logger    *slog.Logger
	rng       *rand.Rand

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager creates a simulation manager ticking at the given
// interval.
func NewManager(fleet portsrepo.FleetRepository, positions portsrepo.BusPositionWriter, pub Publisher, interval time.Duration, collector *metrics.Collector, logger *slog.Logger) *Manager {
	return &Manager{
		fleet:     fleet,
		positions: positions,
		pub:       pub,
		interval:  interval,
		metrics:   collector,
		logger:    logger,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start launches the tick loop. Stop or context cancellation ends it.
func (m *Manager) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Tick(ctx)
			}
		}
	}()
	m.logger.Info("Bus position simulation started", slog.Duration("interval", m.interval))
}

// Stop ends the loop and waits for the in-flight tick.
func (m *Manager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
}

// Tick applies one round of bounded random jitter to every bus and
// publishes the new positions.
func (m *Manager) Tick(ctx context.Context) {
	start := time.Now()

	buses, err := m.fleet.ListBuses(ctx)
	if err != nil {
		m.logger.Error("Failed to list buses for simulation tick", slog.String("error", err.Error()))
		return
	}

	now := time.Now()
	for _, bus := range buses {
		pos := bus.Position
		pos.Lat += (m.rng.Float64() - 0.5) * maxJitter
		pos.Lng += (m.rng.Float64() - 0.5) * maxJitter

		if err := m.positions.UpdateBusPosition(ctx, bus.BusID, pos); err != nil {
			m.logger.Warn("Failed to update bus position", slog.String("bus_id", bus.BusID), slog.String("error", err.Error()))
			continue
		}

		if m.pub != nil {
			msg := PositionMessage{
				BusID:     bus.BusID,
				Number:    bus.Number,
				RouteID:   bus.RouteID,
				Lat:       pos.Lat,
				Lng:       pos.Lng,
				Timestamp: now,
			}
			if err := m.pub.PublishPosition(msg); err != nil {
				m.logger.Warn("Failed to publish bus position", slog.String("bus_id", bus.BusID), slog.String("error", err.Error()))
			}
		}
	}

	m.metrics.ObserveSimTick(time.Since(start))
}
