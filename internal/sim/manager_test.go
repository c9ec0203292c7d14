package sim_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/buspago/buspago_backend/internal/adapters/fleet"
	"github.com/buspago/buspago_backend/internal/metrics"
	"github.com/buspago/buspago_backend/internal/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	mu       sync.Mutex
	messages []sim.PositionMessage
}

func (p *capturingPublisher) PublishPosition(msg sim.PositionMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *capturingPublisher) snapshot() []sim.PositionMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]sim.PositionMessage(nil), p.messages...)
}

func TestTick_JittersAllBuses(t *testing.T) {
	ctx := context.Background()
	catalog := fleet.DefaultCatalog()
	pub := &capturingPublisher{}

	before, err := catalog.ListBuses(ctx)
	require.NoError(t, err)

	manager := sim.NewManager(catalog, catalog, pub, time.Second, metrics.NewCollector(), slog.Default())
	manager.Tick(ctx)

	after, err := catalog.ListBuses(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))

	for i := range after {
		// Drift is bounded by the jitter constant.
		assert.InDelta(t, before[i].Position.Lat, after[i].Position.Lat, 0.002, "bus %s", after[i].BusID)
		assert.InDelta(t, before[i].Position.Lng, after[i].Position.Lng, 0.002, "bus %s", after[i].BusID)
	}

	msgs := pub.snapshot()
	require.Len(t, msgs, len(before))
	for i, msg := range msgs {
		assert.Equal(t, after[i].BusID, msg.BusID)
		assert.Equal(t, after[i].Position.Lat, msg.Lat)
		assert.False(t, msg.Timestamp.IsZero())
	}
}

func TestTick_NilPublisher(t *testing.T) {
	ctx := context.Background()
	catalog := fleet.DefaultCatalog()

	manager := sim.NewManager(catalog, catalog, nil, time.Second, metrics.NewCollector(), slog.Default())
	manager.Tick(ctx) // must not panic
}

func TestStartStop(t *testing.T) {
	catalog := fleet.DefaultCatalog()
	pub := &capturingPublisher{}

	manager := sim.NewManager(catalog, catalog, pub, 5*time.Millisecond, metrics.NewCollector(), slog.Default())
	manager.Start(context.Background())

	assert.Eventually(t, func() bool {
		return len(pub.snapshot()) > 0
	}, time.Second, 5*time.Millisecond)

	manager.Stop()
	count := len(pub.snapshot())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, count, len(pub.snapshot()))
}
