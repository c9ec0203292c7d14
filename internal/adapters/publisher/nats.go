// Package publisher delivers bus position messages over NATS for map
// frontends and other live consumers.
package publisher

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/buspago/buspago_backend/internal/metrics"
	"github.com/buspago/buspago_backend/internal/sim"
)

// subjectPrefix roots every position subject: buses.<routeId>.<busId>.
const subjectPrefix = "buses"

// NATSPublisher publishes position messages to NATS subjects keyed by
// route and bus.
type NATSPublisher struct {
	nc      *nats.Conn
	metrics *metrics.Collector
	logger  *slog.Logger
}

// NewNATSPublisher connects to NATS and wires connection-state
// metrics through the lifecycle handlers.
func NewNATSPublisher(url string, collector *metrics.Collector, logger *slog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("buspago-backend"),
		nats.DisconnectHandler(func(_ *nats.Conn) {
			collector.NATSSetConnected(false)
			logger.Warn("NATS disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			collector.NATSSetConnected(true)
			logger.Info("NATS reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			collector.NATSSetConnected(false)
			logger.Info("NATS connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	collector.NATSSetConnected(true)
	return &NATSPublisher{nc: nc, metrics: collector, logger: logger}, nil
}

var _ sim.Publisher = (*NATSPublisher)(nil)

// PublishPosition sends one position message.
func (p *NATSPublisher) PublishPosition(msg sim.PositionMessage) error {
	subject := fmt.Sprintf("%s.%s.%s", subjectPrefix, subjectToken(msg.RouteID), subjectToken(msg.BusID))
	raw, err := json.Marshal(msg)
	if err != nil {
		p.metrics.NATSPublishErrInc()
		return fmt.Errorf("marshal position message: %w", err)
	}
	if err := p.nc.Publish(subject, raw); err != nil {
		p.metrics.NATSPublishErrInc()
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	p.metrics.NATSPublishedInc()
	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

// subjectToken makes an id safe for use as a NATS subject token.
func subjectToken(id string) string {
	replacer := strings.NewReplacer(".", "_", " ", "_", "*", "_", ">", "_")
	return replacer.Replace(id)
}
