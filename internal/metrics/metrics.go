package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Settlement failure reasons used as label values.
const (
	ReasonInsufficientBalance = "insufficient_balance"
	ReasonUnknownBus          = "unknown_bus"
	ReasonUnknownRoute        = "unknown_route"
	ReasonNoPending           = "no_pending"
)

// Collector owns the application's Prometheus registry. All recording
// methods are nil-receiver safe so metrics stay optional wiring.
type Collector struct {
	reg *prometheus.Registry

	SettlementsTotal   prometheus.Counter
	SettlementFailures *prometheus.CounterVec // reason label
	RechargesTotal     prometheus.Counter
	ScanResolutions    *prometheus.CounterVec // outcome label: resolved|unrecognized
	Balance            prometheus.Gauge

	SimTickDuration prometheus.Histogram

	NATSPublished   prometheus.Counter
	NATSPublishErrs prometheus.Counter
	NATSConnected   prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		SettlementsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "buspago_settlements_total",
			Help: "Total successful fare settlements.",
		}),
		SettlementFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "buspago_settlement_failures_total",
			Help: "Total rejected settlements by reason.",
		}, []string{"reason"}),
		RechargesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "buspago_recharges_total",
			Help: "Total successful balance recharges.",
		}),
		ScanResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "buspago_scan_resolutions_total",
			Help: "Total QR payload resolutions by outcome.",
		}, []string{"outcome"}),
		Balance: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "buspago_balance",
			Help: "Current stored balance in COP.",
		}),
		SimTickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "buspago_sim_tick_duration_seconds",
			Help:    "Duration of bus position simulation ticks.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		NATSPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "buspago_nats_published_total",
			Help: "Total NATS position messages published.",
		}),
		NATSPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "buspago_nats_publish_errors_total",
			Help: "Total NATS publish errors.",
		}),
		NATSConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "buspago_nats_connected",
			Help: "1 if the NATS connection is established, 0 otherwise.",
		}),
	}

	reg.MustRegister(
		c.SettlementsTotal, c.SettlementFailures, c.RechargesTotal,
		c.ScanResolutions, c.Balance, c.SimTickDuration,
		c.NATSPublished, c.NATSPublishErrs, c.NATSConnected,
	)

	return c
}

// Handler serves the registry over HTTP.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

func (c *Collector) SettleSucceeded(newBalance int64) {
	if c == nil {
		return
	}
	c.SettlementsTotal.Inc()
	c.Balance.Set(float64(newBalance))
}

func (c *Collector) SettleFailed(reason string) {
	if c == nil {
		return
	}
	c.SettlementFailures.WithLabelValues(reason).Inc()
}

func (c *Collector) RechargeSucceeded(newBalance int64) {
	if c == nil {
		return
	}
	c.RechargesTotal.Inc()
	c.Balance.Set(float64(newBalance))
}

func (c *Collector) ScanResolved(outcome string) {
	if c == nil {
		return
	}
	c.ScanResolutions.WithLabelValues(outcome).Inc()
}

func (c *Collector) SetBalance(balance int64) {
	if c == nil {
		return
	}
	c.Balance.Set(float64(balance))
}

func (c *Collector) ObserveSimTick(d time.Duration) {
	if c == nil {
		return
	}
	c.SimTickDuration.Observe(d.Seconds())
}

func (c *Collector) NATSPublishedInc() {
	if c == nil {
		return
	}
	c.NATSPublished.Inc()
}

func (c *Collector) NATSPublishErrInc() {
	if c == nil {
		return
	}
	c.NATSPublishErrs.Inc()
}

func (c *Collector) NATSSetConnected(connected bool) {
	if c == nil {
		return
	}
	if connected {
		c.NATSConnected.Set(1)
	} else {
		c.NATSConnected.Set(0)
	}
}
