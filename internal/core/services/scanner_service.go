package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/buspago/buspago_backend/internal/apperrors"
	"github.com/buspago/buspago_backend/internal/core/domain"
	portsrepo "github.com/buspago/buspago_backend/internal/core/ports/repositories"
	portssvc "github.com/buspago/buspago_backend/internal/core/ports/services"
	"github.com/buspago/buspago_backend/internal/metrics"
	"github.com/buspago/buspago_backend/internal/middleware"
)

// busIDKeyPattern extracts the value following a busId key in loose
// plain-text payloads, tolerating '=' or ':' separators and optional
// quoting (busId=BUS-001, "busId": "BUS-001", busId:3 ...).
var busIDKeyPattern = regexp.MustCompile(`(?i)busId["']?\s*[:=]\s*["']?([A-Za-z0-9-]+)`)

// busIDAliases are hard-coded legacy payloads kept from the earliest
// demo QR stickers, which carried neither prefix nor structure.
var busIDAliases = map[string]string{
	"3":    "BUS-003",
	"bus3": "BUS-003",
}

// scannerService turns raw scanned strings into pending transactions.
// The same logical payload arrives in three encodings (JSON object,
// BUS-prefixed text, bare number), so resolution is an ordered chain
// of strategies rather than a single parse.
type scannerService struct {
	fleet   portsrepo.FleetRepository
	metrics *metrics.Collector
}

// NewScannerService creates the QR payload resolver.
func NewScannerService(fleet portsrepo.FleetRepository, collector *metrics.Collector) portssvc.ScannerSvcFacade {
	return &scannerService{fleet: fleet, metrics: collector}
}

var _ portssvc.ScannerSvcFacade = (*scannerService)(nil)

// Resolve implements the tolerance ladder: extract a candidate id from
// the payload, normalize it to the canonical BUS-NNN form, then match
// it against the catalog. A miss is reported, never fatal.
func (s *scannerService) Resolve(ctx context.Context, rawPayload string) (*domain.PendingTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	candidate := extractCandidate(rawPayload)
	normalized := normalizeCandidate(candidate)

	bus, err := s.matchBus(ctx, normalized)
	if err != nil {
		s.metrics.ScanResolved("unrecognized")
		logger.Warn("QR payload did not resolve to a bus",
			slog.String("payload", rawPayload),
			slog.String("candidate", normalized),
		)
		return nil, fmt.Errorf("%w: payload %q (candidate %q)", apperrors.ErrUnrecognized, rawPayload, normalized)
	}

	route, err := s.fleet.FindRoute(ctx, bus.RouteID)
	if err != nil {
		// Registry data is consistent in practice, but a dangling route
		// reference must surface as a lookup miss, not a crash.
		s.metrics.ScanResolved("unrecognized")
		return nil, fmt.Errorf("route %q for bus %q: %w", bus.RouteID, bus.BusID, err)
	}

	s.metrics.ScanResolved("resolved")
	logger.Info("QR payload resolved",
		slog.String("bus_id", bus.BusID),
		slog.String("route_id", route.RouteID),
		slog.Int64("fare", route.Fare),
	)

	return &domain.PendingTransaction{
		BusID:     bus.BusID,
		BusNumber: bus.Number,
		RouteName: route.Name,
		Fare:      route.Fare,
		ScannedAt: time.Now(),
	}, nil
}

// extractCandidate derives a candidate bus id from the raw payload:
// structured JSON decode first (busId field, then id), then the
// plain-text heuristics, in priority order.
func extractCandidate(raw string) string {
	text := strings.TrimSpace(raw)

	if candidate, ok := decodeStructuredPayload(text); ok {
		return candidate
	}

	if strings.Contains(text, domain.BusIDPrefix) {
		return text
	}
	if strings.Contains(text, "busId") {
		if m := busIDKeyPattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return text
}

// decodeStructuredPayload attempts a JSON object decode and returns
// the trimmed busId (or, failing that, id) field value. Numeric field
// values are accepted; later demo stickers emitted {"busId": 3}.
func decodeStructuredPayload(text string) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return "", false
	}

	for _, key := range []string{"busId", "id"} {
		if v, ok := obj[key]; ok {
			switch val := v.(type) {
			case string:
				return strings.TrimSpace(val), true
			case json.Number:
				return val.String(), true
			}
		}
	}
	return "", false
}

// normalizeCandidate rewrites the candidate into canonical BUS-NNN
// form. Digit-only candidates are prefixed and left-padded with zeros
// to a minimum width of three; longer digit strings are kept as-is
// ("12" -> BUS-012, "1234" -> BUS-1234).
func normalizeCandidate(candidate string) string {
	candidate = strings.TrimSpace(candidate)

	if alias, ok := busIDAliases[strings.ToLower(candidate)]; ok {
		return alias
	}
	if strings.HasPrefix(candidate, domain.BusIDPrefix) {
		return candidate
	}
	if candidate != "" && isDigits(candidate) {
		return domain.BusIDPrefix + padBusNumber(candidate)
	}
	return candidate
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func padBusNumber(digits string) string {
	for len(digits) < 3 {
		digits = "0" + digits
	}
	return digits
}

// matchBus resolves the normalized candidate against the catalog using
// three equality strategies in order: exact id, id with the canonical
// prefix stripped from both sides, and the bus display number. First
// match wins.
func (s *scannerService) matchBus(ctx context.Context, candidate string) (*domain.Bus, error) {
	if candidate == "" {
		return nil, apperrors.ErrNotFound
	}

	buses, err := s.fleet.ListBuses(ctx)
	if err != nil {
		return nil, err
	}

	stripped := strings.TrimPrefix(candidate, domain.BusIDPrefix)
	for _, strategy := range []func(domain.Bus) bool{
		func(b domain.Bus) bool { return b.BusID == candidate },
		func(b domain.Bus) bool { return strings.TrimPrefix(b.BusID, domain.BusIDPrefix) == stripped },
		func(b domain.Bus) bool { return b.Number == stripped },
	} {
		for i := range buses {
			if strategy(buses[i]) {
				return &buses[i], nil
			}
		}
	}
	return nil, apperrors.ErrNotFound
}
