package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buspago/buspago_backend/internal/apperrors"
	"github.com/buspago/buspago_backend/internal/core/domain"
	portsrepo "github.com/buspago/buspago_backend/internal/core/ports/repositories"
	portssvc "github.com/buspago/buspago_backend/internal/core/ports/services"
	"github.com/buspago/buspago_backend/internal/metrics"
	"github.com/buspago/buspago_backend/internal/middleware"
)

// InsufficientBalanceError reports a settlement rejected because the
// stored balance does not cover the fare. It unwraps to
// apperrors.ErrInsufficientBalance.
type InsufficientBalanceError struct {
	Fare    int64
	Balance int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: fare %d exceeds balance %d", e.Fare, e.Balance)
}

func (e *InsufficientBalanceError) Unwrap() error { return apperrors.ErrInsufficientBalance }

// walletService owns the balance and trip ledger for the session. The
// pair is loaded once at startup, held in memory, and written back as
// one unit after every mutation, so the two never observably diverge.
// A mutex serializes the mutators; settlement is atomic from the
// caller's perspective.
type walletService struct {
	fleet   portsrepo.FleetRepository
	repo    portsrepo.WalletRepository
	metrics *metrics.Collector

	mu      sync.Mutex
	balance int64
	history []domain.TripRecord
	pending *domain.PendingTransaction
}

// NewWalletService loads the persisted wallet state and returns the
// wallet service. Absent or corrupt stored state silently falls back
// to the default balance and an empty ledger inside the repository.
func NewWalletService(ctx context.Context, repo portsrepo.WalletRepository, fleet portsrepo.FleetRepository, collector *metrics.Collector) (portssvc.WalletSvcFacade, error) {
	state, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load wallet state: %w", err)
	}
	collector.SetBalance(state.Balance)
	return &walletService{
		fleet:   fleet,
		repo:    repo,
		metrics: collector,
		balance: state.Balance,
		history: state.History,
	}, nil
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) Snapshot(ctx context.Context) domain.WalletState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.WalletState{
		Balance: s.balance,
		History: append([]domain.TripRecord(nil), s.history...),
	}
}

func (s *walletService) Pending(ctx context.Context) (*domain.PendingTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return nil, apperrors.ErrNoPendingTrip
	}
	p := *s.pending
	return &p, nil
}

func (s *walletService) Summary(ctx context.Context) domain.TravelSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := domain.TravelSummary{
		TripCount:   len(s.history),
		AverageFare: decimal.Zero,
	}
	for _, trip := range s.history {
		summary.TotalSpent += trip.Amount
	}
	if summary.TripCount > 0 {
		summary.AverageFare = decimal.NewFromInt(summary.TotalSpent).
			DivRound(decimal.NewFromInt(int64(summary.TripCount)), 2)
	}
	return summary
}

func (s *walletService) StagePending(ctx context.Context, pending domain.PendingTransaction) (*domain.PendingTransaction, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A new scan supersedes whatever was pending before; the old one is
	// simply discarded, no explicit cancellation required.
	s.pending = &pending
	staged := pending
	return &staged, s.balance
}

func (s *walletService) AbandonPending(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// Settle performs the atomic check-then-debit-then-record step for the
// pending trip. Side effects occur only on the success path.
func (s *walletService) Settle(ctx context.Context) (*domain.SettlementResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		s.metrics.SettleFailed(metrics.ReasonNoPending)
		return nil, apperrors.ErrNoPendingTrip
	}
	pending := *s.pending

	bus, err := s.fleet.FindBus(ctx, pending.BusID)
	if err != nil {
		s.metrics.SettleFailed(metrics.ReasonUnknownBus)
		return nil, fmt.Errorf("settle bus %q: %w", pending.BusID, err)
	}
	route, err := s.fleet.FindRoute(ctx, bus.RouteID)
	if err != nil {
		// Should not occur with consistent catalog data, but a dangling
		// route id is handled, not assumed away.
		s.metrics.SettleFailed(metrics.ReasonUnknownRoute)
		return nil, fmt.Errorf("settle route %q: %w", bus.RouteID, err)
	}

	fare := route.Fare
	if s.balance < fare {
		s.metrics.SettleFailed(metrics.ReasonInsufficientBalance)
		logger.Info("Settlement rejected, insufficient balance",
			slog.Int64("fare", fare),
			slog.Int64("balance", s.balance),
		)
		return nil, &InsufficientBalanceError{Fare: fare, Balance: s.balance}
	}

	trip := domain.NewTripRecord(time.Now(), pending.BusNumber, pending.RouteName, fare)
	newBalance := s.balance - fare
	newHistory := append([]domain.TripRecord{trip}, s.history...)

	if err := s.repo.Persist(ctx, domain.WalletState{Balance: newBalance, History: newHistory}); err != nil {
		// In-memory state is untouched on a failed write, keeping the
		// balance+ledger pair consistent with storage.
		return nil, fmt.Errorf("persist settlement: %w", err)
	}

	s.balance = newBalance
	s.history = newHistory
	s.pending = nil
	s.metrics.SettleSucceeded(newBalance)

	logger.Info("Trip settled",
		slog.String("bus", trip.Bus),
		slog.String("route", trip.Route),
		slog.Int64("amount", trip.Amount),
		slog.Int64("new_balance", newBalance),
	)
	return &domain.SettlementResult{NewBalance: newBalance, Trip: trip}, nil
}

// Recharge credits the balance and persists. Non-positive amounts are
// rejected without mutation.
func (s *walletService) Recharge(ctx context.Context, amount int64) (*domain.RechargeResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidAmount, amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newBalance := s.balance + amount
	if err := s.repo.Persist(ctx, domain.WalletState{Balance: newBalance, History: s.history}); err != nil {
		return nil, fmt.Errorf("persist recharge: %w", err)
	}

	s.balance = newBalance
	s.metrics.RechargeSucceeded(newBalance)

	logger.Info("Balance recharged",
		slog.Int64("amount", amount),
		slog.Int64("new_balance", newBalance),
	)
	return &domain.RechargeResult{NewBalance: newBalance, Amount: amount}, nil
}
