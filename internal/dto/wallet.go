package dto

import (
	"github.com/shopspring/decimal"

	"github.com/buspago/buspago_backend/internal/core/domain"
)

// WalletResponse is the balance snapshot for the home screen.
type WalletResponse struct {
	Balance int64 `json:"balance"`
}

// TripView mirrors one ledger entry.
type TripView struct {
	Date   string `json:"date"`
	Bus    string `json:"bus"`
	Route  string `json:"route"`
	Amount int64  `json:"amount"`
}

// SettleResponse is returned on a successful settlement.
type SettleResponse struct {
	NewBalance int64    `json:"newBalance"`
	Trip       TripView `json:"trip"`
}

// RechargeRequest carries the chosen preset or custom amount. Amount
// validation (must be positive) is a business rule, so it lives in the
// service, not the binding.
type RechargeRequest struct {
	Amount int64 `json:"amount"`
}

// RechargeResponse is returned on a successful recharge.
type RechargeResponse struct {
	NewBalance int64 `json:"newBalance"`
	Amount     int64 `json:"amount"`
}

// HistoryResponse wraps the ledger, newest first.
type HistoryResponse struct {
	Trips []TripView `json:"trips"`
}

// SummaryResponse aggregates the ledger.
type SummaryResponse struct {
	TripCount   int             `json:"tripCount"`
	TotalSpent  int64           `json:"totalSpent"`
	AverageFare decimal.Decimal `json:"averageFare"`
}

// ToTripView converts a ledger record.
func ToTripView(trip domain.TripRecord) TripView {
	return TripView{
		Date:   trip.Date,
		Bus:    trip.Bus,
		Route:  trip.Route,
		Amount: trip.Amount,
	}
}

// ToSettleResponse converts a settlement result.
func ToSettleResponse(result *domain.SettlementResult) SettleResponse {
	return SettleResponse{
		NewBalance: result.NewBalance,
		Trip:       ToTripView(result.Trip),
	}
}

// ToHistoryResponse converts the ledger.
func ToHistoryResponse(history []domain.TripRecord) HistoryResponse {
	trips := make([]TripView, len(history))
	for i, trip := range history {
		trips[i] = ToTripView(trip)
	}
	return HistoryResponse{Trips: trips}
}

// ToSummaryResponse converts a travel summary.
func ToSummaryResponse(summary domain.TravelSummary) SummaryResponse {
	return SummaryResponse{
		TripCount:   summary.TripCount,
		TotalSpent:  summary.TotalSpent,
		AverageFare: summary.AverageFare,
	}
}
