package dto

import (
	"time"

	"github.com/buspago/buspago_backend/internal/core/domain"
)

// ScanRequest carries either the raw payload captured by the QR camera
// or, for the demo's fallback buttons, a canonical bus id directly.
// Exactly one of the two is expected; BusID wins when both are set.
type ScanRequest struct {
	Payload string `json:"payload"`
	BusID   string `json:"busId" binding:"omitempty,buscode"`
}

// PendingTripResponse is the payment-screen view of a staged scan.
type PendingTripResponse struct {
	BusID     string    `json:"busID"`
	BusNumber string    `json:"busNumber"`
	RouteName string    `json:"routeName"`
	Fare      int64     `json:"fare"`
	Balance   int64     `json:"balance"`
	ScannedAt time.Time `json:"scannedAt"`
}

// ToPendingTripResponse converts a staged pending transaction plus the
// current balance into the payment-screen view.
func ToPendingTripResponse(pending *domain.PendingTransaction, balance int64) PendingTripResponse {
	return PendingTripResponse{
		BusID:     pending.BusID,
		BusNumber: pending.BusNumber,
		RouteName: pending.RouteName,
		Fare:      pending.Fare,
		Balance:   balance,
		ScannedAt: pending.ScannedAt,
	}
}
