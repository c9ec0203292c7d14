package domain

import "github.com/shopspring/decimal"

// DefaultBalance is the balance a fresh (or unrecoverable) wallet
// starts with.
const DefaultBalance int64 = 10000

// WalletState is the persisted balance and trip ledger pair. The two
// values always reflect the same logical transaction: they are loaded
// together and written together.
type WalletState struct {
	Balance int64        `json:"balance"`
	History []TripRecord `json:"history"` // newest first
}

// SettlementResult is returned on a successful fare settlement.
type SettlementResult struct {
	NewBalance int64      `json:"newBalance"`
	Trip       TripRecord `json:"trip"`
}

// RechargeResult is returned on a successful balance recharge.
type RechargeResult struct {
	NewBalance int64 `json:"newBalance"`
	Amount     int64 `json:"amount"`
}

// TravelSummary aggregates the ledger for the reporting endpoint.
type TravelSummary struct {
	TripCount   int             `json:"tripCount"`
	TotalSpent  int64           `json:"totalSpent"`
	AverageFare decimal.Decimal `json:"averageFare"` // 2dp, zero when no trips
}
