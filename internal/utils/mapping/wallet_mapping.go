// Package mapping converts between domain wallet state and the two
// persisted text entries (userBalance, tripHistory). Both storage
// adapters share this codec so the on-disk shape is identical.
package mapping

import (
	"encoding/json"
	"strconv"

	"github.com/buspago/buspago_backend/internal/core/domain"
)

// Stable keys for the persisted wallet state entries.
const (
	BalanceKey = "userBalance"
	HistoryKey = "tripHistory"
)

// EncodeBalance renders the balance as decimal integer text.
func EncodeBalance(balance int64) string {
	return strconv.FormatInt(balance, 10)
}

// DecodeBalance parses the stored balance text. Absent or malformed
// text (including negatives, which the invariants forbid) degrades to
// the default starting balance.
func DecodeBalance(text string) int64 {
	balance, err := strconv.ParseInt(text, 10, 64)
	if err != nil || balance < 0 {
		return domain.DefaultBalance
	}
	return balance
}

// EncodeHistory serializes the ledger as a JSON array, newest first.
func EncodeHistory(history []domain.TripRecord) (string, error) {
	if history == nil {
		history = []domain.TripRecord{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeHistory parses the stored ledger text. A parse failure
// degrades to an empty ledger rather than propagating an error; this
// is the deliberate silent-recovery path.
func DecodeHistory(text string) []domain.TripRecord {
	if text == "" {
		return []domain.TripRecord{}
	}
	var history []domain.TripRecord
	if err := json.Unmarshal([]byte(text), &history); err != nil {
		return []domain.TripRecord{}
	}
	if history == nil {
		history = []domain.TripRecord{}
	}
	return history
}

// DecodeWalletState combines both entries into a wallet state,
// applying the per-entry defaults independently.
func DecodeWalletState(balanceText, historyText string) domain.WalletState {
	return domain.WalletState{
		Balance: DecodeBalance(balanceText),
		History: DecodeHistory(historyText),
	}
}
