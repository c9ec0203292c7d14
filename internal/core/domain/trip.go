package domain

import "time"

// TripDateDisplayFormat is the layout used for the ledger's display
// date. The persisted history stores dates in this form, so records
// round-trip byte-for-byte.
const TripDateDisplayFormat = "2 January 2006, 15:04"

// TripRecord is one completed, debited trip. Immutable once created.
// The JSON shape matches the persisted tripHistory entries exactly.
type TripRecord struct {
	Date   string `json:"date"` // formatted with TripDateDisplayFormat
	Bus    string `json:"bus"`
	Route  string `json:"route"`
	Amount int64  `json:"amount"`
}

// NewTripRecord builds the record for a settled trip at the given time.
func NewTripRecord(at time.Time, busNumber, routeName string, amount int64) TripRecord {
	return TripRecord{
		Date:   at.Format(TripDateDisplayFormat),
		Bus:    busNumber,
		Route:  routeName,
		Amount: amount,
	}
}

// PendingTransaction captures the bus, route and fare resolved from a
// scan, held until the user confirms or abandons the payment. At most
// one exists at a time; a new scan supersedes the previous one.
type PendingTransaction struct {
	BusID     string    `json:"busID"`
	BusNumber string    `json:"busNumber"`
	RouteName string    `json:"routeName"`
	Fare      int64     `json:"fare"`
	ScannedAt time.Time `json:"scannedAt"`
}
