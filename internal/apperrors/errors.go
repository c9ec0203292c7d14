package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnrecognized indicates that a scanned QR payload could not be
// resolved to any bus in the fleet catalog. Recoverable; the caller
// reports it and the resolver stays ready for the next attempt.
var ErrUnrecognized = errors.New("qr payload not recognized")

// ErrInsufficientBalance indicates the stored balance does not cover
// the route fare. No state is mutated when this is returned.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrInvalidAmount indicates a recharge amount that is not a positive
// integer.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrNoPendingTrip indicates a settlement was requested without a
// prior scan staging a pending trip.
var ErrNoPendingTrip = errors.New("no pending trip to settle")
