package domain

import "errors"

var (
	// Fetch failures. ErrInvalidCurrency also covers codes rejected before any
	// network call is made.
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrNetwork         = errors.New("rates endpoint unreachable")
	ErrParse           = errors.New("malformed rates response")

	// Conversion failure: a code missing from the rate table in use.
	ErrUnknownCurrency = errors.New("currency not in rate table")

	ErrSnapshotNotFound = errors.New("rate snapshot not found")
)
