package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a lookup targets a health record
	// id that does not exist in the store. Note that Update deliberately
	// never returns it: unmatched updates upsert instead.
	ErrRecordNotFound = errors.New("health record was not found")

	// ErrShareNotFound is returned when a revoke operation matches no
	// share in the store.
	ErrShareNotFound = errors.New("share was not found")
)
