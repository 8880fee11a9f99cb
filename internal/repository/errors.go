// Package repository defines error values shared across repositories.
// The ad-creation write path classifies every failing step with one of
// these sentinels so handlers can pick the right client-facing message
// while the wrapped cause stays in the server logs.
package repository

import "errors"

var (
	// ErrLocationLookup: the placeID lookup inside the transaction failed.
	ErrLocationLookup = errors.New("location lookup failed")
	// ErrLocationInsert: inserting the new location row failed.
	ErrLocationInsert = errors.New("location insert failed")
	// ErrAdInsert: inserting the ad row failed.
	ErrAdInsert = errors.New("ad insert failed")
	// ErrTimestampRead: reading back the store-assigned created_at failed.
	ErrTimestampRead = errors.New("timestamp read failed")
)

// ErrEmailExists is returned when registration hits the unique email index.
var ErrEmailExists = errors.New("email already exists")
