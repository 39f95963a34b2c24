// Package model defines the value types of the reservation core: the venue
// layout, the meal catalog and individual bookings.  The sentinel errors
// below let handlers distinguish malformed input from illegal mutations
// without inspecting error strings.
package model

import "errors"

// ErrInvalidVenue is returned when a venue document fails validation.
// The wrapping error names the offending field, floor or table.
var ErrInvalidVenue = errors.New("invalid venue")

// ErrInvalidMenu is returned when a menu document fails validation.  The
// wrapping error names the meal key and field.
var ErrInvalidMenu = errors.New("invalid menu")

// ErrInvalidTransition is returned when a caller tries to clear a status
// flag.  Statuses are only ever set; the sole way to leave one is to set
// a different one.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrNegativeQuantity is returned when a meal delta would drive a
// quantity below zero.  The booking is left untouched.
var ErrNegativeQuantity = errors.New("negative meal quantity")

// ErrInvalidMode is returned when a notes update names a mode other than
// "w" (overwrite) or "a" (append).
var ErrInvalidMode = errors.New("invalid notes mode")
