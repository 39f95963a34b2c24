package service

import "errors"

// ErrInvalidParty is returned when a booking request is malformed
// before any scheduling is attempted: no way to derive a party size,
// or a negative meal quantity.
var ErrInvalidParty = errors.New("invalid party request")

// ErrUnknownMeal is returned in strict mode when an order references a
// meal id the catalog does not carry.
var ErrUnknownMeal = errors.New("unknown meal")

// ErrNoTableAvailable is returned when no table on any floor has both
// the seats for the party and a free run of moments for its stay.
var ErrNoTableAvailable = errors.New("no table available")

// ErrReactivateConflict is returned when a cancelled booking cannot be
// reactivated because its table has since been taken for part of the
// stay.  The booking stays cancelled and the schedule is unchanged.
var ErrReactivateConflict = errors.New("table no longer free for reactivation")
