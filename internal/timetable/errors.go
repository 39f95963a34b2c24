// Package timetable maps wall-clock booking times onto the venue's
// discrete scheduling slots ("moments") and tracks which table is held
// by which booking at every moment of the operating window.
package timetable

import "errors"

// ErrTimeOutOfRange is returned when a clock time falls before opening
// or after closing.
var ErrTimeOutOfRange = errors.New("time outside opening hours")

// ErrTimeMisaligned is returned when a clock time does not sit on a slot
// boundary measured from opening time.
var ErrTimeMisaligned = errors.New("time not aligned to slot interval")

// ErrMomentOutOfRange is returned when a moment index falls outside the
// schedule board.
var ErrMomentOutOfRange = errors.New("moment outside operating window")

// ErrUnknownTable is returned when a table reference does not exist in
// the venue layout.
var ErrUnknownTable = errors.New("unknown table")

// ErrTableOccupied is returned when a reservation would overlap another
// booking's occupancy.  The wrapping error reports the conflicting
// moment and table; the board is left untouched.
var ErrTableOccupied = errors.New("table occupied")
