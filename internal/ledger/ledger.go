// Package ledger owns every booking the venue has ever taken.  It
// assigns identifiers, preserves insertion order and derives the
// status-filtered views the front of house works from.
package ledger

import (
	"errors"

	"github.com/roysiu-gh/restam/internal/model"
)

// ErrUnknownBooking is returned when a booking id has never been
// assigned.  Handlers should translate this into an HTTP 404 response.
var ErrUnknownBooking = errors.New("unknown booking")

// Ledger is the authoritative store of bookings, keyed by id.  Ids are
// assigned monotonically from zero and never reused, even after
// cancellation; cancelled bookings stay in the ledger as tombstones.
//
// Ledger is not safe for concurrent use on its own; the reservation
// service guards it together with the schedule under one lock.
type Ledger struct {
	bookings map[int64]*model.Booking
	order    []int64 // insertion order for stable listings
	nextID   int64
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{bookings: make(map[int64]*model.Booking)}
}

// NextID returns the id the next Add will assign.  The reservation
// service reserves schedule capacity under this id before committing
// the booking, inside one critical section, so the peek cannot race.
func (l *Ledger) NextID() int64 { return l.nextID }

// Add stores the booking under the next free id, stamps the id onto the
// booking and returns it.
func (l *Ledger) Add(b *model.Booking) int64 {
	id := l.nextID
	l.nextID++
	b.ID = id
	l.bookings[id] = b
	l.order = append(l.order, id)
	return id
}

// Get returns the booking with the given id, or ErrUnknownBooking.
func (l *Ledger) Get(id int64) (*model.Booking, error) {
	b, ok := l.bookings[id]
	if !ok {
		return nil, ErrUnknownBooking
	}
	return b, nil
}

// Len returns how many bookings the ledger holds.
func (l *Ledger) Len() int { return len(l.bookings) }

// All returns every booking in insertion order.
func (l *Ledger) All() []*model.Booking {
	out := make([]*model.Booking, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.bookings[id])
	}
	return out
}

// Pending returns every booking whose current status is pending.  The
// view is recomputed by a full scan on each call; at one venue's scale
// that is cheaper than keeping indexes coherent.
func (l *Ledger) Pending() map[int64]*model.Booking {
	return l.withStatus(model.StatusPending)
}

// Completed returns every booking whose current status is complete.
func (l *Ledger) Completed() map[int64]*model.Booking {
	return l.withStatus(model.StatusComplete)
}

// Cancelled returns every booking whose current status is cancelled.
func (l *Ledger) Cancelled() map[int64]*model.Booking {
	return l.withStatus(model.StatusCancelled)
}

func (l *Ledger) withStatus(s model.Status) map[int64]*model.Booking {
	out := make(map[int64]*model.Booking)
	for id, b := range l.bookings {
		if b.Status == s {
			out[id] = b
		}
	}
	return out
}
