// Package service orchestrates the reservation core: it validates
// booking requests, assigns tables, keeps the ledger and the schedule
// consistent with each other and drives the booking lifecycle.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/roysiu-gh/restam/internal/ledger"
	"github.com/roysiu-gh/restam/internal/model"
	"github.com/roysiu-gh/restam/internal/queue"
	"github.com/roysiu-gh/restam/internal/timetable"
)

// EventPublisher publishes booking lifecycle events.  Publishing is
// best effort; the service ignores publish errors because the broker
// logs them itself and a missing broker must never fail a booking.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, ev queue.BookingEvent) error
}

// PartyRequest is a request to admit a party.  PartySize may be left
// zero, in which case the head count falls back to the sum of the meal
// quantities.
type PartyRequest struct {
	TimeStart       model.ClockTime `json:"time_start"`
	Meals           map[string]int  `json:"meals"`
	Booked          bool            `json:"booked"`
	PartySize       int             `json:"party_size,omitempty"`
	Name            string          `json:"name"`
	CaravanNo       int             `json:"caravan_no,omitempty"`
	TelephoneNo     string          `json:"telephone_no,omitempty"`
	AdditionalNotes string          `json:"additional_notes,omitempty"`
}

// Reservations owns the booking ledger and the occupancy schedule for
// one venue.  Every mutating operation is a check-then-act across both,
// so a single mutex guards them together: two overlapping AddParty
// calls on the same table can never both succeed.
type Reservations struct {
	mu       sync.Mutex
	venue    *model.Venue
	menu     model.Menu
	index    *timetable.MomentIndex
	schedule *timetable.Schedule
	ledger   *ledger.Ledger

	// strictMeals rejects orders referencing meal ids outside the
	// catalog.  Switched off, walk-ins may order ad-hoc meal keys.
	strictMeals bool

	events EventPublisher // nil disables publishing
}

// New builds the reservation service for an already-validated venue and
// menu.  Passing a nil venue or menu is a programming error.  events
// may be nil to disable lifecycle event publishing.
func New(venue *model.Venue, menu model.Menu, strictMeals bool, events EventPublisher) *Reservations {
	if venue == nil || menu == nil {
		panic("nil venue or menu passed to service.New")
	}
	idx := timetable.NewMomentIndex(venue)
	return &Reservations{
		venue:       venue,
		menu:        menu,
		index:       idx,
		schedule:    timetable.NewSchedule(idx, venue.Floors),
		ledger:      ledger.New(),
		strictMeals: strictMeals,
		events:      events,
	}
}

// Venue returns a copy of the venue document.
func (r *Reservations) Venue() model.Venue { return *r.venue }

// Menu returns the meal catalog.  The catalog is immutable after load.
func (r *Reservations) Menu() model.Menu { return r.menu }

// Index returns the moment index for clock/moment conversions.  The
// index is immutable and safe to share.
func (r *Reservations) Index() *timetable.MomentIndex { return r.index }

// AddParty validates the request, assigns the first table (in floor and
// table declaration order) that seats the party and is free for the
// whole stay, records the booking and returns its id.  On any failure
// neither the ledger nor the schedule is touched.
//
// The stay length is the venue's maximum stay; a stay that would run
// past closing occupies moments only up to closing.
func (r *Reservations) AddParty(ctx context.Context, req PartyRequest) (int64, error) {
	if err := r.validateMeals(req.Meals); err != nil {
		return 0, err
	}
	size := req.PartySize
	if size <= 0 {
		for _, qty := range req.Meals {
			size += qty
		}
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: party size not given and no meals ordered", ErrInvalidParty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	from, to, err := r.momentSpan(req.TimeStart)
	if err != nil {
		return 0, err
	}

	id := r.ledger.NextID()
	assigned := false
	var ref timetable.TableRef
	for _, cand := range r.schedule.Tables() {
		seats, serr := r.schedule.Seats(cand)
		if serr != nil || seats < size {
			continue
		}
		if rerr := r.schedule.Reserve(cand, from, to, id); rerr == nil {
			ref = cand
			assigned = true
			break
		}
	}
	if !assigned {
		return 0, fmt.Errorf("no table seats %d free from %s for %d minutes: %w",
			size, req.TimeStart, r.venue.MaxStayMins, ErrNoTableAvailable)
	}

	b := model.NewBooking(req.TimeStart, r.venue.MaxStayMins, req.Meals, req.Booked)
	b.FloorID = ref.FloorID
	b.TableNumber = ref.TableNumber
	b.Name = req.Name
	if req.CaravanNo != 0 {
		b.CaravanNo = req.CaravanNo
	}
	b.TelephoneNo = req.TelephoneNo
	b.AdditionalNotes = req.AdditionalNotes
	r.ledger.Add(b)

	r.publish(ctx, queue.EventBookingCreated, b)
	return b.ID, nil
}

// GetParty returns a snapshot of the booking.
func (r *Reservations) GetParty(id int64) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := r.ledger.Get(id)
	if err != nil {
		return model.Booking{}, err
	}
	return b.Clone(), nil
}

// ModifyMeals applies a signed quantity delta to the booking's order
// and returns the updated snapshot.  In strict mode the delta may only
// reference catalog meals.  A delta that would drive any quantity
// negative is rejected whole.
func (r *Reservations) ModifyMeals(id int64, delta map[string]int) (model.Booking, error) {
	if r.strictMeals {
		for key := range delta {
			if !r.menu.Has(key) {
				return model.Booking{}, fmt.Errorf("meal %q: %w", key, ErrUnknownMeal)
			}
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := r.ledger.Get(id)
	if err != nil {
		return model.Booking{}, err
	}
	if err := b.ModifyMeals(delta); err != nil {
		return model.Booking{}, err
	}
	return b.Clone(), nil
}

// OverwriteNotes replaces or appends the booking's additional notes and
// returns the updated snapshot.
func (r *Reservations) OverwriteNotes(id int64, notes, mode string) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := r.ledger.Get(id)
	if err != nil {
		return model.Booking{}, err
	}
	if err := b.OverwriteNotes(notes, mode); err != nil {
		return model.Booking{}, err
	}
	return b.Clone(), nil
}

// CompleteParty marks the booking complete.  The table is not released:
// a finished party's table stays theirs until an explicit cancel frees
// it, so the floor plan matches who is physically seated.
func (r *Reservations) CompleteParty(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := r.ledger.Get(id)
	if err != nil {
		return err
	}
	b.SetStatus(model.StatusComplete)
	r.publish(ctx, queue.EventBookingCompleted, b)
	return nil
}

// CancelParty marks the booking cancelled and frees its table for the
// whole stay.  Cancelling an already-cancelled booking appends to the
// status log again; the release only touches moments this booking still
// holds, so slots reassigned since the first cancel stay reserved.
func (r *Reservations) CancelParty(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := r.ledger.Get(id)
	if err != nil {
		return err
	}
	from, to, err := r.momentSpan(b.TimeStart)
	if err != nil {
		return err
	}
	b.SetStatus(model.StatusCancelled)
	r.schedule.Release(timetable.TableRef{FloorID: b.FloorID, TableNumber: b.TableNumber}, from, to, b.ID)
	r.publish(ctx, queue.EventBookingCancelled, b)
	return nil
}

// ReactivateParty returns the booking to pending.  Seating is
// re-validated first: the booking's own table must still be free (or
// still held by this booking) for its whole stay, since the slots may
// have been reassigned while it was cancelled.  On conflict nothing is
// mutated.
func (r *Reservations) ReactivateParty(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, err := r.ledger.Get(id)
	if err != nil {
		return err
	}
	from, to, err := r.momentSpan(b.TimeStart)
	if err != nil {
		return err
	}
	ref := timetable.TableRef{FloorID: b.FloorID, TableNumber: b.TableNumber}
	if err := r.schedule.Reserve(ref, from, to, id); err != nil {
		return fmt.Errorf("%w: %v", ErrReactivateConflict, err)
	}
	b.SetStatus(model.StatusPending)
	r.publish(ctx, queue.EventBookingReactivated, b)
	return nil
}

// Pending returns snapshots of all bookings currently pending.
func (r *Reservations) Pending() map[int64]model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshot(r.ledger.Pending())
}

// Completed returns snapshots of all bookings currently complete.
func (r *Reservations) Completed() map[int64]model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshot(r.ledger.Completed())
}

// Cancelled returns snapshots of all bookings currently cancelled.
func (r *Reservations) Cancelled() map[int64]model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshot(r.ledger.Cancelled())
}

// All returns snapshots of every booking in insertion order.
func (r *Reservations) All() []model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	bs := r.ledger.All()
	out := make([]model.Booking, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.Clone())
	}
	return out
}

// OccupancyAt reports which booking holds each occupied table at the
// given moment.
func (r *Reservations) OccupancyAt(moment int) (map[timetable.TableRef]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.schedule.OccupancyAt(moment)
}

// OccupancyAtTime is OccupancyAt keyed by clock time; the time must be
// slot-aligned and inside opening hours.
func (r *Reservations) OccupancyAtTime(t model.ClockTime) (map[timetable.TableRef]int64, error) {
	moment, err := r.index.TimeToMoment(t)
	if err != nil {
		return nil, err
	}
	return r.OccupancyAt(moment)
}

// momentSpan maps a stay starting at t onto the half-open moment range
// it occupies.  A stay that runs past closing is clamped; a stay that
// only partially covers its final slot still occupies the whole slot.
// Callers must hold r.mu.
func (r *Reservations) momentSpan(t model.ClockTime) (from, to int, err error) {
	from, err = r.index.TimeToMoment(t)
	if err != nil {
		return 0, 0, err
	}
	stay := r.venue.MaxStayMins
	if remain := r.venue.ClosingTime.MinutesFromMidnight() - t.MinutesFromMidnight(); stay > remain {
		stay = remain
	}
	slots := (stay + r.index.Interval() - 1) / r.index.Interval()
	to = from + slots
	if to > r.schedule.Moments() {
		to = r.schedule.Moments()
	}
	// A start at closing time passes TimeToMoment but leaves no slots
	// to occupy; a booking must hold at least one.
	if to <= from {
		return 0, 0, fmt.Errorf("no slots between %s and closing %s: %w",
			t, r.venue.ClosingTime, timetable.ErrTimeOutOfRange)
	}
	return from, to, nil
}

func (r *Reservations) validateMeals(meals map[string]int) error {
	for key, qty := range meals {
		if qty < 0 {
			return fmt.Errorf("%w: meal %q ordered %d times", ErrInvalidParty, key, qty)
		}
		if r.strictMeals && !r.menu.Has(key) {
			return fmt.Errorf("meal %q: %w", key, ErrUnknownMeal)
		}
	}
	return nil
}

// publish emits a lifecycle event for the booking.  The broker dial can
// be slow, so the publish happens on its own goroutine with a fresh
// context rather than under the lock or on the request's deadline.
func (r *Reservations) publish(_ context.Context, kind string, b *model.Booking) {
	if r.events == nil {
		return
	}
	ev := queue.BookingEvent{
		Event:       kind,
		BookingID:   b.ID,
		VenueName:   r.venue.Name,
		PartyName:   b.Name,
		PartySize:   b.PartySize(),
		FloorID:     b.FloorID,
		TableNumber: b.TableNumber,
		TimeStart:   b.TimeStart.String(),
		TimeEnd:     b.TimeEnd().String(),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = r.events.PublishBookingEvent(context.Background(), ev) }()
}

func snapshot(in map[int64]*model.Booking) map[int64]model.Booking {
	out := make(map[int64]model.Booking, len(in))
	for id, b := range in {
		out[id] = b.Clone()
	}
	return out
}
