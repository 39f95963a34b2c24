package ledger

import (
	"errors"
	"testing"

	"github.com/roysiu-gh/restam/internal/model"
)

func newBooking(t *testing.T) *model.Booking {
	t.Helper()
	return model.NewBooking(1830, 120, map[string]int{"1": 2}, true)
}

func TestAddAssignsMonotoneIDsFromZero(t *testing.T) {
	l := New()
	for want := int64(0); want < 3; want++ {
		if peek := l.NextID(); peek != want {
			t.Errorf("NextID() = %d, want %d", peek, want)
		}
		b := newBooking(t)
		if id := l.Add(b); id != want {
			t.Errorf("Add() = %d, want %d", id, want)
		}
		if b.ID != want {
			t.Errorf("booking stamped with id %d, want %d", b.ID, want)
		}
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestGetUnknownBooking(t *testing.T) {
	l := New()
	if _, err := l.Get(0); !errors.Is(err, ErrUnknownBooking) {
		t.Errorf("Get(0) on empty ledger = %v, want ErrUnknownBooking", err)
	}
	l.Add(newBooking(t))
	if _, err := l.Get(0); err != nil {
		t.Errorf("Get(0) = %v, want nil", err)
	}
	if _, err := l.Get(1); !errors.Is(err, ErrUnknownBooking) {
		t.Errorf("Get(1) = %v, want ErrUnknownBooking", err)
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		l.Add(newBooking(t))
	}
	all := l.All()
	if len(all) != 5 {
		t.Fatalf("All() returned %d bookings, want 5", len(all))
	}
	for i, b := range all {
		if b.ID != int64(i) {
			t.Errorf("All()[%d].ID = %d, want %d", i, b.ID, i)
		}
	}
}

func TestStatusViews(t *testing.T) {
	l := New()
	pending := newBooking(t)
	complete := newBooking(t)
	cancelled := newBooking(t)
	l.Add(pending)
	l.Add(complete)
	l.Add(cancelled)
	complete.SetStatus(model.StatusComplete)
	cancelled.SetStatus(model.StatusCancelled)

	if got := l.Pending(); len(got) != 1 || got[pending.ID] == nil {
		t.Errorf("Pending() = %v, want only booking %d", got, pending.ID)
	}
	if got := l.Completed(); len(got) != 1 || got[complete.ID] == nil {
		t.Errorf("Completed() = %v, want only booking %d", got, complete.ID)
	}
	if got := l.Cancelled(); len(got) != 1 || got[cancelled.ID] == nil {
		t.Errorf("Cancelled() = %v, want only booking %d", got, cancelled.ID)
	}
}

func TestCancelledBookingsStayInLedger(t *testing.T) {
	l := New()
	b := newBooking(t)
	l.Add(b)
	b.SetStatus(model.StatusCancelled)
	if _, err := l.Get(b.ID); err != nil {
		t.Errorf("cancelled booking dropped from ledger: %v", err)
	}
	if l.NextID() != 1 {
		t.Errorf("NextID() = %d after cancellation, want 1 (ids never reused)", l.NextID())
	}
}
