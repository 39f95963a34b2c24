package model

import "fmt"

// Status is the lifecycle state of a booking.  Bookings start Pending,
// can move to Complete or Cancelled, and can be reactivated back to
// Pending.  Bookings are never deleted; cancellation tombstones them.
type Status uint8

const (
	StatusPending   Status = 0
	StatusComplete  Status = 1
	StatusCancelled Status = 2
)

// Valid reports whether the value is one of the three known statuses.
func (s Status) Valid() bool { return s <= StatusCancelled }

// String returns the lowercase name used in API responses and query
// parameters.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusComplete:
		return "complete"
	case StatusCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// ParseStatus converts an API string back into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "pending":
		return StatusPending, nil
	case "complete", "completed":
		return StatusComplete, nil
	case "cancelled":
		return StatusCancelled, nil
	}
	return 0, fmt.Errorf("unknown status %q", s)
}

// Booking is one party's reservation: the time window they hold a table
// for, their meal order and contact details, and the full history of
// status changes.
//
// Fields:
//  ID              – ledger-assigned identifier, monotone, never reused.
//  TimeStart       – slot-aligned arrival time.
//  TimeLengthMins  – nominal stay length in minutes.
//  FloorID         – floor of the assigned table.
//  TableNumber     – number of the assigned table on that floor.
//  Meals           – meal id to ordered quantity.
//  Booked          – true for confirmed bookings, false for walk-ins.
//  Name            – party name.
//  CaravanNo       – caravan pitch number (-1 when not staying on site).
//  TelephoneNo     – contact number.
//  AdditionalNotes – free-form notes for the kitchen and front of house.
//  Status          – current lifecycle state.
//  StatusLog       – append-only record of every status ever set,
//                    including redundant re-sets.
type Booking struct {
	ID              int64          `json:"id"`
	TimeStart       ClockTime      `json:"time_start"`
	TimeLengthMins  int            `json:"time_length_mins"`
	FloorID         string         `json:"floor_id"`
	TableNumber     int            `json:"table_number"`
	Meals           map[string]int `json:"meals"`
	Booked          bool           `json:"booked"`
	Name            string         `json:"name"`
	CaravanNo       int            `json:"caravan_no"`
	TelephoneNo     string         `json:"telephone_no"`
	AdditionalNotes string         `json:"additional_notes"`
	Status          Status         `json:"status"`
	StatusLog       []Status       `json:"status_log"`
}

// NewBooking returns a pending booking with its initial status already
// logged.  The meals map is copied so later deltas cannot alias the
// caller's map.
func NewBooking(timeStart ClockTime, timeLengthMins int, meals map[string]int, booked bool) *Booking {
	own := make(map[string]int, len(meals))
	for k, v := range meals {
		own[k] = v
	}
	return &Booking{
		TimeStart:      timeStart,
		TimeLengthMins: timeLengthMins,
		Meals:          own,
		Booked:         booked,
		CaravanNo:      -1,
		Status:         StatusPending,
		StatusLog:      []Status{StatusPending},
	}
}

// TimeEnd is the derived departure time: TimeStart plus the nominal stay.
func (b *Booking) TimeEnd() ClockTime {
	return b.TimeStart.Add(b.TimeLengthMins)
}

// PartySize is the head count implied by the meal order.
func (b *Booking) PartySize() int {
	n := 0
	for _, qty := range b.Meals {
		n += qty
	}
	return n
}

// SetStatus records a new lifecycle state.  The status log always grows,
// even when the new status equals the current one; a repeated set is a
// real event worth keeping.
func (b *Booking) SetStatus(s Status) {
	b.Status = s
	b.StatusLog = append(b.StatusLog, s)
}

// SetStatusFlag mirrors the flag-style setters of the booking ledger's
// ancestry: a status can only ever be set true.  Passing on=false, or an
// unknown status, fails with ErrInvalidTransition and changes nothing.
// The only sanctioned way to leave a status is to set a different one.
func (b *Booking) SetStatusFlag(s Status, on bool) error {
	if !s.Valid() {
		return fmt.Errorf("%w: unknown status %d", ErrInvalidTransition, uint8(s))
	}
	if !on {
		return fmt.Errorf("%w: cannot clear %s; set another status instead", ErrInvalidTransition, s)
	}
	b.SetStatus(s)
	return nil
}

// ModifyMeals applies a signed delta per meal id: new quantity is the
// current quantity (zero when absent) plus the delta.  If any resulting
// quantity would be negative, nothing is applied and the error names the
// offending meal.
func (b *Booking) ModifyMeals(delta map[string]int) error {
	for key, d := range delta {
		if b.Meals[key]+d < 0 {
			return fmt.Errorf("%w: meal %q would go to %d", ErrNegativeQuantity, key, b.Meals[key]+d)
		}
	}
	for key, d := range delta {
		b.Meals[key] += d
	}
	return nil
}

// OverwriteNotes replaces ("w") or appends to ("a") the additional
// notes.  Any other mode fails with ErrInvalidMode.
func (b *Booking) OverwriteNotes(notes, mode string) error {
	switch mode {
	case "w":
		b.AdditionalNotes = notes
	case "a":
		b.AdditionalNotes += notes
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return nil
}

// Clone returns a deep copy.  The reservation service hands copies to
// callers so snapshots never alias state guarded by its lock.
func (b *Booking) Clone() Booking {
	out := *b
	out.Meals = make(map[string]int, len(b.Meals))
	for k, v := range b.Meals {
		out.Meals[k] = v
	}
	out.StatusLog = append([]Status(nil), b.StatusLog...)
	return out
}
