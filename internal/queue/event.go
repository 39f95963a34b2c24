// Package queue defines the message payloads exchanged over the broker,
// the publisher that emits them and the background consumer that records
// them.
package queue

// Booking lifecycle event kinds, used as the Event field of a
// BookingEvent.
const (
	EventBookingCreated     = "booking.created"
	EventBookingCancelled   = "booking.cancelled"
	EventBookingCompleted   = "booking.completed"
	EventBookingReactivated = "booking.reactivated"
)

// BookingEvent is published whenever a booking changes state.  It
// carries enough information for downstream consumers to log, notify,
// or feed analytics without querying the reservation service.
type BookingEvent struct {
	Event       string `json:"event"`
	BookingID   int64  `json:"booking_id"`
	VenueName   string `json:"venue_name"`
	PartyName   string `json:"party_name"`
	PartySize   int    `json:"party_size"`
	FloorID     string `json:"floor_id"`
	TableNumber int    `json:"table_number"`
	TimeStart   string `json:"time_start"`
	TimeEnd     string `json:"time_end"`
	OccurredAt  string `json:"occurred_at"`
}
