package model

import "fmt"

// ClockTime is a time of day encoded as an HHMM integer, e.g. 1830 for
// half past six in the evening.  Venue configuration and booking requests
// use this encoding directly, so arithmetic on opening hours stays in
// whole minutes without involving dates or time zones.
type ClockTime int

// Hour returns the hour component (0–23).
func (t ClockTime) Hour() int { return int(t) / 100 }

// Minute returns the minute component (0–59).
func (t ClockTime) Minute() int { return int(t) % 100 }

// MinutesFromMidnight converts the clock time into a minute count, which
// is the form used for slot arithmetic.
func (t ClockTime) MinutesFromMidnight() int {
	return t.Hour()*60 + t.Minute()
}

// ClockFromMinutes builds a ClockTime from a minute count since midnight.
// It is the inverse of MinutesFromMidnight and does not wrap at 24 hours;
// callers clamp against the venue's closing time before using the result.
func ClockFromMinutes(mins int) ClockTime {
	h, m := mins/60, mins%60
	return ClockTime(h*100 + m)
}

// Add returns the clock time advanced by the given number of minutes.
func (t ClockTime) Add(mins int) ClockTime {
	return ClockFromMinutes(t.MinutesFromMidnight() + mins)
}

// Validate reports whether the value is a well-formed time of day.
func (t ClockTime) Validate() error {
	if t.Hour() < 0 || t.Hour() > 23 {
		return fmt.Errorf("clock time %04d: hour out of range", int(t))
	}
	if t.Minute() > 59 {
		return fmt.Errorf("clock time %04d: minute out of range", int(t))
	}
	return nil
}

// String renders the time as "18:30" for logs and error messages.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
