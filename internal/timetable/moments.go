package timetable

import (
	"fmt"

	"github.com/roysiu-gh/restam/internal/model"
)

// MomentIndex converts between clock times and moment indices for one
// venue's operating window.  Moment 0 starts at opening time; each
// moment is one slot interval wide.  A trailing partial slot (when the
// interval does not divide the window) is dropped.
type MomentIndex struct {
	opening  model.ClockTime
	closing  model.ClockTime
	interval int // slot width in minutes
}

// NewMomentIndex derives the index from an already-validated venue.
func NewMomentIndex(v *model.Venue) *MomentIndex {
	return &MomentIndex{
		opening:  v.OpeningTime,
		closing:  v.ClosingTime,
		interval: v.SlotIntervalMins,
	}
}

// Interval returns the slot width in minutes.
func (x *MomentIndex) Interval() int { return x.interval }

// Count returns how many whole moments fit in the operating window.
func (x *MomentIndex) Count() int {
	return (x.closing.MinutesFromMidnight() - x.opening.MinutesFromMidnight()) / x.interval
}

// TimeToMoment maps a clock time onto its moment index.  Times outside
// [opening, closing] fail with ErrTimeOutOfRange; times that do not sit
// a whole number of intervals after opening fail with ErrTimeMisaligned.
func (x *MomentIndex) TimeToMoment(t model.ClockTime) (int, error) {
	mins := t.MinutesFromMidnight()
	if mins < x.opening.MinutesFromMidnight() || mins > x.closing.MinutesFromMidnight() {
		return 0, fmt.Errorf("time %s not between %s and %s: %w", t, x.opening, x.closing, ErrTimeOutOfRange)
	}
	offset := mins - x.opening.MinutesFromMidnight()
	if offset%x.interval != 0 {
		return 0, fmt.Errorf("time %s not at a %d minute interval from opening %s: %w", t, x.interval, x.opening, ErrTimeMisaligned)
	}
	return offset / x.interval, nil
}

// MomentToTime is the inverse mapping.  It deliberately performs no
// upper-bound check so it can format hypothetical moments; callers
// range-check indices against Count() themselves.
func (x *MomentIndex) MomentToTime(m int) model.ClockTime {
	return x.opening.Add(m * x.interval)
}

// Moments enumerates every moment index of the operating window in
// order.
func (x *MomentIndex) Moments() []int {
	out := make([]int, x.Count())
	for i := range out {
		out[i] = i
	}
	return out
}
