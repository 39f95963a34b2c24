package timetable

import (
	"fmt"

	"github.com/roysiu-gh/restam/internal/model"
)

// TableRef identifies one physical table by floor id and table number.
type TableRef struct {
	FloorID     string `json:"floor_id"`
	TableNumber int    `json:"table_number"`
}

// Schedule is the occupancy board: for every moment of the operating
// window it records which booking, if any, holds each table.  The board
// is built once at venue load, spans the whole window and never
// shrinks.
//
// Schedule is not safe for concurrent use on its own; the reservation
// service serializes all access behind a single lock so that capacity
// checks and reservations act as one unit.
type Schedule struct {
	moments int
	tables  []TableRef           // declaration order, used for first-fit assignment
	seats   map[TableRef]int     // seat count per table
	board   []map[TableRef]int64 // per moment: occupied tables -> booking id
}

// NewSchedule builds an empty board covering every moment of the index
// and every table of the venue layout, preserving floor and table
// declaration order.
func NewSchedule(idx *MomentIndex, floors []model.Floor) *Schedule {
	s := &Schedule{
		moments: idx.Count(),
		seats:   make(map[TableRef]int),
		board:   make([]map[TableRef]int64, idx.Count()),
	}
	for _, f := range floors {
		for _, t := range f.Tables {
			ref := TableRef{FloorID: f.ID, TableNumber: t.Number}
			s.tables = append(s.tables, ref)
			s.seats[ref] = t.Seats
		}
	}
	for i := range s.board {
		s.board[i] = make(map[TableRef]int64)
	}
	return s
}

// Tables returns every table reference in declaration order.
func (s *Schedule) Tables() []TableRef { return s.tables }

// Seats returns the seat count of a table, or an error for a reference
// outside the layout.
func (s *Schedule) Seats(ref TableRef) (int, error) {
	n, ok := s.seats[ref]
	if !ok {
		return 0, fmt.Errorf("table %d on floor %q: %w", ref.TableNumber, ref.FloorID, ErrUnknownTable)
	}
	return n, nil
}

// Moments returns the number of moments the board covers.
func (s *Schedule) Moments() int { return s.moments }

// Reserve marks the table as held by the booking for every moment in
// [from, to).  The reservation is all or nothing: if any moment is held
// by a different booking, nothing is written and the error reports the
// conflicting moment.  Moments already held by the same booking are
// left as they are, so re-reserving a range a booking still owns is a
// no-op rather than a self-conflict.
func (s *Schedule) Reserve(ref TableRef, from, to int, bookingID int64) error {
	if _, ok := s.seats[ref]; !ok {
		return fmt.Errorf("table %d on floor %q: %w", ref.TableNumber, ref.FloorID, ErrUnknownTable)
	}
	if from < 0 || to > s.moments || from > to {
		return fmt.Errorf("moments [%d, %d) outside board of %d: %w", from, to, s.moments, ErrMomentOutOfRange)
	}
	for m := from; m < to; m++ {
		if holder, held := s.board[m][ref]; held && holder != bookingID {
			return fmt.Errorf("table %d on floor %q at moment %d held by booking %d: %w",
				ref.TableNumber, ref.FloorID, m, holder, ErrTableOccupied)
		}
	}
	for m := from; m < to; m++ {
		s.board[m][ref] = bookingID
	}
	return nil
}

// Release clears the table for every moment in [from, to) that is held
// by the given booking.  Moments that are free, or held by a different
// booking, are left alone: a stale release (say, re-cancelling a
// booking whose slots have since been reassigned) must never free
// another booking's occupancy.  Release is idempotent and out-of-range
// moments are skipped rather than rejected.
func (s *Schedule) Release(ref TableRef, from, to int, bookingID int64) {
	if from < 0 {
		from = 0
	}
	if to > s.moments {
		to = s.moments
	}
	for m := from; m < to; m++ {
		if s.board[m][ref] == bookingID {
			delete(s.board[m], ref)
		}
	}
}

// OccupancyAt returns a copy of the board at one moment: every occupied
// table mapped to the booking holding it.
func (s *Schedule) OccupancyAt(moment int) (map[TableRef]int64, error) {
	if moment < 0 || moment >= s.moments {
		return nil, fmt.Errorf("moment %d outside board of %d: %w", moment, s.moments, ErrMomentOutOfRange)
	}
	out := make(map[TableRef]int64, len(s.board[moment]))
	for ref, id := range s.board[moment] {
		out[ref] = id
	}
	return out, nil
}
