package model

import "fmt"

// Table is one physical table on a floor.
//
// Fields:
//  Number – table number, unique within its floor.
//  Seats  – how many guests the table seats; always positive.
type Table struct {
	Number int `json:"number"`
	Seats  int `json:"seats"`
}

// Floor is an ordered run of tables.  Declaration order matters: the
// scheduler assigns parties to the first suitable table in floor order,
// then table order.
type Floor struct {
	ID     string  `json:"id"`
	Tables []Table `json:"tables"`
}

// TableJoin names a group of tables on one floor that may be pushed
// together for a large party.  The groups are validated for shape and
// carried through opaquely; no scheduling logic consumes them yet.
type TableJoin struct {
	Floor  string `json:"floor"`
	Tables []int  `json:"tables"`
}

// Venue describes a restaurant's operating window and seating layout.
// It arrives as a declarative JSON document parsed by the config loader;
// the core never executes configuration code.
//
// Fields:
//  Name             – display name of the venue.
//  SlotIntervalMins – width of one scheduling slot in minutes.
//  OpeningTime      – when the venue opens.
//  FinalOrderTime   – last time the kitchen accepts orders.
//  ClosingTime      – when the venue closes.
//  MaxStayMins      – how long a party's table is held for them.
//  Floors           – ordered floors, each with ordered tables.
//  CommonTableJoins – joinable table groups, carried opaquely.
type Venue struct {
	Name             string      `json:"name"`
	SlotIntervalMins int         `json:"slot_interval_mins"`
	OpeningTime      ClockTime   `json:"opening_time"`
	FinalOrderTime   ClockTime   `json:"final_order_time"`
	ClosingTime      ClockTime   `json:"closing_time"`
	MaxStayMins      int         `json:"max_stay_mins"`
	Floors           []Floor     `json:"floors"`
	CommonTableJoins []TableJoin `json:"common_table_joins,omitempty"`
}

// Validate checks the structural invariants of the venue document:
// a positive slot interval, well-formed and ordered opening times
// (opening <= final orders <= closing), a positive maximum stay,
// unique floor ids, unique table numbers per floor and positive seat
// counts.  All failures wrap ErrInvalidVenue and name the offending
// field.
func (v *Venue) Validate() error {
	if v.SlotIntervalMins <= 0 {
		return fmt.Errorf("%w: slot_interval_mins must be positive, got %d", ErrInvalidVenue, v.SlotIntervalMins)
	}
	if v.MaxStayMins <= 0 {
		return fmt.Errorf("%w: max_stay_mins must be positive, got %d", ErrInvalidVenue, v.MaxStayMins)
	}
	for _, tc := range []struct {
		name string
		t    ClockTime
	}{
		{"opening_time", v.OpeningTime},
		{"final_order_time", v.FinalOrderTime},
		{"closing_time", v.ClosingTime},
	} {
		if err := tc.t.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidVenue, tc.name, err)
		}
	}
	if v.OpeningTime.MinutesFromMidnight() > v.FinalOrderTime.MinutesFromMidnight() {
		return fmt.Errorf("%w: final_order_time %s before opening_time %s", ErrInvalidVenue, v.FinalOrderTime, v.OpeningTime)
	}
	if v.FinalOrderTime.MinutesFromMidnight() > v.ClosingTime.MinutesFromMidnight() {
		return fmt.Errorf("%w: closing_time %s before final_order_time %s", ErrInvalidVenue, v.ClosingTime, v.FinalOrderTime)
	}
	if len(v.Floors) == 0 {
		return fmt.Errorf("%w: at least one floor required", ErrInvalidVenue)
	}
	floorIDs := make(map[string]bool, len(v.Floors))
	for _, f := range v.Floors {
		if f.ID == "" {
			return fmt.Errorf("%w: floor with empty id", ErrInvalidVenue)
		}
		if floorIDs[f.ID] {
			return fmt.Errorf("%w: duplicate floor id %q", ErrInvalidVenue, f.ID)
		}
		floorIDs[f.ID] = true
		numbers := make(map[int]bool, len(f.Tables))
		for _, t := range f.Tables {
			if numbers[t.Number] {
				return fmt.Errorf("%w: floor %q: duplicate table number %d", ErrInvalidVenue, f.ID, t.Number)
			}
			numbers[t.Number] = true
			if t.Seats <= 0 {
				return fmt.Errorf("%w: floor %q table %d: seats must be positive, got %d", ErrInvalidVenue, f.ID, t.Number, t.Seats)
			}
		}
	}
	for _, j := range v.CommonTableJoins {
		if !floorIDs[j.Floor] {
			return fmt.Errorf("%w: table join references unknown floor %q", ErrInvalidVenue, j.Floor)
		}
		if len(j.Tables) < 2 {
			return fmt.Errorf("%w: table join on floor %q needs at least two tables", ErrInvalidVenue, j.Floor)
		}
	}
	return nil
}

// OpenMinutes returns the length of the operating window in minutes.
func (v *Venue) OpenMinutes() int {
	return v.ClosingTime.MinutesFromMidnight() - v.OpeningTime.MinutesFromMidnight()
}
