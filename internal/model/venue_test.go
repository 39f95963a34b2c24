package model

import (
	"errors"
	"strings"
	"testing"
)

func validVenue() Venue {
	return Venue{
		Name:             "Haggerston",
		SlotIntervalMins: 15,
		OpeningTime:      1800,
		FinalOrderTime:   2230,
		ClosingTime:      2300,
		MaxStayMins:      120,
		Floors: []Floor{
			{ID: "ground", Tables: []Table{{Number: 1, Seats: 4}, {Number: 2, Seats: 2}}},
			{ID: "first", Tables: []Table{{Number: 1, Seats: 6}}},
		},
		CommonTableJoins: []TableJoin{{Floor: "ground", Tables: []int{1, 2}}},
	}
}

func TestVenueValidateAccepts(t *testing.T) {
	v := validVenue()
	if err := v.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestVenueValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Venue)
		want   string
	}{
		{"zero interval", func(v *Venue) { v.SlotIntervalMins = 0 }, "slot_interval_mins"},
		{"zero max stay", func(v *Venue) { v.MaxStayMins = 0 }, "max_stay_mins"},
		{"bad opening time", func(v *Venue) { v.OpeningTime = 2460 }, "opening_time"},
		{"final orders before opening", func(v *Venue) { v.FinalOrderTime = 1700 }, "final_order_time"},
		{"closing before final orders", func(v *Venue) { v.ClosingTime = 2200 }, "closing_time"},
		{"no floors", func(v *Venue) { v.Floors = nil }, "floor"},
		{"empty floor id", func(v *Venue) { v.Floors[0].ID = "" }, "empty id"},
		{"duplicate floor id", func(v *Venue) { v.Floors[1].ID = "ground" }, "duplicate floor"},
		{"duplicate table number", func(v *Venue) { v.Floors[0].Tables[1].Number = 1 }, "duplicate table"},
		{"zero seats", func(v *Venue) { v.Floors[0].Tables[0].Seats = 0 }, "seats"},
		{"join on unknown floor", func(v *Venue) { v.CommonTableJoins[0].Floor = "roof" }, "unknown floor"},
		{"join of one table", func(v *Venue) { v.CommonTableJoins[0].Tables = []int{1} }, "two tables"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := validVenue()
			tc.mutate(&v)
			err := v.Validate()
			if !errors.Is(err, ErrInvalidVenue) {
				t.Fatalf("Validate() = %v, want ErrInvalidVenue", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestVenueOpenMinutes(t *testing.T) {
	v := validVenue()
	if got := v.OpenMinutes(); got != 300 {
		t.Errorf("OpenMinutes() = %d, want 300", got)
	}
}

func TestMenuValidate(t *testing.T) {
	veg := VegVegetarian
	yes := true
	good := Menu{
		"1": {Name: "pie", PriceCents: 1250, Veg: &veg, NutFree: &yes},
		"2": {Name: "soup", PriceCents: 0},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name string
		menu Menu
	}{
		{"empty key", Menu{"": {Name: "x", PriceCents: 1}}},
		{"missing name", Menu{"1": {PriceCents: 1}}},
		{"negative price", Menu{"1": {Name: "x", PriceCents: -1}}},
		{"veg out of range", Menu{"1": {Name: "x", Veg: func() *uint8 { v := uint8(3); return &v }()}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.menu.Validate(); !errors.Is(err, ErrInvalidMenu) {
				t.Errorf("Validate() = %v, want ErrInvalidMenu", err)
			}
		})
	}
}
