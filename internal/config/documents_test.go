package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/roysiu-gh/restam/internal/model"
)

func writeDoc(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const venueDoc = `{
  "name": "Haggerston",
  "slot_interval_mins": 15,
  "opening_time": 1800,
  "final_order_time": 2230,
  "closing_time": 2300,
  "max_stay_mins": 120,
  "floors": [
    {"id": "ground", "tables": [{"number": 1, "seats": 4}, {"number": 2, "seats": 2}]}
  ],
  "common_table_joins": [{"floor": "ground", "tables": [1, 2]}]
}`

func TestLoadVenue(t *testing.T) {
	v, err := LoadVenue(writeDoc(t, "venue.json", venueDoc))
	if err != nil {
		t.Fatalf("LoadVenue: %v", err)
	}
	if v.Name != "Haggerston" || v.SlotIntervalMins != 15 {
		t.Errorf("venue = %+v", v)
	}
	if v.OpeningTime != 1800 || v.ClosingTime != 2300 {
		t.Errorf("hours = %s..%s, want 18:00..23:00", v.OpeningTime, v.ClosingTime)
	}
	if len(v.Floors) != 1 || len(v.Floors[0].Tables) != 2 {
		t.Errorf("layout = %+v", v.Floors)
	}
	if len(v.CommonTableJoins) != 1 {
		t.Errorf("joins = %+v", v.CommonTableJoins)
	}
}

func TestLoadVenueErrors(t *testing.T) {
	if _, err := LoadVenue(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
	if _, err := LoadVenue(writeDoc(t, "venue.json", "{not json")); err == nil {
		t.Error("malformed JSON accepted")
	}
	// Structurally sound JSON that fails validation.
	bad := `{"name": "x", "slot_interval_mins": 0, "opening_time": 1800,
	         "final_order_time": 2230, "closing_time": 2300, "max_stay_mins": 120,
	         "floors": [{"id": "ground", "tables": [{"number": 1, "seats": 4}]}]}`
	if _, err := LoadVenue(writeDoc(t, "venue.json", bad)); !errors.Is(err, model.ErrInvalidVenue) {
		t.Errorf("invalid venue = %v, want ErrInvalidVenue", err)
	}
}

func TestLoadMenu(t *testing.T) {
	doc := `{
	  "1": {"name": "Fish and chips", "price_cents": 1295, "veg": 0, "nut_free": true},
	  "2": {"name": "Garden salad", "price_cents": 850, "veg": 2}
	}`
	m, err := LoadMenu(writeDoc(t, "menu.json", doc))
	if err != nil {
		t.Fatalf("LoadMenu: %v", err)
	}
	if len(m) != 2 || !m.Has("1") || !m.Has("2") {
		t.Fatalf("menu = %+v", m)
	}
	salad := m["2"]
	if salad.PriceCents != 850 || salad.Veg == nil || *salad.Veg != model.VegVegan {
		t.Errorf("salad = %+v", salad)
	}
	if salad.EggFree != nil {
		t.Error("absent dietary flag should stay nil")
	}
}

func TestLoadMenuErrors(t *testing.T) {
	if _, err := LoadMenu(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file accepted")
	}
	bad := `{"1": {"name": "", "price_cents": 100}}`
	if _, err := LoadMenu(writeDoc(t, "menu.json", bad)); !errors.Is(err, model.ErrInvalidMenu) {
		t.Errorf("invalid menu = %v, want ErrInvalidMenu", err)
	}
}
