package timetable

import (
	"errors"
	"testing"

	"github.com/roysiu-gh/restam/internal/model"
)

func testVenue(t *testing.T) *model.Venue {
	t.Helper()
	v := &model.Venue{
		Name:             "Haggerston",
		SlotIntervalMins: 15,
		OpeningTime:      1800,
		FinalOrderTime:   2230,
		ClosingTime:      2300,
		MaxStayMins:      120,
		Floors: []model.Floor{
			{ID: "ground", Tables: []model.Table{{Number: 1, Seats: 4}, {Number: 2, Seats: 2}}},
		},
	}
	if err := v.Validate(); err != nil {
		t.Fatalf("test venue invalid: %v", err)
	}
	return v
}

func TestTimeToMoment(t *testing.T) {
	idx := NewMomentIndex(testVenue(t))
	tests := []struct {
		in   model.ClockTime
		want int
	}{
		{1800, 0},
		{1815, 1},
		{1830, 2},
		{1945, 7},
		{2300, 20},
	}
	for _, tc := range tests {
		got, err := idx.TimeToMoment(tc.in)
		if err != nil {
			t.Errorf("TimeToMoment(%d): %v", int(tc.in), err)
			continue
		}
		if got != tc.want {
			t.Errorf("TimeToMoment(%d) = %d, want %d", int(tc.in), got, tc.want)
		}
	}
}

func TestTimeToMomentOutOfRange(t *testing.T) {
	idx := NewMomentIndex(testVenue(t))
	for _, in := range []model.ClockTime{1745, 1759, 2301, 2330, 900} {
		if _, err := idx.TimeToMoment(in); !errors.Is(err, ErrTimeOutOfRange) {
			t.Errorf("TimeToMoment(%d) = %v, want ErrTimeOutOfRange", int(in), err)
		}
	}
}

func TestTimeToMomentMisaligned(t *testing.T) {
	idx := NewMomentIndex(testVenue(t))
	for _, in := range []model.ClockTime{1805, 1817, 2259} {
		if _, err := idx.TimeToMoment(in); !errors.Is(err, ErrTimeMisaligned) {
			t.Errorf("TimeToMoment(%d) = %v, want ErrTimeMisaligned", int(in), err)
		}
	}
}

func TestMomentRoundTrip(t *testing.T) {
	idx := NewMomentIndex(testVenue(t))
	for _, m := range idx.Moments() {
		back, err := idx.TimeToMoment(idx.MomentToTime(m))
		if err != nil {
			t.Fatalf("round trip of moment %d: %v", m, err)
		}
		if back != m {
			t.Errorf("round trip of moment %d gave %d", m, back)
		}
	}
}

// MomentToTime performs no upper-bound check; it formats hypothetical
// moments and callers range-check separately.
func TestMomentToTimeBeyondWindow(t *testing.T) {
	idx := NewMomentIndex(testVenue(t))
	if got := idx.MomentToTime(24); got != 2400 {
		t.Errorf("MomentToTime(24) = %d, want 2400", int(got))
	}
}

func TestMomentsCountDropsPartialSlot(t *testing.T) {
	v := testVenue(t)
	idx := NewMomentIndex(v)
	if got := idx.Count(); got != 20 {
		t.Errorf("Count() = %d, want 20", got)
	}
	if got := len(idx.Moments()); got != 20 {
		t.Errorf("len(Moments()) = %d, want 20", got)
	}

	// 310 minute window, 15 minute interval: the trailing 10 minutes do
	// not make a slot.
	v.ClosingTime = 2310
	if got := NewMomentIndex(v).Count(); got != 20 {
		t.Errorf("Count() with partial slot = %d, want 20", got)
	}
}
