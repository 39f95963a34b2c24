package model

import "testing"

func TestClockTimeComponents(t *testing.T) {
	tests := []struct {
		in     ClockTime
		hour   int
		minute int
		mins   int
	}{
		{0, 0, 0, 0},
		{1830, 18, 30, 1110},
		{2300, 23, 0, 1380},
		{905, 9, 5, 545},
	}
	for _, tc := range tests {
		if got := tc.in.Hour(); got != tc.hour {
			t.Errorf("ClockTime(%d).Hour() = %d, want %d", int(tc.in), got, tc.hour)
		}
		if got := tc.in.Minute(); got != tc.minute {
			t.Errorf("ClockTime(%d).Minute() = %d, want %d", int(tc.in), got, tc.minute)
		}
		if got := tc.in.MinutesFromMidnight(); got != tc.mins {
			t.Errorf("ClockTime(%d).MinutesFromMidnight() = %d, want %d", int(tc.in), got, tc.mins)
		}
	}
}

func TestClockTimeAddCarriesHours(t *testing.T) {
	tests := []struct {
		in   ClockTime
		add  int
		want ClockTime
	}{
		{1830, 120, 2030},
		{1845, 15, 1900},
		{2250, 30, 2320},
		{1800, 0, 1800},
	}
	for _, tc := range tests {
		if got := tc.in.Add(tc.add); got != tc.want {
			t.Errorf("ClockTime(%d).Add(%d) = %d, want %d", int(tc.in), tc.add, int(got), int(tc.want))
		}
	}
}

func TestClockTimeValidate(t *testing.T) {
	for _, ok := range []ClockTime{0, 1830, 2359, 900} {
		if err := ok.Validate(); err != nil {
			t.Errorf("ClockTime(%d).Validate() = %v, want nil", int(ok), err)
		}
	}
	for _, bad := range []ClockTime{2400, 1860, 1299, -100} {
		if err := bad.Validate(); err == nil {
			t.Errorf("ClockTime(%d).Validate() = nil, want error", int(bad))
		}
	}
}

func TestClockTimeString(t *testing.T) {
	if got := ClockTime(1805).String(); got != "18:05" {
		t.Errorf("String() = %q, want %q", got, "18:05")
	}
}
