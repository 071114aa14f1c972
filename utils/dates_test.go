package utils

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in           string
		hour, minute int
		ok           bool
	}{
		{"09:30", 9, 30, true},
		{"00:00", 0, 0, true},
		{"23:59", 23, 59, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"-1:00", 0, 0, false},
		{"noon", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		hour, minute, err := ParseTimeOfDay(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseTimeOfDay(%q) failed: %v", tc.in, err)
				continue
			}
			if hour != tc.hour || minute != tc.minute {
				t.Errorf("ParseTimeOfDay(%q) = %d:%d, want %d:%d", tc.in, hour, minute, tc.hour, tc.minute)
			}
		} else if err == nil {
			t.Errorf("ParseTimeOfDay(%q) succeeded, want error", tc.in)
		}
	}
}

func TestCombineDayTime(t *testing.T) {
	day := time.Date(2026, 8, 31, 17, 45, 12, 0, time.UTC)
	got := CombineDayTime(day, 9, 30)
	want := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("CombineDayTime = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 1, 0, 0, time.UTC)
	if d := DaysBetween(start, end); d != 2 {
		t.Errorf("DaysBetween = %d, want 2", d)
	}
	if d := DaysBetween(end, start); d != -2 {
		t.Errorf("reversed DaysBetween = %d, want -2", d)
	}
}

func TestHoursBetween(t *testing.T) {
	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	if h := HoursBetween(start, start.Add(90*time.Minute)); h != 1.5 {
		t.Errorf("HoursBetween = %v, want 1.5", h)
	}
}
