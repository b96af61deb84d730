package openinghours_test

import (
	"testing"

	"github.com/go-chrono/openinghours"
)

func TestLocalTime(t *testing.T) {
	time := openinghours.LocalTimeOf(12, 30, 59, 12345678)

	hour, min, sec := time.Clock()
	if hour != 12 {
		t.Errorf("time.Clock() hour = %d, want 12", hour)
	}

	if min != 30 {
		t.Errorf("time.Clock() min = %d, want 30", min)
	}

	if sec != 59 {
		t.Errorf("time.Clock() sec = %d, want 59", sec)
	}

	if nsec := time.Nanosecond(); nsec != 12345678 {
		t.Errorf("time.Nanosecond() = %d, want 12345678", nsec)
	}
}

func TestLocalTime_String(t *testing.T) {
	for _, tt := range []struct {
		name     string
		time     openinghours.LocalTime
		expected string
	}{
		{"simple", openinghours.LocalTimeOf(9, 0, 0, 0), "09:00:00"},
		{"nanoseconds", openinghours.LocalTimeOf(9, 0, 0, 12345678), "09:00:00.012345678"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if output := tt.time.String(); output != tt.expected {
				t.Errorf("LocalTime.String() = %s, want %s", output, tt.expected)
			}
		})
	}
}

func TestLocalTime_BusinessHour(t *testing.T) {
	time := openinghours.LocalTimeOf(25, 0, 0, 0)

	if hour := time.BusinessHour(); hour != 25 {
		t.Errorf("time.BusinessHour() = %d, want 25", hour)
	}

	if hour, _, _ := time.Clock(); hour != 1 {
		t.Errorf("time.Clock() hour = %d, want 1", hour)
	}
}

func TestLocalTime_Compare(t *testing.T) {
	for _, tt := range []struct {
		name     string
		t        openinghours.LocalTime
		t2       openinghours.LocalTime
		expected int
	}{
		{"earlier", openinghours.LocalTimeOf(11, 0, 0, 0), openinghours.LocalTimeOf(12, 0, 0, 0), -1},
		{"later", openinghours.LocalTimeOf(13, 30, 0, 0), openinghours.LocalTimeOf(13, 29, 55, 0), 1},
		{"equal", openinghours.LocalTimeOf(15, 0, 0, 1000), openinghours.LocalTimeOf(15, 0, 0, 1000), 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if v := tt.t.Compare(tt.t2); v != tt.expected {
				t.Errorf("t.Compare(t2) = %d, want %d", v, tt.expected)
			}
		})
	}
}
