package openinghours_test

import (
	"testing"

	"github.com/go-chrono/openinghours"
)

func TestWeekday_String(t *testing.T) {
	for _, tt := range []struct {
		day      openinghours.Weekday
		expected string
	}{
		{
			day:      openinghours.Weekday(0),
			expected: "Monday",
		},
		{
			day:      openinghours.Weekday(6),
			expected: "Sunday",
		},
		{
			day:      openinghours.Weekday(7),
			expected: "%!Weekday(7)",
		},
	} {
		t.Run(tt.expected, func(t *testing.T) {
			if out := tt.day.String(); out != tt.expected {
				t.Fatalf("stringified day = %s, want %s", out, tt.expected)
			}
		})
	}
}

func TestMonth_String(t *testing.T) {
	for _, tt := range []struct {
		day      openinghours.Month
		expected string
	}{
		{
			day:      openinghours.Month(0),
			expected: "%!Month(0)",
		},
		{
			day:      openinghours.Month(1),
			expected: "January",
		},
		{
			day:      openinghours.Month(12),
			expected: "December",
		},
		{
			day:      openinghours.Month(13),
			expected: "%!Month(13)",
		},
	} {
		t.Run(tt.expected, func(t *testing.T) {
			if out := tt.day.String(); out != tt.expected {
				t.Fatalf("stringified month = %s, want %s", out, tt.expected)
			}
		})
	}
}
