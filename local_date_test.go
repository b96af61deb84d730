package openinghours_test

import (
	"fmt"
	"testing"

	"github.com/go-chrono/openinghours"
)

func TestLocalDate(t *testing.T) {
	for _, tt := range []struct {
		year       int
		month      openinghours.Month
		day        int
		weekday    openinghours.Weekday
		isLeapYear bool
		yearDay    int
		isoYear    int
		isoWeek    int
	}{
		{-4713, openinghours.November, 24, openinghours.Monday, false, 328, -4713, 48}, // 4714 BCE
		{+5874898, openinghours.June, 3, openinghours.Tuesday, false, 154, +5874898, 23},
		{+1858, openinghours.November, 17, openinghours.Wednesday, false, 321, +1858, 46},
		{+1968, openinghours.May, 24, openinghours.Friday, true, 145, +1968, 21},
		{+1950, openinghours.January, 1, openinghours.Sunday, false, 1, +1949, 52},
		{+1958, openinghours.January, 1, openinghours.Wednesday, false, 1, +1958, 1},
		{+1582, openinghours.October, 15, openinghours.Friday, false, 288, +1582, 41},
		{+1, openinghours.January, 1, openinghours.Monday, false, 1, +1, 1},
		{+1970, openinghours.January, 1, openinghours.Thursday, false, 1, +1970, 1},
		{+200, openinghours.March, 1, openinghours.Saturday, false, 60, +200, 9},
		{+2020, openinghours.December, 31, openinghours.Thursday, true, 366, +2020, 53},
		{+2021, openinghours.January, 1, openinghours.Friday, false, 1, +2020, 53},
		{+2000, openinghours.February, 29, openinghours.Tuesday, true, 60, +2000, 9},
		{+2000, openinghours.March, 1, openinghours.Wednesday, true, 61, +2000, 9},
	} {
		t.Run(fmt.Sprintf("%+05d-%02d-%02d", tt.year, tt.month, tt.day), func(t *testing.T) {
			date := openinghours.LocalDateOf(tt.year, tt.month, tt.day)

			year, month, day := date.Date()
			if year != tt.year {
				t.Errorf("d.Date() year = %d, want %d", year, tt.year)
				t.Fail()
			}

			if month != tt.month {
				t.Errorf("d.Date() month = %s, want %s", month, tt.month)
				t.Fail()
			}

			if day != tt.day {
				t.Errorf("d.Date() day = %d, want %d", day, tt.day)
				t.Fail()
			}

			if weekday := date.Weekday(); weekday != tt.weekday {
				t.Errorf("d.Weekday() = %s, want %s", weekday, tt.weekday)
				t.Fail()
			}

			if isLeapYear := date.IsLeapYear(); isLeapYear != tt.isLeapYear {
				t.Errorf("d.IsLeapYear() = %t, want %t", isLeapYear, tt.isLeapYear)
				t.Fail()
			}

			if yearDay := date.YearDay(); yearDay != tt.yearDay {
				t.Errorf("d.YearDay() = %d, want %d", yearDay, tt.yearDay)
				t.Fail()
			}

			isoYear, isoWeek := date.ISOWeek()
			if isoYear != tt.isoYear {
				t.Errorf("d.ISOWeek() year = %d, want %d", isoYear, tt.isoYear)
				t.Fail()
			}

			if isoWeek != tt.isoWeek {
				t.Errorf("d.ISOWeek() week = %d, want %d", isoWeek, tt.isoWeek)
				t.Fail()
			}
		})
	}
}

func TestLocalDateOf(t *testing.T) {
	for _, tt := range []struct {
		name  string
		year  int
		month openinghours.Month
		day   int
	}{
		{"year underflows", -4714, openinghours.January, 1},
		{"year & month underflows", -4713, openinghours.October, 1},
		{"year & month & day underflows", -4713, openinghours.November, 23},
		{"year overflows", 5874899, openinghours.January, 1},
		{"year & month overflows", 5874898, openinghours.July, 1},
		{"year & month & day overflows", 5874898, openinghours.June, 4},
		{"month underflows", 2001, 0, 1},
		{"month overflows", 2001, 13, 1},
		{"day underflows", 2001, openinghours.February, 0},
		{"day overflows", 2001, openinghours.February, 29},
		{"day overflows leap year", 2004, openinghours.February, 30},
	} {
		t.Run(tt.name, func(t *testing.T) {
			func() {
				defer func() {
					if r := recover(); r == nil {
						t.Fatalf("expecting panic that didn't occur")
					}
				}()

				openinghours.LocalDateOf(tt.year, tt.month, tt.day)
			}()
		})
	}
}

func TestLocalDate_Date(t *testing.T) {
	for _, tt := range []struct {
		name  string
		date  openinghours.LocalDate
		year  int
		month openinghours.Month
		day   int
	}{
		{"default value", openinghours.LocalDate(0), 1970, openinghours.January, 1},
		{"minimum value", openinghours.MinLocalDate(), -4713, openinghours.November, 24},
		{"maximum value", openinghours.MaxLocalDate(), 5874898, openinghours.June, 3},
	} {
		t.Run(tt.name, func(t *testing.T) {
			year, month, day := tt.date.Date()
			if year != tt.year {
				t.Errorf("d.Date() year = %d, want %d", year, tt.year)
				t.Fail()
			}

			if month != tt.month {
				t.Errorf("d.Date() month = %s, want %s", month, tt.month)
				t.Fail()
			}

			if day != tt.day {
				t.Errorf("d.Date() day = %d, want %d", day, tt.day)
				t.Fail()
			}
		})
	}
}
