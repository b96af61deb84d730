package openinghours_test

import (
	"testing"

	"github.com/go-chrono/openinghours"
)

func TestCalendarInsertAndContains(t *testing.T) {
	cal := openinghours.NewCalendar(2024, 2024)
	christmas := openinghours.LocalDateOf(2024, openinghours.December, 25)
	if !cal.Insert(christmas) {
		t.Fatalf("Insert(%v) = false, want true (within reserved range)", christmas)
	}
	if !cal.Contains(christmas) {
		t.Errorf("Contains(%v) = false, want true", christmas)
	}

	boxingDay := openinghours.LocalDateOf(2024, openinghours.December, 26)
	if cal.Contains(boxingDay) {
		t.Errorf("Contains(%v) = true, want false", boxingDay)
	}

	outOfRange := openinghours.LocalDateOf(2030, openinghours.December, 25)
	if cal.Insert(outOfRange) {
		t.Errorf("Insert(%v) = true, want false (outside reserved range)", outOfRange)
	}
}

func TestCalendarFirstOnOrAfter(t *testing.T) {
	cal := openinghours.NewCalendar(2024, 2024)
	cal.Insert(openinghours.LocalDateOf(2024, openinghours.May, 1))
	cal.Insert(openinghours.LocalDateOf(2024, openinghours.December, 25))

	got, ok := cal.FirstOnOrAfter(openinghours.LocalDateOf(2024, openinghours.June, 1))
	if !ok {
		t.Fatalf("FirstOnOrAfter reported none found")
	}
	if want := openinghours.LocalDateOf(2024, openinghours.December, 25); got != want {
		t.Errorf("FirstOnOrAfter = %v, want %v", got, want)
	}
}

func TestHolidaySetContains(t *testing.T) {
	cal := openinghours.NewCalendar(2024, 2024)
	newYear := openinghours.LocalDateOf(2024, openinghours.January, 1)
	cal.Insert(newYear)

	set := openinghours.NewHolidaySet(cal)
	if !set.Contains(newYear) {
		t.Errorf("HolidaySet.Contains(%v) = false, want true", newYear)
	}
	if set.Contains(openinghours.LocalDateOf(2024, openinghours.January, 2)) {
		t.Errorf("HolidaySet.Contains should be false for a non-holiday date")
	}
}

func TestExpressionPublicHolidaySelector(t *testing.T) {
	cal := openinghours.NewCalendar(2024, 2024)
	newYear := openinghours.LocalDateOf(2024, openinghours.January, 1)
	cal.Insert(newYear)
	holidays := openinghours.NewHolidaySet(cal)

	expr, err := openinghours.Parse("24/7 ; PH closed")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	ctx := openinghours.DefaultContext().WithHolidays(holidays, holidays)
	expr = expr.WithContext(ctx)

	if !expr.IsClosed(dt(2024, openinghours.January, 1, 10, 0)) {
		t.Errorf("expected closed on the public holiday")
	}
	if expr.IsClosed(dt(2024, openinghours.January, 2, 10, 0)) {
		t.Errorf("expected open (24/7 base rule) on a non-holiday date")
	}
}
