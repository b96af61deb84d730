package openinghours_test

import (
	"testing"

	"github.com/go-chrono/openinghours"
)

func dt(year int, month openinghours.Month, day, hour, minute int) openinghours.LocalDateTime {
	date := openinghours.LocalDateOf(year, month, day)
	time := openinghours.LocalTimeOf(hour, minute, 0, 0)
	return openinghours.OfLocalDateAndTime(date, time)
}

func TestExpressionAlwaysOpen(t *testing.T) {
	expr, err := openinghours.Parse("24/7")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	for _, at := range []openinghours.LocalDateTime{
		dt(2024, openinghours.January, 1, 0, 0),
		dt(2024, openinghours.July, 15, 23, 59),
		dt(2050, openinghours.December, 31, 12, 0),
	} {
		if !expr.IsOpen(at) {
			t.Errorf("IsOpen(%v) = false, want true for 24/7", at)
		}
	}
}

func TestExpressionWeekdayAndTime(t *testing.T) {
	expr, err := openinghours.Parse("Mo-Fr 09:00-17:00")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	// 2024-01-01 is a Monday.
	if !expr.IsOpen(dt(2024, openinghours.January, 1, 9, 0)) {
		t.Errorf("expected open at Mon 09:00")
	}
	if expr.IsOpen(dt(2024, openinghours.January, 1, 8, 59)) {
		t.Errorf("expected closed at Mon 08:59")
	}
	if expr.IsOpen(dt(2024, openinghours.January, 1, 17, 0)) {
		t.Errorf("expected closed at Mon 17:00 (end is exclusive)")
	}
	// 2024-01-06 is a Saturday.
	if expr.IsOpen(dt(2024, openinghours.January, 6, 10, 0)) {
		t.Errorf("expected closed on Saturday")
	}
}

func TestExpressionAdditiveKindTransition(t *testing.T) {
	expr, err := openinghours.Parse(`Mo-Fr 09:00-17:00, Mo 12:00-13:00 unknown "lunch"`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	kind, comment := expr.State(dt(2024, openinghours.January, 1, 12, 30))
	if kind != openinghours.Unknown || comment != "lunch" {
		t.Errorf("State(Mon 12:30) = (%v, %q), want (Unknown, \"lunch\")", kind, comment)
	}

	kind, _ = expr.State(dt(2024, openinghours.January, 1, 14, 0))
	if kind != openinghours.Open {
		t.Errorf("State(Mon 14:00) = %v, want Open", kind)
	}
}

func TestExpressionMonthRangeTransition(t *testing.T) {
	expr, err := openinghours.Parse("Jun-Aug 10:00-18:00")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if !expr.IsOpen(dt(2024, openinghours.July, 1, 12, 0)) {
		t.Errorf("expected open in July")
	}
	if expr.IsOpen(dt(2024, openinghours.September, 1, 12, 0)) {
		t.Errorf("expected closed in September")
	}
}

func TestExpressionSingleFixedDate(t *testing.T) {
	expr, err := openinghours.Parse("24/7 ; Dec 25 closed")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if !expr.IsClosed(dt(2024, openinghours.December, 25, 10, 0)) {
		t.Errorf("expected closed on Dec 25")
	}
	if expr.IsClosed(dt(2024, openinghours.December, 24, 10, 0)) {
		t.Errorf("expected not closed (24/7 base rule) on Dec 24")
	}
}

func TestExpressionOpenEndTime(t *testing.T) {
	expr, err := openinghours.Parse("Mo dusk+")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	kind, _ := expr.State(dt(2024, openinghours.January, 1, 23, 0))
	if kind != openinghours.Open {
		t.Errorf("State(Mon 23:00) = %v, want Open for an open-ended dusk+ span", kind)
	}
}

func TestExpressionNextChange(t *testing.T) {
	expr, err := openinghours.Parse("Mo-Fr 09:00-17:00")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	next, ok := expr.NextChange(dt(2024, openinghours.January, 1, 9, 0))
	if !ok {
		t.Fatalf("NextChange reported no further change")
	}
	if want := dt(2024, openinghours.January, 1, 17, 0); next.Compare(want) != 0 {
		t.Errorf("NextChange = %v, want %v", next, want)
	}
}

func TestExpressionFallbackAppliesOnlyWhenNothingMatched(t *testing.T) {
	expr, err := openinghours.Parse(`Mo-Fr 09:00-17:00 || unknown "by appointment"`)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	kind, _ := expr.State(dt(2024, openinghours.January, 1, 10, 0))
	if kind != openinghours.Open {
		t.Errorf("State(Mon 10:00) = %v, want Open (primary rule matched)", kind)
	}

	kind, comment := expr.State(dt(2024, openinghours.January, 6, 10, 0))
	if kind != openinghours.Unknown || comment != "by appointment" {
		t.Errorf("State(Sat 10:00) = (%v, %q), want (Unknown, \"by appointment\") via fallback", kind, comment)
	}
}
