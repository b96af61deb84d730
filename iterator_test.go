package openinghours_test

import (
	"testing"

	"github.com/go-chrono/openinghours"
)

func TestIterRangeWeekdayAndTime(t *testing.T) {
	expr, err := openinghours.Parse("Mo-Fr 09:00-17:00")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	// 2024-01-01 is a Monday; iterate across the weekend into next Monday.
	it := expr.IterRange(
		dt(2024, openinghours.January, 1, 0, 0),
		dt(2024, openinghours.January, 8, 0, 0),
	)

	var got []openinghours.DateTimeRange
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, r)
	}

	if len(got) == 0 {
		t.Fatalf("IterRange produced no intervals")
	}

	for i := 1; i < len(got); i++ {
		if got[i].Start.Compare(got[i-1].End) != 0 {
			t.Errorf("interval %d starts at %v, want contiguous with previous end %v", i, got[i].Start, got[i-1].End)
		}
	}

	var sawOpen, sawClosed bool
	for _, r := range got {
		switch r.Kind {
		case openinghours.Open:
			sawOpen = true
		case openinghours.Closed:
			sawClosed = true
		}
	}
	if !sawOpen || !sawClosed {
		t.Errorf("expected both Open and Closed intervals across a full week, got sawOpen=%v sawClosed=%v", sawOpen, sawClosed)
	}

	last := got[len(got)-1]
	if want := dt(2024, openinghours.January, 8, 0, 0); last.End.Compare(want) != 0 {
		t.Errorf("last interval ends at %v, want the requested upper bound %v", last.End, want)
	}
}

func TestIterRangeEmptyWindow(t *testing.T) {
	expr, err := openinghours.Parse("24/7")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	at := dt(2024, openinghours.January, 1, 12, 0)
	it := expr.IterRange(at, at)
	if _, ok := it.Next(); ok {
		t.Errorf("IterRange(from, from) should yield nothing")
	}
}

func TestIterFromBoundedByFarDateBound(t *testing.T) {
	expr, err := openinghours.Parse("24/7")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	_, ok := expr.NextChange(dt(2024, openinghours.January, 1, 0, 0))
	if ok {
		t.Errorf("NextChange should report no further change for an always-open expression")
	}
}
