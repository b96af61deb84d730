package openinghours_test

import (
	"testing"

	"github.com/go-chrono/openinghours"
)

func mustExtendedTime(t *testing.T, hour, minute int) openinghours.ExtendedTime {
	t.Helper()
	et, err := openinghours.ExtendedTimeOf(hour, minute)
	if err != nil {
		t.Fatalf("ExtendedTimeOf(%d, %d) error: %v", hour, minute, err)
	}
	return et
}

func TestScheduleFromRangesCoalescesOverlaps(t *testing.T) {
	a := mustExtendedTime(t, 9, 0)
	b := mustExtendedTime(t, 12, 0)
	c := mustExtendedTime(t, 11, 0)
	d := mustExtendedTime(t, 17, 0)

	sched := openinghours.ScheduleFromRanges([]openinghours.ExtendedRange{
		{Start: a, End: b},
		{Start: c, End: d},
	}, openinghours.Open, "")

	ranges := sched.Ranges()
	if len(ranges) != 3 {
		t.Fatalf("len(Ranges()) = %d, want 3 (open 09-17, closed elsewhere)", len(ranges))
	}
	if ranges[1].Kind != openinghours.Open || ranges[1].Range.Start != a || ranges[1].Range.End != d {
		t.Errorf("middle range = %+v, want Open [09:00, 17:00)", ranges[1])
	}
}

func TestScheduleAdditionOverridesOverlap(t *testing.T) {
	open9to17 := openinghours.ScheduleFromRanges([]openinghours.ExtendedRange{
		{Start: mustExtendedTime(t, 9, 0), End: mustExtendedTime(t, 17, 0)},
	}, openinghours.Open, "")

	lunchClosed := openinghours.ScheduleFromRanges([]openinghours.ExtendedRange{
		{Start: mustExtendedTime(t, 12, 0), End: mustExtendedTime(t, 13, 0)},
	}, openinghours.Closed, "lunch")

	merged := open9to17.Addition(lunchClosed)
	ranges := merged.Ranges()

	var foundLunch bool
	for _, r := range ranges {
		if r.Kind == openinghours.Closed && r.Comment == "lunch" {
			foundLunch = true
			if r.Range.Start != mustExtendedTime(t, 12, 0) || r.Range.End != mustExtendedTime(t, 13, 0) {
				t.Errorf("lunch range = %+v, want [12:00, 13:00)", r.Range)
			}
		}
	}
	if !foundLunch {
		t.Errorf("Ranges() = %+v, want a closed \"lunch\" entry", ranges)
	}
}

func TestScheduleIsEmpty(t *testing.T) {
	if !openinghours.NewSchedule().IsEmpty() {
		t.Errorf("NewSchedule().IsEmpty() = false, want true")
	}

	nonEmpty := openinghours.ScheduleFromRanges([]openinghours.ExtendedRange{
		{Start: mustExtendedTime(t, 0, 0), End: mustExtendedTime(t, 1, 0)},
	}, openinghours.Open, "")
	if nonEmpty.IsEmpty() {
		t.Errorf("non-empty schedule reported IsEmpty() = true")
	}
}

func TestScheduleFromRangesDropsEmptyRanges(t *testing.T) {
	t0 := mustExtendedTime(t, 9, 0)
	sched := openinghours.ScheduleFromRanges([]openinghours.ExtendedRange{{Start: t0, End: t0}}, openinghours.Open, "")
	if !sched.IsEmpty() {
		t.Errorf("zero-width range should be dropped, got %+v", sched.Ranges())
	}
}

func TestScheduleFilterClosedRanges(t *testing.T) {
	sched := openinghours.ScheduleFromRanges([]openinghours.ExtendedRange{
		{Start: mustExtendedTime(t, 9, 0), End: mustExtendedTime(t, 17, 0)},
	}, openinghours.Closed, "")

	filtered := sched.FilterClosedRanges()
	if !filtered.IsEmpty() {
		t.Errorf("FilterClosedRanges() should drop bare closed/no-comment entries, got %+v", filtered.Ranges())
	}
}
