package openinghours

import "fmt"

// ExtendedTime is a minute-precision time-of-day in the range [00:00, 48:00),
// per the OSM opening_hours grammar's extended clock: a time such as 25:00
// denotes one hour past midnight of the *next* day, which lets a time span
// like 22:00-26:00 be expressed without splitting it across two rules.
//
// It is built directly on LocalTime's own extended-hour support (LocalTime
// allows hours up to 99 to model "business hours" that run past midnight);
// ExtendedTime simply narrows that range to what the expression language
// needs and drops sub-minute precision.
type ExtendedTime struct {
	t LocalTime
}

// MidnightExtended is the canonical upper day bound, 24:00.
func MidnightExtended() ExtendedTime {
	return ExtendedTime{t: LocalTimeOf(24, 0, 0, 0)}
}

// StartOfDay is the canonical lower day bound, 00:00.
func StartOfDay() ExtendedTime {
	return ExtendedTime{t: LocalTimeOf(0, 0, 0, 0)}
}

// ExtendedTimeOf constructs an ExtendedTime from an hour in [0, 48] and a
// minute in [0, 59]. It fails, rather than wrapping, when either is out of
// range: callers that want 25:70 to mean something must normalize it
// themselves.
func ExtendedTimeOf(hour, minute int) (ExtendedTime, error) {
	if hour < 0 || hour > 48 || (hour == 48 && minute != 0) {
		return ExtendedTime{}, fmt.Errorf("openinghours: invalid extended time %02d:%02d: hour out of [0,48] range", hour, minute)
	}
	if minute < 0 || minute >= 60 {
		return ExtendedTime{}, fmt.Errorf("openinghours: invalid extended time %02d:%02d: minute out of [0,60) range", hour, minute)
	}
	return ExtendedTime{t: LocalTimeOf(hour, minute, 0, 0)}, nil
}

// MustExtendedTimeOf is like ExtendedTimeOf but panics on error. Intended for
// constructing constants from literals known to be valid.
func MustExtendedTimeOf(hour, minute int) ExtendedTime {
	et, err := ExtendedTimeOf(hour, minute)
	if err != nil {
		panic(err.Error())
	}
	return et
}

// Clock returns the hour and minute, with hour in [0, 48].
func (e ExtendedTime) Clock() (hour, minute int) {
	hour = e.t.BusinessHour()
	_, minute, _ = e.t.Clock()
	return
}

// MinutesSinceMidnight returns the time as an offset in minutes from 00:00,
// in the range [0, 2880].
func (e ExtendedTime) MinutesSinceMidnight() int {
	hour, minute := e.Clock()
	return hour*60 + minute
}

// OfMinutesSinceMidnight is the inverse of MinutesSinceMidnight.
func OfMinutesSinceMidnight(minutes int) (ExtendedTime, error) {
	return ExtendedTimeOf(minutes/60, minutes%60)
}

// Compare returns -1, 0 or 1 as e is before, equal to, or after e2.
func (e ExtendedTime) Compare(e2 ExtendedTime) int {
	return e.t.Compare(e2.t)
}

// Before reports whether e occurs strictly before e2.
func (e ExtendedTime) Before(e2 ExtendedTime) bool { return e.Compare(e2) < 0 }

// After reports whether e occurs strictly after e2.
func (e ExtendedTime) After(e2 ExtendedTime) bool { return e.Compare(e2) > 0 }

// AddMinutes returns e shifted by the signed number of minutes. The result
// saturates to 00:00 on underflow and fails on overflow past 48:00.
func (e ExtendedTime) AddMinutes(minutes int) (ExtendedTime, error) {
	total := e.MinutesSinceMidnight() + minutes
	if total < 0 {
		total = 0
	}
	if total > 48*60 {
		return ExtendedTime{}, fmt.Errorf("openinghours: extended time overflow: %d minutes exceeds 48:00", total)
	}
	return OfMinutesSinceMidnight(total)
}

// SaturatingAddMinutes behaves like AddMinutes but clamps instead of failing
// on overflow past 48:00, per the variable-time offset semantics of §4.5
// ("offset is added saturating to 00:00 on underflow").
func (e ExtendedTime) SaturatingAddMinutes(minutes int) ExtendedTime {
	total := e.MinutesSinceMidnight() + minutes
	if total < 0 {
		total = 0
	}
	if total > 48*60 {
		total = 48 * 60
	}
	out, _ := OfMinutesSinceMidnight(total)
	return out
}

// ShiftDay returns e shifted back by 24:00, clamped to [00:00, 48:00). It is
// used to project the wrap-past-midnight portion of one day's time spans
// onto the following day's timeline.
func (e ExtendedTime) ShiftDay() ExtendedTime {
	m := e.MinutesSinceMidnight() - 24*60
	if m < 0 {
		m = 0
	}
	out, _ := OfMinutesSinceMidnight(m)
	return out
}

// String renders e as HH:MM, with HH possibly exceeding 24.
func (e ExtendedTime) String() string {
	hour, minute := e.Clock()
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
