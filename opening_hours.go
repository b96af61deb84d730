package openinghours

import "strings"

// dateStart and dateEnd are the inclusive/exclusive date bounds the
// evaluator operates within; dates outside them always yield an empty
// schedule and an unbounded next_change.
var dateStart = LocalDateOf(1900, January, 1)
var dateEnd = farDateBound.AddDate(0, 0, 1) // exclusive upper bound, year 10000

func joinComments(comments []string) string {
	return strings.Join(comments, "; ")
}

// WithContext returns a copy of e evaluated against ctx instead of the
// default context.
func (e Expression) WithContext(ctx *Context) Expression {
	e.ctx = ctx
	return e
}

func (e Expression) context() *Context {
	if e.ctx == nil {
		return DefaultContext()
	}
	return e.ctx
}

// ScheduleAt computes the one-day schedule that results from evaluating
// every rule sequence against date, applying each rule sequence's
// combinator against the schedule accumulated from the rules before it,
// per spec.md §4.6/§9.
func (e Expression) ScheduleAt(date LocalDate) Schedule {
	if date.Before(dateStart) || !date.Before(dateEnd) {
		return NewSchedule()
	}

	ctx := e.context()

	var prevMatch bool
	var prevEval *Schedule

	for _, rs := range e.Rules {
		currMatch := matchesDaySelector(rs.Day, date, ctx)
		currEval := ruleSequenceScheduleAt(rs, date, ctx)

		var newMatch bool
		var newEval *Schedule

		switch {
		case rs.Combiner == CombinatorNormal && (rs.Kind == Open || rs.Kind == Unknown):
			newMatch = currMatch || prevMatch
			switch {
			case currMatch:
				newEval = currEval
			case prevEval != nil:
				newEval = prevEval
			default:
				newEval = currEval
			}
		case rs.Combiner == CombinatorAdditive || (rs.Combiner == CombinatorNormal && rs.Kind == Closed):
			newMatch = prevMatch || currMatch
			switch {
			case prevEval != nil && currEval != nil:
				merged := prevEval.Addition(*currEval)
				newEval = &merged
			case currEval != nil:
				newEval = currEval
			default:
				newEval = prevEval
			}
		case rs.Combiner == CombinatorFallback:
			if prevMatch && prevEval != nil && !prevEval.isAlwaysClosedWithNoComments() {
				newMatch = prevMatch
				newEval = prevEval
			} else {
				newMatch = currMatch
				newEval = currEval
			}
		}

		prevMatch = newMatch
		prevEval = newEval
	}

	if prevEval == nil {
		return NewSchedule()
	}
	return prevEval.FilterClosedRanges()
}

// ruleSequenceScheduleAt resolves a single rule sequence's contribution to
// date's schedule: today's matching ranges plus yesterday's wrap-past
// midnight contribution, per spec.md §4.7 "day-boundary correctness".
func ruleSequenceScheduleAt(rs RuleSequence, date LocalDate, ctx *Context) *Schedule {
	var fromToday, fromYesterday *Schedule

	if matchesDaySelector(rs.Day, date, ctx) {
		ranges := timeSelectorRangesToday(ctx, rs.Time, date)
		sched := ScheduleFromRanges(ranges, rs.Kind, joinComments(rs.Comments))
		fromToday = &sched
	}

	prev := date.AddDate(0, 0, -1)
	if !prev.Before(dateStart) && matchesDaySelector(rs.Day, prev, ctx) {
		ranges := timeSelectorRangesTomorrow(ctx, rs.Time, prev)
		sched := ScheduleFromRanges(ranges, rs.Kind, joinComments(rs.Comments))
		fromYesterday = &sched
	}

	switch {
	case fromToday != nil && fromYesterday != nil:
		merged := fromToday.Addition(*fromYesterday)
		return &merged
	case fromToday != nil:
		return fromToday
	default:
		return fromYesterday
	}
}

// State returns the rule kind and comment active at t.
func (e Expression) State(t LocalDateTime) (RuleKind, string) {
	r, ok := e.firstInterval(t, oneMinuteLater(t))
	if !ok {
		return Closed, ""
	}
	return r.Kind, r.Comment
}

// IsOpen reports whether e is open at t.
func (e Expression) IsOpen(t LocalDateTime) bool {
	kind, _ := e.State(t)
	return kind == Open
}

// IsClosed reports whether e is closed at t.
func (e Expression) IsClosed(t LocalDateTime) bool {
	kind, _ := e.State(t)
	return kind == Closed
}

// IsUnknown reports whether e's state is unknown at t.
func (e Expression) IsUnknown(t LocalDateTime) bool {
	kind, _ := e.State(t)
	return kind == Unknown
}

func oneMinuteLater(t LocalDateTime) LocalDateTime {
	date, clock := t.Split()
	hour, minute, sec := clock.Clock()
	nsec := clock.Nanosecond()
	minute++
	if minute == 60 {
		minute = 0
		hour++
	}
	if hour == 24 {
		return OfLocalDateAndTime(date.AddDate(0, 0, 1), LocalTimeOf(0, minute, sec, nsec))
	}
	return OfLocalDateAndTime(date, LocalTimeOf(hour, minute, sec, nsec))
}

// firstInterval returns the single labelled interval covering [from, to),
// per State's use as a one-minute probe.
func (e Expression) firstInterval(from, to LocalDateTime) (DateTimeRange, bool) {
	it := e.IterRange(from, to)
	r, ok := it.Next()
	return r, ok
}

// NextChange returns the next instant at which e's state changes after t,
// or false if no further change occurs before the upper date bound.
func (e Expression) NextChange(t LocalDateTime) (LocalDateTime, bool) {
	it := e.IterFrom(t)
	r, ok := it.Next()
	if !ok {
		return LocalDateTime{}, false
	}
	endDate, _ := r.End.Split()
	if !endDate.Before(farDateBound) {
		return LocalDateTime{}, false
	}
	return r.End, true
}
