package openinghours

// DateTimeRange is a half-open `[Start, End)` interval of uniform state,
// as yielded by IterFrom/IterRange (spec.md §6 "Interval").
type DateTimeRange struct {
	Start, End LocalDateTime
	Kind       RuleKind
	Comment    string
}

// Iterator streams DateTimeRanges in strictly increasing start order,
// stitching per-day schedules together and skipping ahead over stretches
// of unchanged state using the date filter's hints (spec.md §4.7). It is
// single-pass and not restartable.
type Iterator struct {
	expr    Expression
	ctx     *Context
	curDate LocalDate
	sched   []TimeRange
	pos     int
	lower   LocalDateTime
	end     LocalDateTime
}

// IterFrom returns an iterator over the half-open interval from `from` to
// the upper date bound.
func (e Expression) IterFrom(from LocalDateTime) *Iterator {
	upper := OfLocalDateAndTime(farDateBound.AddDate(0, 0, 1), LocalTimeOf(0, 0, 0, 0))
	return e.IterRange(from, upper)
}

// IterRange returns an iterator over the half-open interval [from, to).
func (e Expression) IterRange(from, to LocalDateTime) *Iterator {
	ctx := e.context()
	it := &Iterator{expr: e, ctx: ctx, end: to, lower: from}

	if from.Compare(to) >= 0 {
		it.pos, it.sched = 0, nil
		return it
	}

	fromDate, fromTime := from.Split()
	it.curDate = fromDate
	it.sched = e.ScheduleAt(fromDate).Ranges()

	for it.pos < len(it.sched) && it.sched[it.pos].Range.End.Compare(ExtendedTime{t: fromTime}) <= 0 {
		it.pos++
	}

	return it
}

// Next returns the next labelled interval, or false once the iterator is
// exhausted or the requested window has been fully consumed.
func (it *Iterator) Next() (DateTimeRange, bool) {
	if it.pos >= len(it.sched) {
		return DateTimeRange{}, false
	}

	entry := it.sched[it.pos]
	kind, comment := entry.Kind, entry.Comment
	start := extendedDateTime(it.curDate, entry.Range.Start)
	if start.Compare(it.lower) < 0 {
		start = it.lower
	}

	startDate := it.curDate
	it.consumeWhileSameState(kind, comment, startDate)

	endDate := it.curDate
	endTime := StartOfDay()
	if it.pos < len(it.sched) {
		endTime = it.sched[it.pos].Range.Start
	}
	end := extendedDateTime(endDate, endTime)

	if end.Compare(it.end) > 0 {
		end = it.end
	}

	if bound := it.ctx.boundIntervalSize(); bound > 0 && minutesBetween(start, end) > int(bound.Minutes()) {
		end = it.end
	}

	if start.Compare(it.end) >= 0 {
		it.pos = len(it.sched)
		return DateTimeRange{}, false
	}

	return DateTimeRange{Start: start, End: end, Kind: kind, Comment: comment}, true
}

// entryMatches reports whether the entry at the cursor has the given
// (kind, comment) state.
func (it *Iterator) entryMatches(kind RuleKind, comment string) bool {
	if it.pos >= len(it.sched) {
		return false
	}
	e := it.sched[it.pos]
	return e.Kind == kind && e.Comment == comment
}

// consumeWhileSameState advances the cursor, including across day
// boundaries via the date-filter hint stream, while the active entry
// keeps the given (kind, comment) state. If a bound interval size is set
// on the context, it stops early once the run has grown past it rather
// than walking potentially thousands of years of unchanging state, per
// spec.md §4.7's "safety valve" (the caller then reports the interval as
// open-ended rather than computing its exact far-future end).
func (it *Iterator) consumeWhileSameState(kind RuleKind, comment string, startDate LocalDate) {
	bound := it.ctx.boundIntervalSize()
	for it.entryMatches(kind, comment) {
		if bound > 0 && int(it.curDate-startDate) > int(bound.Hours()/24)+1 {
			return
		}

		it.pos++

		if it.pos >= len(it.sched) {
			next := it.nextPotentialChangeDate()
			if !next.After(it.curDate) {
				next = it.curDate.AddDate(0, 0, 1)
			}
			it.curDate = next

			if !next.Before(dateEnd) {
				return
			}

			it.sched = it.expr.ScheduleAt(next).Ranges()
			it.pos = 0
		}
	}
}

// nextPotentialChangeDate is the union, across every rule sequence's day
// selector, of the sound lower-bound hints of spec.md §4.4. It is
// recomputed on demand at every day boundary rather than precomputed as a
// stream: a documented simplification that stays sound (it never skips a
// date where the state could change) at the cost of repeating the hint
// computation each time the schedule runs dry for a day.
func (it *Iterator) nextPotentialChangeDate() LocalDate {
	best := farDateBound
	for _, rs := range it.expr.Rules {
		hint := nextHintDaySelector(rs.Day, it.curDate, it.ctx)
		if !rs.Time.IsFullDay() && it.curDate.CanAddDate(0, 0, 1) {
			// A partial-day time selector changes state within every day it
			// applies to, so the following day cannot be skipped.
			if next := it.curDate.AddDate(0, 0, 1); next.Before(hint) {
				hint = next
			}
		}
		if hint.Before(best) {
			best = hint
		}
	}
	return best
}

func extendedDateTime(date LocalDate, t ExtendedTime) LocalDateTime {
	hour, minute := t.Clock()
	for hour >= 24 {
		hour -= 24
		date = date.AddDate(0, 0, 1)
	}
	return OfLocalDateAndTime(date, LocalTimeOf(hour, minute, 0, 0))
}

func minutesBetween(a, b LocalDateTime) int {
	ad, at := a.Split()
	bd, bt := b.Split()
	ah, am, _ := at.Clock()
	bh, bm, _ := bt.Clock()
	days := int(bd) - int(ad)
	return days*24*60 + (bh*60 + bm) - (ah*60 + am)
}
