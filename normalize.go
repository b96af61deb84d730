package openinghours

import "strings"

// Normalize rewrites e into an equivalent expression using the smallest
// number of maximally expanded rule sequences it can find, per spec.md
// §4.8. It is grounded on
// original_source/opening-hours-syntax/src/{simplify,normalize/mod}.rs:
// consecutive rule sequences that can be expressed as axis-aligned boxes
// over (year, month, week, weekday, time) are merged into one paving, then
// re-emitted by repeatedly popping the maximal box of a single (kind,
// comment) value, in open → unknown → closed-with-comment priority order.
//
// Two constructs are never folded into the paving and pass through
// unchanged, per the Open Question decisions recorded in DESIGN.md:
//   - any rule sequence using the fallback combinator (`||`), since its
//     "only applies if nothing preceding matched" semantics would need to
//     be threaded through the box extraction and the source itself treats
//     this as unfinished;
//   - any rule sequence whose day or time selector uses a construct this
//     paving can't represent exactly (a step other than 1, nth-occurrence
//     weekday constraints, a year-qualified or date-form month-day range,
//     a holiday marker, a variable time, an open-ended or repeating time
//     span, or a time span reaching past 24:00).
//
// Plain (bare) closed rules with no comment are never re-emitted: they are
// the paving's implicit background, matching canonical_to_seq's filter
// that only emits a Closed cell when it carries a comment.
func (e Expression) Normalize() Expression {
	var out []RuleSequence
	var group []groupEntry

	flush := func() {
		if len(group) > 0 {
			out = append(out, normalizeGroup(group)...)
			group = nil
		}
	}

	for _, rs := range e.Rules {
		if rs.Combiner == CombinatorFallback {
			flush()
			out = append(out, rs)
			continue
		}

		sel, ok := canonicalizeRuleSequence(rs)
		if !ok {
			flush()
			out = append(out, rs)
			continue
		}

		if rs.Combiner == CombinatorNormal && rs.Kind != Closed {
			// A normal open/unknown rule replaces the whole of each day it
			// selects, so those days are first reset to the closed background.
			fullDay := sel
			fullDay.Time = []timeRange{{StartOfDay(), MidnightExtended()}}
			group = append(group, groupEntry{sel: fullDay, kind: Closed})
		}
		group = append(group, groupEntry{
			sel:     sel,
			kind:    rs.Kind,
			comment: joinComments(rs.Comments),
		})
	}
	flush()

	e.Rules = out
	return e
}

// groupEntry is one canonicalized rule sequence awaiting paving assembly.
type groupEntry struct {
	sel     boxSelector
	kind    RuleKind
	comment string
}

// normalizeGroup assembles a single paving from a run of canonicalizable
// rule sequences (later entries overwrite earlier ones wherever their
// boxes overlap; since Normalize puts a bare closed entry over the full
// days of each normal open/unknown rule ahead of it, this matches Normal's
// whole-day override and Additive's effective behavior once reduced to
// disjoint boxes) and re-emits it as
// the smallest set of rule sequences that reproduce the same grid.
func normalizeGroup(entries []groupEntry) []RuleSequence {
	p := newPaving()
	for _, e := range entries {
		p.set(e.sel, cellValue{present: true, kind: e.kind, comment: e.comment})
	}

	var result []RuleSequence
	first := true

	for {
		v, sel, ok := p.popFilter(func(c cellValue) bool {
			return c.present && c.kind == Open
		})
		if !ok {
			v, sel, ok = p.popFilter(func(c cellValue) bool {
				return c.present && c.kind == Unknown
			})
		}
		if !ok {
			v, sel, ok = p.popFilter(func(c cellValue) bool {
				return c.present && c.kind == Closed && c.comment != ""
			})
		}
		if !ok {
			break
		}

		combiner := CombinatorAdditive
		if first {
			combiner = CombinatorNormal
			first = false
		}

		result = append(result, selectorToRuleSequence(sel, v.kind, v.comment, combiner))
	}

	return result
}

// canonicalizeRuleSequence converts rs's day and time selectors into a
// boxSelector, or reports false if any of its ranges uses a construct the
// paving cannot represent exactly.
func canonicalizeRuleSequence(rs RuleSequence) (boxSelector, bool) {
	year, ok := canonicalYearRanges(rs.Day.Year)
	if !ok {
		return boxSelector{}, false
	}
	month, ok := canonicalMonthRanges(rs.Day.MonthDay)
	if !ok {
		return boxSelector{}, false
	}
	week, ok := canonicalWeekRanges(rs.Day.Week)
	if !ok {
		return boxSelector{}, false
	}
	weekday, ok := canonicalWeekdayRanges(rs.Day.Weekday)
	if !ok {
		return boxSelector{}, false
	}
	timeRanges, ok := canonicalTimeRanges(rs.Time.Spans)
	if !ok {
		return boxSelector{}, false
	}

	return boxSelector{Time: timeRanges, Year: year, Month: month, Week: week, Weekday: weekday}, true
}

func canonicalYearRanges(ranges []YearRange) ([]intRange, bool) {
	var out []intRange
	for _, r := range ranges {
		if r.Step != 1 {
			return nil, false
		}
		out = append(out, splitWrapInt(r.Low, r.High+1, yearAxisStart, yearAxisEnd)...)
	}
	if len(out) == 0 {
		out = []intRange{{yearAxisStart, yearAxisEnd}}
	}
	return out, true
}

func canonicalMonthRanges(ranges []MonthDayRange) ([]intRange, bool) {
	var out []intRange
	for _, r := range ranges {
		if r.Form != MonthForm || r.Year != nil {
			return nil, false
		}
		out = append(out, splitWrapInt(int(r.MonthLow), int(r.MonthHigh)+1, monthAxisStart, monthAxisEnd)...)
	}
	if len(out) == 0 {
		out = []intRange{{monthAxisStart, monthAxisEnd}}
	}
	return out, true
}

func canonicalWeekRanges(ranges []WeekRange) ([]intRange, bool) {
	var out []intRange
	for _, r := range ranges {
		if r.Step != 1 {
			return nil, false
		}
		out = append(out, splitWrapInt(r.Low, r.High+1, weekAxisStart, weekAxisEnd)...)
	}
	if len(out) == 0 {
		out = []intRange{{weekAxisStart, weekAxisEnd}}
	}
	return out, true
}

func canonicalWeekdayRanges(ranges []WeekdayRange) ([]intRange, bool) {
	var out []intRange
	for _, r := range ranges {
		if r.Form != WeekdayForm || r.Offset != 0 || r.NthFromStart != AllNth || r.NthFromEnd != AllNth {
			return nil, false
		}
		out = append(out, splitWrapInt(int(r.Low), int(r.High)+1, weekdayAxisStart, weekdayAxisEnd)...)
	}
	if len(out) == 0 {
		out = []intRange{{weekdayAxisStart, weekdayAxisEnd}}
	}
	return out, true
}

func canonicalTimeRanges(spans []TimeSpan) ([]timeRange, bool) {
	var out []timeRange
	for _, s := range spans {
		if s.OpenEnd || s.Repeat != 0 {
			return nil, false
		}
		if s.Start.Kind != FixedTimeKind || s.End.Kind != FixedTimeKind {
			return nil, false
		}
		if !s.Start.Fixed.Before(s.End.Fixed) || s.End.Fixed.After(MidnightExtended()) {
			return nil, false
		}
		out = append(out, timeRange{s.Start.Fixed, s.End.Fixed})
	}
	if len(out) == 0 {
		out = []timeRange{{StartOfDay(), MidnightExtended()}}
	}
	return out, true
}

// splitWrapInt turns a possibly-inverted half-open range into one or two
// non-wrapping half-open ranges within [domainStart, domainEnd), mirroring
// Bounded::split_inverted_range.
func splitWrapInt(lo, hi, domainStart, domainEnd int) []intRange {
	if lo < hi {
		return []intRange{{lo, hi}}
	}
	return []intRange{{domainStart, hi}, {lo, domainEnd}}
}

// selectorToRuleSequence rebuilds a RuleSequence from an extracted box,
// collapsing any dimension whose range list spans its full domain down to
// an empty (unconstrained) selector, per MakeCanonical::into_selector's
// remove_full_ranges behavior.
func selectorToRuleSequence(sel boxSelector, kind RuleKind, comment string, combiner Combinator) RuleSequence {
	var comments []string
	if comment != "" {
		comments = strings.Split(comment, "; ")
	}

	return RuleSequence{
		Day: DaySelector{
			Year:     yearRangesFromSelector(sel.Year),
			MonthDay: monthRangesFromSelector(sel.Month),
			Week:     weekRangesFromSelector(sel.Week),
			Weekday:  weekdayRangesFromSelector(sel.Weekday),
		},
		Time:     TimeSelector{Spans: timeSpansFromSelector(sel.Time)},
		Kind:     kind,
		Combiner: combiner,
		Comments: comments,
	}
}

func isFullIntDomain(ranges []intRange, start, end int) bool {
	return len(ranges) == 1 && ranges[0].Lo == start && ranges[0].Hi == end
}

func yearRangesFromSelector(ranges []intRange) []YearRange {
	if isFullIntDomain(ranges, yearAxisStart, yearAxisEnd) {
		return nil
	}
	out := make([]YearRange, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, YearRange{Low: r.Lo, High: r.Hi - 1, Step: 1})
	}
	return out
}

func monthRangesFromSelector(ranges []intRange) []MonthDayRange {
	if isFullIntDomain(ranges, monthAxisStart, monthAxisEnd) {
		return nil
	}
	out := make([]MonthDayRange, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, MonthDayRange{
			Form:      MonthForm,
			MonthLow:  Month(r.Lo),
			MonthHigh: Month(r.Hi - 1),
		})
	}
	return out
}

func weekRangesFromSelector(ranges []intRange) []WeekRange {
	if isFullIntDomain(ranges, weekAxisStart, weekAxisEnd) {
		return nil
	}
	out := make([]WeekRange, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, WeekRange{Low: r.Lo, High: r.Hi - 1, Step: 1})
	}
	return out
}

func weekdayRangesFromSelector(ranges []intRange) []WeekdayRange {
	if isFullIntDomain(ranges, weekdayAxisStart, weekdayAxisEnd) {
		return nil
	}
	out := make([]WeekdayRange, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, WeekdayRange{
			Form:         WeekdayForm,
			Low:          Weekday(r.Lo),
			High:         Weekday(r.Hi - 1),
			NthFromStart: AllNth,
			NthFromEnd:   AllNth,
		})
	}
	return out
}

func timeSpansFromSelector(ranges []timeRange) []TimeSpan {
	if len(ranges) == 1 && ranges[0].Lo == StartOfDay() && ranges[0].Hi == MidnightExtended() {
		return nil
	}
	out := make([]TimeSpan, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, TimeSpan{
			Start: TimePoint{Kind: FixedTimeKind, Fixed: r.Lo},
			End:   TimePoint{Kind: FixedTimeKind, Fixed: r.Hi},
		})
	}
	return out
}
