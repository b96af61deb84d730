package openinghours

// ExtendedRange is a half-open `[Start, End)` span of extended time, as
// produced by the time filter of spec.md §4.5.
type ExtendedRange struct {
	Start, End ExtendedTime
}

// timeSelectorRangesToday resolves a time selector on a date to the portion
// of its naive ranges that falls within [00:00, 24:00).
func timeSelectorRangesToday(ctx *Context, sel TimeSelector, date LocalDate) []ExtendedRange {
	return clipRanges(naiveTimeSelectorRanges(ctx, sel, date), StartOfDay(), MidnightExtended())
}

// timeSelectorRangesTomorrow resolves the portion of a time selector's naive
// ranges that wraps past midnight into [24:00, 48:00), shifted back by
// -24:00 so it can be merged onto the following day's own ranges.
func timeSelectorRangesTomorrow(ctx *Context, sel TimeSelector, date LocalDate) []ExtendedRange {
	midnight := MidnightExtended()
	upper, _ := ExtendedTimeOf(48, 0)
	wrapped := clipRanges(naiveTimeSelectorRanges(ctx, sel, date), midnight, upper)

	shifted := make([]ExtendedRange, len(wrapped))
	for i, r := range wrapped {
		shifted[i] = ExtendedRange{Start: r.Start.ShiftDay(), End: r.End.ShiftDay()}
	}
	return shifted
}

// naiveTimeSelectorRanges projects every span of a time selector to its
// naive (possibly past-24:00) extended-time range for a given date, in
// spec.md §4.5's monotonic sequence, then unions overlapping ranges.
func naiveTimeSelectorRanges(ctx *Context, sel TimeSelector, date LocalDate) []ExtendedRange {
	locale := ctx.localeOrDefault()

	var out []ExtendedRange
	for _, span := range sel.Spans {
		out = append(out, naiveTimeSpanRanges(locale, span, date)...)
	}
	return unionRanges(out)
}

// naiveTimeSpanRanges resolves a single time span to its naive ranges: a
// single [start, end) range, or, when the span repeats with a period, a
// sequence of zero-width point ranges [s+k·p, s+k·p) up to but not past end,
// per spec.md §4.5.
func naiveTimeSpanRanges(locale Locale, span TimeSpan, date LocalDate) []ExtendedRange {
	start := resolveTimePoint(span.Start, date, locale)
	end := resolveTimePoint(span.End, date, locale)

	if end.Before(start) {
		// Wraps past midnight: interpret as ending the following day.
		shifted, err := end.AddMinutes(24 * 60)
		if err != nil {
			shifted = MustExtendedTimeOf(48, 0)
		}
		end = shifted
	}

	if span.Repeat <= 0 {
		return []ExtendedRange{{Start: start, End: end}}
	}

	var out []ExtendedRange
	for t := start; !t.After(end); {
		out = append(out, ExtendedRange{Start: t, End: t})
		next, err := t.AddMinutes(span.Repeat)
		if err != nil || !next.After(t) {
			break
		}
		t = next
	}
	return out
}

// clipRanges intersects every range with [lo, hi), dropping ranges that
// fall entirely outside the window and trimming ranges that straddle it.
func clipRanges(ranges []ExtendedRange, lo, hi ExtendedTime) []ExtendedRange {
	var out []ExtendedRange
	for _, r := range ranges {
		start, end := r.Start, r.End
		if start.Before(lo) {
			start = lo
		}
		if end.After(hi) {
			end = hi
		}
		if start.Before(end) || (start.Compare(end) == 0 && r.Start.Compare(r.End) == 0 && !start.Before(lo) && !start.After(hi)) {
			out = append(out, ExtendedRange{Start: start, End: end})
		}
	}
	return unionRanges(out)
}

// unionRanges sorts ranges by start and merges overlapping or adjacent
// ones, mirroring the original implementation's ranges_union helper.
// Zero-width (point) ranges are preserved rather than merged away, since
// they represent distinct repetition instants.
func unionRanges(ranges []ExtendedRange) []ExtendedRange {
	if len(ranges) == 0 {
		return nil
	}

	sorted := append([]ExtendedRange(nil), ranges...)
	insertionSortRanges(sorted)

	out := []ExtendedRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		isPoint := r.Start.Compare(r.End) == 0
		lastIsPoint := last.Start.Compare(last.End) == 0

		if !isPoint && !lastIsPoint && !r.Start.After(last.End) {
			if r.End.After(last.End) {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

func insertionSortRanges(rs []ExtendedRange) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j].Start.Compare(rs[j-1].Start) < 0; j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}
