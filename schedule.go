package openinghours

// TimeRange is a period of one day annotated with the state and comment
// that apply while it is active, per spec.md §4.6.
type TimeRange struct {
	Range   ExtendedRange
	Kind    RuleKind
	Comment string
}

func (r TimeRange) state() (RuleKind, string) {
	return r.Kind, r.Comment
}

// Schedule describes a full day, tracking open/closed/unknown periods as a
// sequence of non-overlapping, increasing time ranges. An empty schedule
// represents an always-closed day with no comment.
type Schedule struct {
	inner []TimeRange
}

// NewSchedule returns an empty (always-closed) schedule.
func NewSchedule() Schedule {
	return Schedule{}
}

// ScheduleFromRanges builds a schedule from a list of ranges sharing the
// same kind and comment, sorting by start and coalescing any
// overlapping or touching ranges so the disjointness invariant holds.
func ScheduleFromRanges(ranges []ExtendedRange, kind RuleKind, comment string) Schedule {
	var inner []TimeRange
	for _, r := range ranges {
		if r.Start.Before(r.End) {
			inner = append(inner, TimeRange{Range: r, Kind: kind, Comment: comment})
		}
	}

	if len(inner) > 1 {
		insertionSortTimeRanges(inner)

		kept := 0
		for next := 1; next < len(inner); next++ {
			if !inner[kept].Range.End.Before(inner[next].Range.Start) {
				if inner[next].Range.End.After(inner[kept].Range.End) {
					inner[kept].Range.End = inner[next].Range.End
				}
			} else {
				kept++
				inner[kept] = inner[next]
			}
		}
		inner = inner[:kept+1]
	}

	return Schedule{inner: inner}
}

func insertionSortTimeRanges(rs []TimeRange) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j].Range.Start.Compare(rs[j-1].Range.Start) < 0; j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}

// IsEmpty reports whether the schedule has no entries at all.
func (s Schedule) IsEmpty() bool {
	return len(s.inner) == 0
}

// isConstant reports whether the schedule is a single entry spanning the
// whole day [00:00, 24:00).
func (s Schedule) isConstant() bool {
	return len(s.inner) == 0 ||
		(len(s.inner) == 1 &&
			s.inner[0].Range.Start.Compare(StartOfDay()) == 0 &&
			s.inner[0].Range.End.Compare(MidnightExtended()) == 0)
}

// isAlwaysClosedWithNoComments reports whether every entry (and the
// implicit hole state) is closed with an empty comment.
func (s Schedule) isAlwaysClosedWithNoComments() bool {
	for _, r := range s.inner {
		if r.Kind != Closed || r.Comment != "" {
			return false
		}
	}
	return true
}

// FilterClosedRanges drops explicit closed/no-comment entries, since the
// iteration default already fills gaps with that same state.
func (s Schedule) FilterClosedRanges() Schedule {
	out := s.inner[:0:0]
	for _, r := range s.inner {
		if r.Kind != Closed || r.Comment != "" {
			out = append(out, r)
		}
	}
	return Schedule{inner: out}
}

// Addition merges other into s, overwriting any overlap in favour of
// other's entries and stitching together adjacent entries that share the
// same (kind, comment), per spec.md §4.6.
func (s Schedule) Addition(other Schedule) Schedule {
	for i := len(other.inner) - 1; i >= 0; i-- {
		s = s.insert(other.inner[i])
	}
	return s
}

// insert places a new time range into the schedule, trimming or dropping
// whatever it overlaps and absorbing adjacent entries of identical state.
func (s Schedule) insert(ins TimeRange) Schedule {
	insStart, insEnd := ins.Range.Start, ins.Range.End

	var before []TimeRange
	for _, tr := range s.inner {
		if !tr.Range.Start.Before(insEnd) {
			continue
		}
		if tr.Range.End.After(insStart) {
			tr.Range.End = insStart
		}
		if tr.Range.Start.Before(tr.Range.End) {
			before = append(before, tr)
		}
	}

	var after []TimeRange
	for _, tr := range s.inner {
		if !tr.Range.End.After(insStart) {
			continue
		}
		if tr.Range.Start.Before(insEnd) {
			tr.Range.Start = insEnd
		}
		if tr.Range.Start.Before(tr.Range.End) {
			after = append(after, tr)
		}
	}

	for len(before) > 0 {
		last := before[len(before)-1]
		lk, lc := last.state()
		ik, ic := ins.state()
		if last.Range.End.Compare(ins.Range.Start) != 0 || lk != ik || lc != ic {
			break
		}
		ins.Range.Start = last.Range.Start
		before = before[:len(before)-1]
	}

	for len(after) > 0 {
		first := after[0]
		fk, fc := first.state()
		ik, ic := ins.state()
		if ins.Range.End.Compare(first.Range.Start) != 0 || fk != ik || fc != ic {
			break
		}
		ins.Range.End = first.Range.End
		after = after[1:]
	}

	inner := make([]TimeRange, 0, len(before)+1+len(after))
	inner = append(inner, before...)
	inner = append(inner, ins)
	inner = append(inner, after...)
	return Schedule{inner: inner}
}

// Ranges yields every entry of the schedule with gaps filled by closed,
// no-comment holes, so that consecutive entries are contiguous, cover
// [00:00, 24:00) exactly, and never have two adjacent entries of the same
// (kind, comment).
func (s Schedule) Ranges() []TimeRange {
	var out []TimeRange
	lastEnd := StartOfDay()
	midnight := MidnightExtended()
	i := 0

	for lastEnd.Before(midnight) {
		var yielded TimeRange

		if i < len(s.inner) && s.inner[i].Range.Start.Compare(lastEnd) == 0 {
			yielded = s.inner[i]
			i++
		} else {
			end := midnight
			if i < len(s.inner) {
				end = s.inner[i].Range.Start
			}
			yielded = TimeRange{Range: ExtendedRange{Start: lastEnd, End: end}, Kind: Closed, Comment: ""}
		}

		for i < len(s.inner) {
			next := s.inner[i]
			yk, yc := yielded.state()
			isHole := yk == Closed && yc == ""

			if next.Range.Start.After(yielded.Range.End) {
				if isHole {
					yielded.Range.End = next.Range.Start
				} else {
					break
				}
			}

			nk, nc := next.state()
			if yk != nk || yc != nc {
				break
			}

			yielded.Range.End = next.Range.End
			i++
		}

		if yk, yc := yielded.state(); yk == Closed && yc == "" && i >= len(s.inner) {
			yielded.Range.End = midnight
		}

		out = append(out, yielded)
		lastEnd = yielded.Range.End
	}

	return out
}
