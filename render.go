package openinghours

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders e back to opening_hours syntax. It is not guaranteed to
// reproduce the original source text byte-for-byte (whitespace and
// redundant qualifiers are not preserved), but it always parses back to an
// Expression with identical meaning (spec.md §8 "round trip").
func (e Expression) String() string {
	if len(e.Rules) == 1 && e.Rules[0].Is24_7() && e.Rules[0].Kind == Open && len(e.Rules[0].Comments) == 0 {
		return "24/7"
	}

	var b strings.Builder
	for i, r := range e.Rules {
		if i > 0 {
			b.WriteString(combinatorSeparator(r.Combiner))
		}
		r.render(&b)
	}
	return b.String()
}

// combinatorSeparator returns the separator preceding a rule sequence. The
// very first rule sequence's own combinator is never rendered (there is
// nothing before it to combine with).
func combinatorSeparator(c Combinator) string {
	switch c {
	case CombinatorAdditive:
		return ", "
	case CombinatorFallback:
		return " || "
	default:
		return "; "
	}
}

func (r RuleSequence) render(b *strings.Builder) {
	dayStr := r.Day.render()
	timeStr := r.Time.render()
	if dayStr == "" && timeStr == "" {
		// An unrestricted rule is written as the 24/7 shorthand so that it
		// never renders as empty text.
		dayStr = "24/7"
	}

	wroteDay := dayStr != ""
	if wroteDay {
		b.WriteString(dayStr)
	}
	if timeStr != "" {
		if wroteDay {
			b.WriteByte(' ')
		}
		b.WriteString(timeStr)
	}

	switch r.Kind {
	case Closed:
		if wroteDay || timeStr != "" {
			b.WriteByte(' ')
		}
		b.WriteString("closed")
	case Unknown:
		if wroteDay || timeStr != "" {
			b.WriteByte(' ')
		}
		b.WriteString("unknown")
	}

	for _, c := range r.Comments {
		b.WriteString(` "`)
		b.WriteString(c)
		b.WriteByte('"')
	}
}

func (d DaySelector) render() string {
	var parts []string
	if s := renderYearRanges(d.Year); s != "" {
		parts = append(parts, s)
	}
	if s := renderMonthDayRanges(d.MonthDay); s != "" {
		parts = append(parts, s)
	}
	if s := renderWeekRanges(d.Week); s != "" {
		parts = append(parts, s)
	}
	if s := renderWeekdayRanges(d.Weekday); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func renderYearRanges(rs []YearRange) string {
	if len(rs) == 0 {
		return ""
	}
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.render()
	}
	return strings.Join(out, ",")
}

func (r YearRange) render() string {
	if r.Low == r.High && r.Step == 1 {
		return strconv.Itoa(r.Low)
	}
	s := strconv.Itoa(r.Low) + "-" + strconv.Itoa(r.High)
	if r.Step != 1 {
		s += "/" + strconv.Itoa(r.Step)
	}
	return s
}

func renderMonthDayRanges(rs []MonthDayRange) string {
	if len(rs) == 0 {
		return ""
	}
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.render()
	}
	return strings.Join(out, ",")
}

func (r MonthDayRange) render() string {
	if r.Form == MonthForm {
		prefix := ""
		if r.Year != nil {
			prefix = strconv.Itoa(*r.Year) + " "
		}
		if r.MonthLow == r.MonthHigh {
			return prefix + r.MonthLow.String()[:3]
		}
		return prefix + r.MonthLow.String()[:3] + "-" + r.MonthHigh.String()[:3]
	}

	start := r.Start.render()
	end := r.End.render()
	if start == end {
		return start
	}
	return start + "-" + end
}

func (o DateOffset) render() string {
	s := o.Date.render()
	switch o.WeekdayAdj.Kind {
	case PrevWeekdayAdjustment:
		s += "-" + o.WeekdayAdj.Weekday.String()[:2]
	case NextWeekdayAdjustment:
		s += "+" + o.WeekdayAdj.Weekday.String()[:2]
	}
	if o.DayOffset > 0 {
		s += "+" + strconv.Itoa(o.DayOffset) + " days"
	} else if o.DayOffset < 0 {
		s += strconv.Itoa(o.DayOffset) + " days"
	}
	return s
}

func (d DateSpec) render() string {
	if d.IsEaster {
		if d.Year != nil {
			return strconv.Itoa(*d.Year) + " easter"
		}
		return "easter"
	}
	prefix := ""
	if d.Year != nil {
		prefix = strconv.Itoa(*d.Year) + " "
	}
	return prefix + d.Month.String()[:3] + " " + strconv.Itoa(d.Day)
}

func renderWeekRanges(rs []WeekRange) string {
	if len(rs) == 0 {
		return ""
	}
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.render()
	}
	return "week " + strings.Join(out, ",")
}

func (r WeekRange) render() string {
	if r.Low == r.High && r.Step == 1 {
		return weekNum(r.Low)
	}
	s := weekNum(r.Low) + "-" + weekNum(r.High)
	if r.Step != 1 {
		s += "/" + strconv.Itoa(r.Step)
	}
	return s
}

func weekNum(w int) string {
	return strconv.Itoa(w)
}

func renderWeekdayRanges(rs []WeekdayRange) string {
	if len(rs) == 0 {
		return ""
	}
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.render()
	}
	return strings.Join(out, ",")
}

func (r WeekdayRange) render() string {
	offset := ""
	if r.Offset > 0 {
		offset = "+" + strconv.Itoa(r.Offset) + " days"
	} else if r.Offset < 0 {
		offset = strconv.Itoa(r.Offset) + " days"
	}

	if r.Form == HolidayForm {
		s := "PH"
		if r.Holiday == SchoolHoliday {
			s = "SH"
		}
		return s + offset
	}

	name := r.Low.String()[:2]
	if r.High != r.Low {
		name += "-" + r.High.String()[:2]
	}

	var nth string
	if r.NthFromStart != AllNth && r.NthFromEnd != AllNth {
		var parts []string
		for _, s := range []string{renderNthMask(r.NthFromStart, false), renderNthMask(r.NthFromEnd, true)} {
			if s != "" {
				parts = append(parts, s)
			}
		}
		nth = "[" + strings.Join(parts, ",") + "]"
	}

	return name + nth + offset
}

func renderNthMask(mask uint8, fromEnd bool) string {
	if mask == AllNth {
		return ""
	}
	var parts []string
	for i := 0; i < 5; i++ {
		if mask&(1<<uint(i)) != 0 {
			n := i + 1
			if fromEnd {
				parts = append(parts, "-"+strconv.Itoa(n))
			} else {
				parts = append(parts, strconv.Itoa(n))
			}
		}
	}
	return strings.Join(parts, ",")
}

func (t TimeSelector) render() string {
	if t.IsFullDay() {
		return ""
	}
	out := make([]string, len(t.Spans))
	for i, s := range t.Spans {
		out[i] = s.render()
	}
	return strings.Join(out, ",")
}

func (s TimeSpan) render() string {
	out := s.Start.render() + "-" + s.End.render()
	if s.OpenEnd {
		out = s.Start.render() + "+"
	}
	if s.Repeat > 0 {
		out += "/" + strconv.Itoa(s.Repeat)
	}
	return out
}

func (p TimePoint) render() string {
	if p.Kind == FixedTimeKind {
		return p.Fixed.String()
	}
	s := p.Event.String()
	if p.Offset != 0 {
		sign, off := "+", p.Offset
		if off < 0 {
			sign, off = "-", -off
		}
		s += sign + fmt.Sprintf("%02d:%02d", off/60, off%60)
	}
	return s
}
