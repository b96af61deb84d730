package openinghours

// farDateBound is the soft upper date ceiling of spec.md §5/§7: year 10000.
var farDateBound = LocalDateOf(9999, December, 31)

// matchesDaySelector is the conjunction of all four day-selector dimensions
// (spec.md §4.4): an empty dimension matches every date.
func matchesDaySelector(d DaySelector, date LocalDate, ctx *Context) bool {
	return matchesYearRanges(d.Year, date) &&
		matchesMonthDayRanges(d.MonthDay, date) &&
		matchesWeekRanges(d.Week, date) &&
		matchesWeekdayRanges(d.Weekday, date, ctx)
}

// nextHintDaySelector is the minimum of the per-dimension hints.
func nextHintDaySelector(d DaySelector, date LocalDate, ctx *Context) LocalDate {
	if d.IsEmpty() {
		return farDateBound
	}

	hint := farDateBound
	if h := nextHintYearRanges(d.Year, date); h.Before(hint) {
		hint = h
	}
	if h := nextHintMonthDayRanges(d.MonthDay, date); h.Before(hint) {
		hint = h
	}
	if h := nextHintWeekRanges(d.Week, date); h.Before(hint) {
		hint = h
	}
	if h := nextHintWeekdayRanges(d.Weekday, date, ctx); h.Before(hint) {
		hint = h
	}
	return hint
}

func (d LocalDate) Before(d2 LocalDate) bool { return d < d2 }
func (d LocalDate) After(d2 LocalDate) bool  { return d > d2 }

// --- year range ---

func matchesYearRanges(rs []YearRange, date LocalDate) bool {
	if len(rs) == 0 {
		return true
	}
	year, _, _ := date.Date()
	for _, r := range rs {
		if yearMatches(r, year) {
			return true
		}
	}
	return false
}

func yearMatches(r YearRange, year int) bool {
	if year < r.Low || year > r.High {
		return false
	}
	return (year-r.Low)%r.Step == 0
}

func nextHintYearRanges(rs []YearRange, date LocalDate) LocalDate {
	if len(rs) == 0 {
		return farDateBound
	}
	year, _, _ := date.Date()

	hint := farDateBound
	for _, r := range rs {
		ny := nextMatchingYear(r, year)
		if ny < 0 {
			continue
		}
		var d LocalDate
		if ny == year {
			d = LocalDateOf(year+1, January, 1)
		} else {
			d = LocalDateOf(ny, January, 1)
		}
		if d.Before(hint) {
			hint = d
		}
	}
	return hint
}

// nextMatchingYear returns the first year >= year (or year itself, caller
// must still advance to year+1 for the hint) that matches r, or -1 if r is
// entirely in the past.
func nextMatchingYear(r YearRange, year int) int {
	if year < r.Low {
		return r.Low
	}
	if year > r.High {
		return -1
	}
	if (year-r.Low)%r.Step == 0 {
		return year
	}
	n := year + (r.Step - (year-r.Low)%r.Step)
	if n > r.High {
		return -1
	}
	return n
}

// --- month-day range ---

func matchesMonthDayRanges(rs []MonthDayRange, date LocalDate) bool {
	if len(rs) == 0 {
		return true
	}
	for _, r := range rs {
		if monthDayMatches(r, date) {
			return true
		}
	}
	return false
}

func monthDayMatches(r MonthDayRange, date LocalDate) bool {
	switch r.Form {
	case MonthForm:
		return monthFormMatches(r, date)
	default:
		return dateFormMatches(r, date)
	}
}

func monthFormMatches(r MonthDayRange, date LocalDate) bool {
	year, month, _ := date.Date()
	if r.Year != nil && *r.Year != year {
		return false
	}
	if r.MonthLow <= r.MonthHigh {
		return month >= r.MonthLow && month <= r.MonthHigh
	}
	// Wraps across the year boundary (e.g. Nov-Feb).
	return month >= r.MonthLow || month <= r.MonthHigh
}

// resolveDateOnYear projects a DateOffset's DateSpec onto a concrete year,
// clamping an out-of-range day down (clampDown=true, for range starts) or
// up (clampDown=false, for range ends), per spec.md §4.4.
func resolveDateOnYear(spec DateSpec, year int, clampDown bool) (LocalDate, bool) {
	if spec.IsEaster {
		y := year
		if spec.Year != nil {
			y = *spec.Year
		}
		return Easter(y), true
	}

	y := year
	if spec.Year != nil {
		if *spec.Year != year {
			return LocalDate(0), false
		}
		y = *spec.Year
	}

	if clampDown {
		return clampDateDown(y, spec.Month, spec.Day), true
	}
	return clampDateUp(y, spec.Month, spec.Day), true
}

func daysInMonthOf(year int, month Month) int {
	if month == February && isLeapYearValue(year) {
		return 29
	}
	return daysInMonths[month-1]
}

func isLeapYearValue(year int) bool {
	return LocalDateOf(year, January, 1).IsLeapYear()
}

// clampDateDown returns the latest valid date <= (year, month, day).
func clampDateDown(year int, month Month, day int) LocalDate {
	max := daysInMonthOf(year, month)
	if day > max {
		day = max
	}
	if day < 1 {
		day = 1
	}
	return LocalDateOf(year, month, day)
}

// clampDateUp returns the earliest valid date >= (year, month, day).
func clampDateUp(year int, month Month, day int) LocalDate {
	max := daysInMonthOf(year, month)
	if day <= max {
		if day < 1 {
			day = 1
		}
		return LocalDateOf(year, month, day)
	}
	// Roll over to the first of the next month.
	if month == December {
		return LocalDateOf(year+1, January, 1)
	}
	return LocalDateOf(year, month+1, 1)
}

func applyDateOffset(date LocalDate, o DateOffset) LocalDate {
	switch o.WeekdayAdj.Kind {
	case PrevWeekdayAdjustment:
		date = priorOrSameWeekday(date, o.WeekdayAdj.Weekday)
	case NextWeekdayAdjustment:
		date = nextOrSameWeekday(date, o.WeekdayAdj.Weekday)
	}
	return date.AddDate(0, 0, o.DayOffset)
}

func priorOrSameWeekday(date LocalDate, wd Weekday) LocalDate {
	for date.Weekday() != wd {
		date = date.AddDate(0, 0, -1)
	}
	return date
}

func nextOrSameWeekday(date LocalDate, wd Weekday) LocalDate {
	for date.Weekday() != wd {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// dateFormMatches checks every plausible year projection of the date-form
// range (previous, current and next year, to accommodate year-less
// wrapping ranges and explicit distinct years) for one that brackets date.
func dateFormMatches(r MonthDayRange, date LocalDate) bool {
	year, _, _ := date.Date()

	// Feb 29 .. Feb 29 is a distinguished case: matches only in leap years.
	if isFeb29(r.Start.Date) && isFeb29(r.End.Date) && r.Start.WeekdayAdj.Kind == NoWeekdayAdjustment &&
		r.End.WeekdayAdj.Kind == NoWeekdayAdjustment {
		if !isLeapYearValue(year) {
			return false
		}
		return date == LocalDateOf(year, February, 29)
	}

	for _, y := range [3]int{year - 1, year, year + 1} {
		start, ok1 := resolveDateOnYear(r.Start.Date, y, true)
		if !ok1 {
			continue
		}
		start = applyDateOffset(start, r.Start)

		endYear := y
		if r.End.Date.Year != nil {
			endYear = *r.End.Date.Year
		}
		end, ok2 := resolveDateOnYear(r.End.Date, endYear, false)
		if !ok2 {
			continue
		}
		end = applyDateOffset(end, r.End)

		if start > end && r.End.Date.Year == nil {
			// Wrapping year-less range: end projects onto the following year.
			if e, ok := resolveDateOnYear(r.End.Date, y+1, false); ok {
				end = applyDateOffset(e, r.End)
			}
		}
		if start > end {
			continue
		}
		if date >= start && date <= end {
			return true
		}
	}
	return false
}

func isFeb29(d DateSpec) bool {
	return !d.IsEaster && d.Month == February && d.Day == 29
}

func nextHintMonthDayRanges(rs []MonthDayRange, date LocalDate) LocalDate {
	if len(rs) == 0 {
		return farDateBound
	}
	hint := farDateBound
	for _, r := range rs {
		if h := nextHintMonthDayRange(r, date); h.Before(hint) {
			hint = h
		}
	}
	return hint
}

func nextHintMonthDayRange(r MonthDayRange, date LocalDate) LocalDate {
	// A sound but simple hint: the start of the next day. Dimensions with
	// expensive-to-compute exact change points (wrapping month/date forms)
	// fall back to this conservative bound rather than an incorrect jump.
	if date.CanAddDate(0, 0, 1) {
		return date.AddDate(0, 0, 1)
	}
	return farDateBound
}

// --- week range ---

func matchesWeekRanges(rs []WeekRange, date LocalDate) bool {
	if len(rs) == 0 {
		return true
	}
	_, week := date.ISOWeek()
	for _, r := range rs {
		if weekMatches(r, week) {
			return true
		}
	}
	return false
}

func weekMatches(r WeekRange, week int) bool {
	inRange := false
	if r.Low <= r.High {
		inRange = week >= r.Low && week <= r.High
	} else {
		inRange = week >= r.Low || week <= r.High
	}
	if !inRange {
		return false
	}
	if r.Step == 1 {
		return true
	}
	offset := week - r.Low
	if offset < 0 {
		offset += 53
	}
	return offset%r.Step == 0
}

func nextHintWeekRanges(rs []WeekRange, date LocalDate) LocalDate {
	if len(rs) == 0 {
		return farDateBound
	}
	if date.CanAddDate(0, 0, 1) {
		return date.AddDate(0, 0, 1)
	}
	return farDateBound
}

// --- weekday range ---

func matchesWeekdayRanges(rs []WeekdayRange, date LocalDate, ctx *Context) bool {
	if len(rs) == 0 {
		return true
	}
	for _, r := range rs {
		if weekdayMatches(r, date, ctx) {
			return true
		}
	}
	return false
}

func weekdayMatches(r WeekdayRange, date LocalDate, ctx *Context) bool {
	if r.Form == HolidayForm {
		return matchesHoliday(r, date, ctx)
	}

	check := date.AddDate(0, 0, -r.Offset)
	wd := check.Weekday()

	inRange := false
	if r.Low <= r.High {
		inRange = wd >= r.Low && wd <= r.High
	} else {
		inRange = wd >= r.Low || wd <= r.High
	}
	if !inRange {
		return false
	}
	if r.NthFromStart == AllNth && r.NthFromEnd == AllNth {
		return true
	}

	_, month, day := check.Date()
	posFromStart := (day - 1) / 7
	lastDay := daysInMonthOf(yearOf(check), month)
	posFromEnd := (lastDay - day) / 7

	return r.NthFromStart&(1<<uint(posFromStart)) != 0 || r.NthFromEnd&(1<<uint(posFromEnd)) != 0
}

func yearOf(d LocalDate) int {
	y, _, _ := d.Date()
	return y
}

func matchesHoliday(r WeekdayRange, date LocalDate, ctx *Context) bool {
	if ctx == nil {
		return false
	}
	set := ctx.publicHolidays
	if r.Holiday == SchoolHoliday {
		set = ctx.schoolHolidays
	}
	if set == nil {
		return false
	}
	check := date.AddDate(0, 0, -r.Offset)
	return set.Contains(check)
}

func nextHintWeekdayRanges(rs []WeekdayRange, date LocalDate, ctx *Context) LocalDate {
	if len(rs) == 0 {
		return farDateBound
	}
	hint := farDateBound
	for _, r := range rs {
		var h LocalDate
		if r.Form == HolidayForm {
			h = nextHintHoliday(r, date, ctx)
		} else if date.CanAddDate(0, 0, 1) {
			h = date.AddDate(0, 0, 1)
		} else {
			h = farDateBound
		}
		if h.Before(hint) {
			hint = h
		}
	}
	return hint
}

func nextHintHoliday(r WeekdayRange, date LocalDate, ctx *Context) LocalDate {
	if ctx == nil {
		return farDateBound
	}
	set := ctx.publicHolidays
	if r.Holiday == SchoolHoliday {
		set = ctx.schoolHolidays
	}
	if set == nil {
		return farDateBound
	}
	if set.Contains(date.AddDate(0, 0, -r.Offset)) {
		// date itself matches, so the very next day may not.
		return date.AddDate(0, 0, 1)
	}
	probe := date.AddDate(0, 0, -r.Offset+1)
	next, ok := set.FirstOnOrAfter(probe)
	if !ok {
		return farDateBound
	}
	return next.AddDate(0, 0, r.Offset)
}
