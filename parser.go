package openinghours

import (
	"strconv"
	"strings"
)

// Parse compiles an opening_hours source string into an Expression. It
// implements the grammar of spec.md §4.3: rule separators `;`, `,`, `||`;
// the `24/7` shorthand; open/closed/unknown/off modifiers with optional
// quoted comment; year/month-day/week/weekday selectors; holidays; nth
// bracket constraints; extended time; variable (sun-event) times;
// open-ended spans; time repetitions.
func Parse(text string) (Expression, error) {
	toks, err := lex(text)
	if err != nil {
		return Expression{}, err
	}
	p := &parser{toks: toks, src: text}

	var rules []RuleSequence
	for {
		comb := CombinatorNormal
		if len(rules) > 0 {
			c, err := p.parseSeparator()
			if err != nil {
				return Expression{}, err
			}
			comb = c
		}

		rs, err := p.parseRuleSequence(comb)
		if err != nil {
			return Expression{}, err
		}
		rules = append(rules, rs)

		if p.at(tokEOF) {
			break
		}
	}

	rules[0].Combiner = CombinatorNormal
	return Expression{Rules: rules}, nil
}

type parser struct {
	toks []token
	pos  int
	src  string
}

func (p *parser) cur() token  { return p.toks[p.pos] }
func (p *parser) at(k tokenKind) bool { return p.cur().kind == k }

func (p *parser) atIdentCI(s string) bool {
	return p.cur().kind == tokIdent && strings.EqualFold(p.cur().text, s)
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) save() int    { return p.pos }
func (p *parser) restore(m int) { p.pos = m }

func (p *parser) errf(kind ErrKind, format string, args ...any) error {
	return newParseError(kind, p.cur().pos, format, args...)
}

func (p *parser) parseSeparator() (Combinator, error) {
	switch p.cur().kind {
	case tokSemicolon:
		p.advance()
		return CombinatorNormal, nil
	case tokComma:
		p.advance()
		return CombinatorAdditive, nil
	case tokPipePipe:
		p.advance()
		return CombinatorFallback, nil
	default:
		return 0, p.errf(ErrSyntax, "expected a rule separator (';', ',' or '||')")
	}
}

// parseRuleSequence parses one day-selector/time-selector/modifier clause.
func (p *parser) parseRuleSequence(comb Combinator) (RuleSequence, error) {
	if p.atIdentCI("24/7") || (p.at(tokNumber) && p.cur().text == "24" && p.peekIsSlash7()) {
		p.consume24_7()
		kind, comments, err := p.parseOptionalModifier()
		if err != nil {
			return RuleSequence{}, err
		}
		return RuleSequence{
			Day:      DaySelector{},
			Time:     FullDayTimeSelector(),
			Kind:     kind,
			Combiner: comb,
			Comments: comments,
		}, nil
	}

	day, err := p.parseDaySelector()
	if err != nil {
		return RuleSequence{}, err
	}

	time, err := p.parseTimeSelector()
	if err != nil {
		return RuleSequence{}, err
	}

	kind, comments, err := p.parseOptionalModifier()
	if err != nil {
		return RuleSequence{}, err
	}

	return RuleSequence{
		Day:      day,
		Time:     time,
		Kind:     kind,
		Combiner: comb,
		Comments: comments,
	}, nil
}

// peekIsSlash7 checks whether a NUMBER "24" token is immediately followed
// by "/7", which the lexer tokenizes as slash then number.
func (p *parser) peekIsSlash7() bool {
	if p.pos+2 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].kind == tokSlash && p.toks[p.pos+2].kind == tokNumber && p.toks[p.pos+2].text == "7"
}

func (p *parser) consume24_7() {
	if p.atIdentCI("24/7") {
		p.advance()
		return
	}
	p.advance() // "24"
	p.advance() // "/"
	p.advance() // "7"
}

// --- modifiers ---

func (p *parser) parseOptionalModifier() (RuleKind, []string, error) {
	kind := Open
	if p.at(tokIdent) {
		switch strings.ToLower(p.cur().text) {
		case "open":
			p.advance()
		case "closed", "off":
			kind = Closed
			p.advance()
		case "unknown":
			kind = Unknown
			p.advance()
		}
	}

	var comments []string
	for p.at(tokString) {
		comments = append(comments, p.advance().text)
	}
	return kind, uniqueSortedStrings(comments), nil
}

// --- day selector ---

func (p *parser) parseDaySelector() (DaySelector, error) {
	var d DaySelector

	years, err := p.tryYearRanges()
	if err != nil {
		return DaySelector{}, err
	}
	d.Year = years

	monthdays, err := p.tryMonthDayRanges()
	if err != nil {
		return DaySelector{}, err
	}
	d.MonthDay = monthdays

	weeks, err := p.tryWeekRanges()
	if err != nil {
		return DaySelector{}, err
	}
	d.Week = weeks

	weekdays, err := p.tryWeekdayRanges()
	if err != nil {
		return DaySelector{}, err
	}
	d.Weekday = weekdays

	return d, nil
}

func (p *parser) isMonthIdent() bool {
	if !p.at(tokIdent) {
		return false
	}
	_, ok := monthAbbrev[strings.ToLower(p.cur().text)]
	return ok
}

func (p *parser) tryYearRanges() ([]YearRange, error) {
	var out []YearRange
	for {
		start := p.save()
		if !p.at(tokNumber) || len(p.cur().text) != 4 {
			break
		}
		lo, _ := strconv.Atoi(p.cur().text)
		if lo < 1900 || lo > 9999 {
			break
		}
		p.advance()

		hi := lo
		step := 1
		if p.at(tokDash) {
			save := p.save()
			p.advance()
			if !p.at(tokNumber) {
				p.restore(save)
			} else {
				hi, _ = strconv.Atoi(p.cur().text)
				p.advance()
				if p.at(tokSlash) {
					p.advance()
					if !p.at(tokNumber) {
						return nil, p.errf(ErrSyntax, "expected step after '/'")
					}
					step, _ = strconv.Atoi(p.cur().text)
					p.advance()
				}
			}
		}

		// A year immediately followed by a month or "easter" is the year
		// prefix of a date-form month-day range, not a standalone year list.
		if p.isMonthIdent() || p.atIdentCI("easter") {
			p.restore(start)
			break
		}

		if step < 1 {
			return nil, p.errf(ErrOverflow, "year step must be positive")
		}
		if hi < lo && step != 1 {
			return nil, p.errf(ErrInvertedRange, "inverted year range %d-%d with step %d", lo, hi, step)
		}
		out = append(out, YearRange{Low: lo, High: hi, Step: step})

		if p.at(tokComma) {
			save := p.save()
			p.advance()
			if p.at(tokNumber) && len(p.cur().text) == 4 {
				continue
			}
			p.restore(save)
		}
		break
	}
	return out, nil
}

func (p *parser) tryMonthDayRanges() ([]MonthDayRange, error) {
	var out []MonthDayRange
	for {
		if !p.isMonthIdent() && !p.atIdentCI("easter") && !(p.at(tokNumber) && len(p.cur().text) == 4) {
			break
		}
		r, err := p.parseOneMonthDayRange()
		if err != nil {
			return nil, err
		}
		out = append(out, r)

		if p.at(tokComma) {
			save := p.save()
			p.advance()
			if p.isMonthIdent() || p.atIdentCI("easter") || (p.at(tokNumber) && len(p.cur().text) == 4) {
				continue
			}
			p.restore(save)
		}
		break
	}
	return out, nil
}

func (p *parser) parseOneMonthDayRange() (MonthDayRange, error) {
	var year *int
	if p.at(tokNumber) && len(p.cur().text) == 4 {
		y, _ := strconv.Atoi(p.cur().text)
		year = &y
		p.advance()
	}

	if p.isMonthIdent() && !p.monthFollowedByDayNumber() {
		loMonth := monthAbbrev[strings.ToLower(p.advance().text)]
		hiMonth := loMonth
		if p.at(tokDash) {
			p.advance()
			if !p.isMonthIdent() {
				return MonthDayRange{}, p.errf(ErrSyntax, "expected month after '-'")
			}
			hiMonth = monthAbbrev[strings.ToLower(p.advance().text)]
		}
		return MonthDayRange{Form: MonthForm, MonthLow: loMonth, MonthHigh: hiMonth, Year: year}, nil
	}

	start, err := p.parseDateOffset(year)
	if err != nil {
		return MonthDayRange{}, err
	}
	end := start
	if p.at(tokDash) {
		p.advance()
		end, err = p.parseDateOffset(nil)
		if err != nil {
			return MonthDayRange{}, err
		}
	}
	return MonthDayRange{Form: DateForm, Start: start, End: end}, nil
}

// monthFollowedByDayNumber reports whether the current month-ident token is
// immediately followed by a day number, distinguishing the date form
// ("Jan 01") from the month-range form ("Jan" or "Jan-Mar").
func (p *parser) monthFollowedByDayNumber() bool {
	if p.pos+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].kind == tokNumber
}

func (p *parser) parseDateOffset(year *int) (DateOffset, error) {
	date, err := p.parseDateSpec(year)
	if err != nil {
		return DateOffset{}, err
	}

	out := DateOffset{Date: date}

	if p.at(tokDash) && p.peekWeekdayAfterSign(tokDash) {
		p.advance()
		wd := weekdayAbbrev[strings.ToLower(p.advance().text)]
		out.WeekdayAdj = WeekdayAdjustment{Kind: PrevWeekdayAdjustment, Weekday: wd}
	} else if p.at(tokPlus) && p.peekWeekdayAfterSign(tokPlus) {
		p.advance()
		wd := weekdayAbbrev[strings.ToLower(p.advance().text)]
		out.WeekdayAdj = WeekdayAdjustment{Kind: NextWeekdayAdjustment, Weekday: wd}
	}

	if p.at(tokPlus) || (p.at(tokDash) && p.peekIsNumber(tokDash)) {
		sign := 1
		if p.at(tokDash) {
			sign = -1
		}
		p.advance()
		if !p.at(tokNumber) {
			return DateOffset{}, p.errf(ErrSyntax, "expected day offset number")
		}
		n, _ := strconv.Atoi(p.advance().text)
		if p.atIdentCI("day") || p.atIdentCI("days") {
			p.advance()
		}
		out.DayOffset = sign * n
	}

	return out, nil
}

func (p *parser) peekWeekdayAfterSign(k tokenKind) bool {
	if p.cur().kind != k || p.pos+1 >= len(p.toks) {
		return false
	}
	next := p.toks[p.pos+1]
	if next.kind != tokIdent {
		return false
	}
	_, ok := weekdayAbbrev[strings.ToLower(next.text)]
	return ok
}

func (p *parser) peekIsNumber(k tokenKind) bool {
	if p.cur().kind != k || p.pos+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].kind == tokNumber
}

func (p *parser) parseDateSpec(year *int) (DateSpec, error) {
	if p.atIdentCI("easter") {
		p.advance()
		if p.at(tokNumber) && (p.pos+1 >= len(p.toks) || p.toks[p.pos+1].kind != tokColon) {
			return DateSpec{}, p.errf(ErrUnsupportedFeature, "a day number after 'easter' is not supported")
		}
		return DateSpec{IsEaster: true, Year: year}, nil
	}
	if !p.isMonthIdent() {
		return DateSpec{}, p.errf(ErrSyntax, "expected a month name or 'easter'")
	}
	month := monthAbbrev[strings.ToLower(p.advance().text)]
	if !p.at(tokNumber) {
		return DateSpec{}, p.errf(ErrSyntax, "expected a day number after month")
	}
	day, _ := strconv.Atoi(p.advance().text)
	day = coerceDayNum(day)
	return DateSpec{Year: year, Month: month, Day: day}, nil
}

// coerceDayNum applies the leniency rule of spec.md §4.3: daynum 0 -> 1,
// daynum > 31 -> 31.
func coerceDayNum(day int) int {
	if day < 1 {
		return 1
	}
	if day > 31 {
		return 31
	}
	return day
}

func (p *parser) tryWeekRanges() ([]WeekRange, error) {
	if !p.atIdentCI("week") {
		return nil, nil
	}
	p.advance()

	var out []WeekRange
	for {
		if !p.at(tokNumber) {
			return nil, p.errf(ErrSyntax, "expected a week number")
		}
		lo, _ := strconv.Atoi(p.advance().text)
		hi := lo
		step := 1
		if p.at(tokDash) {
			p.advance()
			if !p.at(tokNumber) {
				return nil, p.errf(ErrSyntax, "expected week number after '-'")
			}
			hi, _ = strconv.Atoi(p.advance().text)
			if p.at(tokSlash) {
				p.advance()
				if !p.at(tokNumber) {
					return nil, p.errf(ErrSyntax, "expected step after '/'")
				}
				step, _ = strconv.Atoi(p.advance().text)
			}
		}
		if lo < 1 || lo > 53 || hi < 1 || hi > 53 {
			return nil, p.errf(ErrOverflow, "week number out of [1,53] range")
		}
		out = append(out, WeekRange{Low: lo, High: hi, Step: step})

		if p.at(tokComma) {
			save := p.save()
			p.advance()
			if p.at(tokNumber) {
				continue
			}
			p.restore(save)
		}
		break
	}
	return out, nil
}

func (p *parser) isWeekdayIdent() bool {
	if !p.at(tokIdent) {
		return false
	}
	_, ok := weekdayAbbrev[strings.ToLower(p.cur().text)]
	return ok
}

func (p *parser) isHolidayIdent() bool {
	return p.atIdentCI("ph") || p.atIdentCI("sh")
}

func (p *parser) tryWeekdayRanges() ([]WeekdayRange, error) {
	var out []WeekdayRange
	for {
		if p.isHolidayIdent() {
			kind := PublicHoliday
			if strings.EqualFold(p.cur().text, "sh") {
				kind = SchoolHoliday
			}
			p.advance()
			offset := 0
			if off, ok, err := p.tryDayOffsetSuffix(); err != nil {
				return nil, err
			} else if ok {
				offset = off
			}
			out = append(out, WeekdayRange{Form: HolidayForm, Holiday: kind, Offset: offset})
		} else if p.isWeekdayIdent() {
			lo := weekdayAbbrev[strings.ToLower(p.advance().text)]
			hi := lo
			if p.at(tokDash) {
				p.advance()
				if !p.isWeekdayIdent() {
					return nil, p.errf(ErrSyntax, "expected a weekday after '-'")
				}
				hi = weekdayAbbrev[strings.ToLower(p.advance().text)]
			}

			nthStart, nthEnd := AllNth, AllNth
			if p.at(tokLBracket) {
				var err error
				nthStart, nthEnd, err = p.parseNthBrackets()
				if err != nil {
					return nil, err
				}
			}

			offset := 0
			if off, ok, err := p.tryDayOffsetSuffix(); err != nil {
				return nil, err
			} else if ok {
				offset = off
			}

			out = append(out, WeekdayRange{
				Form:         WeekdayForm,
				Low:          lo,
				High:         hi,
				Offset:       offset,
				NthFromStart: nthStart,
				NthFromEnd:   nthEnd,
			})
		} else {
			break
		}

		if p.at(tokComma) {
			save := p.save()
			p.advance()
			if p.isWeekdayIdent() || p.isHolidayIdent() {
				continue
			}
			p.restore(save)
		}
		break
	}
	return out, nil
}

func (p *parser) tryDayOffsetSuffix() (int, bool, error) {
	if !p.at(tokPlus) && !p.at(tokDash) {
		return 0, false, nil
	}
	if !p.peekIsNumber(p.cur().kind) {
		return 0, false, nil
	}
	sign := 1
	if p.at(tokDash) {
		sign = -1
	}
	p.advance()
	n, _ := strconv.Atoi(p.advance().text)
	if p.atIdentCI("day") || p.atIdentCI("days") {
		p.advance()
	}
	return sign * n, true, nil
}

// parseNthBrackets parses `[1,2-4,-1]`-style nth-occurrence constraints
// (positive = from the start of the month, negative = from the end) into
// two 5-bit masks.
func (p *parser) parseNthBrackets() (nthFromStart, nthFromEnd uint8, err error) {
	p.advance() // '['
	for {
		neg := false
		if p.at(tokDash) {
			neg = true
			p.advance()
		}
		if !p.at(tokNumber) {
			return 0, 0, p.errf(ErrSyntax, "expected a number inside nth brackets")
		}
		lo, _ := strconv.Atoi(p.advance().text)
		hi := lo
		if p.at(tokDash) {
			p.advance()
			negHi := false
			if p.at(tokDash) {
				negHi = true
				p.advance()
			}
			if !p.at(tokNumber) {
				return 0, 0, p.errf(ErrSyntax, "expected a number after '-' inside nth brackets")
			}
			hi, _ = strconv.Atoi(p.advance().text)
			_ = negHi
		}

		for n := lo; n <= hi; n++ {
			if n < 1 || n > 5 {
				return 0, 0, p.errf(ErrOverflow, "nth occurrence %d out of [1,5] range", n)
			}
			if neg {
				nthFromEnd |= 1 << uint(n-1)
			} else {
				nthFromStart |= 1 << uint(n-1)
			}
		}

		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	if !p.at(tokRBracket) {
		return 0, 0, p.errf(ErrSyntax, "expected ']'")
	}
	p.advance()

	// A side with no entries stays empty: the two masks are ORed when
	// matching, so an all-ones mask there would select every occurrence.
	return nthFromStart, nthFromEnd, nil
}

// --- time selector ---

func (p *parser) looksLikeTimeSpanStart() bool {
	if p.at(tokNumber) {
		return true
	}
	if p.at(tokLParen) {
		return true
	}
	if p.at(tokIdent) {
		_, ok := sunEventAbbrev[strings.ToLower(p.cur().text)]
		return ok
	}
	return false
}

func (p *parser) parseTimeSelector() (TimeSelector, error) {
	if !p.looksLikeTimeSpanStart() {
		return FullDayTimeSelector(), nil
	}

	var spans []TimeSpan
	for {
		span, err := p.parseTimeSpan()
		if err != nil {
			return TimeSelector{}, err
		}
		spans = append(spans, span)

		if p.at(tokComma) {
			save := p.save()
			p.advance()
			if p.looksLikeTimeSpanStart() {
				continue
			}
			p.restore(save)
		}
		break
	}
	return TimeSelector{Spans: spans}, nil
}

func (p *parser) parseTimeSpan() (TimeSpan, error) {
	start, err := p.parseTimePoint()
	if err != nil {
		return TimeSpan{}, err
	}

	span := TimeSpan{Start: start}

	if p.at(tokPlus) {
		p.advance()
		span.OpenEnd = true
		span.End = TimePoint{Kind: FixedTimeKind, Fixed: MidnightExtended()}
	} else if p.at(tokDash) {
		p.advance()
		end, err := p.parseTimePoint()
		if err != nil {
			return TimeSpan{}, err
		}
		span.End = end
	} else {
		span.End = TimePoint{Kind: FixedTimeKind, Fixed: MidnightExtended()}
	}

	if p.at(tokSlash) {
		p.advance()
		if !p.at(tokNumber) {
			return TimeSpan{}, p.errf(ErrSyntax, "expected a repeat period after '/'")
		}
		first, _ := strconv.Atoi(p.advance().text)
		minutes := first
		if p.at(tokColon) {
			p.advance()
			if !p.at(tokNumber) {
				return TimeSpan{}, p.errf(ErrSyntax, "expected minutes after ':' in repeat period")
			}
			mm, _ := strconv.Atoi(p.advance().text)
			minutes = first*60 + mm
		}
		span.Repeat = minutes
	}

	return span, nil
}

func (p *parser) parseTimePoint() (TimePoint, error) {
	if p.at(tokLParen) {
		p.advance()
		if !p.at(tokIdent) {
			return TimePoint{}, p.errf(ErrSyntax, "expected a sun event name")
		}
		event, ok := sunEventAbbrev[strings.ToLower(p.advance().text)]
		if !ok {
			return TimePoint{}, p.errf(ErrSyntax, "unknown sun event")
		}
		offset := 0
		if p.at(tokPlus) || p.at(tokDash) {
			sign := 1
			if p.at(tokDash) {
				sign = -1
			}
			p.advance()
			hh, mm, err := p.parseHHMM()
			if err != nil {
				return TimePoint{}, err
			}
			offset = sign * (hh*60 + mm)
		}
		if !p.at(tokRParen) {
			return TimePoint{}, p.errf(ErrSyntax, "expected ')'")
		}
		p.advance()
		return TimePoint{Kind: VariableTimeKind, Event: event, Offset: offset}, nil
	}

	if p.at(tokIdent) {
		event, ok := sunEventAbbrev[strings.ToLower(p.cur().text)]
		if ok {
			p.advance()
			offset := 0
			// A trailing '+' with no number after it is the open-ended
			// span marker, consumed later by parseTimeSpan, not an offset.
			if (p.at(tokPlus) && p.peekIsNumber(tokPlus)) || (p.at(tokDash) && p.peekIsNumber(tokDash)) {
				sign := 1
				if p.at(tokDash) {
					sign = -1
				}
				p.advance()
				hh, mm, err := p.parseHHMM()
				if err != nil {
					return TimePoint{}, err
				}
				offset = sign * (hh*60 + mm)
			}
			return TimePoint{Kind: VariableTimeKind, Event: event, Offset: offset}, nil
		}
	}

	hh, mm, err := p.parseHHMM()
	if err != nil {
		return TimePoint{}, err
	}
	et, err := ExtendedTimeOf(hh, mm)
	if err != nil {
		return TimePoint{}, newParseError(ErrInvalidExtendedTime, p.cur().pos, "%s", err.Error())
	}
	return TimePoint{Kind: FixedTimeKind, Fixed: et}, nil
}

func (p *parser) parseHHMM() (hh, mm int, err error) {
	if !p.at(tokNumber) {
		return 0, 0, p.errf(ErrSyntax, "expected an hour number")
	}
	hh, _ = strconv.Atoi(p.advance().text)
	if !p.at(tokColon) {
		return 0, 0, p.errf(ErrSyntax, "expected ':' in time")
	}
	p.advance()
	if !p.at(tokNumber) {
		return 0, 0, p.errf(ErrSyntax, "expected a minute number")
	}
	mm, _ = strconv.Atoi(p.advance().text)
	return hh, mm, nil
}

// --- keyword tables ---

var weekdayAbbrev = map[string]Weekday{
	"mo": Monday,
	"tu": Tuesday,
	"we": Wednesday,
	"th": Thursday,
	"fr": Friday,
	"sa": Saturday,
	"su": Sunday,
}

var monthAbbrev = map[string]Month{
	"jan": January,
	"feb": February,
	"mar": March,
	"apr": April,
	"may": May,
	"jun": June,
	"jul": July,
	"aug": August,
	"sep": September,
	"oct": October,
	"nov": November,
	"dec": December,
}

var sunEventAbbrev = map[string]SunEvent{
	"dawn":    Dawn,
	"sunrise": Sunrise,
	"sunset":  Sunset,
	"dusk":    Dusk,
}
