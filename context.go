package openinghours

import "time"

// Context is the immutable evaluation context of spec.md §3/§6: holiday
// sets, a locale, and an optional interval-size safety valve. The zero
// value is the default context: no holidays, naive locale, no bound.
type Context struct {
	publicHolidays HolidayProvider
	schoolHolidays HolidayProvider
	locale         Locale
	boundInterval  time.Duration // zero means unbounded
}

// DefaultContext returns the default context: no holidays known, naive
// locale (fixed sun-event times), no interval-size bound.
func DefaultContext() *Context {
	return &Context{locale: NaiveLocale{}}
}

// WithHolidays attaches public and school holiday providers, returning a
// new Context (the receiver is left unmodified).
func (c *Context) WithHolidays(public, school HolidayProvider) *Context {
	out := c.clone()
	out.publicHolidays = public
	out.schoolHolidays = school
	return out
}

// WithLocale attaches a locale, returning a new Context.
func (c *Context) WithLocale(locale Locale) *Context {
	out := c.clone()
	out.locale = locale
	return out
}

// WithBoundIntervalSize attaches the safety valve of spec.md §4.7/§5:
// an emitted interval that grows past this size is reported as open-ended,
// its end set to the iterator's upper bound, rather than walking every day
// of a long unchanged stretch to find its exact end.
func (c *Context) WithBoundIntervalSize(d time.Duration) *Context {
	out := c.clone()
	out.boundInterval = d
	return out
}

func (c *Context) clone() *Context {
	if c == nil {
		return DefaultContext()
	}
	cp := *c
	return &cp
}

func (c *Context) localeOrDefault() Locale {
	if c == nil || c.locale == nil {
		return NaiveLocale{}
	}
	return c.locale
}

func (c *Context) boundIntervalSize() time.Duration {
	if c == nil {
		return 0
	}
	return c.boundInterval
}
