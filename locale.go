package openinghours

// Locale is the capability interface consumed by the time filter to
// resolve sun-event variable times (spec.md §6 "Locale/event provider",
// §9 "Polymorphic locale"). It is a capability set, not an inheritance
// hierarchy: implementations may ignore zone or coordinate information
// entirely.
type Locale interface {
	// EventTime resolves a sun event on a given date to a clock time. The
	// default (no coordinates) locale returns the fixed times of spec.md
	// §6: dawn 06:00, sunrise 07:00, sunset 19:00, dusk 20:00.
	EventTime(date LocalDate, event SunEvent) ExtendedTime
	// Zone returns the IANA zone this locale evaluates in.
	Zone() Zone
}

// NaiveLocale carries no time zone or coordinate information; sun events
// resolve to the fixed default clock times.
type NaiveLocale struct{}

func (NaiveLocale) EventTime(date LocalDate, event SunEvent) ExtendedTime {
	return defaultSunEventTime(event)
}

func (NaiveLocale) Zone() Zone { return UTCZone() }

// ZoneLocale carries a time zone but no coordinates; sun events still
// resolve to the fixed default clock times, matching the original
// implementation's own fallback (NoLocation.event_time).
type ZoneLocale struct {
	zone Zone
}

// NewZoneLocale builds a ZoneLocale from a loaded IANA zone.
func NewZoneLocale(zone Zone) ZoneLocale {
	return ZoneLocale{zone: zone}
}

func (l ZoneLocale) EventTime(date LocalDate, event SunEvent) ExtendedTime {
	return defaultSunEventTime(event)
}

func (l ZoneLocale) Zone() Zone { return l.zone }

// Coordinates is a WGS-84 latitude/longitude pair used to compute sun
// events; computing the actual sun event from coordinates is an external
// collaborator concern (spec.md §1 "Out of scope"), so CoordinateLocale
// only carries the coordinates and exposes them via SunEventFunc, which
// callers may set to a real astronomical calculator.
type Coordinates struct {
	Latitude, Longitude float64
}

// ValidCoordinates reports whether lat/lon fall within their valid ranges.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// NewCoordinates validates and constructs a Coordinates value.
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if !ValidCoordinates(lat, lon) {
		return Coordinates{}, newContextError(ErrInvalidCoordinates, "latitude %g / longitude %g out of range", lat, lon)
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

// SunEventFunc computes the clock time of a sun event for a date at a set
// of coordinates. It is the out-of-scope external collaborator of spec.md
// §1 ("sun-event computation ... from latitude/longitude/date").
type SunEventFunc func(date LocalDate, event SunEvent, coords Coordinates) ExtendedTime

// CoordinateLocale carries both a time zone and coordinates; sun events
// resolve via an injected SunEventFunc, falling back to the fixed default
// times when none is supplied.
type CoordinateLocale struct {
	zone   Zone
	coords Coordinates
	sunFn  SunEventFunc
}

// NewCoordinateLocale builds a CoordinateLocale. sunFn may be nil, in which
// case sun events resolve to the fixed default clock times.
func NewCoordinateLocale(zone Zone, coords Coordinates, sunFn SunEventFunc) CoordinateLocale {
	return CoordinateLocale{zone: zone, coords: coords, sunFn: sunFn}
}

func (l CoordinateLocale) EventTime(date LocalDate, event SunEvent) ExtendedTime {
	if l.sunFn == nil {
		return defaultSunEventTime(event)
	}
	return l.sunFn(date, event, l.coords)
}

func (l CoordinateLocale) Zone() Zone { return l.zone }

// defaultSunEventTime returns the fixed approximate sun-event clock times
// of spec.md §6, used whenever no real astronomical computation is wired.
func defaultSunEventTime(event SunEvent) ExtendedTime {
	switch event {
	case Dawn:
		return MustExtendedTimeOf(6, 0)
	case Sunrise:
		return MustExtendedTimeOf(7, 0)
	case Sunset:
		return MustExtendedTimeOf(19, 0)
	case Dusk:
		return MustExtendedTimeOf(20, 0)
	default:
		return MustExtendedTimeOf(7, 0)
	}
}

// resolveTimePoint converts an AST TimePoint to a concrete ExtendedTime on
// a given date using the locale's event resolution.
func resolveTimePoint(tp TimePoint, date LocalDate, locale Locale) ExtendedTime {
	if tp.Kind == FixedTimeKind {
		return tp.Fixed
	}
	base := locale.EventTime(date, tp.Event)
	return base.SaturatingAddMinutes(tp.Offset)
}
