package openinghours

import "time"

// Zone is an IANA time zone, carried by ZoneLocale and CoordinateLocale and
// reported by a Locale's Zone method. Evaluation works on naive
// LocalDateTime values and does not convert between zones.
type Zone struct {
	loc *time.Location
}

// UTCZone returns the Zone wrapping time.UTC. Named distinctly from the
// stdlib time.UTC it wraps, since every locale in this package needs a
// concrete Zone value rather than a *time.Location.
func UTCZone() Zone {
	return Zone{loc: time.UTC}
}

// Local returns the Zone wrapping the system's local time zone.
func Local() Zone {
	localOnce.Do(initLocal)
	return Zone{loc: &localLoc}
}

// LoadZone loads the named IANA zone (e.g. "Europe/Paris"), for
// constructing a ZoneLocale or CoordinateLocale that evaluates rules in a
// zone other than UTC or the system default.
func LoadZone(name string) (Zone, error) {
	loc, err := time.LoadLocation(name)
	return Zone{loc: loc}, err
}
