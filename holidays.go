package openinghours

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/flate"
)

// CountryCode identifies a holiday region, e.g. "FR" or "DE-BY". The core
// does not interpret these beyond using them as map keys: the embedded
// per-country holiday database itself is an external collaborator
// (spec.md §1 "Out of scope").
type CountryCode string

// HolidayRegistry lazily decodes a deflate-compressed concatenation of
// compact-calendar records into per-region HolidaySets, per spec.md §6
// "Persisted data (holiday database)". The region order is carried
// out-of-band as a comma-separated list, since the compressed stream
// itself carries no region labels.
type HolidayRegistry struct {
	regions []CountryCode
	data    []byte

	once    sync.Once
	decoded map[CountryCode]HolidaySet
	err     error
}

// NewHolidayRegistry builds a registry over a deflate-compressed
// concatenation of Calendar.Serialize records, one per region, in the
// order given by regionOrder (comma-separated country codes).
func NewHolidayRegistry(regionOrder string, deflated []byte) *HolidayRegistry {
	var regions []CountryCode
	for _, r := range strings.Split(regionOrder, ",") {
		if r = strings.TrimSpace(r); r != "" {
			regions = append(regions, CountryCode(r))
		}
	}
	return &HolidayRegistry{regions: regions, data: deflated}
}

func (h *HolidayRegistry) decode() {
	h.once.Do(func() {
		h.decoded = make(map[CountryCode]HolidaySet, len(h.regions))

		reader := flate.NewReader(bytes.NewReader(h.data))
		defer reader.Close()

		for _, region := range h.regions {
			cal, err := DeserializeCalendar(reader)
			if err != nil {
				h.err = fmt.Errorf("openinghours: decoding holiday region %q: %w", region, err)
				return
			}
			h.decoded[region] = NewHolidaySet(cal)
		}
	})
}

// Holidays returns the decoded HolidaySet for region, or false if the
// region is not present in this registry (or the stream failed to
// decode, in which case every lookup reports absent).
func (h *HolidayRegistry) Holidays(region CountryCode) (HolidaySet, bool) {
	h.decode()
	if h.err != nil {
		return HolidaySet{}, false
	}
	set, ok := h.decoded[region]
	return set, ok
}

// Regions returns the region codes this registry was constructed with, in
// their declared order.
func (h *HolidayRegistry) Regions() []CountryCode {
	return append([]CountryCode(nil), h.regions...)
}

// WithHolidaysFromRegistry attaches the public/school holiday sets for a
// region, looked up from a HolidayRegistry, returning a new Context. It is
// a convenience wrapper over WithHolidays for callers holding a decoded
// per-country database; regions that carry no distinct school-holiday
// calendar may pass the same region for both arguments.
func (c *Context) WithHolidaysFromRegistry(registry *HolidayRegistry, publicRegion, schoolRegion CountryCode) *Context {
	public, _ := registry.Holidays(publicRegion)
	school, _ := registry.Holidays(schoolRegion)
	return c.WithHolidays(public, school)
}
