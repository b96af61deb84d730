package openinghours

import (
	"fmt"
	"math/big"
)

// LocalDateTime is a date and time without a time zone component: the naive
// instant a rule sequence is evaluated against once a Locale has resolved
// any variable time points (sun events) for the day in question.
type LocalDateTime struct {
	v big.Int
}

// OfLocalDateAndTime combines the supplied LocalDate and LocalTime into a single LocalDateTime.
func OfLocalDateAndTime(date LocalDate, time LocalTime) LocalDateTime {
	return makeLocalDateTime(int64(date), int64(time.v))
}

func makeLocalDateTime(date, time int64) LocalDateTime {
	out := big.NewInt(date)
	out.Mul(out, bigIntDayExtent)
	out.Add(out, big.NewInt(time))
	return LocalDateTime{v: *out}
}

// Compare compares d with d2. If d is before d2, it returns -1;
// if d is after d2, it returns 1; if they're the same, it returns 0.
func (d LocalDateTime) Compare(d2 LocalDateTime) int {
	return d.v.Cmp(&d2.v)
}

// Split returns separate LocalDate and LocalTime that together represent d.
func (d LocalDateTime) Split() (LocalDate, LocalTime) {
	date, time := d.split()
	return LocalDate(date), LocalTime{v: time}
}

func (d LocalDateTime) split() (date, time int64) {
	v := new(big.Int).Set(&d.v)

	var _time big.Int
	_date, _ := v.DivMod(v, bigIntDayExtent, &_time)
	return _date.Int64(), _time.Int64()
}

func (d LocalDateTime) String() string {
	date, time := d.split()
	hour, min, sec, nsec := fromTime(time)
	year, month, day, err := fromDate(date)
	if err != nil {
		panic(err.Error())
	}

	out := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", year, month, day, hour, min, sec)
	if nsec != 0 {
		out += fmt.Sprintf(".%09d", nsec)
	}
	return out
}

var bigIntDayExtent = big.NewInt(24 * oneHour)
