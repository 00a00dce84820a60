package tstz

import (
	"fmt"
	"strings"
	"time"

	"github.com/mweber26/timestampandtz/tstz/civil"
)

const (
	usecsPerDay    = 86400000000
	usecsPerHour   = 3600000000
	usecsPerMinute = 60000000
	usecsPerSec    = 1000000
)

// Interval is the span triple of timestamp arithmetic: Months and Days are
// calendar units applied to the wall clock, Micros is elapsed real time.
// The three components are independent and keep their own signs.
type Interval struct {
	Months int32
	Days   int32
	Micros int64
}

// NewInterval assembles an interval from its three components.
func NewInterval(months, days int32, micros int64) Interval {
	return Interval{Months: months, Days: days, Micros: micros}
}

// IntervalFromDuration converts an elapsed duration into a pure sub-day
// interval, truncating to microseconds.
func IntervalFromDuration(d time.Duration) Interval {
	return Interval{Micros: d.Microseconds()}
}

// Negate flips the sign of every component.
func (iv Interval) Negate() Interval {
	return Interval{Months: -iv.Months, Days: -iv.Days, Micros: -iv.Micros}
}

// Duration returns the sub-day component as a time.Duration. Months and
// days have no fixed length and are not included.
func (iv Interval) Duration() time.Duration {
	return time.Duration(iv.Micros) * time.Microsecond
}

// Add applies span to the value in wall-clock terms: months first, then
// days, then elapsed microseconds. Each calendar pass reads the wall clock
// in the value's own zone, mutates it, clamps the day of month to the new
// month's end, and re-resolves the UTC offset, so a pass that crosses a DST
// transition keeps the wall clock and shifts the instant. The microsecond
// pass adds plain elapsed time. Infinite values pass through unchanged.
func (ts TzStamp) Add(span Interval) (TzStamp, error) {
	if !ts.IsFinite() {
		return ts, nil
	}
	_, loc, err := ts.boundZone()
	if err != nil {
		return TzStamp{}, err
	}

	micros := ts.micros
	if span.Months != 0 {
		in, err := civil.Decompose(micros, loc)
		if err != nil {
			return TzStamp{}, err
		}

		mon := in.Month + int(span.Months)
		switch {
		case mon > 12:
			in.Year += (mon - 1) / 12
			in.Month = (mon-1)%12 + 1
		case mon < 1:
			in.Year += mon/12 - 1
			in.Month = mon%12 + 12
		default:
			in.Month = mon
		}

		// end-of-month saturation: Jan 31 + 1 month is the last of Feb
		if last := civil.DaysInMonth(in.Year, in.Month); in.Day > last {
			in.Day = last
		}

		in.Offset = civil.OffsetForWall(loc, in)
		if micros, err = civil.Compose(in); err != nil {
			return TzStamp{}, err
		}
	}

	if span.Days != 0 {
		in, err := civil.Decompose(micros, loc)
		if err != nil {
			return TzStamp{}, err
		}

		jd := civil.JulianDay(in.Year, in.Month, in.Day) + int(span.Days)
		in.Year, in.Month, in.Day = civil.JulianDate(jd)

		in.Offset = civil.OffsetForWall(loc, in)
		if micros, err = civil.Compose(in); err != nil {
			return TzStamp{}, err
		}
	}

	sum := micros + span.Micros
	if (span.Micros > 0 && sum < micros) || (span.Micros < 0 && sum > micros) || !civil.InRange(sum) {
		return TzStamp{}, civil.ErrOutOfRange
	}
	return TzStamp{micros: sum, zone: ts.zone}, nil
}

// Sub applies the negated span: value minus interval.
func (ts TzStamp) Sub(span Interval) (TzStamp, error) {
	return ts.Add(span.Negate())
}

// Diff returns the elapsed time from other to ts as a day/time interval,
// justified so the microsecond part stays below 24 hours and shares the day
// part's sign. Months stay zero: no single zone's calendar governs the gap
// between two zone-bound values. Both values must be finite and bound.
func (ts TzStamp) Diff(other TzStamp) (Interval, error) {
	if !ts.IsFinite() || !other.IsFinite() {
		return Interval{}, fmt.Errorf("%w: cannot subtract infinite timestamps", civil.ErrOutOfRange)
	}
	if ts.zone == 0 || other.zone == 0 {
		return Interval{}, ErrUnboundZone
	}

	micros := ts.micros - other.micros
	if (other.micros > 0 && micros > ts.micros) || (other.micros < 0 && micros < ts.micros) {
		return Interval{}, civil.ErrOutOfRange
	}

	days := micros / usecsPerDay
	micros -= days * usecsPerDay
	switch {
	case days > 0 && micros < 0:
		micros += usecsPerDay
		days--
	case days < 0 && micros > 0:
		micros -= usecsPerDay
		days++
	}
	return Interval{Days: int32(days), Micros: micros}, nil
}

type truncUnit int

const (
	truncMillennium truncUnit = iota
	truncCentury
	truncDecade
	truncYear
	truncQuarter
	truncMonth
	truncWeek
	truncDay
	truncHour
	truncMinute
	truncSecond
	truncMilliseconds
	truncMicroseconds
	truncTimezone
)

var truncUnits = map[string]truncUnit{
	"millennium": truncMillennium, "millenniums": truncMillennium, "millennia": truncMillennium,
	"century": truncCentury, "centuries": truncCentury,
	"decade": truncDecade, "decades": truncDecade,
	"year": truncYear, "years": truncYear,
	"quarter": truncQuarter, "quarters": truncQuarter,
	"month": truncMonth, "months": truncMonth,
	"week": truncWeek, "weeks": truncWeek,
	"day": truncDay, "days": truncDay,
	"hour": truncHour, "hours": truncHour,
	"minute": truncMinute, "minutes": truncMinute,
	"second": truncSecond, "seconds": truncSecond,
	"millisecond": truncMilliseconds, "milliseconds": truncMilliseconds,
	"microsecond": truncMicroseconds, "microseconds": truncMicroseconds,
	"timezone": truncTimezone,
}

// Trunc zeroes every wall-clock field below the named unit, read in the
// value's own zone, then re-resolves the offset for the truncated wall
// time: date_trunc for this type. Week lands on the Monday of the ISO week;
// decade, century, and millennium use year arithmetic without a year zero.
// Unit names are case-insensitive, singular or plural. Infinite values pass
// through unchanged.
//
// The field ladder ports timestamptz_trunc():
// https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/timestamp.c
func (ts TzStamp) Trunc(unit string) (TzStamp, error) {
	lower := strings.ToLower(strings.TrimSpace(unit))
	u, ok := truncUnits[lower]
	if !ok {
		return TzStamp{}, fmt.Errorf("%w %q not recognized", ErrUnit, lower)
	}
	if u == truncTimezone {
		return TzStamp{}, fmt.Errorf("%w %q not supported", ErrUnit, lower)
	}
	if !ts.IsFinite() {
		return ts, nil
	}
	_, loc, err := ts.boundZone()
	if err != nil {
		return TzStamp{}, err
	}
	in, err := civil.Decompose(ts.micros, loc)
	if err != nil {
		return TzStamp{}, err
	}

	switch u {
	case truncWeek:
		woy := civil.ISOWeek(in.Year, in.Month, in.Day)
		// week 52/53 in January belongs to the previous ISO year, and
		// week 1 in December to the next
		if woy >= 52 && in.Month == 1 {
			in.Year--
		}
		if woy <= 1 && in.Month == 12 {
			in.Year++
		}
		in.Year, in.Month, in.Day = civil.ISOWeekDate(in.Year, woy)
		in.Hour, in.Minute, in.Second, in.Micros = 0, 0, 0, 0

	case truncMillennium:
		// first year of the millennium: ..., -1000, 1, 1001, 2001
		if in.Year > 0 {
			in.Year = (in.Year+999)/1000*1000 - 999
		} else {
			in.Year = -((999-(in.Year-1))/1000)*1000 + 1
		}
		fallthrough
	case truncCentury:
		// first year of the century: ..., -100, 1, 101, 201
		if in.Year > 0 {
			in.Year = (in.Year+99)/100*100 - 99
		} else {
			in.Year = -((99-(in.Year-1))/100)*100 + 1
		}
		fallthrough
	case truncDecade:
		// not applied when the year was already truncated above
		if u == truncDecade {
			if in.Year > 0 {
				in.Year = in.Year / 10 * 10
			} else {
				in.Year = -((8 - (in.Year - 1)) / 10) * 10
			}
		}
		fallthrough
	case truncYear:
		in.Month = 1
		fallthrough
	case truncQuarter:
		in.Month = 3*((in.Month-1)/3) + 1
		fallthrough
	case truncMonth:
		in.Day = 1
		fallthrough
	case truncDay:
		in.Hour = 0
		fallthrough
	case truncHour:
		in.Minute = 0
		fallthrough
	case truncMinute:
		in.Second = 0
		fallthrough
	case truncSecond:
		in.Micros = 0

	case truncMilliseconds:
		in.Micros = in.Micros / 1000 * 1000
	case truncMicroseconds:
		// already microsecond precision
	}

	in.Offset = civil.OffsetForWall(loc, in)
	micros, err := civil.Compose(in)
	if err != nil {
		return TzStamp{}, err
	}
	return TzStamp{micros: micros, zone: ts.zone}, nil
}
