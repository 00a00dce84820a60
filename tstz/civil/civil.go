// Package civil implements the calendar plumbing under timestampandtz
// values: broken-down local time, Julian-day and ISO-week conversions,
// encoding to and from microseconds since the 2000-01-01 epoch, time zone
// offset resolution for wall-clock readings, and parsing of date/time
// literals.
//
// The conversion and week-numbering routines are ported from the PostgreSQL
// backend ([datetime.c] and [timestamp.c]) so that values round-trip exactly
// the way the server computes them.
//
// [datetime.c]: https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/datetime.c
// [timestamp.c]: https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/timestamp.c
package civil

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrOutOfRange is returned when a date or timestamp falls outside the
	// representable range.
	ErrOutOfRange = errors.New("timestamp out of range")

	// ErrParse is returned for date/time literals that match no supported
	// syntax.
	ErrParse = errors.New("invalid input syntax")
)

// Microsecond counts since 2000-01-01 00:00:00 UTC. The two extremes are
// reserved as the -infinity and infinity sentinels and never denote real
// instants.
const (
	NoBegin = math.MinInt64
	NoEnd   = math.MaxInt64

	// minMicros is 4714-11-24 00:00:00 BC, the first valid instant;
	// endMicros is 294277-01-01 00:00:00, the first invalid one.
	minMicros = -211813488000000000
	endMicros = 9223371331200000000
)

const (
	postgresEpochJDate = 2451545 // 2000-01-01
	unixEpochJDate     = 2440588 // 1970-01-01
	epochDeltaSecs     = (postgresEpochJDate - unixEpochJDate) * secsPerDay

	secsPerDay     = 86400
	usecsPerDay    = 86400000000
	usecsPerHour   = 3600000000
	usecsPerMinute = 60000000
	usecsPerSec    = 1000000

	julianMinYear  = -4713
	julianMinMonth = 11
	julianMaxYear  = 5874898
)

// IsFinite reports whether micros denotes a real instant rather than one of
// the infinity sentinels.
func IsFinite(micros int64) bool { return micros != NoBegin && micros != NoEnd }

// InRange reports whether micros lies inside the representable timestamp
// range, the backend's IS_VALID_TIMESTAMP check.
func InRange(micros int64) bool { return micros >= minMicros && micros < endMicros }

// Instant is a local calendar reading of some absolute instant: the
// broken-down fields, plus the zone context they were read in. Year is
// astronomical (0 is 1 BC). WeekDay counts 0=Sunday and YearDay from 1; both
// are filled by [Decompose] and left zero elsewhere. Offset is seconds east
// of UTC.
type Instant struct {
	Year   int
	Month  int // 1..12
	Day    int
	Hour   int
	Minute int
	Second int
	Micros int // fractional microseconds

	WeekDay int
	YearDay int
	Offset  int
	IsDST   bool
	Abbrev  string
}

// IsLeapYear reports whether astronomical year y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

var dayTab = [2][12]int{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// DaysInMonth returns the number of days in the given month of astronomical
// year y.
func DaysInMonth(y, m int) int {
	if IsLeapYear(y) {
		return dayTab[1][m-1]
	}
	return dayTab[0][m-1]
}

// validJulian reports whether y/m/d is inside the range the Julian-day
// routines handle.
func validJulian(y, m, _ int) bool {
	return (y > julianMinYear || (y == julianMinYear && m >= julianMinMonth)) &&
		y < julianMaxYear
}

// JulianDay converts a calendar date to its Julian day number. Ports the
// backend's date2j().
func JulianDay(y, m, d int) int {
	if m > 2 {
		m++
		y += 4800
	} else {
		m += 13
		y += 4799
	}

	century := y / 100
	julian := y*365 - 32167
	julian += y/4 - century + century/4
	julian += 7834*m/256 + d

	return julian
}

// JulianDate converts a Julian day number back to a calendar date. Ports the
// backend's j2date(); jd must be non-negative.
func JulianDate(jd int) (year, month, day int) {
	julian := uint(jd)
	julian += 32044
	quad := julian / 146097
	extra := (julian-quad*146097)*4 + 3
	julian += 60 + quad*3 + extra/146097
	quad = julian / 1461
	julian -= quad * 1461
	y := int(julian * 4 / 1461)
	if y != 0 {
		julian = (julian + 305) % 365
	} else {
		julian = (julian + 306) % 366
	}
	julian += 123
	y += int(quad * 4)
	year = y - 4800
	quad = julian * 2141 / 65536
	day = int(julian - 7834*quad/256)
	month = (int(quad)+10)%12 + 1
	return year, month, day
}

// WeekDayOf returns the day of the week (0=Sunday) for a Julian day number.
// Ports the backend's j2day().
func WeekDayOf(jd int) int {
	d := (jd + 1) % 7
	if d < 0 {
		d += 7
	}
	return d
}

// ISOWeek returns the ISO 8601 week number (1..53) of a date. Ports the
// backend's date2isoweek().
func ISOWeek(y, m, d int) int {
	dayn := JulianDay(y, m, d)
	day4 := JulianDay(y, 1, 4)
	day0 := WeekDayOf(day4 - 1)

	// The first week must contain a Thursday, otherwise this day counts
	// against the previous year.
	if dayn < day4-day0 {
		day4 = JulianDay(y-1, 1, 4)
		day0 = WeekDayOf(day4 - 1)
	}

	week := (dayn-(day4-day0))/7 + 1

	// The last few days of a year can fall into week 1 of the next one.
	if week >= 52 {
		day4 = JulianDay(y+1, 1, 4)
		day0 = WeekDayOf(day4 - 1)
		if dayn >= day4-day0 {
			week = (dayn-(day4-day0))/7 + 1
		}
	}

	return week
}

// ISOYear returns the ISO 8601 week-numbering year a date belongs to. Ports
// the backend's date2isoyear().
func ISOYear(y, m, d int) int {
	dayn := JulianDay(y, m, d)
	day4 := JulianDay(y, 1, 4)
	day0 := WeekDayOf(day4 - 1)

	if dayn < day4-day0 {
		day4 = JulianDay(y-1, 1, 4)
		day0 = WeekDayOf(day4 - 1)
		y--
	}

	week := (dayn-(day4-day0))/7 + 1

	if week >= 52 {
		day4 = JulianDay(y+1, 1, 4)
		day0 = WeekDayOf(day4 - 1)
		if dayn >= day4-day0 {
			y++
		}
	}

	return y
}

// ISOWeekJulian returns the Julian day of the Monday starting the given ISO
// week. Ports the backend's isoweek2j().
func ISOWeekJulian(isoYear, week int) int {
	day4 := JulianDay(isoYear, 1, 4)
	day0 := WeekDayOf(day4 - 1)
	return (week-1)*7 + (day4 - day0)
}

// ISOWeekDate returns the calendar date of the Monday starting the given ISO
// week.
func ISOWeekDate(isoYear, week int) (y, m, d int) {
	return JulianDate(ISOWeekJulian(isoYear, week))
}

// ISOWeekDayDate returns the calendar date for an ISO week plus a Gregorian
// weekday (1=Sunday..7=Saturday). Ports the backend's isoweekdate2date().
func ISOWeekDayDate(isoYear, week, wday int) (y, m, d int) {
	jd := ISOWeekJulian(isoYear, week)
	if wday > 1 {
		jd += wday - 2
	} else {
		jd += 6
	}
	return JulianDate(jd)
}

// ISOYearDay returns the day number within the ISO week-numbering year
// (day 1 is the Monday of the first ISO week). Ports the backend's
// date2isoyearday().
func ISOYearDay(y, m, d int) int {
	return JulianDay(y, m, d) - ISOWeekJulian(ISOYear(y, m, d), 1) + 1
}

// Compose converts local fields plus their UTC offset into microseconds
// since the 2000-01-01 epoch. Ports the backend's tm2timestamp(), including
// its overflow checks.
func Compose(in Instant) (int64, error) {
	if !validJulian(in.Year, in.Month, in.Day) {
		return 0, ErrOutOfRange
	}

	date := int64(JulianDay(in.Year, in.Month, in.Day) - postgresEpochJDate)
	tod := timeToMicros(in.Hour, in.Minute, in.Second, in.Micros)

	micros := date*usecsPerDay + tod
	// check for major overflow
	if (micros-tod)/usecsPerDay != date {
		return 0, ErrOutOfRange
	}
	// check for just-barely overflow (okay except time-of-day wraps);
	// caution: we want to allow 1999-12-31 24:00:00
	if (micros < 0 && date > 0) || (micros > 0 && date < -1) {
		return 0, ErrOutOfRange
	}

	micros -= int64(in.Offset) * usecsPerSec

	if micros < minMicros || micros >= endMicros {
		return 0, ErrOutOfRange
	}
	return micros, nil
}

// DecomposeUTC breaks micros down into UTC calendar fields. WeekDay, YearDay
// and the zone fields are left zero; micros must be finite. Ports the
// date/time splitting of the backend's timestamp2tm().
func DecomposeUTC(micros int64) (Instant, error) {
	date := micros / usecsPerDay
	tod := micros % usecsPerDay
	if tod < 0 {
		tod += usecsPerDay
		date--
	}

	date += postgresEpochJDate
	if date < 0 || date > math.MaxInt32 {
		return Instant{}, ErrOutOfRange
	}

	var in Instant
	in.Year, in.Month, in.Day = JulianDate(int(date))
	in.Hour = int(tod / usecsPerHour)
	tod -= int64(in.Hour) * usecsPerHour
	in.Minute = int(tod / usecsPerMinute)
	tod -= int64(in.Minute) * usecsPerMinute
	in.Second = int(tod / usecsPerSec)
	in.Micros = int(tod - int64(in.Second)*usecsPerSec)
	return in, nil
}

// Decompose breaks micros down into local calendar fields in loc, filling
// WeekDay, YearDay, Offset, IsDST, and Abbrev. micros must be finite.
func Decompose(micros int64, loc *time.Location) (Instant, error) {
	if micros < minMicros || micros >= endMicros {
		return Instant{}, ErrOutOfRange
	}

	t := ToTime(micros).In(loc)
	year, month, day := t.Date()

	in := Instant{
		Year:   year,
		Month:  int(month),
		Day:    day,
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Micros: t.Nanosecond() / 1000,
		IsDST:  t.IsDST(),
	}
	in.Abbrev, in.Offset = t.Zone()

	jd := JulianDay(in.Year, in.Month, in.Day)
	in.WeekDay = WeekDayOf(jd)
	in.YearDay = jd - JulianDay(in.Year, 1, 1) + 1
	return in, nil
}

// ToTime converts finite micros to a time.Time in UTC.
func ToTime(micros int64) time.Time {
	sec := micros / usecsPerSec
	rem := micros % usecsPerSec
	if rem < 0 {
		rem += usecsPerSec
		sec--
	}
	return time.Unix(sec-epochDeltaSecs, rem*1000).UTC()
}

// FromTime converts t to microseconds since the 2000-01-01 epoch, rounding
// sub-microsecond precision half up.
func FromTime(t time.Time) (int64, error) {
	sec := t.Unix() - epochDeltaSecs
	us := int64(t.Nanosecond()+500) / 1000
	if sec > math.MaxInt64/usecsPerSec-1 || sec < math.MinInt64/usecsPerSec+1 {
		return 0, ErrOutOfRange
	}

	micros := sec*usecsPerSec + us
	if micros < minMicros || micros >= endMicros {
		return 0, ErrOutOfRange
	}
	return micros, nil
}

func timeToMicros(hour, minute, sec, micros int) int64 {
	return ((int64(hour)*60+int64(minute))*60+int64(sec))*usecsPerSec + int64(micros)
}
