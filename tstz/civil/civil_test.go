package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianDay(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(2451545, JulianDay(2000, 1, 1))
	a.Equal(2440588, JulianDay(1970, 1, 1))
	a.Equal(0, JulianDay(-4713, 11, 24))

	for _, tc := range []struct{ y, m, d int }{
		{2000, 1, 1},
		{1970, 1, 1},
		{2014, 9, 18},
		{2016, 2, 29},
		{1, 1, 1},
		{0, 12, 31},   // 1 BC
		{-43, 3, 15},  // 44 BC
		{294276, 12, 31},
	} {
		y, m, d := JulianDate(JulianDay(tc.y, tc.m, tc.d))
		a.Equal(tc.y, y)
		a.Equal(tc.m, m)
		a.Equal(tc.d, d)
	}
}

func TestWeekDayOf(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// 2000-01-01 was a Saturday, 2014-09-18 a Thursday.
	a.Equal(6, WeekDayOf(JulianDay(2000, 1, 1)))
	a.Equal(4, WeekDayOf(JulianDay(2014, 9, 18)))
	a.Equal(0, WeekDayOf(JulianDay(2014, 9, 21)))
}

func TestISOWeek(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		y, m, d    int
		week, year int
	}{
		{"midyear", 2014, 9, 18, 38, 2014},
		{"spills_back", 2005, 1, 1, 53, 2004},
		{"spills_back_2", 2006, 1, 1, 52, 2005},
		{"spills_forward", 2014, 12, 29, 1, 2015},
		{"week_one", 2015, 1, 1, 1, 2015},
		{"leap_week", 2015, 12, 31, 53, 2015},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			a.Equal(tc.week, ISOWeek(tc.y, tc.m, tc.d))
			a.Equal(tc.year, ISOYear(tc.y, tc.m, tc.d))
		})
	}
}

func TestISOWeekDate(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// Week 1 of 2015 starts on Monday 2014-12-29.
	y, m, d := ISOWeekDate(2015, 1)
	a.Equal([]int{2014, 12, 29}, []int{y, m, d})

	// Day 1 of the ISO year is that same Monday.
	a.Equal(1, ISOYearDay(2014, 12, 29))
	a.Equal(4, ISOYearDay(2015, 1, 1))

	// Thursday (Gregorian weekday 5) of week 1 of 2015.
	y, m, d = ISOWeekDayDate(2015, 1, 5)
	a.Equal([]int{2015, 1, 1}, []int{y, m, d})

	// Sunday maps to the end of the ISO week.
	y, m, d = ISOWeekDayDate(2015, 1, 1)
	a.Equal([]int{2015, 1, 4}, []int{y, m, d})
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.True(IsLeapYear(2000))
	a.True(IsLeapYear(2016))
	a.False(IsLeapYear(1900))
	a.False(IsLeapYear(2014))

	a.Equal(29, DaysInMonth(2016, 2))
	a.Equal(28, DaysInMonth(2014, 2))
	a.Equal(31, DaysInMonth(2014, 1))
	a.Equal(30, DaysInMonth(2014, 9))
}

func TestComposeDecompose(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	// The epoch itself.
	micros, err := Compose(Instant{Year: 2000, Month: 1, Day: 1})
	r.NoError(err)
	a.Equal(int64(0), micros)

	for _, tc := range []struct {
		name string
		in   Instant
	}{
		{"plain", Instant{Year: 2014, Month: 9, Day: 18, Hour: 20, Minute: 15}},
		{"fractional", Instant{Year: 2014, Month: 9, Day: 18, Hour: 20, Minute: 15, Second: 30, Micros: 123456}},
		{"pre_epoch", Instant{Year: 1969, Month: 7, Day: 20, Hour: 20, Minute: 17, Second: 40}},
		{"bc", Instant{Year: -43, Month: 3, Day: 15, Hour: 12}},
		{"offset_east", Instant{Year: 2014, Month: 9, Day: 18, Hour: 20, Minute: 15, Offset: 9 * 3600}},
		{"offset_west", Instant{Year: 2014, Month: 9, Day: 18, Hour: 20, Minute: 15, Offset: -4 * 3600}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			micros, err := Compose(tc.in)
			r.NoError(err)

			// Offset shifts the absolute instant, field for field.
			utc, err := DecomposeUTC(micros + int64(tc.in.Offset)*usecsPerSec)
			r.NoError(err)
			a.Equal(tc.in.Year, utc.Year)
			a.Equal(tc.in.Month, utc.Month)
			a.Equal(tc.in.Day, utc.Day)
			a.Equal(tc.in.Hour, utc.Hour)
			a.Equal(tc.in.Minute, utc.Minute)
			a.Equal(tc.in.Second, utc.Second)
			a.Equal(tc.in.Micros, utc.Micros)
		})
	}
}

func TestComposeAgainstTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	// The Julian path and the Unix path must agree.
	in := Instant{Year: 2014, Month: 9, Day: 18, Hour: 20, Minute: 15, Offset: -4 * 3600}
	micros, err := Compose(in)
	r.NoError(err)

	want, err := FromTime(time.Date(2014, 9, 18, 20, 15, 0, 0, time.FixedZone("", -4*3600)))
	r.NoError(err)
	a.Equal(want, micros)
	a.Equal(time.Date(2014, 9, 19, 0, 15, 0, 0, time.UTC), ToTime(micros))
}

func TestComposeOutOfRange(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	for _, in := range []Instant{
		{Year: 294277, Month: 1, Day: 1},
		{Year: julianMaxYear, Month: 1, Day: 1},
		{Year: -4714, Month: 1, Day: 1},
	} {
		_, err := Compose(in)
		r.ErrorIs(err, ErrOutOfRange)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	a.Equal(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), ToTime(0))

	for _, moment := range []time.Time{
		time.Date(2014, 9, 18, 20, 15, 0, 0, time.UTC),
		time.Date(1969, 7, 20, 20, 17, 40, 500000, time.UTC),
		time.Date(2000, 1, 1, 0, 0, 0, 1000, time.UTC),
	} {
		micros, err := FromTime(moment)
		r.NoError(err)
		a.True(ToTime(micros).Equal(moment), "round trip of %v", moment)
	}

	// Sub-microsecond precision rounds half up.
	micros, err := FromTime(time.Date(2000, 1, 1, 0, 0, 0, 1500, time.UTC))
	r.NoError(err)
	a.Equal(int64(2), micros)
}

func TestIsFinite(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.True(IsFinite(0))
	a.True(IsFinite(minMicros))
	a.False(IsFinite(NoBegin))
	a.False(IsFinite(NoEnd))
}
