package format

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mweber26/timestampandtz/tstz/civil"
)

// 2014-09-18 20:15:30.123456, a Thursday, as observed in US/Eastern.
var sepThursday = civil.Instant{
	Year: 2014, Month: 9, Day: 18,
	Hour: 20, Minute: 15, Second: 30, Micros: 123456,
	WeekDay: 4, YearDay: 261,
	Offset: -14400, IsDST: true, Abbrev: "EDT",
}

// 2014-05-03 09:05:07 UTC, a Saturday.
var maySaturday = civil.Instant{
	Year: 2014, Month: 5, Day: 3,
	Hour: 9, Minute: 5, Second: 7,
	WeekDay: 6, YearDay: 123,
	Abbrev: "UTC",
}

func TestFormat(t *testing.T) {
	t.Parallel()

	// 2014-12-29 belongs to ISO week 2015-W01.
	isoBoundary := civil.Instant{
		Year: 2014, Month: 12, Day: 29,
		WeekDay: 1, YearDay: 363,
		Abbrev: "UTC",
	}
	// 43 BC is astronomical year -42.
	bc := civil.Instant{
		Year: -42, Month: 3, Day: 15,
		WeekDay: 0, YearDay: 74,
		Abbrev: "UTC",
	}
	sunday := civil.Instant{
		Year: 2014, Month: 9, Day: 21,
		WeekDay: 0, YearDay: 264,
		Abbrev: "UTC",
	}
	halfOffset := civil.Instant{
		Year: 2014, Month: 9, Day: 18, Hour: 5,
		WeekDay: 4, YearDay: 261,
		Offset: -16200, Abbrev: "-0430",
	}
	cet := civil.Instant{
		Year: 2014, Month: 1, Day: 6, Hour: 12,
		WeekDay: 1, YearDay: 6,
		Offset: 3600, Abbrev: "CET",
	}

	for _, tc := range []struct {
		name    string
		picture string
		in      civil.Instant
		want    string
	}{
		{"iso_datetime", "YYYY-MM-DD HH24:MI:SS", sepThursday, "2014-09-18 20:15:30"},
		{"twelve_hour", "HH12:MI:SS PM", sepThursday, "08:15:30 PM"},
		{"hh_is_twelve_hour", "HH:MI a.m.", maySaturday, "09:05 a.m."},
		{"noon_rollover", "HH12", civil.Instant{Hour: 12}, "12"},
		{"midnight_rollover", "HH12", civil.Instant{}, "12"},
		{"fill_mode_numbers", "FMHH12:FMMI", sepThursday, "8:15"},
		{"seconds_past_midnight", "SSSS", sepThursday, "72930"},
		{"seconds_past_midnight_alias", "SSSSS", sepThursday, "72930"},
		{"fractions", "FF1 FF3 FF5 FF6", sepThursday, "1 123 12345 123456"},
		{"milli_micro", "MS US", sepThursday, "123 123456"},
		{"ordinal_lower", "DDth", sepThursday, "18th"},
		{"ordinal_upper", "DDTH", sepThursday, "18TH"},
		{"day_name", "Day", sepThursday, "Thursday "},
		{"day_name_fill", "FMDay", sepThursday, "Thursday"},
		{"day_name_upper", "DAY", sepThursday, "THURSDAY "},
		{"day_name_pad", "Day", sunday, "Sunday   "},
		{"day_abbrev_lower", "dy", sepThursday, "thu"},
		{"month_name_pad", "Month", maySaturday, "May      "},
		{"month_name_fill", "FMMonth", maySaturday, "May"},
		{"month_name_upper", "MONTH", sepThursday, "SEPTEMBER"},
		{"month_name_lower", "month", sepThursday, "september"},
		{"month_abbrev", "MON", sepThursday, "SEP"},
		{"month_translated", "TMMonth", maySaturday, "May"},
		{"gregorian_day_numbers", "D DDD WW W Q", sepThursday, "5 261 38 3 3"},
		{"iso_day_numbers", "ID IDDD IW", sepThursday, "4 263 38"},
		{"iso_sunday_is_seven", "ID", sunday, "7"},
		{"gregorian_sunday_is_one", "D", sunday, "1"},
		{"century", "CC", sepThursday, "21"},
		{"century_bc", "CC", bc, "-01"},
		{"year_comma", "Y,YYY", sepThursday, "2,014"},
		{"year_digits", "YYYY YYY YY Y", sepThursday, "2014 014 14 4"},
		{"year_bc", "YYYY AD", bc, "0043 BC"},
		{"era_dotted", "B.C.", sepThursday, "A.D."},
		{"iso_year_boundary", "IYYY-IW", isoBoundary, "2015-01"},
		{"iso_year_digits", "I IY", isoBoundary, "5 15"},
		{"calendar_year_at_boundary", "YYYY-MM-DD", isoBoundary, "2014-12-29"},
		{"roman_month", "RM", sepThursday, "IX  "},
		{"roman_month_fill", "FMRM", sepThursday, "IX"},
		{"roman_month_lower", "rm", maySaturday, "v   "},
		{"julian_day", "J", sepThursday, "2456919"},
		{"zone_abbrev", "TZ tz", sepThursday, "EDT edt"},
		{"zone_hour_minute", "TZH:TZM", sepThursday, "-04:00"},
		{"zone_hour_minute_half", "TZH:TZM", halfOffset, "-04:30"},
		{"offset_whole_hour", "OF", sepThursday, "-04"},
		{"offset_half_hour", "OF", halfOffset, "-04:30"},
		{"offset_fill", "FMOF", sepThursday, "-4"},
		{"offset_east", "OF", cet, "+01"},
		{"quoted_literal", `"Time: "HH24:MI`, sepThursday, "Time: 20:15"},
		{"unknown_letter_copied", "XHH24", sepThursday, "X20"},
		{"lowercase_keyword", "hh24", sepThursday, "20"},
		{"empty_picture", "", sepThursday, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			got, err := NewCache().Format(tc.picture, tc.in)
			r.NoError(err)
			r.Equal(tc.want, got)
		})
	}
}

func TestFormatOrdinals(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// The teens take "th" regardless of their final digit.
	for day, want := range map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 30: "30th",
	} {
		got, err := NewCache().Format("FMDDth", civil.Instant{Year: 2014, Month: 9, Day: day})
		if a.NoError(err) {
			a.Equal(want, got, "day %d", day)
		}
	}
}

func TestFormatPackageLevel(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	got, err := Format("YYYY", sepThursday)
	r.NoError(err)
	r.Equal("2014", got)
}

func TestFormatInterval(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		picture string
		in      civil.Instant
		want    string
	}{
		{"years_pass_through", "YYYY", civil.Instant{Year: 6}, "0006"},
		{"year_zero", "YYYY", civil.Instant{}, "0000"},
		{"negative_time_widens", "HH24:MI", civil.Instant{Hour: -5, Minute: -30}, "-05:-30"},
		{"negative_twelve_hour", "HH12", civil.Instant{Hour: -5}, "-05"},
		{"twelve_hour_multiple", "HH12", civil.Instant{Hour: -12}, "012"},
		{"fields", "MM DD SS", civil.Instant{Month: 2, Day: 3, Second: 4}, "02 03 04"},
		{"quarter", "Q", civil.Instant{Month: 2}, "1"},
		{"quarter_empty_for_no_month", "Q", civil.Instant{Year: 1}, ""},
		{"roman_negative_month", "RM", civil.Instant{Month: -1}, "XII "},
		{"roman_full_years", "RM", civil.Instant{Year: 3}, "XII "},
		{"roman_negative_years", "FMRM", civil.Instant{Year: -2}, "I"},
		{"roman_empty", "RM", civil.Instant{}, ""},
		{"meridiem_allowed", "HH12 AM", civil.Instant{Hour: 13}, "01 PM"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			got, err := NewCache().FormatInterval(tc.picture, tc.in)
			r.NoError(err)
			r.Equal(tc.want, got)
		})
	}
}

func TestFormatIntervalRestricted(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	in := civil.Instant{Year: 1, Month: 2, Day: 3, Hour: 4}
	for _, picture := range []string{
		"TZ", "tz", "TZH", "TZM", "OF",
		"AD", "A.D.", "BC", "b.c.",
		"MONTH", "Month", "month", "MON", "Mon", "mon",
		"DAY", "Day", "day", "DY", "Dy", "dy",
		"D", "ID",
	} {
		_, err := NewCache().FormatInterval(picture, in)
		if a.ErrorIs(err, ErrInterval, "picture %q", picture) {
			a.ErrorContains(err, picture)
		}
	}

	// The remaining numeric fields stay legal for intervals.
	for _, picture := range []string{
		"HH", "HH12", "HH24", "MI", "SS", "MS", "US", "FF3", "SSSS",
		"MM", "DD", "DDD", "IDDD", "WW", "IW", "W", "Q", "CC",
		"YYYY", "Y,YYY", "RM", "J", "AM",
	} {
		_, err := NewCache().FormatInterval(picture, in)
		a.NoError(err, "picture %q", picture)
	}
}

func TestRenderBufferReuse(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	// A cached node sequence renders repeatedly without mutation.
	c := NewCache()
	for i := 0; i < 3; i++ {
		got, err := c.Format("YYYY-MM-DD", sepThursday)
		r.NoError(err)
		r.Equal("2014-09-18", got)
	}
	r.Equal(1, c.Len())
}

func TestFormatIntervalRestrictedMessage(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	_, err := NewCache().FormatInterval("YYYY TZ", civil.Instant{Year: 2})
	r.ErrorIs(err, ErrInterval)
	r.EqualError(err, fmt.Sprintf("%s: %q", ErrInterval, "TZ"))
}
