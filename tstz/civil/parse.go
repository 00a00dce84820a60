package civil

import (
	"fmt"
	"strings"
	"time"
)

// Kind classifies a parsed date/time literal.
type Kind int

const (
	// KindNormal marks a literal carrying ordinary calendar fields.
	KindNormal Kind = iota
	// KindEarly marks the -infinity sentinel.
	KindEarly
	// KindLate marks the infinity sentinel.
	KindLate
	// KindEpoch marks the "epoch" literal, 2000-01-01 00:00:00 UTC.
	KindEpoch
	// KindNow marks the "now" literal, resolved by the caller's clock.
	KindNow
	// KindToday, KindTomorrow, and KindYesterday mark the relative-day
	// literals, resolved against the caller's clock and zone.
	KindToday
	KindTomorrow
	KindYesterday
)

// Layouts tried for ordinary literals, most specific first. time.Parse
// accepts fractional seconds after the seconds field whether or not the
// layout names them.
var dateTimeFormats = []string{
	"2006-01-02 15:04:05Z07:00:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04:05Z07",
	"2006-01-02T15:04:05Z07:00:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDateTime parses a date/time literal into its calendar fields,
// iterating through the supported layouts. The literal's own UTC offset, if
// any, is recorded in Offset but carries no authority: callers re-resolve
// the offset against the governing zone. Special literals (infinity,
// -infinity, epoch, now, today, tomorrow, yesterday) come back as their
// [Kind] with zero fields, and an era suffix (AD/BC, dotted or not) adjusts
// the year, so "0044-03-15 BC" parses to astronomical year -43.
func ParseDateTime(src string) (Instant, Kind, error) {
	text := strings.TrimSpace(src)
	if text == "" {
		return Instant{}, KindNormal, fmt.Errorf("%w for type timestamp: %q", ErrParse, src)
	}

	switch strings.ToLower(text) {
	case "infinity", "+infinity":
		return Instant{}, KindLate, nil
	case "-infinity":
		return Instant{}, KindEarly, nil
	case "epoch":
		return Instant{}, KindEpoch, nil
	case "now":
		return Instant{}, KindNow, nil
	case "today":
		return Instant{}, KindToday, nil
	case "tomorrow":
		return Instant{}, KindTomorrow, nil
	case "yesterday":
		return Instant{}, KindYesterday, nil
	case "current":
		return Instant{}, KindNormal,
			fmt.Errorf("%w: date/time value %q is no longer supported", ErrParse, src)
	}

	bc := false
	lower := strings.ToLower(text)
	for _, suffix := range []string{" bc", " b.c."} {
		if strings.HasSuffix(lower, suffix) {
			bc = true
			text = strings.TrimSpace(text[:len(text)-len(suffix)])
		}
	}
	if !bc {
		for _, suffix := range []string{" ad", " a.d."} {
			if strings.HasSuffix(lower, suffix) {
				text = strings.TrimSpace(text[:len(text)-len(suffix)])
			}
		}
	}

	for _, layout := range dateTimeFormats {
		value, err := time.Parse(layout, text)
		if err != nil {
			continue
		}

		year, month, day := value.Date()
		hour, minute, sec := value.Clock()
		in := Instant{
			Year:   year,
			Month:  int(month),
			Day:    day,
			Hour:   hour,
			Minute: minute,
			Second: sec,
			Micros: (value.Nanosecond() + 500) / 1000,
		}
		_, in.Offset = value.Zone()

		if bc {
			in.Year = -(in.Year - 1)
		}
		return in, KindNormal, nil
	}

	return Instant{}, KindNormal, fmt.Errorf("%w for type timestamp: %q", ErrParse, src)
}
