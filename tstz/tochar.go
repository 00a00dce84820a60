package tstz

import (
	"context"
	"fmt"

	"github.com/mweber26/timestampandtz/tstz/civil"
	"github.com/mweber26/timestampandtz/tstz/format"
	"github.com/mweber26/timestampandtz/tstz/zone"
)

// ToChar renders ts through a to_char format picture, reading the wall
// clock in the value's own zone. An empty picture renders to "" (SQL
// returns NULL there); infinite and zone-unbound values are errors.
func ToChar(ts TzStamp, picture string) (string, error) {
	if picture == "" {
		return "", nil
	}
	if ts.zone == 0 {
		return "", ErrUnboundZone
	}
	if !ts.IsFinite() {
		return "", fmt.Errorf("%w: cannot format infinite timestamp", civil.ErrOutOfRange)
	}

	_, loc, err := ts.boundZone()
	if err != nil {
		return "", err
	}
	in, err := civil.Decompose(ts.micros, loc)
	if err != nil {
		return "", err
	}
	return format.Format(picture, in)
}

// FormatInterval renders an interval through a to_char format picture.
// Calendar- and zone-dependent keywords are rejected, numeric fields keep
// their signs, and nothing pins an hour to the 1..12 range. An empty
// picture renders to "".
func FormatInterval(iv Interval, picture string) (string, error) {
	if picture == "" {
		return "", nil
	}
	return format.FormatInterval(picture, iv.fields())
}

// fields splits the interval into rendering fields the way the backend's
// interval2tm() does: months into year and month, days as is, and the
// microsecond part into clock fields, all signed.
func (iv Interval) fields() civil.Instant {
	in := civil.Instant{
		Year:  int(iv.Months / 12),
		Month: int(iv.Months % 12),
		Day:   int(iv.Days),
	}

	rem := iv.Micros
	in.Hour = int(rem / usecsPerHour)
	rem -= int64(in.Hour) * usecsPerHour
	in.Minute = int(rem / usecsPerMinute)
	rem -= int64(in.Minute) * usecsPerMinute
	in.Second = int(rem / usecsPerSec)
	in.Micros = int(rem - int64(in.Second)*usecsPerSec)
	return in
}

// ToTimestamp parses text against a to_timestamp format picture and binds
// the session zone from ctx. A picture carrying TZH applies the parsed
// offset; otherwise the collected wall fields are resolved against the
// session zone's rules.
func ToTimestamp(ctx context.Context, text, picture string) (TzStamp, error) {
	name := ZoneFromContext(ctx)
	id, ok := zone.IDOf(name)
	if !ok {
		return TzStamp{}, fmt.Errorf("%w: missing time zone ID %q", ErrZone, name)
	}

	in, hasOffset, err := format.ToTimestamp(picture, text)
	if err != nil {
		return TzStamp{}, err
	}
	if !hasOffset {
		loc, err := locationOf(name)
		if err != nil {
			return TzStamp{}, err
		}
		in.Offset = civil.OffsetForWall(loc, in)
	}

	micros, err := civil.Compose(in)
	if err != nil {
		return TzStamp{}, err
	}
	return TzStamp{micros: micros, zone: id}, nil
}
