// Package tstz implements a timestamp that remembers which time zone it was
// entered in: an absolute UTC instant paired with the catalog id of an IANA
// zone. Display, formatting, truncation, and calendar arithmetic all read
// the value's wall clock in its own zone, so a value written in US/Eastern
// keeps rendering and truncating in US/Eastern no matter where it is read.
//
// The stored instant follows the PostgreSQL timestamp convention:
// microseconds since 2000-01-01 00:00:00 UTC, with the two int64 extremes
// reserved for the -infinity and infinity sentinels. The text form is
// "<date/time> @ <zone name>"; the binary form is ten bytes, the instant and
// the zone id both big-endian.
package tstz

import (
	"context"
	"database/sql/driver"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mweber26/timestampandtz/tstz/civil"
	"github.com/mweber26/timestampandtz/tstz/zone"
)

var (
	// ErrZone is returned when a zone name has no catalog id, or an id no
	// catalog name.
	ErrZone = errors.New("unknown time zone")

	// ErrUnboundZone is returned by operations that need the value's own
	// zone when the zone id is 0, the unbound marker.
	ErrUnboundZone = errors.New("time zone not bound")

	// ErrPrecision is returned for fractional-second precisions outside
	// 0 through MaxPrecision.
	ErrPrecision = errors.New("timestamp precision")

	// ErrScan is returned by Scan for source types it cannot convert.
	ErrScan = errors.New("cannot scan")

	// ErrUnit is returned by Trunc for unit names it does not accept. The
	// full message reads "timestamp with time zone units ... not
	// recognized" or "... not supported".
	ErrUnit = errors.New("timestamp with time zone units")
)

// TzStamp is a timestamp and time zone: an absolute instant, in microseconds
// since 2000-01-01 00:00:00 UTC, plus the catalog id of the zone it is
// anchored to. The zero value is the epoch with no zone bound; most
// operations other than comparisons and the codecs reject unbound values.
//
// TzStamp is comparable and usable as a map key, but == also compares the
// zone id, while Equal compares instants only. Keys meant to coincide
// across zones should use Time().
type TzStamp struct {
	micros int64
	zone   int16
}

var utcID, _ = zone.IDOf("UTC")

type zoneCtxKey struct{}

// ContextWithZone returns a copy of ctx carrying name as the session time
// zone. The session zone plays the role of the SQL TimeZone setting: it is
// what construction entry points bind when the input names no zone of its
// own.
func ContextWithZone(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, zoneCtxKey{}, name)
}

// ZoneFromContext returns the session time zone carried by ctx, or "UTC"
// when none has been set.
func ZoneFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(zoneCtxKey{}).(string); ok {
		return name
	}
	return "UTC"
}

// MaxPrecision is the finest fractional-second precision: six digits,
// microseconds.
const MaxPrecision = 6

type config struct {
	precision    int
	hasPrecision bool
}

// Option adjusts how a construction entry point builds its value.
type Option func(*config)

// WithPrecision rounds the constructed value to n fractional-second digits,
// the typmod of a timestampandtz(n) column. Negative n is an error; n above
// MaxPrecision is clamped with a warning.
func WithPrecision(n int) Option {
	return func(c *config) { c.precision, c.hasPrecision = n, true }
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (cfg config) apply(micros int64) (int64, error) {
	if !cfg.hasPrecision {
		return micros, nil
	}
	return roundMicros(micros, cfg.precision)
}

var (
	precisionScale = [MaxPrecision + 1]int64{
		1000000, 100000, 10000, 1000, 100, 10, 1,
	}
	precisionHalf = [MaxPrecision + 1]int64{
		500000, 50000, 5000, 500, 50, 5, 0,
	}
)

// roundMicros rescales the microsecond count to the given precision,
// rounding half away from zero. Ports AdjustTimestampForTypmod():
// https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/timestamp.c
func roundMicros(micros int64, precision int) (int64, error) {
	if precision < 0 {
		return 0, fmt.Errorf("%w: timestamp(%d) must be between 0 and %d",
			ErrPrecision, precision, MaxPrecision)
	}
	if precision >= MaxPrecision {
		if precision > MaxPrecision {
			slog.Warn("timestamp precision reduced to maximum allowed",
				"precision", precision, "maximum", MaxPrecision)
		}
		return micros, nil
	}
	if !civil.IsFinite(micros) {
		return micros, nil
	}

	scale, half := precisionScale[precision], precisionHalf[precision]
	if micros >= 0 {
		return (micros + half) / scale * scale, nil
	}
	return -((-micros + half) / scale * scale), nil
}

// Parse converts the text form "<date/time>[ @ <zone>]" into a TzStamp.
// Input without an @ clause binds the session zone from ctx. A numeric UTC
// offset inside the literal carries no authority: the wall-clock fields are
// re-resolved against the governing zone's rules. The special literals
// infinity, -infinity, epoch, now, today, tomorrow, and yesterday are
// accepted case-insensitively.
func Parse(ctx context.Context, text string, opts ...Option) (TzStamp, error) {
	literal, zoneName, found := strings.Cut(text, "@")
	if found {
		literal = strings.TrimSpace(literal)
		zoneName = strings.TrimSpace(zoneName)
	} else {
		zoneName = ZoneFromContext(ctx)
	}
	return parseLiteral(literal, zoneName, newConfig(opts))
}

func parseLiteral(literal, zoneName string, cfg config) (TzStamp, error) {
	id, ok := zone.IDOf(zoneName)
	if !ok {
		return TzStamp{}, fmt.Errorf("%w: missing time zone ID %q while parsing timestampandtz %q",
			ErrZone, zoneName, literal)
	}

	in, kind, err := civil.ParseDateTime(literal)
	if err != nil {
		return TzStamp{}, err
	}

	var micros int64
	switch kind {
	case civil.KindLate:
		micros = civil.NoEnd

	case civil.KindEarly:
		micros = civil.NoBegin

	case civil.KindEpoch:
		micros = 0

	case civil.KindNow:
		if micros, err = civil.FromTime(time.Now()); err != nil {
			return TzStamp{}, err
		}

	case civil.KindToday, civil.KindTomorrow, civil.KindYesterday:
		loc, err := locationOf(zoneName)
		if err != nil {
			return TzStamp{}, err
		}
		now, err := civil.FromTime(time.Now())
		if err != nil {
			return TzStamp{}, err
		}
		if in, err = civil.Decompose(now, loc); err != nil {
			return TzStamp{}, err
		}
		in.Hour, in.Minute, in.Second, in.Micros = 0, 0, 0, 0
		switch kind {
		case civil.KindTomorrow:
			in.Year, in.Month, in.Day = civil.JulianDate(civil.JulianDay(in.Year, in.Month, in.Day) + 1)
		case civil.KindYesterday:
			in.Year, in.Month, in.Day = civil.JulianDate(civil.JulianDay(in.Year, in.Month, in.Day) - 1)
		}
		in.Offset = civil.OffsetForWall(loc, in)
		if micros, err = civil.Compose(in); err != nil {
			return TzStamp{}, err
		}

	default:
		loc, err := locationOf(zoneName)
		if err != nil {
			return TzStamp{}, err
		}
		in.Offset = civil.OffsetForWall(loc, in)
		if micros, err = civil.Compose(in); err != nil {
			return TzStamp{}, fmt.Errorf("%w: %q", err, literal)
		}
	}

	if micros, err = cfg.apply(micros); err != nil {
		return TzStamp{}, err
	}
	return TzStamp{micros: micros, zone: id}, nil
}

// FromInstant binds the absolute instant of t to the session zone from ctx:
// the timestamptz side of construction. Sub-microsecond precision rounds
// half up.
func FromInstant(ctx context.Context, t time.Time, opts ...Option) (TzStamp, error) {
	name := ZoneFromContext(ctx)
	id, ok := zone.IDOf(name)
	if !ok {
		return TzStamp{}, fmt.Errorf("%w: missing time zone ID %q", ErrZone, name)
	}

	micros, err := civil.FromTime(t)
	if err != nil {
		return TzStamp{}, err
	}
	if micros, err = newConfig(opts).apply(micros); err != nil {
		return TzStamp{}, err
	}
	return TzStamp{micros: micros, zone: id}, nil
}

// FromWall reinterprets t's wall-clock fields in the session zone from ctx,
// ignoring t's own location: the naive-timestamp side of construction.
func FromWall(ctx context.Context, t time.Time, opts ...Option) (TzStamp, error) {
	name := ZoneFromContext(ctx)
	id, ok := zone.IDOf(name)
	if !ok {
		return TzStamp{}, fmt.Errorf("%w: missing time zone ID %q", ErrZone, name)
	}
	loc, err := locationOf(name)
	if err != nil {
		return TzStamp{}, err
	}

	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	in := civil.Instant{
		Year: year, Month: int(month), Day: day,
		Hour: hour, Minute: minute, Second: sec,
		Micros: (t.Nanosecond() + 500) / 1000,
	}
	in.Offset = civil.OffsetForWall(loc, in)

	micros, err := civil.Compose(in)
	if err != nil {
		return TzStamp{}, err
	}
	if micros, err = newConfig(opts).apply(micros); err != nil {
		return TzStamp{}, err
	}
	return TzStamp{micros: micros, zone: id}, nil
}

// Compose binds wall's calendar fields as a reading of zoneName's wall
// clock, resolving the UTC offset from the zone's rules; wall's own Offset
// field is ignored.
func Compose(wall civil.Instant, zoneName string) (TzStamp, error) {
	id, ok := zone.IDOf(zoneName)
	if !ok {
		return TzStamp{}, fmt.Errorf("%w: missing time zone ID %q", ErrZone, zoneName)
	}
	loc, err := locationOf(zoneName)
	if err != nil {
		return TzStamp{}, err
	}

	wall.Offset = civil.OffsetForWall(loc, wall)
	micros, err := civil.Compose(wall)
	if err != nil {
		return TzStamp{}, err
	}
	return TzStamp{micros: micros, zone: id}, nil
}

// Infinite returns an infinity sentinel bound to UTC: the far future for
// sign >= 0, the far past otherwise. Sentinels compare after (or before)
// every finite value and pass through arithmetic unchanged.
func Infinite(sign int) TzStamp {
	if sign >= 0 {
		return TzStamp{micros: civil.NoEnd, zone: utcID}
	}
	return TzStamp{micros: civil.NoBegin, zone: utcID}
}

// locationOf resolves a catalog zone name to its rule set.
func locationOf(name string) (*time.Location, error) {
	loc, err := civil.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: no rules for %q", ErrZone, name)
	}
	return loc, nil
}

// boundZone resolves the value's own zone name and rules.
func (ts TzStamp) boundZone() (string, *time.Location, error) {
	if ts.zone == 0 {
		return "", nil, ErrUnboundZone
	}
	name, ok := zone.NameOf(ts.zone)
	if !ok {
		return "", nil, fmt.Errorf("%w: no catalog entry for zone id %d", ErrZone, ts.zone)
	}
	loc, err := locationOf(name)
	if err != nil {
		return "", nil, err
	}
	return name, loc, nil
}

// location returns the value's zone rules, or UTC when the zone cannot be
// resolved. For display paths that cannot report an error.
func (ts TzStamp) location() *time.Location {
	if name, ok := zone.NameOf(ts.zone); ok {
		if loc, err := civil.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.UTC
}

// String renders the text form: the wall clock read in the bound zone, then
// " @ " and the zone name, as in "2014-09-18 20:15:30.5 @ US/Eastern".
// Fractional seconds print only when nonzero, trimmed of trailing zeros;
// years at or before 1 BC carry a " BC" suffix; the sentinels render as
// "infinity" and "-infinity". A value whose zone id has no catalog entry
// renders without the zone clause.
func (ts TzStamp) String() string {
	text := ts.wallText()
	if name, ok := zone.NameOf(ts.zone); ok {
		return text + " @ " + name
	}
	return text
}

func (ts TzStamp) wallText() string {
	switch ts.micros {
	case civil.NoEnd:
		return "infinity"
	case civil.NoBegin:
		return "-infinity"
	}

	in, err := civil.Decompose(ts.micros, ts.location())
	if err != nil {
		return err.Error()
	}

	year := in.Year
	bc := year <= 0
	if bc {
		year = -(year - 1)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%04d-%02d-%02d %02d:%02d:%02d",
		year, in.Month, in.Day, in.Hour, in.Minute, in.Second)
	if in.Micros != 0 {
		sb.WriteString(strings.TrimRight(fmt.Sprintf(".%06d", in.Micros), "0"))
	}
	if bc {
		sb.WriteString(" BC")
	}
	return sb.String()
}

// Time returns the absolute instant as a time.Time in UTC. Only meaningful
// for finite values.
func (ts TzStamp) Time() time.Time {
	return civil.ToTime(ts.micros)
}

// Local returns the instant located in the value's own zone, so the
// time.Time's wall-clock fields read as the value displays. Values with no
// resolvable zone come back in UTC.
func (ts TzStamp) Local() time.Time {
	return civil.ToTime(ts.micros).In(ts.location())
}

// Zone returns the catalog id of the bound zone, 0 when unbound.
func (ts TzStamp) Zone() int16 { return ts.zone }

// ZoneName returns the catalog name of the bound zone, "" when unbound.
func (ts TzStamp) ZoneName() string {
	name, _ := zone.NameOf(ts.zone)
	return name
}

// IsFinite reports whether the value is a real instant rather than one of
// the infinity sentinels.
func (ts TzStamp) IsFinite() bool { return civil.IsFinite(ts.micros) }

// MoveZone rebinds the value to another zone, keeping the absolute instant;
// only the wall-clock reading changes. This is the movetz() operation.
func (ts TzStamp) MoveZone(name string) (TzStamp, error) {
	id, ok := zone.IDOf(name)
	if !ok {
		return TzStamp{}, fmt.Errorf("%w: missing time zone ID %q", ErrZone, name)
	}
	return TzStamp{micros: ts.micros, zone: id}, nil
}

// Round rounds the instant to precision fractional-second digits, half away
// from zero. Precision above MaxPrecision is clamped with a warning;
// negative precision is an error. Infinite values round to themselves.
func (ts TzStamp) Round(precision int) (TzStamp, error) {
	micros, err := roundMicros(ts.micros, precision)
	if err != nil {
		return TzStamp{}, err
	}
	return TzStamp{micros: micros, zone: ts.zone}, nil
}

// Compare orders by instant alone, returning -1, 0, or +1. The zone id
// never participates: the same moment entered in two zones compares equal.
func (ts TzStamp) Compare(other TzStamp) int {
	switch {
	case ts.micros < other.micros:
		return -1
	case ts.micros > other.micros:
		return 1
	}
	return 0
}

// Equal reports whether both values denote the same instant, regardless of
// their zones.
func (ts TzStamp) Equal(other TzStamp) bool { return ts.micros == other.micros }

// Before reports whether ts is strictly earlier than other.
func (ts TzStamp) Before(other TzStamp) bool { return ts.micros < other.micros }

// After reports whether ts is strictly later than other.
func (ts TzStamp) After(other TzStamp) bool { return ts.micros > other.micros }

// CompareTime orders the value against a plain time.Time at microsecond
// granularity. The sentinels order after (or before) every time.Time.
func (ts TzStamp) CompareTime(t time.Time) int {
	switch ts.micros {
	case civil.NoEnd:
		return 1
	case civil.NoBegin:
		return -1
	}
	return ts.Time().Compare(t)
}

// wireSize is the binary format: eight bytes of instant then two bytes of
// zone id, big-endian.
const wireSize = 10

// MarshalBinary encodes the value in the ten-byte wire format.
func (ts TzStamp) MarshalBinary() ([]byte, error) {
	buf := make([]byte, wireSize)
	binary.BigEndian.PutUint64(buf[:8], uint64(ts.micros))
	binary.BigEndian.PutUint16(buf[8:], uint16(ts.zone))
	return buf, nil
}

// UnmarshalBinary decodes the ten-byte wire format. The instant must be a
// sentinel or in range; the zone id is taken as is, since ids are
// append-only and data written under a newer catalog still decodes.
func (ts *TzStamp) UnmarshalBinary(data []byte) error {
	if len(data) != wireSize {
		return fmt.Errorf("tstz: binary data is %d bytes, want %d", len(data), wireSize)
	}
	micros := int64(binary.BigEndian.Uint64(data[:8]))
	if civil.IsFinite(micros) && !civil.InRange(micros) {
		return fmt.Errorf("%w in binary data", civil.ErrOutOfRange)
	}
	ts.micros = micros
	ts.zone = int16(binary.BigEndian.Uint16(data[8:]))
	return nil
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (ts TzStamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. With no session
// context available, input without a zone clause binds UTC.
func (ts *TzStamp) UnmarshalText(data []byte) error {
	parsed, err := Parse(context.Background(), string(data))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// MarshalJSON encodes the text form as a JSON string.
func (ts TzStamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON accepts what MarshalJSON emits. JSON null leaves the value
// unchanged, by package json convention.
func (ts *TzStamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return ts.UnmarshalText([]byte(s))
}

// Scan implements sql.Scanner. It accepts the text form as a string or
// []byte, and a bare time.Time as an instant bound to UTC.
func (ts *TzStamp) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return ts.UnmarshalText([]byte(v))
	case []byte:
		return ts.UnmarshalText(v)
	case time.Time:
		micros, err := civil.FromTime(v)
		if err != nil {
			return err
		}
		*ts = TzStamp{micros: micros, zone: utcID}
		return nil
	case nil:
		return fmt.Errorf("%w: NULL into TzStamp", ErrScan)
	}
	return fmt.Errorf("%w: %T into TzStamp", ErrScan, src)
}

// Value implements driver.Valuer with the text form.
func (ts TzStamp) Value() (driver.Value, error) {
	return ts.String(), nil
}
