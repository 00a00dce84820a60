//nolint:godot
package tstz_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mweber26/timestampandtz/tstz"
)

// A timestampandtz value remembers the time zone it was entered in. Input
// that names no zone binds the session time zone, while an "@ zone" suffix
// binds that zone; either way the zone sticks to the value and drives its
// display from then on, no matter the session it is read in.
//
// PostgreSQL timestampandtz input:
//
//	=> SET timezone = 'US/Pacific';
//	SET
//	=> SELECT '2014-09-18 20:15:00'::timestampandtz;
//	          timestampandtz
//	----------------------------------
//	 2014-09-18 20:15:00 @ US/Pacific
//	(1 row)
//
//	=> SELECT '2014-09-18 20:15:00 @ US/Eastern'::timestampandtz;
//	          timestampandtz
//	----------------------------------
//	 2014-09-18 20:15:00 @ US/Eastern
//	(1 row)
//
// The session zone travels in a [context.Context] set up by
// [ContextWithZone]:
func Example_sessionTimeZone() {
	// Bind the session time zone.
	ctx := tstz.ContextWithZone(context.Background(), "US/Pacific")

	// Input without a zone takes the session zone.
	ts, err := tstz.Parse(ctx, "2014-09-18 20:15:00")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v\n", ts)

	// Input with a zone keeps its own.
	ts, err = tstz.Parse(ctx, "2014-09-18 20:15:00 @ US/Eastern")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v\n", ts)
	// Output: 2014-09-18 20:15:00 @ US/Pacific
	// 2014-09-18 20:15:00 @ US/Eastern
}

// Adding an interval works on the wall clock in the value's own zone, so a
// reading keeps its clock time across a daylight saving transition while the
// absolute instant absorbs the shift. US/Eastern fell back on 2014-11-02, so
// the day below lasts twenty-five hours.
//
// PostgreSQL interval addition:
//
//	=> SELECT '2014-11-01 20:15:00 @ US/Eastern'::timestampandtz + interval '1 day';
//	             ?column?
//	----------------------------------
//	 2014-11-02 20:15:00 @ US/Eastern
//	(1 row)
//
// [TzStamp.Add]:
func Example_wallClockArithmetic() {
	ts, err := tstz.Parse(context.Background(), "2014-11-01 20:15:00 @ US/Eastern")
	if err != nil {
		log.Fatal(err)
	}

	// Add one calendar day.
	next, err := ts.Add(tstz.NewInterval(0, 1, 0))
	if err != nil {
		log.Fatal(err)
	}

	// The wall clock is preserved; the elapsed time is not 24 hours.
	fmt.Printf("%v\n", next)
	fmt.Printf("%v\n", next.Time().Sub(ts.Time()))
	// Output: 2014-11-02 20:15:00 @ US/Eastern
	// 25h0m0s
}

func ExampleParse() {
	ts, err := tstz.Parse(context.Background(), "2014-09-18 20:15:00 @ US/Eastern")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v\n", ts)
	// Output: 2014-09-18 20:15:00 @ US/Eastern
}

// [Parse] rejects zone names outside the catalog, since only cataloged
// zones have the stable id the value stores:
func ExampleParse_unknownZone() {
	_, err := tstz.Parse(context.Background(), "2014-09-18 20:15:00 @ Mars/Olympus")
	if errors.Is(err, tstz.ErrZone) {
		fmt.Println("zone is not in the catalog")
	}
	// Output: zone is not in the catalog
}

// [TzStamp.MoveZone] rebinds a value to another zone while preserving the
// absolute instant, so only the wall-clock reading changes. It is the
// movetz() function:
//
//	=> SELECT movetz('2014-09-18 20:15:00 @ US/Eastern', 'US/Pacific');
//	             movetz
//	----------------------------------
//	 2014-09-18 17:15:00 @ US/Pacific
//	(1 row)
func ExampleTzStamp_MoveZone() {
	ts, err := tstz.Parse(context.Background(), "2014-09-18 20:15:00 @ US/Eastern")
	if err != nil {
		log.Fatal(err)
	}

	moved, err := ts.MoveZone("US/Pacific")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%v\n", moved)
	fmt.Printf("%v\n", moved.Equal(ts))
	// Output: 2014-09-18 17:15:00 @ US/Pacific
	// true
}

// [ToChar] renders a value through a template pattern, reading the wall
// clock and zone fields in the value's own zone:
//
//	=> SELECT to_char('2014-09-18 20:15:00 @ US/Eastern'::timestampandtz,
//	                  'FMDay, DD FMMonth YYYY HH12:MI PM TZ');
//	                  to_char
//	-------------------------------------------
//	 Thursday, 18 September 2014 08:15 PM EDT
//	(1 row)
func ExampleToChar() {
	ts, err := tstz.Parse(context.Background(), "2014-09-18 20:15:00 @ US/Eastern")
	if err != nil {
		log.Fatal(err)
	}

	out, err := tstz.ToChar(ts, "FMDay, DD FMMonth YYYY HH12:MI PM TZ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%v\n", out)
	// Output: Thursday, 18 September 2014 08:15 PM EDT
}

// [ToTimestamp] parses input against a template pattern and binds the
// session time zone, like to_timestamp() under a TimeZone setting:
func ExampleToTimestamp() {
	ctx := tstz.ContextWithZone(context.Background(), "US/Eastern")

	ts, err := tstz.ToTimestamp(ctx, "18 Sep 2014 08:15 PM", "DD Mon YYYY HH12:MI PM")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%v\n", ts)
	// Output: 2014-09-18 20:15:00 @ US/Eastern
}

// [TzStamp.Trunc] zeroes everything below the named field on the wall clock
// in the value's own zone, like date_trunc(). Weeks are ISO weeks and start
// on Monday:
func ExampleTzStamp_Trunc() {
	ts, err := tstz.Parse(context.Background(), "2014-09-18 20:15:00 @ US/Eastern")
	if err != nil {
		log.Fatal(err)
	}

	week, err := ts.Trunc("week")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%v\n", week)
	// Output: 2014-09-15 00:00:00 @ US/Eastern
}

// [WithPrecision] limits the fractional seconds a construction entry point
// keeps, rounding half away from zero, like a timestampandtz(2) column:
func ExampleWithPrecision() {
	ts, err := tstz.Parse(
		context.Background(),
		"2014-09-18 20:15:30.123456 @ US/Eastern",
		tstz.WithPrecision(2),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%v\n", ts)
	// Output: 2014-09-18 20:15:30.12 @ US/Eastern
}
