package tstz_test

import (
	"context"
	"fmt"
	"log"
	"time"
	_ "time/tzdata"

	"github.com/mweber26/timestampandtz/tstz"
)

func parse(text string) tstz.TzStamp {
	ts, err := tstz.Parse(context.Background(), text)
	if err != nil {
		log.Fatal(err)
	}
	return ts
}

func parseIn(zone, text string) tstz.TzStamp {
	ts, err := tstz.Parse(tstz.ContextWithZone(context.Background(), zone), text)
	if err != nil {
		log.Fatal(err)
	}
	return ts
}

func char(ts tstz.TzStamp, picture string) string {
	out, err := tstz.ToChar(ts, picture)
	if err != nil {
		log.Fatal(err)
	}
	return out
}

func pp(val any) {
	//nolint:forbidigo
	fmt.Println(val)
}

func Example_input() {
	pp(parse("2014-09-18 20:15:00 @ US/Eastern")) // → 2014-09-18 20:15:00 @ US/Eastern
	// Output: 2014-09-18 20:15:00 @ US/Eastern
}

func Example_input_session() {
	pp(parseIn("Asia/Tokyo", "2014-09-18 20:15:00")) // → 2014-09-18 20:15:00 @ Asia/Tokyo
	// Output: 2014-09-18 20:15:00 @ Asia/Tokyo
}

func Example_input_default() {
	pp(parse("2014-09-18 20:15:00")) // → 2014-09-18 20:15:00 @ UTC
	// Output: 2014-09-18 20:15:00 @ UTC
}

func Example_movetz() {
	ts := parse("2014-09-18 20:15:00 @ US/Eastern")
	moved, err := ts.MoveZone("Asia/Tokyo")
	if err != nil {
		log.Fatal(err)
	}
	pp(moved)           // → 2014-09-19 09:15:00 @ Asia/Tokyo
	pp(moved.Equal(ts)) // → true
	// Output: 2014-09-19 09:15:00 @ Asia/Tokyo
	// true
}

func Example_utc_instant() {
	ts := parse("2014-09-18 20:15:00 @ US/Eastern")
	pp(ts.Time().Format(time.RFC3339)) // → 2014-09-19T00:15:00Z
	// Output: 2014-09-19T00:15:00Z
}

func Example_compare() {
	a := parse("2014-09-18 20:15:00 @ US/Eastern")
	b := parse("2014-09-19 09:15:00 @ Asia/Tokyo")
	pp(a.Equal(b)) // → true
	// Output: true
}

func Example_add_day_dst() {
	ts := parse("2014-11-01 20:15:00 @ US/Eastern")
	next, err := ts.Add(tstz.NewInterval(0, 1, 0))
	if err != nil {
		log.Fatal(err)
	}
	pp(next)                        // → 2014-11-02 20:15:00 @ US/Eastern
	pp(next.Time().Sub(ts.Time())) // → 25h0m0s
	// Output: 2014-11-02 20:15:00 @ US/Eastern
	// 25h0m0s
}

func Example_add_month_clamp() {
	ts := parse("2014-01-31 10:00:00 @ UTC")
	next, err := ts.Add(tstz.NewInterval(1, 0, 0))
	if err != nil {
		log.Fatal(err)
	}
	pp(next) // → 2014-02-28 10:00:00 @ UTC
	// Output: 2014-02-28 10:00:00 @ UTC
}

func Example_add_mixed() {
	ts := parse("2014-01-29 08:00:00 @ UTC")
	next, err := ts.Add(tstz.NewInterval(1, 3, 0))
	if err != nil {
		log.Fatal(err)
	}
	pp(next) // → 2014-03-03 08:00:00 @ UTC
	// Output: 2014-03-03 08:00:00 @ UTC
}

func Example_sub() {
	ts := parse("2014-03-03 08:00:00 @ UTC")
	prev, err := ts.Sub(tstz.NewInterval(0, 3, 0))
	if err != nil {
		log.Fatal(err)
	}
	pp(prev) // → 2014-02-28 08:00:00 @ UTC
	// Output: 2014-02-28 08:00:00 @ UTC
}

func Example_difference() {
	a := parse("2014-09-18 20:15:00 @ US/Eastern")
	b := parse("2014-09-25 18:00:00 @ US/Eastern")
	iv, err := b.Diff(a)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d days %v\n", iv.Days, iv.Duration()) // → 6 days 21h45m0s
	// Output: 6 days 21h45m0s
}

func Example_trunc_hour() {
	ts, err := parse("2014-09-18 20:15:30.5 @ US/Eastern").Trunc("hour")
	if err != nil {
		log.Fatal(err)
	}
	pp(ts) // → 2014-09-18 20:00:00 @ US/Eastern
	// Output: 2014-09-18 20:00:00 @ US/Eastern
}

func Example_trunc_quarter() {
	ts, err := parse("2014-09-18 20:15:30 @ US/Eastern").Trunc("quarter")
	if err != nil {
		log.Fatal(err)
	}
	pp(ts) // → 2014-07-01 00:00:00 @ US/Eastern
	// Output: 2014-07-01 00:00:00 @ US/Eastern
}

func Example_round() {
	ts, err := parse("2014-09-18 20:15:30.987654 @ UTC").Round(2)
	if err != nil {
		log.Fatal(err)
	}
	pp(ts) // → 2014-09-18 20:15:30.99 @ UTC
	// Output: 2014-09-18 20:15:30.99 @ UTC
}

func Example_to_char() {
	ts := parse("2014-09-18 20:15:30 @ US/Eastern")
	pp(char(ts, "YYYY-MM-DD HH24:MI:SS TZ")) // → 2014-09-18 20:15:30 EDT
	// Output: 2014-09-18 20:15:30 EDT
}

func Example_to_char_padded() {
	ts := parse("2014-09-18 20:15:30 @ US/Eastern")
	pp(char(ts, "Day, DD"))   // → Thursday , 18
	pp(char(ts, "FMDay, DD")) // → Thursday, 18
	// Output: Thursday , 18
	// Thursday, 18
}

func Example_to_char_ordinal() {
	ts := parse("2014-09-18 20:15:30 @ US/Eastern")
	pp(char(ts, `DDth "of" FMMonth`)) // → 18th of September
	// Output: 18th of September
}

func Example_to_char_roman() {
	ts := parse("2014-09-18 20:15:30 @ US/Eastern")
	pp(char(ts, "RM")) // → IX
	// Output: IX
}

func Example_to_char_julian() {
	ts := parse("2014-09-18 20:15:30 @ US/Eastern")
	pp(char(ts, "J")) // → 2456919
	// Output: 2456919
}

func Example_to_char_iso_week() {
	ts := parse("2014-09-18 20:15:30 @ US/Eastern")
	pp(char(ts, `IYYY "week" IW "day" ID`)) // → 2014 week 38 day 4
	// Output: 2014 week 38 day 4
}

func Example_to_timestamp() {
	ctx := tstz.ContextWithZone(context.Background(), "US/Eastern")
	ts, err := tstz.ToTimestamp(ctx, "2014-09-18 8:15:30 pm", "YYYY-MM-DD HH12:MI:SS am")
	if err != nil {
		log.Fatal(err)
	}
	pp(ts) // → 2014-09-18 20:15:30 @ US/Eastern
	// Output: 2014-09-18 20:15:30 @ US/Eastern
}

func Example_to_timestamp_fraction() {
	ts, err := tstz.ToTimestamp(context.Background(), "18.09.2014 20:15:30.123", "DD.MM.YYYY HH24:MI:SS.MS")
	if err != nil {
		log.Fatal(err)
	}
	pp(ts) // → 2014-09-18 20:15:30.123 @ UTC
	// Output: 2014-09-18 20:15:30.123 @ UTC
}

func Example_infinity() {
	ts := parse("infinity")
	pp(ts)            // → infinity @ UTC
	pp(ts.IsFinite()) // → false
	// Output: infinity @ UTC
	// false
}

func Example_bc() {
	pp(parse("0044-03-15 14:30:00 BC @ UTC")) // → 0044-03-15 14:30:00 BC @ UTC
	// Output: 0044-03-15 14:30:00 BC @ UTC
}
