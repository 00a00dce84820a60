package civil

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocation(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	eastern, err := LoadLocation("US/Eastern")
	r.NoError(err)
	again, err := LoadLocation("US/Eastern")
	r.NoError(err)
	a.Same(eastern, again, "lookups should be memoized")

	_, err = LoadLocation("Mars/Olympus_Mons")
	r.Error(err)
}

func TestOffsetForWall(t *testing.T) {
	t.Parallel()

	eastern, err := LoadLocation("US/Eastern")
	require.NoError(t, err)
	tokyo, err := LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		loc  *time.Location
		in   Instant
		want int
	}{
		{
			name: "edt",
			loc:  eastern,
			in:   Instant{Year: 2014, Month: 9, Day: 18, Hour: 20, Minute: 15},
			want: -4 * 3600,
		},
		{
			name: "est",
			loc:  eastern,
			in:   Instant{Year: 2014, Month: 12, Day: 18, Hour: 20, Minute: 15},
			want: -5 * 3600,
		},
		{
			// 2:30 never happens on 2015-03-08; the pre-gap offset applies,
			// mapping the reading to 3:30 EDT.
			name: "spring_forward_gap",
			loc:  eastern,
			in:   Instant{Year: 2015, Month: 3, Day: 8, Hour: 2, Minute: 30},
			want: -5 * 3600,
		},
		{
			// 1:30 happens twice on 2015-11-01; the post-transition offset
			// wins, picking the second (EST) occurrence.
			name: "fall_back_overlap",
			loc:  eastern,
			in:   Instant{Year: 2015, Month: 11, Day: 1, Hour: 1, Minute: 30},
			want: -5 * 3600,
		},
		{
			name: "transition_instant",
			loc:  eastern,
			in:   Instant{Year: 2015, Month: 3, Day: 8, Hour: 3, Minute: 0},
			want: -4 * 3600,
		},
		{
			name: "no_dst",
			loc:  tokyo,
			in:   Instant{Year: 2014, Month: 9, Day: 18, Hour: 20, Minute: 15},
			want: 9 * 3600,
		},
		{
			name: "fixed",
			loc:  time.FixedZone("X", 7200),
			in:   Instant{Year: 2014, Month: 9, Day: 18, Hour: 20, Minute: 15},
			want: 7200,
		},
		{
			name: "utc",
			loc:  time.UTC,
			in:   Instant{Year: 2014, Month: 9, Day: 18},
			want: 0,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.New(t).Equal(tc.want, OffsetForWall(tc.loc, tc.in))
		})
	}
}

func TestDecompose(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	eastern, err := LoadLocation("US/Eastern")
	r.NoError(err)

	// 2014-09-19 00:15 UTC is 2014-09-18 20:15 EDT.
	micros, err := FromTime(time.Date(2014, 9, 19, 0, 15, 0, 0, time.UTC))
	r.NoError(err)

	in, err := Decompose(micros, eastern)
	r.NoError(err)
	a.Equal(2014, in.Year)
	a.Equal(9, in.Month)
	a.Equal(18, in.Day)
	a.Equal(20, in.Hour)
	a.Equal(15, in.Minute)
	a.Equal(0, in.Second)
	a.Equal(-4*3600, in.Offset)
	a.Equal("EDT", in.Abbrev)
	a.True(in.IsDST)
	a.Equal(4, in.WeekDay, "2014-09-18 was a Thursday")
	a.Equal(261, in.YearDay)

	_, err = Decompose(NoEnd, eastern)
	r.ErrorIs(err, ErrOutOfRange)
}
