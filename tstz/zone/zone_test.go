package zone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogInvariants(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(594, Len())
	seen := make(map[int16]bool, Len())
	for i, e := range catalog {
		a.Equal(strings.ToUpper(e.Name), e.Upper, "upper mismatch for %q", e.Name)
		a.False(seen[e.ID], "duplicate id %d", e.ID)
		a.Positive(e.ID, "id must be positive for %q", e.Name)
		seen[e.ID] = true
		if i > 0 {
			a.Less(catalog[i-1].Upper, e.Upper, "catalog out of order at %d", i)
		}
	}
}

func TestBijection(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	for _, e := range All() {
		id, ok := IDOf(e.Name)
		r.True(ok, "IDOf(%q)", e.Name)
		r.Equal(e.ID, id)

		name, ok := NameOf(id)
		r.True(ok, "NameOf(%v)", id)
		r.Equal(e.Name, name)

		// Lookup is case-insensitive.
		id, ok = IDOf(strings.ToLower(e.Name))
		r.True(ok, "IDOf(%q)", strings.ToLower(e.Name))
		r.Equal(e.ID, id)
	}
}

func TestIDOf(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		zone string
		id   int16
		ok   bool
	}{
		{"us_eastern", "US/Eastern", 567, true},
		{"utc", "UTC", 575, true},
		{"new_york", "America/New_York", 168, true},
		{"tokyo", "Asia/Tokyo", 312, true},
		{"london", "Europe/London", 440, true},
		{"gmt", "GMT", 477, true},
		{"us_pacific", "US/Pacific", 572, true},
		{"mixed_case", "us/EASTern", 567, true},
		{"unknown", "Mars/Olympus_Mons", 0, false},
		{"empty", "", 0, false},
		{"partial", "US/", 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			id, ok := IDOf(tc.zone)
			a.Equal(tc.ok, ok)
			a.Equal(tc.id, id)
		})
	}
}

func TestNameOf(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	name, ok := NameOf(567)
	a.True(ok)
	a.Equal("US/Eastern", name)

	for _, id := range []int16{0, -1, int16(Len() + 1), 32000} {
		name, ok := NameOf(id)
		a.False(ok, "NameOf(%v)", id)
		a.Empty(name)
	}

	a.Equal("UTC", MustName(575))
	a.Panics(func() { MustName(0) })
	a.Panics(func() { MustName(-4) })
}
