package civil

import (
	"fmt"
	"sync"
	"time"
)

var (
	locMu  sync.RWMutex
	locTab = map[string]*time.Location{}
)

// LoadLocation returns the rule set for an IANA zone name, memoizing
// successful lookups. time.LoadLocation re-reads tzdata on every call, so a
// process-wide table keeps repeated decompositions cheap. Locations are
// immutable and safe to share.
func LoadLocation(name string) (*time.Location, error) {
	locMu.RLock()
	loc, ok := locTab[name]
	locMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone rules: %w", err)
	}

	locMu.Lock()
	locTab[name] = loc
	locMu.Unlock()
	return loc, nil
}

// OffsetForWall returns the UTC offset, in seconds east, that applies when
// in's calendar fields are read as wall-clock time in loc. The gap and
// overlap cases around a zone transition resolve deterministically, the way
// the backend's DetermineTimeZoneOffset() does: a reading inside a fall-back
// overlap takes the offset in force after the transition (the later of the
// two possible instants), and a reading inside a spring-forward gap takes
// the offset in force before it, which maps the reading past the gap.
func OffsetForWall(loc *time.Location, in Instant) int {
	// The wall fields read as if they were UTC. Transitions are at least
	// a couple of days apart and offsets below 24 hours, so the regime 24
	// hours earlier and the first transition after it bracket every
	// interpretation of the reading.
	wall := time.Date(in.Year, time.Month(in.Month), in.Day,
		in.Hour, in.Minute, in.Second, 0, time.UTC)

	prev := wall.Add(-24 * time.Hour).In(loc)
	_, beforeOff := prev.Zone()
	_, bound := prev.ZoneBounds()
	if bound.IsZero() {
		// No transition ever again; the zone is fixed from here on.
		return beforeOff
	}
	_, afterOff := bound.In(loc).Zone()

	wallSec := wall.Unix()
	boundSec := bound.Unix()
	beforeSec := wallSec - int64(beforeOff)
	afterSec := wallSec - int64(afterOff)

	// Both interpretations on the same side of the transition: the reading
	// is unambiguous. The transition instant itself belongs to the new
	// regime.
	if beforeSec < boundSec && afterSec < boundSec {
		return beforeOff
	}
	if beforeSec > boundSec && afterSec >= boundSec {
		return afterOff
	}

	if beforeSec > afterSec {
		// spring forward; the reading names a skipped wall time
		return beforeOff
	}
	// fall back; the reading names a repeated wall time
	return afterOff
}
