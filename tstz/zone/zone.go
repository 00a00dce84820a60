// Package zone provides the fixed catalog of IANA time zone names carried by
// timestampandtz values.
//
// Each zone is assigned a small positive integer ID that is embedded in
// persisted values, so IDs are stable forever: the catalog is only ever
// extended at the end of the assigned range, never renumbered, even though
// the lookup array itself stays sorted by uppercase name for binary search.
// ID 0 is reserved to mean "no usable zone" and is never assigned to an
// entry.
//
// The table in catalog.go is generated by cmd/zonegen from the append-only
// ledger zoneids.txt.
package zone

import (
	"fmt"
	"slices"
	"strings"
)

// Entry is one assigned time zone.
type Entry struct {
	Name  string // canonical name as spelled by tzdata
	Upper string // Name folded to upper case, the search key
	ID    int16  // persisted id, stable across catalog revisions
}

// IDOf returns the ID assigned to name. Matching is case-insensitive: name
// is folded to upper case and binary-searched against the catalog. The
// second return is false when name is not in the catalog.
func IDOf(name string) (int16, bool) {
	upper := strings.ToUpper(name)
	i, ok := slices.BinarySearchFunc(catalog[:], upper, func(e Entry, key string) int {
		return strings.Compare(e.Upper, key)
	})
	if !ok {
		return 0, false
	}
	return catalog[i].ID, true
}

// NameOf returns the canonical name for id. The second return is false when
// id is 0 or outside the assigned range.
func NameOf(id int16) (string, bool) {
	if id < 1 || int(id) > len(byID) {
		return "", false
	}
	return catalog[byID[id-1]].Name, true
}

// MustName is like [NameOf] but panics on an unassigned id. Use it only
// where the id has already been validated.
func MustName(id int16) string {
	name, ok := NameOf(id)
	if !ok {
		panic(fmt.Sprintf("zone: no entry for id %v", id))
	}
	return name
}

// Len returns the number of assigned zones.
func Len() int { return len(catalog) }

// All returns a copy of the catalog in upper-name order.
func All() []Entry { return slices.Clone(catalog[:]) }
