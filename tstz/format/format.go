// Package format implements the to_char date/time format-picture
// mini-language: a tokenizer that compiles a picture into a node sequence, a
// bounded cache of compiled pictures, and a renderer driven by the civil
// fields of an instant.
//
// The keyword vocabulary, suffix modifiers, and rendering rules follow the
// PostgreSQL implementation:
// https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/formatting.c
package format

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mweber26/timestampandtz/tstz/civil"
)

var (
	// ErrFormat is returned for pictures that cannot be compiled.
	ErrFormat = errors.New("malformed format picture")

	// ErrInterval is returned when a keyword tied to calendar dates or
	// zones is rendered against an interval value.
	ErrInterval = errors.New("invalid format specification for an interval value")

	// ErrLocalized is returned when a localized name would exceed the
	// static per-keyword output bound. Names are never truncated.
	ErrLocalized = errors.New("localized string format value too long")

	// ErrField is returned when a source string does not satisfy the
	// field a picture keyword asks for during scanning.
	ErrField = errors.New("invalid source field")
)

// NodeType tags one element of a compiled picture.
type NodeType uint8

const (
	// NodeEnd terminates every compiled sequence.
	NodeEnd NodeType = iota + 1
	// NodeAction is a keyword to be rendered or scanned.
	NodeAction
	// NodeChar is a literal character copied through verbatim.
	NodeChar
	// NodeSeparator is a printable non-alphanumeric literal.
	NodeSeparator
	// NodeSpace is a whitespace literal.
	NodeSpace
)

// Suffix is a bit set of the modifiers attached to an action node. FM and TM
// prefix a keyword; TH, th, and SP follow one.
type Suffix uint8

const (
	SuffixFM Suffix = 0x01 // fill mode, suppress padding
	SuffixTH Suffix = 0x02 // uppercase ordinal
	Suffixth Suffix = 0x04 // lowercase ordinal
	SuffixSP Suffix = 0x08 // spell mode, accepted but not implemented
	SuffixTM Suffix = 0x10 // translation mode, localized names
)

func (s Suffix) fm() bool      { return s&SuffixFM != 0 }
func (s Suffix) th() bool      { return s&(SuffixTH|Suffixth) != 0 }
func (s Suffix) thUpper() bool { return s&SuffixTH != 0 }
func (s Suffix) tm() bool      { return s&SuffixTM != 0 }

// DateMode tags the calendar convention a keyword belongs to. A picture used
// for scanning may draw date fields from one convention only.
type DateMode uint8

const (
	DateNone DateMode = iota
	DateGregorian
	DateISOWeek
)

// keywordID identifies the semantics of a keyword. Case variants of numeric
// keywords share one id; name keywords keep one id per output case.
type keywordID uint8

const (
	dchA_D keywordID = iota
	dchA_M
	dchAD
	dchAM
	dchB_C
	dchBC
	dchCC
	dchDAY
	dchDDD
	dchDD
	dchDY
	dchDay
	dchDy
	dchD
	dchFF1
	dchFF2
	dchFF3
	dchFF4
	dchFF5
	dchFF6
	dchFX
	dchHH24
	dchHH12
	dchHH
	dchIDDD
	dchID
	dchIW
	dchIYYY
	dchIYY
	dchIY
	dchI
	dchJ
	dchMI
	dchMM
	dchMONTH
	dchMON
	dchMS
	dchMonth
	dchMon
	dchOF
	dchP_M
	dchPM
	dchQ
	dchRM
	dchSSSS
	dchSS
	dchTZH
	dchTZM
	dchTZ
	dchUS
	dchWW
	dchW
	dchY_YYY
	dchYYYY
	dchYYY
	dchYY
	dchY
	dcha_d
	dcha_m
	dchad
	dcham
	dchb_c
	dchbc
	dchday
	dchdy
	dchmonth
	dchmon
	dchp_m
	dchpm
	dchrm
	dchtz
)

// Keyword describes one picture keyword. IsDigit marks keywords scanned as
// numbers; DateMode constrains which calendar convention the keyword may
// combine with when scanning.
type Keyword struct {
	Name     string
	IsDigit  bool
	DateMode DateMode
	id       keywordID
}

// keywords holds every keyword grouped by first character, longer tokens
// before their prefixes. Matching walks rows in order from the first row
// sharing the lead character, so this ordering is load-bearing.
var keywords = [...]Keyword{
	{"A.D.", false, DateNone, dchA_D},
	{"A.M.", false, DateNone, dchA_M},
	{"AD", false, DateNone, dchAD},
	{"AM", false, DateNone, dchAM},
	{"B.C.", false, DateNone, dchB_C},
	{"BC", false, DateNone, dchBC},
	{"CC", true, DateNone, dchCC},
	{"DAY", false, DateGregorian, dchDAY},
	{"DDD", true, DateGregorian, dchDDD},
	{"DD", true, DateGregorian, dchDD},
	{"DY", false, DateGregorian, dchDY},
	{"Day", false, DateGregorian, dchDay},
	{"Dy", false, DateGregorian, dchDy},
	{"D", true, DateGregorian, dchD},
	{"FF1", false, DateNone, dchFF1},
	{"FF2", false, DateNone, dchFF2},
	{"FF3", false, DateNone, dchFF3},
	{"FF4", false, DateNone, dchFF4},
	{"FF5", false, DateNone, dchFF5},
	{"FF6", false, DateNone, dchFF6},
	{"FX", false, DateNone, dchFX},
	{"HH24", true, DateNone, dchHH24},
	{"HH12", true, DateNone, dchHH12},
	{"HH", true, DateNone, dchHH},
	{"IDDD", true, DateISOWeek, dchIDDD},
	{"ID", true, DateISOWeek, dchID},
	{"IW", true, DateISOWeek, dchIW},
	{"IYYY", true, DateISOWeek, dchIYYY},
	{"IYY", true, DateISOWeek, dchIYY},
	{"IY", true, DateISOWeek, dchIY},
	{"I", true, DateISOWeek, dchI},
	{"J", true, DateNone, dchJ},
	{"MI", true, DateNone, dchMI},
	{"MM", true, DateGregorian, dchMM},
	{"MONTH", false, DateGregorian, dchMONTH},
	{"MON", false, DateGregorian, dchMON},
	{"MS", true, DateNone, dchMS},
	{"Month", false, DateGregorian, dchMonth},
	{"Mon", false, DateGregorian, dchMon},
	{"OF", false, DateNone, dchOF},
	{"P.M.", false, DateNone, dchP_M},
	{"PM", false, DateNone, dchPM},
	{"Q", true, DateNone, dchQ},
	{"RM", false, DateGregorian, dchRM},
	{"SSSSS", true, DateNone, dchSSSS},
	{"SSSS", true, DateNone, dchSSSS},
	{"SS", true, DateNone, dchSS},
	{"TZH", false, DateNone, dchTZH},
	{"TZM", true, DateNone, dchTZM},
	{"TZ", false, DateNone, dchTZ},
	{"US", true, DateNone, dchUS},
	{"WW", true, DateGregorian, dchWW},
	{"W", true, DateGregorian, dchW},
	{"Y,YYY", true, DateGregorian, dchY_YYY},
	{"YYYY", true, DateGregorian, dchYYYY},
	{"YYY", true, DateGregorian, dchYYY},
	{"YY", true, DateGregorian, dchYY},
	{"Y", true, DateGregorian, dchY},
	{"a.d.", false, DateNone, dcha_d},
	{"a.m.", false, DateNone, dcha_m},
	{"ad", false, DateNone, dchad},
	{"am", false, DateNone, dcham},
	{"b.c.", false, DateNone, dchb_c},
	{"bc", false, DateNone, dchbc},
	{"cc", true, DateNone, dchCC},
	{"day", false, DateGregorian, dchday},
	{"ddd", true, DateGregorian, dchDDD},
	{"dd", true, DateGregorian, dchDD},
	{"dy", false, DateGregorian, dchdy},
	{"d", true, DateGregorian, dchD},
	{"ff1", false, DateNone, dchFF1},
	{"ff2", false, DateNone, dchFF2},
	{"ff3", false, DateNone, dchFF3},
	{"ff4", false, DateNone, dchFF4},
	{"ff5", false, DateNone, dchFF5},
	{"ff6", false, DateNone, dchFF6},
	{"fx", false, DateNone, dchFX},
	{"hh24", true, DateNone, dchHH24},
	{"hh12", true, DateNone, dchHH12},
	{"hh", true, DateNone, dchHH},
	{"iddd", true, DateISOWeek, dchIDDD},
	{"id", true, DateISOWeek, dchID},
	{"iw", true, DateISOWeek, dchIW},
	{"iyyy", true, DateISOWeek, dchIYYY},
	{"iyy", true, DateISOWeek, dchIYY},
	{"iy", true, DateISOWeek, dchIY},
	{"i", true, DateISOWeek, dchI},
	{"j", true, DateNone, dchJ},
	{"mi", true, DateNone, dchMI},
	{"mm", true, DateGregorian, dchMM},
	{"month", false, DateGregorian, dchmonth},
	{"mon", false, DateGregorian, dchmon},
	{"ms", true, DateNone, dchMS},
	{"of", false, DateNone, dchOF},
	{"p.m.", false, DateNone, dchp_m},
	{"pm", false, DateNone, dchpm},
	{"q", true, DateNone, dchQ},
	{"rm", false, DateGregorian, dchrm},
	{"sssss", true, DateNone, dchSSSS},
	{"ssss", true, DateNone, dchSSSS},
	{"ss", true, DateNone, dchSS},
	{"tzh", false, DateNone, dchTZH},
	{"tzm", true, DateNone, dchTZM},
	{"tz", false, DateNone, dchtz},
	{"us", true, DateNone, dchUS},
	{"ww", true, DateGregorian, dchWW},
	{"w", true, DateGregorian, dchW},
	{"y,yyy", true, DateGregorian, dchY_YYY},
	{"yyyy", true, DateGregorian, dchYYYY},
	{"yyy", true, DateGregorian, dchYYY},
	{"yy", true, DateGregorian, dchYY},
	{"y", true, DateGregorian, dchY},
}

const (
	suffixPrefix = iota
	suffixPostfix
)

type keySuffix struct {
	name string
	id   Suffix
	typ  int
}

var suffixes = [...]keySuffix{
	{"FM", SuffixFM, suffixPrefix},
	{"fm", SuffixFM, suffixPrefix},
	{"TM", SuffixTM, suffixPrefix},
	{"tm", SuffixTM, suffixPrefix},
	{"TH", SuffixTH, suffixPostfix},
	{"th", Suffixth, suffixPostfix},
	{"SP", SuffixSP, suffixPostfix},
}

// kwIndex maps an ASCII lead character (' ' through '~') to the first row of
// keywords starting with it, or -1.
var kwIndex [95]int16

func init() {
	for i := range kwIndex {
		kwIndex[i] = -1
	}
	for i := len(keywords) - 1; i >= 0; i-- {
		kwIndex[keywords[i].Name[0]-' '] = int16(i)
	}
}

func keywordSearch(s string) *Keyword {
	c := s[0]
	if c < ' ' || c > '~' {
		return nil
	}
	pos := kwIndex[c-' ']
	if pos < 0 {
		return nil
	}
	for i := int(pos); i < len(keywords) && keywords[i].Name[0] == c; i++ {
		if strings.HasPrefix(s, keywords[i].Name) {
			return &keywords[i]
		}
	}
	return nil
}

func suffixSearch(s string, typ int) *keySuffix {
	for i := range suffixes {
		suf := &suffixes[i]
		if suf.typ == typ && strings.HasPrefix(s, suf.name) {
			return suf
		}
	}
	return nil
}

// isSeparatorByte reports whether b is a printable ASCII character other
// than a letter or digit.
func isSeparatorByte(b byte) bool {
	return b > 0x20 && b < 0x7f &&
		!(b >= 'A' && b <= 'Z') &&
		!(b >= 'a' && b <= 'z') &&
		!(b >= '0' && b <= '9')
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// stdSeparators is the only separator set allowed between keywords in
// standard mode.
const stdSeparators = "-./,':; "

// Node is one element of a compiled picture. Action nodes carry the matched
// keyword and its suffix bits; the other kinds carry a literal character.
type Node struct {
	Type      NodeType
	Character rune
	Suffix    Suffix
	Key       *Keyword
}

// Compile tokenizes picture into a node sequence terminated by a NodeEnd. In
// standard mode only the separators "-./,':; " and double-quoted literals
// may appear between keywords, and a quoted literal must be closed;
// violations are reported as [ErrFormat]. Outside standard mode compilation
// cannot fail.
func Compile(picture string, std bool) ([]Node, error) {
	nodes := make([]Node, 0, len(picture)+1)
	for i := 0; i < len(picture); {
		var suffix Suffix
		if s := suffixSearch(picture[i:], suffixPrefix); s != nil {
			suffix |= s.id
			i += len(s.name)
		}
		if i < len(picture) {
			if k := keywordSearch(picture[i:]); k != nil {
				n := Node{Type: NodeAction, Suffix: suffix, Key: k}
				i += len(k.Name)
				if i < len(picture) {
					if s := suffixSearch(picture[i:], suffixPostfix); s != nil {
						n.Suffix |= s.id
						i += len(s.name)
					}
				}
				nodes = append(nodes, n)
				continue
			}
		}
		if i >= len(picture) {
			break
		}
		switch c := picture[i]; {
		case std && c != '"':
			if !strings.ContainsRune(stdSeparators, rune(c)) {
				return nil, fmt.Errorf("%w: invalid datetime format separator %q at offset %d",
					ErrFormat, string(c), i)
			}
			typ := NodeSeparator
			if c == ' ' {
				typ = NodeSpace
			}
			nodes = append(nodes, Node{Type: typ, Character: rune(c)})
			i++
		case c == '"':
			i++
			closed := false
			for i < len(picture) {
				if picture[i] == '"' {
					i++
					closed = true
					break
				}
				// Backslash quotes the next character, if any.
				if picture[i] == '\\' && i+1 < len(picture) {
					i++
				}
				r, size := utf8.DecodeRuneInString(picture[i:])
				nodes = append(nodes, Node{Type: NodeChar, Character: r})
				i += size
			}
			if std && !closed {
				return nil, fmt.Errorf("%w: unterminated quoted string", ErrFormat)
			}
		default:
			// Outside quoted strings a backslash is only special right
			// before a double quote.
			if c == '\\' && i+1 < len(picture) && picture[i+1] == '"' {
				i++
			}
			r, size := utf8.DecodeRuneInString(picture[i:])
			typ := NodeChar
			switch {
			case isSeparatorByte(picture[i]):
				typ = NodeSeparator
			case unicode.IsSpace(r):
				typ = NodeSpace
			}
			nodes = append(nodes, Node{Type: typ, Character: r})
			i += size
		}
	}
	return append(nodes, Node{Type: NodeEnd}), nil
}

// Format renders the civil fields of v according to picture using the
// package-level cache.
func Format(picture string, v civil.Instant) (string, error) {
	return defaultCache.Format(picture, v)
}

// FormatInterval renders interval fields according to picture using the
// package-level cache. Keywords tied to calendar dates or zones are
// rejected.
func FormatInterval(picture string, v civil.Instant) (string, error) {
	return defaultCache.FormatInterval(picture, v)
}

// ToTimestamp scans src according to picture using the package-level cache.
func ToTimestamp(picture, src string) (civil.Instant, bool, error) {
	return defaultCache.ToTimestamp(picture, src)
}
