package format

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mweber26/timestampandtz/tstz/civil"
)

// fields collects everything the scanner pulled out of a source string
// before assembly. Zero means unset for every field except bc, pm, and the
// offset parts, which ride their own presence flags.
type fields struct {
	mode  DateMode
	hh    int
	pm    int
	clock bool // a 12-hour keyword appeared
	mi    int
	ss    int
	sssss int
	d     int // 1 through 7, Sunday first
	dd    int
	ddd   int
	mm    int
	ms    int
	year  int
	bc    bool
	ww    int
	w     int
	cc    int
	j     int
	us    int
	yysz  int // digits in the matched year field
	usSet bool
	msSet bool

	hasOffset bool
	offSign   int
	offHour   int
	offMin    int
}

// setMode enforces that a picture draws its date fields from a single
// calendar convention.
func (f *fields) setMode(m DateMode) error {
	if m != DateNone && f.mode != DateNone && f.mode != m {
		return fmt.Errorf("%w: invalid combination of date conventions", ErrField)
	}
	if m != DateNone {
		f.mode = m
	}
	return nil
}

// setInt stores value, rejecting a second different value for the same
// field.
func setInt(dst *int, value int, k *Keyword) error {
	if *dst != 0 && *dst != value {
		return fmt.Errorf("%w: conflicting values for %q field in formatting string",
			ErrField, k.Name)
	}
	*dst = value
	return nil
}

// scanner walks a source string under the control of a compiled picture.
type scanner struct {
	src string
	fx  bool
}

// skipSpace consumes leading whitespace outside fixed-width mode.
func (sc *scanner) skipSpace() int {
	skipped := 0
	for sc.src != "" {
		r, size := utf8.DecodeRuneInString(sc.src)
		if !unicode.IsSpace(r) {
			break
		}
		sc.src = sc.src[size:]
		skipped++
	}
	return skipped
}

// skipOrdinal consumes the two input characters covered by a TH or th
// suffix.
func (sc *scanner) skipOrdinal(suf Suffix) {
	if !suf.th() {
		return
	}
	for i := 0; i < 2 && sc.src != ""; i++ {
		_, size := utf8.DecodeRuneInString(sc.src)
		sc.src = sc.src[size:]
	}
}

// parseInt reads an integer for an action node. In fill mode, or when the
// following node cannot start with a digit, it reads greedily with an
// optional sign; otherwise it reads exactly maxLen digits.
func (sc *scanner) parseInt(maxLen int, n *Node, next *Node) (int, error) {
	sc.skipSpace()

	greedy := n.Suffix.fm() || nextNonDigit(n, next)
	s := sc.src
	used := 0
	val := 0
	neg := false
	if greedy && s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
		used++
	}
	limit := len(s)
	if !greedy {
		if len(s) < maxLen {
			return 0, fmt.Errorf("%w: source string too short for %q formatting field",
				ErrField, n.Key.Name)
		}
		limit = maxLen
	}
	digits := 0
	for digits < limit && s[digits] >= '0' && s[digits] <= '9' {
		val = val*10 + int(s[digits]-'0')
		digits++
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: invalid value %q for %q, value must be an integer",
			ErrField, firstChars(sc.src, maxLen), n.Key.Name)
	}
	if !greedy && digits < maxLen {
		return 0, fmt.Errorf("%w: invalid value %q for %q, field requires %d characters but only %d could be parsed",
			ErrField, firstChars(sc.src, maxLen), n.Key.Name, maxLen, digits)
	}
	if neg {
		val = -val
	}
	sc.src = sc.src[used+digits:]
	return val, nil
}

// nextNonDigit reports whether the node after n cannot begin with a digit,
// freeing the current numeric field to take however many digits are there.
func nextNonDigit(n, next *Node) bool {
	if n.Suffix.th() {
		return true
	}
	if next == nil || next.Type == NodeEnd {
		return true
	}
	if next.Type == NodeAction {
		return !next.Key.IsDigit
	}
	return next.Character != 0 && !unicode.IsDigit(next.Character)
}

// seqSearch matches one of names case-insensitively at the head of the
// source and consumes it.
func (sc *scanner) seqSearch(names []string, n *Node) (int, error) {
	for i, name := range names {
		if len(sc.src) >= len(name) && strings.EqualFold(sc.src[:len(name)], name) {
			sc.src = sc.src[len(name):]
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: invalid value %q for %q, the given value did not match any of the allowed values for this field",
		ErrField, firstChars(sc.src, maxItemSize), n.Key.Name)
}

func firstChars(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

var (
	ampmShort = []string{"am", "pm", "AM", "PM"}
	ampmLong  = []string{"a.m.", "p.m.", "A.M.", "P.M."}
	adbcShort = []string{"ad", "bc", "AD", "BC"}
	adbcLong  = []string{"a.d.", "b.c.", "A.D.", "B.C."}
)

// ToTimestamp scans src according to picture and assembles the civil fields
// it denotes. The reported offset flag is true when the picture bound an
// explicit numeric zone offset (TZH/TZM), in which case the Offset field
// holds it; otherwise binding an absolute instant is the caller's business.
func (c *Cache) ToTimestamp(picture, src string) (civil.Instant, bool, error) {
	nodes, err := c.Fetch(picture, false)
	if err != nil {
		return civil.Instant{}, false, err
	}
	var f fields
	if err := scan(nodes, src, &f); err != nil {
		return civil.Instant{}, false, err
	}
	v, err := assemble(&f)
	return v, f.hasOffset, err
}

// scan drives the node walk over src, filling f.
func scan(nodes []Node, src string, f *fields) error {
	sc := scanner{src: src}

	// In the loose mode one picture space or separator swallows at most one
	// input character, and input characters already consumed by a preceding
	// whitespace run must not be consumed again by literal nodes.
	extraSkip := 0
	for i := range nodes {
		n := &nodes[i]
		if n.Type == NodeEnd || sc.src == "" {
			break
		}
		var next *Node
		if i+1 < len(nodes) {
			next = &nodes[i+1]
		}

		if !sc.fx && (n.Type == NodeAction || i == 0) &&
			!(n.Type == NodeAction && n.Key.id == dchFX) {
			extraSkip += sc.skipSpace()
		}

		switch n.Type {
		case NodeSpace, NodeSeparator:
			if sc.fx {
				sc.consumeOne()
				continue
			}
			extraSkip--
			if sc.src != "" && (isSpaceByte(sc.src[0]) || isSeparatorByte(sc.src[0])) {
				sc.src = sc.src[1:]
				extraSkip++
			}
			continue
		case NodeChar:
			if sc.fx || extraSkip <= 0 {
				sc.consumeOne()
			} else {
				extraSkip--
			}
			continue
		case NodeAction:
			if err := sc.action(n, next, f); err != nil {
				return err
			}
			// Whitespace after a field is free; it resets whatever surplus
			// the nodes before the field left behind.
			if !sc.fx {
				extraSkip = sc.skipSpace()
			}
		}
	}
	return nil
}

func (sc *scanner) consumeOne() {
	if sc.src != "" {
		_, size := utf8.DecodeRuneInString(sc.src)
		sc.src = sc.src[size:]
	}
}

func (sc *scanner) action(n, next *Node, f *fields) error {
	if err := f.setMode(n.Key.DateMode); err != nil {
		return err
	}

	switch n.Key.id {
	case dchFX:
		sc.fx = true
	case dchA_M, dchP_M, dcha_m, dchp_m:
		v, err := sc.seqSearch(ampmLong, n)
		if err != nil {
			return err
		}
		f.pm = v % 2
		f.clock = true
	case dchAM, dchPM, dcham, dchpm:
		v, err := sc.seqSearch(ampmShort, n)
		if err != nil {
			return err
		}
		f.pm = v % 2
		f.clock = true

	case dchHH, dchHH12:
		v, err := sc.parseInt(2, n, next)
		if err != nil {
			return err
		}
		if err := setInt(&f.hh, v, n.Key); err != nil {
			return err
		}
		f.clock = true
		sc.skipOrdinal(n.Suffix)
	case dchHH24:
		return sc.intField(&f.hh, 2, n, next)
	case dchMI:
		return sc.intField(&f.mi, 2, n, next)
	case dchSS:
		return sc.intField(&f.ss, 2, n, next)
	case dchSSSS:
		// Width tracks the matched spelling, SSSS or SSSSS.
		return sc.intField(&f.sssss, len(n.Key.Name), n, next)

	case dchMS:
		v, digits, err := sc.parseFraction(3, n)
		if err != nil {
			return err
		}
		// Scale the read digits to milliseconds: "25" means 250 ms.
		for ; digits < 3; digits++ {
			v *= 10
		}
		f.ms, f.msSet = v, true
		sc.skipOrdinal(n.Suffix)
	case dchUS:
		v, digits, err := sc.parseFraction(6, n)
		if err != nil {
			return err
		}
		for ; digits < 6; digits++ {
			v *= 10
		}
		f.us, f.usSet = v, true
		sc.skipOrdinal(n.Suffix)
	case dchFF1, dchFF2, dchFF3, dchFF4, dchFF5, dchFF6:
		width := 1 + int(n.Key.id-dchFF1)
		v, digits, err := sc.parseFraction(width, n)
		if err != nil {
			return err
		}
		for ; digits < 6; digits++ {
			v *= 10
		}
		f.us, f.usSet = v, true
		sc.skipOrdinal(n.Suffix)

	case dchTZ, dchtz, dchOF:
		return fmt.Errorf("%w: formatting field %q is only supported in to_char",
			ErrField, n.Key.Name)
	case dchTZH:
		sc.skipSpace()
		f.offSign = 1
		if sc.src != "" && (sc.src[0] == '-' || sc.src[0] == '+') {
			if sc.src[0] == '-' {
				f.offSign = -1
			}
			sc.src = sc.src[1:]
		}
		v, err := sc.parseInt(2, n, next)
		if err != nil {
			return err
		}
		f.offHour = v
		f.hasOffset = true
	case dchTZM:
		v, err := sc.parseInt(2, n, next)
		if err != nil {
			return err
		}
		f.offMin = v
		if f.offSign == 0 {
			f.offSign = 1
		}
		f.hasOffset = true

	case dchA_D, dchB_C, dcha_d, dchb_c:
		v, err := sc.seqSearch(adbcLong, n)
		if err != nil {
			return err
		}
		f.bc = v%2 == 1
	case dchAD, dchBC, dchad, dchbc:
		v, err := sc.seqSearch(adbcShort, n)
		if err != nil {
			return err
		}
		f.bc = v%2 == 1

	case dchMONTH, dchMonth, dchmonth:
		v, err := sc.seqSearch(monthsFull, n)
		if err != nil {
			return err
		}
		return setInt(&f.mm, v+1, n.Key)
	case dchMON, dchMon, dchmon:
		v, err := sc.seqSearch(monthsShort, n)
		if err != nil {
			return err
		}
		return setInt(&f.mm, v+1, n.Key)
	case dchMM:
		return sc.intField(&f.mm, 2, n, next)

	case dchDAY, dchDay, dchday:
		v, err := sc.seqSearch(daysFull, n)
		if err != nil {
			return err
		}
		return setInt(&f.d, v+1, n.Key)
	case dchDY, dchDy, dchdy:
		v, err := sc.seqSearch(daysShort, n)
		if err != nil {
			return err
		}
		return setInt(&f.d, v+1, n.Key)

	case dchDDD, dchIDDD:
		return sc.intField(&f.ddd, 3, n, next)
	case dchDD:
		return sc.intField(&f.dd, 2, n, next)
	case dchD:
		return sc.intField(&f.d, 1, n, next)
	case dchID:
		v, err := sc.parseInt(1, n, next)
		if err != nil {
			return err
		}
		// Shift to Sunday-first numbering to match the D field.
		v++
		if v > 7 {
			v = 1
		}
		if err := setInt(&f.d, v, n.Key); err != nil {
			return err
		}
		sc.skipOrdinal(n.Suffix)
	case dchWW, dchIW:
		return sc.intField(&f.ww, 2, n, next)
	case dchW:
		return sc.intField(&f.w, 1, n, next)
	case dchQ:
		// A quarter alone cannot place a date; read and discard it.
		if _, err := sc.parseInt(1, n, next); err != nil {
			return err
		}
		sc.skipOrdinal(n.Suffix)
	case dchCC:
		return sc.intField(&f.cc, 2, n, next)
	case dchJ:
		return sc.intField(&f.j, len(n.Key.Name), n, next)

	case dchY_YYY:
		// The millennia digits before the comma read greedily; exactly
		// three digits must follow it.
		sc.skipSpace()
		millennia, _, err := sc.parseFraction(7, n)
		if err != nil {
			return err
		}
		if sc.src == "" || sc.src[0] != ',' {
			return fmt.Errorf("%w: invalid input string for %q", ErrField, n.Key.Name)
		}
		sc.src = sc.src[1:]
		years := 0
		for i := 0; i < 3; i++ {
			if sc.src == "" || sc.src[0] < '0' || sc.src[0] > '9' {
				return fmt.Errorf("%w: invalid input string for %q", ErrField, n.Key.Name)
			}
			years = years*10 + int(sc.src[0]-'0')
			sc.src = sc.src[1:]
		}
		if err := setInt(&f.year, millennia*1000+years, n.Key); err != nil {
			return err
		}
		f.yysz = 4
		sc.skipOrdinal(n.Suffix)
	case dchYYYY, dchIYYY:
		return sc.yearField(f, 4, n, next)
	case dchYYY, dchIYY:
		return sc.yearField(f, 3, n, next)
	case dchYY, dchIY:
		return sc.yearField(f, 2, n, next)
	case dchY, dchI:
		return sc.yearField(f, 1, n, next)

	case dchRM:
		v, err := sc.seqSearch(romanUpper, n)
		if err != nil {
			return err
		}
		return setInt(&f.mm, 12-v, n.Key)
	case dchrm:
		v, err := sc.seqSearch(romanLower, n)
		if err != nil {
			return err
		}
		return setInt(&f.mm, 12-v, n.Key)
	}
	return nil
}

func (sc *scanner) intField(dst *int, width int, n, next *Node) error {
	v, err := sc.parseInt(width, n, next)
	if err != nil {
		return err
	}
	if err := setInt(dst, v, n.Key); err != nil {
		return err
	}
	sc.skipOrdinal(n.Suffix)
	return nil
}

func (sc *scanner) yearField(f *fields, width int, n, next *Node) error {
	v, err := sc.parseInt(width, n, next)
	if err != nil {
		return err
	}
	if err := setInt(&f.year, v, n.Key); err != nil {
		return err
	}
	f.yysz = width
	sc.skipOrdinal(n.Suffix)
	return nil
}

// parseFraction reads up to width digits without sign handling, returning
// the value and how many digits were present.
func (sc *scanner) parseFraction(width int, n *Node) (int, int, error) {
	sc.skipSpace()
	digits := 0
	val := 0
	for digits < width && sc.src != "" && sc.src[0] >= '0' && sc.src[0] <= '9' {
		val = val*10 + int(sc.src[0]-'0')
		sc.src = sc.src[1:]
		digits++
	}
	if digits == 0 {
		return 0, 0, fmt.Errorf("%w: invalid value %q for %q, value must be an integer",
			ErrField, firstChars(sc.src, width), n.Key.Name)
	}
	return val, digits, nil
}

// assemble folds the collected fields into a civil instant, applying the
// 12-hour clock, era, century, Julian-day, ISO-week, and day-of-year rules.
func assemble(f *fields) (civil.Instant, error) {
	var v civil.Instant
	v.Month, v.Day = 1, 1

	if f.sssss != 0 {
		x := f.sssss
		v.Hour = x / 3600
		x %= 3600
		v.Minute = x / 60
		v.Second = x % 60
	}
	if f.ss != 0 {
		v.Second = f.ss
	}
	if f.mi != 0 {
		v.Minute = f.mi
	}
	if f.hh != 0 {
		v.Hour = f.hh
	}

	if f.clock {
		if v.Hour < 1 || v.Hour > 12 {
			return v, fmt.Errorf("%w: hour %d is invalid for the 12-hour clock, use the 24-hour clock or give an hour between 1 and 12",
				ErrField, v.Hour)
		}
		if f.pm != 0 && v.Hour < 12 {
			v.Hour += 12
		} else if f.pm == 0 && v.Hour == 12 {
			v.Hour = 0
		}
	}

	yearSet := false
	switch {
	case f.year != 0:
		yearSet = true
		cc := f.cc
		if cc != 0 && f.yysz <= 2 {
			// Two low-order digits within an explicit century. The 21st
			// century runs 2001 through 2100; the 6th century BC runs
			// 600 BC through 501 BC.
			if f.bc {
				cc = -cc
			}
			v.Year = f.year % 100
			if v.Year != 0 {
				if cc >= 0 {
					v.Year += (cc - 1) * 100
				} else {
					v.Year = (cc+1)*100 - v.Year + 1
				}
			} else if cc >= 0 {
				v.Year = cc * 100
			} else {
				v.Year = cc*100 + 1
			}
		} else {
			v.Year = f.year
			if f.yysz >= 1 && f.yysz <= 3 {
				// Partial years adjust toward 2020: '69' is 2069 but '70'
				// is 1970, '325' is 2325 but '750' is 1750.
				switch {
				case v.Year < 70:
					v.Year += 2000
				case v.Year < 100:
					v.Year += 1900
				case v.Year < 520:
					v.Year += 2000
				case v.Year < 1000:
					v.Year += 1000
				}
			}
			if f.bc {
				v.Year = -v.Year
			}
			if v.Year < 0 {
				v.Year++
			}
		}
	case f.cc != 0:
		yearSet = true
		cc := f.cc
		if f.bc {
			cc = -cc
		}
		// First year of the century: the 21st started in 2001.
		if cc >= 0 {
			v.Year = (cc-1)*100 + 1
		} else {
			v.Year = cc*100 + 1
		}
	}

	if f.j != 0 {
		v.Year, v.Month, v.Day = civil.JulianDate(f.j)
		yearSet = true
	}

	ddd := f.ddd
	if f.ww != 0 {
		if f.mode == DateISOWeek {
			if !yearSet {
				return v, fmt.Errorf("%w: cannot calculate ISO week date without year information", ErrField)
			}
			if f.d != 0 {
				v.Year, v.Month, v.Day = civil.ISOWeekDayDate(v.Year, f.ww, f.d)
			} else {
				v.Year, v.Month, v.Day = civil.ISOWeekDate(v.Year, f.ww)
			}
		} else {
			ddd = (f.ww-1)*7 + 1
		}
	}

	if f.w != 0 {
		f.dd = (f.w-1)*7 + 1
	}
	if f.dd != 0 {
		v.Day = f.dd
	}
	if f.mm != 0 {
		v.Month = f.mm
	}

	if ddd != 0 && (v.Month <= 1 || v.Day <= 1) {
		if !yearSet {
			return v, fmt.Errorf("%w: cannot calculate day of year without year information", ErrField)
		}
		if f.mode == DateISOWeek {
			j0 := civil.ISOWeekJulian(v.Year, 1) - 1
			v.Year, v.Month, v.Day = civil.JulianDate(j0 + ddd)
		} else {
			mon := 1
			rest := ddd
			for mon <= 12 {
				dim := civil.DaysInMonth(v.Year, mon)
				if rest <= dim {
					break
				}
				rest -= dim
				mon++
			}
			if v.Month <= 1 {
				v.Month = mon
			}
			if v.Day <= 1 {
				v.Day = rest
			}
		}
	}

	// Millisecond and microsecond fields accumulate, so a picture naming
	// both can push the fraction out of range.
	if f.msSet {
		v.Micros += f.ms * 1000
	}
	if f.usSet {
		v.Micros += f.us
	}

	if f.hasOffset {
		v.Offset = f.offSign * (f.offHour*3600 + f.offMin*60)
	}

	if !yearSet {
		// Without year information the date defaults to 0001-01-01.
		v.Year = 1
	}

	if err := validateFields(&v); err != nil {
		return v, err
	}
	return v, nil
}

func validateFields(v *civil.Instant) error {
	if v.Month < 1 || v.Month > 12 ||
		v.Day < 1 || v.Day > civil.DaysInMonth(v.Year, v.Month) ||
		v.Hour < 0 || v.Hour > 23 ||
		v.Minute < 0 || v.Minute > 59 ||
		v.Second < 0 || v.Second > 59 ||
		v.Micros < 0 || v.Micros > 999999 {
		return fmt.Errorf("%w: date/time field value out of range", ErrField)
	}
	return nil
}
