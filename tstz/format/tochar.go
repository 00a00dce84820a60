package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mweber26/timestampandtz/tstz/civil"
)

// maxItemSize is the widest expansion a single action node can produce, in
// bytes. Render grows its buffer by this bound per node.
const maxItemSize = 12

// tmSuffixLen widens the localized-name bound for the two TM prefix bytes.
const tmSuffixLen = 2

var (
	monthsFull = []string{
		"January", "February", "March", "April", "May", "June", "July",
		"August", "September", "October", "November", "December",
	}
	monthsShort = []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	daysFull = []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
		"Saturday",
	}
	daysShort = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	// Roman month numerals are stored December first; rendering indexes
	// them back to front.
	romanUpper = []string{
		"XII", "XI", "X", "IX", "VIII", "VII", "VI", "V", "IV", "III",
		"II", "I",
	}
	romanLower = []string{
		"xii", "xi", "x", "ix", "viii", "vii", "vi", "v", "iv", "iii",
		"ii", "i",
	}
)

// Format renders the civil fields of v according to picture.
func (c *Cache) Format(picture string, v civil.Instant) (string, error) {
	nodes, err := c.Fetch(picture, false)
	if err != nil {
		return "", err
	}
	return Render(nodes, v, false)
}

// FormatInterval renders interval fields according to picture. The fields
// of v hold the interval decomposition (years, months, days, and a time of
// day that may be negative or exceed its calendar bounds).
func (c *Cache) FormatInterval(picture string, v civil.Instant) (string, error) {
	nodes, err := c.Fetch(picture, false)
	if err != nil {
		return "", err
	}
	return Render(nodes, v, true)
}

// numeric formats val zero padded to width. Fill mode drops the padding.
func numeric(suf Suffix, val int64, width int) string {
	if suf.fm() {
		width = 0
	}
	return fmt.Sprintf("%0*d", width, val)
}

// signWidth widens a fixed field by one column when the governing value is
// negative, so the sign does not eat a digit.
func signWidth(val, width int) int {
	if val < 0 {
		return width + 1
	}
	return width
}

// ordinal picks the ST/ND/RD/TH suffix for the rendered digits. The teens
// always take TH regardless of their last digit.
func ordinal(num string, upper bool) (string, error) {
	last := num[len(num)-1]
	if last < '0' || last > '9' {
		return "", fmt.Errorf("%w: %q is not a number", ErrFormat, num)
	}
	if len(num) > 1 && num[len(num)-2] == '1' {
		last = 0
	}
	var th string
	switch last {
	case '1':
		th = "st"
	case '2':
		th = "nd"
	case '3':
		th = "rd"
	default:
		th = "th"
	}
	if upper {
		th = strings.ToUpper(th)
	}
	return th, nil
}

// adjustYear maps astronomical years to display years for the year
// keywords: year 0 is 1 BC and prints as 1. Interval years pass through.
func adjustYear(year int, interval bool) int {
	if interval || year > 0 {
		return year
	}
	return -(year - 1)
}

type renderer struct {
	sb       strings.Builder
	interval bool
}

func (r *renderer) num(suf Suffix, s string) error {
	r.sb.WriteString(s)
	if suf.th() {
		th, err := ordinal(s, suf.thUpper())
		if err != nil {
			return err
		}
		r.sb.WriteString(th)
	}
	return nil
}

// name writes a month, day, era, or meridiem name. Plain rendering pads to
// nine columns; fill mode and translation mode do not pad. Translation mode
// enforces the static output bound instead of truncating.
func (r *renderer) name(suf Suffix, name string, keyLen int) error {
	if suf.tm() {
		if len(name) > (keyLen+tmSuffixLen)*maxItemSize {
			return ErrLocalized
		}
		r.sb.WriteString(name)
		return nil
	}
	if suf.fm() {
		r.sb.WriteString(name)
		return nil
	}
	fmt.Fprintf(&r.sb, "%-9s", name)
	return nil
}

func (r *renderer) calendarOnly(k *Keyword) error {
	if r.interval {
		return fmt.Errorf("%w: %q", ErrInterval, k.Name)
	}
	return nil
}

// Render expands a compiled picture against the civil fields of v. With
// interval set, keywords that only make sense for calendar dates or zones
// are rejected and year fields print their raw signed values.
func Render(nodes []Node, v civil.Instant, interval bool) (string, error) {
	r := renderer{interval: interval}
	r.sb.Grow(len(nodes) * maxItemSize)

	for i := range nodes {
		n := &nodes[i]
		if n.Type == NodeEnd {
			break
		}
		if n.Type != NodeAction {
			r.sb.WriteRune(n.Character)
			continue
		}
		if err := r.action(n, v); err != nil {
			return "", err
		}
	}
	return r.sb.String(), nil
}

func (r *renderer) action(n *Node, v civil.Instant) error {
	suf := n.Suffix
	switch n.Key.id {
	case dchA_M, dchP_M:
		r.meridiem(v.Hour, "A.M.", "P.M.")
	case dchAM, dchPM:
		r.meridiem(v.Hour, "AM", "PM")
	case dcha_m, dchp_m:
		r.meridiem(v.Hour, "a.m.", "p.m.")
	case dcham, dchpm:
		r.meridiem(v.Hour, "am", "pm")

	case dchHH, dchHH12:
		// A 12-hour clock reading, even for intervals.
		h := v.Hour % 12
		if h == 0 {
			h = 12
		}
		return r.num(suf, numeric(suf, int64(h), signWidth(v.Hour, 2)))
	case dchHH24:
		return r.num(suf, numeric(suf, int64(v.Hour), signWidth(v.Hour, 2)))
	case dchMI:
		return r.num(suf, numeric(suf, int64(v.Minute), signWidth(v.Minute, 2)))
	case dchSS:
		return r.num(suf, numeric(suf, int64(v.Second), signWidth(v.Second, 2)))

	case dchFF1:
		return r.num(suf, fmt.Sprintf("%01d", v.Micros/100000))
	case dchFF2:
		return r.num(suf, fmt.Sprintf("%02d", v.Micros/10000))
	case dchFF3, dchMS:
		return r.num(suf, fmt.Sprintf("%03d", v.Micros/1000))
	case dchFF4:
		return r.num(suf, fmt.Sprintf("%04d", v.Micros/100))
	case dchFF5:
		return r.num(suf, fmt.Sprintf("%05d", v.Micros/10))
	case dchFF6, dchUS:
		return r.num(suf, fmt.Sprintf("%06d", v.Micros))

	case dchSSSS:
		secs := int64(v.Hour)*3600 + int64(v.Minute)*60 + int64(v.Second)
		return r.num(suf, strconv.FormatInt(secs, 10))

	case dchtz:
		if err := r.calendarOnly(n.Key); err != nil {
			return err
		}
		r.sb.WriteString(strings.ToLower(v.Abbrev))
	case dchTZ:
		if err := r.calendarOnly(n.Key); err != nil {
			return err
		}
		r.sb.WriteString(v.Abbrev)
	case dchTZH:
		if err := r.calendarOnly(n.Key); err != nil {
			return err
		}
		fmt.Fprintf(&r.sb, "%c%02d", offSign(v.Offset), abs(v.Offset)/3600)
	case dchTZM:
		if err := r.calendarOnly(n.Key); err != nil {
			return err
		}
		fmt.Fprintf(&r.sb, "%02d", abs(v.Offset)%3600/60)
	case dchOF:
		if err := r.calendarOnly(n.Key); err != nil {
			return err
		}
		r.sb.WriteByte(offSign(v.Offset))
		r.sb.WriteString(numeric(suf, int64(abs(v.Offset)/3600), 2))
		if abs(v.Offset)%3600 != 0 {
			fmt.Fprintf(&r.sb, ":%02d", abs(v.Offset)%3600/60)
		}

	case dchA_D, dchB_C:
		return r.era(n.Key, v.Year, "A.D.", "B.C.")
	case dchAD, dchBC:
		return r.era(n.Key, v.Year, "AD", "BC")
	case dcha_d, dchb_c:
		return r.era(n.Key, v.Year, "a.d.", "b.c.")
	case dchad, dchbc:
		return r.era(n.Key, v.Year, "ad", "bc")

	case dchMONTH:
		return r.monthName(n, v.Month, strings.ToUpper, monthsFull, true)
	case dchMonth:
		return r.monthName(n, v.Month, nil, monthsFull, true)
	case dchmonth:
		return r.monthName(n, v.Month, strings.ToLower, monthsFull, true)
	case dchMON:
		return r.monthName(n, v.Month, strings.ToUpper, monthsShort, false)
	case dchMon:
		return r.monthName(n, v.Month, nil, monthsShort, false)
	case dchmon:
		return r.monthName(n, v.Month, strings.ToLower, monthsShort, false)
	case dchMM:
		return r.num(suf, numeric(suf, int64(v.Month), signWidth(v.Month, 2)))

	case dchDAY:
		return r.dayName(n, v.WeekDay, strings.ToUpper, daysFull, true)
	case dchDay:
		return r.dayName(n, v.WeekDay, nil, daysFull, true)
	case dchday:
		return r.dayName(n, v.WeekDay, strings.ToLower, daysFull, true)
	case dchDY:
		return r.dayName(n, v.WeekDay, strings.ToUpper, daysShort, false)
	case dchDy:
		return r.dayName(n, v.WeekDay, nil, daysShort, false)
	case dchdy:
		return r.dayName(n, v.WeekDay, strings.ToLower, daysShort, false)

	case dchDDD, dchIDDD:
		yday := v.YearDay
		if n.Key.id == dchIDDD {
			yday = civil.ISOYearDay(v.Year, v.Month, v.Day)
		}
		return r.num(suf, numeric(suf, int64(yday), 3))
	case dchDD:
		return r.num(suf, numeric(suf, int64(v.Day), 2))
	case dchD:
		if err := r.calendarOnly(n.Key); err != nil {
			return err
		}
		return r.num(suf, strconv.Itoa(v.WeekDay+1))
	case dchID:
		if err := r.calendarOnly(n.Key); err != nil {
			return err
		}
		wd := v.WeekDay
		if wd == 0 {
			wd = 7
		}
		return r.num(suf, strconv.Itoa(wd))

	case dchWW:
		return r.num(suf, numeric(suf, int64((v.YearDay-1)/7+1), 2))
	case dchIW:
		return r.num(suf, numeric(suf, int64(civil.ISOWeek(v.Year, v.Month, v.Day)), 2))
	case dchW:
		return r.num(suf, strconv.Itoa((v.Day-1)/7+1))
	case dchQ:
		if v.Month <= 0 {
			return nil
		}
		return r.num(suf, strconv.Itoa((v.Month-1)/3+1))

	case dchCC:
		var cc int
		if r.interval {
			cc = v.Year / 100
		} else if v.Year > 0 {
			// Century 20 is 1901 through 2000.
			cc = (v.Year-1)/100 + 1
		} else {
			// Century 6 BC is 600 BC through 501 BC.
			cc = v.Year/100 - 1
		}
		if cc <= 99 && cc >= -99 {
			return r.num(suf, numeric(suf, int64(cc), signWidth(cc, 2)))
		}
		return r.num(suf, strconv.Itoa(cc))

	case dchY_YYY:
		adj := adjustYear(v.Year, r.interval)
		millennia := adj / 1000
		return r.num(suf, fmt.Sprintf("%d,%03d", millennia, adj-millennia*1000))
	case dchYYYY, dchIYYY:
		adj := adjustYear(v.Year, r.interval)
		val := adj
		if n.Key.id == dchIYYY {
			val = adjustYear(civil.ISOYear(v.Year, v.Month, v.Day), r.interval)
		}
		return r.num(suf, numeric(suf, int64(val), signWidth(adj, 4)))
	case dchYYY, dchIYY:
		adj := adjustYear(v.Year, r.interval)
		val := adj
		if n.Key.id == dchIYY {
			val = adjustYear(civil.ISOYear(v.Year, v.Month, v.Day), r.interval)
		}
		return r.num(suf, numeric(suf, int64(val%1000), signWidth(adj, 3)))
	case dchYY, dchIY:
		adj := adjustYear(v.Year, r.interval)
		val := adj
		if n.Key.id == dchIY {
			val = adjustYear(civil.ISOYear(v.Year, v.Month, v.Day), r.interval)
		}
		return r.num(suf, numeric(suf, int64(val%100), signWidth(adj, 2)))
	case dchY, dchI:
		val := adjustYear(v.Year, r.interval)
		if n.Key.id == dchI {
			val = adjustYear(civil.ISOYear(v.Year, v.Month, v.Day), r.interval)
		}
		return r.num(suf, strconv.Itoa(val%10))

	case dchRM, dchrm:
		// Interval months reduce twelves into years, so a zero month with
		// nonzero years still renders.
		if v.Month == 0 && v.Year == 0 {
			return nil
		}
		months := romanUpper
		if n.Key.id == dchrm {
			months = romanLower
		}
		var mon int
		switch {
		case v.Month == 0:
			// Whole interval years only.
			if v.Year >= 0 {
				mon = 0
			} else {
				mon = 11
			}
		case v.Month < 0:
			// Reversed for negative months: -1 is December, -2 November.
			mon = -(v.Month + 1)
		default:
			mon = 12 - v.Month
		}
		if suf.fm() {
			r.sb.WriteString(months[mon])
		} else {
			fmt.Fprintf(&r.sb, "%-4s", months[mon])
		}

	case dchJ:
		return r.num(suf, strconv.Itoa(civil.JulianDay(v.Year, v.Month, v.Day)))
	}
	return nil
}

func (r *renderer) meridiem(hour int, am, pm string) {
	if hour%24 >= 12 {
		r.sb.WriteString(pm)
	} else {
		r.sb.WriteString(am)
	}
}

func (r *renderer) era(k *Keyword, year int, ad, bc string) error {
	if err := r.calendarOnly(k); err != nil {
		return err
	}
	if year <= 0 {
		r.sb.WriteString(bc)
	} else {
		r.sb.WriteString(ad)
	}
	return nil
}

func (r *renderer) monthName(n *Node, month int, fold func(string) string, names []string, pad bool) error {
	if err := r.calendarOnly(n.Key); err != nil {
		return err
	}
	if month == 0 {
		return nil
	}
	return r.writeName(n, names[month-1], fold, pad)
}

func (r *renderer) dayName(n *Node, wday int, fold func(string) string, names []string, pad bool) error {
	if err := r.calendarOnly(n.Key); err != nil {
		return err
	}
	return r.writeName(n, names[wday], fold, pad)
}

// writeName folds case and writes one month or day name. Abbreviated forms
// never pad; full forms pad to nine columns unless fill or translation mode
// suppresses it.
func (r *renderer) writeName(n *Node, name string, fold func(string) string, pad bool) error {
	if fold != nil {
		name = fold(name)
	}
	if !pad && !n.Suffix.tm() {
		r.sb.WriteString(name)
		return nil
	}
	return r.name(n.Suffix, name, len(n.Key.Name))
}

func offSign(off int) byte {
	if off >= 0 {
		return '+'
	}
	return '-'
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
