// Package ethiopic implements the Ethiopian calendar: date arithmetic,
// conversion to and from the Gregorian calendar, Geez numeral formatting,
// and localized month and weekday names.
//
// The Ethiopian year has twelve months of 30 days followed by Pagume, a
// short 13th month of 5 days (6 in leap years). A year Y is a leap year
// when Y % 4 == 3; there is no century correction.
package ethiopic

import (
	"fmt"
	"time"
)

// epochJDN is the Julian Day Number of Meskerem 1, year 1 (Amete Mihret).
const epochJDN = 1724221

// Date is an Ethiopian calendar date. It is an immutable value; the zero
// value is not a valid date, construct one with New, Today or FromTime.
type Date struct {
	Year  int
	Month int // 1..13, 13 is Pagume
	Day   int
}

// New returns a validated Ethiopian date.
func New(year, month, day int) (Date, error) {
	if month < 1 || month > 13 {
		return Date{}, fmt.Errorf("month %d out of range [1,13]", month)
	}
	if n := DaysInMonth(year, month); day < 1 || day > n {
		return Date{}, fmt.Errorf("day %d out of range [1,%d] for %d/%d", day, n, month, year)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// Today returns the current Ethiopian date in the local timezone.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime converts the calendar date of t, in its own location, to an
// Ethiopian date.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return FromJDN(gregorianJDN(y, int(m), d))
}

// Time returns the Gregorian equivalent of d as midnight UTC.
func (d Date) Time() time.Time {
	y, m, day := jdnGregorian(d.JDN())
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of week of d. It is derived from the Gregorian
// equivalent, which keeps it consistent with ISO weekday rules.
func (d Date) Weekday() time.Weekday {
	return time.Weekday(mod(d.JDN()+1, 7))
}

// JDN returns the Julian Day Number of d.
func (d Date) JDN() int {
	return epochJDN + 365*(d.Year-1) + floorDiv(d.Year, 4) + 30*(d.Month-1) + d.Day - 1
}

// FromJDN converts a Julian Day Number to an Ethiopian date.
func FromJDN(jdn int) Date {
	r := jdn - epochJDN
	cycle := floorDiv(r, 1461)
	rem := r - cycle*1461

	// Within a 4-year cycle the third year carries the leap day.
	var yearOfs, doy int
	switch {
	case rem < 365:
		yearOfs, doy = 0, rem
	case rem < 730:
		yearOfs, doy = 1, rem-365
	case rem < 1096:
		yearOfs, doy = 2, rem-730
	default:
		yearOfs, doy = 3, rem-1096
	}

	return Date{
		Year:  4*cycle + yearOfs + 1,
		Month: doy/30 + 1,
		Day:   doy%30 + 1,
	}
}

// AddDays returns the date n days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	return FromJDN(d.JDN() + n)
}

// DiffDays returns the number of days from b to a (positive when a is later).
func DiffDays(a, b Date) int {
	return a.JDN() - b.JDN()
}

// Ordinal returns d encoded as year*10000 + month*100 + day, an integer
// that orders the same way dates do.
func (d Date) Ordinal() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

// Equal reports whether d and o are the same date.
func (d Date) Equal(o Date) bool { return d == o }

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool { return d.Ordinal() < o.Ordinal() }

// After reports whether d is later than o.
func (d Date) After(o Date) bool { return d.Ordinal() > o.Ordinal() }

// String returns d in "YYYY-MM-DD" form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Parse parses an Ethiopian date in "YYYY-MM-DD" form.
func Parse(s string) (Date, error) {
	var y, m, d int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &y, &m, &d); err != nil {
		return Date{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD)", s)
	}
	return New(y, m, d)
}

// IsLeapYear reports whether the Ethiopian year is a leap year
// (Pagume has 6 days).
func IsLeapYear(year int) bool {
	return mod(year, 4) == 3
}

// DaysInMonth returns the number of days in the given Ethiopian month.
func DaysInMonth(year, month int) int {
	if month < 13 {
		return 30
	}
	if IsLeapYear(year) {
		return 6
	}
	return 5
}

// DaysInYear returns the number of days in the given Ethiopian year.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// gregorianJDN converts a Gregorian date to a Julian Day Number
// (Fliegel & Van Flandern).
func gregorianJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnGregorian converts a Julian Day Number to a Gregorian date.
func jdnGregorian(jdn int) (int, time.Month, int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	day := e - (153*m+2)/5 + 1
	month := m + 3 - 12*(m/10)
	year := 100*b + d - 4800 + m/10
	return year, time.Month(month), day
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
