package holiday

import (
	"fmt"
	"time"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
)

// The Ethiopian church follows the Julian computus. The 13-day
// Julian-to-Gregorian offset below holds for 1900-2099, which bounds the
// Ethiopian years we can place movable feasts in.
const (
	minComputusYear = 1900
	maxComputusYear = 2099
)

// easter returns Fasika (Orthodox Easter Sunday) for the given Ethiopian
// year. Easter falls in March or April, which for Ethiopian year Y is
// Gregorian year Y+8.
func easter(ethYear int) (ethiopic.Date, error) {
	gregYear := ethYear + 8
	if gregYear < minComputusYear || gregYear > maxComputusYear {
		return ethiopic.Date{}, fmt.Errorf("no computus data for Ethiopian year %d", ethYear)
	}
	return ethiopic.FromTime(julianEaster(gregYear)), nil
}

// julianEaster computes Easter Sunday by the Julian computus for the given
// Gregorian year and returns it as a Gregorian date.
func julianEaster(year int) time.Time {
	a := year % 19
	b := year % 4
	c := year % 7

	// d is the epact, e locates the following Sunday.
	d := (19*a + 15) % 30
	e := (2*b + 4*c + 6*d + 6) % 7

	day := 22 + d + e
	month := time.March
	if day > 31 {
		day -= 31
		month = time.April
	}

	// Julian date plus the 13-day offset gives the Gregorian date.
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 13)
}
