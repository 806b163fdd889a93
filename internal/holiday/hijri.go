package holiday

import "github.com/dagimg-dot/EthCal/internal/ethiopic"

// Tabular Islamic calendar (civil epoch). Months alternate 30 and 29 days
// and eleven years in each 30-year cycle take an extra day in the last
// month. Observed dates can differ by a day from this arithmetic calendar,
// the same tolerance every arithmetic holiday table carries.
const hijriEpochJDN = 1948440 // 1 Muharram, 1 AH

func hijriJDN(year, month, day int) int {
	return day + 29*(month-1) + month/2 +
		354*(year-1) + (3+11*year)/30 + hijriEpochJDN - 1
}

// hijriYearAt returns the Hijri year containing the given Julian Day Number.
func hijriYearAt(jdn int) int {
	return (30*(jdn-hijriEpochJDN) + 10646) / 10631
}

// hijriInEthYear returns the occurrences of a Hijri month/day inside the
// given Ethiopian year. A Hijri year is about eleven days shorter than an
// Ethiopian one, so a date can occur zero, one or two times.
func hijriInEthYear(ethYear, hMonth, hDay int) []ethiopic.Date {
	start := ethiopic.Date{Year: ethYear, Month: 1, Day: 1}.JDN()
	end := start + ethiopic.DaysInYear(ethYear) - 1

	var out []ethiopic.Date
	for hy := hijriYearAt(start); ; hy++ {
		jdn := hijriJDN(hy, hMonth, hDay)
		if jdn > end {
			break
		}
		if jdn >= start {
			out = append(out, ethiopic.FromJDN(jdn))
		}
	}
	return out
}
