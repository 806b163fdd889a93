package ethiopic

import (
	"strconv"
	"strings"
)

var geezOnes = [10]string{"", "፩", "፪", "፫", "፬", "፭", "፮", "፯", "፰", "፱"}
var geezTens = [10]string{"", "፲", "፳", "፴", "፵", "፶", "፷", "፸", "፹", "፺"}

const (
	geezHundred     = "፻"
	geezTenThousand = "፼"
)

// ToGeez renders a positive integer in Geez numerals. The system has no
// zero; non-positive input falls back to decimal digits.
func ToGeez(n int) string {
	if n <= 0 {
		return strconv.Itoa(n)
	}

	// Split into base-100 groups, most significant first. Group at
	// position p contributes group*100^p; odd positions read as ፻ and
	// each pair of positions as ፼.
	var groups []int
	for v := n; v > 0; v /= 100 {
		groups = append([]int{v % 100}, groups...)
	}

	var b strings.Builder
	for i, g := range groups {
		if g == 0 {
			continue
		}
		pos := len(groups) - i - 1

		sep := strings.Repeat(geezTenThousand, pos/2)
		if pos%2 == 1 {
			sep = geezHundred + sep
		}

		digits := geezTens[g/10] + geezOnes[g%10]
		// A leading ፩ is elided before ፻ and ፼ (100 is ፻, not ፩፻).
		if g == 1 && sep != "" {
			digits = ""
		}

		b.WriteString(digits)
		b.WriteString(sep)
	}
	return b.String()
}

// FormatNumber renders n in Geez numerals when useGeez is set, and in
// decimal otherwise. This is the single display-formatting path; values
// stay numeric everywhere else.
func FormatNumber(n int, useGeez bool) string {
	if useGeez {
		return ToGeez(n)
	}
	return strconv.Itoa(n)
}
