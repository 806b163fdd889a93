package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidaysYear(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, holidaysCmd, map[string]string{
		"year":     "2017",
		"lang":     "english",
		"no-color": "true",
	})

	out, err := execute(t, holidaysCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "2017-01-01")
	assert.Contains(t, out, "Enkutatash (New Year)")
	assert.Contains(t, out, "Fasika (Easter)")
	// Mawlid falls twice in 2017, once in Meskerem and once in Pagume week.
	assert.Equal(t, 2, strings.Count(out, "Mawlid"))
}

func TestHolidaysMonth(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, holidaysCmd, map[string]string{
		"year":     "2017",
		"month":    "6",
		"lang":     "english",
		"no-color": "true",
	})

	out, err := execute(t, holidaysCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Adwa Victory Day")
	assert.NotContains(t, out, "Enkutatash")
}

func TestHolidaysTagFilter(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, holidaysCmd, map[string]string{
		"year":     "2017",
		"tag":      "muslim",
		"lang":     "english",
		"no-color": "true",
	})

	out, err := execute(t, holidaysCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Eid al-Fitr")
	assert.NotContains(t, out, "Fasika")
}

func TestHolidaysDefaultsToCurrentYear(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, holidaysCmd, map[string]string{
		"lang":     "english",
		"no-color": "true",
	})

	out, err := execute(t, holidaysCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "2017-01-01")
}

func TestHolidaysRejectsBadMonth(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, holidaysCmd, map[string]string{"month": "14"})

	_, err := execute(t, holidaysCmd)
	assert.Error(t, err)

	setFlags(t, holidaysCmd, map[string]string{"month": "-1"})
	_, err = execute(t, holidaysCmd)
	assert.Error(t, err)
}

func TestHolidaysEmptyMonth(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, holidaysCmd, map[string]string{
		"year":     "2017",
		"month":    "3",
		"lang":     "english",
		"no-color": "true",
	})

	out, err := execute(t, holidaysCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "no holidays found")
}
