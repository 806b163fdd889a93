package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayDefaultsToToday(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, dayCmd, map[string]string{
		"lang":     "english",
		"no-color": "true",
	})

	out, err := execute(t, dayCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "(today)")
	assert.Contains(t, out, "Enkutatash (New Year)")
}

func TestDayExplicitDate(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, dayCmd, map[string]string{
		"lang":     "english",
		"no-color": "true",
	})

	// Siklet 2017 falls on Miyazya 10, a Friday inside Lent.
	out, err := execute(t, dayCmd, "2017-08-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Siklet (Good Friday)")
	assert.Contains(t, out, "Great Lent")
	assert.Contains(t, out, "day 54 of 55")
	assert.Contains(t, out, "Fast of Salvation")
	assert.NotContains(t, out, "(today)")
}

func TestDayInvalidDate(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)

	_, err := execute(t, dayCmd, "someday")
	assert.Error(t, err)
}
