package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastsYear(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, fastsCmd, map[string]string{
		"year":     "2017",
		"lang":     "english",
		"weeks":    "0",
		"no-color": "true",
	})

	out, err := execute(t, fastsCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Great Lent")
	assert.Contains(t, out, "(55 days)")
	assert.Contains(t, out, "Fast of Nineveh")
	assert.Contains(t, out, "Fast of Salvation")
	assert.Contains(t, out, "every Wednesday and Friday")
	assert.NotContains(t, out, "upcoming weekly fast days")
}

func TestFastsUpcomingWeekly(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, fastsCmd, map[string]string{
		"year":     "2017",
		"lang":     "english",
		"weeks":    "1",
		"no-color": "true",
	})

	out, err := execute(t, fastsCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "upcoming weekly fast days")
	// The Friday after New Year 2017 is Meskerem 3.
	assert.Contains(t, out, "2017-01-03")
}

func TestFastsBadLanguage(t *testing.T) {
	useFixedNow(t)
	useTempConfig(t)
	setFlags(t, fastsCmd, map[string]string{"lang": "latin"})

	_, err := execute(t, fastsCmd)
	assert.Error(t, err)
}
