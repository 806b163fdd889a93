package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/dagimg-dot/EthCal/internal/settings"
)

func TestResolveDateKeywords(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want ethiopic.Date
	}{
		{"empty means today", "", ethiopic.Date{Year: 2017, Month: 1, Day: 1}},
		{"today", "today", ethiopic.Date{Year: 2017, Month: 1, Day: 1}},
		{"mixed case", "Today", ethiopic.Date{Year: 2017, Month: 1, Day: 1}},
		{"tomorrow", "tomorrow", ethiopic.Date{Year: 2017, Month: 1, Day: 2}},
		{"yesterday crosses the new year", "yesterday", ethiopic.Date{Year: 2016, Month: 13, Day: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDate(tt.expr, fixedNow())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDateLiteral(t *testing.T) {
	got, err := resolveDate("2017-07-23", fixedNow())
	require.NoError(t, err)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 7, Day: 23}, got)
}

func TestResolveDateGregorianPrefix(t *testing.T) {
	got, err := resolveDate("gc:2024-09-11", fixedNow())
	require.NoError(t, err)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 1, Day: 1}, got)
}

func TestResolveDateInvalid(t *testing.T) {
	_, err := resolveDate("next tuesday", fixedNow())
	assert.Error(t, err)

	_, err = resolveDate("gc:11/09/2024", fixedNow())
	assert.Error(t, err)

	_, err = resolveDate("2017-14-01", fixedNow())
	assert.Error(t, err)
}

func TestGridConfigFlagOverrides(t *testing.T) {
	cfg := gridConfig(settings.Default(), 2017, 1, "english", "public", true)
	assert.Equal(t, ethiopic.English, cfg.Lang)
	assert.Equal(t, "public", string(cfg.Mode))
	assert.True(t, cfg.UseGeez)
	assert.Equal(t, 2017, cfg.Year)
	assert.Equal(t, 1, cfg.Month)
}
