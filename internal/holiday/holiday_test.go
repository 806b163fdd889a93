package holiday

import (
	"testing"
	"time"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(hs []Holiday) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Key
	}
	return out
}

func findByKey(t *testing.T, hs []Holiday, key string) Holiday {
	t.Helper()
	for _, h := range hs {
		if h.Key == key {
			return h
		}
	}
	t.Fatalf("holiday %q not found in %v", key, keysOf(hs))
	return Holiday{}
}

func TestJulianEaster(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2024, time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)},
		{2025, time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)},
		{2023, time.Date(2023, 4, 16, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, julianEaster(tt.year), "easter %d", tt.year)
	}
}

func TestEasterEthiopian(t *testing.T) {
	e, err := easter(2017)
	require.NoError(t, err)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 8, Day: 12}, e)

	e, err = easter(2016)
	require.NoError(t, err)
	assert.Equal(t, ethiopic.Date{Year: 2016, Month: 8, Day: 27}, e)

	_, err = easter(1800)
	assert.Error(t, err)
}

func TestInYearFixedAndMovable(t *testing.T) {
	hs, err := InYear(2017, Options{Lang: ethiopic.English})
	require.NoError(t, err)

	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 1, Day: 1}, findByKey(t, hs, "enkutatash").Date)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 1, Day: 17}, findByKey(t, hs, "meskel").Date)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 4, Day: 29}, findByKey(t, hs, "gena").Date)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 8, Day: 12}, findByKey(t, hs, "fasika").Date)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 8, Day: 10}, findByKey(t, hs, "siklet").Date)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 7, Day: 22}, findByKey(t, hs, "eidFitr").Date)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 9, Day: 30}, findByKey(t, hs, "eidAdha").Date)

	// Sorted by date.
	for i := 1; i < len(hs); i++ {
		assert.False(t, hs[i].Date.Before(hs[i-1].Date), "unsorted at %d", i)
	}
}

func TestJanuaryFeastsShiftAfterLeapYear(t *testing.T) {
	// 2015 is a leap year, so Gena and Timket fall a day earlier in 2016.
	hs, err := InYear(2016, Options{Lang: ethiopic.English})
	require.NoError(t, err)
	assert.Equal(t, ethiopic.Date{Year: 2016, Month: 4, Day: 28}, findByKey(t, hs, "gena").Date)
	assert.Equal(t, ethiopic.Date{Year: 2016, Month: 5, Day: 10}, findByKey(t, hs, "timket").Date)

	// Gregorian equivalents stay put.
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), findByKey(t, hs, "gena").Date.Time())
	assert.Equal(t, time.Date(2024, 1, 19, 0, 0, 0, 0, time.UTC), findByKey(t, hs, "timket").Date.Time())
}

func TestMawlidOccursTwiceIn2017(t *testing.T) {
	// Ethiopian 2017 spans Sep 2024 - Sep 2025 and contains two Mawlids.
	hs, err := InMonth(2017, 1, Options{Lang: ethiopic.English})
	require.NoError(t, err)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 1, Day: 6}, findByKey(t, hs, "mawlid").Date)

	hs, err = InMonth(2017, 12, Options{Lang: ethiopic.English})
	require.NoError(t, err)
	assert.Equal(t, ethiopic.Date{Year: 2017, Month: 12, Day: 30}, findByKey(t, hs, "mawlid").Date)
}

func TestInMonthEmpty(t *testing.T) {
	hs, err := InMonth(2017, 13, Options{})
	require.NoError(t, err)
	assert.NotNil(t, hs)
	assert.Empty(t, hs)
}

func TestModeFiltering(t *testing.T) {
	tests := []struct {
		mode    Mode
		allowed string
		blocked string
	}{
		{ModeChristian, "fasika", "mawlid"},
		{ModeMuslim, "mawlid", "fasika"},
		{ModePublic, "enkutatash", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			hs, err := InYear(2017, Options{Mode: tt.mode})
			require.NoError(t, err)
			keys := keysOf(hs)
			assert.Contains(t, keys, tt.allowed)
			if tt.blocked != "" {
				assert.NotContains(t, keys, tt.blocked)
			}
		})
	}
}

func TestTagFilter(t *testing.T) {
	hs, err := InYear(2017, Options{Filter: []Tag{TagCultural}})
	require.NoError(t, err)
	require.NotEmpty(t, hs)
	for _, h := range hs {
		assert.True(t, h.HasTag(TagCultural), "%s lacks cultural tag", h.Key)
	}
}

func TestLocalization(t *testing.T) {
	am, err := InMonth(2017, 1, Options{Lang: ethiopic.Amharic})
	require.NoError(t, err)
	en, err := InMonth(2017, 1, Options{Lang: ethiopic.English})
	require.NoError(t, err)

	assert.Equal(t, "እንቁጣጣሽ", findByKey(t, am, "enkutatash").Name)
	assert.Equal(t, "Enkutatash (New Year)", findByKey(t, en, "enkutatash").Name)
	assert.NotEmpty(t, findByKey(t, en, "enkutatash").Description)
}

func TestInYearDegradesOutsideComputusRange(t *testing.T) {
	hs, err := InYear(1800, Options{})
	assert.Error(t, err)
	// Fixed holidays still come back.
	assert.Contains(t, keysOf(hs), "enkutatash")
	assert.NotContains(t, keysOf(hs), "fasika")
}

func TestParseMode(t *testing.T) {
	for _, ok := range []string{"all", "public", "christian", "muslim"} {
		_, err := ParseMode(ok)
		assert.NoError(t, err)
	}
	_, err := ParseMode("secular")
	assert.Error(t, err)
}
