package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	want := Settings{
		Language:  "english",
		WeekStart: 0,
		UseGeez:   true,
		Mode:      "christian",
	}
	require.NoError(t, Save(dir, want))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "ethcal")
	require.NoError(t, Save(dir, Default()))

	_, err := os.Stat(filepath.Join(dir, fileName))
	assert.NoError(t, err)
}

func TestSaveRejectsInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		s    Settings
	}{
		{"bad language", Settings{Language: "geez", WeekStart: 1, Mode: "all"}},
		{"week start high", Settings{Language: "amharic", WeekStart: 7, Mode: "all"}},
		{"week start low", Settings{Language: "amharic", WeekStart: -1, Mode: "all"}},
		{"bad mode", Settings{Language: "amharic", WeekStart: 1, Mode: "secular"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Save(dir, tt.s))
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, fileName), []byte("use_geez: true\n"), 0o644)
	require.NoError(t, err)

	s, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, s.UseGeez)
	assert.Equal(t, Default().Language, s.Language)
	assert.Equal(t, Default().WeekStart, s.WeekStart)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, fileName), []byte("week_start: 12\n"), 0o644)
	require.NoError(t, err)

	_, err = Load(dir)
	assert.Error(t, err)
}
