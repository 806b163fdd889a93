package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dagimg-dot/EthCal/internal/settings"
)

// stubSetupForm replaces the interactive form for the duration of a test.
func stubSetupForm(t *testing.T, fn func(s *settings.Settings) error) {
	t.Helper()
	prev := setupForm
	setupForm = fn
	t.Cleanup(func() { setupForm = prev })
}

func TestSetupPersistsFormResult(t *testing.T) {
	useTempConfig(t)
	stubSetupForm(t, func(s *settings.Settings) error {
		s.Language = "english"
		s.WeekStart = 0
		s.UseGeez = true
		s.Mode = "public"
		return nil
	})

	out, err := execute(t, setupCmd)
	require.NoError(t, err)
	assert.Contains(t, out, "preferences saved")

	dir, err := settings.Dir()
	require.NoError(t, err)
	saved, err := settings.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "english", saved.Language)
	assert.Equal(t, 0, saved.WeekStart)
	assert.True(t, saved.UseGeez)
	assert.Equal(t, "public", saved.Mode)
}

func TestSetupStartsFromStoredSettings(t *testing.T) {
	useTempConfig(t)

	dir, err := settings.Dir()
	require.NoError(t, err)
	stored := settings.Default()
	stored.Language = "english"
	require.NoError(t, settings.Save(dir, stored))

	var seen settings.Settings
	stubSetupForm(t, func(s *settings.Settings) error {
		seen = *s
		return nil
	})

	_, err = execute(t, setupCmd)
	require.NoError(t, err)
	assert.Equal(t, "english", seen.Language)
}

func TestSetupAborted(t *testing.T) {
	useTempConfig(t)
	stubSetupForm(t, func(s *settings.Settings) error {
		return fmt.Errorf("user cancelled")
	})

	_, err := execute(t, setupCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setup aborted")
}

func TestSetupRejectsInvalidFormResult(t *testing.T) {
	useTempConfig(t)
	stubSetupForm(t, func(s *settings.Settings) error {
		s.WeekStart = 9
		return nil
	})

	_, err := execute(t, setupCmd)
	assert.Error(t, err)
}
