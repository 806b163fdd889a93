package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// fixedNow is 2024-09-11, Ethiopian New Year's Day of 2017 (Meskerem 1,
// a Wednesday).
func fixedNow() time.Time {
	return time.Date(2024, 9, 11, 10, 30, 0, 0, time.UTC)
}

// useFixedNow pins the command clock for the duration of a test.
func useFixedNow(t *testing.T) {
	t.Helper()
	prev := now
	now = fixedNow
	t.Cleanup(func() { now = prev })
}

// useTempConfig points the settings directory at a throwaway location.
func useTempConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

// setFlags sets command flags for a test and restores their defaults on
// cleanup, since command vars are shared across tests.
func setFlags(t *testing.T, cmd *cobra.Command, flags map[string]string) {
	t.Helper()
	for name, value := range flags {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, "unknown flag %q", name)
		require.NoError(t, cmd.Flags().Set(name, value))
		def := f.DefValue
		t.Cleanup(func() { _ = cmd.Flags().Set(f.Name, def) })
	}
}

// execute runs a command's RunE against a capture buffer.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	err := cmd.RunE(cmd, args)
	return out.String(), err
}
