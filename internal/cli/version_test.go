package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionOutput(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2025-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, err := execute(t, versionCmd)
	require.NoError(t, err)
	assert.Equal(t, "ethcal 1.2.3 (commit abc1234, built 2025-01-01)\n", out)
}
