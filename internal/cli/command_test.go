package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafCommandBuildRegistersFlags(t *testing.T) {
	cmd := LeafCommand{
		Use:       "demo",
		Short:     "demo command",
		BoolFlags: []BoolFlag{{Name: "flag-a", Usage: "a", Default: true}},
		StrFlags:  []StringFlag{{Name: "flag-b", Usage: "b", Default: "x"}},
		IntFlags:  []IntFlag{{Name: "flag-c", Usage: "c", Default: 7}},
		RunE:      func(cmd *cobra.Command, args []string) error { return nil },
	}.Build()

	a, err := cmd.Flags().GetBool("flag-a")
	require.NoError(t, err)
	assert.True(t, a)

	b, err := cmd.Flags().GetString("flag-b")
	require.NoError(t, err)
	assert.Equal(t, "x", b)

	c, err := cmd.Flags().GetInt("flag-c")
	require.NoError(t, err)
	assert.Equal(t, 7, c)
}

func TestGroupCommandBuildRegistersSubcommands(t *testing.T) {
	sub := &cobra.Command{Use: "sub"}
	cmd := GroupCommand{Use: "group", Short: "group command", Subcommands: []*cobra.Command{sub}}.Build()

	assert.Len(t, cmd.Commands(), 1)
	assert.Same(t, sub, cmd.Commands()[0])
}

func TestRootRegistersAllCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"show", "day", "convert", "holidays", "fasts",
		"browse", "export", "setup", "config", "version",
	} {
		assert.True(t, names[want], "missing command %q", want)
	}
}
