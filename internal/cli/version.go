package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo records the build metadata stamped in by the linker.
func SetVersionInfo(version, commit, date string) {
	buildVersion, buildCommit, buildDate = version, commit, date
}

var versionCmd = LeafCommand{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "ethcal %s (commit %s, built %s)\n", buildVersion, buildCommit, buildDate)
		return nil
	},
}.Build()
