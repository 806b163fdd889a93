package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "ethcal",
	Short: "An Ethiopian calendar for the terminal",
	Long: "ethcal renders the Ethiopian calendar with holidays and fasting\n" +
		"periods, converts dates to and from the Gregorian calendar, and\n" +
		"formats numbers in Geez numerals.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger = newLogger(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// logger is shared by all commands; set up in PersistentPreRun.
var logger = zap.NewNop()

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(holidaysCmd)
	rootCmd.AddCommand(fastsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
