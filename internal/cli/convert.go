package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
)

var convertCmd = GroupCommand{
	Use:   "convert",
	Short: "Convert between Ethiopian and Gregorian dates",
	Subcommands: []*cobra.Command{
		convertToGCCmd,
		convertFromGCCmd,
	},
}.Build()

var convertToGCCmd = LeafCommand{
	Use:   "to-gc <date>",
	Short: "Convert an Ethiopian date to its Gregorian equivalent",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvertToGC,
}.Build()

var convertFromGCCmd = LeafCommand{
	Use:   "from-gc <date>",
	Short: "Convert a Gregorian date to its Ethiopian equivalent",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "geez", Usage: "render the result in Geez numerals"},
	},
	StrFlags: []StringFlag{
		{Name: "lang", Usage: "month name language (amharic or english)"},
	},
	RunE: runConvertFromGC,
}.Build()

func runConvertToGC(cmd *cobra.Command, args []string) error {
	date, err := ethiopic.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), date.Time().Format("Monday, 2 January 2006"))
	return nil
}

func runConvertFromGC(cmd *cobra.Command, args []string) error {
	t, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		return fmt.Errorf("unrecognized gregorian date %q", args[0])
	}

	geez, _ := cmd.Flags().GetBool("geez")
	langFlag, _ := cmd.Flags().GetString("lang")
	lang := ethiopic.Amharic
	if langFlag != "" {
		if lang, err = ethiopic.ParseLanguage(langFlag); err != nil {
			return err
		}
	}

	date := ethiopic.FromTime(t)
	fmt.Fprintf(cmd.OutOrStdout(), "%s, %s %s %s\n",
		ethiopic.WeekdayName(date.Weekday(), lang),
		ethiopic.MonthName(date.Month, lang),
		ethiopic.FormatNumber(date.Day, geez),
		ethiopic.FormatNumber(date.Year, geez))
	return nil
}
