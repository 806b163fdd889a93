package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dagimg-dot/EthCal/internal/grid"
)

var dayCmd = LeafCommand{
	Use:     "day [date]",
	Short:   "Show holidays and fasts for a date (default today)",
	Example: "  ethcal day\n  ethcal day tomorrow\n  ethcal day 2017-08-12\n  ethcal day gc:2025-01-07",
	Args:    cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		{Name: "lang", Usage: "display language (amharic or english)"},
		{Name: "mode", Usage: "holiday mode (all, public, christian, muslim)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "no-color", Usage: "disable colored output"},
	},
	RunE: runDay,
}.Build()

func runDay(cmd *cobra.Command, args []string) error {
	expr := ""
	if len(args) > 0 {
		expr = args[0]
	}
	date, err := resolveDate(expr, now())
	if err != nil {
		return err
	}

	lang, _ := cmd.Flags().GetString("lang")
	mode, _ := cmd.Flags().GetString("mode")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg := gridConfig(loadSettings(), 0, 0, lang, mode, false)
	cfg.Now = now
	svc, err := grid.NewDayInfo(cfg)
	if err != nil {
		return err
	}

	color := colorEnabled() && !noColor
	fmt.Fprint(cmd.OutOrStdout(), renderDay(svc.Information(date), color))
	return nil
}
