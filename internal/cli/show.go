package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dagimg-dot/EthCal/internal/grid"
)

var showCmd = LeafCommand{
	Use:     "show",
	Short:   "Render a month of the Ethiopian calendar",
	Example: "  ethcal show\n  ethcal show --year 2017 --month 4 --lang english\n  ethcal show --geez --week-start 0",
	Args:    cobra.NoArgs,
	IntFlags: []IntFlag{
		{Name: "year", Usage: "Ethiopian year (requires --month)"},
		{Name: "month", Usage: "Ethiopian month 1-13 (requires --year)"},
		{Name: "week-start", Usage: "first weekday column, 0=Sunday .. 6=Saturday", Default: -1},
	},
	StrFlags: []StringFlag{
		{Name: "lang", Usage: "display language (amharic or english)"},
		{Name: "mode", Usage: "holiday mode (all, public, christian, muslim)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "geez", Usage: "render numbers in Geez numerals"},
		{Name: "no-color", Usage: "disable colored output"},
	},
	RunE: runShow,
}.Build()

func runShow(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	weekStart, _ := cmd.Flags().GetInt("week-start")
	lang, _ := cmd.Flags().GetString("lang")
	mode, _ := cmd.Flags().GetString("mode")
	geez, _ := cmd.Flags().GetBool("geez")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg := gridConfig(loadSettings(), year, month, lang, mode, geez)
	if weekStart >= 0 {
		cfg.WeekStart = weekStart
	}
	cfg.Now = now

	g, err := grid.NewMonthGrid(cfg)
	if err != nil {
		return fmt.Errorf("building month grid: %w", err)
	}

	color := colorEnabled() && !noColor
	fmt.Fprintln(cmd.OutOrStdout(), renderMonth(g.Generate(), color))
	return nil
}
