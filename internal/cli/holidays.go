package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/dagimg-dot/EthCal/internal/holiday"
)

var holidaysCmd = LeafCommand{
	Use:   "holidays",
	Short: "List holidays of an Ethiopian year",
	Args:  cobra.NoArgs,
	IntFlags: []IntFlag{
		{Name: "year", Usage: "Ethiopian year (default: current)"},
		{Name: "month", Usage: "restrict to one month 1-13"},
	},
	StrFlags: []StringFlag{
		{Name: "lang", Usage: "display language (amharic or english)"},
		{Name: "mode", Usage: "holiday mode (all, public, christian, muslim)"},
		{Name: "tag", Usage: "only holidays carrying this tag"},
	},
	BoolFlags: []BoolFlag{
		{Name: "no-color", Usage: "disable colored output"},
	},
	RunE: runHolidays,
}.Build()

func runHolidays(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	langFlag, _ := cmd.Flags().GetString("lang")
	modeFlag, _ := cmd.Flags().GetString("mode")
	tag, _ := cmd.Flags().GetString("tag")
	noColor, _ := cmd.Flags().GetBool("no-color")

	if month < 0 || month > 13 {
		return fmt.Errorf("month %d out of range [1,13]", month)
	}

	s := loadSettings()
	if year == 0 {
		year = ethiopic.FromTime(now()).Year
	}
	lang := s.Language
	if langFlag != "" {
		lang = langFlag
	}
	mode := s.Mode
	if modeFlag != "" {
		mode = modeFlag
	}

	opts := holiday.Options{Lang: ethiopic.Language(lang), Mode: holiday.Mode(mode)}
	if tag != "" {
		opts.Filter = []holiday.Tag{holiday.Tag(tag)}
	}

	var hols []holiday.Holiday
	var err error
	if month != 0 {
		hols, err = holiday.InMonth(year, month, opts)
	} else {
		hols, err = holiday.InYear(year, opts)
	}
	if err != nil {
		logger.Warn("holiday lookup incomplete: " + err.Error())
	}

	color := colorEnabled() && !noColor
	out := cmd.OutOrStdout()
	if len(hols) == 0 {
		fmt.Fprintln(out, styled(color, mutedStyle, "no holidays found"))
		return nil
	}
	for _, h := range hols {
		fmt.Fprintf(out, "%s  %s  %s %s\n",
			h.Date,
			styled(color, mutedStyle, h.Date.Time().Format("2006-01-02")),
			styled(color, holidayStyle, h.Name),
			styled(color, mutedStyle, "["+tagList(h.Tags)+"]"))
	}
	return nil
}
