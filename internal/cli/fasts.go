package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/dagimg-dot/EthCal/internal/holiday"
)

var fastsCmd = LeafCommand{
	Use:   "fasts",
	Short: "List fasting periods of an Ethiopian year",
	Args:  cobra.NoArgs,
	IntFlags: []IntFlag{
		{Name: "year", Usage: "Ethiopian year (default: current)"},
		{Name: "weeks", Usage: "weeks of upcoming weekly fast days to list", Default: 4},
	},
	StrFlags: []StringFlag{
		{Name: "lang", Usage: "display language (amharic or english)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "no-color", Usage: "disable colored output"},
	},
	RunE: runFasts,
}.Build()

func runFasts(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")
	weeks, _ := cmd.Flags().GetInt("weeks")
	langFlag, _ := cmd.Flags().GetString("lang")
	noColor, _ := cmd.Flags().GetBool("no-color")

	s := loadSettings()
	if year == 0 {
		year = ethiopic.FromTime(now()).Year
	}
	lang := ethiopic.Language(s.Language)
	if langFlag != "" {
		var err error
		if lang, err = ethiopic.ParseLanguage(langFlag); err != nil {
			return err
		}
	}

	color := colorEnabled() && !noColor
	out := cmd.OutOrStdout()

	for _, key := range holiday.FastKeys() {
		info, err := holiday.Fasting(key, year, lang)
		if err != nil {
			logger.Warn("fasting lookup failed: " + err.Error())
			continue
		}
		if info.Period == nil {
			fmt.Fprintf(out, "%s  %s\n",
				styled(color, fastStyle, info.Name),
				styled(color, mutedStyle, "every Wednesday and Friday"))
			continue
		}
		fmt.Fprintf(out, "%s  %s – %s  %s\n",
			styled(color, fastStyle, info.Name),
			info.Period.Start, info.Period.End,
			styled(color, mutedStyle, fmt.Sprintf("(%d days)", info.Period.Days())))
	}

	if weeks > 0 {
		from := now()
		days, err := holiday.WeeklyFastBetween(from, from.AddDate(0, 0, weeks*7))
		if err != nil {
			return fmt.Errorf("expanding weekly fast days: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, styled(color, titleStyle, "upcoming weekly fast days"))
		for _, t := range days {
			fmt.Fprintf(out, "  %s  %s\n", ethiopic.FromTime(t), weekdayOf(t, lang))
		}
	}
	return nil
}

func weekdayOf(t time.Time, lang ethiopic.Language) string {
	return ethiopic.WeekdayName(ethiopic.FromTime(t).Weekday(), lang)
}
