package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/dagimg-dot/EthCal/internal/grid"
)

var browseCmd = LeafCommand{
	Use:   "browse",
	Short: "Browse the calendar interactively",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "lang", Usage: "display language (amharic or english)"},
		{Name: "mode", Usage: "holiday mode (all, public, christian, muslim)"},
	},
	RunE: runBrowse,
}.Build()

type browseModel struct {
	mg   *grid.MonthGrid
	info *grid.DayInfo
	sel  ethiopic.Date
	lang ethiopic.Language
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

// move shifts the selection by days, following it across month boundaries.
func (m browseModel) move(days int) browseModel {
	m.sel = m.sel.AddDays(days)
	m.mg.SetDate(m.sel.Month, m.sel.Year)
	return m
}

// jumpMonth moves the month cursor and clamps the selected day to the new
// month's length.
func (m browseModel) jumpMonth(forward bool) browseModel {
	if forward {
		m.mg.Up()
	} else {
		m.mg.Down()
	}
	year, month := m.mg.Cursor()
	day := m.sel.Day
	if max := ethiopic.DaysInMonth(year, month); day > max {
		day = max
	}
	m.sel = ethiopic.Date{Year: year, Month: month, Day: day}
	return m
}

func (m browseModel) toggleLanguage() browseModel {
	if m.lang == ethiopic.Amharic {
		m.lang = ethiopic.English
	} else {
		m.lang = ethiopic.Amharic
	}
	_ = m.mg.SetLanguage(m.lang)
	_ = m.info.SetLanguage(m.lang)
	return m
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l":
			return m.move(1), nil
		case "left", "h":
			return m.move(-1), nil
		case "down", "j":
			return m.move(7), nil
		case "up", "k":
			return m.move(-7), nil
		case "n", "pgdown":
			return m.jumpMonth(true), nil
		case "p", "pgup":
			return m.jumpMonth(false), nil
		case "t":
			m.sel = ethiopic.FromTime(now())
			m.mg.SetDate(m.sel.Month, m.sel.Year)
			return m, nil
		case "g":
			m.mg.ToggleGeez()
			return m, nil
		case "L":
			return m.toggleLanguage(), nil
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	month := m.mg.Generate()
	help := "←→↑↓ move · n/p month · t today · g geez · L language · q quit"
	return renderMonthWith(month, m.sel, true) + "\n\n" +
		renderDay(m.info.Information(m.sel), true) + "\n" +
		mutedStyle.Render(help) + "\n"
}

func runBrowse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	lang, _ := cmd.Flags().GetString("lang")
	mode, _ := cmd.Flags().GetString("mode")

	cfg := gridConfig(loadSettings(), 0, 0, lang, mode, false)
	cfg.Now = now

	mg, err := grid.NewMonthGrid(cfg)
	if err != nil {
		return err
	}
	info, err := grid.NewDayInfo(cfg)
	if err != nil {
		return err
	}

	// Non-TTY fallback: print the current month statically.
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		_, err := fmt.Fprintln(out, renderMonth(mg.Generate(), false))
		return err
	}

	m := browseModel{
		mg:   mg,
		info: info,
		sel:  ethiopic.FromTime(now()),
		lang: cfg.Lang,
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}
