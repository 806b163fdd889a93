package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/dagimg-dot/EthCal/internal/grid"
	"github.com/dagimg-dot/EthCal/internal/holiday"
)

const cellWidth = 4

// colorEnabled reports whether stdout is a terminal. Piped output gets
// plain text.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func styled(color bool, st lipgloss.Style, s string) string {
	if !color {
		return s
	}
	return st.Render(s)
}

func padLeft(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func truncRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

// renderMonth lays out a month as a 7-column calendar with a holiday
// legend underneath.
func renderMonth(m *grid.Month, color bool) string {
	return renderMonthWith(m, ethiopic.Date{}, color)
}

// renderMonthWith additionally highlights one selected date; the zero
// Date means no selection.
func renderMonthWith(m *grid.Month, selected ethiopic.Date, color bool) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %s", m.MonthName, m.YearLabel)
	b.WriteString(styled(color, titleStyle, title))
	b.WriteString("\n")

	for _, h := range m.Headers {
		b.WriteString(padLeft(truncRunes(h, 3), cellWidth))
	}
	b.WriteString("\n")

	for i, cell := range m.Cells {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		}
		if cell == nil {
			b.WriteString(strings.Repeat(" ", cellWidth))
			continue
		}
		b.WriteString(padLeft(styled(color, cellStyle(cell, cell.Date.Equal(selected)), cell.Label), cellWidth))
	}
	b.WriteString("\n")

	legend := holidayLegend(m, color)
	if legend != "" {
		b.WriteString("\n")
		b.WriteString(legend)
	}
	return b.String()
}

// cellStyle picks one style per cell: the selection beats today, today
// beats holidays, holidays beat the weekend tint.
func cellStyle(c *grid.DayCell, selected bool) lipgloss.Style {
	switch {
	case selected:
		return selectedStyle
	case c.Today:
		return todayStyle
	case len(c.Holidays) > 0:
		return holidayStyle
	case c.Weekday == 0 || c.Weekday == 6:
		return weekendStyle
	default:
		return lipgloss.NewStyle()
	}
}

func holidayLegend(m *grid.Month, color bool) string {
	var lines []string
	for _, cell := range m.Cells {
		if cell == nil {
			continue
		}
		for _, h := range cell.Holidays {
			line := fmt.Sprintf("%s %s", padLeft(cell.Label, 3), h.Name)
			lines = append(lines, styled(color, holidayStyle, line))
		}
	}
	return strings.Join(lines, "\n")
}

// renderDay formats the full aggregate for one date: header, holidays,
// then fasting memberships with their progress counters.
func renderDay(info grid.Information, color bool) string {
	var b strings.Builder

	header := fmt.Sprintf("%s, %s", info.WeekdayName, info.Date)
	if info.Today {
		header += " (today)"
	}
	b.WriteString(styled(color, titleStyle, header))
	b.WriteString("\n")
	b.WriteString(styled(color, mutedStyle, info.Gregorian.Format("Monday, 2 January 2006")))
	b.WriteString("\n")

	if len(info.Holidays) == 0 && len(info.Fasts) == 0 {
		b.WriteString(styled(color, mutedStyle, "no holidays or fasts"))
		b.WriteString("\n")
		return b.String()
	}

	for _, h := range info.Holidays {
		b.WriteString(styled(color, holidayStyle, "• "+h.Name))
		b.WriteString(styled(color, mutedStyle, " ["+tagList(h.Tags)+"]"))
		b.WriteString("\n")
		if h.Description != "" {
			b.WriteString("  " + styled(color, mutedStyle, h.Description))
			b.WriteString("\n")
		}
	}
	for _, f := range info.Fasts {
		b.WriteString(styled(color, fastStyle, "✝ "+f.Name))
		if !f.Weekly {
			b.WriteString(styled(color, mutedStyle, fmt.Sprintf(" (day %d of %d)", f.CurrentDay, f.TotalDays)))
		}
		b.WriteString("\n")
		if f.Description != "" {
			b.WriteString("  " + styled(color, mutedStyle, f.Description))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func tagList(tags []holiday.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
