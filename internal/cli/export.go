package cli

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/spf13/cobra"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/dagimg-dot/EthCal/internal/grid"
	"github.com/dagimg-dot/EthCal/internal/holiday"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export a calendar as a PDF",
	Args:  cobra.NoArgs,
	IntFlags: []IntFlag{
		{Name: "year", Usage: "Ethiopian year (default: current)"},
		{Name: "month", Usage: "single month 1-13 (default: whole year)"},
	},
	StrFlags: []StringFlag{
		{Name: "output", Usage: "output file path", Default: "calendar.pdf"},
		{Name: "mode", Usage: "holiday mode (all, public, christian, muslim)"},
	},
	RunE: runExport,
}.Build()

var (
	pdfHeaderColor  = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor   = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor    = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfHolidayColor = props.Color{Red: 200, Green: 40, Blue: 40}
)

func runExport(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	output, _ := cmd.Flags().GetString("output")
	modeFlag, _ := cmd.Flags().GetString("mode")

	if year == 0 {
		year = ethiopic.FromTime(now()).Year
	}
	mode := holiday.Mode(loadSettings().Mode)
	if modeFlag != "" {
		var err error
		if mode, err = holiday.ParseMode(modeFlag); err != nil {
			return err
		}
	}

	months := []int{month}
	if month == 0 {
		months = months[:0]
		for m := 1; m <= 13; m++ {
			months = append(months, m)
		}
	}

	// Built-in PDF fonts cannot render Ethiopic script, so the document
	// always uses the English names and Western numerals.
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithMaxGridSize(14).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	doc := maroto.New(cfg)

	for i, m := range months {
		g, err := grid.NewMonthGrid(grid.Config{
			Year:   year,
			Month:  m,
			Lang:   ethiopic.English,
			Mode:   mode,
			Now:    now,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("building month grid: %w", err)
		}
		if i > 0 {
			doc.AddRow(10) // spacer between months
		}
		addMonthSection(doc, g.Generate())
	}

	pdf, err := doc.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	if err := pdf.Save(output); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
	return nil
}

// addMonthSection lays out one month: a title, the weekday header, the week
// rows and a holiday legend.
func addMonthSection(doc core.Maroto, m *grid.Month) {
	doc.AddRow(12,
		text.NewCol(14, fmt.Sprintf("%s %s", m.MonthName, m.YearLabel), props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	doc.AddRow(4, line.NewCol(14, props.Line{Color: &pdfLineColor}))

	headerCols := make([]core.Col, 7)
	for i, h := range m.Headers {
		headerCols[i] = text.NewCol(2, h, props.Text{
			Style: fontstyle.Bold,
			Size:  9,
			Align: align.Center,
			Color: &pdfMutedColor,
		})
	}
	doc.AddRow(8, headerCols...)

	for week := 0; week < len(m.Cells); week += 7 {
		cols := make([]core.Col, 0, 7)
		for i := week; i < week+7; i++ {
			if i >= len(m.Cells) || m.Cells[i] == nil {
				cols = append(cols, text.NewCol(2, ""))
				continue
			}
			cell := m.Cells[i]
			color := &pdfHeaderColor
			style := fontstyle.Normal
			if len(cell.Holidays) > 0 {
				color = &pdfHolidayColor
				style = fontstyle.Bold
			}
			cols = append(cols, text.NewCol(2, cell.Label, props.Text{
				Size:  11,
				Style: style,
				Align: align.Center,
				Color: color,
			}))
		}
		doc.AddRow(10, cols...)
	}

	legend := false
	for _, cell := range m.Cells {
		if cell == nil || len(cell.Holidays) == 0 {
			continue
		}
		if !legend {
			doc.AddRow(4, line.NewCol(14, props.Line{Color: &pdfLineColor}))
			legend = true
		}
		for _, h := range cell.Holidays {
			doc.AddRow(6,
				text.NewCol(2, cell.Label, props.Text{
					Size:  9,
					Align: align.Center,
					Color: &pdfHolidayColor,
				}),
				text.NewCol(12, h.Name, props.Text{
					Size:  9,
					Color: &pdfHeaderColor,
				}),
			)
		}
	}
}
