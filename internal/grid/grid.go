// Package grid builds display-ready view models of the Ethiopian calendar:
// a padded month grid of day cells and a per-day information aggregate. All
// results are produced fresh per call and owned by the caller; the services
// hold only a month cursor and rendering configuration.
package grid

import (
	"fmt"
	"time"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/dagimg-dot/EthCal/internal/holiday"
	"go.uber.org/zap"
)

// Config carries the construction parameters for a MonthGrid.
// Year and Month must be provided together; both zero means "current
// month". A zero Lang means Amharic and a zero Mode means all holidays.
type Config struct {
	Year      int
	Month     int
	WeekStart int // 0=Sunday .. 6=Saturday, first column of the grid
	UseGeez   bool
	Lang      ethiopic.Language
	Mode      holiday.Mode
	Filter    []holiday.Tag

	Now    func() time.Time // test clock, defaults to time.Now
	Logger *zap.Logger
}

// DayCell is one populated grid slot. Nil slots in Month.Cells are the
// left padding before day 1.
type DayCell struct {
	Date      ethiopic.Date
	Gregorian time.Time
	Weekday   int    // 0=Sunday .. 6=Saturday
	Label     string // day number, Geez-formatted when configured
	Today     bool
	Holidays  []holiday.Holiday
	Tags      []holiday.Tag
}

// Month is the view model for one Ethiopian month.
type Month struct {
	Year      int
	Month     int
	YearLabel string
	MonthName string
	Headers   [7]string
	Cells     []*DayCell
}

// MonthGrid produces Month view models for a movable month cursor.
// Navigation and generation are separate steps: Up, Down, Reset and
// SetDate move the cursor, Generate renders it.
type MonthGrid struct {
	year      int
	month     int
	weekStart int
	useGeez   bool
	lang      ethiopic.Language
	mode      holiday.Mode
	filter    []holiday.Tag
	now       func() time.Time
	log       *zap.Logger
}

// NewMonthGrid validates the configuration and positions the cursor.
// Invalid configuration is a programming error and fails immediately.
func NewMonthGrid(cfg Config) (*MonthGrid, error) {
	if (cfg.Year == 0) != (cfg.Month == 0) {
		return nil, fmt.Errorf("year and month must be provided together")
	}
	if cfg.WeekStart < 0 || cfg.WeekStart > 6 {
		return nil, fmt.Errorf("week start %d out of range [0,6]", cfg.WeekStart)
	}

	lang := cfg.Lang
	if lang == "" {
		lang = ethiopic.Amharic
	} else if _, err := ethiopic.ParseLanguage(string(lang)); err != nil {
		return nil, err
	}

	mode := cfg.Mode
	if mode == "" {
		mode = holiday.ModeAll
	} else if _, err := holiday.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	g := &MonthGrid{
		weekStart: cfg.WeekStart,
		useGeez:   cfg.UseGeez,
		lang:      lang,
		mode:      mode,
		filter:    cfg.Filter,
		now:       now,
		log:       log,
	}

	if cfg.Year == 0 {
		g.Reset()
	} else {
		if cfg.Month < 1 || cfg.Month > 13 {
			return nil, fmt.Errorf("month %d out of range [1,13]", cfg.Month)
		}
		g.year, g.month = cfg.Year, cfg.Month
	}
	return g, nil
}

// Cursor returns the current year and month.
func (g *MonthGrid) Cursor() (year, month int) {
	return g.year, g.month
}

// Up advances the cursor one month, wrapping 13 to 1 of the next year.
func (g *MonthGrid) Up() {
	g.month++
	if g.month > 13 {
		g.month = 1
		g.year++
	}
}

// Down retreats the cursor one month, wrapping 1 to 13 of the previous year.
func (g *MonthGrid) Down() {
	g.month--
	if g.month < 1 {
		g.month = 13
		g.year--
	}
}

// Reset moves the cursor to the current Ethiopian month.
func (g *MonthGrid) Reset() {
	t := ethiopic.FromTime(g.now())
	g.year, g.month = t.Year, t.Month
}

// SetDate points the cursor at an explicit month and year.
func (g *MonthGrid) SetDate(month, year int) {
	g.month, g.year = month, year
}

// SetLanguage switches the localization for subsequent Generate calls.
func (g *MonthGrid) SetLanguage(lang ethiopic.Language) error {
	parsed, err := ethiopic.ParseLanguage(string(lang))
	if err != nil {
		return err
	}
	g.lang = parsed
	return nil
}

// ToggleGeez flips Geez numeral rendering and returns the new state.
func (g *MonthGrid) ToggleGeez() bool {
	g.useGeez = !g.useGeez
	return g.useGeez
}

// Generate renders the month under the cursor. A failed holiday lookup is
// logged and degrades to a holiday-free grid rather than an error.
func (g *MonthGrid) Generate() *Month {
	days := ethiopic.DaysInMonth(g.year, g.month)
	today := ethiopic.FromTime(g.now())

	hols, err := holiday.InMonth(g.year, g.month, holiday.Options{
		Lang:   g.lang,
		Mode:   g.mode,
		Filter: g.filter,
	})
	if err != nil {
		g.log.Warn("holiday lookup incomplete",
			zap.Int("year", g.year),
			zap.Int("month", g.month),
			zap.Error(err))
	}
	holsByDay := make(map[int][]holiday.Holiday, len(hols))
	for _, h := range hols {
		holsByDay[h.Date.Day] = append(holsByDay[h.Date.Day], h)
	}

	first := ethiopic.Date{Year: g.year, Month: g.month, Day: 1}
	padding := (int(first.Weekday()) - g.weekStart + 7) % 7

	cells := make([]*DayCell, 0, padding+days)
	for i := 0; i < padding; i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= days; day++ {
		d := ethiopic.Date{Year: g.year, Month: g.month, Day: day}
		dayHols := holsByDay[day]
		if dayHols == nil {
			dayHols = []holiday.Holiday{}
		}
		cells = append(cells, &DayCell{
			Date:      d,
			Gregorian: d.Time(),
			Weekday:   int(d.Weekday()),
			Label:     ethiopic.FormatNumber(day, g.useGeez),
			Today:     d.Equal(today),
			Holidays:  dayHols,
			Tags:      collectTags(dayHols),
		})
	}

	names := ethiopic.WeekdayNames(g.lang)
	var headers [7]string
	for i := range headers {
		headers[i] = names[(g.weekStart+i)%7]
	}

	return &Month{
		Year:      g.year,
		Month:     g.month,
		YearLabel: ethiopic.FormatNumber(g.year, g.useGeez),
		MonthName: ethiopic.MonthName(g.month, g.lang),
		Headers:   headers,
		Cells:     cells,
	}
}

func collectTags(hols []holiday.Holiday) []holiday.Tag {
	tags := []holiday.Tag{}
	seen := make(map[holiday.Tag]bool)
	for _, h := range hols {
		for _, t := range h.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}
