package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/dagimg-dot/EthCal/internal/grid"
	"github.com/dagimg-dot/EthCal/internal/holiday"
	"github.com/dagimg-dot/EthCal/internal/settings"
)

// now is the command clock; tests swap it for a fixed instant.
var now = time.Now

// resolveDate parses a date expression relative to now.
// Supports: "today", "tomorrow", "yesterday", an Ethiopian "YYYY-MM-DD",
// and a Gregorian date behind a "gc:" prefix.
func resolveDate(s string, now time.Time) (ethiopic.Date, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch s {
	case "", "today":
		return ethiopic.FromTime(now), nil
	case "tomorrow":
		return ethiopic.FromTime(now).AddDays(1), nil
	case "yesterday":
		return ethiopic.FromTime(now).AddDays(-1), nil
	}

	if g, ok := strings.CutPrefix(s, "gc:"); ok {
		t, err := time.Parse("2006-01-02", g)
		if err != nil {
			return ethiopic.Date{}, fmt.Errorf("unrecognized gregorian date %q", g)
		}
		return ethiopic.FromTime(t), nil
	}

	return ethiopic.Parse(s)
}

// loadSettings reads the persisted preferences, falling back to defaults
// when no config directory can be determined.
func loadSettings() settings.Settings {
	dir, err := settings.Dir()
	if err != nil {
		return settings.Default()
	}
	s, err := settings.Load(dir)
	if err != nil {
		logger.Warn("ignoring unreadable settings: " + err.Error())
		return settings.Default()
	}
	return s
}

// gridConfig assembles a grid.Config from persisted settings overlaid with
// command flags. Zero year/month means the current month.
func gridConfig(s settings.Settings, year, month int, lang, mode string, geez bool) grid.Config {
	cfg := grid.Config{
		Year:      year,
		Month:     month,
		WeekStart: s.WeekStart,
		UseGeez:   s.UseGeez || geez,
		Lang:      ethiopic.Language(s.Language),
		Mode:      holiday.Mode(s.Mode),
		Logger:    logger,
	}
	if lang != "" {
		cfg.Lang = ethiopic.Language(lang)
	}
	if mode != "" {
		cfg.Mode = holiday.Mode(mode)
	}
	return cfg
}
