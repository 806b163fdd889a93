package grid

import (
	"time"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/dagimg-dot/EthCal/internal/holiday"
	"go.uber.org/zap"
)

// DayInfo aggregates holidays and fasting-period membership for single
// dates into display-ready structures.
type DayInfo struct {
	lang   ethiopic.Language
	mode   holiday.Mode
	filter []holiday.Tag
	now    func() time.Time
	log    *zap.Logger
}

// NewDayInfo builds a DayInfo service from the same configuration shape as
// the month grid; Year/Month/WeekStart are ignored here.
func NewDayInfo(cfg Config) (*DayInfo, error) {
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
	return &DayInfo{lang: lang, mode: mode, filter: cfg.Filter, now: now, log: log}, nil
}

// SetLanguage switches localization for subsequent calls. Previously
// returned values keep their old language.
func (s *DayInfo) SetLanguage(lang ethiopic.Language) error {
	parsed, err := ethiopic.ParseLanguage(string(lang))
	if err != nil {
		return err
	}
	s.lang = parsed
	return nil
}

// FastContext describes one fasting period as it applies to a single date.
type FastContext struct {
	Key         holiday.FastKey
	Name        string
	Description string
	CurrentDay  int
	TotalDays   int
	Weekly      bool
	Period      *holiday.Range
}

// Information is the full aggregate for one date.
type Information struct {
	Date        ethiopic.Date
	WeekdayName string
	Gregorian   time.Time
	Today       bool
	Holidays    []holiday.Holiday
	Fasts       []FastContext
}

// Information collects weekday, Gregorian equivalent, holidays and fasting
// memberships for a date. Either lookup failing degrades to an empty
// category for that date; it never aborts the aggregate.
func (s *DayInfo) Information(d ethiopic.Date) Information {
	return Information{
		Date:        d,
		WeekdayName: ethiopic.WeekdayName(d.Weekday(), s.lang),
		Gregorian:   d.Time(),
		Today:       d.Equal(ethiopic.FromTime(s.now())),
		Holidays:    s.holidaysOn(d),
		Fasts:       s.FastingContext(d),
	}
}

func (s *DayInfo) holidaysOn(d ethiopic.Date) []holiday.Holiday {
	monthHols, err := holiday.InMonth(d.Year, d.Month, holiday.Options{Lang: s.lang, Mode: s.mode, Filter: s.filter})
	if err != nil {
		s.log.Warn("holiday lookup incomplete", zap.Stringer("date", d), zap.Error(err))
	}
	out := []holiday.Holiday{}
	for _, h := range monthHols {
		if h.Date.Equal(d) {
			out = append(out, h)
		}
	}
	return out
}

// FastingContext returns every fasting period the date belongs to. Period
// fasts are matched by inclusive range membership; the weekly fast applies
// on Wednesdays and Fridays.
func (s *DayInfo) FastingContext(d ethiopic.Date) []FastContext {
	out := []FastContext{}
	for _, key := range holiday.FastKeys() {
		info, err := holiday.Fasting(key, d.Year, s.lang)
		if err != nil {
			s.log.Warn("fasting lookup failed", zap.String("fast", string(key)), zap.Error(err))
			continue
		}

		if info.Period == nil {
			wd := d.Weekday()
			if wd != time.Wednesday && wd != time.Friday {
				continue
			}
			out = append(out, FastContext{
				Key:         info.Key,
				Name:        info.Name,
				Description: info.Description,
				CurrentDay:  1,
				TotalDays:   1,
				Weekly:      true,
			})
			continue
		}

		if !info.Period.Contains(d) {
			continue
		}
		out = append(out, FastContext{
			Key:         info.Key,
			Name:        info.Name,
			Description: info.Description,
			CurrentDay:  dayInPeriod(d, info.Period.Start),
			TotalDays:   info.Period.Days(),
			Period:      info.Period,
		})
	}
	return out
}

// dayInPeriod is 1-based and floored at 1 so boundary dates never render
// a zero or negative day counter.
func dayInPeriod(d, start ethiopic.Date) int {
	n := ethiopic.DiffDays(d, start) + 1
	if n < 1 {
		n = 1
	}
	return n
}

// EventType distinguishes the merged event kinds.
type EventType string

const (
	EventHoliday EventType = "holiday"
	EventFasting EventType = "fasting"
)

// Event is one homogeneous entry in a day's event list.
type Event struct {
	Type        EventType
	Title       string
	Description string
	Tags        []holiday.Tag
}

// EventList is the merged, display-ready event list for one date.
type EventList struct {
	Events    []Event
	HasEvents bool
}

// Events merges holidays and fasting memberships for a date, holidays
// first, in lookup order.
func (s *DayInfo) Events(d ethiopic.Date) EventList {
	events := []Event{}
	for _, h := range s.holidaysOn(d) {
		events = append(events, Event{
			Type:        EventHoliday,
			Title:       h.Name,
			Description: h.Description,
			Tags:        h.Tags,
		})
	}
	for _, f := range s.FastingContext(d) {
		events = append(events, Event{
			Type:        EventFasting,
			Title:       f.Name,
			Description: f.Description,
			Tags:        []holiday.Tag{holiday.TagReligious},
		})
	}
	return EventList{Events: events, HasEvents: len(events) > 0}
}
