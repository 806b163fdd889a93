package holiday

import (
	"fmt"
	"time"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
	"github.com/teambition/rrule-go"
)

// FastKey identifies one of the canonical Orthodox fasting periods.
type FastKey string

const (
	AbiyTsom      FastKey = "abiyTsom"      // Great Lent
	Nineveh       FastKey = "nineveh"       // Fast of Nineveh
	TsomeNebiyat  FastKey = "tsomeNebiyat"  // Fast of the Prophets (Advent)
	TsomeHawaryat FastKey = "tsomeHawaryat" // Apostles' Fast
	Filseta       FastKey = "filseta"       // Fast of the Assumption
	TsomeDihnet   FastKey = "tsomeDihnet"   // weekly Wednesday and Friday fast
)

// FastKeys returns all known fasting-period keys in canonical order.
func FastKeys() []FastKey {
	return []FastKey{AbiyTsom, Nineveh, TsomeNebiyat, TsomeHawaryat, Filseta, TsomeDihnet}
}

// Range is an inclusive span of Ethiopian dates.
type Range struct {
	Start ethiopic.Date
	End   ethiopic.Date
}

// Contains reports whether d falls inside the range, inclusive of both ends.
func (r Range) Contains(d ethiopic.Date) bool {
	o := d.Ordinal()
	return o >= r.Start.Ordinal() && o <= r.End.Ordinal()
}

// Days returns the length of the range in days, never below 1.
func (r Range) Days() int {
	n := ethiopic.DiffDays(r.End, r.Start) + 1
	if n < 1 {
		n = 1
	}
	return n
}

// FastInfo describes one fasting period for a specific Ethiopian year.
// A nil Period marks the weekly recurring fast.
type FastInfo struct {
	Key         FastKey
	Name        string
	Description string
	Period      *Range
}

type fastDef struct {
	names  map[ethiopic.Language]string
	descs  map[ethiopic.Language]string
	period func(year int) (*Range, error)
}

var fastDefs = map[FastKey]fastDef{
	AbiyTsom: {
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ዓቢይ ጾም",
			ethiopic.English: "Great Lent",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የ፶፭ ቀናት የትንሣኤ ጾም",
			ethiopic.English: "The 55-day fast leading to Fasika",
		},
		period: easterRange(-55, -1),
	},
	Nineveh: {
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ጾመ ነነዌ",
			ethiopic.English: "Fast of Nineveh",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የሦስት ቀናት ጾም",
			ethiopic.English: "Three-day fast two weeks before Lent",
		},
		period: easterRange(-69, -67),
	},
	TsomeNebiyat: {
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ጾመ ነቢያት",
			ethiopic.English: "Fast of the Prophets",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የገና ጾም",
			ethiopic.English: "Advent fast ending on Christmas eve",
		},
		period: func(year int) (*Range, error) {
			return &Range{
				Start: ethiopic.Date{Year: year, Month: 3, Day: 15},
				End:   ethiopic.Date{Year: year, Month: 4, Day: 28},
			}, nil
		},
	},
	TsomeHawaryat: {
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ጾመ ሐዋርያት",
			ethiopic.English: "Apostles' Fast",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "ከጰራቅሊጦስ በኋላ የሚጀምር ጾም",
			ethiopic.English: "Begins the day after Pentecost, ends Hamle 4",
		},
		period: func(year int) (*Range, error) {
			e, err := easter(year)
			if err != nil {
				return nil, err
			}
			return &Range{
				Start: e.AddDays(50),
				End:   ethiopic.Date{Year: year, Month: 11, Day: 4},
			}, nil
		},
	},
	Filseta: {
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ጾመ ፍልሰታ",
			ethiopic.English: "Fast of the Assumption",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የእመቤታችን ፍልሰታ ጾም",
			ethiopic.English: "Nehase 1 through 15, before the Assumption feast",
		},
		period: func(year int) (*Range, error) {
			return &Range{
				Start: ethiopic.Date{Year: year, Month: 12, Day: 1},
				End:   ethiopic.Date{Year: year, Month: 12, Day: 15},
			}, nil
		},
	},
	TsomeDihnet: {
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ጾመ ድኅነት",
			ethiopic.English: "Fast of Salvation",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የረቡዕ እና ዓርብ ሳምንታዊ ጾም",
			ethiopic.English: "Weekly fast on Wednesdays and Fridays",
		},
		period: func(int) (*Range, error) { return nil, nil },
	},
}

func easterRange(startOfs, endOfs int) func(int) (*Range, error) {
	return func(year int) (*Range, error) {
		e, err := easter(year)
		if err != nil {
			return nil, err
		}
		return &Range{Start: e.AddDays(startOfs), End: e.AddDays(endOfs)}, nil
	}
}

// Fasting returns the localized fasting info for a key and Ethiopian year.
func Fasting(key FastKey, year int, lang ethiopic.Language) (FastInfo, error) {
	d, ok := fastDefs[key]
	if !ok {
		return FastInfo{}, fmt.Errorf("unknown fasting period %q", key)
	}
	if lang == "" {
		lang = ethiopic.Amharic
	}
	period, err := d.period(year)
	if err != nil {
		return FastInfo{}, fmt.Errorf("%s: %w", key, err)
	}
	return FastInfo{
		Key:         key,
		Name:        d.names[lang],
		Description: d.descs[lang],
		Period:      period,
	}, nil
}

// WeeklyFastBetween expands the Wednesday/Friday rule into the concrete
// fast days between from and to, inclusive.
func WeeklyFastBetween(from, to time.Time) ([]time.Time, error) {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.WE, rrule.FR},
		Dtstart:   from,
	})
	if err != nil {
		return nil, err
	}
	return r.Between(from, to, true), nil
}
