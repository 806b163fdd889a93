// Package holiday provides the Ethiopian holiday table and the Orthodox
// fasting-period calculator. Fixed feasts are defined on Ethiopian dates,
// movable Christian feasts derive from the Julian computus, and Muslim
// holidays from the tabular Hijri calendar.
package holiday

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dagimg-dot/EthCal/internal/ethiopic"
)

// Tag classifies a holiday.
type Tag string

const (
	TagPublic    Tag = "public"
	TagReligious Tag = "religious"
	TagCultural  Tag = "cultural"
	TagChristian Tag = "christian"
	TagMuslim    Tag = "muslim"
)

// Holiday is a single observed day, localized at lookup time.
type Holiday struct {
	Key         string
	Name        string
	Description string
	Tags        []Tag
	Date        ethiopic.Date
}

// HasTag reports whether the holiday carries the given tag.
func (h Holiday) HasTag(t Tag) bool {
	for _, tag := range h.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// Mode is a coarse audience filter over the holiday table.
type Mode string

const (
	ModeAll       Mode = "all"
	ModePublic    Mode = "public"
	ModeChristian Mode = "christian"
	ModeMuslim    Mode = "muslim"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAll, ModePublic, ModeChristian, ModeMuslim:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want all, public, christian or muslim)", s)
}

// Options control holiday lookups. Zero values mean Amharic, ModeAll and
// no tag filter.
type Options struct {
	Lang   ethiopic.Language
	Mode   Mode
	Filter []Tag
}

type def struct {
	key   string
	tags  []Tag
	names map[ethiopic.Language]string
	descs map[ethiopic.Language]string
	dates func(year int) ([]ethiopic.Date, error)
}

// fixed pins a holiday to an Ethiopian month and day.
func fixed(month, day int) func(int) ([]ethiopic.Date, error) {
	return func(year int) ([]ethiopic.Date, error) {
		return []ethiopic.Date{{Year: year, Month: month, Day: day}}, nil
	}
}

// fixedJanuaryFeast pins a feast that tracks a fixed Gregorian January
// date: it falls one Ethiopian day earlier in the year after a leap year,
// because Pagume 6 shifts the new year without moving January.
func fixedJanuaryFeast(month, day int) func(int) ([]ethiopic.Date, error) {
	return func(year int) ([]ethiopic.Date, error) {
		if ethiopic.IsLeapYear(year - 1) {
			return []ethiopic.Date{{Year: year, Month: month, Day: day - 1}}, nil
		}
		return []ethiopic.Date{{Year: year, Month: month, Day: day}}, nil
	}
}

// easterOffset places a feast a fixed number of days from Fasika.
func easterOffset(days int) func(int) ([]ethiopic.Date, error) {
	return func(year int) ([]ethiopic.Date, error) {
		e, err := easter(year)
		if err != nil {
			return nil, err
		}
		return []ethiopic.Date{e.AddDays(days)}, nil
	}
}

// hijri places a holiday on every occurrence of a Hijri month/day within
// the Ethiopian year.
func hijri(month, day int) func(int) ([]ethiopic.Date, error) {
	return func(year int) ([]ethiopic.Date, error) {
		return hijriInEthYear(year, month, day), nil
	}
}

var defs = []def{
	{
		key:  "enkutatash",
		tags: []Tag{TagPublic, TagCultural},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "እንቁጣጣሽ",
			ethiopic.English: "Enkutatash (New Year)",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የኢትዮጵያ አዲስ ዓመት መጀመሪያ ቀን",
			ethiopic.English: "First day of the Ethiopian year",
		},
		dates: fixed(1, 1),
	},
	{
		key:  "meskel",
		tags: []Tag{TagPublic, TagReligious, TagChristian},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "መስቀል",
			ethiopic.English: "Meskel",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የመስቀል ደመራ በዓል",
			ethiopic.English: "Finding of the True Cross",
		},
		dates: fixed(1, 17),
	},
	{
		key:  "gena",
		tags: []Tag{TagPublic, TagReligious, TagChristian},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ገና",
			ethiopic.English: "Gena (Christmas)",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የኢየሱስ ክርስቶስ ልደት በዓል",
			ethiopic.English: "Ethiopian Christmas, January 7",
		},
		dates: fixedJanuaryFeast(4, 29),
	},
	{
		key:  "timket",
		tags: []Tag{TagPublic, TagReligious, TagChristian},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ጥምቀት",
			ethiopic.English: "Timket (Epiphany)",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የጌታችን ጥምቀት በዓል",
			ethiopic.English: "Baptism of Christ, January 19",
		},
		dates: fixedJanuaryFeast(5, 11),
	},
	{
		key:  "adwa",
		tags: []Tag{TagPublic, TagCultural},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "የዓድዋ ድል በዓል",
			ethiopic.English: "Adwa Victory Day",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የዓድዋ ጦርነት ድል መታሰቢያ",
			ethiopic.English: "Victory at the Battle of Adwa, 1896",
		},
		dates: fixed(6, 23),
	},
	{
		key:  "siklet",
		tags: []Tag{TagPublic, TagReligious, TagChristian},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ስቅለት",
			ethiopic.English: "Siklet (Good Friday)",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የጌታችን ስቅለት መታሰቢያ",
			ethiopic.English: "Crucifixion of Christ, two days before Fasika",
		},
		dates: easterOffset(-2),
	},
	{
		key:  "fasika",
		tags: []Tag{TagPublic, TagReligious, TagChristian},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ፋሲካ",
			ethiopic.English: "Fasika (Easter)",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የጌታችን ትንሣኤ በዓል",
			ethiopic.English: "Resurrection Sunday by the Julian computus",
		},
		dates: easterOffset(0),
	},
	{
		key:  "labour",
		tags: []Tag{TagPublic},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "የላብአደሮች ቀን",
			ethiopic.English: "International Workers' Day",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "ዓለም አቀፍ የሠራተኞች ቀን",
			ethiopic.English: "Labour Day, May 1",
		},
		dates: fixed(8, 23),
	},
	{
		key:  "patriots",
		tags: []Tag{TagPublic, TagCultural},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "የአርበኞች ቀን",
			ethiopic.English: "Patriots' Victory Day",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የአርበኞች የድል መታሰቢያ ቀን",
			ethiopic.English: "Commemorates the end of the occupation, May 5",
		},
		dates: fixed(8, 27),
	},
	{
		key:  "ginbot20",
		tags: []Tag{TagPublic, TagCultural},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ደርግ የወደቀበት ቀን",
			ethiopic.English: "Downfall of the Derg",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የደርግ ሥርዓት የወደቀበት ቀን",
			ethiopic.English: "Fall of the Derg regime, May 28, 1991",
		},
		dates: fixed(9, 20),
	},
	{
		key:  "eidFitr",
		tags: []Tag{TagPublic, TagReligious, TagMuslim},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ዒድ አል ፈጥር",
			ethiopic.English: "Eid al-Fitr",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የረመዳን ጾም ፍቺ በዓል",
			ethiopic.English: "End of Ramadan, 1 Shawwal",
		},
		dates: hijri(10, 1),
	},
	{
		key:  "eidAdha",
		tags: []Tag{TagPublic, TagReligious, TagMuslim},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "ዒድ አል አድሃ",
			ethiopic.English: "Eid al-Adha (Arefa)",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የመስዋዕት በዓል",
			ethiopic.English: "Feast of the Sacrifice, 10 Dhu al-Hijjah",
		},
		dates: hijri(12, 10),
	},
	{
		key:  "mawlid",
		tags: []Tag{TagPublic, TagReligious, TagMuslim},
		names: map[ethiopic.Language]string{
			ethiopic.Amharic: "መውሊድ",
			ethiopic.English: "Mawlid",
		},
		descs: map[ethiopic.Language]string{
			ethiopic.Amharic: "የነቢዩ መሐመድ ልደት በዓል",
			ethiopic.English: "Birth of the Prophet, 12 Rabi' al-Awwal",
		},
		dates: hijri(3, 12),
	},
}

func (o Options) normalized() Options {
	if o.Lang == "" {
		o.Lang = ethiopic.Amharic
	}
	if o.Mode == "" {
		o.Mode = ModeAll
	}
	return o
}

// InYear returns all holidays of an Ethiopian year matching the options,
// sorted by date. When a movable feast cannot be computed the remaining
// holidays are still returned alongside a joined error.
func InYear(year int, opts Options) ([]Holiday, error) {
	opts = opts.normalized()

	out := make([]Holiday, 0, len(defs))
	var errs []error
	for _, d := range defs {
		if !d.matches(opts) {
			continue
		}
		dates, err := d.dates(year)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.key, err))
			continue
		}
		for _, date := range dates {
			out = append(out, Holiday{
				Key:         d.key,
				Name:        d.names[opts.Lang],
				Description: d.descs[opts.Lang],
				Tags:        d.tags,
				Date:        date,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, errors.Join(errs...)
}

// InMonth returns the holidays of a single Ethiopian month, sorted by day.
// A month with no holidays yields an empty, non-nil slice.
func InMonth(year, month int, opts Options) ([]Holiday, error) {
	all, err := InYear(year, opts)
	out := make([]Holiday, 0, len(all))
	for _, h := range all {
		if h.Date.Month == month {
			out = append(out, h)
		}
	}
	return out, err
}

func (d def) matches(opts Options) bool {
	h := Holiday{Tags: d.tags}
	switch opts.Mode {
	case ModePublic:
		if !h.HasTag(TagPublic) {
			return false
		}
	case ModeChristian:
		if h.HasTag(TagMuslim) {
			return false
		}
	case ModeMuslim:
		if h.HasTag(TagChristian) {
			return false
		}
	}
	if len(opts.Filter) == 0 {
		return true
	}
	for _, t := range opts.Filter {
		if h.HasTag(t) {
			return true
		}
	}
	return false
}
