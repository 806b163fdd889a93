package ethiopic

import (
	"fmt"
	"time"
)

// Language selects the localization used for month, weekday and event names.
type Language string

const (
	Amharic Language = "amharic"
	English Language = "english"
)

// ParseLanguage validates a language name. Unknown values are an error,
// never silently defaulted.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case Amharic, English:
		return Language(s), nil
	}
	return "", fmt.Errorf("unknown language %q (want amharic or english)", s)
}

var monthNames = map[Language][13]string{
	Amharic: {
		"መስከረም", "ጥቅምት", "ኅዳር", "ታኅሣሥ", "ጥር", "የካቲት",
		"መጋቢት", "ሚያዝያ", "ግንቦት", "ሰኔ", "ሐምሌ", "ነሐሴ", "ጳጉሜ",
	},
	English: {
		"Meskerem", "Tikimt", "Hidar", "Tahsas", "Tir", "Yekatit",
		"Megabit", "Miyazya", "Ginbot", "Sene", "Hamle", "Nehase", "Pagume",
	},
}

// Sunday-first, matching time.Weekday indexing.
var weekdayNames = map[Language][7]string{
	Amharic: {"እሑድ", "ሰኞ", "ማክሰኞ", "ረቡዕ", "ሐሙስ", "ዓርብ", "ቅዳሜ"},
	English: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

// MonthName returns the localized name of an Ethiopian month (1..13).
func MonthName(month int, lang Language) string {
	if month < 1 || month > 13 {
		return ""
	}
	return monthNames[lang][month-1]
}

// WeekdayName returns the localized name for a weekday.
func WeekdayName(wd time.Weekday, lang Language) string {
	return weekdayNames[lang][int(wd)]
}

// WeekdayNames returns the localized weekday names, Sunday first.
func WeekdayNames(lang Language) [7]string {
	return weekdayNames[lang]
}
