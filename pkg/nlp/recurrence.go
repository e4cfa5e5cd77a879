package nlp

import (
	"fmt"
	"strconv"
	"strings"
)

// freqEntry maps a recognized Russian frequency word to an RRULE
// frequency and an optional BYDAY list.
type freqEntry struct {
	Freq  string
	ByDay string
}

const (
	byDayWeekdays = "MO,TU,WE,TH,FR"
	byDayWeekend  = "SA,SU"
)

var freqTable = map[string]freqEntry{
	// Basic frequencies
	"день":        {Freq: "DAILY"},
	"дня":         {Freq: "DAILY"},
	"дней":        {Freq: "DAILY"},
	"ежедневно":   {Freq: "DAILY"},
	"неделю":      {Freq: "WEEKLY"},
	"неделя":      {Freq: "WEEKLY"},
	"недели":      {Freq: "WEEKLY"},
	"недель":      {Freq: "WEEKLY"},
	"еженедельно": {Freq: "WEEKLY"},
	"месяц":       {Freq: "MONTHLY"},
	"месяца":      {Freq: "MONTHLY"},
	"месяцев":     {Freq: "MONTHLY"},
	"ежемесячно":  {Freq: "MONTHLY"},
	"год":         {Freq: "YEARLY"},
	"года":        {Freq: "YEARLY"},
	"лет":         {Freq: "YEARLY"},
	"ежегодно":    {Freq: "YEARLY"},

	// Days of week
	"понедельник": {Freq: "WEEKLY", ByDay: "MO"},
	"вторник":     {Freq: "WEEKLY", ByDay: "TU"},
	"среду":       {Freq: "WEEKLY", ByDay: "WE"},
	"среда":       {Freq: "WEEKLY", ByDay: "WE"},
	"четверг":     {Freq: "WEEKLY", ByDay: "TH"},
	"пятницу":     {Freq: "WEEKLY", ByDay: "FR"},
	"пятница":     {Freq: "WEEKLY", ByDay: "FR"},
	"субботу":     {Freq: "WEEKLY", ByDay: "SA"},
	"суббота":     {Freq: "WEEKLY", ByDay: "SA"},
	"воскресенье": {Freq: "WEEKLY", ByDay: "SU"},

	// Groups
	"будни":    {Freq: "WEEKLY", ByDay: byDayWeekdays},
	"будний":   {Freq: "WEEKLY", ByDay: byDayWeekdays},
	"будням":   {Freq: "WEEKLY", ByDay: byDayWeekdays},
	"выходные": {Freq: "WEEKLY", ByDay: byDayWeekend},
	"выходным": {Freq: "WEEKLY", ByDay: byDayWeekend},
}

// byDayPhrases holds the user-facing phrase per single weekday code.
// The preposition agrees with the weekday's grammatical gender, which
// cannot be computed; keep it in the table.
var byDayPhrases = map[string]string{
	"MO": "каждый понедельник",
	"TU": "каждый вторник",
	"WE": "каждую среду",
	"TH": "каждый четверг",
	"FR": "каждую пятницу",
	"SA": "каждую субботу",
	"SU": "каждое воскресенье",
}

var freqPhrases = map[string]struct {
	Single string
	Forms  PluralForms
}{
	"DAILY":   {"каждый день", PluralForms{"день", "дня", "дней"}},
	"WEEKLY":  {"каждую неделю", PluralForms{"неделю", "недели", "недель"}},
	"MONTHLY": {"каждый месяц", PluralForms{"месяц", "месяца", "месяцев"}},
	"YEARLY":  {"каждый год", PluralForms{"год", "года", "лет"}},
}

// BuildRRule converts recognized recurrence slots into an RRULE string.
// A positive monthDay wins over freq and interval ("каждое 15 число").
// Zero values mean the slot is absent. Returns "" when no valid rule
// can be built.
func BuildRRule(freq string, interval, monthDay int) string {
	if monthDay > 0 {
		return fmt.Sprintf("RRULE:FREQ=MONTHLY;BYMONTHDAY=%d", monthDay)
	}

	if freq == "" {
		return ""
	}

	entry, ok := freqTable[strings.ToLower(strings.TrimSpace(freq))]
	if !ok {
		return ""
	}

	parts := []string{"FREQ=" + entry.Freq}
	if interval > 1 {
		parts = append(parts, fmt.Sprintf("INTERVAL=%d", interval))
	}
	if entry.ByDay != "" {
		parts = append(parts, "BYDAY="+entry.ByDay)
	}

	return "RRULE:" + strings.Join(parts, ";")
}

// FormatRecurrence renders an RRULE string as a Russian confirmation
// phrase. Returns "" only for empty input; an unrecognized rule still
// produces a generic phrase so confirmation text never goes missing.
func FormatRecurrence(rrule string) string {
	if rrule == "" {
		return ""
	}

	params := map[string]string{}
	body := strings.TrimPrefix(rrule, "RRULE:")
	for _, part := range strings.Split(body, ";") {
		if key, val, ok := strings.Cut(part, "="); ok {
			params[key] = val
		}
	}

	if monthDay := params["BYMONTHDAY"]; monthDay != "" {
		return fmt.Sprintf("каждое %s число", monthDay)
	}

	if byDay := params["BYDAY"]; byDay != "" {
		switch byDay {
		case byDayWeekdays:
			return "по будням"
		case byDayWeekend:
			return "по выходным"
		}
		if phrase, ok := byDayPhrases[byDay]; ok {
			return phrase
		}
	}

	if phrase, ok := freqPhrases[params["FREQ"]]; ok {
		if raw := params["INTERVAL"]; raw != "" {
			if interval, err := strconv.Atoi(raw); err == nil {
				return "каждые " + Pluralize(interval, phrase.Forms)
			}
		}
		return phrase.Single
	}

	return "повторяется"
}
