package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TriggerAtTime is the zero-offset trigger: remind exactly at the
// task's due moment.
const TriggerAtTime = "TRIGGER:PT0S"

// unitTable maps Russian unit inflections to a canonical unit code.
var unitTable = map[string]string{
	"минуту": "M",
	"минута": "M",
	"минуты": "M",
	"минут":  "M",
	"час":    "H",
	"часа":   "H",
	"часов":  "H",
	"день":   "D",
	"дня":    "D",
	"дней":   "D",
}

var (
	minuteForms = PluralForms{"минуту", "минуты", "минут"}
	hourForms   = PluralForms{"час", "часа", "часов"}
	dayForms    = PluralForms{"день", "дня", "дней"}
)

var triggerRe = regexp.MustCompile(`^TRIGGER:(-?)P(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?|(\d+)D)$`)

// BuildTrigger converts recognized reminder slots into an iCal TRIGGER
// string. A nil value means the user gave no number ("за час") and is
// treated as 1. Zero is the remind-at-due-time sentinel regardless of
// unit. Day offsets use the whole-day form (-P2D), minutes and hours the
// sub-day form (-PT30M); the encodings are distinct on the wire.
// Returns "" when the unit is missing or unrecognized.
func BuildTrigger(value *int, unit string) string {
	v := 1
	if value != nil {
		v = *value
	}

	if v == 0 {
		return TriggerAtTime
	}

	code, ok := unitTable[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return ""
	}

	if code == "D" {
		return fmt.Sprintf("TRIGGER:-P%dD", v)
	}
	return fmt.Sprintf("TRIGGER:-PT%d%s", v, code)
}

// FormatReminder renders a TRIGGER string as a Russian confirmation
// phrase. Returns "" only for empty input; an unparseable trigger still
// yields a generic phrase.
func FormatReminder(trigger string) string {
	if trigger == "" {
		return ""
	}

	if trigger == TriggerAtTime {
		return "в момент задачи"
	}

	m := triggerRe.FindStringSubmatch(trigger)
	if m == nil {
		return "напоминание"
	}

	hours, minutes, days := m[2], m[3], m[5]
	switch {
	case days != "":
		n, _ := strconv.Atoi(days)
		return "за " + Pluralize(n, dayForms)
	case hours != "":
		n, _ := strconv.Atoi(hours)
		return "за " + Pluralize(n, hourForms)
	case minutes != "":
		n, _ := strconv.Atoi(minutes)
		return "за " + Pluralize(n, minuteForms)
	}

	return "напоминание"
}
