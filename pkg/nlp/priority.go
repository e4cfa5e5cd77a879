package nlp

import "strings"

// priorityTable maps Russian priority words, in the inflected forms the
// NLU delivers, to TickTick priority levels.
var priorityTable = map[string]Priority{
	// high / urgent
	"высокий":     PriorityHigh,
	"высокая":     PriorityHigh,
	"высокое":     PriorityHigh,
	"срочно":      PriorityHigh,
	"срочный":     PriorityHigh,
	"срочная":     PriorityHigh,
	"срочное":     PriorityHigh,
	"важно":       PriorityHigh,
	"важный":      PriorityHigh,
	"важная":      PriorityHigh,
	"важное":      PriorityHigh,
	"критический": PriorityHigh,
	"критичный":   PriorityHigh,

	// medium
	"средний":     PriorityMedium,
	"средняя":     PriorityMedium,
	"среднее":     PriorityMedium,
	"нормальный":  PriorityMedium,
	"нормальная":  PriorityMedium,
	"нормальное":  PriorityMedium,

	// low
	"низкий":   PriorityLow,
	"низкая":   PriorityLow,
	"низкое":   PriorityLow,
	"неважный": PriorityLow,
	"неважная": PriorityLow,
	"неважное": PriorityLow,

	// none
	"обычный":        PriorityNone,
	"обычная":        PriorityNone,
	"обычное":        PriorityNone,
	"без приоритета": PriorityNone,
	"нет":            PriorityNone,
}

// ParsePriority maps a spoken Russian priority word to a priority level.
// ok is false for empty or unrecognized input; callers treat that as
// "no priority change requested", not as a failure.
func ParsePriority(text string) (Priority, bool) {
	if text == "" {
		return PriorityNone, false
	}
	p, ok := priorityTable[strings.ToLower(strings.TrimSpace(text))]
	return p, ok
}
