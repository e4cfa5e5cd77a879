package nlp

import "time"

// DateSpec is a partial calendar specification from a YANDEX.DATETIME
// slot or entity. Each field is optional; a nil pointer means the field
// was not recognized. The *IsRelative companions mark a field as an
// offset from the reference instant instead of an absolute value.
type DateSpec struct {
	Year   *int `json:"year,omitempty"`
	Month  *int `json:"month,omitempty"`
	Day    *int `json:"day,omitempty"`
	Hour   *int `json:"hour,omitempty"`
	Minute *int `json:"minute,omitempty"`

	YearIsRelative   bool `json:"year_is_relative,omitempty"`
	MonthIsRelative  bool `json:"month_is_relative,omitempty"`
	DayIsRelative    bool `json:"day_is_relative,omitempty"`
	HourIsRelative   bool `json:"hour_is_relative,omitempty"`
	MinuteIsRelative bool `json:"minute_is_relative,omitempty"`
}

// Empty reports whether the spec carries no usable fields.
func (s DateSpec) Empty() bool {
	return s.Year == nil && s.Month == nil && s.Day == nil && s.Hour == nil && s.Minute == nil
}

// HasClock reports whether the spec carries a time-of-day component.
func (s DateSpec) HasClock() bool {
	return s.Hour != nil || s.Minute != nil
}

// Moment is a resolved DateSpec: a calendar date, or a date with a
// time-of-day when HasClock is set. Date-only moments are normalized
// to midnight in their location.
type Moment struct {
	Time     time.Time
	HasClock bool
}

// APIFormat renders the moment in the TickTick wire format,
// e.g. "2026-03-02T19:00:00.000+0300".
func (m Moment) APIFormat() string {
	return m.Time.Format("2006-01-02T15:04:05.000-0700")
}

// SameDay reports whether the moment falls on the same calendar day as t.
func (m Moment) SameDay(t time.Time) bool {
	y1, m1, d1 := m.Time.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TokenSpan is a half-open [Start, End) range over utterance tokens.
type TokenSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Entity is a recognized NLU entity with its token span. Value is only
// meaningful for datetime entities.
type Entity struct {
	Type   string    `json:"type"`
	Tokens TokenSpan `json:"tokens"`
	Value  DateSpec  `json:"value"`
}

// EntityTypeDateTime is the NLU type tag for datetime entities.
const EntityTypeDateTime = "YANDEX.DATETIME"

// ExtractedDates is the result of scanning utterance entities:
// a task name with date tokens removed, plus up to two resolved moments.
// End is never set without Start.
type ExtractedDates struct {
	TaskName string
	Start    *Moment
	End      *Moment
}

// Match is a fuzzy-match result. Index is the position of the candidate
// in the original slice; candidate titles are not guaranteed unique, so
// the title alone cannot identify the matched record.
type Match struct {
	Title string
	Score int
	Index int
}

// Priority is a TickTick task priority. The levels are not contiguous.
type Priority int

const (
	PriorityNone   Priority = 0
	PriorityLow    Priority = 1
	PriorityMedium Priority = 3
	PriorityHigh   Priority = 5
)
