package nlp_test

import (
	"testing"

	"alice-ticktick/pkg/nlp"
)

func TestBuildRRule(t *testing.T) {
	tests := []struct {
		name     string
		freq     string
		interval int
		monthDay int
		want     string
	}{
		{name: "Daily", freq: "день", want: "RRULE:FREQ=DAILY"},
		{name: "Daily adverb", freq: "ежедневно", want: "RRULE:FREQ=DAILY"},
		{name: "Weekly", freq: "неделю", want: "RRULE:FREQ=WEEKLY"},
		{name: "Weekly genitive", freq: "недель", want: "RRULE:FREQ=WEEKLY"},
		{name: "Monthly", freq: "месяц", want: "RRULE:FREQ=MONTHLY"},
		{name: "Yearly", freq: "лет", want: "RRULE:FREQ=YEARLY"},
		{name: "Monday", freq: "понедельник", want: "RRULE:FREQ=WEEKLY;BYDAY=MO"},
		{name: "Wednesday accusative", freq: "среду", want: "RRULE:FREQ=WEEKLY;BYDAY=WE"},
		{name: "Wednesday nominative", freq: "среда", want: "RRULE:FREQ=WEEKLY;BYDAY=WE"},
		{name: "Friday", freq: "пятницу", want: "RRULE:FREQ=WEEKLY;BYDAY=FR"},
		{name: "Sunday", freq: "воскресенье", want: "RRULE:FREQ=WEEKLY;BYDAY=SU"},
		{name: "Weekday group", freq: "будни", want: "RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"},
		{name: "Weekday group dative", freq: "будням", want: "RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"},
		{name: "Weekend group", freq: "выходные", want: "RRULE:FREQ=WEEKLY;BYDAY=SA,SU"},
		{name: "Every 3 days", freq: "дня", interval: 3, want: "RRULE:FREQ=DAILY;INTERVAL=3"},
		{name: "Every 2 weeks", freq: "недели", interval: 2, want: "RRULE:FREQ=WEEKLY;INTERVAL=2"},
		{name: "Interval of one omitted", freq: "дня", interval: 1, want: "RRULE:FREQ=DAILY"},
		{name: "Monthday", monthDay: 15, want: "RRULE:FREQ=MONTHLY;BYMONTHDAY=15"},
		{name: "Monthday wins over freq", freq: "день", interval: 2, monthDay: 1, want: "RRULE:FREQ=MONTHLY;BYMONTHDAY=1"},
		{name: "No slots", want: ""},
		{name: "Unknown word", freq: "кварталу", want: ""},
		{name: "Case insensitive", freq: "День", want: "RRULE:FREQ=DAILY"},
		{name: "Surrounding whitespace", freq: "  неделю ", want: "RRULE:FREQ=WEEKLY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nlp.BuildRRule(tt.freq, tt.interval, tt.monthDay)
			if got != tt.want {
				t.Errorf("BuildRRule(%q, %d, %d) = %q, want %q", tt.freq, tt.interval, tt.monthDay, got, tt.want)
			}
		})
	}
}

func TestFormatRecurrence(t *testing.T) {
	tests := []struct {
		rrule string
		want  string
	}{
		{"RRULE:FREQ=DAILY", "каждый день"},
		{"RRULE:FREQ=WEEKLY", "каждую неделю"},
		{"RRULE:FREQ=MONTHLY", "каждый месяц"},
		{"RRULE:FREQ=YEARLY", "каждый год"},
		{"RRULE:FREQ=DAILY;INTERVAL=3", "каждые 3 дня"},
		{"RRULE:FREQ=DAILY;INTERVAL=5", "каждые 5 дней"},
		{"RRULE:FREQ=WEEKLY;INTERVAL=2", "каждые 2 недели"},
		{"RRULE:FREQ=WEEKLY;BYDAY=MO", "каждый понедельник"},
		{"RRULE:FREQ=WEEKLY;BYDAY=FR", "каждую пятницу"},
		{"RRULE:FREQ=WEEKLY;BYDAY=SU", "каждое воскресенье"},
		{"RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR", "по будням"},
		{"RRULE:FREQ=WEEKLY;BYDAY=SA,SU", "по выходным"},
		{"RRULE:FREQ=MONTHLY;BYMONTHDAY=15", "каждое 15 число"},
		{"RRULE:FREQ=SECONDLY", "повторяется"},
		{"gibberish", "повторяется"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.rrule, func(t *testing.T) {
			if got := nlp.FormatRecurrence(tt.rrule); got != tt.want {
				t.Errorf("FormatRecurrence(%q) = %q, want %q", tt.rrule, got, tt.want)
			}
		})
	}
}

func TestRecurrenceRoundTrip(t *testing.T) {
	// Every rule the builder can produce must format to a non-empty phrase.
	words := []string{
		"день", "ежедневно", "неделю", "месяц", "год",
		"понедельник", "вторник", "среду", "четверг", "пятницу", "субботу", "воскресенье",
		"будни", "выходные",
	}
	for _, word := range words {
		for _, interval := range []int{0, 2, 5} {
			rrule := nlp.BuildRRule(word, interval, 0)
			if rrule == "" {
				t.Fatalf("BuildRRule(%q, %d, 0) unexpectedly empty", word, interval)
			}
			if phrase := nlp.FormatRecurrence(rrule); phrase == "" {
				t.Errorf("FormatRecurrence(%q) is empty for word %q", rrule, word)
			}
		}
	}

	for _, day := range []int{1, 15, 31} {
		rrule := nlp.BuildRRule("", 0, day)
		phrase := nlp.FormatRecurrence(rrule)
		if phrase == "" {
			t.Errorf("monthday rule %q formats to empty phrase", rrule)
		}
	}
}
