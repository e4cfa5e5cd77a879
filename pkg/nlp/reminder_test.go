package nlp_test

import (
	"testing"

	"alice-ticktick/pkg/nlp"
)

func TestBuildTrigger(t *testing.T) {
	tests := []struct {
		name  string
		value *int
		unit  string
		want  string
	}{
		{name: "30 minutes", value: intp(30), unit: "минут", want: "TRIGGER:-PT30M"},
		{name: "15 minutes", value: intp(15), unit: "минуты", want: "TRIGGER:-PT15M"},
		{name: "1 minute", value: intp(1), unit: "минуту", want: "TRIGGER:-PT1M"},
		{name: "1 hour", value: intp(1), unit: "час", want: "TRIGGER:-PT1H"},
		{name: "2 hours", value: intp(2), unit: "часа", want: "TRIGGER:-PT2H"},
		{name: "24 hours keeps sub-day form", value: intp(24), unit: "часов", want: "TRIGGER:-PT24H"},
		{name: "1 day uses whole-day form", value: intp(1), unit: "день", want: "TRIGGER:-P1D"},
		{name: "3 days", value: intp(3), unit: "дня", want: "TRIGGER:-P3D"},
		{name: "7 days", value: intp(7), unit: "дней", want: "TRIGGER:-P7D"},
		{name: "Zero is the at-time sentinel", value: intp(0), unit: "минут", want: nlp.TriggerAtTime},
		{name: "Zero with day unit", value: intp(0), unit: "дней", want: nlp.TriggerAtTime},
		{name: "Missing value means one", value: nil, unit: "час", want: "TRIGGER:-PT1H"},
		{name: "Missing unit", value: intp(30), unit: "", want: ""},
		{name: "Unknown unit", value: intp(5), unit: "секунд", want: ""},
		{name: "Case insensitive unit", value: intp(10), unit: "Минут", want: "TRIGGER:-PT10M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nlp.BuildTrigger(tt.value, tt.unit); got != tt.want {
				t.Errorf("BuildTrigger() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildTriggerImplicitOne(t *testing.T) {
	// "напомни за час" carries no number; it must behave as value=1.
	if got, want := nlp.BuildTrigger(nil, "час"), nlp.BuildTrigger(intp(1), "час"); got != want {
		t.Errorf("BuildTrigger(nil) = %q, BuildTrigger(1) = %q; want equal", got, want)
	}
}

func TestFormatReminder(t *testing.T) {
	tests := []struct {
		trigger string
		want    string
	}{
		{"TRIGGER:-PT30M", "за 30 минут"},
		{"TRIGGER:-PT1M", "за 1 минуту"},
		{"TRIGGER:-PT5M", "за 5 минут"},
		{"TRIGGER:-PT1H", "за 1 час"},
		{"TRIGGER:-PT2H", "за 2 часа"},
		{"TRIGGER:-PT5H", "за 5 часов"},
		{"TRIGGER:-P1D", "за 1 день"},
		{"TRIGGER:-P3D", "за 3 дня"},
		{"TRIGGER:-P7D", "за 7 дней"},
		{"TRIGGER:PT0S", "в момент задачи"},
		{"TRIGGER:UNKNOWN", "напоминание"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.trigger, func(t *testing.T) {
			if got := nlp.FormatReminder(tt.trigger); got != tt.want {
				t.Errorf("FormatReminder(%q) = %q, want %q", tt.trigger, got, tt.want)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	forms := nlp.PluralForms{One: "задача", Few: "задачи", Many: "задач"}

	tests := []struct {
		n    int
		want string
	}{
		{1, "1 задача"},
		{2, "2 задачи"},
		{4, "4 задачи"},
		{5, "5 задач"},
		{11, "11 задач"}, // teen exception: ends in 1 but is many-form
		{12, "12 задач"},
		{14, "14 задач"},
		{21, "21 задача"}, // large but singular-form
		{22, "22 задачи"},
		{100, "100 задач"},
		{111, "111 задач"},
		{121, "121 задача"},
	}

	for _, tt := range tests {
		if got := nlp.Pluralize(tt.n, forms); got != tt.want {
			t.Errorf("Pluralize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
