package nlp_test

import (
	"errors"
	"testing"
	"time"

	"alice-ticktick/pkg/nlp"
)

func intp(v int) *int { return &v }

func TestResolveAbsolute(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		spec      nlp.DateSpec
		want      time.Time
		wantClock bool
	}{
		{
			name: "Full date",
			spec: nlp.DateSpec{Year: intp(2026), Month: intp(6), Day: intp(15)},
			want: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Date with time",
			spec:      nlp.DateSpec{Year: intp(2026), Month: intp(6), Day: intp(15), Hour: intp(14), Minute: intp(30)},
			want:      time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC),
			wantClock: true,
		},
		{
			name: "Month and day only inherit year",
			spec: nlp.DateSpec{Month: intp(12), Day: intp(25)},
			want: time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Day only inherits year and month",
			spec: nlp.DateSpec{Day: intp(20)},
			want: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "Hour only keeps today",
			spec:      nlp.DateSpec{Hour: intp(18)},
			want:      time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
			wantClock: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nlp.Resolve(tt.spec, now)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !got.Time.Equal(tt.want) {
				t.Errorf("Resolve() time = %v, want %v", got.Time, tt.want)
			}
			if got.HasClock != tt.wantClock {
				t.Errorf("Resolve() hasClock = %v, want %v", got.HasClock, tt.wantClock)
			}
		})
	}
}

func TestResolveRelative(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		spec      nlp.DateSpec
		want      time.Time
		wantClock bool
	}{
		{
			name: "Tomorrow",
			spec: nlp.DateSpec{Day: intp(1), DayIsRelative: true},
			want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Day after tomorrow",
			spec: nlp.DateSpec{Day: intp(2), DayIsRelative: true},
			want: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Today",
			spec: nlp.DateSpec{Day: intp(0), DayIsRelative: true},
			want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Next month with absolute day",
			spec: nlp.DateSpec{Month: intp(1), MonthIsRelative: true, Day: intp(5)},
			want: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "In two hours",
			spec:      nlp.DateSpec{Hour: intp(2), HourIsRelative: true},
			want:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			wantClock: true,
		},
		{
			name:      "Tomorrow morning",
			spec:      nlp.DateSpec{Day: intp(1), DayIsRelative: true, Hour: intp(9), Minute: intp(0)},
			want:      time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			wantClock: true,
		},
		{
			name: "Negative day offset",
			spec: nlp.DateSpec{Day: intp(-1), DayIsRelative: true},
			want: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nlp.Resolve(tt.spec, now)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !got.Time.Equal(tt.want) {
				t.Errorf("Resolve() time = %v, want %v", got.Time, tt.want)
			}
			if got.HasClock != tt.wantClock {
				t.Errorf("Resolve() hasClock = %v, want %v", got.HasClock, tt.wantClock)
			}
		})
	}
}

func TestResolveCalendarBoundaries(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		spec nlp.DateSpec
		want time.Time
	}{
		{
			name: "Jan 31 plus one month clamps to Feb 28",
			now:  time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC),
			spec: nlp.DateSpec{Month: intp(1), MonthIsRelative: true},
			want: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Jan 31 plus one month clamps to Feb 29 on leap year",
			now:  time.Date(2028, 1, 31, 10, 0, 0, 0, time.UTC),
			spec: nlp.DateSpec{Month: intp(1), MonthIsRelative: true},
			want: time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Feb 29 plus one year clamps to Feb 28",
			now:  time.Date(2028, 2, 29, 10, 0, 0, 0, time.UTC),
			spec: nlp.DateSpec{Year: intp(1), YearIsRelative: true},
			want: time.Date(2029, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Dec plus one month rolls the year",
			now:  time.Date(2026, 12, 15, 10, 0, 0, 0, time.UTC),
			spec: nlp.DateSpec{Month: intp(1), MonthIsRelative: true},
			want: time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Jan minus one month rolls the year back",
			now:  time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
			spec: nlp.DateSpec{Month: intp(-1), MonthIsRelative: true},
			want: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Month-end rollover for relative day",
			now:  time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC),
			spec: nlp.DateSpec{Day: intp(1), DayIsRelative: true},
			want: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nlp.Resolve(tt.spec, tt.now)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if !got.Time.Equal(tt.want) {
				t.Errorf("Resolve() time = %v, want %v", got.Time, tt.want)
			}
			if got.HasClock {
				t.Errorf("Resolve() hasClock = true, want date-only")
			}
		})
	}
}

func TestResolveEmptySpec(t *testing.T) {
	_, err := nlp.Resolve(nlp.DateSpec{}, time.Now())
	if !errors.Is(err, nlp.ErrEmptyDateSpec) {
		t.Fatalf("expected ErrEmptyDateSpec, got %v", err)
	}
}

func TestMomentAPIFormat(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	m := nlp.Moment{Time: time.Date(2026, 3, 2, 19, 0, 0, 0, loc), HasClock: true}

	got := m.APIFormat()
	want := "2026-03-02T19:00:00.000+0300"
	if got != want {
		t.Errorf("APIFormat() = %q, want %q", got, want)
	}
}
