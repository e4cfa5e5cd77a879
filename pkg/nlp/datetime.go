package nlp

import (
	"errors"
	"time"
)

// ErrEmptyDateSpec is returned by Resolve when the spec has no usable fields.
var ErrEmptyDateSpec = errors.New("empty datetime spec")

// Resolve converts a DateSpec into a concrete Moment using now as the
// reference instant. Fields are applied in fixed order: year, month, day,
// hour, minute. Month and year arithmetic can change the valid day range,
// so the order matters. Absolute fields overwrite the running instant,
// relative fields add to it (calendar-aware for year and month).
func Resolve(spec DateSpec, now time.Time) (Moment, error) {
	if spec.Empty() {
		return Moment{}, ErrEmptyDateSpec
	}

	base := now

	if spec.Year != nil {
		if spec.YearIsRelative {
			base = addYears(base, *spec.Year)
		} else {
			base = withDate(base, *spec.Year, int(base.Month()), base.Day())
		}
	}

	if spec.Month != nil {
		if spec.MonthIsRelative {
			base = addMonths(base, *spec.Month)
		} else {
			base = withDate(base, base.Year(), *spec.Month, base.Day())
		}
	}

	if spec.Day != nil {
		if spec.DayIsRelative {
			base = base.AddDate(0, 0, *spec.Day)
		} else {
			base = withDate(base, base.Year(), int(base.Month()), *spec.Day)
		}
	}

	if spec.Hour != nil {
		if spec.HourIsRelative {
			base = base.Add(time.Duration(*spec.Hour) * time.Hour)
		} else {
			base = withClock(base, *spec.Hour, base.Minute())
		}
	}

	if spec.Minute != nil {
		if spec.MinuteIsRelative {
			base = base.Add(time.Duration(*spec.Minute) * time.Minute)
		} else {
			base = withClock(base, base.Hour(), *spec.Minute)
		}
	}

	if !spec.HasClock() {
		return Moment{Time: startOfDay(base)}, nil
	}
	return Moment{Time: base, HasClock: true}, nil
}

// addMonths adds months calendar-aware, clamping the day of month to the
// last valid day of the target month (Jan 31 + 1 month lands on the last
// day of February, not March 3).
func addMonths(t time.Time, months int) time.Time {
	total := int(t.Month()) - 1 + months
	year := t.Year() + total/12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	month++

	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return withDate(t, year, month, day)
}

// addYears adds years, clamping Feb 29 to Feb 28 on non-leap targets.
func addYears(t time.Time, years int) time.Time {
	year := t.Year() + years
	day := t.Day()
	if last := daysInMonth(year, int(t.Month())); day > last {
		day = last
	}
	return withDate(t, year, int(t.Month()), day)
}

func daysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// withDate overwrites the calendar part of t, clamping the day so an
// absolute month/year overwrite cannot spill into the next month.
func withDate(t time.Time, year, month, day int) time.Time {
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	h, m, s := t.Clock()
	return time.Date(year, time.Month(month), day, h, m, s, t.Nanosecond(), t.Location())
}

func withClock(t time.Time, hour, minute int) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, hour, minute, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
