// Package datemath provides calendar-day arithmetic for the picker.
//
// Every Date is pinned to NormalHour in its own location so that adding
// months across a daylight-saving change never lands on the previous or
// next calendar day.
package datemath

import "time"

// NormalHour is the hour-of-day every Date is normalized to.
const NormalHour = 7

// Date is a calendar day. Compare two Dates with SameDay.
type Date struct {
	t time.Time
}

// New normalizes t to its calendar day.
func New(t time.Time) Date {
	loc := t.Location()
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, NormalHour, 0, 0, 0, loc)}
}

// Of builds a Date from its components. Out-of-range days are clamped to the month.
func Of(year int, month time.Month, day int, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, NormalHour, 0, 0, 0, loc)
	return WithDay(Date{t: first}, day)
}

// Time returns the underlying instant (the day at NormalHour).
func (d Date) Time() time.Time {
	if d.t.IsZero() {
		return New(time.Time{}).t
	}
	return d.t
}

// Year returns the calendar year.
func (d Date) Year() int { return d.Time().Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.Time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.Time().Day() }

// Location returns the location the day is evaluated in.
func (d Date) Location() *time.Location { return d.Time().Location() }

// Format formats the underlying time with a Go layout.
func (d Date) Format(layout string) string { return d.Time().Format(layout) }

// String returns the date as YYYY-MM-DD.
func (d Date) String() string { return d.Format("2006-01-02") }

// Equal reports whether both dates are the same calendar day.
func (d Date) Equal(o Date) bool { return SameDay(d, o) }

// AddMonths shifts d by n calendar months. The day is clamped to the
// length of the target month, so Jan 31 + 1 month is the last day of February.
func AddMonths(d Date, n int) Date {
	t := d.Time()
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, NormalHour, 0, 0, 0, t.Location())
	return WithDay(Date{t: first}, t.Day())
}

// FirstOfMonth returns day 1 of d's month.
func FirstOfMonth(d Date) Date {
	t := d.Time()
	return Date{t: time.Date(t.Year(), t.Month(), 1, NormalHour, 0, 0, 0, t.Location())}
}

// DaysInMonth returns the number of days in d's month.
func DaysInMonth(d Date) int {
	t := d.Time()
	// Day 0 of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, NormalHour, 0, 0, 0, t.Location()).Day()
}

// WeekdayIndex returns 0 for Sunday through 6 for Saturday.
func WeekdayIndex(d Date) int {
	return int(d.Time().Weekday())
}

// DayOfMonth returns the day of the month.
func DayOfMonth(d Date) int { return d.Day() }

// Month returns d's month.
func Month(d Date) time.Month { return d.Month() }

// WithDay replaces the day of the month, keeping year and month.
// Days outside [1, DaysInMonth(d)] are clamped.
func WithDay(d Date, day int) Date {
	t := d.Time()
	if day < 1 {
		day = 1
	}
	if n := DaysInMonth(d); day > n {
		day = n
	}
	return Date{t: time.Date(t.Year(), t.Month(), day, NormalHour, 0, 0, 0, t.Location())}
}

// SameDay reports whether a and b fall on the same (year, month, day).
func SameDay(a, b Date) bool {
	ay, am, ad := a.Time().Date()
	by, bm, bd := b.Time().Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b are in the same year and month.
func SameMonth(a, b Date) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Clock abstracts time.Now() so "today" can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Today returns the current day according to c. A nil clock uses SystemClock.
func Today(c Clock) Date {
	if c == nil {
		c = SystemClock{}
	}
	return New(c.Now())
}
