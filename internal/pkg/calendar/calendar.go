package calendar

import (
	"fmt"
	"time"
)

// TargetWeekday is the recurring weekday leave is scheduled on.
const TargetWeekday = time.Friday

const (
	isoLayout     = "2006-01-02"
	displayLayout = "02/01/2006"
)

// DaysOfWeekday returns every date in the given month that falls on weekday,
// earliest first. Walks from day 1 to the first match, then steps a week at a
// time until the month rolls over.
func DaysOfWeekday(year int, month time.Month, weekday time.Weekday) []time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, 1)
	}

	var days []time.Time
	for d.Month() == month {
		days = append(days, d)
		d = d.AddDate(0, 0, 7)
	}
	return days
}

// FridaysInMonth returns the Fridays of the given month, earliest first.
func FridaysInMonth(year int, month time.Month) []time.Time {
	return DaysOfWeekday(year, month, TargetWeekday)
}

// MonthRange returns the half-open interval [first of month, first of next
// month), so every date belongs to exactly one month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, 0)
}

// FormatISO renders a date in the store's YYYY-MM-DD form.
func FormatISO(d time.Time) string {
	return d.Format(isoLayout)
}

// ParseISO parses a YYYY-MM-DD date.
func ParseISO(s string) (time.Time, error) {
	d, err := time.Parse(isoLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// FormatDisplay renders a date in the UI's DD/MM/YYYY form. This is the
// view-model map key.
func FormatDisplay(d time.Time) string {
	return d.Format(displayLayout)
}

// ParseDisplay parses a DD/MM/YYYY date.
func ParseDisplay(s string) (time.Time, error) {
	d, err := time.Parse(displayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
