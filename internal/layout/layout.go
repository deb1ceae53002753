// Package layout implements the pure scheduling-geometry core of the
// calendar widget: date-range navigation, month grid construction, event
// classification, overlap grouping, pixel positioning and slot assignment.
// Every function is deterministic given its inputs, mutates nothing it
// receives, and is safe to recompute on each render pass.
package layout

import (
	"math"
	"time"
)

// View selects the calendar granularity date math operates on.
type View string

const (
	ViewDay    View = "day"
	ViewWeek   View = "week"
	ViewMonth  View = "month"
	ViewYear   View = "year"
	ViewAgenda View = "agenda"
)

// ParseView maps a string onto a View. Unknown values fall back to month.
func ParseView(s string) View {
	switch View(s) {
	case ViewDay, ViewWeek, ViewMonth, ViewYear, ViewAgenda:
		return View(s)
	}
	return ViewMonth
}

// Direction of a navigation step.
type Direction int

const (
	Previous Direction = iota
	Next
)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Sunday beginning the week containing t.
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func daysInMonth(t time.Time) int {
	first := startOfMonth(t)
	return first.AddDate(0, 1, -1).Day()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// intervalsOverlap is the strict interval test used for column layout:
// intervals merely touching at an endpoint do not overlap.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// rangesIntersect is the inclusive test used for counting and filtering.
func rangesIntersect(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !aStart.After(bEnd)
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
// Rounding absorbs the one-hour wobble of DST transition days.
func daysBetween(a, b time.Time) int {
	return int(math.Round(startOfDay(b).Sub(startOfDay(a)).Hours() / 24))
}
