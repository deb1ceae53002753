package layout

import (
	"time"

	"bigcal/internal/model"
)

// CalendarCells builds the Sunday-first month grid for the month containing
// selectedDate. The grid covers the full calendar month plus the
// adjacent-month days needed to complete the first and last week rows, so
// its length is always a multiple of 7 (35 or 42 cells for most months,
// 28 for a February starting on a Sunday).
func CalendarCells(selectedDate time.Time) []model.DayCell {
	first := startOfMonth(selectedDate)
	lead := int(first.Weekday())

	total := lead + daysInMonth(first)
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	cells := make([]model.DayCell, 0, total)
	cur := first.AddDate(0, 0, -lead)
	for i := 0; i < total; i++ {
		cells = append(cells, model.DayCell{
			Date:         cur,
			Day:          cur.Day(),
			CurrentMonth: sameMonth(cur, first),
		})
		cur = cur.AddDate(0, 0, 1)
	}
	return cells
}

// YearMonthSlots returns the year-view mini grid for the month containing
// date: the day numbers of the month preceded by one zero per blank cell
// before the month's first weekday (Sunday-first).
func YearMonthSlots(month time.Time) []int {
	first := startOfMonth(month)
	days := daysInMonth(first)

	slots := make([]int, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		slots = append(slots, 0)
	}
	for d := 1; d <= days; d++ {
		slots = append(slots, d)
	}
	return slots
}
