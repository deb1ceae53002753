package layout

import (
	"time"

	"bigcal/internal/model"
)

const rangeDateFormat = "Jan 2, 2006"

// NavigateDate moves date by exactly one unit of the view's granularity.
// Month, year and agenda steps clamp to the last valid day of the target
// month (2024-01-31 stepped forward lands on 2024-02-29) rather than
// letting the day overflow spill into the following month.
func NavigateDate(date time.Time, view View, dir Direction) time.Time {
	step := 1
	if dir == Previous {
		step = -1
	}

	switch view {
	case ViewDay:
		return date.AddDate(0, 0, step)
	case ViewWeek:
		return date.AddDate(0, 0, 7*step)
	case ViewYear:
		return addMonthsClamped(date, 12*step)
	default:
		// month and agenda both step one calendar month
		return addMonthsClamped(date, step)
	}
}

// addMonthsClamped shifts t by the given number of calendar months,
// clamping the day-of-month to the length of the target month. time.AddDate
// normalizes overflow instead, which is exactly the behavior we must avoid.
func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, months, 0)

	day := t.Day()
	if limit := daysInMonth(target); day > limit {
		day = limit
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// RangeText produces the human-readable label for the view's date range:
// a single date for day view, a Sunday-start week span for week view,
// month plus year for month and agenda views, the year alone for year view.
func RangeText(view View, date time.Time) string {
	switch view {
	case ViewDay:
		return date.Format(rangeDateFormat)
	case ViewWeek:
		start := startOfWeek(date)
		end := start.AddDate(0, 0, 6)
		return start.Format(rangeDateFormat) + " – " + end.Format(rangeDateFormat)
	case ViewYear:
		return date.Format("2006")
	default:
		return date.Format("January 2006")
	}
}

// EventsCount counts the events whose interval intersects the calendar
// range of the given view around date.
func EventsCount(events []model.Event, date time.Time, view View) int {
	from, to := viewRange(date, view)

	n := 0
	for _, ev := range events {
		if rangesIntersect(ev.Start, ev.End, from, to) {
			n++
		}
	}
	return n
}

// viewRange returns the inclusive calendar boundaries of the view unit
// containing date.
func viewRange(date time.Time, view View) (time.Time, time.Time) {
	switch view {
	case ViewDay:
		return startOfDay(date), endOfDay(date)
	case ViewWeek:
		start := startOfWeek(date)
		return start, endOfDay(start.AddDate(0, 0, 6))
	case ViewYear:
		start := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
		return start, endOfDay(start.AddDate(1, 0, -1))
	default:
		start := startOfMonth(date)
		return start, endOfDay(start.AddDate(0, 1, -1))
	}
}
