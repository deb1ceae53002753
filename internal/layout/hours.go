package layout

import (
	"time"

	"bigcal/internal/model"
)

// HourRange is an hour window, inclusive From, exclusive To.
type HourRange struct {
	From int
	To   int
}

// WorkingHours maps a weekday onto its business-hours window. A missing
// entry or a {0, 0} window means the day has no working hours.
type WorkingHours map[time.Weekday]HourRange

// VisibleHourRange widens the configured hour window so every event of the
// day fits: an event starting before the window pulls the start earlier,
// an event ending after it pushes the end later (an end minute past the
// hour rounds the bound up). The window is never narrowed below the
// configured values and the end is capped at 24. hours is the inclusive-
// exclusive integer sequence [earliest, latest).
func VisibleHourRange(configured HourRange, dayEvents []model.Event) (hours []int, earliest, latest int) {
	earliest, latest = configured.From, configured.To

	for _, ev := range dayEvents {
		if h := ev.Start.Hour(); h < earliest {
			earliest = h
		}
		endHour := ev.End.Hour()
		if ev.End.Minute() > 0 || ev.End.Second() > 0 {
			endHour++
		}
		if endHour > latest {
			latest = endHour
		}
	}

	if latest > 24 {
		latest = 24
	}

	hours = make([]int, 0, latest-earliest)
	for h := earliest; h < latest; h++ {
		hours = append(hours, h)
	}
	return hours, earliest, latest
}

// IsWorkingHour reports whether the given hour on date's weekday falls
// inside the configured working window. Working hours only mark grid cells
// visually; they never restrict event placement.
func IsWorkingHour(date time.Time, hour int, wh WorkingHours) bool {
	r, ok := wh[date.Weekday()]
	if !ok {
		return false
	}
	return hour >= r.From && hour < r.To
}
