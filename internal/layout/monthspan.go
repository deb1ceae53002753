package layout

import (
	"sort"
	"time"

	"bigcal/internal/model"
)

// BadgePosition describes how an event badge renders within one month cell.
type BadgePosition string

const (
	// BadgeFirst is the start day of a multi-day event: title shown,
	// right edge squared to connect with the next cell.
	BadgeFirst BadgePosition = "first"
	// BadgeMiddle is an interior day: no text, both edges squared.
	BadgeMiddle BadgePosition = "middle"
	// BadgeLast is the final day: left edge squared, right edge rounded.
	BadgeLast BadgePosition = "last"
	// BadgeNone is a single-day event: fully rounded, title shown.
	BadgeNone BadgePosition = "none"
)

// BadgeDayState returns the rendering sub-state for an event on cellDate.
func BadgeDayState(ev model.Event, cellDate time.Time) BadgePosition {
	start := startOfDay(ev.Start)
	end := startOfDay(ev.End)
	cell := startOfDay(cellDate)

	switch {
	case start.Equal(end):
		return BadgeNone
	case cell.Equal(start):
		return BadgeFirst
	case cell.Equal(end):
		return BadgeLast
	default:
		return BadgeMiddle
	}
}

// MonthEventPositions assigns a row slot to every event visible in the
// month grid around selectedDate, keyed by event ID. Multi-day events are
// placed first in descending span order, then single-day events in
// ascending start-time order. The scan walks the grid's days left to right
// carrying previously assigned slots, so a multi-day event occupies the
// identical slot on every day it spans; a day only allocates fresh slots
// (lowest index unused that day) for events it sees for the first time.
//
// Slots are unbounded here; consumers render slots 0 through
// MaxVisibleSlots-1 and collapse the rest into the overflow count.
func MonthEventPositions(multiDay, singleDay []model.Event, selectedDate time.Time) map[string]int {
	positions := make(map[string]int)

	cells := CalendarCells(selectedDate)
	if len(cells) == 0 {
		return positions
	}

	ordered := make([]model.Event, 0, len(multiDay)+len(singleDay))
	ordered = append(ordered, multiDay...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return daysBetween(ordered[i].Start, ordered[i].End) > daysBetween(ordered[j].Start, ordered[j].End)
	})

	singles := make([]model.Event, len(singleDay))
	copy(singles, singleDay)
	sort.SliceStable(singles, func(i, j int) bool { return singles[i].Start.Before(singles[j].Start) })
	ordered = append(ordered, singles...)

	fresh := make([]model.Event, 0, 8)
	for _, cell := range cells {
		dayStart := startOfDay(cell.Date)
		dayEnd := endOfDay(cell.Date)

		used := make(map[int]bool)
		fresh = fresh[:0]

		for _, ev := range ordered {
			if !rangesIntersect(ev.Start, ev.End, dayStart, dayEnd) {
				continue
			}
			if slot, ok := positions[ev.ID]; ok {
				used[slot] = true
				continue
			}
			fresh = append(fresh, ev)
		}

		for _, ev := range fresh {
			slot := 0
			for used[slot] {
				slot++
			}
			used[slot] = true
			positions[ev.ID] = slot
		}
	}

	return positions
}
