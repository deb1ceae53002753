package layout

import (
	"sort"
	"time"

	"bigcal/internal/model"
)

// MaxVisibleSlots is the number of badge rows a month cell renders before
// collapsing the remainder into a "+N more" indicator.
const MaxVisibleSlots = 3

// SplitEvents partitions events into single-day and multi-day lists,
// preserving input order.
func SplitEvents(events []model.Event) (singleDay, multiDay []model.Event) {
	for _, ev := range events {
		if ev.IsMultiDay() {
			multiDay = append(multiDay, ev)
		} else {
			singleDay = append(singleDay, ev)
		}
	}
	return singleDay, multiDay
}

// PositionedEvent pairs an event with its month-view slot for one day cell.
type PositionedEvent struct {
	model.Event

	// Slot is the row index assigned by MonthEventPositions; -1 when the
	// event has no precomputed position.
	Slot int
}

// MonthCellEvents returns the events active on date together with their
// precomputed slot assignments, sorted by slot ascending.
func MonthCellEvents(date time.Time, events []model.Event, positions map[string]int) []PositionedEvent {
	dayStart := startOfDay(date)
	dayEnd := endOfDay(date)

	var out []PositionedEvent
	for _, ev := range events {
		if !rangesIntersect(ev.Start, ev.End, dayStart, dayEnd) {
			continue
		}
		slot, ok := positions[ev.ID]
		if !ok {
			slot = -1
		}
		out = append(out, PositionedEvent{Event: ev, Slot: slot})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// OverflowCount is the "+N more" count for a month cell: everything beyond
// the visible slots, clamped at zero.
func OverflowCount(cellEvents []PositionedEvent) int {
	if n := len(cellEvents) - MaxVisibleSlots; n > 0 {
		return n
	}
	return 0
}

// CurrentEvents returns the events happening at now, meaning now falls
// within the inclusive [Start, End] interval. Callers pass time.Now().
func CurrentEvents(events []model.Event, now time.Time) []model.Event {
	var out []model.Event
	for _, ev := range events {
		if !now.Before(ev.Start) && !now.After(ev.End) {
			out = append(out, ev)
		}
	}
	return out
}

// EventsForDay returns the events that start or end on day. Week view uses
// this to pick each column's events.
func EventsForDay(events []model.Event, day time.Time) []model.Event {
	var out []model.Event
	for _, ev := range events {
		if sameDay(ev.Start, day) || sameDay(ev.End, day) {
			out = append(out, ev)
		}
	}
	return out
}

// EventsStartingOn returns the events whose start date falls on day.
func EventsStartingOn(events []model.Event, day time.Time) []model.Event {
	var out []model.Event
	for _, ev := range events {
		if sameDay(ev.Start, day) {
			out = append(out, ev)
		}
	}
	return out
}

// MultiDayEventsForDay returns the multi-day events active on day, sorted
// by span length descending. It feeds the badge row above the hour grid in
// day and week views.
func MultiDayEventsForDay(events []model.Event, day time.Time) []model.Event {
	dayStart := startOfDay(day)
	dayEnd := endOfDay(day)

	var out []model.Event
	for _, ev := range events {
		if rangesIntersect(ev.Start, ev.End, dayStart, dayEnd) {
			out = append(out, ev)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return daysBetween(out[i].Start, out[i].End) > daysBetween(out[j].Start, out[j].End)
	})
	return out
}

// SpanProgress reports which day of its total span the event is on at
// cellDate, both 1-based: a three-day event on its second day yields (2, 3).
func SpanProgress(ev model.Event, cellDate time.Time) (current, total int) {
	total = daysBetween(ev.Start, ev.End) + 1
	current = daysBetween(ev.Start, cellDate) + 1
	return current, total
}
