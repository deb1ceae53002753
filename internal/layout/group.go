package layout

import (
	"sort"
	"time"

	"bigcal/internal/model"
)

// GroupEvents clusters a day's events into column groups. Events are walked
// in start-time order; an event joins the newest group when its start is
// strictly before the latest end among the events already in that group,
// otherwise it opens a new group. Back-to-back events, where one ends
// exactly as the next begins, do not overlap.
//
// The grouping is deliberately conservative: a group only guarantees
// chained overlap between its members, not a minimal column count.
// DayBlockLayout compensates with a second pass that reclaims full width
// for events whose group turns out not to conflict with any other.
func GroupEvents(dayEvents []model.Event) [][]model.Event {
	sorted := make([]model.Event, len(dayEvents))
	copy(sorted, dayEvents)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var groups [][]model.Event
	var latestEnd []time.Time // running max end per group, index-aligned

	for _, ev := range sorted {
		last := len(groups) - 1
		if last >= 0 && ev.Start.Before(latestEnd[last]) {
			groups[last] = append(groups[last], ev)
			if ev.End.After(latestEnd[last]) {
				latestEnd[last] = ev.End
			}
			continue
		}
		groups = append(groups, []model.Event{ev})
		latestEnd = append(latestEnd, ev.End)
	}
	return groups
}
