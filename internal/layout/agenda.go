package layout

import (
	"sort"
	"time"

	"bigcal/internal/model"
)

// AgendaDay is one chronological bucket of the agenda view.
type AgendaDay struct {
	Date time.Time

	// Events are the single-day events starting on Date.
	Events []model.Event

	// MultiDayEvents are the multi-day events active on Date.
	MultiDayEvents []model.Event
}

// AgendaDays groups a month's events day by day, chronologically. Single-day
// events bucket under their start date; multi-day events appear under every
// day they span. Days outside the month containing selectedDate are left out.
func AgendaDays(singleDay, multiDay []model.Event, selectedDate time.Time) []AgendaDay {
	buckets := make(map[time.Time]*AgendaDay)

	bucket := func(day time.Time) *AgendaDay {
		key := startOfDay(day)
		b, ok := buckets[key]
		if !ok {
			b = &AgendaDay{Date: key}
			buckets[key] = b
		}
		return b
	}

	for _, ev := range singleDay {
		if !sameMonth(ev.Start, selectedDate) {
			continue
		}
		b := bucket(ev.Start)
		b.Events = append(b.Events, ev)
	}

	for _, ev := range multiDay {
		last := startOfDay(ev.End)
		for day := startOfDay(ev.Start); !day.After(last); day = day.AddDate(0, 0, 1) {
			if !sameMonth(day, selectedDate) {
				continue
			}
			b := bucket(day)
			b.MultiDayEvents = append(b.MultiDayEvents, ev)
		}
	}

	out := make([]AgendaDay, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
