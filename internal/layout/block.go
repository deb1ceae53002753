package layout

import (
	"time"

	"bigcal/internal/model"
)

// Scale converts event durations into pixels for absolute positioning.
// The values are configuration, not layout rules; DefaultScale matches the
// reference UI.
type Scale struct {
	// HourHeight is the rendered height of one hour in pixels.
	HourHeight float64

	// Gutter is subtracted from every block's height so stacked blocks
	// stay visually separated.
	Gutter float64
}

// DefaultScale is 96px per hour with an 8px gutter.
var DefaultScale = Scale{HourHeight: 96, Gutter: 8}

// minBlockHeight keeps zero-length and very short events renderable.
const minBlockHeight = 12.0

// HourBounds is the visible hour window block geometry is computed against,
// inclusive From, exclusive To.
type HourBounds struct {
	From int
	To   int
}

// BlockStyle is the absolute-position descriptor for one event block:
// pixel offsets vertically, percentages horizontally.
type BlockStyle struct {
	Top    float64 // px from the top of the hour grid
	Height float64 // px
	Left   float64 // percent of the day column
	Width  float64 // percent of the day column
}

// EventBlockStyle computes the geometry for an event rendered in the column
// of day as the groupIndex-th of groupCount column clusters. Top is the
// minute distance from bounds.From scaled by the hour height; height is the
// scaled duration minus the gutter, clamped to a renderable minimum.
func EventBlockStyle(ev model.Event, day time.Time, groupIndex, groupCount int, bounds HourBounds, scale Scale) BlockStyle {
	gridStart := time.Date(day.Year(), day.Month(), day.Day(), bounds.From, 0, 0, 0, day.Location())
	startMinutes := ev.Start.Sub(gridStart).Minutes()
	durationMinutes := ev.Duration().Minutes()

	height := durationMinutes/60*scale.HourHeight - scale.Gutter
	if height < minBlockHeight {
		height = minBlockHeight
	}

	if groupCount < 1 {
		groupCount = 1
	}

	return BlockStyle{
		Top:    startMinutes / 60 * scale.HourHeight,
		Height: height,
		Left:   float64(groupIndex) / float64(groupCount) * 100,
		Width:  100 / float64(groupCount),
	}
}

// EventBlock is a day-column event with its final geometry.
type EventBlock struct {
	Event model.Event
	Style BlockStyle
}

// DayBlockLayout runs the full two-pass positioning policy for one day
// column: greedy grouping allocates tentative columns, then every event is
// checked against the other groups and takes back the full column width
// when no cross-group interval actually overlaps it. The override
// compensates for the grouper's conservative column allocation and must be
// kept in step with it.
func DayBlockLayout(dayEvents []model.Event, day time.Time, bounds HourBounds, scale Scale) []EventBlock {
	groups := GroupEvents(dayEvents)

	blocks := make([]EventBlock, 0, len(dayEvents))
	for gi, group := range groups {
		for _, ev := range group {
			style := EventBlockStyle(ev, day, gi, len(groups), bounds, scale)
			if !overlapsOtherGroup(ev, groups, gi) {
				style.Left = 0
				style.Width = 100
			}
			blocks = append(blocks, EventBlock{Event: ev, Style: style})
		}
	}
	return blocks
}

func overlapsOtherGroup(ev model.Event, groups [][]model.Event, self int) bool {
	for gi, group := range groups {
		if gi == self {
			continue
		}
		for _, other := range group {
			if intervalsOverlap(ev.Start, ev.End, other.Start, other.End) {
				return true
			}
		}
	}
	return false
}
