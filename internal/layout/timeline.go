package layout

import "time"

// TimelinePosition returns the current-time indicator's vertical position
// as a percentage of the visible hour span, and whether the indicator is
// visible at all. Callers pass time.Now().
func TimelinePosition(now time.Time, firstHour, lastHour int) (percent float64, visible bool) {
	if h := now.Hour(); h < firstHour || h >= lastHour {
		return 0, false
	}

	minutes := float64(now.Hour()*60 + now.Minute())
	start := float64(firstHour * 60)
	span := float64(lastHour*60) - start
	return (minutes - start) / span * 100, true
}
