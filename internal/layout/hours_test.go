package layout

import (
	"testing"
	"time"

	"bigcal/internal/model"
)

func TestVisibleHourRangeWidensBothDirections(t *testing.T) {
	events := []model.Event{ev("wide", at(2024, 3, 5, 8, 0), at(2024, 3, 5, 18, 0))}

	hours, earliest, latest := VisibleHourRange(HourRange{From: 9, To: 17}, events)
	if earliest != 8 || latest != 18 {
		t.Fatalf("bounds: %d..%d, want 8..18", earliest, latest)
	}
	if len(hours) != 10 || hours[0] != 8 || hours[len(hours)-1] != 17 {
		t.Fatalf("hours: %v", hours)
	}
}

func TestVisibleHourRangeNeverNarrows(t *testing.T) {
	events := []model.Event{ev("inside", at(2024, 3, 5, 10, 0), at(2024, 3, 5, 11, 0))}

	_, earliest, latest := VisibleHourRange(HourRange{From: 7, To: 18}, events)
	if earliest != 7 || latest != 18 {
		t.Fatalf("configured bounds must hold: %d..%d", earliest, latest)
	}
}

func TestVisibleHourRangeRoundsEndMinutesUp(t *testing.T) {
	events := []model.Event{ev("late", at(2024, 3, 5, 9, 0), at(2024, 3, 5, 18, 15))}

	_, _, latest := VisibleHourRange(HourRange{From: 9, To: 17}, events)
	if latest != 19 {
		t.Fatalf("latest: %d, want 19 (18:15 rounds up)", latest)
	}
}

func TestVisibleHourRangeCapsAtMidnight(t *testing.T) {
	events := []model.Event{ev("night", at(2024, 3, 5, 9, 0), at(2024, 3, 5, 23, 30))}

	_, _, latest := VisibleHourRange(HourRange{From: 9, To: 17}, events)
	if latest != 24 {
		t.Fatalf("latest: %d, want cap at 24", latest)
	}
}

func TestIsWorkingHour(t *testing.T) {
	wh := WorkingHours{
		time.Monday:   {From: 8, To: 17},
		time.Saturday: {From: 8, To: 12},
		time.Sunday:   {From: 0, To: 0},
	}

	monday := at(2024, 3, 4, 0, 0)
	if !IsWorkingHour(monday, 8, wh) {
		t.Fatal("08:00 Monday should be working")
	}
	if IsWorkingHour(monday, 17, wh) {
		t.Fatal("the To hour is exclusive")
	}
	if IsWorkingHour(monday, 7, wh) {
		t.Fatal("07:00 Monday should not be working")
	}

	sunday := at(2024, 3, 3, 0, 0)
	if IsWorkingHour(sunday, 10, wh) {
		t.Fatal("a {0,0} day has no working hours")
	}

	// Weekday missing from the config behaves the same.
	tuesday := at(2024, 3, 5, 0, 0)
	if IsWorkingHour(tuesday, 10, wh) {
		t.Fatal("missing weekday entry has no working hours")
	}
}

func TestTimelinePosition(t *testing.T) {
	pct, visible := TimelinePosition(at(2024, 3, 5, 12, 0), 8, 18)
	if !visible {
		t.Fatal("noon should be visible in an 8-18 grid")
	}
	if pct != 40 {
		t.Fatalf("position: %v, want 40%%", pct)
	}

	if _, visible := TimelinePosition(at(2024, 3, 5, 7, 59), 8, 18); visible {
		t.Fatal("before the first hour the indicator is hidden")
	}
	if _, visible := TimelinePosition(at(2024, 3, 5, 18, 0), 8, 18); visible {
		t.Fatal("at the exclusive end the indicator is hidden")
	}
}
