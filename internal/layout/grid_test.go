package layout

import (
	"testing"
	"time"
)

func TestCalendarCellsCompleteWeeks(t *testing.T) {
	for _, month := range []time.Time{
		at(2024, 1, 15, 0, 0), // Jan 2024: starts Monday, 31 days -> 35 cells
		at(2024, 3, 10, 0, 0), // Mar 2024: starts Friday, 31 days -> 42 cells
		at(2026, 2, 1, 0, 0),  // Feb 2026: starts Sunday, 28 days -> 28 cells
		at(2024, 9, 5, 0, 0),  // Sep 2024: starts Sunday, 30 days -> 35 cells
	} {
		cells := CalendarCells(month)
		if len(cells)%7 != 0 {
			t.Fatalf("%v: %d cells is not a multiple of 7", month, len(cells))
		}
		if cells[0].Date.Weekday() != time.Sunday {
			t.Fatalf("%v: first cell is %v, want Sunday", month, cells[0].Date.Weekday())
		}
		if cells[len(cells)-1].Date.Weekday() != time.Saturday {
			t.Fatalf("%v: last cell is %v, want Saturday", month, cells[len(cells)-1].Date.Weekday())
		}
	}
}

func TestCalendarCellsSizes(t *testing.T) {
	if n := len(CalendarCells(at(2024, 1, 15, 0, 0))); n != 35 {
		t.Fatalf("Jan 2024: %d cells, want 35", n)
	}
	if n := len(CalendarCells(at(2024, 3, 10, 0, 0))); n != 42 {
		t.Fatalf("Mar 2024: %d cells, want 42", n)
	}
	if n := len(CalendarCells(at(2026, 2, 1, 0, 0))); n != 28 {
		t.Fatalf("Feb 2026: %d cells, want 28", n)
	}
}

func TestCalendarCellsPadding(t *testing.T) {
	cells := CalendarCells(at(2024, 3, 10, 0, 0))

	// March 2024 starts on a Friday: five leading February days.
	for i, want := range []int{25, 26, 27, 28, 29} {
		if cells[i].Day != want || cells[i].CurrentMonth {
			t.Fatalf("cell %d: day=%d current=%v", i, cells[i].Day, cells[i].CurrentMonth)
		}
	}
	if cells[5].Day != 1 || !cells[5].CurrentMonth {
		t.Fatalf("cell 5 should be March 1st, got day=%d current=%v", cells[5].Day, cells[5].CurrentMonth)
	}

	last := cells[len(cells)-1]
	if last.CurrentMonth || last.Day != 6 {
		t.Fatalf("last cell should be April 6, got day=%d current=%v", last.Day, last.CurrentMonth)
	}
}

func TestCalendarCellsDeterministic(t *testing.T) {
	a := CalendarCells(at(2024, 7, 1, 0, 0))
	b := CalendarCells(at(2024, 7, 31, 23, 59))

	if len(a) != len(b) {
		t.Fatalf("cell counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Date.Equal(b[i].Date) {
			t.Fatalf("cell %d differs: %v vs %v", i, a[i].Date, b[i].Date)
		}
	}
}

func TestYearMonthSlots(t *testing.T) {
	// March 2024 starts on a Friday: five blanks then 1..31.
	slots := YearMonthSlots(at(2024, 3, 1, 0, 0))
	if len(slots) != 36 {
		t.Fatalf("slot count: %d", len(slots))
	}
	for i := 0; i < 5; i++ {
		if slots[i] != 0 {
			t.Fatalf("slot %d should be blank, got %d", i, slots[i])
		}
	}
	if slots[5] != 1 || slots[35] != 31 {
		t.Fatalf("unexpected day numbers: first=%d last=%d", slots[5], slots[35])
	}
}
