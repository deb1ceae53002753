package model

import (
	"errors"
	"strings"
	"time"
)

// Color is one of the seven named event colors supported by the widget.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorGray   Color = "gray"
)

// Colors lists every valid color in display order.
var Colors = []Color{
	ColorBlue, ColorGreen, ColorRed, ColorYellow,
	ColorPurple, ColorOrange, ColorGray,
}

// Valid reports whether c is one of the seven named colors.
func (c Color) Valid() bool {
	for _, v := range Colors {
		if c == v {
			return true
		}
	}
	return false
}

// ParseColor maps a string onto the color enum, case-insensitively.
// Unknown values fall back to gray.
func ParseColor(s string) Color {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c
	}
	return ColorGray
}

// User is referenced by events; events hold a copy, never exclusive ownership.
type User struct {
	ID   string
	Name string

	// PicturePath is an optional avatar location.
	PicturePath string
}

// Event is a scheduled calendar entry. Start and End are inclusive local
// wall-clock instants with the invariant Start <= End.
type Event struct {
	ID          string
	Title       string
	Description string

	Start time.Time
	End   time.Time

	Color Color
	User  User
}

// IsMultiDay reports whether the event spans more than one calendar date,
// comparing the dates of Start and End with time-of-day ignored.
func (e Event) IsMultiDay() bool {
	sy, sm, sd := e.Start.Date()
	ey, em, ed := e.End.Date()
	return sy != ey || sm != em || sd != ed
}

// Duration returns End - Start.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// MoveTo translates the event so it begins at newStart, preserving its
// duration. This is the data transform behind drag-and-drop repositioning.
func (e Event) MoveTo(newStart time.Time) Event {
	moved := e
	moved.Start = newStart
	moved.End = newStart.Add(e.Duration())
	return moved
}

// Validate checks the constraints the event form enforces before an event
// may reach the layout engine: non-empty title and description, a valid
// color, and a strictly positive time range.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("event: title is required")
	}
	if strings.TrimSpace(e.Description) == "" {
		return errors.New("event: description is required")
	}
	if !e.Color.Valid() {
		return errors.New("event: unknown color " + string(e.Color))
	}
	if e.Start.IsZero() || e.End.IsZero() {
		return errors.New("event: start and end are required")
	}
	if !e.Start.Before(e.End) {
		return errors.New("event: start must be before end")
	}
	return nil
}

// DayCell is one cell of the month grid. Cells are transient: rebuilt on
// every grid computation, never persisted.
type DayCell struct {
	Date time.Time

	// Day is the day-of-month number shown in the cell.
	Day int

	// CurrentMonth is false for the leading/trailing padding days that
	// complete the first and last week rows.
	CurrentMonth bool
}
