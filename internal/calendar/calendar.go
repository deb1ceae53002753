// Package calendar owns the mutable widget state: the event list, the
// known users, the selected date and the active view. All operations are
// synchronous and return plain values; rendering layers recompute their
// layout from the returned state.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bigcal/internal/config"
	"bigcal/internal/layout"
	"bigcal/internal/model"
)

// UserAll is the owner filter that matches every event.
const UserAll = "all"

// ErrNotFound is returned when an event ID has no match in the store.
var ErrNotFound = errors.New("calendar: event not found")

// Controller is the single owner of calendar state.
type Controller struct {
	cfg      *config.Config
	events   []model.Event
	users    []model.User
	selected time.Time
	view     layout.View
}

// New builds a controller positioned on start in month view.
func New(cfg *config.Config, start time.Time) *Controller {
	return &Controller{
		cfg:      cfg,
		selected: start,
		view:     layout.ViewMonth,
	}
}

// AddEvent validates ev, mints an ID when it has none, and stores it.
// The stored event is returned.
func (c *Controller) AddEvent(ev model.Event) (model.Event, error) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if err := ev.Validate(); err != nil {
		return model.Event{}, err
	}
	c.events = append(c.events, ev)
	return ev, nil
}

// UpdateEvent replaces the stored event with the same ID.
func (c *Controller) UpdateEvent(ev model.Event) error {
	if err := ev.Validate(); err != nil {
		return err
	}
	for i := range c.events {
		if c.events[i].ID == ev.ID {
			c.events[i] = ev
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, ev.ID)
}

// DeleteEvent removes the event with the given ID.
func (c *Controller) DeleteEvent(id string) error {
	for i := range c.events {
		if c.events[i].ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// MoveEvent shifts an event to a new start, keeping its duration.
func (c *Controller) MoveEvent(id string, newStart time.Time) (model.Event, error) {
	for i := range c.events {
		if c.events[i].ID == id {
			c.events[i] = c.events[i].MoveTo(newStart)
			return c.events[i], nil
		}
	}
	return model.Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// SetEvents replaces the whole event list, e.g. after an ICS load.
func (c *Controller) SetEvents(events []model.Event) {
	c.events = append([]model.Event(nil), events...)
}

// Events returns a copy of the stored events.
func (c *Controller) Events() []model.Event {
	return append([]model.Event(nil), c.events...)
}

// EventsForUser filters events by owner. An empty ID or UserAll matches
// every event.
func (c *Controller) EventsForUser(userID string) []model.Event {
	if userID == "" || userID == UserAll {
		return c.Events()
	}
	out := make([]model.Event, 0)
	for _, ev := range c.events {
		if ev.User.ID == userID {
			out = append(out, ev)
		}
	}
	return out
}

// SetUsers replaces the known user list.
func (c *Controller) SetUsers(users []model.User) {
	c.users = append([]model.User(nil), users...)
}

// Users returns a copy of the known user list.
func (c *Controller) Users() []model.User {
	return append([]model.User(nil), c.users...)
}

// SelectDate moves the selection. A zero time is ignored so callers can
// pass unset optional inputs through unchanged.
func (c *Controller) SelectDate(d time.Time) {
	if d.IsZero() {
		return
	}
	c.selected = d
}

// SelectedDate returns the current selection.
func (c *Controller) SelectedDate() time.Time { return c.selected }

// SetView switches the active view.
func (c *Controller) SetView(v layout.View) { c.view = v }

// View returns the active view.
func (c *Controller) View() layout.View { return c.view }

// Navigate steps the selection by one unit of the active view.
func (c *Controller) Navigate(dir layout.Direction) {
	c.selected = layout.NavigateDate(c.selected, c.view, dir)
}

// RangeLabel renders the header text for the current view and selection.
func (c *Controller) RangeLabel() string {
	return layout.RangeText(c.view, c.selected)
}

// EventCount reports how many events fall inside the visible range.
func (c *Controller) EventCount() int {
	return layout.EventsCount(c.events, c.selected, c.view)
}

// Settings returns the configuration the controller was built with.
func (c *Controller) Settings() *config.Config { return c.cfg }
