// Package ics loads calendar events from local iCalendar files into the
// widget's event model. It is an import path only: no fetching, no
// recurrence expansion.
package ics

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "bigcal/internal/log"
	"bigcal/internal/model"
)

// Load reads the ICS file at path and returns its events.
func Load(path string) ([]model.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes an ICS payload into events. VEVENTs that cannot be
// represented are skipped with a warning rather than failing the whole
// load: events without a UID or usable times, and recurring events
// (recurrence expansion is out of scope for this library).
func Parse(r io.Reader) ([]model.Event, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0)
	for _, ve := range cal.Events() {
		ev, err := parseVEvent(ve)
		if err != nil {
			appLog.Warn("ics: skipping event", "reason", err.Error())
			continue
		}
		events = append(events, ev)
	}

	appLog.Info("ics: load completed", "event_count", len(events))
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (model.Event, error) {
	var out model.Event

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return out, errors.New("missing UID")
	}
	out.ID = uid.Value

	if ve.GetProperty(ical.ComponentPropertyRrule) != nil {
		return out, errors.New("recurring event (RRULE) not supported: " + uid.Value)
	}

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Title = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		out.Description = p.Value
	}

	var (
		start, end  time.Time
		err, endErr error
	)
	allDay := isAllDayStart(ve)
	if allDay {
		start, err = ve.GetAllDayStartAt()
		end, endErr = ve.GetAllDayEndAt()
	} else {
		start, err = ve.GetStartAt()
		end, endErr = ve.GetEndAt()
	}
	if err != nil {
		return out, errors.New("unusable DTSTART: " + uid.Value)
	}

	switch {
	case allDay:
		// DTEND of an all-day event is exclusive; the model's End is
		// inclusive, so pull it back inside the last day.
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		if endErr != nil || !end.After(start) {
			end = start.AddDate(0, 0, 1)
		}
		end = end.Add(-time.Nanosecond)
	case endErr != nil || end.Before(start):
		end = start
	}

	out.Start = start
	out.End = end

	out.Color = model.ColorGray
	if p := ve.GetProperty(ical.ComponentProperty("COLOR")); p != nil {
		out.Color = model.ParseColor(p.Value)
	}

	if p := ve.GetProperty(ical.ComponentPropertyOrganizer); p != nil {
		out.User = organizerToUser(p)
	}

	return out, nil
}

// isAllDayStart detects all-day events the way feeds actually encode them:
// a VALUE=DATE parameter or a bare YYYYMMDD DTSTART.
func isAllDayStart(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}

func organizerToUser(p *ical.IANAProperty) model.User {
	u := model.User{ID: strings.TrimPrefix(p.Value, "mailto:")}
	u.Name = u.ID
	if params := p.ICalParameters; params != nil {
		if cn, ok := params["CN"]; ok && len(cn) > 0 && cn[0] != "" {
			u.Name = cn[0]
		}
	}
	return u
}
