package ics

import (
	"strings"
	"testing"
	"time"

	"bigcal/internal/model"
)

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:timed-1\r\n" +
	"SUMMARY:Design review\r\n" +
	"DESCRIPTION:Quarterly sync\r\n" +
	"COLOR:green\r\n" +
	"ORGANIZER;CN=Alex Kim:mailto:alex@example.com\r\n" +
	"DTSTART:20240305T100000Z\r\n" +
	"DTEND:20240305T113000Z\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseTimedEvent(t *testing.T) {
	events, err := Parse(strings.NewReader(sampleICS))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("event count: %d", len(events))
	}

	ev := events[0]
	if ev.ID != "timed-1" || ev.Title != "Design review" || ev.Description != "Quarterly sync" {
		t.Fatalf("unexpected fields: %+v", ev)
	}
	if ev.Color != model.ColorGreen {
		t.Fatalf("color: %v", ev.Color)
	}
	if ev.User.Name != "Alex Kim" || ev.User.ID != "alex@example.com" {
		t.Fatalf("organizer: %+v", ev.User)
	}
	if ev.Duration() != 90*time.Minute {
		t.Fatalf("duration: %v", ev.Duration())
	}
}

func TestParseAllDayEventHasInclusiveEnd(t *testing.T) {
	ics := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:allday-1\r\n" +
		"SUMMARY:Conference\r\n" +
		"DTSTART;VALUE=DATE:20240305\r\n" +
		"DTEND;VALUE=DATE:20240307\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	events, err := Parse(strings.NewReader(ics))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("event count: %d", len(events))
	}

	ev := events[0]
	if !ev.IsMultiDay() {
		t.Fatal("two-day all-day event must classify as multi-day")
	}
	// Exclusive DTEND 20240307 becomes an inclusive end on the 6th.
	if ev.End.Day() != 6 {
		t.Fatalf("inclusive end day: %d", ev.End.Day())
	}
}

func TestParseSkipsRecurringAndBrokenEvents(t *testing.T) {
	ics := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:recurring-1\r\n" +
		"SUMMARY:Weekly\r\n" +
		"RRULE:FREQ=WEEKLY\r\n" +
		"DTSTART:20240305T100000Z\r\n" +
		"DTEND:20240305T110000Z\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"SUMMARY:No UID\r\n" +
		"DTSTART:20240305T100000Z\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:ok-1\r\n" +
		"SUMMARY:Keeper\r\n" +
		"DTSTART:20240306T100000Z\r\n" +
		"DTEND:20240306T110000Z\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	events, err := Parse(strings.NewReader(ics))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].ID != "ok-1" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestParseUnknownColorFallsBackToGray(t *testing.T) {
	ics := strings.Replace(sampleICS, "COLOR:green", "COLOR:turquoise", 1)

	events, err := Parse(strings.NewReader(ics))
	if err != nil {
		t.Fatal(err)
	}
	if events[0].Color != model.ColorGray {
		t.Fatalf("color: %v", events[0].Color)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse(strings.NewReader("not an ics payload")); err == nil {
		t.Fatal("expected parse error")
	}
}
