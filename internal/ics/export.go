package ics

import (
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/leeehvinicius/primata-console/internal/calendar"
)

// uidDomain suffixes event UIDs so re-exports of the same appointment keep
// a stable identity in calendar clients.
const uidDomain = "@primata"

// BuildCalendar converts mapped events into an iCalendar document. Events
// keep their input order; callers decide which window and filter produced
// them.
func BuildCalendar(events []calendar.Event) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//primata//console//EN")

	stamp := time.Now().UTC()
	for _, ev := range events {
		ve := cal.AddEvent(ev.ID + uidDomain)
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(ev.Start)
		ve.SetEndAt(ev.End)
		ve.SetSummary(ev.Title)
		if ev.Category != "" {
			ve.AddCategory(ev.Category)
		}
	}
	return cal
}

// Write serializes the events as an iCalendar stream.
func Write(w io.Writer, events []calendar.Event) error {
	return BuildCalendar(events).SerializeTo(w)
}
