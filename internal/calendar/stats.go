package calendar

import "time"

// StatsConfirmedPlaceholder is the fixed value reported for the confirmed
// card. The upstream console never derived it from event status and left the
// formula unspecified, so it stays a placeholder here.
const StatsConfirmedPlaceholder = 0

// Stats summarizes a mapped event list for the summary cards.
type Stats struct {
	Today     int
	Week      int
	Total     int
	Confirmed int
}

// Aggregate counts events starting on now's calendar day, events starting
// within the window's first seven days ([anchor, anchor+6d], both ends
// inclusive), and the total. The today count does not depend on the anchor.
func Aggregate(events []Event, w Window, now time.Time) Stats {
	s := Stats{Total: len(events), Confirmed: StatsConfirmedPlaceholder}
	weekEnd := w.Anchor.AddDate(0, 0, 7)
	for _, ev := range events {
		if SameDay(ev.Start, now) {
			s.Today++
		}
		if !ev.Start.Before(w.Anchor) && ev.Start.Before(weekEnd) {
			s.Week++
		}
	}
	return s
}
