package calendar

import "time"

// DefaultSpan is the number of consecutive days shown per window.
const DefaultSpan = 7

// Window is a rolling sequence of consecutive calendar days. The anchor is
// always normalized to midnight; transitions return a new window rather than
// mutating the receiver.
type Window struct {
	Anchor time.Time
	Span   int
}

// NewWindow builds a window anchored on anchor's calendar day.
func NewWindow(anchor time.Time, span int) Window {
	if span <= 0 {
		span = DefaultSpan
	}
	return Window{Anchor: Normalize(anchor), Span: span}
}

// Normalize strips the time-of-day component, keeping the location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Days returns the window's days in order, starting at the anchor.
func (w Window) Days() []time.Time {
	days := make([]time.Time, w.Span)
	for i := range days {
		days[i] = w.Anchor.AddDate(0, 0, i)
	}
	return days
}

// End returns the last day of the window.
func (w Window) End() time.Time {
	return w.Anchor.AddDate(0, 0, w.Span-1)
}

// Contains reports whether t falls on one of the window's days.
func (w Window) Contains(t time.Time) bool {
	d := Normalize(t)
	return !d.Before(w.Anchor) && !d.After(w.End())
}

// Next returns the window advanced by one full span.
func (w Window) Next() Window {
	return Window{Anchor: w.Anchor.AddDate(0, 0, w.Span), Span: w.Span}
}

// Prev returns the window moved back by one full span.
func (w Window) Prev() Window {
	return Window{Anchor: w.Anchor.AddDate(0, 0, -w.Span), Span: w.Span}
}

// Today returns the window re-anchored on now's calendar day.
func (w Window) Today(now time.Time) Window {
	return Window{Anchor: Normalize(now), Span: w.Span}
}
