package formatter

import (
	"fmt"
	"strings"
	"time"
)

// PadRight pads a string to a minimum visible width, truncating if needed.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > width {
		if width == 1 {
			return "…"
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}

// DayHeading formats a grid column heading, e.g. "Wed 03/01".
func DayHeading(t time.Time) string {
	return t.Format("Mon 02/01")
}

// HourLabel formats an hour band label for the grid gutter, e.g. "08h".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02dh", hour)
}

// ClockRange formats an event interval, e.g. "09:00–10:30".
func ClockRange(start, end time.Time) string {
	return start.Format("15:04") + "–" + end.Format("15:04")
}
