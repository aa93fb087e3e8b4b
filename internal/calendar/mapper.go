package calendar

import (
	"fmt"
	"time"

	"github.com/leeehvinicius/primata-console/internal/domain"
)

// Event is a render-local interval derived from an appointment record.
// Events are rebuilt on every pass from the current record list and window;
// they are never mutated or shared across passes.
type Event struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	Category string
	Color    string
}

// Duration returns the event's length.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// DefaultDuration is synthesized for records without an end time.
const DefaultDuration = time.Hour

// DefaultColor is used for unknown or missing service categories.
const DefaultColor = "#83a598"

// categoryColors maps service category tags to display colors.
var categoryColors = map[string]string{
	"facial":    "#8ec07c",
	"corporal":  "#fabd2f",
	"massagem":  "#d3869b",
	"laser":     "#fb4934",
	"depilacao": "#fe8019",
	"avaliacao": "#d5c4a1",
}

// CategoryColor resolves the display color for a service category.
// Unknown categories are not an error; they get the default color.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return DefaultColor
}

// MapResult is the output of one mapping pass: the surviving events plus the
// count of records dropped for unparseable date or time strings.
type MapResult struct {
	Events  []Event
	Skipped int
}

// MapEvents converts appointment records into events for one render pass.
//
// Records are dropped when their status does not equal statusFilter (empty
// filter keeps everything; the match is exact and case-sensitive) or when
// their date falls outside the window. A missing end time becomes start plus
// one hour. Output order is the input order; positioning is by time offset,
// so no sort is imposed. Records whose date or time strings do not parse are
// skipped and counted rather than emitted as broken intervals.
func MapEvents(records []domain.Appointment, statusFilter string, w Window) MapResult {
	var res MapResult
	for _, rec := range records {
		if statusFilter != "" && rec.Status != statusFilter {
			continue
		}
		start, err := CombineDateTime(rec.Date, rec.StartTime)
		if err != nil {
			res.Skipped++
			continue
		}
		if !w.Contains(start) {
			continue
		}
		end := start.Add(DefaultDuration)
		if rec.EndTime != "" {
			parsed, err := CombineDateTime(rec.Date, rec.EndTime)
			if err != nil {
				res.Skipped++
				continue
			}
			// Inverted or zero-length records fall back to the
			// synthesized duration so End stays after Start.
			if parsed.After(start) {
				end = parsed
			}
		}
		res.Events = append(res.Events, Event{
			ID:       rec.ID,
			Title:    rec.DisplayTitle(),
			Start:    start,
			End:      end,
			Category: rec.Service,
			Color:    CategoryColor(rec.Service),
		})
	}
	return res
}

// CombineDateTime combines a date-only string with a wall-clock "HH:MM"
// string into a single local instant.
func CombineDateTime(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("combining %q %q: %w", date, clock, err)
	}
	return t, nil
}
