package calendar

import "time"

// Default vertical axis: hour bands 8 through 23 inclusive.
const (
	DefaultFirstHour = 8
	DefaultLastHour  = 23
)

// GridConfig describes the day×hour grid geometry. Heights are in abstract
// layout units; the terminal renderer uses one unit per row, but the math
// holds for any unit.
type GridConfig struct {
	FirstHour      int
	LastHour       int
	RowHeight      float64
	MinBlockHeight float64
}

// DefaultGridConfig returns the grid geometry used by the console.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		FirstHour:      DefaultFirstHour,
		LastHour:       DefaultLastHour,
		RowHeight:      1,
		MinBlockHeight: 1,
	}
}

// Hours returns the ascending hour bands of the vertical axis.
func (g GridConfig) Hours() []int {
	hours := make([]int, 0, g.LastHour-g.FirstHour+1)
	for h := g.FirstHour; h <= g.LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// TotalHeight returns the full vertical extent of the grid.
func (g GridConfig) TotalHeight() float64 {
	return float64(g.LastHour-g.FirstHour+1) * g.RowHeight
}

// Offset returns the vertical position of an event block inside its day
// column. Events starting before the first grid hour pin to the top; there
// is no bottom clamp, so late events may overflow past the last hour band.
func (g GridConfig) Offset(ev Event) float64 {
	off := float64(ev.Start.Hour()-g.FirstHour) * g.RowHeight
	if off < 0 {
		return 0
	}
	if total := g.TotalHeight(); off > total {
		return total
	}
	return off
}

// Height returns the block height, proportional to duration with a floor.
func (g GridConfig) Height(ev Event) float64 {
	h := ev.Duration().Hours() * g.RowHeight
	if h < g.MinBlockHeight {
		return g.MinBlockHeight
	}
	return h
}

// Block is an event positioned inside a day column.
type Block struct {
	Event  Event
	Offset float64
	Height float64
}

// DayColumn is one day of the grid with its positioned blocks.
type DayColumn struct {
	Date   time.Time
	Today  bool
	Blocks []Block
}

// Layout positions every event inside its day column. The function is pure:
// the same window, geometry, events, and clock produce the same columns.
// Blocks keep the input event order, and overlapping events stay overlapping;
// the grid is a display aid, not a scheduling authority, so no conflict
// detection or column-splitting is attempted.
func Layout(w Window, g GridConfig, events []Event, now time.Time) []DayColumn {
	cols := make([]DayColumn, 0, w.Span)
	for _, day := range w.Days() {
		col := DayColumn{Date: day, Today: SameDay(day, now)}
		for _, ev := range events {
			if !SameDay(ev.Start, day) {
				continue
			}
			col.Blocks = append(col.Blocks, Block{
				Event:  ev,
				Offset: g.Offset(ev),
				Height: g.Height(ev),
			})
		}
		cols = append(cols, col)
	}
	return cols
}
