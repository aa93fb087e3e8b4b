package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEvent(id string, start time.Time, dur time.Duration) Event {
	return Event{ID: id, Title: id, Start: start, End: start.Add(dur), Color: DefaultColor}
}

func TestGridConfig_Hours(t *testing.T) {
	g := DefaultGridConfig()

	hours := g.Hours()
	require.Len(t, hours, 16)
	assert.Equal(t, 8, hours[0])
	assert.Equal(t, 23, hours[15])
	assert.Equal(t, 16.0, g.TotalHeight())
}

func TestGridConfig_OffsetClampsToTop(t *testing.T) {
	g := DefaultGridConfig()
	early := makeEvent("e", time.Date(2024, time.January, 3, 6, 0, 0, 0, time.Local), time.Hour)

	assert.Equal(t, 0.0, g.Offset(early), "events before the first hour pin to the top")
}

func TestGridConfig_OffsetScalesWithRowHeight(t *testing.T) {
	g := GridConfig{FirstHour: 8, LastHour: 23, RowHeight: 40, MinBlockHeight: 10}
	ev := makeEvent("e", time.Date(2024, time.January, 3, 11, 15, 0, 0, time.Local), time.Hour)

	// Offset is computed from the start hour only; minutes do not shift it.
	assert.Equal(t, 120.0, g.Offset(ev))
}

func TestGridConfig_HeightProportionalToDuration(t *testing.T) {
	g := GridConfig{FirstHour: 8, LastHour: 23, RowHeight: 40, MinBlockHeight: 10}
	ev := makeEvent("e", time.Date(2024, time.January, 3, 9, 0, 0, 0, time.Local), 90*time.Minute)

	assert.Equal(t, 60.0, g.Height(ev))
}

func TestGridConfig_HeightHasFloor(t *testing.T) {
	g := GridConfig{FirstHour: 8, LastHour: 23, RowHeight: 40, MinBlockHeight: 10}
	short := makeEvent("e", time.Date(2024, time.January, 3, 9, 0, 0, 0, time.Local), 5*time.Minute)

	assert.Equal(t, 10.0, g.Height(short))
}

func TestGridConfig_NoBottomClampOnHeight(t *testing.T) {
	g := DefaultGridConfig()
	late := makeEvent("e", time.Date(2024, time.January, 3, 23, 0, 0, 0, time.Local), 3*time.Hour)

	// The block is allowed to extend past the last hour band.
	assert.Equal(t, 15.0, g.Offset(late))
	assert.Equal(t, 3.0, g.Height(late))
}

func TestLayout_PlacesEventsInTheirDayColumns(t *testing.T) {
	w := janWindow()
	g := DefaultGridConfig()
	events := []Event{
		makeEvent("mon", time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local), time.Hour),
		makeEvent("wed-1", time.Date(2024, time.January, 3, 10, 0, 0, 0, time.Local), time.Hour),
		makeEvent("wed-2", time.Date(2024, time.January, 3, 10, 30, 0, 0, time.Local), time.Hour),
	}
	now := time.Date(2024, time.January, 3, 12, 0, 0, 0, time.Local)

	cols := Layout(w, g, events, now)

	require.Len(t, cols, 7)
	require.Len(t, cols[0].Blocks, 1)
	assert.Equal(t, "mon", cols[0].Blocks[0].Event.ID)
	require.Len(t, cols[2].Blocks, 2, "overlapping events stay in the same column")
	assert.Empty(t, cols[1].Blocks)
	assert.Equal(t, 1.0, cols[0].Blocks[0].Offset)
}

func TestLayout_FlagsTodayOnly(t *testing.T) {
	w := janWindow()
	now := time.Date(2024, time.January, 5, 23, 59, 0, 0, time.Local)

	cols := Layout(w, DefaultGridConfig(), nil, now)

	for i, col := range cols {
		assert.Equal(t, i == 4, col.Today, "column %d", i)
	}
}

func TestLayout_TodayOutsideWindow(t *testing.T) {
	w := janWindow()
	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.Local)

	cols := Layout(w, DefaultGridConfig(), nil, now)

	for i, col := range cols {
		assert.False(t, col.Today, "column %d", i)
	}
}
