package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeehvinicius/primata-console/internal/calendar"
)

func TestWrite_SerializesEvents(t *testing.T) {
	start := time.Date(2024, time.January, 3, 9, 0, 0, 0, time.UTC)
	events := []calendar.Event{
		{ID: "apt-1", Title: "Ana Souza", Start: start, End: start.Add(90 * time.Minute), Category: "facial"},
		{ID: "apt-2", Title: "cli-2", Start: start.AddDate(0, 0, 1), End: start.AddDate(0, 0, 1).Add(time.Hour)},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, events))
	out := buf.String()

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "END:VCALENDAR")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:apt-1@primata")
	assert.Contains(t, out, "SUMMARY:Ana Souza")
	assert.Contains(t, out, "DTSTART:20240103T090000Z")
	assert.Contains(t, out, "DTEND:20240103T103000Z")
	assert.Contains(t, out, "CATEGORIES:facial")
	assert.Equal(t, 1, strings.Count(out, "CATEGORIES:"), "events without a category carry no CATEGORIES property")
}

func TestWrite_EmptyEventList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
