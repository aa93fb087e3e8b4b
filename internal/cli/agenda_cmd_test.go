package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leeehvinicius/primata-console/internal/domain"
)

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAgendaCmd_ListsWindowAppointments(t *testing.T) {
	src := &fakeSource{items: []domain.Appointment{
		testAppointment("apt-2", "2024-01-04", "14:00", "", domain.StatusConfirmed),
		testAppointment("apt-1", "2024-01-03", "09:00", "10:30", domain.StatusScheduled),
	}}
	app := testApp(t, src)

	out, err := runCommand(t, app, "agenda")
	require.NoError(t, err)

	// Window heading, uppercased by the section-header style.
	assert.Contains(t, out, "WED 03 JAN – TUE 09 JAN 2024")
	assert.Contains(t, out, "Client apt-1")
	assert.Contains(t, out, "Client apt-2")
	assert.Contains(t, out, "09:00–10:30")
	assert.Contains(t, out, "14:00–15:00", "missing end time gets the one hour default")
	// Sorted by start, so apt-1 prints first despite arriving second.
	assert.Less(t, strings.Index(out, "Client apt-1"), strings.Index(out, "Client apt-2"))
}

func TestAgendaCmd_StatusFlagFiltersAndForwards(t *testing.T) {
	src := &fakeSource{items: []domain.Appointment{
		testAppointment("apt-1", "2024-01-03", "09:00", "", domain.StatusScheduled),
		testAppointment("apt-2", "2024-01-03", "11:00", "", domain.StatusConfirmed),
	}}
	app := testApp(t, src)

	out, err := runCommand(t, app, "agenda", "--status", domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, src.lastFilter(t).Status)
	assert.NotContains(t, out, "Client apt-1")
	assert.Contains(t, out, "Client apt-2")
}

func TestAgendaCmd_DateFlagMovesWindow(t *testing.T) {
	src := &fakeSource{items: []domain.Appointment{
		testAppointment("apt-1", "2024-03-12", "09:00", "", domain.StatusScheduled),
	}}
	app := testApp(t, src)

	out, err := runCommand(t, app, "agenda", "--date", "2024-03-11", "--span", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Client apt-1")

	out, err = runCommand(t, app, "agenda", "--date", "2024-03-01", "--span", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "No appointments in this window.")
}

func TestAgendaCmd_InvalidDateFails(t *testing.T) {
	app := testApp(t, &fakeSource{})

	_, err := runCommand(t, app, "agenda", "--date", "03/01/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --date")
}

func TestAgendaCmd_FetchErrorPropagates(t *testing.T) {
	src := &fakeSource{err: errors.New("api unavailable")}
	app := testApp(t, src)

	_, err := runCommand(t, app, "agenda")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api unavailable")
}

func TestAgendaCmd_ReportsSkippedRecords(t *testing.T) {
	src := &fakeSource{items: []domain.Appointment{
		testAppointment("apt-1", "2024-01-03", "09:00", "", domain.StatusScheduled),
		testAppointment("apt-2", "2024-01-03", "9am", "", domain.StatusScheduled),
	}}
	app := testApp(t, src)

	out, err := runCommand(t, app, "agenda")
	require.NoError(t, err)
	assert.Contains(t, out, "1 appointment(s) with unreadable times hidden")
}

func TestExportCmd_WritesICSFile(t *testing.T) {
	src := &fakeSource{items: []domain.Appointment{
		testAppointment("apt-1", "2024-01-03", "09:00", "10:30", domain.StatusConfirmed),
	}}
	app := testApp(t, src)
	path := filepath.Join(t.TempDir(), "week.ics")

	out, err := runCommand(t, app, "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 appointment(s) to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Contains(t, string(data), "UID:apt-1@primata")
	assert.Contains(t, string(data), "CATEGORIES:facial")
}

func TestExportCmd_EmptyWindowStillWritesCalendar(t *testing.T) {
	app := testApp(t, &fakeSource{})
	path := filepath.Join(t.TempDir(), "empty.ics")

	out, err := runCommand(t, app, "export", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 0 appointment(s)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
}
