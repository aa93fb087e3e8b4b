package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leeehvinicius/primata-console/internal/api"
	"github.com/leeehvinicius/primata-console/internal/calendar"
	"github.com/leeehvinicius/primata-console/internal/cli/formatter"
	"github.com/leeehvinicius/primata-console/internal/domain"
)

type agendaOptions struct {
	date   string
	status string
	span   int
}

func addWindowFlags(flags *pflag.FlagSet, opts *agendaOptions) {
	flags.StringVar(&opts.date, "date", "", "window anchor date (YYYY-MM-DD, default today)")
	flags.StringVar(&opts.status, "status", "", "filter by exact appointment status")
	flags.IntVar(&opts.span, "span", 0, "days in the window (default from config)")
}

func newAgendaCmd(app *App) *cobra.Command {
	var opts agendaOptions
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Print the appointment agenda for a window of days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAgenda(cmd, app, opts)
		},
	}
	addWindowFlags(cmd.Flags(), &opts)
	return cmd
}

func runAgenda(cmd *cobra.Command, app *App, opts agendaOptions) error {
	w, err := resolveWindow(app, opts.date, opts.span)
	if err != nil {
		return err
	}

	records, err := fetchAppointments(app, opts.status)
	if err != nil {
		return err
	}

	res := calendar.MapEvents(records, opts.status, w)
	events := sortedByStart(res.Events)

	byID := make(map[string]domain.Appointment, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	out := cmd.OutOrStdout()
	heading := w.Anchor.Format("Mon 02 Jan") + " – " + w.End().Format("Mon 02 Jan 2006")
	fmt.Fprintf(out, "%s\n\n", formatter.Header(heading))

	if len(events) == 0 {
		fmt.Fprintln(out, formatter.Dim("No appointments in this window."))
		return nil
	}

	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rec := byID[ev.ID]
		rows = append(rows, []string{
			ev.Start.Format("Mon 02/01"),
			formatter.ClockRange(ev.Start, ev.End),
			ev.Title,
			rec.Service,
			formatter.StatusPill(rec.Status),
		})
	}
	fmt.Fprint(out, formatter.RenderTable(
		[]string{"Day", "Time", "Client", "Service", "Status"},
		rows,
	))

	if res.Skipped > 0 {
		fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("\n%d appointment(s) with unreadable times hidden", res.Skipped)))
	}
	return nil
}

// resolveWindow builds the day window from the --date/--span flags,
// defaulting to a config-sized window anchored on today.
func resolveWindow(app *App, dateStr string, span int) (calendar.Window, error) {
	if span <= 0 {
		span = app.Config.Span
	}
	anchor := app.now()
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return calendar.Window{}, fmt.Errorf("invalid --date: %w", err)
		}
		anchor = parsed
	}
	return calendar.NewWindow(anchor, span), nil
}

// fetchAppointments loads one page of records, showing a spinner while the
// API call is in flight.
func fetchAppointments(app *App, status string) ([]domain.Appointment, error) {
	if app.IsInteractive != nil && app.IsInteractive() {
		stop := formatter.StartSpinner("Fetching appointments...")
		defer stop()
	}
	page, err := app.Appointments.ListAppointments(context.Background(), api.Filter{
		Status: status,
		Limit:  fetchLimit,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func sortedByStart(events []calendar.Event) []calendar.Event {
	out := make([]calendar.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
