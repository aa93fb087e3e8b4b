package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leeehvinicius/primata-console/internal/calendar"
	"github.com/leeehvinicius/primata-console/internal/ics"
)

func newExportCmd(app *App) *cobra.Command {
	var opts agendaOptions
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a window of appointments as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()

			if err := ics.Write(f, events); err != nil {
				return fmt.Errorf("write calendar: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d appointment(s) to %s\n", len(events), outPath)
			return nil
		},
	}
	addWindowFlags(cmd.Flags(), &opts)
	cmd.Flags().StringVar(&outPath, "out", "agenda.ics", "output file path")
	return cmd
}
