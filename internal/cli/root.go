package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leeehvinicius/primata-console/internal/api"
	"github.com/leeehvinicius/primata-console/internal/config"
)

// App holds the wired collaborators used by CLI commands and views.
type App struct {
	Appointments api.AppointmentSource
	Config       config.Runtime

	// IsInteractive reports whether the console is attached to a terminal.
	IsInteractive func() bool

	// Now is the clock used for "today" decisions. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "primata" command and registers all
// subcommands against the provided App. Running the bare command opens the
// calendar TUI on a terminal and prints the agenda otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "primata",
		Short: "Terminal console for the Primata clinic platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return runAgenda(cmd, app, agendaOptions{})
		},
	}

	root.AddCommand(
		newCalendarCmd(app),
		newAgendaCmd(app),
		newExportCmd(app),
	)

	return root
}

func newCalendarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Open the interactive week calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
