package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leeehvinicius/primata-console/internal/api"
	"github.com/leeehvinicius/primata-console/internal/calendar"
	"github.com/leeehvinicius/primata-console/internal/cli/formatter"
	"github.com/leeehvinicius/primata-console/internal/domain"
)

// fetchLimit is the page size requested per fetch; one page covers a window.
const fetchLimit = 500

// ── messages ─────────────────────────────────────────────────────────────────

// appointmentsLoadedMsg signals that a fetch finished. seq identifies the
// request that produced it; results from superseded requests are discarded.
type appointmentsLoadedMsg struct {
	seq  int
	page *api.Page
	err  error
}

// filterAppliedMsg carries the filter form's result back to the calendar.
type filterAppliedMsg struct {
	status string
	jump   string // optional "2006-01-02" anchor jump, empty to stay
}

// ── view ─────────────────────────────────────────────────────────────────────

// calendarView renders the week grid with its summary cards. All layout
// state is recomputed from the current record list on every change; nothing
// survives a reload except the window anchor and the active filter.
type calendarView struct {
	state  *SharedState
	window calendar.Window
	grid   calendar.GridConfig
	filter string

	loading bool
	err     error
	records []domain.Appointment
	events  []calendar.Event
	skipped int

	// Monotonic fetch sequence: only the latest request may publish results.
	reqSeq int

	spin spinner.Model
}

func newCalendarView(state *SharedState) *calendarView {
	cfg := state.App.Config
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleBlue

	return &calendarView{
		state:  state,
		window: calendar.NewWindow(state.Now(), cfg.Span),
		grid: calendar.GridConfig{
			FirstHour:      cfg.FirstHour,
			LastHour:       cfg.LastHour,
			RowHeight:      1,
			MinBlockHeight: 1,
		},
		loading: true,
		spin:    sp,
	}
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return "Calendar" }

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "week")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *calendarView) Init() tea.Cmd {
	return tea.Batch(v.spin.Tick, v.loadData())
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *calendarView) loadData() tea.Cmd {
	v.loading = true
	v.err = nil
	v.reqSeq++
	seq := v.reqSeq
	src := v.state.App.Appointments
	filter := api.Filter{Status: v.filter, Limit: fetchLimit}

	return func() tea.Msg {
		page, err := src.ListAppointments(context.Background(), filter)
		if err != nil {
			return appointmentsLoadedMsg{seq: seq, err: err}
		}
		return appointmentsLoadedMsg{seq: seq, page: page}
	}
}

// recompute rebuilds the mapped events from the current records, filter,
// and window.
func (v *calendarView) recompute() {
	res := calendar.MapEvents(v.records, v.filter, v.window)
	v.events = res.Events
	v.skipped = res.Skipped
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case appointmentsLoadedMsg:
		if msg.seq != v.reqSeq {
			// A newer fetch is in flight; this result is stale.
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			v.records = nil
			v.events = nil
			v.skipped = 0
			return v, nil
		}
		v.err = nil
		v.records = msg.page.Items
		v.recompute()
		return v, nil

	case filterAppliedMsg:
		v.filter = msg.status
		if msg.jump != "" {
			if anchor, err := time.ParseInLocation("2006-01-02", msg.jump, time.Local); err == nil {
				v.window = calendar.NewWindow(anchor, v.window.Span)
			}
		}
		return v, v.loadData()

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "n":
			v.window = v.window.Next()
			return v, tea.Batch(v.spin.Tick, v.loadData())
		case "left", "h", "p":
			v.window = v.window.Prev()
			return v, tea.Batch(v.spin.Tick, v.loadData())
		case "t":
			v.window = v.window.Today(v.state.Now())
			return v, tea.Batch(v.spin.Tick, v.loadData())
		case "r":
			return v, tea.Batch(v.spin.Tick, v.loadData())
		case "f":
			return v, pushView(newFilterFormView(v.state, v.filter))
		}
	}

	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *calendarView) View() string {
	var b strings.Builder

	b.WriteString("\n  " + v.renderWindowLine() + "\n\n")

	if v.loading {
		b.WriteString("  " + v.spin.View() + formatter.Dim("Loading appointments...") + "\n")
		return b.String()
	}
	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
		b.WriteString("  " + formatter.Dim("r: retry") + "\n")
		return b.String()
	}

	now := v.state.Now()
	b.WriteString("  " + formatter.RenderSummaryCards(calendar.Aggregate(v.events, v.window, now)) + "\n\n")

	cols := calendar.Layout(v.window, v.grid, v.events, now)
	b.WriteString(formatter.RenderWeek(cols, v.grid, v.state.Width-2))

	if v.skipped > 0 {
		b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d appointment(s) with unreadable times hidden", v.skipped)))
	}
	b.WriteString("\n")
	return b.String()
}

func (v *calendarView) renderWindowLine() string {
	rangeText := v.window.Anchor.Format("02 Jan") + " – " + v.window.End().Format("02 Jan 2006")
	line := formatter.Bold(rangeText)
	if v.filter != "" {
		line += "  " + formatter.Dim("[") + formatter.StatusPill(v.filter) + formatter.Dim("]")
	}
	return line
}
