package formatter

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leeehvinicius/primata-console/internal/calendar"
)

const (
	gutterWidth = 4
	minColWidth = 9
	maxColWidth = 22
)

// RenderWeek renders positioned day columns as a day×hour grid. The left
// gutter carries the hour bands; each event block occupies the rows given by
// its layout offset and height, clipped at the grid's bottom edge. Blocks are
// painted in input order, so overlapping events simply overwrite each other.
func RenderWeek(cols []calendar.DayColumn, g calendar.GridConfig, width int) string {
	if len(cols) == 0 {
		return ""
	}

	colWidth := columnWidth(len(cols), width)
	rows := int(math.Ceil(g.TotalHeight()))

	rendered := make([]string, 0, len(cols)+1)
	rendered = append(rendered, renderGutter(g, rows))
	for _, col := range cols {
		rendered = append(rendered, renderDayColumn(col, colWidth, rows))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func columnWidth(numCols, width int) int {
	if width <= 0 {
		return 12
	}
	w := (width - gutterWidth - numCols) / numCols
	if w < minColWidth {
		return minColWidth
	}
	if w > maxColWidth {
		return maxColWidth
	}
	return w
}

func renderGutter(g calendar.GridConfig, rows int) string {
	var b strings.Builder
	// Two heading rows to align with the day columns.
	b.WriteString(strings.Repeat(" ", gutterWidth) + "\n")
	b.WriteString(strings.Repeat(" ", gutterWidth) + "\n")

	for r := 0; r < rows; r++ {
		band := int(float64(r) / g.RowHeight)
		label := strings.Repeat(" ", gutterWidth)
		if float64(r) == float64(band)*g.RowHeight {
			label = Dim(PadRight(HourLabel(g.FirstHour+band), gutterWidth))
		}
		b.WriteString(label)
		if r < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderDayColumn(col calendar.DayColumn, colWidth, rows int) string {
	heading := PadRight(DayHeading(col.Date), colWidth)
	headingStyle := StyleBold
	if col.Today {
		headingStyle = StyleHeader
	}

	// Paint each visible row of each block; later blocks overwrite earlier
	// ones where they overlap.
	cells := make([]string, rows)
	for _, block := range col.Blocks {
		start := int(math.Round(block.Offset))
		height := int(math.Ceil(block.Height))
		style := EventStyle(block.Event.Color)
		for i := 0; i < height; i++ {
			row := start + i
			if row < 0 || row >= rows {
				continue
			}
			text := "▏"
			if i == 0 {
				text = block.Event.Start.Format("15:04") + " " + block.Event.Title
			}
			cells[row] = style.Render(PadRight(text, colWidth))
		}
	}

	var b strings.Builder
	b.WriteString(" " + headingStyle.Render(heading) + "\n")
	b.WriteString(" " + Dim(strings.Repeat("─", colWidth)) + "\n")
	for r := 0; r < rows; r++ {
		cell := cells[r]
		if cell == "" {
			cell = strings.Repeat(" ", colWidth)
		}
		b.WriteString(" " + cell)
		if r < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderSummaryCards renders the stat counts shown above the grid.
func RenderSummaryCards(s calendar.Stats) string {
	parts := []string{
		Dim("Today ") + StyleGreen.Render(strconv.Itoa(s.Today)),
		Dim("Week ") + StyleYellow.Render(strconv.Itoa(s.Week)),
		Dim("Total ") + Bold(strconv.Itoa(s.Total)),
		Dim("Confirmed ") + StyleBlue.Render(strconv.Itoa(s.Confirmed)),
	}
	return strings.Join(parts, Dim(" │ "))
}
