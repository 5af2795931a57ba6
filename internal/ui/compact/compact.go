// Package compact renders the board as a single list grouped by stage,
// for terminals too narrow for three columns side by side.
package compact

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/pacaro/internal/ui/board"
)

const (
	idWidth = 5
	// minDescriptionWidth is the narrowest description worth showing after a title
	minDescriptionWidth = 12
)

// View renders columns as stacked sections. It reuses the board state, so
// the cursor, the picked-up card and the drop target look the same in both
// views.
type View struct {
	columns []board.Column
	state   board.State
	styles  *Styles
	width   int
	height  int
}

// New creates a compact view of columns in width x height
func New(columns []board.Column, state board.State, width, height int) *View {
	return &View{
		columns: columns,
		state:   state,
		styles:  NewStyles(),
		width:   width,
		height:  height,
	}
}

// Render renders the visible part of the list
func (v *View) Render() string {
	lines, cursorLine := v.lines()
	return strings.Join(v.window(lines, cursorLine), "\n")
}

// lines renders every section and returns the index of the cursor row
func (v *View) lines() ([]string, int) {
	var lines []string
	cursorLine := 0

	for i, col := range v.columns {
		if i > 0 {
			lines = append(lines, v.styles.Separator.Render(strings.Repeat("─", max(0, v.width))))
		}

		target := v.state.DropTarget != "" && v.state.DropTarget == col.Step
		heading := fmt.Sprintf("%s (%d)", col.Title(), len(col.Tasks))
		if target {
			heading += "  ◀ drop here"
		}
		lines = append(lines, v.styles.SectionFor(col.Step, target).Render(ansi.Truncate(heading, v.width, "…")))

		if i == v.state.Cursor.Column && len(col.Tasks) == 0 {
			cursorLine = len(lines) - 1
		}
		if len(col.Tasks) == 0 {
			lines = append(lines, v.styles.Empty.Render("  (no tasks)"))
			continue
		}

		for j, task := range col.Tasks {
			active := v.state.DraggingID == 0 && i == v.state.Cursor.Column && j == v.state.Cursor.Task
			if active || (v.state.DraggingID != 0 && task.ID == v.state.DraggingID) {
				cursorLine = len(lines)
			}
			lines = append(lines, v.renderRow(task.ID, task.Title, task.Description, active, task.ID == v.state.DraggingID))
		}
	}

	return lines, cursorLine
}

func (v *View) renderRow(id int, title, description string, active, ghost bool) string {
	indicator := "  "
	if active {
		indicator = v.styles.Cursor.Render("▶ ")
	}

	idCell := fmt.Sprintf("#%-*d", idWidth-1, id)
	textWidth := max(0, v.width-2-idWidth-1)
	text := ansi.Truncate(title, textWidth, "…")

	var desc string
	if rest := textWidth - ansi.StringWidth(text) - 3; rest >= minDescriptionWidth && description != "" {
		desc = " · " + ansi.Truncate(strings.Join(strings.Fields(description), " "), rest, "…")
	}

	switch {
	case ghost:
		return indicator + v.styles.RowGhost.Render(idCell+" "+text+desc)
	case active:
		return indicator + v.styles.RowActive.Width(v.width-2).Render(idCell+" "+text+desc)
	default:
		return indicator + v.styles.ID.Render(idCell) + " " + v.styles.Row.Render(text) + v.styles.Description.Render(desc)
	}
}

// window keeps the cursor row on screen. When the list is taller than the
// view the last line becomes a scroll indicator.
func (v *View) window(lines []string, cursorLine int) []string {
	if v.height <= 0 || len(lines) <= v.height {
		return lines
	}

	if v.height == 1 {
		return lines[cursorLine : cursorLine+1]
	}

	rows := v.height - 1
	offset := 0
	if cursorLine >= rows {
		offset = cursorLine - rows + 1
	}
	offset = min(offset, len(lines)-rows)

	visible := append([]string{}, lines[offset:offset+rows]...)
	if below := len(lines) - offset - rows; below > 0 {
		visible = append(visible, v.styles.Separator.Render(fmt.Sprintf(" ↓ %d more ↓ ", below)))
	} else {
		visible = append(visible, v.styles.Separator.Render(fmt.Sprintf(" ↑ %d more ↑ ", offset)))
	}
	return visible
}
