package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/pacaro/internal/ui/styles"
)

// Render renders the board with one column per step
func Render(columns []Column, state State, s *styles.Styles, width, height int) string {
	if len(columns) == 0 {
		return ""
	}

	layout := NewLayout(columns, state.Cursor, width, height)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == state.Cursor.Column
		cursorTask := -1
		if isActive && state.DraggingID == 0 {
			cursorTask = state.Cursor.Task
		}

		columnStr := renderColumn(
			col,
			columnView{
				cursorTask:   cursorTask,
				isActive:     isActive,
				isDropTarget: state.DropTarget != "" && state.DropTarget == col.Step,
				draggingID:   state.DraggingID,
				offset:       layout.Offsets[i],
				visible:      layout.VisibleCards(),
			},
			layout.ColumnWidth,
			layout.InnerHeight(),
			s,
		)

		// Force consistent width using lipgloss Width
		sized := lipgloss.NewStyle().Width(layout.ColumnWidth).MaxHeight(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
