package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/pacaro/internal/ui/styles"
)

// EmptyColumnHint is shown in a column without tasks
const EmptyColumnHint = "No tasks in this stage. Drag and drop here!"

type columnView struct {
	cursorTask   int // -1 when the cursor is elsewhere
	isActive     bool
	isDropTarget bool
	draggingID   int
	offset       int
	visible      int
}

// renderColumn renders a board column with header and task cards
func renderColumn(col Column, v columnView, width, innerHeight int, s *styles.Styles) string {
	headerStyle := s.ColumnHeader
	if v.isActive || v.isDropTarget {
		headerStyle = s.ColumnHeaderActive
	}

	// Render header with title and count (e.g., "─ To do (2) ─────")
	headerText := "─ " + col.Title() + " " + s.ColumnCount.Render(fmt.Sprintf("(%d)", len(col.Tasks))) + " "
	remainingWidth := width - lipgloss.Width(headerText) - 2 // Account for padding
	if remainingWidth > 0 {
		headerText += strings.Repeat("─", remainingWidth)
	}
	header := headerStyle.Render(headerText)

	contentWidth := width - columnChrome - 2
	cardWidth := contentWidth - columnChrome

	var cardStrings []string
	end := v.offset + v.visible
	if end > len(col.Tasks) {
		end = len(col.Tasks)
	}
	for i := v.offset; i < end; i++ {
		task := col.Tasks[i]
		isCursor := i == v.cursorTask
		isDragging := v.draggingID != 0 && task.ID == v.draggingID
		cardStrings = append(cardStrings, renderCard(task, isCursor, isDragging, cardWidth, s))
	}

	content := ""
	if len(cardStrings) > 0 {
		content = strings.Join(cardStrings, "\n")
	} else {
		content = s.EmptyHint.Width(contentWidth).Render(EmptyColumnHint)
	}

	columnStyle := s.Column
	if v.isDropTarget {
		columnStyle = s.ColumnDropTarget
	}
	columnContent := columnStyle.
		Width(width - columnChrome).
		Height(innerHeight).
		MaxHeight(innerHeight + columnChrome).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, columnContent)
}
