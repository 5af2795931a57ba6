package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/ui/styles"
)

// renderCard renders a task card: title, description and stage label
func renderCard(task domain.Task, isCursor bool, isDragging bool, width int, s *styles.Styles) string {
	cardStyle := s.CardFor(task.Step, isCursor, isDragging).
		Width(width).
		Height(cardContentRows)

	// Account for padding (2)
	textWidth := width - 2
	if textWidth < 1 {
		textWidth = 1
	}

	// Cursor indicator (▶ symbol when cursor is on this card)
	cursor := ""
	if isCursor {
		cursor = "▶"
	}

	title := truncate(cursor+task.Title, textWidth)
	description := truncate(task.Description, textWidth)

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.TaskTitle.Render(title),
		s.TaskDescription.Render(description),
		s.StepBadge(task.Step).Render(task.Step.Label()),
	)

	return cardStyle.Render(content)
}

// truncate shortens s to width cells, ending with an ellipsis
func truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, isDragging bool, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, isDragging, width, s)
}
