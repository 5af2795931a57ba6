package compact

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/ui/board"
)

func render(columns []board.Column, state board.State, width, height int) []string {
	return strings.Split(ansi.Strip(New(columns, state, width, height).Render()), "\n")
}

func TestRender_Sections(t *testing.T) {
	lines := render(board.CreatePlaceholderData(), board.State{Cursor: board.Cursor{Column: 0, Task: 1}}, 80, 40)

	require.Len(t, lines, 10)
	assert.Equal(t, "To do (3)", lines[0])
	assert.Contains(t, lines[1], "#1")
	assert.Contains(t, lines[1], "Implement login")
	assert.True(t, strings.HasPrefix(lines[2], "▶ "), "cursor row: %q", lines[2])
	assert.Contains(t, lines[2], "Fix redirect bug")
	assert.Equal(t, "In progress (1)", lines[5])
	assert.Equal(t, "Done (1)", lines[8])

	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestRender_DescriptionWhenRoomy(t *testing.T) {
	lines := render(board.CreatePlaceholderData(), board.State{}, 80, 40)
	assert.Contains(t, lines[1], "· Email and password form")

	narrow := render(board.CreatePlaceholderData(), board.State{}, 30, 40)
	assert.NotContains(t, narrow[1], "·")
}

func TestRender_Dragging(t *testing.T) {
	state := board.State{DraggingID: 3, DropTarget: domain.StepDone}
	out := ansi.Strip(New(board.CreatePlaceholderData(), state, 80, 40).Render())

	assert.Contains(t, out, "Done (1)  ◀ drop here")
	assert.NotContains(t, out, "▶", "no cursor while a card is picked up")
	assert.Contains(t, out, "API endpoint refactor")
}

func TestRender_EmptyColumn(t *testing.T) {
	columns := board.ColumnsFrom(map[domain.Step][]domain.Task{})
	out := ansi.Strip(New(columns, board.State{}, 60, 20).Render())

	assert.Equal(t, 3, strings.Count(out, "(no tasks)"))
	assert.Contains(t, out, "To do (0)")
}

func TestRender_ScrollsToCursor(t *testing.T) {
	columns := board.CreatePlaceholderData()

	top := render(columns, board.State{Cursor: board.Cursor{Column: 0, Task: 0}}, 80, 5)
	require.Len(t, top, 5)
	assert.Contains(t, top[1], "Implement login")
	assert.Contains(t, top[4], "↓ 6 more ↓")

	bottom := render(columns, board.State{Cursor: board.Cursor{Column: 2, Task: 0}}, 80, 5)
	require.Len(t, bottom, 5)
	assert.Contains(t, bottom[3], "Setup CI pipeline")
	assert.Contains(t, bottom[4], "↑ 6 more ↑")
	assert.NotContains(t, strings.Join(bottom, "\n"), "Implement login")
}

func TestRender_TruncatesTitle(t *testing.T) {
	columns := board.ColumnsFrom(map[domain.Step][]domain.Task{
		domain.StepTodo: {{ID: 12, Title: "A title that is far too long", Step: domain.StepTodo}},
	})
	lines := render(columns, board.State{}, 24, 20)

	assert.Contains(t, lines[1], "…")
	assert.LessOrEqual(t, lipgloss.Width(lines[1]), 24)
}
