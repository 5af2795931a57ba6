package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/pacaro/internal/ui/board"
	"github.com/riordanpawley/pacaro/internal/ui/compact"
	"github.com/riordanpawley/pacaro/internal/ui/statusbar"
	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

// statusBarHeight is the single line at the bottom of the screen
const statusBarHeight = 1

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	toastView := m.renderToasts()

	var body string
	switch {
	case !m.overlayStack.IsEmpty():
		body = m.renderOverlay(m.bodyHeight(toastView))
	case m.loading && !m.tasks.Loaded():
		body = m.renderLoading(m.bodyHeight(toastView))
	default:
		body = m.renderBoardView(toastView)
	}

	sections := []string{m.renderHeader(), body}
	if toastView != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView))
	}
	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// bodyHeight is what is left between the header, the toasts and the status bar
func (m Model) bodyHeight(toastView string) int {
	h := m.height - headerHeight - statusBarHeight
	if toastView != "" {
		h -= lipgloss.Height(toastView)
	}
	if h < 1 {
		return 1
	}
	return h
}

// layout is the board geometry for the current frame, shared with mouse hit-testing
func (m Model) layout(columns []board.Column) board.Layout {
	return board.NewLayout(columns, m.nav.BoardCursor(columns), m.width, m.bodyHeight(m.renderToasts()))
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render("pacaro")
	user := m.styles.HeaderUser.Render("user: " + m.client.UserID())
	return lipgloss.NewStyle().
		MaxWidth(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Left, title, user))
}

func (m Model) renderBoardView(toastView string) string {
	columns := m.buildColumns()
	state := board.State{
		Cursor: m.nav.BoardCursor(columns),
	}
	if m.drag.Dragging() {
		state.DraggingID = m.drag.TaskID()
		if hover, ok := m.drag.Hover(); ok {
			state.DropTarget = hover
		}
	}
	if m.compact {
		return compact.New(columns, state, m.width, m.bodyHeight(toastView)).Render()
	}
	return board.Render(columns, state, m.styles, m.width, m.bodyHeight(toastView))
}

func (m Model) renderOverlay(height int) string {
	current := m.overlayStack.Current()
	content := current.View()
	if title := current.Title(); title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, m.styles.OverlayTitle.Render(title), content)
	}

	width, _ := current.Size()
	if width > m.width-2 {
		width = m.width - 2
	}
	box := m.styles.Overlay.Width(width).MaxHeight(height).Render(content)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderLoading renders a centered loading spinner with message
func (m Model) renderLoading(height int) string {
	content := lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.spinner.View(),
		m.styles.Loading.Render("Loading tasks..."),
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	return toast.New(m.styles).Render(m.toasts, m.width)
}

func (m Model) renderStatusBar() string {
	return statusbar.New(m.mode(), m.width, m.styles).
		WithInfo(fmt.Sprintf("%d tasks", m.tasks.Len())).
		WithOffline(!m.networkChecker.IsOnline()).
		Render()
}
