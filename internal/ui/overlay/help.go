package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// helpViewHeight is the number of content lines shown at once
const helpViewHeight = 18

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles *Styles
	scroll int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{styles: New()}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		return h, func() tea.Msg { return CloseOverlayMsg{} }
	case "j", "down":
		h.scroll = min(h.scroll+1, h.maxScroll())
	case "k", "up":
		h.scroll = max(h.scroll-1, 0)
	case "g":
		h.scroll = 0
	case "G":
		h.scroll = h.maxScroll()
	}
	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	lines := h.lines()
	end := min(h.scroll+helpViewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll() > 0 {
		result += "\n" + h.styles.Footer.Render("[j/k to scroll, g/G to jump]")
	}
	return result
}

func (h *HelpOverlay) lines() []string {
	var lines []string
	for i, cat := range Categories() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.MenuHeader.Render(cat.Name+":"))
		for _, binding := range cat.Bindings {
			lines = append(lines, "  "+h.styles.MenuKey.Render(binding.Key)+"  "+h.styles.MenuItem.Render(binding.Description))
		}
	}
	return lines
}

func (h *HelpOverlay) maxScroll() int {
	return max(0, len(h.lines())-helpViewHeight)
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 50, helpViewHeight + 6
}

// Categories lists the board keybindings by topic
func Categories() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Navigation",
			Bindings: []KeyBinding{
				{Key: "h/l ←/→", Description: "Move between columns"},
				{Key: "j/k ↑/↓", Description: "Move between tasks"},
				{Key: "g/G", Description: "First/last task in column"},
				{Key: "0/$", Description: "First/last column"},
			},
		},
		{
			Name: "Tasks",
			Bindings: []KeyBinding{
				{Key: "c", Description: "New task"},
				{Key: "e/Enter", Description: "Edit task"},
				{Key: "d", Description: "Delete task"},
				{Key: "r", Description: "Reload tasks"},
				{Key: "v", Description: "Toggle compact list"},
			},
		},
		{
			Name: "Moving",
			Bindings: []KeyBinding{
				{Key: "m", Description: "Pick up task"},
				{Key: "h/l", Description: "Choose target column"},
				{Key: "Enter", Description: "Drop task"},
				{Key: "Esc", Description: "Cancel move"},
				{Key: "Mouse", Description: "Drag a card onto a column"},
			},
		},
		{
			Name: "Other",
			Bindings: []KeyBinding{
				{Key: "?", Description: "Help (this screen)"},
				{Key: "q", Description: "Quit"},
			},
		},
	}
}
