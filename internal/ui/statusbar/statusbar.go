package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/pacaro/internal/types"
	"github.com/riordanpawley/pacaro/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode    types.Mode
	width   int
	styles  *styles.Styles
	info    string
	offline bool
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithInfo sets the text shown on the right (e.g. task count)
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// WithOffline marks the API as unreachable
func (sb StatusBar) WithOffline(offline bool) StatusBar {
	sb.offline = offline
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	parts := []string{modeBadge}
	separator := sb.styles.StatusHint.Render(" │ ")

	if sb.offline {
		parts = append(parts, separator, sb.styles.StatusOffline.Render("OFFLINE"))
	}

	// Keybinding hints
	if hints := GetHints(sb.mode); hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)

	if sb.info != "" {
		info := sb.styles.StatusInfo.Render(sb.info)
		// Status bar padding takes 2 cells
		gap := sb.width - 2 - lipgloss.Width(content) - lipgloss.Width(info)
		if gap > 0 {
			content = lipgloss.JoinHorizontal(lipgloss.Left, content, lipgloss.NewStyle().Width(gap).Render(""), info)
		}
	}

	// Fill the width and never wrap onto a second line
	return sb.styles.StatusBar.Width(sb.width).MaxHeight(1).Render(content)
}
