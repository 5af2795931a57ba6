// Package toast renders the notification stack shown over the board.
package toast

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/pacaro/internal/types"
	"github.com/riordanpawley/pacaro/internal/ui/styles"
)

// MaxVisible caps how many toasts are stacked at once; older ones are hidden
const MaxVisible = 3

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render renders the most recent toasts, newest at the bottom.
// Returns empty string if no toasts to display
func (r *ToastRenderer) Render(toasts []types.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	if len(toasts) > MaxVisible {
		toasts = toasts[len(toasts)-MaxVisible:]
	}

	var rendered []string
	toastWidth := width / 3
	if toastWidth > 44 {
		toastWidth = 44 // Cap maximum toast width
	}

	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(icon(t.Level)+" "+t.Message))
	}

	// Stack toasts vertically, aligned to the right
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

func icon(level types.ToastLevel) string {
	switch level {
	case types.ToastSuccess:
		return "✓"
	case types.ToastWarning:
		return "!"
	case types.ToastError:
		return "✗"
	default:
		return "i"
	}
}

// styleForLevel returns the appropriate style for a toast level
func (r *ToastRenderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
