package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/pacaro/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuItemDisabled is the disabled menu item style
	MenuItemDisabled lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// MenuHeader is the style for section headers
	MenuHeader lipgloss.Style

	// Form fields
	FieldLabel       lipgloss.Style
	FieldLabelActive lipgloss.Style
	FieldError       lipgloss.Style
	FieldCounter     lipgloss.Style
	Button           lipgloss.Style
	ButtonActive     lipgloss.Style
	ButtonDisabled   lipgloss.Style
}

// New creates overlay styles from the shared board theme
func New() *Styles {
	s := styles.New()
	return &Styles{
		Overlay:          s.Overlay,
		Title:            s.OverlayTitle,
		MenuItem:         s.MenuItem,
		MenuItemActive:   s.MenuItemActive,
		MenuItemDisabled: s.MenuItemDisabled,
		MenuKey:          s.MenuKey,
		Separator:        s.Separator,

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		MenuHeader: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		FieldLabel:       s.FieldLabel,
		FieldLabelActive: s.FieldLabelActive,
		FieldError:       s.FieldError,
		FieldCounter:     s.FieldCounter,
		Button:           s.Button,
		ButtonActive:     s.ButtonActive,
		ButtonDisabled:   s.ButtonDisabled,
	}
}
