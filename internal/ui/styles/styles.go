package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/pacaro/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Header
	Header     lipgloss.Style
	HeaderUser lipgloss.Style

	// Board
	Board              lipgloss.Style
	Column             lipgloss.Style
	ColumnDropTarget   lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style
	ColumnCount        lipgloss.Style
	EmptyHint          lipgloss.Style
	Loading            lipgloss.Style

	// Cards
	Card            lipgloss.Style
	CardActive      lipgloss.Style
	CardDragging    lipgloss.Style
	CardDone        lipgloss.Style
	TaskTitle       lipgloss.Style
	TaskDescription lipgloss.Style

	// Badges
	StepBadge func(step domain.Step) lipgloss.Style

	// Status bar
	StatusBar     lipgloss.Style
	StatusMode    lipgloss.Style
	StatusHint    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusOffline lipgloss.Style

	// Overlays
	Overlay          lipgloss.Style
	OverlayTitle     lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuKey          lipgloss.Style
	Separator        lipgloss.Style

	// Form
	FieldLabel       lipgloss.Style
	FieldLabelActive lipgloss.Style
	FieldError       lipgloss.Style
	FieldCounter     lipgloss.Style
	Button           lipgloss.Style
	ButtonActive     lipgloss.Style
	ButtonDisabled   lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true).
			Padding(0, 1),

		HeaderUser: lipgloss.NewStyle().
			Foreground(Subtext0),

		Board: lipgloss.NewStyle().
			Background(Base),

		Column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ColumnDropTarget: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(Mauve).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		ColumnCount: lipgloss.NewStyle().
			Foreground(Overlay1),

		EmptyHint: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		Loading: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1).
			MarginBottom(1),

		CardDragging: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(Mauve).
			Padding(0, 1).
			MarginBottom(1),

		CardDone: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Padding(0, 1).
			MarginBottom(1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		TaskDescription: lipgloss.NewStyle().
			Foreground(Subtext0),

		StepBadge: func(step domain.Step) lipgloss.Style {
			return lipgloss.NewStyle().
				Foreground(StepColor(step)).
				Bold(step == domain.StepDone)
		},

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		StatusOffline: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		FieldLabelActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		FieldError: lipgloss.NewStyle().
			Foreground(Red),

		FieldCounter: lipgloss.NewStyle().
			Foreground(Overlay0),

		Button: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface1).
			Padding(0, 2),

		ButtonActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 2),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(Overlay0).
			Background(Surface0).
			Padding(0, 2),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// CardFor returns the card style for a task in the given state.
// Dragging wins over the cursor, and the cursor wins over the done color.
func (s *Styles) CardFor(step domain.Step, isCursor, isDragging bool) lipgloss.Style {
	switch {
	case isDragging:
		return s.CardDragging
	case isCursor:
		return s.CardActive
	case step == domain.StepDone:
		return s.CardDone
	default:
		return s.Card
	}
}
