package compact

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/ui/styles"
)

// Styles holds the styling for the compact list view
type Styles struct {
	Section       lipgloss.Style
	SectionTarget lipgloss.Style
	Separator     lipgloss.Style

	Row       lipgloss.Style
	RowActive lipgloss.Style
	RowGhost  lipgloss.Style

	ID          lipgloss.Style
	Description lipgloss.Style
	Empty       lipgloss.Style

	Cursor lipgloss.Style
}

// NewStyles creates a new Styles instance with Catppuccin Macchiato theme
func NewStyles() *Styles {
	return &Styles{
		Section: lipgloss.NewStyle().
			Bold(true),

		SectionTarget: lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Base).
			Background(styles.Mauve),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Row: lipgloss.NewStyle().
			Foreground(styles.Text),

		RowActive: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		RowGhost: lipgloss.NewStyle().
			Foreground(styles.Overlay0).
			Italic(true),

		ID: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Bold(true),

		Description: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		Empty: lipgloss.NewStyle().
			Foreground(styles.Overlay0).
			Italic(true),

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),
	}
}

// SectionFor returns the heading style of a stage
func (s *Styles) SectionFor(step domain.Step, target bool) lipgloss.Style {
	if target {
		return s.SectionTarget
	}
	return s.Section.Foreground(styles.StepColor(step))
}
