package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riordanpawley/pacaro/internal/app"
)

func newBoardCmd(deps func() *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, deps())
		},
	}
}

// runBoard runs the TUI until the user quits
func runBoard(cmd *cobra.Command, deps *Dependencies) error {
	deps.Logger.Info("starting board",
		zap.String("base_url", deps.Config.API.BaseURL),
		zap.String("user", deps.Config.API.UserID),
	)

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	}
	if deps.Config.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	model := app.New(deps.Config, deps.Client, deps.Logger)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}
