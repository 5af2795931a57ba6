package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

func newAddCmd(deps func() *Dependencies) *cobra.Command {
	var title, description, step string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Example: `  pacaro add --title "Write docs" --description "Document the API"
  pacaro add --title "Fix login" --description "Session cookie expires" --step in-progress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseStepArg(step)
			if err != nil {
				return err
			}
			in := domain.TaskInput{Title: title, Description: description, Step: s}
			if err := domain.ValidateInput(in); err != nil {
				return err
			}

			d := deps()
			if err := d.Client.Create(cmd.Context(), in); err != nil {
				d.Logger.Warn("create failed", zap.Error(err))
				return requestFailed(toast.OpCreate, err)
			}
			fmt.Fprintln(d.Out, toast.Notice(toast.OpCreate, nil).Message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "task title (4-30 characters)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "task description (8-150 characters)")
	cmd.Flags().StringVarP(&step, "step", "s", string(domain.DefaultStep), "stage: todo, in-progress or done")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}
