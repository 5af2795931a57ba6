package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/output"
	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

func newEditCmd(deps func() *Dependencies) *cobra.Command {
	var title, description, step string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Replace a task's title, description or stage",
		Long:  `Edit sends a full update. Fields not given on the command line keep the task's current values.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("step") {
				return fmt.Errorf("nothing to change: pass --title, --description or --step")
			}

			d := deps()
			task, err := findTask(cmd.Context(), d, id)
			if err != nil {
				return err
			}

			in := task.Input()
			if flags.Changed("title") {
				in.Title = title
			}
			if flags.Changed("description") {
				in.Description = description
			}
			if flags.Changed("step") {
				if in.Step, err = parseStepArg(step); err != nil {
					return err
				}
			}
			if err := domain.ValidateInput(in); err != nil {
				return err
			}

			if err := d.Client.UpdateFull(cmd.Context(), id, in); err != nil {
				d.Logger.Warn("update failed", zap.Int("task_id", id), zap.Error(err))
				return requestFailed(toast.OpUpdate, err)
			}

			fmt.Fprintln(d.Out, toast.Notice(toast.OpUpdate, nil).Message)
			task.Title, task.Description, task.Step = in.Title, in.Description, in.Step
			output.Task(d.Out, task)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title (4-30 characters)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description (8-150 characters)")
	cmd.Flags().StringVarP(&step, "step", "s", "", "new stage: todo, in-progress or done")
	return cmd
}
