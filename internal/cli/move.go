package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

func newMoveCmd(deps func() *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "move ID STEP",
		Short: "Move a task to another stage",
		Example: `  pacaro move 3 done
  pacaro move 3 "In progress"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			step, err := parseStepArg(args[1])
			if err != nil {
				return err
			}

			d := deps()
			task, err := findTask(cmd.Context(), d, id)
			if err != nil {
				return err
			}
			if task.Step == step {
				fmt.Fprintf(d.Out, "Task #%d is already in %q.\n", id, step)
				return nil
			}

			if err := d.Client.UpdateStep(cmd.Context(), id, step); err != nil {
				d.Logger.Warn("move failed", zap.Int("task_id", id), zap.Error(err))
				return requestFailed(toast.OpMove, err)
			}
			fmt.Fprintln(d.Out, toast.Moved(step).Message)
			return nil
		},
	}
}
