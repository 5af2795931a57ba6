package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

func newRmCmd(deps func() *Dependencies) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			d := deps()
			task, err := findTask(cmd.Context(), d, id)
			if err != nil {
				return err
			}

			if !yes {
				fmt.Fprintf(d.Out, "Are you sure you want to delete the task: %q? [y/N] ", task.Title)
				if !confirmed(d) {
					fmt.Fprintln(d.Out, "Cancelled.")
					return nil
				}
			}

			if err := d.Client.Delete(cmd.Context(), id); err != nil {
				d.Logger.Warn("delete failed", zap.Int("task_id", id), zap.Error(err))
				return requestFailed(toast.OpDelete, err)
			}
			fmt.Fprintln(d.Out, toast.Notice(toast.OpDelete, nil).Message)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

// confirmed reads one answer line; anything but y/yes declines
func confirmed(d *Dependencies) bool {
	line, err := bufio.NewReader(d.In).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(d.Out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
