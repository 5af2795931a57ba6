package cli

import (
	"github.com/spf13/cobra"

	"github.com/riordanpawley/pacaro/internal/output"
	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

func newListCmd(deps func() *Dependencies) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print tasks grouped by stage",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			d := deps()
			tasks, err := d.Client.List(cmd.Context())
			if err != nil {
				return requestFailed(toast.OpLoad, err)
			}
			return output.Tasks(d.Out, f, tasks)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", string(output.FormatTable), "output format: table, json or yaml")
	return cmd
}
