package cli

import (
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/pacaro/internal/domain"
	"github.com/riordanpawley/pacaro/internal/mockapi"
)

// sampleTasks seed the mock API with one card per stage
var sampleTasks = []domain.TaskInput{
	{Title: "Write docs", Description: "Document the tasks API", Step: domain.StepTodo},
	{Title: "Fix login", Description: "Session cookie expires too early", Step: domain.StepInProgress},
	{Title: "Set up CI", Description: "Run tests on every push", Step: domain.StepDone},
}

func newMockAPICmd(deps func() *Dependencies) *cobra.Command {
	var (
		addr string
		seed bool
	)

	cmd := &cobra.Command{
		Use:   "mock-api",
		Short: "Serve an in-memory tasks API for local use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := deps()
			if !cmd.Flags().Changed("addr") {
				addr = d.Config.Mock.Addr
			}

			server := mockapi.New(d.Logger.Named("mockapi"))
			if seed {
				for _, in := range sampleTasks {
					server.Store.Create(d.Config.API.UserID, in)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(d.Out, "Mock API listening on %s (routes: %s/{user}/tasks)\n", addr, mockapi.DefaultPrefix)
			fmt.Fprintf(d.Out, "Point the board at it with: pacaro --base-url %s\n", localURL(addr))
			return server.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8787", "listen address")
	cmd.Flags().BoolVar(&seed, "seed", false, "start with sample tasks for the configured user")
	return cmd
}

// localURL is the base URL a client on this machine uses to reach addr
func localURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + mockapi.DefaultPrefix
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + mockapi.DefaultPrefix
}
