// Package cli wires the pacaro cobra commands to the task client and the board.
package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/riordanpawley/pacaro/internal/config"
	"github.com/riordanpawley/pacaro/internal/logger"
	"github.com/riordanpawley/pacaro/internal/services/tasks"
	"github.com/riordanpawley/pacaro/internal/ui/toast"
)

// Version is set at build time
var Version = "dev"

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config *config.Config
	Client *tasks.Client
	Logger *zap.Logger

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	closeLog func()
}

// Close flushes the log file. Calling it again is a no-op.
func (d *Dependencies) Close() {
	if d.closeLog != nil {
		d.closeLog()
		d.closeLog = nil
	}
}

type globalOptions struct {
	configPath string
	baseURL    string
	user       string
}

// NewDependencies loads configuration, applies flag overrides and builds the
// logger and task client
func NewDependencies(opts globalOptions, in io.Reader, out, errOut io.Writer) (*Dependencies, error) {
	cfg, err := config.LoadWithPath(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.baseURL != "" {
		cfg.API.BaseURL = opts.baseURL
	}
	if opts.user != "" {
		cfg.API.UserID = opts.user
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	client := tasks.NewClient(tasks.Config{
		BaseURL: cfg.API.BaseURL,
		UserID:  cfg.API.UserID,
		Timeout: cfg.API.TimeoutDuration(),
	}, &http.Client{}, log.Named("tasks"))

	return &Dependencies{
		Config:   cfg,
		Client:   client,
		Logger:   log,
		In:       in,
		Out:      out,
		ErrOut:   errOut,
		closeLog: closeLog,
	}, nil
}

// NewRootCmd builds the pacaro command tree reading from in and writing to out
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	root, _ := newRootCmd(in, out, errOut)
	return root
}

// newRootCmd also returns the accessor for the dependencies built by the
// last run
func newRootCmd(in io.Reader, out, errOut io.Writer) (*cobra.Command, func() *Dependencies) {
	var (
		opts globalOptions
		deps *Dependencies
	)
	get := func() *Dependencies { return deps }

	root := &cobra.Command{
		Use:           "pacaro",
		Short:         "Terminal task board for the pacaro tasks API",
		Long:          `pacaro shows your tasks as a three-column board (To do, In progress, Done) and lets you create, edit, move and delete them from the terminal or from scripts.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			d, err := NewDependencies(opts, in, out, errOut)
			if err != nil {
				return err
			}
			deps = d
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, get())
		},
	}

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file or directory (default: ./config.yaml, ~/.pacaro/config.yaml)")
	flags.StringVar(&opts.baseURL, "base-url", "", "tasks API base URL")
	flags.StringVar(&opts.user, "user", "", "user whose tasks are shown")

	root.AddCommand(
		newBoardCmd(get),
		newListCmd(get),
		newAddCmd(get),
		newEditCmd(get),
		newMoveCmd(get),
		newRmCmd(get),
		newMockAPICmd(get),
	)
	closeAfterRun(root, get)

	return root, get
}

// closeAfterRun releases the dependencies once a command's RunE returns,
// including when it fails and cobra skips the post-run hooks
func closeAfterRun(cmd *cobra.Command, get func() *Dependencies) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			defer func() {
				if d := get(); d != nil {
					d.Close()
				}
			}()
			return run(c, args)
		}
	}
	for _, sub := range cmd.Commands() {
		closeAfterRun(sub, get)
	}
}

// Execute runs the root command against the process streams
func Execute() error {
	root := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NoticeError is a failed request reported with the same text the board
// shows as a toast
type NoticeError struct {
	Message string
	Err     error
}

func (e *NoticeError) Error() string {
	return e.Message
}

func (e *NoticeError) Unwrap() error {
	return e.Err
}

func requestFailed(op toast.Op, err error) error {
	var notice *NoticeError
	if errors.As(err, &notice) {
		return err
	}
	return &NoticeError{Message: toast.Notice(op, err).Message, Err: err}
}
