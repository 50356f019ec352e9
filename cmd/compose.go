package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/kompose/internal/compose"
	"github.com/ThomasCrouzet/kompose/internal/ui"
	"github.com/ThomasCrouzet/kompose/internal/workspace"
)

// composeBinary is the CLI the runner invokes.
var composeBinary = compose.DefaultBinary

var (
	logsTail     int
	logsNoFollow bool
)

// composeAction describes one of up, down and restart.
type composeAction struct {
	progress string // "Starting"
	done     string // "started"
	verb     string // "start"
	run      func(r *compose.Runner, ctx context.Context, service string) error
}

var (
	actionUp      = composeAction{"Starting", "started", "start", (*compose.Runner).Up}
	actionDown    = composeAction{"Stopping", "stopped", "stop", (*compose.Runner).Down}
	actionRestart = composeAction{"Restarting", "restarted", "restart", (*compose.Runner).Restart}
)

var upCmd = &cobra.Command{
	Use:   "up [service]",
	Short: "Start a service, or every service of the host",
	Args:  cobra.MaximumNArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runCompose(cmd, args, actionUp) },
}

var downCmd = &cobra.Command{
	Use:   "down [service]",
	Short: "Stop a service, or every service of the host",
	Args:  cobra.MaximumNArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runCompose(cmd, args, actionDown) },
}

var restartCmd = &cobra.Command{
	Use:   "restart [service]",
	Short: "Stop then start a service, or every service of the host",
	Args:  cobra.MaximumNArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runCompose(cmd, args, actionRestart) },
}

var logsCmd = &cobra.Command{
	Use:   "logs <service>",
	Short: "Show and follow the logs of a service",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 0, "number of lines to show (default from config, 100)")
	logsCmd.Flags().BoolVar(&logsNoFollow, "no-follow", false, "print the logs and exit")

	rootCmd.AddCommand(upCmd, downCmd, restartCmd, logsCmd)
}

func newRunner() *compose.Runner {
	r := compose.NewRunner(cfg.NewWorkspace(), cfg.Host, log)
	r.Binary = composeBinary
	return r
}

func runCompose(cmd *cobra.Command, args []string, action composeAction) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := newRunner()

	if len(args) == 1 {
		service := args[0]
		if err := action.run(runner, ctx, service); err != nil {
			return composeFailure(cmd, service, err)
		}
		ui.Success(fmt.Sprintf("%s %s", service, action.done))
		return nil
	}

	services, err := runner.Workspace.Services(runner.Host)
	if err != nil {
		return err
	}
	if len(services) == 0 {
		ui.Notice("No services found")
		return nil
	}

	failed, err := runner.ForEach(ctx, services, func(name string) string {
		return fmt.Sprintf("%s %s...", action.progress, name)
	}, func(ctx context.Context, name string) error {
		return action.run(runner, ctx, name)
	})
	fmt.Fprintln(ui.Out)
	if err != nil {
		ui.Notice("Interrupted")
		return &ExitError{Code: compose.ExitCode(err)}
	}
	if failed > 0 {
		ui.Failure(fmt.Sprintf("%d service(s) failed to %s", failed, action.verb))
		return &ExitError{Code: 1}
	}
	ui.Success(fmt.Sprintf("All services %s", action.done))
	return nil
}

func runLogs(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tail := logsTail
	if tail <= 0 {
		tail = cfg.Logs.Tail
	}

	service := args[0]
	err := newRunner().Logs(ctx, service, tail, !logsNoFollow)
	if errors.Is(err, compose.ErrInterrupted) {
		return &ExitError{Code: compose.ExitInterrupted}
	}
	if err != nil {
		return composeFailure(cmd, service, err)
	}
	return nil
}

// composeFailure reports a failed single-service action and returns the
// exit code to use.
func composeFailure(cmd *cobra.Command, service string, err error) error {
	switch {
	case errors.Is(err, compose.ErrInterrupted):
		fmt.Fprintln(ui.Out)
		ui.Notice("Interrupted")
	case errors.Is(err, workspace.ErrNoComposeFiles):
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError(
			fmt.Sprintf("No %s found for service", cfg.ComposeFile),
			service,
			"check the service name with 'kompose status'",
		))
	default:
		log.WithError(err).Debug("compose failed")
		ui.Failure(fmt.Sprintf("%s failed", service))
	}
	return &ExitError{Code: compose.ExitCode(err)}
}
