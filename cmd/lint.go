package cmd

import (
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/kompose/internal/lint"
	"github.com/ThomasCrouzet/kompose/internal/report"
	"github.com/ThomasCrouzet/kompose/internal/ui"
	"github.com/ThomasCrouzet/kompose/internal/watch"
	"github.com/ThomasCrouzet/kompose/internal/workspace"
)

var lintWatch bool

var lintCmd = &cobra.Command{
	Use:   "lint [service]",
	Short: "Check compose files against the homelab conventions",
	Long: `Check every service of the host, or a single one, for:

  - property order inside each compose service
  - Traefik router naming (-public / -private suffixes)
  - the middleware matching each router's domain
  - the logging driver and the reverse proxy network

Exclusions are read from .komposeignore in the host directory.
Exits with status 1 when any issue is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.Flags().BoolVarP(&lintWatch, "watch", "w", false, "re-run when a compose or ignore file changes")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	var only string
	if len(args) > 0 {
		only = args[0]
	}

	ws := cfg.NewWorkspace()
	engine := lint.NewEngine(cfg.Lint, cfg.ComposeFile, log)

	if !lintWatch {
		passed, err := lintHost(cmd.ErrOrStderr(), engine, ws, only)
		if err != nil {
			return err
		}
		if !passed {
			return &ExitError{Code: 1}
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := lintHost(cmd.ErrOrStderr(), engine, ws, only); err != nil {
		return err
	}

	names := append([]string{cfg.ComposeFile}, lint.IgnoreFiles...)
	w := watch.New(ws.HostDir(""), names, log)
	fmt.Fprintln(ui.Out, ui.Hint(fmt.Sprintf("Watching %s for changes, press Ctrl+C to stop", ws.Rel(w.Root))))

	return w.Run(ctx, func() {
		if _, err := lintHost(cmd.ErrOrStderr(), engine, ws, only); err != nil {
			log.WithError(err).Warn("lint run failed")
		}
	})
}

// lintHost runs the engine over the host directory and prints the report.
func lintHost(stderr io.Writer, engine *lint.Engine, ws *workspace.Workspace, only string) (bool, error) {
	rep, err := engine.Run(ws.HostFS(""), only)
	if errors.Is(err, workspace.ErrServiceNotFound) {
		fmt.Fprint(stderr, ui.FormatError("Service not found", only, "run 'kompose lint' without arguments to lint every service"))
		return false, &ExitError{Code: 1}
	}
	if err != nil {
		return false, err
	}

	if len(rep.Results) == 0 {
		ui.Notice(fmt.Sprintf("No services found in %s", ws.HostDir("")))
		return true, nil
	}

	report.Lint(ui.Out, rep)
	return rep.Passed(), nil
}
