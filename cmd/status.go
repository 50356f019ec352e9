package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/kompose/internal/compose"
	"github.com/ThomasCrouzet/kompose/internal/report"
	"github.com/ThomasCrouzet/kompose/internal/ui"
)

// statusEngine is a container engine that holds a connection.
type statusEngine interface {
	compose.Engine
	Close() error
}

// newStatusEngine connects to the engine; replaced in tests.
var newStatusEngine = func() (statusEngine, error) {
	e, err := compose.NewDockerEngine()
	if err != nil {
		return nil, err
	}
	return e, nil
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the containers of the host's services",
	Long: `List the containers of every service of the host, grouped by service
and sorted by their IP on the reverse proxy network, with memory usage and
published ports.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ws := cfg.NewWorkspace()
	services, err := ws.Services("")
	if err != nil {
		return err
	}
	if len(services) == 0 {
		ui.Notice("No services found")
		return nil
	}

	engine, err := newStatusEngine()
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("Cannot connect to Docker", err.Error(), "is the Docker daemon running?"))
		return &ExitError{Code: 1}
	}
	defer engine.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snap, err := compose.NewStatusCollector(engine, cfg.Network, log).Collect(ctx)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("Failed to list containers", err.Error(), "is the Docker daemon running?"))
		return &ExitError{Code: 1}
	}

	groups := compose.GroupContainers(snap.Containers, services)
	report.Status(ui.Out, groups, snap)
	return nil
}
