package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/kompose/internal/compose"
	"github.com/ThomasCrouzet/kompose/internal/ui"
	"github.com/ThomasCrouzet/kompose/internal/workspace"
)

var configCmd = &cobra.Command{
	Use:   "config <service>",
	Short: "Print the merged compose configuration of a service",
	Long: `Merge the base and host compose files of a service, interpolate
variables from the environment and the service's .env file, and print the
resulting project as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	service := args[0]
	ws := cfg.NewWorkspace()

	files, err := ws.ComposeFiles(service, "")
	if errors.Is(err, workspace.ErrNoComposeFiles) {
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError(fmt.Sprintf("No %s found for service", cfg.ComposeFile), service, ""))
		return &ExitError{Code: 1}
	}
	if err != nil {
		return err
	}

	project, err := compose.LoadProject(cmd.Context(), service, files)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("Invalid compose configuration", err.Error(), ""))
		return &ExitError{Code: 1}
	}

	out, err := compose.RenderProject(project)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
