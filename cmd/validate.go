package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/kompose/internal/compose"
	"github.com/ThomasCrouzet/kompose/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate your kompose.yml configuration and workspace",
	Long: `Check that the workspace and host directories exist, that docker and
its compose plugin are available, and that every service's layered compose
files load.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(ui.Out, ui.Bold("Validating kompose.yml..."))

	passed := 0
	failed := 0
	check := func(ok bool, field, detail, suggestion string) {
		if ok {
			ui.ValidationOK(field, detail)
			passed++
			return
		}
		ui.ValidationErr(field, detail, suggestion)
		failed++
	}

	ws := cfg.NewWorkspace()

	if dirExists(ws.Root) {
		check(true, "workspace", ws.Root, "")
	} else {
		check(false, "workspace", fmt.Sprintf("%s does not exist", ws.Root), "set workspace in kompose.yml or run 'kompose init'")
	}

	hostDir := ws.HostDir("")
	if dirExists(hostDir) {
		check(true, "host", ws.Rel(hostDir), "")
	} else {
		check(false, "host", fmt.Sprintf("%s does not exist", hostDir), "pass --host or set host in kompose.yml")
	}

	if path, err := findExecutable(composeBinary); err != nil {
		check(false, composeBinary, "not found in PATH", "install Docker: https://docs.docker.com/engine/install/")
	} else if out, err := execCommand(path, "compose", "version", "--short").Output(); err != nil {
		check(false, "compose", "docker compose plugin not available", "install the Docker Compose plugin")
	} else {
		check(true, "compose", "version "+strings.TrimSpace(string(out)), "")
	}

	services, err := ws.Services("")
	if err != nil {
		return err
	}
	for _, name := range services {
		files, err := ws.ComposeFiles(name, "")
		if err != nil {
			check(false, name, err.Error(), "")
			continue
		}
		names, err := compose.ServiceNames(cmd.Context(), name, files)
		if err != nil {
			check(false, name, err.Error(), "run 'kompose config "+name+"' for details")
			continue
		}
		check(true, name, fmt.Sprintf("%d container service(s)", len(names)), "")
	}

	fmt.Fprintln(ui.Out)
	if failed == 0 {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
		return nil
	}
	fmt.Fprintf(ui.Out, "%d checks passed, %d errors\n", passed, failed)
	return &ExitError{Code: 1}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
