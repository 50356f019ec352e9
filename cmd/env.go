package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/kompose/internal/envsync"
	"github.com/ThomasCrouzet/kompose/internal/report"
	"github.com/ThomasCrouzet/kompose/internal/ui"
	"github.com/ThomasCrouzet/kompose/internal/workspace"
)

var envForce bool

// envPrompter asks what to do with drifted variables; replaced in tests.
var envPrompter envsync.Prompter = envsync.HuhPrompter{}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Manage service .env files",
}

var envSyncCmd = &cobra.Command{
	Use:   "sync [service]",
	Short: "Sync .env files with their .env.example templates",
	Long: `Create missing .env files from .env.example and reconcile variables that
exist in only one of the two files. For each difference you choose to add
the variable to the other file, remove it, or skip it.

With --force every missing variable is added without asking.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnvSync,
}

func init() {
	envSyncCmd.Flags().BoolVarP(&envForce, "force", "f", false, "add missing variables without prompting")
	envCmd.AddCommand(envSyncCmd)
	rootCmd.AddCommand(envCmd)
}

func runEnvSync(cmd *cobra.Command, args []string) error {
	ws := cfg.NewWorkspace()

	var dirs []string
	if len(args) == 1 {
		dir, err := ws.ServiceDir("", args[0])
		if errors.Is(err, workspace.ErrServiceNotFound) {
			fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("Service not found", args[0], ""))
			return &ExitError{Code: 1}
		}
		if err != nil {
			return err
		}
		dirs = append(dirs, dir)
	} else {
		services, err := ws.Services("")
		if err != nil {
			return err
		}
		for _, name := range services {
			dir, err := ws.ServiceDir("", name)
			if err != nil {
				return err
			}
			dirs = append(dirs, dir)
		}
	}

	syncer := envsync.NewSyncer(envForce, envPrompter, log)
	syncer.Out = ui.Out

	res, err := syncer.Sync(dirs)
	if err != nil {
		return err
	}
	if len(res.Outcomes) == 0 {
		ui.Notice(fmt.Sprintf("No %s found", envsync.ExampleFile))
		return nil
	}

	report.EnvSync(ui.Out, res)
	return nil
}
