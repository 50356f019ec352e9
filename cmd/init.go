package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ThomasCrouzet/kompose/internal/config"
	"github.com/ThomasCrouzet/kompose/internal/ui"
	"github.com/ThomasCrouzet/kompose/internal/wizard"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a kompose.yml config file interactively",
	Long: `Look for a homelab workspace and the docker CLI, then generate a config
file through an interactive wizard.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := config.FileName + ".yml"

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(ui.Out, "%s already exists.\n", configPath)
		fmt.Fprint(ui.Out, "Overwrite? [y/N] ")
		var answer string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "y" && answer != "Y" {
			fmt.Fprintln(ui.Out, "Aborted.")
			return nil
		}
	}

	// Detect environment
	fmt.Fprintln(ui.Out, ui.Bold("Scanning environment..."))
	detection := wizard.Detect(nil)

	// Run wizard
	answers, err := wizard.Run(detection)
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}

	// Generate config
	content, err := wizard.GenerateConfig(*answers)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	// Write config file
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	ui.Success(fmt.Sprintf("Created %s", configPath))
	fmt.Fprintln(ui.Out)
	fmt.Fprintf(ui.Out, "Next step: %s\n", ui.Bold("kompose validate"))
	fmt.Fprintf(ui.Out, "           %s\n", ui.Hint("then 'kompose lint' to check your compose files"))

	return nil
}
