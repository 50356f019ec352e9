package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ThomasCrouzet/kompose/internal/compose"
	"github.com/ThomasCrouzet/kompose/internal/config"
	"github.com/ThomasCrouzet/kompose/internal/ui"
)

var (
	cfgFile string
	cfg     *config.Config
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "kompose",
	Short: "Manage and lint a homelab of layered Docker Compose services",
	Long: `kompose drives a homelab workspace where every service has an optional
shared definition in base/<service>/compose.yml and a host overlay in
<host>/<service>/compose.yml.

It lints compose files against house conventions, starts and stops services
with the layered files, shows container status and keeps .env files in sync
with their .env.example templates.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// ExitError ends the process with Code. The command has already told the
// user what went wrong.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return compose.ExitCode(err)
}

func Execute() error {
	err := rootCmd.Execute()
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprint(os.Stderr, ui.FormatError(err.Error(), "", ""))
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default: kompose.yml)")
	pf.StringP("host", "H", "", "host directory to work on (default from config)")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("log-level", "", "diagnostic log level: debug, info, warn, error")

	bindFlags(viper.GetViper())
}

// bindFlags lets the global flags override their config keys.
func bindFlags(v *viper.Viper) {
	pf := rootCmd.PersistentFlags()
	_ = v.BindPFlag("host", pf.Lookup("host"))
	_ = v.BindPFlag("no_color", pf.Lookup("no-color"))
	_ = v.BindPFlag("log_level", pf.Lookup("log-level"))
}

func initConfig() {
	config.Setup(viper.GetViper(), cfgFile)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("Failed to load config", err.Error(), "run 'kompose init' to create a config file"))
		return &ExitError{Code: 1}
	}

	setupLogger(cfg.LogLevel)
	ui.Init(cfg.NoColor)

	log.WithFields(logrus.Fields{
		"config":    viper.ConfigFileUsed(),
		"workspace": cfg.Workspace,
		"host":      cfg.Host,
	}).Debug("config loaded")
	return nil
}

func setupLogger(level string) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.WarnLevel)
		log.WithField("level", level).Warn("unknown log level, using warn")
		return
	}
	log.SetLevel(lvl)
}
