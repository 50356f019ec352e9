package compose

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ThomasCrouzet/kompose/internal/ui"
	"github.com/ThomasCrouzet/kompose/internal/workspace"
)

// DefaultBinary is the container CLI invoked for compose actions.
const DefaultBinary = "docker"

// Runner runs docker compose against the layered files of a service.
type Runner struct {
	Workspace *workspace.Workspace
	Host      string
	Binary    string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	log         *logrus.Logger
	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewRunner returns a runner attached to the process stdio.
func NewRunner(ws *workspace.Workspace, host string, log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Runner{
		Workspace:   ws,
		Host:        host,
		Binary:      DefaultBinary,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		log:         log,
		execCommand: exec.CommandContext,
	}
}

// BuildCommand returns the argv of a compose invocation:
// <binary> compose -f <file>... <action> <extra>...
func BuildCommand(binary string, files []string, action string, extra ...string) []string {
	argv := []string{binary, "compose"}
	for _, f := range files {
		argv = append(argv, "-f", f)
	}
	argv = append(argv, action)
	return append(argv, extra...)
}

// Run resolves the compose files of service and runs action on them from
// the workspace root.
func (r *Runner) Run(ctx context.Context, service, action string, extra ...string) error {
	files, err := r.Workspace.ComposeFiles(service, r.Host)
	if err != nil {
		return err
	}

	rel := make([]string, len(files))
	for i, f := range files {
		rel[i] = r.Workspace.Rel(f)
	}
	ui.Files(strings.Join(rel, " + "))

	argv := BuildCommand(r.Binary, files, action, extra...)
	r.log.WithFields(logrus.Fields{"service": service, "argv": argv}).Debug("running compose")

	cmd := r.execCommand(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Workspace.Root
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err = cmd.Run()
	if ctx.Err() != nil {
		return &CommandError{Service: service, Action: action, ExitCode: ExitInterrupted, Err: ErrInterrupted}
	}
	if err == nil {
		return nil
	}

	code := 1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		code = exitErr.ExitCode()
	}
	return &CommandError{Service: service, Action: action, ExitCode: code, Err: err}
}

// Up starts a service detached.
func (r *Runner) Up(ctx context.Context, service string) error {
	return r.Run(ctx, service, "up", "-d")
}

// Down stops and removes a service's containers.
func (r *Runner) Down(ctx context.Context, service string) error {
	return r.Run(ctx, service, "down")
}

// Restart runs down then up, stopping early if down fails.
func (r *Runner) Restart(ctx context.Context, service string) error {
	if err := r.Down(ctx, service); err != nil {
		return err
	}
	return r.Up(ctx, service)
}

// Logs shows the last tail lines of a service's logs, following them when
// follow is set.
func (r *Runner) Logs(ctx context.Context, service string, tail int, follow bool) error {
	extra := []string{"--tail", strconv.Itoa(tail)}
	if follow {
		extra = append(extra, "-f")
	}
	return r.Run(ctx, service, "logs", extra...)
}

// ForEach calls fn for every service of the host, printing heading(name)
// before each one. It returns how many services failed. An interrupt stops
// the loop and is returned as the error.
func (r *Runner) ForEach(ctx context.Context, services []string, heading func(string) string, fn func(context.Context, string) error) (int, error) {
	failed := 0
	for _, name := range services {
		ui.Heading(heading(name))
		err := fn(ctx, name)
		if errors.Is(err, ErrInterrupted) {
			return failed, err
		}
		if err != nil {
			r.log.WithError(err).WithField("service", name).Debug("compose action failed")
			failed++
		}
	}
	return failed, nil
}
