package cmd

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubDocker(t *testing.T, found bool) {
	t.Helper()
	prevFind, prevExec := findExecutable, execCommand
	findExecutable = func(name string) (string, error) {
		if !found {
			return "", errors.New("not found")
		}
		return "/usr/bin/" + name, nil
	}
	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("echo", "2.29.7")
	}
	t.Cleanup(func() { findExecutable, execCommand = prevFind, prevExec })
}

func TestValidateAllGood(t *testing.T) {
	setupWorkspace(t, map[string]string{
		"base/app/compose.yml": "services:\n  app:\n    image: nginx\n",
		"nas/app/compose.yml":  "services:\n  app:\n    restart: always\n  worker:\n    image: busybox\n",
	})
	stubDocker(t, true)

	out, _, err := execute(t, "validate")
	assert.NoError(t, err)
	assert.Contains(t, out, "version 2.29.7")
	assert.Contains(t, out, "2 container service(s)")
	assert.Contains(t, out, "4 checks passed, 0 errors")
}

func TestValidateMissingDocker(t *testing.T) {
	setupWorkspace(t, map[string]string{"nas/app/compose.yml": "services:\n  app:\n    image: nginx\n"})
	stubDocker(t, false)

	out, _, err := execute(t, "validate")
	requireExitCode(t, err, 1)
	assert.Contains(t, out, "not found in PATH")
	assert.Contains(t, out, "1 errors")
}

func TestValidateMissingHost(t *testing.T) {
	setupWorkspace(t, map[string]string{"pi/app/compose.yml": "services:\n  app:\n    image: nginx\n"})
	stubDocker(t, true)

	out, _, err := execute(t, "validate")
	requireExitCode(t, err, 1)
	assert.Contains(t, out, "does not exist")
}
