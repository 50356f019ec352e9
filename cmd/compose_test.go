package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// useBinary points the compose runner at a stand-in for docker.
func useBinary(t *testing.T, name string) {
	t.Helper()
	prev := composeBinary
	composeBinary = name
	t.Cleanup(func() { composeBinary = prev })
}

func twoServices(t *testing.T) string {
	return setupWorkspace(t, map[string]string{
		"base/app/compose.yml": "services:\n  app:\n    image: nginx\n",
		"nas/app/compose.yml":  "services:\n  app:\n    restart: always\n",
		"nas/db/compose.yml":   "services:\n  db:\n    image: postgres\n",
	})
}

func TestUpSingleService(t *testing.T) {
	twoServices(t)
	useBinary(t, "true")

	out, _, err := execute(t, "up", "app")
	assert.NoError(t, err)
	assert.Contains(t, out, "[base/app/compose.yml + nas/app/compose.yml]")
	assert.Contains(t, out, "app started")
}

func TestUpAllServices(t *testing.T) {
	twoServices(t)
	useBinary(t, "true")

	out, _, err := execute(t, "up")
	assert.NoError(t, err)
	assert.Contains(t, out, "Starting app...")
	assert.Contains(t, out, "Starting db...")
	assert.Contains(t, out, "All services started")
}

func TestDownAllServicesFailing(t *testing.T) {
	twoServices(t)
	useBinary(t, "false")

	out, _, err := execute(t, "down")
	requireExitCode(t, err, 1)
	assert.Contains(t, out, "Stopping app...")
	assert.Contains(t, out, "2 service(s) failed to stop")
}

func TestRestartSingleServiceFailing(t *testing.T) {
	twoServices(t)
	useBinary(t, "false")

	out, _, err := execute(t, "restart", "db")
	requireExitCode(t, err, 1)
	assert.Contains(t, out, "db failed")
	assert.NotContains(t, out, "restarted")
}

func TestUpMissingService(t *testing.T) {
	twoServices(t)
	useBinary(t, "true")

	_, errOut, err := execute(t, "up", "ghost")
	requireExitCode(t, err, 1)
	assert.Contains(t, errOut, "No compose.yml found for service")
	assert.Contains(t, errOut, "ghost")
}

func TestUpNoServices(t *testing.T) {
	setupWorkspace(t, map[string]string{"nas/.keep": ""})
	useBinary(t, "true")

	out, _, err := execute(t, "up")
	assert.NoError(t, err)
	assert.Contains(t, out, "No services found")
}

func TestLogs(t *testing.T) {
	twoServices(t)
	useBinary(t, "true")

	out, _, err := execute(t, "logs", "db", "--tail", "20", "--no-follow")
	assert.NoError(t, err)
	assert.Contains(t, out, "[nas/db/compose.yml]")
}

func TestLogsRequiresService(t *testing.T) {
	twoServices(t)

	_, _, err := execute(t, "logs")
	assert.Error(t, err)
}
