package compose

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCompose(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "compose.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProjectMergesLayers(t *testing.T) {
	root := t.TempDir()
	base := writeCompose(t, filepath.Join(root, "base", "app"), `
services:
  app:
    image: nginx:1.25
    restart: unless-stopped
`)
	host := writeCompose(t, filepath.Join(root, "nas", "app"), `
services:
  app:
    image: nginx:1.27
  sidecar:
    image: busybox
`)

	project, err := LoadProject(context.Background(), "app", []string{base, host})
	require.NoError(t, err)

	assert.Equal(t, "app", project.Name)
	svc, err := project.GetService("app")
	require.NoError(t, err)
	assert.Equal(t, "nginx:1.27", svc.Image)
	assert.Equal(t, "unless-stopped", svc.Restart)

	out, err := RenderProject(project)
	require.NoError(t, err)
	assert.Contains(t, string(out), "nginx:1.27")
	assert.Contains(t, string(out), "sidecar")
}

func TestServiceNames(t *testing.T) {
	root := t.TempDir()
	file := writeCompose(t, root, "services:\n  web:\n    image: a\n  db:\n    image: b\n")

	names, err := ServiceNames(context.Background(), "stack", []string{file})
	require.NoError(t, err)
	assert.Equal(t, []string{"db", "web"}, names)
}

func TestServiceNamesFallsBackToYAML(t *testing.T) {
	root := t.TempDir()
	// depends_on a service that does not exist fails project validation
	file := writeCompose(t, root, "services:\n  web:\n    image: a\n    depends_on:\n      - ghost\n")

	names, err := ServiceNames(context.Background(), "stack", []string{file})
	assert.Error(t, err)
	assert.Equal(t, []string{"web"}, names)
}
