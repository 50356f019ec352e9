package wizard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mockDetector implements Detector for testing.
type mockDetector struct {
	binaries map[string]bool
	files    map[string]bool
	dirs     map[string]bool
}

func (m *mockDetector) LookPath(name string) (string, error) {
	if m.binaries[name] {
		return "/usr/bin/" + name, nil
	}
	return "", &os.PathError{Op: "lookpath", Path: name, Err: os.ErrNotExist}
}

type fakeFileInfo struct {
	name  string
	isDir bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return 0644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.isDir }
func (f fakeFileInfo) Sys() interface{}   { return nil }

func (m *mockDetector) Stat(path string) (os.FileInfo, error) {
	if m.dirs[path] {
		return fakeFileInfo{name: path, isDir: true}, nil
	}
	if m.files[path] {
		return fakeFileInfo{name: path, isDir: false}, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockDetector) Glob(pattern string) ([]string, error) {
	var out []string
	for f := range m.files {
		if ok, _ := filepath.Match(pattern, f); ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func TestDetectDocker(t *testing.T) {
	d := &mockDetector{binaries: map[string]bool{"docker": true}}
	result := Detect(d)
	assert.True(t, result.DockerAvailable)
}

func TestDetectNoDocker(t *testing.T) {
	d := &mockDetector{binaries: map[string]bool{}}
	result := Detect(d)
	assert.False(t, result.DockerAvailable)
}

func TestDetectWorkspaceInCurrentDir(t *testing.T) {
	d := &mockDetector{
		dirs: map[string]bool{".": true},
		files: map[string]bool{
			"base/traefik/compose.yml": true,
			"nas/traefik/compose.yml":  true,
			"nas/immich/compose.yml":   true,
			"pi/adguard/compose.yml":   true,
		},
	}
	result := Detect(d)
	assert.Equal(t, ".", result.Workspace)
	assert.Equal(t, []string{"nas", "pi"}, result.Hosts)
}

func TestDetectWorkspaceInHome(t *testing.T) {
	t.Setenv("HOME", "/home/test")
	root := "/home/test/workspace/homelab"
	d := &mockDetector{
		dirs:  map[string]bool{root: true},
		files: map[string]bool{root + "/nas/app/compose.yml": true},
	}
	result := Detect(d)
	assert.Equal(t, root, result.Workspace)
	assert.Equal(t, []string{"nas"}, result.Hosts)
}

func TestDetectSkipsDirWithoutServices(t *testing.T) {
	d := &mockDetector{
		dirs:  map[string]bool{".": true},
		files: map[string]bool{"base/app/compose.yml": true, "README.md": true},
	}
	result := Detect(d)
	assert.Empty(t, result.Workspace)
	assert.Empty(t, result.Hosts)
}

func TestDetectNothing(t *testing.T) {
	d := &mockDetector{
		binaries: map[string]bool{},
		files:    map[string]bool{},
	}
	result := Detect(d)
	assert.False(t, result.DockerAvailable)
	assert.Empty(t, result.Workspace)
	assert.Empty(t, result.Hosts)
}
