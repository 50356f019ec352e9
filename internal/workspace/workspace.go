// Package workspace resolves hosts, services and their layered compose
// files inside the homelab workspace directory.
//
// A workspace looks like:
//
//	<root>/base/<service>/compose.yml   shared definition (optional)
//	<root>/<host>/<service>/compose.yml host overlay
//	<root>/<host>/.komposeignore        lint exclusions
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DefaultComposeFile is the compose file name looked up in service dirs.
const DefaultComposeFile = "compose.yml"

// BaseDirName holds compose files shared by every host.
const BaseDirName = "base"

var (
	// ErrServiceNotFound is returned when a named service directory does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrNoComposeFiles is returned when neither base nor host define a service.
	ErrNoComposeFiles = errors.New("no compose file found")
)

// Workspace is a homelab checkout on disk.
type Workspace struct {
	Root        string
	DefaultHost string
	ComposeFile string
}

// New returns a workspace with defaults applied.
func New(root, defaultHost, composeFile string) *Workspace {
	if composeFile == "" {
		composeFile = DefaultComposeFile
	}
	return &Workspace{Root: root, DefaultHost: defaultHost, ComposeFile: composeFile}
}

// Host resolves an empty host name to the default host.
func (w *Workspace) Host(host string) string {
	if host == "" {
		return w.DefaultHost
	}
	return host
}

// HostDir returns the directory of a host.
func (w *Workspace) HostDir(host string) string {
	return filepath.Join(w.Root, w.Host(host))
}

// BaseDir returns the directory of shared compose files.
func (w *Workspace) BaseDir() string {
	return filepath.Join(w.Root, BaseDirName)
}

// HostFS returns the host directory as a filesystem.
func (w *Workspace) HostFS(host string) fs.FS {
	return os.DirFS(w.HostDir(host))
}

// Services lists the services of a host. A missing host dir has none.
func (w *Workspace) Services(host string) ([]string, error) {
	return ServiceNames(w.HostFS(host), w.ComposeFile)
}

// ServiceDir returns the directory of one service of a host.
func (w *Workspace) ServiceDir(host, name string) (string, error) {
	dir := filepath.Join(w.HostDir(host), name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}
	return dir, nil
}

// ComposeFiles returns the layered compose files of a service: the base
// definition first, then the host overlay. Missing layers are left out.
func (w *Workspace) ComposeFiles(service, host string) ([]string, error) {
	candidates := []string{
		filepath.Join(w.BaseDir(), service, w.ComposeFile),
		filepath.Join(w.HostDir(host), service, w.ComposeFile),
	}

	var files []string
	for _, f := range candidates {
		if info, err := os.Stat(f); err == nil && !info.IsDir() {
			files = append(files, f)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w for service %q", ErrNoComposeFiles, service)
	}
	return files, nil
}

// Rel returns path relative to the workspace root, or path unchanged.
func (w *Workspace) Rel(path string) string {
	if rel, err := filepath.Rel(w.Root, path); err == nil {
		return rel
	}
	return path
}

// ServiceNames lists the directories at the root of fsys that contain
// composeFile, sorted by name.
func ServiceNames(fsys fs.FS, composeFile string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := fs.Stat(fsys, e.Name()+"/"+composeFile); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
