package wizard

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/ThomasCrouzet/kompose/internal/util"
	"github.com/ThomasCrouzet/kompose/internal/workspace"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	DockerAvailable bool
	Workspace       string   // path if found, empty otherwise
	Hosts           []string // host directories of the workspace
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error) { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

// WorkspaceCandidates are checked in order; the first that looks like a
// homelab workspace wins.
var WorkspaceCandidates = []string{
	".",
	"~/workspace/homelab",
	"~/homelab",
}

// Detect scans the environment for the docker CLI and a workspace.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	if _, err := d.LookPath("docker"); err == nil {
		result.DockerAvailable = true
	}

	for _, c := range WorkspaceCandidates {
		path := util.ExpandPath(c)
		if hosts := detectHosts(d, path); len(hosts) > 0 {
			result.Workspace = path
			result.Hosts = hosts
			break
		}
	}

	return result
}

// detectHosts lists directories of root that hold at least one service.
func detectHosts(d Detector, root string) []string {
	if info, err := d.Stat(root); err != nil || !info.IsDir() {
		return nil
	}

	matches, err := d.Glob(filepath.Join(root, "*", "*", workspace.DefaultComposeFile))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var hosts []string
	for _, m := range matches {
		host := filepath.Base(filepath.Dir(filepath.Dir(m)))
		if host == workspace.BaseDirName || seen[host] {
			continue
		}
		seen[host] = true
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}
