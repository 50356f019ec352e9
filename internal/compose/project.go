package compose

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/compose-spec/compose-go/v2/cli"
	composetypes "github.com/compose-spec/compose-go/v2/types"
	yamlv3 "gopkg.in/yaml.v3"
)

// LoadProject merges the layered compose files of a service the same way
// docker compose does, with interpolation from the OS and the .env file.
func LoadProject(ctx context.Context, name string, files []string) (*composetypes.Project, error) {
	opts, err := cli.NewProjectOptions(
		files,
		cli.WithName(name),
		cli.WithOsEnv,
		cli.WithDotEnv,
	)
	if err != nil {
		return nil, fmt.Errorf("project options: %w", err)
	}

	project, err := cli.ProjectFromOptions(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return project, nil
}

// RenderProject returns the merged project as YAML.
func RenderProject(project *composetypes.Project) ([]byte, error) {
	out, err := project.MarshalYAML()
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", project.Name, err)
	}
	return out, nil
}

// ServiceNames lists the compose services declared by files. When
// compose-go cannot load the project, the files are read as plain YAML so
// a broken reference elsewhere still yields the names. The returned error
// is the compose-go error, if any.
func ServiceNames(ctx context.Context, name string, files []string) ([]string, error) {
	project, loadErr := LoadProject(ctx, name, files)
	if loadErr == nil {
		names := project.ServiceNames()
		sort.Strings(names)
		return names, nil
	}

	seen := make(map[string]bool)
	for _, f := range files {
		for _, svc := range rawServiceNames(f) {
			seen[svc] = true
		}
	}
	names := make([]string, 0, len(seen))
	for svc := range seen {
		names = append(names, svc)
	}
	sort.Strings(names)
	return names, loadErr
}

func rawServiceNames(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var raw struct {
		Services map[string]any `yaml:"services"`
	}
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return nil
	}

	names := make([]string, 0, len(raw.Services))
	for name := range raw.Services {
		names = append(names, name)
	}
	return names
}
