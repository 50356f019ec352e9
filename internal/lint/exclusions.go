package lint

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// IgnoreFiles are the sidecar files looked up in a host directory, in order.
var IgnoreFiles = []string{".komposeignore", ".homelabignore"}

// Set is a set of router or service ids. The zero value is empty.
type Set map[string]struct{}

// NewSet builds a set from ids, normalizing them.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts a normalized id.
func (s Set) Add(id string) {
	if id = normalizeID(id); id != "" {
		s[id] = struct{}{}
	}
}

// Has reports whether id is in the set. id is normalized like Add does.
func (s Set) Has(id string) bool {
	_, ok := s[normalizeID(id)]
	return ok
}

func normalizeID(id string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(id), `"'`))
}

// Exclusions lists the ids exempt from each check category.
type Exclusions struct {
	Routers     Set
	Middlewares Set
	Logging     Set
	Network     Set
}

// NewExclusions returns exclusions with every set empty.
func NewExclusions() Exclusions {
	return Exclusions{
		Routers:     Set{},
		Middlewares: Set{},
		Logging:     Set{},
		Network:     Set{},
	}
}

type ignoreLists struct {
	Routers     []string `yaml:"routers"`
	Middlewares []string `yaml:"middlewares"`
	Logging     []string `yaml:"logging"`
	Network     []string `yaml:"network"`
}

type ignoreDoc struct {
	Exclude ignoreLists `yaml:"exclude"`
	Lists   ignoreLists `yaml:",inline"`
}

// LoadExclusions reads the first ignore file found at the root of fsys.
// A missing file yields empty exclusions.
func LoadExclusions(fsys fs.FS) (Exclusions, error) {
	for _, name := range IgnoreFiles {
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return NewExclusions(), fmt.Errorf("reading %s: %w", name, err)
		}
		return ParseExclusions(data), nil
	}
	return NewExclusions(), nil
}

// ParseExclusions decodes an ignore file. Files that are not valid YAML are
// read leniently: section headers followed by "- id" items.
func ParseExclusions(data []byte) Exclusions {
	var doc ignoreDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return scanExclusions(string(data))
	}

	ex := NewExclusions()
	for _, lists := range []ignoreLists{doc.Exclude, doc.Lists} {
		addAll(ex.Routers, lists.Routers)
		addAll(ex.Middlewares, lists.Middlewares)
		addAll(ex.Logging, lists.Logging)
		addAll(ex.Network, lists.Network)
	}
	return ex
}

func addAll(s Set, ids []string) {
	for _, id := range ids {
		s.Add(id)
	}
}

func scanExclusions(content string) Exclusions {
	ex := NewExclusions()
	var current Set

	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") || stripped == "exclude:" {
			continue
		}

		if strings.HasSuffix(stripped, ":") && !strings.HasPrefix(stripped, "-") {
			switch strings.TrimSuffix(stripped, ":") {
			case "routers":
				current = ex.Routers
			case "middlewares":
				current = ex.Middlewares
			case "logging":
				current = ex.Logging
			case "network":
				current = ex.Network
			default:
				current = nil
			}
			continue
		}

		if strings.HasPrefix(stripped, "- ") && current != nil {
			current.Add(stripped[2:])
		}
	}
	return ex
}
