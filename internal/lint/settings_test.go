package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindConfigIssues(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		excludeLogging Set
		excludeNetwork Set
		want           []string
	}{
		{
			name:    "valid",
			content: readFixture(t, "valid.yml"),
		},
		{
			name:    "missing logging",
			content: "services:\n  app:\n    image: test\n    networks:\n      - reverse-proxy\n",
			want:    []string{"missing logging"},
		},
		{
			name:    "wrong driver",
			content: "services:\n  app:\n    logging:\n      driver: json-file\n    networks:\n      - reverse-proxy\n",
			want:    []string{"logging: use driver: local"},
		},
		{
			name:    "missing network",
			content: "services:\n  app:\n    logging:\n      driver: local\n",
			want:    []string{"missing network: reverse-proxy"},
		},
		{
			name:    "network_mode counts as network",
			content: "services:\n  app:\n    network_mode: host\n    logging:\n      driver: local\n",
		},
		{
			name:    "both missing",
			content: "services:\n  app:\n    image: test\n",
			want:    []string{"missing logging", "missing network: reverse-proxy"},
		},
		{
			name:           "excluded service",
			content:        "services:\n  app:\n    image: test\n",
			excludeLogging: NewSet("app"),
			excludeNetwork: NewSet("app"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logging, network := tt.excludeLogging, tt.excludeNetwork
			if logging == nil {
				logging = NewSet()
			}
			if network == nil {
				network = NewSet()
			}
			issues := FindConfigIssues(tt.content, "app", logging, network, DefaultConventions())
			if tt.want == nil {
				assert.Empty(t, issues)
				return
			}
			assert.Equal(t, tt.want, Messages(issues))
		})
	}
}
