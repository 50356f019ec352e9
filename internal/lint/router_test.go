package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindRouterIssues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		exclude Set
		want    []string
	}{
		{
			name:    "private router on private domain",
			content: readFixture(t, "valid.yml"),
			want:    nil,
		},
		{
			name:    "public file requires suffix",
			content: readFixture(t, "router_issues.yml"),
			want:    []string{"public-app (missing -private/-public)"},
		},
		{
			name:    "public suffix on private-only file",
			content: "labels:\n  - \"traefik.http.routers.app-public.rule=Host(`app.owpac.net`)\"\n",
			want:    []string{"app-public (use -private for owpac.net)"},
		},
		{
			name:    "unsuffixed router on private-only file is fine",
			content: "labels:\n  - \"traefik.http.routers.app.rule=Host(`app.owpac.net`)\"\n",
			want:    nil,
		},
		{
			name: "wildcard certs router is skipped",
			content: "# owpac.com\n" +
				"  - \"traefik.http.routers.wildcard-certs.tls=true\"\n",
			want: nil,
		},
		{
			name:    "excluded router",
			content: readFixture(t, "router_issues.yml"),
			exclude: NewSet("public-app"),
			want:    nil,
		},
		{
			name: "each router reported once, sorted",
			content: "owpac.com\n" +
				"traefik.http.routers.zeta.rule=x\n" +
				"traefik.http.routers.alpha.rule=x\n" +
				"traefik.http.routers.zeta.middlewares=x\n",
			want: []string{"alpha (missing -private/-public)", "zeta (missing -private/-public)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exclude := tt.exclude
			if exclude == nil {
				exclude = NewSet()
			}
			issues := FindRouterIssues(tt.content, exclude, DefaultConventions())
			if tt.want == nil {
				assert.Empty(t, issues)
				return
			}
			assert.Equal(t, tt.want, Messages(issues))
			for _, i := range issues {
				assert.Equal(t, CategoryRouter, i.Category)
			}
		})
	}
}

func TestFindRouterIssuesCustomDomains(t *testing.T) {
	conv := DefaultConventions()
	conv.PublicDomain = "example.org"
	conv.PrivateDomain = "home.lan"

	content := "traefik.http.routers.app-public.rule=Host(`app.home.lan`)\n"
	assert.Equal(t, []string{"app-public (use -private for home.lan)"}, Messages(FindRouterIssues(content, NewSet(), conv)))
}
