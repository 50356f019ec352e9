package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThomasCrouzet/kompose/internal/lint"
	"github.com/ThomasCrouzet/kompose/internal/ui"
)

func routerIssues(n int) []lint.Issue {
	out := make([]lint.Issue, n)
	for i := range out {
		out[i] = lint.Issue{Category: lint.CategoryRouter, Message: fmt.Sprintf("r%d (missing -private/-public)", i)}
	}
	return out
}

func TestLintAllPassed(t *testing.T) {
	ui.DisableColor()
	var buf bytes.Buffer

	Lint(&buf, &lint.Report{Results: []lint.ServiceResult{{Name: "a"}, {Name: "b"}}})

	out := buf.String()
	assert.Contains(t, out, "Service")
	assert.True(t, strings.HasSuffix(out, "\nAll 2 services passed\n"))
	assert.NotContains(t, out, "Property Order")
}

func TestLintFailures(t *testing.T) {
	ui.DisableColor()
	var buf bytes.Buffer

	failing := lint.ServiceResult{Name: "immich", Path: "immich/compose.yml"}
	failing.Order = []lint.Issue{{Category: lint.CategoryOrder, Message: "server:4", Fix: "move `container_name` before `image`"}}
	failing.Router = routerIssues(7)
	failing.Middleware = []lint.Issue{{Category: lint.CategoryMiddleware, Message: "immich-public (public needs wan@file)"}}
	failing.Config = []lint.Issue{
		{Category: lint.CategoryConfig, Message: "missing logging"},
		{Category: lint.CategoryConfig, Message: "missing network: reverse-proxy"},
	}
	rep := &lint.Report{Results: []lint.ServiceResult{{Name: "good", Path: "good/compose.yml"}, failing}}

	Lint(&buf, rep)
	out := buf.String()

	assert.Contains(t, out, "\nProperty Order\n  immich/compose.yml\n    server:4  move `container_name` before `image`\n")
	assert.Contains(t, out, "\nRouter Naming\n  immich\n    r0 (missing -private/-public)\n")
	assert.Contains(t, out, "    r4 (missing -private/-public)\n    +2 more\n")
	assert.NotContains(t, out, "r5 (")
	assert.Contains(t, out, "\nMiddlewares\n  immich\n    immich-public (public needs wan@file)\n")
	assert.Contains(t, out, "\nConfiguration\n  immich  missing logging, missing network: reverse-proxy\n")
	assert.True(t, strings.HasSuffix(out, "\n11 issue(s) in 1 service(s)\n"))
}
