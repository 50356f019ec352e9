package lint

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// the first backtick-quoted value on a router's rule line is its host
	ruleHostPattern       = regexp.MustCompile("traefik\\.http\\.routers\\.([a-z0-9-]+)\\.rule[^`\\n]*`([^`\\n]+)`")
	middlewareDeclPattern = regexp.MustCompile(`traefik\.http\.routers\.([a-z0-9-]+)\.middlewares[^\n]*`)
)

// FindMiddlewareIssues checks that routers on the public domain carry the
// public middleware and routers on the private domain the private one.
// Routers without a rule are not classified and never flagged.
func FindMiddlewareIssues(content string, exclude Set, conv Conventions) []Issue {
	conv = conv.withDefaults()

	rules := make(map[string]string)
	for _, m := range ruleHostPattern.FindAllStringSubmatch(content, -1) {
		rules[m[1]] = m[2]
	}

	var bad []string
	for _, m := range middlewareDeclPattern.FindAllStringSubmatch(content, -1) {
		router, decl := m[1], m[0]
		if conv.skipRouter(router) || exclude.Has(router) {
			continue
		}

		rule := rules[router]
		isPublic := strings.Contains(rule, conv.PublicDomain)
		isPrivate := strings.Contains(rule, conv.PrivateDomain)

		switch {
		case isPublic && !strings.Contains(decl, conv.PublicMiddleware):
			bad = append(bad, fmt.Sprintf("%s (public needs %s)", router, conv.PublicMiddleware))
		case isPrivate && !strings.Contains(decl, conv.PrivateMiddleware):
			bad = append(bad, fmt.Sprintf("%s (private needs %s)", router, conv.PrivateMiddleware))
		}
	}
	return issuesFrom(CategoryMiddleware, bad)
}
