package lint

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var routerPattern = regexp.MustCompile(`traefik\.http\.routers\.([a-z0-9-]+)\.`)

// FindRouterIssues checks router suffixes. A file mentioning the public
// domain anywhere must suffix every router with -private or -public; a
// private-only file must not use -public.
func FindRouterIssues(content string, exclude Set, conv Conventions) []Issue {
	conv = conv.withDefaults()
	hasPublic := strings.Contains(content, conv.PublicDomain)

	seen := make(map[string]bool)
	var routers []string
	for _, m := range routerPattern.FindAllStringSubmatch(content, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			routers = append(routers, m[1])
		}
	}
	sort.Strings(routers)

	var bad []string
	for _, router := range routers {
		if conv.skipRouter(router) || exclude.Has(router) {
			continue
		}

		hasSuffix := strings.HasSuffix(router, "-private") || strings.HasSuffix(router, "-public")
		if hasPublic {
			if !hasSuffix {
				bad = append(bad, fmt.Sprintf("%s (missing -private/-public)", router))
			}
		} else if strings.HasSuffix(router, "-public") {
			bad = append(bad, fmt.Sprintf("%s (use -private for %s)", router, conv.PrivateDomain))
		}
	}
	return issuesFrom(CategoryRouter, bad)
}
