package lint

import (
	"fmt"
	"strings"
)

// FindConfigIssues checks the logging driver and reverse-proxy network of a
// service. network_mode counts as an explicit network choice.
func FindConfigIssues(content, service string, excludeLogging, excludeNetwork Set, conv Conventions) []Issue {
	conv = conv.withDefaults()
	var bad []string

	if !excludeLogging.Has(service) {
		if !strings.Contains(content, "logging:") {
			bad = append(bad, "missing logging")
		} else if !strings.Contains(content, "driver: "+conv.LoggingDriver) {
			bad = append(bad, fmt.Sprintf("logging: use driver: %s", conv.LoggingDriver))
		}
	}

	if !excludeNetwork.Has(service) {
		if !strings.Contains(content, conv.Network) && !strings.Contains(content, "network_mode") {
			bad = append(bad, fmt.Sprintf("missing network: %s", conv.Network))
		}
	}

	return issuesFrom(CategoryConfig, bad)
}
