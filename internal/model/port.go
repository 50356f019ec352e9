package model

import (
	"fmt"
	"sort"
)

// PortMapping represents a published port binding.
type PortMapping struct {
	HostIP        string
	HostPort      int
	ContainerPort int
	Protocol      string // tcp or udp
}

// String returns the mapping as "published:target".
func (p PortMapping) String() string {
	return fmt.Sprintf("%d:%d", p.HostPort, p.ContainerPort)
}

// PublishedPorts drops unpublished ports and collapses the IPv4/IPv6 pair
// the engine reports for each binding. The result is sorted by host port.
func PublishedPorts(ports []PortMapping) []PortMapping {
	type key struct{ host, container int }
	seen := make(map[key]bool)

	var out []PortMapping
	for _, p := range ports {
		if p.HostPort == 0 {
			continue
		}
		k := key{p.HostPort, p.ContainerPort}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].HostPort != out[j].HostPort {
			return out[i].HostPort < out[j].HostPort
		}
		return out[i].ContainerPort < out[j].ContainerPort
	})
	return out
}
