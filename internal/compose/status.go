package compose

import (
	"context"
	"io"
	"net/netip"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ThomasCrouzet/kompose/internal/model"
)

// ProjectLabel is set by docker compose on every container it creates.
const ProjectLabel = "com.docker.compose.project"

// Engine is the subset of the container engine the status view needs.
type Engine interface {
	// Containers lists every compose-managed container, running or not.
	Containers(ctx context.Context) ([]model.Container, error)
	// NetworkIPs maps container names to their IPv4 on network.
	NetworkIPs(ctx context.Context, network string) (map[string]string, error)
	// ContainerMemory samples the memory usage of one container.
	ContainerMemory(ctx context.Context, id string) (model.Memory, error)
	// MemTotal is the host's total memory in bytes.
	MemTotal(ctx context.Context) (uint64, error)
}

// Snapshot is everything the status view shows, gathered in one pass.
type Snapshot struct {
	Containers []model.Container
	Memory     map[string]model.Memory // by container name
	MemTotal   uint64
}

// StatusCollector queries an Engine concurrently.
type StatusCollector struct {
	Engine  Engine
	Network string
	// StatsLimit bounds concurrent per-container stats requests.
	StatsLimit int

	log *logrus.Logger
}

func NewStatusCollector(engine Engine, network string, log *logrus.Logger) *StatusCollector {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &StatusCollector{Engine: engine, Network: network, StatsLimit: 8, log: log}
}

// Collect lists containers, network IPs and host memory concurrently, then
// samples memory of the running containers. Only a failure to list
// containers is fatal; the other sources degrade to empty values.
func (s *StatusCollector) Collect(ctx context.Context) (*Snapshot, error) {
	var (
		containers []model.Container
		ips        map[string]string
		total      uint64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		containers, err = s.Engine.Containers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if ips, err = s.Engine.NetworkIPs(gctx, s.Network); err != nil {
			s.log.WithError(err).WithField("network", s.Network).Warn("network inspect failed")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if total, err = s.Engine.MemTotal(gctx); err != nil {
			s.log.WithError(err).Warn("engine info failed")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range containers {
		containers[i].IP = ips[containers[i].Name]
	}

	return &Snapshot{
		Containers: containers,
		Memory:     s.sampleMemory(ctx, containers),
		MemTotal:   total,
	}, nil
}

func (s *StatusCollector) sampleMemory(ctx context.Context, containers []model.Container) map[string]model.Memory {
	results := make([]*model.Memory, len(containers))

	g, gctx := errgroup.WithContext(ctx)
	if s.StatsLimit > 0 {
		g.SetLimit(s.StatsLimit)
	}
	for i, c := range containers {
		if !c.Running() {
			continue
		}
		i, c := i, c
		g.Go(func() error {
			mem, err := s.Engine.ContainerMemory(gctx, c.ID)
			if err != nil {
				s.log.WithError(err).WithField("container", c.Name).Debug("stats failed")
				return nil
			}
			results[i] = &mem
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]model.Memory)
	for i, mem := range results {
		if mem != nil {
			out[containers[i].Name] = *mem
		}
	}
	return out
}

// Group is the set of containers of one service directory.
type Group struct {
	Service    string
	Containers []model.Container
}

// MainIP is the IP of the first container attached to the proxy network.
func (g Group) MainIP() string {
	for _, c := range g.Containers {
		if c.IP != "" {
			return c.IP
		}
	}
	return ""
}

// IsDependency reports whether c is a helper of the group's main container:
// it has no proxy IP while another container of the group does.
func (g Group) IsDependency(c model.Container) bool {
	return c.IP == "" && g.MainIP() != ""
}

// GroupContainers keeps containers whose compose project is one of
// services and groups them. Groups are ordered by main IP, containers
// inside a group by IP then name; containers without an IP come last.
func GroupContainers(containers []model.Container, services []string) []Group {
	known := make(map[string]bool, len(services))
	for _, s := range services {
		known[s] = true
	}

	index := make(map[string]int)
	var groups []Group
	for _, c := range containers {
		if !known[c.Project] {
			continue
		}
		i, ok := index[c.Project]
		if !ok {
			i = len(groups)
			index[c.Project] = i
			groups = append(groups, Group{Service: c.Project})
		}
		groups[i].Containers = append(groups[i].Containers, c)
	}

	for _, g := range groups {
		sort.SliceStable(g.Containers, func(i, j int) bool {
			a, b := g.Containers[i], g.Containers[j]
			if (a.IP == "") != (b.IP == "") {
				return a.IP != ""
			}
			if c := compareIP(a.IP, b.IP); c != 0 {
				return c < 0
			}
			return a.Name < b.Name
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if c := compareIP(groups[i].MainIP(), groups[j].MainIP()); c != 0 {
			return c < 0
		}
		return groups[i].Service < groups[j].Service
	})
	return groups
}

// compareIP orders valid addresses numerically before anything else.
func compareIP(a, b string) int {
	pa, errA := netip.ParseAddr(a)
	pb, errB := netip.ParseAddr(b)
	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}
	return pa.Compare(pb)
}
