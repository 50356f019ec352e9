package compose

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"

	"github.com/ThomasCrouzet/kompose/internal/model"
)

// DockerEngine reads container state from the Docker Engine API.
type DockerEngine struct {
	client *client.Client
}

// NewDockerEngine connects using the DOCKER_HOST environment, negotiating
// the API version with the daemon.
func NewDockerEngine() (*DockerEngine, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("docker client: %w", err)
	}
	return &DockerEngine{client: cli}, nil
}

func (d *DockerEngine) Close() error {
	return d.client.Close()
}

func (d *DockerEngine) Containers(ctx context.Context) ([]model.Container, error) {
	list, err := d.client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("label", ProjectLabel)),
	})
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}

	out := make([]model.Container, 0, len(list))
	for _, c := range list {
		name := c.ID
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}

		var ports []model.PortMapping
		for _, p := range c.Ports {
			ports = append(ports, model.PortMapping{
				HostIP:        p.IP,
				HostPort:      int(p.PublicPort),
				ContainerPort: int(p.PrivatePort),
				Protocol:      p.Type,
			})
		}

		out = append(out, model.Container{
			ID:      c.ID,
			Name:    name,
			Project: c.Labels[ProjectLabel],
			State:   model.ContainerState(c.State),
			Status:  c.Status,
			Ports:   model.PublishedPorts(ports),
		})
	}
	return out, nil
}

func (d *DockerEngine) NetworkIPs(ctx context.Context, name string) (map[string]string, error) {
	res, err := d.client.NetworkInspect(ctx, name, network.InspectOptions{})
	if err != nil {
		return nil, fmt.Errorf("inspecting network %s: %w", name, err)
	}

	ips := make(map[string]string, len(res.Containers))
	for _, ep := range res.Containers {
		ip, _, _ := strings.Cut(ep.IPv4Address, "/")
		ips[ep.Name] = ip
	}
	return ips, nil
}

// memoryStats is the part of the stats payload used for memory.
type memoryStats struct {
	MemoryStats struct {
		Usage uint64            `json:"usage"`
		Limit uint64            `json:"limit"`
		Stats map[string]uint64 `json:"stats"`
	} `json:"memory_stats"`
}

func (d *DockerEngine) ContainerMemory(ctx context.Context, id string) (model.Memory, error) {
	resp, err := d.client.ContainerStatsOneShot(ctx, id)
	if err != nil {
		return model.Memory{}, fmt.Errorf("stats %s: %w", id, err)
	}
	defer resp.Body.Close()

	var st memoryStats
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return model.Memory{}, fmt.Errorf("decoding stats %s: %w", id, err)
	}
	return memoryFromStats(st), nil
}

// memoryFromStats subtracts the page cache the way `docker stats` does:
// inactive_file on cgroup v2, total_inactive_file on v1.
func memoryFromStats(st memoryStats) model.Memory {
	ms := st.MemoryStats
	usage := ms.Usage
	cache, ok := ms.Stats["inactive_file"]
	if !ok {
		cache = ms.Stats["total_inactive_file"]
	}
	if cache < usage {
		usage -= cache
	}
	return model.Memory{Usage: usage, Limit: ms.Limit}
}

func (d *DockerEngine) MemTotal(ctx context.Context) (uint64, error) {
	info, err := d.client.Info(ctx)
	if err != nil {
		return 0, fmt.Errorf("engine info: %w", err)
	}
	return uint64(info.MemTotal), nil
}
