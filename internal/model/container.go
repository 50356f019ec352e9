package model

// ContainerState is the engine's lifecycle state of a container.
type ContainerState string

const (
	StateRunning ContainerState = "running"
	StateExited  ContainerState = "exited"
)

// Container is a compose-managed container as shown by `kompose status`.
type Container struct {
	ID      string
	Name    string
	Project string // com.docker.compose.project label
	State   ContainerState
	Status  string // human status text, e.g. "Up 3 hours"
	Ports   []PortMapping
	IP      string // IPv4 on the reverse-proxy network, if attached
}

// Running reports whether the container is up.
func (c Container) Running() bool {
	return c.State == StateRunning
}

// Memory is a container's memory usage and cgroup limit in bytes.
type Memory struct {
	Usage uint64
	Limit uint64
}

// Percent returns usage as a percentage of the limit, or 0 without a limit.
func (m Memory) Percent() float64 {
	if m.Limit == 0 {
		return 0
	}
	return float64(m.Usage) / float64(m.Limit) * 100
}
