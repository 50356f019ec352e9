package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ThomasCrouzet/kompose/internal/compose"
	"github.com/ThomasCrouzet/kompose/internal/model"
	"github.com/ThomasCrouzet/kompose/internal/ui"
)

// Status writes the container table grouped by service and the running
// count. It returns false when there was nothing to show.
func Status(w io.Writer, groups []compose.Group, snap *compose.Snapshot) bool {
	if len(groups) == 0 {
		fmt.Fprintln(w, ui.Yellow("No containers found"))
		return false
	}

	width := 0
	for _, g := range groups {
		width = max(width, len([]rune(g.Service)))
	}
	branch := ui.Gray("└" + strings.Repeat("─", max(width-1, 0)))

	tbl := ui.NewTable("Service", "Container", "Status", "IP", compose.MemHeader(snap.MemTotal), "Ports")
	total, running := 0, 0
	for _, g := range groups {
		for i, c := range g.Containers {
			total++
			if c.Running() {
				running++
			}
			dep := g.IsDependency(c)

			svc := ""
			switch {
			case i == 0:
				svc = g.Service
			case dep:
				svc = branch
			}

			name := c.Name
			if dep {
				name = ui.Gray(name)
			}

			ip := ui.Dash()
			if c.IP != "" {
				ip = c.IP
			}

			mem := ui.Dash()
			if m, ok := snap.Memory[c.Name]; ok {
				mem = compose.FormatMemory(m, snap.MemTotal)
			}

			tbl.AddRow(svc, name, state(c), ip, mem, ports(c.Ports))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tbl.Render())
	fmt.Fprintf(w, "\n%s/%d container(s) running\n", ui.Green(fmt.Sprint(running)), total)
	return true
}

func state(c model.Container) string {
	switch c.State {
	case model.StateRunning:
		return ui.Green(c.Status)
	case model.StateExited:
		return ui.Red(c.Status)
	default:
		return ui.Yellow(c.Status)
	}
}

func ports(pp []model.PortMapping) string {
	if len(pp) == 0 {
		return ui.Dash()
	}
	parts := make([]string, len(pp))
	for i, p := range pp {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
