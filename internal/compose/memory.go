package compose

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ThomasCrouzet/kompose/internal/model"
	"github.com/ThomasCrouzet/kompose/internal/ui"
)

const (
	memHighPercent = 80
	memWarnPercent = 50
	// a limit below this share of host memory was set on purpose
	customLimitRatio = 0.9
)

// CompactBytes formats n as "697 M" or "2.0 G".
func CompactBytes(n uint64) string {
	return strings.TrimSuffix(humanize.IBytes(n), "iB")
}

// HasCustomLimit reports whether the container's limit is lower than the
// host memory, i.e. set in the compose file rather than inherited.
func HasCustomLimit(m model.Memory, total uint64) bool {
	return total > 0 && float64(m.Limit) < float64(total)*customLimitRatio
}

// FormatMemory renders usage colored by its share of the limit. Containers
// with a custom limit show "usage/limit" in compact form.
func FormatMemory(m model.Memory, total uint64) string {
	var text string
	if HasCustomLimit(m, total) {
		text = CompactBytes(m.Usage) + "/" + CompactBytes(m.Limit)
	} else {
		text = humanize.IBytes(m.Usage)
	}

	switch pct := m.Percent(); {
	case pct >= memHighPercent:
		return ui.Red(text)
	case pct >= memWarnPercent:
		return ui.Yellow(text)
	default:
		return ui.Green(text)
	}
}

// MemHeader is the memory column title, showing host memory when known.
func MemHeader(total uint64) string {
	if total == 0 {
		return "Mem (?)"
	}
	return "Mem (" + CompactBytes(total) + ")"
}
