package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	DisableColor()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

func TestFormatError(t *testing.T) {
	DisableColor()

	out := FormatError("Service not found", "immich", "run 'kompose status'")
	assert.Equal(t, "Error: Service not found\n  immich\n  Hint: run 'kompose status'\n", out)

	assert.Equal(t, "Error: boom\n", FormatError("boom", "", ""))
}

func TestPrinters(t *testing.T) {
	buf := captureOut(t)

	Heading("jellyfin")
	Files("base/jellyfin/compose.yml + nas/jellyfin/compose.yml")
	Success("All services started")
	Warn("docker not running")
	ValidationErr("workspace", "not found", "set workspace in kompose.yml")

	out := buf.String()
	assert.Contains(t, out, "\njellyfin\n")
	assert.Contains(t, out, "[base/jellyfin/compose.yml + nas/jellyfin/compose.yml]\n")
	assert.Contains(t, out, "All services started\n")
	assert.Contains(t, out, "Warning: docker not running\n")
	assert.Contains(t, out, "ERR workspace: not found\n")
	assert.Contains(t, out, "Hint: set workspace in kompose.yml\n")
}

func TestTable(t *testing.T) {
	DisableColor()

	tbl := NewTable("Service", "Status")
	assert.Equal(t, "", tbl.Render())

	tbl.AddRow("immich", "synced")
	tbl.AddRow("jellyfin", Dash())
	assert.Equal(t, 2, tbl.Len())

	lines := strings.Split(tbl.Render(), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Service"))
	assert.Contains(t, lines[1], "─")
	assert.True(t, strings.HasPrefix(lines[2], "immich"))
	assert.Contains(t, lines[3], "-")
}
