package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("KOMPOSE_TEST_DIR", "/srv/lab")

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/workspace/homelab", filepath.Join(home, "workspace", "homelab")},
		{"/abs/path", "/abs/path"},
		{"relative/dir", "relative/dir"},
		{"$KOMPOSE_TEST_DIR/nas", "/srv/lab/nas"},
		{"~user/dir", "~user/dir"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}
