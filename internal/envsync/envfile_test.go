package envsync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVars(t *testing.T) {
	f := &File{Lines: []string{
		"# database",
		"DB_HOST=localhost",
		"  DB_PORT=5432  ",
		"",
		"export NOT_MATCHED=1",
		"lower_case=ok",
		"DB_HOST=override",
		"EMPTY=",
	}}

	keys, values := f.Vars()
	assert.Equal(t, []string{"DB_HOST", "DB_PORT", "lower_case", "EMPTY"}, keys)
	assert.Equal(t, "override", values["DB_HOST"])
	assert.Equal(t, "5432", values["DB_PORT"])
	assert.Equal(t, "", values["EMPTY"])
}

func TestInsertPosition(t *testing.T) {
	lines := []string{
		"# app",
		"APP_NAME=x",
		"APP_PORT=80",
		"",
		"DB_HOST=db",
		"DB_USER=u",
		"TZ=UTC",
	}

	tests := []struct {
		key      string
		expected int
	}{
		{"APP_SECRET", 3},
		{"DB_PASSWORD", 6},
		{"REDIS_HOST", 7},
		{"NOPREFIX", 7},
		// prefix runs to the last underscore
		{"DB_USER_ID", 7},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, InsertPosition(lines, tt.key))
		})
	}

	assert.Equal(t, 0, InsertPosition(nil, "APP_X"))
}

func TestAddKeepsSourceOrder(t *testing.T) {
	f := &File{Lines: []string{"APP_NAME=x", "", "DB_HOST=db"}}

	f.Add(map[string]string{"DB_PASS": "''", "APP_PORT": "''", "NEW": "1"},
		[]string{"APP_NAME", "APP_PORT", "DB_PASS", "NEW", "UNRELATED"})

	assert.Equal(t, []string{"APP_NAME=x", "APP_PORT=''", "", "DB_HOST=db", "DB_PASS=''", "NEW=1"}, f.Lines)
}

func TestRemove(t *testing.T) {
	f := &File{Lines: []string{"# keep", "A=1", "B=2", "A=3", "C=4"}}
	f.Remove(map[string]bool{"A": true, "C": true})
	assert.Equal(t, []string{"# keep", "B=2"}, f.Lines)
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	f, err := ReadFile(path)
	require.NoError(t, err)
	assert.False(t, f.Exists)
	assert.Empty(t, f.Lines)

	require.NoError(t, os.WriteFile(path, []byte("A=1\r\nB=2\n"), 0o600))
	f, err = ReadFile(path)
	require.NoError(t, err)
	assert.True(t, f.Exists)
	assert.Equal(t, []string{"A=1", "B=2"}, f.Lines)

	f.Lines = append(f.Lines, "C=3")
	require.NoError(t, f.Write())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A=1\nB=2\nC=3\n", string(data))
}
