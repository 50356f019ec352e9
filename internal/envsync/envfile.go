package envsync

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

var (
	assignPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)
	keyPattern    = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)=`)
)

// File is a dotenv file kept as raw lines so edits preserve comments,
// blank lines and quoting.
type File struct {
	Path   string
	Lines  []string
	Exists bool
}

// ReadFile loads path. A missing file is returned empty with Exists false.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &File{Path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &File{Path: path, Lines: splitLines(string(data)), Exists: true}, nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Vars returns the assigned keys in file order and their raw values.
// Comments and lines that are not KEY=value are ignored; a repeated key
// keeps its first position and last value.
func (f *File) Vars() ([]string, map[string]string) {
	var keys []string
	values := make(map[string]string)
	for _, line := range f.Lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := assignPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if _, seen := values[m[1]]; !seen {
			keys = append(keys, m[1])
		}
		values[m[1]] = m[2]
	}
	return keys, values
}

// lineKey returns the key assigned on line, if any.
func lineKey(line string) (string, bool) {
	if m := keyPattern.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

// keyPrefix is the key up to and including its last underscore, or "".
func keyPrefix(key string) string {
	if i := strings.LastIndex(key, "_"); i >= 0 {
		return key[:i+1]
	}
	return ""
}

// InsertPosition returns the index at which key should be inserted: right
// after the last assignment sharing its prefix, or at the end.
func InsertPosition(lines []string, key string) int {
	prefix := keyPrefix(key)
	last := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		k, ok := lineKey(line)
		if ok && prefix != "" && strings.HasPrefix(k, prefix) {
			last = i
		}
	}
	if last >= 0 {
		return last + 1
	}
	return len(lines)
}

// Add inserts vars as KEY=value lines, one at a time in the given order,
// each next to its prefix group.
func (f *File) Add(vars map[string]string, order []string) {
	for _, key := range order {
		value, ok := vars[key]
		if !ok {
			continue
		}
		pos := InsertPosition(f.Lines, key)
		f.Lines = append(f.Lines, "")
		copy(f.Lines[pos+1:], f.Lines[pos:])
		f.Lines[pos] = key + "=" + value
	}
}

// Remove drops every assignment of the given keys.
func (f *File) Remove(keys map[string]bool) {
	kept := f.Lines[:0]
	for _, line := range f.Lines {
		if k, ok := lineKey(line); ok && keys[k] {
			continue
		}
		kept = append(kept, line)
	}
	f.Lines = kept
}

// Write saves the lines with a trailing newline.
func (f *File) Write() error {
	content := strings.Join(f.Lines, "\n") + "\n"
	if err := os.WriteFile(f.Path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	f.Exists = true
	return nil
}
