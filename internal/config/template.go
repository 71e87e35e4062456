package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultTemplate = `# litsort configuration

[macro]
# invoked as sort!("b", "a")
name = "sort"
# bracket: ["a", "b"]    go: [2]string{"a", "b"}
style = "bracket"

[files]
# suffixes expanded when a directory is given
include = [".in"]
# expand --write turns foo.go.in into foo.go
strip_suffix = ".in"

[run]
# 0 means GOMAXPROCS
jobs = 0
max_diagnostics = 100
# reuse expansions of unchanged files across runs
cache = false
`

// WriteDefault creates dir/litsort.toml and returns its path.
// An existing file is never overwritten.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("already initialized: %s exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultTemplate), 0o600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
