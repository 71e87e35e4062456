// Package config loads litsort.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"litsort/internal/format"
)

// FileName is the name searched for when walking up from the working directory.
const FileName = "litsort.toml"

// ErrNoConfig is returned by Find when no litsort.toml exists up to the root.
var ErrNoConfig = errors.New("no " + FileName + " found")

type Config struct {
	Macro MacroConfig `toml:"macro"`
	Files FilesConfig `toml:"files"`
	Run   RunConfig   `toml:"run"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

type MacroConfig struct {
	// Name is the invocation name, written as name!(...).
	Name  string `toml:"name"`
	Style string `toml:"style"`
}

type FilesConfig struct {
	// Include lists the suffixes picked up when a directory is expanded.
	Include     []string `toml:"include"`
	StripSuffix string   `toml:"strip_suffix"`
}

type RunConfig struct {
	Jobs           int `toml:"jobs"`
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Cache keeps clean expansions under $XDG_CACHE_HOME/litsort.
	Cache bool `toml:"cache"`
}

func Default() Config {
	return Config{
		Macro: MacroConfig{Name: "sort", Style: format.StyleBracket.String()},
		Files: FilesConfig{Include: []string{".in"}, StripSuffix: ".in"},
		Run:   RunConfig{Jobs: 0, MaxDiagnostics: 100},
	}
}

// Find walks up from startDir looking for litsort.toml.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoConfig
		}
		dir = parent
	}
}

// Discover returns the config found from startDir, or the defaults when there is none.
func Discover(startDir string) (Config, error) {
	path, err := Find(startDir)
	if errors.Is(err, ErrNoConfig) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

// Load reads path over the defaults: keys absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if meta.IsDefined("macro", "name") && strings.TrimSpace(cfg.Macro.Name) == "" {
		return Config{}, fmt.Errorf("%s: [macro].name is empty", path)
	}
	if meta.IsDefined("files", "include") && len(cfg.Files.Include) == 0 {
		return Config{}, fmt.Errorf("%s: [files].include is empty", path)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that may also come from flags.
func (c Config) Validate() error {
	if !isIdent(c.Macro.Name) {
		return fmt.Errorf("[macro].name %q is not an identifier", c.Macro.Name)
	}
	if _, err := format.ParseStyle(c.Macro.Style); err != nil {
		return fmt.Errorf("[macro].style: %w", err)
	}
	for _, ext := range c.Files.Include {
		if strings.TrimSpace(ext) == "" {
			return errors.New("[files].include contains an empty suffix")
		}
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("[run].jobs must be >= 0, got %d", c.Run.Jobs)
	}
	if c.Run.MaxDiagnostics < 0 {
		return fmt.Errorf("[run].max_diagnostics must be >= 0, got %d", c.Run.MaxDiagnostics)
	}
	return nil
}

// FormatStyle returns the parsed [macro].style.
func (c Config) FormatStyle() format.Style {
	st, err := format.ParseStyle(c.Macro.Style)
	if err != nil {
		return format.StyleBracket
	}
	return st
}

// OutputPath maps an input file to the file written by expand --write.
func (c Config) OutputPath(input string) (string, error) {
	suffix := c.Files.StripSuffix
	if suffix == "" || !strings.HasSuffix(input, suffix) || len(input) == len(suffix) {
		return "", fmt.Errorf("%s: name does not end with %q, refusing to overwrite the input", input, suffix)
	}
	return strings.TrimSuffix(input, suffix), nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
