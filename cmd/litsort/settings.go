package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"litsort/internal/config"
	"litsort/internal/logging"
	"litsort/internal/macro"
)

// runSettings is the merge of litsort.toml and the persistent flags;
// flags win when they are set explicitly.
type runSettings struct {
	cfg            config.Config
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	log            *slog.Logger
}

func loadSettings(cmd *cobra.Command) (*runSettings, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := readColorMode(colorFlag)
	if err != nil {
		return nil, err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	maxDiagnostics := cfg.Run.MaxDiagnostics
	if flags.Changed("max-diagnostics") {
		if maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}

	levelFlag, err := flags.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	level, err := logging.ParseLevel(levelFlag)
	if err != nil {
		return nil, err
	}

	s := &runSettings{
		cfg:            cfg,
		color:          useColor,
		quiet:          quiet,
		timings:        timings,
		maxDiagnostics: maxDiagnostics,
		log:            logging.New(level, os.Stderr),
	}
	if cfg.Path != "" {
		s.log.Debug("config loaded", "path", cfg.Path)
	}
	return s, nil
}

func readColorMode(value string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stderr), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// registry returns the built-in expanders plus the configured invocation name.
func (s *runSettings) registry() (*macro.Registry, error) {
	reg := macro.DefaultRegistry()
	if err := reg.Alias(s.cfg.Macro.Name, "sort"); err != nil {
		return nil, fmt.Errorf("[macro].name: %w", err)
	}
	return reg, nil
}
