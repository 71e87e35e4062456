package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"litsort/internal/format"
)

// newTestRoot builds a root command with fresh flag state around sub.
func newTestRoot(sub *cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	root := &cobra.Command{Use: "litsort", SilenceUsage: true, SilenceErrors: true}
	addRootFlags(root)
	root.AddCommand(sub)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	return root, &stdout, &stderr
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestPipelineFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	cfgPath := writeFile(t, dir, "litsort.toml", `[macro]
style = "go"

[run]
jobs = 3
max_diagnostics = 7
cache = true
`)
	input := writeFile(t, dir, "a.go.in", "x := sort!(\"b\", \"a\")\n")

	cases := []struct {
		name      string
		flags     []string
		jobs      int
		maxDiag   int
		style     format.Style
		withCache bool
	}{
		{"config values", nil, 3, 7, format.StyleGo, true},
		{"explicit flags", []string{"--jobs", "5", "--max-diagnostics", "2", "--style", "bracket", "--cache=false"}, 5, 2, format.StyleBracket, false},
		// явное значение, совпадающее с дефолтом флага, всё равно побеждает конфиг
		{"flag equal to its default", []string{"--max-diagnostics", "100", "--jobs", "0"}, 0, 100, format.StyleGo, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p *pipeline
			sub := &cobra.Command{
				Use: "run",
				RunE: func(cmd *cobra.Command, args []string) error {
					var err error
					p, err = newPipeline(cmd, args)
					return err
				},
			}
			addPipelineFlags(sub)
			root, _, _ := newTestRoot(sub)
			root.SetArgs(append(append([]string{"run", "--config", cfgPath}, tc.flags...), input))
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("execute: %v", err)
			}

			if p.opts.Jobs != tc.jobs {
				t.Fatalf("jobs = %d, want %d", p.opts.Jobs, tc.jobs)
			}
			if p.opts.MaxDiagnostics != tc.maxDiag || p.settings.maxDiagnostics != tc.maxDiag {
				t.Fatalf("max diagnostics = %d/%d, want %d", p.opts.MaxDiagnostics, p.settings.maxDiagnostics, tc.maxDiag)
			}
			if p.opts.Expand.Format.Style != tc.style {
				t.Fatalf("style = %v, want %v", p.opts.Expand.Format.Style, tc.style)
			}
			if (p.opts.Cache != nil) != tc.withCache {
				t.Fatalf("cache enabled = %v, want %v", p.opts.Cache != nil, tc.withCache)
			}
			if len(p.files) != 1 || p.files[0] != input {
				t.Fatalf("files = %v", p.files)
			}
		})
	}
}

func TestExpandStyleFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "litsort.toml", "[macro]\nstyle = \"go\"\n")
	input := writeFile(t, dir, "a.go.in", "x := sort!(\"b\", \"a\")\n")

	cases := []struct {
		name  string
		flags []string
		want  string
	}{
		{"config", nil, "x := [2]string{\"a\", \"b\"}\n"},
		{"flag", []string{"--style", "bracket"}, "x := [\"a\", \"b\"]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := &cobra.Command{Use: "expand", Args: cobra.MinimumNArgs(1), RunE: runExpand}
			addPipelineFlags(sub)
			sub.Flags().Bool("write", false, "")
			sub.Flags().Bool("in-place", false, "")
			sub.Flags().String("ui", "off", "")
			root, stdout, _ := newTestRoot(sub)
			root.SetArgs(append(append([]string{"expand", "--config", cfgPath}, tc.flags...), input))
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("execute: %v", err)
			}
			if got := stdout.String(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCheckExitStatus(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "litsort.toml", "[run]\nmax_diagnostics = 10\n")
	good := writeFile(t, dir, "good.go.in", "x := sort!(\"b\", \"a\")\n")
	bad := writeFile(t, dir, "bad.go.in", "x := sort!(\"b\", 5, \"a\")\n")

	cases := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{"clean file", good, false},
		{"non-literal argument", bad, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := &cobra.Command{Use: "check", Args: cobra.MinimumNArgs(1), RunE: runCheck}
			addPipelineFlags(sub)
			root, stdout, stderr := newTestRoot(sub)
			root.SetArgs([]string{"check", "--config", cfgPath, "--color", "off", "--format", "short", tc.file})
			err := root.ExecuteContext(context.Background())

			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v\n%s", err, stdout.String())
				}
				if stdout.Len() != 0 {
					t.Fatalf("unexpected diagnostics:\n%s", stdout.String())
				}
				return
			}
			if !errors.Is(err, errHasErrors) {
				t.Fatalf("expected errHasErrors, got %v", err)
			}
			if n := strings.Count(stdout.String(), "SYN2301"); n != 1 {
				t.Fatalf("expected one SYN2301, got %d:\n%s", n, stdout.String())
			}
			if !strings.Contains(stderr.String(), "1 files with errors") {
				t.Fatalf("unexpected summary: %q", stderr.String())
			}
		})
	}
}
