package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"litsort/internal/prof"
	"litsort/internal/version"
)

// profiling is started by the root pre-run hook and stopped in main, so
// commands that return an error still flush their profiles.
var profiling *prof.Session

// errHasErrors ends a run whose diagnostics were already printed.
var errHasErrors = errors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:   "litsort",
	Short: "Compile-time sorting of string literal lists",
	Long: `litsort expands sort!("b", "a") invocations in template files into
literal arrays whose elements are sorted byte-wise: ["a", "b"].`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Root().PersistentFlags()
		var opts prof.Options
		opts.CPU, _ = flags.GetString("cpuprofile")
		opts.Mem, _ = flags.GetString("memprofile")
		opts.Trace, _ = flags.GetString("trace")
		if !opts.Enabled() {
			return nil
		}
		s, err := prof.Start(opts)
		if err != nil {
			return fmt.Errorf("failed to start profiling: %w", err)
		}
		profiling = s
		return nil
	},
}

func main() {
	rootCmd.Version = version.Collect().Version

	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	addRootFlags(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if profErr := profiling.Stop(); profErr != nil {
		fmt.Fprintln(os.Stderr, "error: profiling:", profErr)
	}
	if err != nil {
		if !errors.Is(err, errHasErrors) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// addRootFlags registers the persistent flags every subcommand reads.
func addRootFlags(c *cobra.Command) {
	// Глобальные флаги
	c.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	c.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	c.PersistentFlags().Bool("timings", false, "show timing information")
	c.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	c.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	c.PersistentFlags().String("cpuprofile", "", "write a CPU profile to file")
	c.PersistentFlags().String("memprofile", "", "write a heap profile to file on exit")
	c.PersistentFlags().String("trace", "", "write a runtime trace to file")
	c.PersistentFlags().String("config", "", "path to litsort.toml (default: search upwards from the working directory)")
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
