package main

import (
	"os"

	"github.com/spf13/cobra"

	"litsort/internal/wire"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer msgpack expansion requests on stdin/stdout",
	Long: `Serve reads a stream of msgpack-encoded requests from stdin and writes one
response per request to stdout. It is meant for editor and build integrations
that keep a litsort process running.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		reg, err := s.registry()
		if err != nil {
			return err
		}
		s.log.Info("serving", "macros", reg.Names())
		return wire.Serve(cmd.Context(), os.Stdin, cmd.OutOrStdout(), wire.ServeOptions{
			Registry:       reg,
			MaxDiagnostics: s.maxDiagnostics,
			Logger:         s.log,
		})
	},
}
