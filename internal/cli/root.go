// Package cli provides the beauty-mcp command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Maria-Villafuerte/MCP/internal/config"
	"github.com/Maria-Villafuerte/MCP/internal/logger"
	"github.com/Maria-Villafuerte/MCP/internal/server"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	cfg *config.Config
	log *logger.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var logLevel string

	root := &cobra.Command{
		Use:   "beauty-mcp",
		Short: "Personal color analysis MCP server",
		Long: `beauty-mcp classifies skin undertone and color season from simple
observations and generates clothing, makeup and accessories palettes.

Run "beauty-mcp serve" to expose it to an MCP host over stdio, or use the
classify and palette commands for one-off answers.

Configuration is read from BEAUTY_* environment variables and, when
BEAUTY_CONFIG names a file, from YAML.`,
		Version:      server.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log, err := logger.New(logger.Options{
				Mode:     cfg.LogMode,
				Level:    cfg.LogLevel,
				Redact:   cfg.LogRedact,
				HashSalt: cfg.LogHashSalt,
			})
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	root.AddCommand(
		newServeCmd(a),
		newClassifyCmd(a),
		newPaletteCmd(a),
		newSeasonsCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// The root pre-run loads config; version must work without it.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "beauty-mcp %s\n", server.Version)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
