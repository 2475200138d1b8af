// beauty-mcp: personal color analysis MCP server
//
// Classifies skin undertone and color season from simple observations and
// generates clothing, makeup and accessories palettes. Works with any MCP
// host over stdio.
//
// Usage:
//
//	beauty-mcp serve      # Start MCP server (stdio transport)
//	beauty-mcp classify   # One-off classification, JSON output
//	beauty-mcp palette    # One-off palette, JSON output
//	beauty-mcp seasons    # Print the season table
package main

import (
	"os"

	"github.com/Maria-Villafuerte/MCP/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
