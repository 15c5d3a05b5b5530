// Package cli implements the blockscope command-line interface.
//
// This package provides commands for inspecting block manifests and opening
// the interactive dependency diagram. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - view: open the interactive dependency diagram for a manifest
//   - check: resolve a manifest and report cycles, missing deps, conflicts
//   - describe: print the inspector text for a single block
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/blockscope/blockscope/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "blockscope"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a timestamped logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Blockscope visualizes dependency relationships between blocks",
		Long:          `Blockscope renders an interactive node-and-edge diagram of the dependency relationships between configurable blocks, so you can audit dependency structure, spot circular dependencies, and inspect per-block relationships.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the user-facing message once
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.viewCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.describeCommand())

	return root
}
