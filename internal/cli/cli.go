// Package cli implements the chromabench command-line interface: a single
// "run" action exposed as the root command, plus visualize and generate
// subcommands.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gopherforge/chromabench/internal/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level in place.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the root cobra command with every subcommand
// registered. The root command itself runs a colouring (the "dispatcher
// host" of the design), so `chromabench --algorithm dsatur --input g.col`
// works without naming a subcommand.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.runCommand()
	root.Use = "chromabench"
	root.Short = "Run and benchmark graph-colouring strategies"
	root.Version = buildinfo.Version
	root.SilenceUsage = true

	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.generateCommand())

	return root
}
