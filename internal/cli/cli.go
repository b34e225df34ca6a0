// Package cli implements the navgraph command-line interface.
//
// Every command builds a grid-shaped navigation map (see package grid),
// validates it, and reports on it. The CLI is built using cobra and prints
// with lipgloss styles.
//
// # Commands
//
//   - grid: Build and validate a grid map and print its nodes
//   - closest: Find the node closest to a position or to another node
//   - reachable: List a node's one-hop neighbors
//   - search: List nodes carrying a property
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context and handed to the graph, so validation and
// listener diagnostics show up with --verbose.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for the root command and config file.
	appName = "navgraph"

	// configEnv names the environment variable holding a config file path.
	configEnv = "NAVGRAPH_CONFIG"

	// defaultConfigFile is loaded from the working directory when present.
	defaultConfigFile = appName + ".toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string // --config flag value
	config     Config // loaded before any subcommand runs
}

// New creates a new CLI instance with a default logger and default config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}
