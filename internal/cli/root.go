package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/navgraph/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the config file is loaded (see [Config]), its
// log level applied, and the logger attached to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Navgraph builds and queries topological navigation maps",
		Long: `Navgraph builds grid-shaped topological maps for robot navigation,
validates them, and answers spatial and reachability queries.

Grid settings come from flags or a navgraph.toml config file
(--config, $NAVGRAPH_CONFIG, or ./navgraph.toml). Flags win.`,
		Version:      buildinfo.Current(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			if cfg.Log.Level != "" {
				c.SetLogLevel(cfg.logLevel())
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a navgraph.toml config file")

	// Register all subcommands
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.closestCommand())
	root.AddCommand(c.reachableCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.completionCommand())

	return root
}
