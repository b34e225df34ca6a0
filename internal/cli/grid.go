package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// gridCommand creates the grid command that builds, validates and prints a map.
func (c *CLI) gridCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Build and validate a grid map",
		Long: `Build a grid-shaped navigation map, validate it, and print its nodes.

Nodes are named r<row>c<col> and placed at (col*spacing, row*spacing).
Neighboring cells are linked by undirected edges. Cells passed with
--unconnected get no edges and are exempt from the connectivity check.`,
		Example: `  navgraph grid --rows 2 --cols 4
  navgraph grid --rows 3 --cols 3 --diagonal --unconnected r2c2
  navgraph grid --set zone=A --set speed=0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.buildGrid(cmd, &flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			root := ""
			if n, ok := g.RootNode(); ok {
				root = n.Name
			}
			printSuccess(out, "Graph %s is valid", StyleTitle.Render(g.Name()))
			printStats(out, g.NodeCount(), g.EdgeCount(), root)
			fmt.Fprintln(out, nodeTable(g.Nodes()))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
