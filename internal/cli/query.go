package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/navgraph/pkg/errors"
	"github.com/matzehuels/navgraph/pkg/navgraph"
)

// closestCommand creates the closest command for spatial queries.
func (c *CLI) closestCommand() *cobra.Command {
	var (
		flags           gridFlags
		x, y            float64
		to              string
		property        string
		withUnconnected bool
	)

	cmd := &cobra.Command{
		Use:   "closest",
		Short: "Find the node closest to a position or another node",
		Long: `Find the node with minimal Euclidean distance to a position (--x, --y)
or to another node (--to). With --to, the reference node itself is never
returned. Unconnected nodes are skipped unless --with-unconnected is given.`,
		Example: `  navgraph closest --x 1.2 --y 0.4
  navgraph closest --to r1c1 --with-unconnected
  navgraph closest --x 5 --y 5 --property charger`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			byPosition := cmd.Flags().Changed("x") || cmd.Flags().Changed("y")
			if to != "" && byPosition {
				return apperrors.New(apperrors.ErrCodeInvalidInput, "use either --to or --x/--y, not both")
			}

			g, err := c.buildGrid(cmd, &flags)
			if err != nil {
				return err
			}

			var (
				n  navgraph.Node
				ok bool
			)
			refX, refY := x, y
			switch {
			case to != "":
				if err := requireNode(g, to); err != nil {
					return err
				}
				ref, _ := g.Node(to)
				refX, refY = ref.X, ref.Y
				if withUnconnected {
					n, ok = g.ClosestNodeToWithUnconnected(to, property)
				} else {
					n, ok = g.ClosestNodeTo(to, property)
				}
			case withUnconnected:
				n, ok = g.ClosestNodeWithUnconnected(x, y, property)
			default:
				n, ok = g.ClosestNode(x, y, property)
			}

			out := cmd.OutOrStdout()
			if !ok {
				printWarning(out, "No node matches%s", describeFilter(property, withUnconnected))
				return nil
			}
			printSuccess(out, "Closest node: %s", StyleTitle.Render(n.Name))
			printKeyValue(out, "Position", fmt.Sprintf("(%s, %s)", formatCoord(n.X), formatCoord(n.Y)))
			printKeyValue(out, "Distance", formatCoord(n.Distance(refX, refY)))
			if n.Unconnected {
				printDetail(out, "node is flagged unconnected")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&x, "x", 0, "query X coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "query Y coordinate")
	cmd.Flags().StringVar(&to, "to", "", "reference node name instead of a position")
	cmd.Flags().StringVar(&property, "property", "", "only consider nodes carrying this property")
	cmd.Flags().BoolVar(&withUnconnected, "with-unconnected", false, "also consider unconnected nodes")
	return cmd
}

func describeFilter(property string, withUnconnected bool) string {
	var parts []string
	if property != "" {
		parts = append(parts, fmt.Sprintf("property %q", property))
	}
	if !withUnconnected {
		parts = append(parts, "connected only")
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// reachableCommand creates the reachable command listing one-hop neighbors.
func (c *CLI) reachableCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "reachable NAME",
		Short: "List the nodes directly reachable from a node",
		Example: `  navgraph reachable r0c0
  navgraph reachable r1c1 --rows 3 --cols 3 --diagonal`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			g, err := c.buildGrid(cmd, &flags)
			if err != nil {
				return err
			}
			if err := requireNode(g, name); err != nil {
				return err
			}

			n, _ := g.Node(name)
			reachable := n.ReachableNodes()
			out := cmd.OutOrStdout()
			if len(reachable) == 0 {
				printWarning(out, "No nodes reachable from %s", name)
				return nil
			}
			printInfo(out, "%s reaches %d nodes", StyleTitle.Render(name), len(reachable))
			for _, r := range reachable {
				target, _ := g.Node(r)
				printNeighbor(out, r, "distance "+formatCoord(n.DistanceTo(target)))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// searchCommand creates the search command listing nodes by property.
func (c *CLI) searchCommand() *cobra.Command {
	var flags gridFlags

	cmd := &cobra.Command{
		Use:   "search [PROPERTY]",
		Short: "List nodes carrying a property",
		Long: `List nodes carrying a property key, in insertion order.
Without PROPERTY all nodes are listed.`,
		Example: `  navgraph search row
  navgraph search zone --set zone=A`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			property := ""
			if len(args) == 1 {
				property = args[0]
				if err := apperrors.ValidateName("property", property); err != nil {
					return err
				}
			}

			g, err := c.buildGrid(cmd, &flags)
			if err != nil {
				return err
			}

			nodes := g.SearchNodes(property)
			out := cmd.OutOrStdout()
			if len(nodes) == 0 {
				printWarning(out, "No nodes carry property %q", property)
				return nil
			}
			printSuccess(out, "Found %d nodes", len(nodes))
			fmt.Fprintln(out, nodeTable(nodes))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
